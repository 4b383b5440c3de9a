package publication

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MsgInvalidORCID is the user-facing rejection text for a malformed ORCID,
// shown verbatim on both the single-entry and bulk paths.
const MsgInvalidORCID = "El ORCID no tiene el formato válido (0000-0000-0000-0000). Por favor, vuelva atrás y corrija el valor introducido."

var orcidPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{4}$`)

// ValidationError is a rejected submission: recoverable, user-caused, and
// never written to the store. Message is safe to show to the submitter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidationError reports whether err is a submission rejection.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

var identityFieldLabels = map[string]string{
	"Name":            "nombre",
	"FirstSurname":    "primer apellido",
	"ORCID":           "ORCID",
	"Position":        "posición",
	"DoctoralProgram": "programa de doctorado",
}

var identityValidate = newIdentityValidator()

func newIdentityValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag name.
	_ = v.RegisterValidation("orcid", func(fl validator.FieldLevel) bool {
		return orcidPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateIdentity checks the mandatory identity fields and the ORCID
// format. It returns a *ValidationError describing the first problem in
// declaration order, or nil when the identity is acceptable.
func ValidateIdentity(id Identity) error {
	trimmed := id
	trimmed.Name = strings.TrimSpace(id.Name)
	trimmed.FirstSurname = strings.TrimSpace(id.FirstSurname)
	trimmed.ORCID = strings.TrimSpace(id.ORCID)
	trimmed.Position = strings.TrimSpace(id.Position)
	trimmed.DoctoralProgram = strings.TrimSpace(id.DoctoralProgram)

	err := identityValidate.Struct(trimmed)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate identity: %w", err)
	}

	first := fieldErrs[0]
	if first.Tag() == "orcid" {
		return &ValidationError{Message: MsgInvalidORCID}
	}
	label := identityFieldLabels[first.StructField()]
	if label == "" {
		label = first.StructField()
	}
	return &ValidationError{Message: fmt.Sprintf("Falta el campo obligatorio: %s.", label)}
}
