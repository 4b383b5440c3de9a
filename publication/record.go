package publication

import "strings"

// Record is one persisted row of the publications store. Field order here is
// the persisted column order; Fields() must stay in sync with HeaderColumns.
type Record struct {
	Timestamp       string
	Name            string
	FirstSurname    string
	SecondSurname   string
	ORCID           string
	Position        string
	DoctoralProgram string
	ArticleTitle    string
	Year            string
	DOI             string
	URL             string
	Journal         string
	Quartile        string
	Indexing        string
	ImpactFactor    string
	ResearchLine    string
	LeadershipRole  string
}

// HeaderColumns lists the store's column names in persisted order. The
// Spanish tokens are part of the file format consumed by downstream
// spreadsheets and must not change.
var HeaderColumns = []string{
	"timestamp",
	"nombre",
	"primer_apellido",
	"segundo_apellido",
	"orcid",
	"posicion",
	"doctorado",
	"titulo_articulo",
	"anio",
	"doi",
	"url",
	"revista",
	"cuartil",
	"indexacion",
	"factor_impacto",
	"linea_investigacion",
	"liderazgo",
}

// Fields returns the record values in persisted column order.
func (r Record) Fields() []string {
	return []string{
		r.Timestamp,
		r.Name,
		r.FirstSurname,
		r.SecondSurname,
		r.ORCID,
		r.Position,
		r.DoctoralProgram,
		r.ArticleTitle,
		r.Year,
		r.DOI,
		r.URL,
		r.Journal,
		r.Quartile,
		r.Indexing,
		r.ImpactFactor,
		r.ResearchLine,
		r.LeadershipRole,
	}
}

// EncodeField wraps a value in double quotes, doubling embedded quotes.
// Every field is quoted unconditionally so embedded commas and newlines
// survive a standard CSV re-parse.
func EncodeField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// EncodeLine renders the record as one store line, newline-terminated.
func (r Record) EncodeLine() string {
	fields := r.Fields()
	encoded := make([]string, len(fields))
	for i, field := range fields {
		encoded[i] = EncodeField(field)
	}
	return strings.Join(encoded, ",") + "\n"
}

// HeaderLine returns the canonical header row, newline-terminated.
func HeaderLine() string {
	return strings.Join(HeaderColumns, ",") + "\n"
}
