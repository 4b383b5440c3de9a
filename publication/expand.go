package publication

import "time"

// Identity carries the investigator fields shared by every record of one
// submission.
type Identity struct {
	Name            string `validate:"required"`
	FirstSurname    string `validate:"required"`
	SecondSurname   string
	ORCID           string `validate:"required,orcid"`
	Position        string `validate:"required"`
	DoctoralProgram string `validate:"required"`
}

// Entry carries the per-article fields of one submission or spreadsheet row.
type Entry struct {
	ArticleTitle   string
	Year           string
	DOI            string
	URL            string
	Journal        string
	Quartile       string
	Indexing       string
	ImpactFactor   string
	ResearchLine   string
	LeadershipRole string
}

// ProgramBoth is the doctoral-program value meaning "both programs". It
// expands to the two concrete programs, applied sciences first.
const (
	ProgramBoth       = "Ambos"
	ProgramApplied    = "Ciencias Aplicadas"
	ProgramBiomedical = "Ciencias Biomédicas"
)

// ResolvePrograms expands the sentinel value into its fixed ordered pair;
// any other value resolves to itself.
func ResolvePrograms(program string) []string {
	if program == ProgramBoth {
		return []string{ProgramApplied, ProgramBiomedical}
	}
	return []string{program}
}

// Expand combines identity and entry into one record per resolved doctoral
// program. All emitted records share the given submission timestamp,
// formatted as UTC RFC 3339.
func Expand(id Identity, entry Entry, at time.Time) []Record {
	timestamp := at.UTC().Format(time.RFC3339)
	programs := ResolvePrograms(id.DoctoralProgram)

	records := make([]Record, 0, len(programs))
	for _, program := range programs {
		records = append(records, Record{
			Timestamp:       timestamp,
			Name:            id.Name,
			FirstSurname:    id.FirstSurname,
			SecondSurname:   id.SecondSurname,
			ORCID:           id.ORCID,
			Position:        id.Position,
			DoctoralProgram: program,
			ArticleTitle:    entry.ArticleTitle,
			Year:            entry.Year,
			DOI:             entry.DOI,
			URL:             entry.URL,
			Journal:         entry.Journal,
			Quartile:        entry.Quartile,
			Indexing:        entry.Indexing,
			ImpactFactor:    entry.ImpactFactor,
			ResearchLine:    entry.ResearchLine,
			LeadershipRole:  entry.LeadershipRole,
		})
	}
	return records
}
