package importer

import (
	"github.com/alainchaple/formulario-publicaciones-ua/internal/textutil"
)

// Column identifies one article field fed from a spreadsheet column.
type Column int

const (
	ColTitle Column = iota
	ColYear
	ColDOI
	ColURL
	ColJournal
	ColQuartile
	ColIndexing
	ColImpactFactor
	ColResearchLine
	ColLeadership
)

// columnAliases maps each article column to the header strings accepted for
// it, in priority order. Matching is case/accent/whitespace-insensitive, so
// one unaccented spelling per variant is enough.
var columnAliases = map[Column][]string{
	ColTitle:        {"Título del artículo", "Título artículo"},
	ColYear:         {"Año", "Anio", "Year"},
	ColDOI:          {"DOI"},
	ColURL:          {"URL", "Enlace", "Link"},
	ColJournal:      {"Revista", "Journal"},
	ColQuartile:     {"Cuartil", "Quartile"},
	ColIndexing:     {"Indexación", "Indexation"},
	ColImpactFactor: {"Factor de impacto", "Factor impacto", "Impact factor"},
	ColResearchLine: {"Línea de investigación", "Research line"},
	ColLeadership:   {"Liderazgo", "Authorship role"},
}

// columnMap records, for each article column, the actual sheet header that
// feeds it. Unresolved optional columns are simply absent.
type columnMap map[Column]string

// resolveColumns matches the sheet's headers against every alias list in a
// single pass per column. Only the title column is mandatory; ok is false
// when it cannot be resolved.
func resolveColumns(headers []string) (columnMap, bool) {
	resolved := make(columnMap, len(columnAliases))
	for column, aliases := range columnAliases {
		if actual, ok := textutil.ResolveColumn(headers, aliases); ok {
			resolved[column] = actual
		}
	}

	_, hasTitle := resolved[ColTitle]
	return resolved, hasTitle
}

// value reads the cell feeding column from row, or empty string when the
// column was never resolved.
func (m columnMap) value(row Row, column Column) string {
	header, ok := m[column]
	if !ok {
		return ""
	}
	return row.Get(header)
}
