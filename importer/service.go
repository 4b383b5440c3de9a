// Package importer turns uploaded spreadsheets into store records.
package importer

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alainchaple/formulario-publicaciones-ua/publication"
	"github.com/alainchaple/formulario-publicaciones-ua/storage"
)

// MsgMissingTitleColumn rejects a sheet whose title column cannot be
// resolved against any accepted header spelling.
const MsgMissingTitleColumn = `No se encontró la columna "Título del artículo" en la hoja de cálculo. Por favor, revise los encabezados del archivo.`

// Result summarizes one completed import for user feedback.
type Result struct {
	RecordsWritten int
	RowsRead       int
	RowsSkipped    int
	Name           string
}

// Run imports the workbook at path under the given investigator identity:
// validates the identity, resolves the sheet's columns, expands each usable
// row, and appends the resulting records to the store in row order. Rows
// with blank titles are skipped silently. A *publication.ValidationError
// return means the submission was rejected before anything was written.
//
// The caller owns the uploaded file and its cleanup.
func Run(path string, id publication.Identity, store *storage.CSVStore, log *zap.Logger) (*Result, error) {
	if err := publication.ValidateIdentity(id); err != nil {
		return nil, err
	}

	headers, rows, err := (&ExcelReader{}).Read(path)
	if err != nil {
		return nil, err
	}

	result := &Result{Name: id.Name}
	if len(rows) == 0 {
		log.Info("import finished with no data rows", zap.String("name", id.Name))
		return result, nil
	}

	columns, ok := resolveColumns(headers)
	if !ok {
		return nil, &publication.ValidationError{Message: MsgMissingTitleColumn}
	}

	submittedAt := time.Now()
	for _, row := range rows {
		result.RowsRead++

		entry := entryFromRow(columns, row)
		if strings.TrimSpace(entry.ArticleTitle) == "" {
			result.RowsSkipped++
			continue
		}

		records := publication.Expand(id, entry, submittedAt)
		lines := make([]string, len(records))
		for i, record := range records {
			lines[i] = record.EncodeLine()
		}
		if err := store.Append(lines); err != nil {
			return nil, fmt.Errorf("row %d: %w", row.RowNumber, err)
		}
		result.RecordsWritten += len(records)
	}

	log.Info("import completed",
		zap.String("name", id.Name),
		zap.Int("rows_read", result.RowsRead),
		zap.Int("rows_skipped", result.RowsSkipped),
		zap.Int("records_written", result.RecordsWritten),
	)
	return result, nil
}

func entryFromRow(columns columnMap, row Row) publication.Entry {
	return publication.Entry{
		ArticleTitle:   columns.value(row, ColTitle),
		Year:           columns.value(row, ColYear),
		DOI:            columns.value(row, ColDOI),
		URL:            columns.value(row, ColURL),
		Journal:        columns.value(row, ColJournal),
		Quartile:       columns.value(row, ColQuartile),
		Indexing:       columns.value(row, ColIndexing),
		ImpactFactor:   columns.value(row, ColImpactFactor),
		ResearchLine:   columns.value(row, ColResearchLine),
		LeadershipRole: columns.value(row, ColLeadership),
	}
}
