package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet data row, keyed by the sheet's own header strings.
type Row struct {
	RowNumber int
	Values    map[string]string
}

// Get returns the cell value under the given actual header, or empty string
// when the column is absent.
func (r Row) Get(header string) string {
	return r.Values[header]
}

// ExcelReader reads the first sheet of a workbook. Subsequent sheets are
// ignored.
type ExcelReader struct{}

// Read parses the workbook at path into its header row and an ordered
// sequence of data rows. A sheet with only a header row yields zero rows,
// not an error.
func (r *ExcelReader) Read(path string) ([]string, []Row, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %s has no header row", sheetName)
	}

	headers := rows[0]
	data := make([]Row, 0, len(rows)-1)
	for i, row := range rows[1:] {
		values := make(map[string]string, len(headers))
		for col, header := range headers {
			if col < len(row) {
				values[header] = row[col]
			} else {
				values[header] = ""
			}
		}
		data = append(data, Row{RowNumber: i + 2, Values: values})
	}

	return headers, data, nil
}
