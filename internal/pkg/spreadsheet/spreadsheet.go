package spreadsheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/adityar/sekolahku/internal/pkg/logger"
)

// SheetName is the worksheet holding student data in both templates and exports.
const SheetName = "Data Siswa"

// ContentType is the MIME type for .xlsx downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is a parsed worksheet: a header row plus data rows keyed by header
// label. Header labels are trimmed of surrounding whitespace; data cells are
// raw strings exactly as stored in the file.
type Sheet struct {
	Headers []string
	Rows    []Row
}

// Row maps a trimmed header label to the cell value in that column. Missing
// and empty cells both read as "".
type Row map[string]string

// Get returns the raw cell value for a header label.
func (r Row) Get(header string) string {
	return r[header]
}

// Parse reads the first worksheet of an .xlsx file. The first row is treated
// as the header row; every following row becomes a Row keyed by those headers.
// Header labels are trimmed once here so presence checks and cell lookups
// always agree. Rows whose cells are all empty are skipped.
func Parse(data []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Failed to close workbook after parse")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no worksheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &Sheet{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	sheet := &Sheet{Headers: headers}
	for _, cells := range rows[1:] {
		if isEmptyRow(cells) {
			continue
		}
		row := make(Row, len(sheet.Headers))
		for i, header := range sheet.Headers {
			if header == "" {
				continue
			}
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

func isEmptyRow(cells []string) bool {
	for _, cell := range cells {
		if cell != "" {
			return false
		}
	}
	return true
}

// Write builds an .xlsx file with a single worksheet containing the given
// header row and data rows. Columns are widened to fit typical content.
func Write(headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Failed to close workbook after write")
		}
	}()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create worksheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default worksheet: %w", err)
	}

	if err := writeRow(f, 1, headers); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	// Wide enough for names and addresses without per-column measurement.
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve last column: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 22); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, rowIndex int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIndex)
	if err != nil {
		return fmt.Errorf("failed to resolve cell for row %d: %w", rowIndex, err)
	}
	values := make([]interface{}, len(cells))
	for i, v := range cells {
		values[i] = v
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowIndex, err)
	}
	return nil
}
