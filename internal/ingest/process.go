package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Rana718/arcadia/internal/dataset"
)

// Result is the outcome of one upload. Process never returns an error; failures are described here.
type Result struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	DataType      string         `json:"data_type"`
	Table         *dataset.Table `json:"table,omitempty"`
	RowsProcessed int            `json:"rows_processed"`
	DetectedType  string         `json:"detected_type,omitempty"`
}

func failure(dt DataType, format string, args ...interface{}) Result {
	return Result{Success: false, DataType: dt.String(), Message: fmt.Sprintf(format, args...)}
}

// Process parses a .csv or .xlsx upload declared as dt and validates it.
func Process(filename string, r io.Reader, dt DataType) Result {
	if !dt.valid() {
		return failure(dt, "Error processing file: %v", ErrUnknownDataType)
	}

	header, records, err := read(filename, r)
	if err != nil {
		return failure(dt, "Error processing file: %v", err)
	}
	if len(records) == 0 {
		return failure(dt, "The uploaded file is empty.")
	}

	sp := specs[dt]
	if missing := missingColumns(header, sp.required); len(missing) > 0 {
		res := failure(dt, "Missing required columns: %s.", strings.Join(missing, ", "))
		res.DetectedType = detected(header)
		return res
	}

	table, res := build(dt, header, records)
	if !res.Success {
		return res
	}

	return Result{
		Success:       true,
		DataType:      dt.String(),
		Table:         table,
		RowsProcessed: table.Len(),
		Message:       fmt.Sprintf("Successfully processed %d rows of %s.", table.Len(), dt),
	}
}

func detected(header []string) string {
	if d, ok := Detect(header); ok {
		return d.String()
	}
	return ""
}

func read(filename string, r io.Reader) ([]string, [][]string, error) {
	var rows [][]string
	var err error

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		rows, err = readCSV(r)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(r)
	default:
		return nil, nil, fmt.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var records [][]string
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		records = append(records, row)
	}
	return header, records, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read excel: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read excel: %w", err)
	}
	return rows, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func missingColumns(header, required []string) []string {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	var missing []string
	for _, col := range required {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

// kindOf decides how a header is coerced for dt.
func kindOf(sp spec, col string) dataset.Kind {
	switch {
	case contains(sp.dates, col):
		return dataset.KindDate
	case contains(sp.numeric, col), contains(sp.optional, col):
		return dataset.KindFloat
	case contains(sp.ints, col):
		return dataset.KindInt
	case contains(sp.bools, col):
		return dataset.KindBool
	}
	return dataset.KindText
}

func build(dt DataType, header []string, records [][]string) (*dataset.Table, Result) {
	sp := specs[dt]

	columns := make([]dataset.Column, len(header))
	for i, h := range header {
		columns[i] = dataset.Column{Name: h, Kind: kindOf(sp, h)}
	}
	table := &dataset.Table{Name: sp.table, Columns: columns}

	for _, rec := range records {
		row := make(dataset.Row, len(columns))
		for i, c := range columns {
			var cell string
			if i < len(rec) {
				cell = strings.TrimSpace(rec[i])
			}

			v, err := dataset.Coerce(c.Kind, cell)
			switch {
			case err == nil:
			case c.Kind == dataset.KindDate:
				return nil, failure(dt, "The %s column contains invalid dates. Please use YYYY-MM-DD format.", c.Name)
			case contains(sp.numeric, c.Name):
				return nil, failure(dt, "The %s column contains non-numeric values.", c.Name)
			default:
				v = nil
			}

			if v == nil && c.Kind == dataset.KindDate && contains(sp.required, c.Name) {
				return nil, failure(dt, "The %s column contains invalid dates. Please use YYYY-MM-DD format.", c.Name)
			}
			if v == nil && contains(sp.numeric, c.Name) {
				return nil, failure(dt, "The %s column contains non-numeric values.", c.Name)
			}
			row[c.Name] = v
		}
		table.Rows = append(table.Rows, row)
	}
	return table, Result{Success: true}
}
