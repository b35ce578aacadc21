package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/Rana718/arcadia/internal/database/sqlite"
	"github.com/Rana718/arcadia/internal/dataset"
)

const (
	FormatJSON   = "json"
	FormatCSV    = "csv"
	FormatYAML   = "yaml"
	FormatXLSX   = "xlsx"
	FormatSQLite = "sqlite"
)

var Formats = []string{FormatJSON, FormatCSV, FormatYAML, FormatXLSX, FormatSQLite}

const sqliteBatch = 200

var now = time.Now

type Document struct {
	Timestamp string                    `json:"timestamp"`
	Version   string                    `json:"version"`
	Comment   string                    `json:"comment"`
	Tables    map[string]*dataset.Table `json:"tables"`
}

// Write exports tables under dir and returns the written file or directory.
// An empty format means json.
func Write(ctx context.Context, tables map[string]*dataset.Table, dir, format string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	stamp := now()
	switch format {
	case "", FormatJSON:
		return exportToJSON(tables, dir, stamp)
	case FormatCSV:
		return exportToCSV(tables, dir, stamp)
	case FormatYAML, "yml":
		return exportToYAML(tables, dir, stamp)
	case FormatXLSX:
		return exportToXLSX(tables, dir, stamp)
	case FormatSQLite:
		return exportToSQLite(ctx, tables, dir, stamp)
	default:
		return "", fmt.Errorf("unsupported export format: %s. Supported formats: %v", format, Formats)
	}
}

// orderedNames lists known datasets first in their usual order, then anything else by name.
func orderedNames(tables map[string]*dataset.Table) []string {
	var names []string
	seen := make(map[string]bool, len(tables))
	for _, name := range dataset.Names() {
		if t, ok := tables[name]; ok && t != nil {
			names = append(names, name)
			seen[name] = true
		}
	}
	var extra []string
	for name, t := range tables {
		if !seen[name] && t != nil {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

func fileName(stamp time.Time, ext string) string {
	return fmt.Sprintf("export_%s%s", stamp.Format("2006-01-02_15-04-05"), ext)
}

func exportToJSON(tables map[string]*dataset.Table, dir string, stamp time.Time) (string, error) {
	filePath := filepath.Join(dir, fileName(stamp, ".json"))

	doc := Document{
		Timestamp: stamp.Format("2006-01-02 15:04:05"),
		Version:   "1.0",
		Comment:   "Procurement dataset export",
		Tables:    tables,
	}
	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return filePath, nil
}

// cellText renders a cell for text formats; nil becomes "".
func cellText(kind dataset.Kind, v interface{}) string {
	flat := dataset.Flatten(kind, v)
	if flat == nil {
		return ""
	}
	return fmt.Sprintf("%v", flat)
}

func exportToCSV(tables map[string]*dataset.Table, dir string, stamp time.Time) (string, error) {
	dirPath := filepath.Join(dir, fileName(stamp, "_csv"))
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create CSV directory: %w", err)
	}

	for _, name := range orderedNames(tables) {
		if err := writeCSV(filepath.Join(dirPath, name+".csv"), tables[name]); err != nil {
			return "", fmt.Errorf("failed to write CSV file for %s: %w", name, err)
		}
	}
	return dirPath, nil
}

func writeCSV(path string, table *dataset.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.ColumnNames()); err != nil {
		return err
	}
	for _, row := range table.Rows {
		values := make([]string, len(table.Columns))
		for i, c := range table.Columns {
			values[i] = cellText(c.Kind, row[c.Name])
		}
		if err := writer.Write(values); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

type yamlTable struct {
	Columns []string                 `yaml:"columns"`
	Rows    []map[string]interface{} `yaml:"rows"`
}

type yamlDocument struct {
	Timestamp string               `yaml:"timestamp"`
	Version   string               `yaml:"version"`
	Tables    map[string]yamlTable `yaml:"tables"`
}

func exportToYAML(tables map[string]*dataset.Table, dir string, stamp time.Time) (string, error) {
	filePath := filepath.Join(dir, fileName(stamp, ".yaml"))

	doc := yamlDocument{
		Timestamp: stamp.Format("2006-01-02 15:04:05"),
		Version:   "1.0",
		Tables:    make(map[string]yamlTable, len(tables)),
	}
	for _, name := range orderedNames(tables) {
		t := tables[name]
		yt := yamlTable{Columns: t.ColumnNames(), Rows: make([]map[string]interface{}, 0, t.Len())}
		for _, row := range t.Rows {
			out := make(map[string]interface{}, len(t.Columns))
			for _, c := range t.Columns {
				v := row[c.Name]
				// lists stay sequences, dates become text
				if c.Kind == dataset.KindDate {
					v = dataset.Flatten(c.Kind, v)
				}
				out[c.Name] = v
			}
			yt.Rows = append(yt.Rows, out)
		}
		doc.Tables[name] = yt
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return filePath, nil
}

func exportToXLSX(tables map[string]*dataset.Table, dir string, stamp time.Time) (string, error) {
	filePath := filepath.Join(dir, fileName(stamp, ".xlsx"))

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create header style: %w", err)
	}

	names := orderedNames(tables)
	for i, name := range names {
		sheet := name
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return "", err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return "", fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		t := tables[name]
		for j, h := range t.ColumnNames() {
			col, _ := excelize.ColumnNumberToName(j + 1)
			cell := col + "1"
			f.SetCellValue(sheet, cell, h)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
		for r, row := range t.Rows {
			values := make([]interface{}, len(t.Columns))
			for j, c := range t.Columns {
				values[j] = dataset.Flatten(c.Kind, row[c.Name])
			}
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return "", fmt.Errorf("failed to write %s row %d: %w", name, r+1, err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return filePath, nil
}

func exportToSQLite(ctx context.Context, tables map[string]*dataset.Table, dir string, stamp time.Time) (string, error) {
	filePath := filepath.Join(dir, fileName(stamp, ".db"))

	db := sqlite.New()
	if err := db.Connect(ctx, "sqlite://"+filePath); err != nil {
		return "", fmt.Errorf("failed to create SQLite database: %w", err)
	}
	defer db.Close()

	for _, name := range orderedNames(tables) {
		t := tables[name]
		if err := db.EnsureTable(ctx, name, t.Columns); err != nil {
			return "", fmt.Errorf("failed to create table %s: %w", name, err)
		}
		for start := 0; start < t.Len(); start += sqliteBatch {
			end := start + sqliteBatch
			if end > t.Len() {
				end = t.Len()
			}
			rows := make([][]interface{}, 0, end-start)
			for i := start; i < end; i++ {
				rows = append(rows, t.Values(i))
			}
			if err := db.InsertBatch(ctx, name, t.Columns, rows); err != nil {
				return "", fmt.Errorf("failed to insert into %s: %w", name, err)
			}
		}
	}

	return filePath, nil
}
