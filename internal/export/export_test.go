package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/Rana718/arcadia/internal/database/common"
	"github.com/Rana718/arcadia/internal/database/sqlite"
	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/generator"
)

var fixedNow = time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

func sampleTables(t *testing.T) map[string]*dataset.Table {
	t.Helper()
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = time.Now })

	g := generator.New(generator.WithSeed(3), generator.WithClock(func() time.Time { return fixedNow }))
	return map[string]*dataset.Table{
		dataset.SpendData:       g.SpendTable(20),
		dataset.Contracts:       g.ContractTable(5),
		dataset.OpportunityData: g.OpportunityTable(),
	}
}

func TestOrderedNames(t *testing.T) {
	tables := map[string]*dataset.Table{
		"zeta":            {},
		dataset.Contracts: {},
		dataset.SpendData: {},
		"alpha":           {},
		"skipped":         nil,
	}
	assert.Equal(t, []string{dataset.SpendData, dataset.Contracts, "alpha", "zeta"}, orderedNames(tables))
}

func TestWriteJSON(t *testing.T) {
	tables := sampleTables(t)
	dir := t.TempDir()

	path, err := Write(context.Background(), tables, dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "export_2025-09-15_10-00-00.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2025-09-15 10:00:00", doc.Timestamp)
	require.Contains(t, doc.Tables, dataset.SpendData)
	assert.Equal(t, 20, doc.Tables[dataset.SpendData].Len())

	orig, _ := tables[dataset.Contracts].Time(0, "start_date")
	got, ok := doc.Tables[dataset.Contracts].Time(0, "start_date")
	require.True(t, ok)
	assert.True(t, orig.Equal(got))
}

func TestWriteCSV(t *testing.T) {
	tables := sampleTables(t)
	path, err := Write(context.Background(), tables, t.TempDir(), FormatCSV)
	require.NoError(t, err)

	entries, err := os.ReadDir(path)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	f, err := os.Open(filepath.Join(path, dataset.OpportunityData+".csv"))
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 11)
	assert.Equal(t, dataset.OpportunitySchema.ColumnNames(), records[0])
	steps := records[1][len(records[1])-1]
	assert.Contains(t, steps, dataset.ListSeparator)
}

func TestWriteYAML(t *testing.T) {
	tables := sampleTables(t)
	path, err := Write(context.Background(), tables, t.TempDir(), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, ".yaml", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc yamlDocument
	require.NoError(t, yaml.Unmarshal(data, &doc))
	spend := doc.Tables[dataset.SpendData]
	assert.Equal(t, dataset.SpendSchema.ColumnNames(), spend.Columns)
	require.Len(t, spend.Rows, 20)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, spend.Rows[0]["date"])

	opp := doc.Tables[dataset.OpportunityData]
	steps, ok := opp.Rows[0]["steps"].([]interface{})
	require.True(t, ok, "list cells stay sequences")
	assert.NotEmpty(t, steps)
}

func TestWriteXLSX(t *testing.T) {
	tables := sampleTables(t)
	path, err := Write(context.Background(), tables, t.TempDir(), FormatXLSX)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{dataset.SpendData, dataset.Contracts, dataset.OpportunityData}, f.GetSheetList())

	rows, err := f.GetRows(dataset.Contracts)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, dataset.ContractSchema.ColumnNames(), rows[0])
	assert.Equal(t, tables[dataset.Contracts].Text(0, "supplier"), rows[1][1])

	styleID, err := f.GetCellStyle(dataset.Contracts, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	assert.True(t, style.Font.Bold)
}

func TestWriteSQLite(t *testing.T) {
	tables := sampleTables(t)
	path, err := Write(context.Background(), tables, t.TempDir(), FormatSQLite)
	require.NoError(t, err)

	ctx := context.Background()
	db := sqlite.New()
	require.NoError(t, db.Connect(ctx, "sqlite://"+path))
	defer db.Close()

	missing, err := db.MissingTables(ctx, []string{dataset.SpendData, dataset.Contracts, dataset.OpportunityData})
	require.NoError(t, err)
	assert.Empty(t, missing)

	res, err := db.Select(ctx, common.Query{Table: dataset.SpendData, Columns: []string{"invoice_number"}})
	require.NoError(t, err)
	assert.Len(t, res.Rows, 20)
}

func TestWriteUnknownFormat(t *testing.T) {
	_, err := Write(context.Background(), sampleTables(t), t.TempDir(), "parquet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}
