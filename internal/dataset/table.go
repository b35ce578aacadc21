package dataset

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Row is one record keyed by column name, the same shape the database adapters return.
type Row map[string]interface{}

// Table is an ordered set of columns plus rows. Every row carries every column.
type Table struct {
	Name    string
	Columns []Column
	Rows    []Row
}

func NewTable(schema Schema, rows []Row) *Table {
	t := &Table{
		Name:    schema.Name,
		Columns: append([]Column(nil), schema.Columns...),
		Rows:    make([]Row, 0, len(rows)),
	}
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

// FromRecords builds a table out of typed records.
func FromRecords[R interface{ Row() Row }](schema Schema, records []R) *Table {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = r.Row()
	}
	return NewTable(schema, rows)
}

// Append adds a row, filling absent columns with nil.
func (t *Table) Append(r Row) {
	row := make(Row, len(t.Columns))
	for _, c := range t.Columns {
		row[c.Name] = r[c.Name]
	}
	t.Rows = append(t.Rows, row)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// HasColumns returns the names that are missing from the table.
func (t *Table) HasColumns(names ...string) []string {
	var missing []string
	for _, n := range names {
		if _, ok := t.Column(n); !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

func (t *Table) Value(i int, col string) interface{} {
	if i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i][col]
}

func (t *Table) Text(i int, col string) string {
	v := t.Value(i, col)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (t *Table) Float(i int, col string) (float64, bool) {
	v, err := Coerce(KindFloat, t.Value(i, col))
	if err != nil || v == nil {
		return 0, false
	}
	return v.(float64), true
}

func (t *Table) Int(i int, col string) (int64, bool) {
	v, err := Coerce(KindInt, t.Value(i, col))
	if err != nil || v == nil {
		return 0, false
	}
	return v.(int64), true
}

func (t *Table) Time(i int, col string) (time.Time, bool) {
	v, err := Coerce(KindDate, t.Value(i, col))
	if err != nil || v == nil {
		return time.Time{}, false
	}
	return v.(time.Time), true
}

func (t *Table) Bool(i int, col string) (bool, bool) {
	v, err := Coerce(KindBool, t.Value(i, col))
	if err != nil || v == nil {
		return false, false
	}
	return v.(bool), true
}

// Filter returns a new table holding the rows keep accepts.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{Name: t.Name, Columns: append([]Column(nil), t.Columns...)}
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// Distinct returns the sorted distinct string values of a column.
func (t *Table) Distinct(col string) []string {
	seen := make(map[string]struct{})
	for i := range t.Rows {
		if s := t.Text(i, col); s != "" {
			seen[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Values returns one row as a slice in column order.
func (t *Table) Values(i int) []interface{} {
	vals := make([]interface{}, len(t.Columns))
	for j, c := range t.Columns {
		vals[j] = t.Rows[i][c.Name]
	}
	return vals
}

type tableJSON struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func (t *Table) MarshalJSON() ([]byte, error) {
	rows := t.Rows
	if rows == nil {
		rows = []Row{}
	}
	return json.Marshal(tableJSON{Name: t.Name, Columns: t.Columns, Rows: rows})
}

// UnmarshalJSON restores column kinds, so dates come back as time.Time.
func (t *Table) UnmarshalJSON(data []byte) error {
	var raw tableJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Name = raw.Name
	t.Columns = raw.Columns
	t.Rows = make([]Row, 0, len(raw.Rows))
	for i, r := range raw.Rows {
		row := make(Row, len(raw.Columns))
		for _, c := range raw.Columns {
			v, err := Coerce(c.Kind, r[c.Name])
			if err != nil {
				return fmt.Errorf("row %d column %s: %w", i, c.Name, err)
			}
			row[c.Name] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return nil
}
