package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

func (d DataType) TemplateColumns() []string {
	if !d.valid() {
		return nil
	}
	return append([]string(nil), specs[d].template...)
}

// WriteTemplate writes a CSV header plus one example row for d.
func WriteTemplate(w io.Writer, d DataType) error {
	if !d.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDataType, int(d))
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(specs[d].template); err != nil {
		return err
	}
	if err := cw.Write(specs[d].example); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
