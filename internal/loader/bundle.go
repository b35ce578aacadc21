package loader

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Rana718/arcadia/internal/dataset"
)

const (
	SourceDatabase  = "database"
	SourceSynthetic = "synthetic"
)

// Bundle is one consistent load of every dataset the dashboard reads.
type Bundle struct {
	RunID       uuid.UUID                 `json:"run_id"`
	Source      string                    `json:"source"`
	Reason      string                    `json:"reason,omitempty"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Tables      map[string]*dataset.Table `json:"tables"`
}

func (b *Bundle) Table(name string) (*dataset.Table, error) {
	if t, ok := b.Tables[name]; ok && t != nil {
		return t, nil
	}
	if _, err := dataset.Lookup(name); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s not loaded", dataset.ErrUnknownDataset, name)
}

// Names lists the loaded tables in dataset order.
func (b *Bundle) Names() []string {
	var names []string
	for _, name := range dataset.Names() {
		if _, ok := b.Tables[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// RowCounts is used by the status command and the API index.
func (b *Bundle) RowCounts() map[string]int {
	counts := make(map[string]int, len(b.Tables))
	for name, t := range b.Tables {
		counts[name] = t.Len()
	}
	return counts
}
