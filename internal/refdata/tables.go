package refdata

import "github.com/Rana718/arcadia/internal/dataset"

// SupplierTable renders the supplier reference list with its explicit tiers.
func (u *Universe) SupplierTable() *dataset.Table {
	rows := make([]dataset.Row, len(u.suppliers))
	for i, s := range u.suppliers {
		rows[i] = dataset.Row{"name": s.Name, "tier": s.Tier.Label(), "position": int64(s.Position)}
	}
	return dataset.NewTable(dataset.SupplierSchema, rows)
}

func (u *Universe) CategoryTable() *dataset.Table {
	rows := make([]dataset.Row, len(u.categories))
	for i, c := range u.categories {
		rows[i] = dataset.Row{
			"name":          c.Name,
			"subcategories": append([]string(nil), c.Subcategories...),
			"weight":        c.Weight,
		}
	}
	return dataset.NewTable(dataset.CategorySchema, rows)
}
