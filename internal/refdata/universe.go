package refdata

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrDuplicateSupplier = errors.New("duplicate supplier name")
	ErrEmptyUniverse     = errors.New("reference universe is incomplete")
)

// Tier is a supplier's position-derived strategic bucket.
type Tier int

const (
	TierPrime Tier = iota + 1
	TierMajorSub
	TierSpecialty
)

func (t Tier) Label() string {
	switch t {
	case TierPrime:
		return "Tier 1 (Prime)"
	case TierMajorSub:
		return "Tier 2 (Major Sub)"
	default:
		return "Tier 3 (Specialty)"
	}
}

func (t Tier) String() string { return t.Label() }

// ParseTier accepts either a label or a bare tier number.
func ParseTier(s string) (Tier, bool) {
	s = strings.TrimSpace(s)
	for _, t := range []Tier{TierPrime, TierMajorSub, TierSpecialty} {
		if s == t.Label() || s == fmt.Sprint(int(t)) || strings.HasPrefix(s, fmt.Sprintf("Tier %d", int(t))) {
			return t, true
		}
	}
	return 0, false
}

type Supplier struct {
	Name     string
	Position int
	Tier     Tier
}

type Category struct {
	Name          string
	Weight        float64
	Subcategories []string
}

// Boundaries split the ordered supplier list: [0,Prime) prime, [Prime,MajorSub) major sub,
// the rest specialty.
type Boundaries struct {
	Prime    int
	MajorSub int
}

var DefaultBoundaries = Boundaries{Prime: 5, MajorSub: 15}

func (b Boundaries) Clamp(n int) Boundaries {
	if b.Prime > n {
		b.Prime = n
	}
	if b.Prime < 0 {
		b.Prime = 0
	}
	if b.MajorSub > n {
		b.MajorSub = n
	}
	if b.MajorSub < b.Prime {
		b.MajorSub = b.Prime
	}
	return b
}

func (b Boundaries) TierAt(position int) Tier {
	switch {
	case position < b.Prime:
		return TierPrime
	case position < b.MajorSub:
		return TierMajorSub
	default:
		return TierSpecialty
	}
}

// Universe is the immutable reference data every generator draws from.
type Universe struct {
	suppliers  []Supplier
	byName     map[string]Supplier
	projects   []string
	categories []Category
	byCategory map[string]Category
	boundaries Boundaries
}

type Option func(*Universe)

func WithBoundaries(b Boundaries) Option {
	return func(u *Universe) { u.boundaries = b }
}

func New(suppliers, projects []string, categories []Category, opts ...Option) (*Universe, error) {
	if len(suppliers) == 0 || len(projects) == 0 || len(categories) == 0 {
		return nil, ErrEmptyUniverse
	}

	u := &Universe{
		byName:     make(map[string]Supplier, len(suppliers)),
		projects:   append([]string(nil), projects...),
		byCategory: make(map[string]Category, len(categories)),
		boundaries: DefaultBoundaries,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.boundaries = u.boundaries.Clamp(len(suppliers))

	for i, name := range suppliers {
		if _, dup := u.byName[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSupplier, name)
		}
		s := Supplier{Name: name, Position: i, Tier: u.boundaries.TierAt(i)}
		u.suppliers = append(u.suppliers, s)
		u.byName[name] = s
	}

	for _, c := range categories {
		if len(c.Subcategories) == 0 {
			return nil, fmt.Errorf("%w: category %q has no subcategories", ErrEmptyUniverse, c.Name)
		}
		if _, dup := u.byCategory[c.Name]; dup {
			return nil, fmt.Errorf("duplicate category %q", c.Name)
		}
		c.Subcategories = append([]string(nil), c.Subcategories...)
		u.categories = append(u.categories, c)
		u.byCategory[c.Name] = c
	}

	return u, nil
}

var (
	defaultOnce     sync.Once
	defaultUniverse *Universe
)

// Default returns the construction procurement universe.
func Default() *Universe {
	defaultOnce.Do(func() {
		u, err := New(defaultSuppliers, defaultProjects, defaultCategories)
		if err != nil {
			panic(fmt.Sprintf("refdata: invalid default universe: %v", err))
		}
		defaultUniverse = u
	})
	return defaultUniverse
}

func (u *Universe) Suppliers() []Supplier {
	return append([]Supplier(nil), u.suppliers...)
}

func (u *Universe) SupplierNames() []string {
	names := make([]string, len(u.suppliers))
	for i, s := range u.suppliers {
		names[i] = s.Name
	}
	return names
}

func (u *Universe) Len() int { return len(u.suppliers) }

func (u *Universe) Lookup(name string) (Supplier, bool) {
	s, ok := u.byName[name]
	return s, ok
}

// TierOf reports the tier of a supplier; names outside the universe are specialty.
func (u *Universe) TierOf(name string) Tier {
	if s, ok := u.byName[name]; ok {
		return s.Tier
	}
	return TierSpecialty
}

// Top returns the first min(n, len) supplier names.
func (u *Universe) Top(n int) []string {
	names := u.SupplierNames()
	if n > len(names) {
		n = len(names)
	}
	if n < 0 {
		n = 0
	}
	return names[:n]
}

// Rest returns the supplier names after the first n.
func (u *Universe) Rest(n int) []string {
	names := u.SupplierNames()
	if n > len(names) {
		n = len(names)
	}
	if n < 0 {
		n = 0
	}
	return names[n:]
}

func (u *Universe) Boundaries() Boundaries { return u.boundaries }

func (u *Universe) Projects() []string {
	return append([]string(nil), u.projects...)
}

func (u *Universe) Categories() []Category {
	out := make([]Category, len(u.categories))
	for i, c := range u.categories {
		c.Subcategories = append([]string(nil), c.Subcategories...)
		out[i] = c
	}
	return out
}

func (u *Universe) CategoryNames() []string {
	names := make([]string, len(u.categories))
	for i, c := range u.categories {
		names[i] = c.Name
	}
	return names
}

func (u *Universe) Subcategories(category string) []string {
	c, ok := u.byCategory[category]
	if !ok {
		return nil
	}
	return append([]string(nil), c.Subcategories...)
}

// CategoryWeights returns the fixed spend mix, or nil when the category set is not
// the standard six and callers should draw uniformly.
func (u *Universe) CategoryWeights() []float64 {
	if len(u.categories) != 6 {
		return nil
	}
	weights := make([]float64, len(u.categories))
	for i, c := range u.categories {
		weights[i] = c.Weight
	}
	return weights
}

func (u *Universe) AlertTypes() []string      { return append([]string(nil), alertTypes...) }
func (u *Universe) InvoicePrefixes() []string { return append([]string(nil), invoicePrefixes...) }
func (u *Universe) PaymentTerms() []string    { return append([]string(nil), paymentTerms...) }

// DefaultSuppliers exposes the stock supplier list for callers building custom universes.
func DefaultSuppliers() []string { return append([]string(nil), defaultSuppliers...) }

func DefaultProjects() []string { return append([]string(nil), defaultProjects...) }

func DefaultCategories() []Category {
	out := make([]Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}
