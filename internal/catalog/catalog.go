// Package catalog holds the static reference tables (shops, categories)
// that products resolve their display names against.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownID = errors.New("unknown id")
	ErrInvalidID = errors.New("invalid id")
)

// Entry is one row of a reference table.
type Entry struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// Table is an immutable, ordered id -> name mapping.
// The zero value is an empty table.
type Table struct {
	entries []Entry
	byID    map[int]string
}

// NewTable copies entries into a table. Ids must be unique and names non-blank.
func NewTable(entries []Entry) (Table, error) {
	t := Table{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[int]string, len(entries)),
	}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return Table{}, fmt.Errorf("entry %d: blank name", e.ID)
		}
		if _, dup := t.byID[e.ID]; dup {
			return Table{}, fmt.Errorf("entry %d: duplicate id", e.ID)
		}
		t.byID[e.ID] = name
		t.entries = append(t.entries, Entry{ID: e.ID, Name: name})
	}
	return t, nil
}

// MustTable is NewTable for tables known to be valid at compile time.
func MustTable(entries []Entry) Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Entries returns the rows in declaration order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t Table) Len() int { return len(t.entries) }

// Name looks up an entry by numeric id.
func (t Table) Name(id int) (string, bool) {
	name, ok := t.byID[id]
	return name, ok
}

// Resolve parses a selected id (as it arrives from an input control) and
// returns the matching name.
func (t Table) Resolve(id string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	name, ok := t.byID[n]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownID, n)
	}
	return name, nil
}

// Catalog bundles the two reference tables.
type Catalog struct {
	Shops      Table
	Categories Table
}

// DefaultShops and DefaultCategories are the built-in reference data.
var (
	DefaultShops = []Entry{
		{ID: 1, Name: "Migros"},
		{ID: 2, Name: "Teknosa"},
		{ID: 3, Name: "Bim"},
	}
	DefaultCategories = []Entry{
		{ID: 1, Name: "Elektronik"},
		{ID: 2, Name: "Şarküteri"},
		{ID: 3, Name: "Oyuncak"},
		{ID: 4, Name: "Bakliyat"},
		{ID: 5, Name: "Fırın"},
	}
)

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		Shops:      MustTable(DefaultShops),
		Categories: MustTable(DefaultCategories),
	}
}

// New builds a catalog from raw entries, rejecting empty tables.
func New(shops, categories []Entry) (Catalog, error) {
	if len(shops) == 0 {
		return Catalog{}, errors.New("shops: table is empty")
	}
	if len(categories) == 0 {
		return Catalog{}, errors.New("categories: table is empty")
	}
	s, err := NewTable(shops)
	if err != nil {
		return Catalog{}, fmt.Errorf("shops: %w", err)
	}
	c, err := NewTable(categories)
	if err != nil {
		return Catalog{}, fmt.Errorf("categories: %w", err)
	}
	return Catalog{Shops: s, Categories: c}, nil
}
