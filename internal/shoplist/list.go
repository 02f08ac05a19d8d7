// Package shoplist is the list state store: the ordered product sequence,
// the pending add-form input, and the session that ties them to the
// completion notifier.
package shoplist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Makepad-fr/shoplist/internal/catalog"
)

var (
	ErrUnknownShop     = errors.New("unknown shop")
	ErrUnknownCategory = errors.New("unknown category")
)

// List holds products in insertion order. Every mutation swaps in a fresh
// slice, so a slice returned by Products is never modified afterwards.
type List struct {
	catalog  catalog.Catalog
	lenient  bool
	newID    func() string
	products []Product
	draft    Draft
}

// ListOption customizes a List.
type ListOption func(*List)

// WithLenientLookup makes unresolvable reference ids resolve to "" instead
// of failing the add.
func WithLenientLookup(on bool) ListOption {
	return func(l *List) { l.lenient = on }
}

// WithIDGenerator replaces the uuid based id source.
func WithIDGenerator(gen func() string) ListOption {
	return func(l *List) {
		if gen != nil {
			l.newID = gen
		}
	}
}

func NewList(c catalog.Catalog, opts ...ListOption) *List {
	l := &List{catalog: c, newID: newID}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *List) Catalog() catalog.Catalog { return l.catalog }

// Draft returns the pending input.
func (l *List) Draft() Draft { return l.draft }

func (l *List) SetName(v string)       { l.draft.Name = v }
func (l *List) SetShopID(v string)     { l.draft.ShopID = v }
func (l *List) SetCategoryID(v string) { l.draft.CategoryID = v }
func (l *List) ClearDraft()            { l.draft = Draft{} }

// Add validates the draft, resolves its reference ids and appends a new,
// unbought product. On any error the list and the draft are left as they were.
func (l *List) Add() (Product, error) {
	d := l.draft
	if missing := d.Missing(); len(missing) > 0 {
		return Product{}, &ValidationError{Missing: missing}
	}

	shop, err := l.resolve(l.catalog.Shops, d.ShopID, ErrUnknownShop)
	if err != nil {
		return Product{}, err
	}
	category, err := l.resolve(l.catalog.Categories, d.CategoryID, ErrUnknownCategory)
	if err != nil {
		return Product{}, err
	}

	p := Product{
		ID:       l.newID(),
		Name:     strings.TrimSpace(d.Name),
		Shop:     shop,
		Category: category,
	}
	next := make([]Product, len(l.products), len(l.products)+1)
	copy(next, l.products)
	l.products = append(next, p)
	l.draft = Draft{}
	return p, nil
}

func (l *List) resolve(t catalog.Table, id string, kind error) (string, error) {
	name, err := t.Resolve(id)
	if err == nil {
		return name, nil
	}
	if l.lenient {
		return "", nil
	}
	return "", fmt.Errorf("%w: %w", kind, err)
}

// Toggle flips Bought on the product with the given id. It reports false,
// leaving the list untouched, when no product matches.
func (l *List) Toggle(id string) (Product, bool) {
	i := l.index(id)
	if i < 0 {
		return Product{}, false
	}
	next := make([]Product, len(l.products))
	copy(next, l.products)
	next[i].Bought = !next[i].Bought
	l.products = next
	return next[i], true
}

// Delete removes the product with the given id, if any.
func (l *List) Delete(id string) (Product, bool) {
	i := l.index(id)
	if i < 0 {
		return Product{}, false
	}
	removed := l.products[i]
	next := make([]Product, 0, len(l.products)-1)
	next = append(next, l.products[:i]...)
	next = append(next, l.products[i+1:]...)
	l.products = next
	return removed, true
}

func (l *List) index(id string) int {
	for i, p := range l.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the product with the given id.
func (l *List) Find(id string) (Product, bool) {
	if i := l.index(id); i >= 0 {
		return l.products[i], true
	}
	return Product{}, false
}

// At returns the product at a 0-based position.
func (l *List) At(i int) (Product, bool) {
	if i < 0 || i >= len(l.products) {
		return Product{}, false
	}
	return l.products[i], true
}

// Products returns the current sequence. Callers must not modify it.
func (l *List) Products() []Product { return l.products }

func (l *List) Len() int { return len(l.products) }

// Stats counts bought and pending products.
func (l *List) Stats() (bought, pending int) {
	for _, p := range l.products {
		if p.Bought {
			bought++
		} else {
			pending++
		}
	}
	return
}

// AllBought is the completion predicate. An empty list only counts as
// complete when allowEmpty is set.
func (l *List) AllBought(allowEmpty bool) bool {
	if len(l.products) == 0 {
		return allowEmpty
	}
	for _, p := range l.products {
		if !p.Bought {
			return false
		}
	}
	return true
}
