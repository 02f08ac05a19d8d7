package shoplist

import (
	"errors"
	"strings"
)

// ErrMissingFields is matched by every *ValidationError.
var ErrMissingFields = errors.New("please fill all required fields")

// Field names a pending-input control.
type Field string

const (
	FieldName     Field = "name"
	FieldShop     Field = "shop"
	FieldCategory Field = "category"
)

// Draft is the pending input of the add form. ShopID and CategoryID carry
// the selected reference id as text, empty meaning nothing is selected.
type Draft struct {
	Name       string
	ShopID     string
	CategoryID string
}

// Missing lists the fields that block an add, in form order.
func (d Draft) Missing() []Field {
	var out []Field
	if strings.TrimSpace(d.Name) == "" {
		out = append(out, FieldName)
	}
	if strings.TrimSpace(d.ShopID) == "" {
		out = append(out, FieldShop)
	}
	if strings.TrimSpace(d.CategoryID) == "" {
		out = append(out, FieldCategory)
	}
	return out
}

func (d Draft) Empty() bool { return d == Draft{} }

// ValidationError reports an add that was rejected before touching the list.
type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return ErrMissingFields.Error() + " (missing: " + strings.Join(names, ", ") + ")"
}

func (e *ValidationError) Unwrap() error { return ErrMissingFields }
