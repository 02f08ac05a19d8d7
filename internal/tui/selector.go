package tui

import (
	"strconv"

	"github.com/Makepad-fr/shoplist/internal/catalog"
	"github.com/Makepad-fr/shoplist/internal/ui"
)

// selector is a single-select control over a reference table. Position 0
// is the placeholder, meaning nothing is selected.
type selector struct {
	placeholder string
	options     []catalog.Entry
	index       int
}

func newSelector(placeholder string, t catalog.Table) selector {
	return selector{placeholder: placeholder, options: t.Entries()}
}

func (s *selector) Next() { s.index = (s.index + 1) % (len(s.options) + 1) }

func (s *selector) Prev() {
	s.index--
	if s.index < 0 {
		s.index = len(s.options)
	}
}

func (s *selector) Reset() { s.index = 0 }

// Value is the selected id as text, or "" for the placeholder.
func (s *selector) Value() string {
	if s.index == 0 {
		return ""
	}
	return strconv.Itoa(s.options[s.index-1].ID)
}

func (s *selector) Label() string {
	if s.index == 0 {
		return s.placeholder
	}
	return s.options[s.index-1].Name
}

func (s *selector) View(t ui.Theme, focused bool) string {
	label := "‹ " + s.Label() + " ›"
	switch {
	case focused:
		return t.Selected.Render(label)
	case s.index == 0:
		return t.Muted.Render(label)
	default:
		return label
	}
}
