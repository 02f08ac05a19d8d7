package cli

import (
	"fmt"
	"io"

	"github.com/Makepad-fr/shoplist/internal/catalog"
	"github.com/Makepad-fr/shoplist/internal/shoplist"
	"github.com/Makepad-fr/shoplist/internal/ui"
)

// -------------- rendering helpers --------------

func (s *shell) list() {
	t := s.opt.Theme
	l := s.opt.Session.List()
	bought, pending := l.Stats()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(s.opt.Messages.Title),
		t.Success.Render(t.SymDone), bought,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), l.Len(),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(bought, l.Len(), 28)))
	lines = append(lines, "")

	if s.opt.Group {
		lines = append(lines, s.groupLines(l.Products())...)
	} else {
		lines = append(lines, s.flatLines(l.Products(), 1)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `add 1 4 Milk`"))
	t.Fpanel(s.out, lines)
}

func (s *shell) flatLines(products []shoplist.Product, first int) []string {
	t := s.opt.Theme
	if len(products) == 0 {
		return []string{t.Muted.Render(s.opt.Messages.NoProducts)}
	}
	out := make([]string, 0, len(products))
	for i, p := range products {
		idx := fmt.Sprintf("%2d.", first+i)
		box, name := t.Muted.Render(t.BoxUnchecked), p.Name
		if p.Bought {
			box, name = t.Success.Render(t.BoxChecked), t.Done.Render(p.Name)
		}
		if r := []rune(p.Name); len(r) > 60 {
			name = string(r[:57]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s %s",
			t.Muted.Render(idx), box, name,
			t.Muted.Render("· "+p.Shop+" · "+p.Category)))
	}
	return out
}

// groupLines keeps the list numbering so indexes still work with toggle/rm.
func (s *shell) groupLines(products []shoplist.Product) []string {
	t := s.opt.Theme
	var pend, done []string
	for i, p := range products {
		line := s.flatLines([]shoplist.Product{p}, i+1)
		if p.Bought {
			done = append(done, line...)
		} else {
			pend = append(pend, line...)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, pend...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Bought"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, done...)
	}
	return lines
}

func tableLines(t ui.Theme, title string, tbl catalog.Table) []string {
	lines := []string{t.Title.Render(title)}
	for _, e := range tbl.Entries() {
		lines = append(lines, fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%2d", e.ID)), e.Name))
	}
	return lines
}

// PrintCatalog writes both reference tables.
func PrintCatalog(w io.Writer, t ui.Theme, c catalog.Catalog) {
	lines := tableLines(t, "Shops", c.Shops)
	lines = append(lines, "")
	lines = append(lines, tableLines(t, "Categories", c.Categories)...)
	t.Fpanel(w, lines)
}
