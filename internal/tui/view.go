package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/shoplist/internal/celebrate"
	"github.com/Makepad-fr/shoplist/internal/ui"
)

func (m Model) View() string {
	celebrating := m.session.Celebration() == celebrate.Celebrating

	if m.alert == alertCelebration && celebrating {
		return m.confetti.Overlay(m.modal(m.alertText))
	}
	if m.alert == alertValidation {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modal(m.alertText))
	}

	var sections []string
	if celebrating {
		sections = append(sections, m.confetti.View())
	}
	sections = append(sections, m.header(), m.form(), "")
	if m.session.List().Len() == 0 {
		sections = append(sections, m.theme.Muted.Render(m.msgs.NoProducts))
	} else {
		sections = append(sections, m.table.View())
	}
	sections = append(sections, "", m.help.View(m.keys))
	return m.theme.Panel(sections)
}

func (m Model) header() string {
	list := m.session.List()
	bought, pending := list.Stats()
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.theme.Title.Render(m.msgs.Title),
		m.theme.Success.Render(m.theme.SymDone), bought,
		m.theme.Pending.Render(m.theme.SymPending), pending,
		m.theme.Accent.Render("Total"), list.Len(),
	)
	return title + "\n" + m.theme.Muted.Render(ui.ProgressBar(bought, list.Len(), 28))
}

func (m Model) form() string {
	button := "[ " + m.msgs.AddButton + " ]"
	if m.focus == focusButton {
		button = m.theme.Selected.Render(button)
	} else {
		button = m.theme.Accent.Render(button)
	}
	return strings.Join([]string{
		m.name.View(),
		m.shop.View(m.theme, m.focus == focusShop),
		m.category.View(m.theme, m.focus == focusCategory),
		button,
	}, "  ")
}

func (m Model) modal(text string) string {
	body := m.theme.Title.Render(text) + "\n\n" + m.theme.Help.Render(m.msgs.Dismiss)
	return m.theme.Box().Padding(1, 3).Render(body)
}
