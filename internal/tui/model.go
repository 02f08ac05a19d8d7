// Package tui is the interactive shopping-list screen.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/shoplist/internal/celebrate"
	"github.com/Makepad-fr/shoplist/internal/shoplist"
	"github.com/Makepad-fr/shoplist/internal/ui"
)

const frameInterval = 80 * time.Millisecond

type focus int

const (
	focusName focus = iota
	focusShop
	focusCategory
	focusButton
	focusTable
	focusCount
)

type alertKind int

const (
	alertNone alertKind = iota
	alertValidation
	alertCelebration
)

// celebrationOverMsg carries the ticket of the celebration whose delay ran out.
type celebrationOverMsg struct{ ticket celebrate.Ticket }

// frameMsg advances the confetti of one celebration.
type frameMsg struct{ gen uint64 }

// Options configure the screen.
type Options struct {
	Session  *shoplist.Session
	Theme    ui.Theme
	Messages ui.Messages
	// Now defaults to time.Now.
	Now func() time.Time
	// Seed drives the confetti animation.
	Seed uint64
}

// Model implements tea.Model.
type Model struct {
	session *shoplist.Session
	theme   ui.Theme
	msgs    ui.Messages
	keys    keyMap
	help    help.Model
	now     func() time.Time

	name     textinput.Model
	shop     selector
	category selector
	table    table.Model
	focus    focus

	alert     alertKind
	alertText string

	ticket   celebrate.Ticket
	confetti *ui.Confetti

	width, height int
}

func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	cat := opts.Session.List().Catalog()

	m := Model{
		session:  opts.Session,
		theme:    opts.Theme,
		msgs:     opts.Messages,
		keys:     defaultKeys(),
		help:     help.New(),
		now:      now,
		shop:     newSelector(opts.Messages.SelectShop, cat.Shops),
		category: newSelector(opts.Messages.SelectCategory, cat.Categories),
		confetti: ui.NewConfetti(opts.Theme, opts.Seed),
		width:    80,
		height:   24,
	}

	m.name = textinput.New()
	m.name.Prompt = "> "
	m.name.Placeholder = opts.Messages.NamePlaceholder
	m.name.CharLimit = 200
	m.name.Width = 24
	m.name.Focus()

	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithHeight(m.tableHeight()),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(opts.Theme.BorderColor).
		BorderBottom(true).
		Bold(true)
	st.Selected = opts.Theme.Selected
	m.table.SetStyles(st)
	m.refreshRows()
	return m
}

func (m Model) columns() []table.Column {
	return []table.Column{
		{Title: m.msgs.ColID, Width: 8},
		{Title: m.msgs.ColName, Width: 22},
		{Title: m.msgs.ColShop, Width: 10},
		{Title: m.msgs.ColCategory, Width: 12},
		{Title: m.msgs.ColActions, Width: 30},
	}
}

func (m Model) tableHeight() int {
	h := m.height - 12
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) refreshRows() {
	products := m.session.List().Products()
	rows := make([]table.Row, 0, len(products))
	for _, p := range products {
		box := m.theme.BoxUnchecked
		if p.Bought {
			box = m.theme.BoxChecked
		}
		rows = append(rows, table.Row{
			shortID(p.ID),
			box + " " + p.Name,
			p.Shop,
			p.Category,
			"[" + m.msgs.ToggleLabel(p.Bought) + "] " + m.theme.SymDelete,
		})
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(m.tableHeight())
		m.help.Width = msg.Width
		if m.session.Celebration() == celebrate.Celebrating {
			m.confetti.Resize(m.width, m.confettiHeight())
		}
		return m, nil

	case celebrationOverMsg:
		if m.session.Expire(msg.ticket) {
			if m.alert == alertCelebration {
				m.closeAlert()
			}
		}
		return m, nil

	case frameMsg:
		if msg.gen != m.ticket.Gen || m.session.Celebration() != celebrate.Celebrating {
			return m, nil
		}
		m.confetti.Step()
		return m, frame(msg.gen)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.session.Close()
		return m, tea.Quit
	}

	// blocking notification: only dismissal gets through
	if m.alert != alertNone {
		if key.Matches(msg, m.keys.Dismiss) {
			m.closeAlert()
			if m.session.Celebration() == celebrate.Celebrating {
				m.confetti.Resize(m.width, m.confettiHeight())
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd
	}

	switch m.focus {
	case focusName:
		if key.Matches(msg, m.keys.Submit) {
			return m.submit()
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		m.session.SetName(m.name.Value())
		return m, cmd

	case focusShop, focusCategory:
		sel := &m.shop
		set := m.session.SetShopID
		if m.focus == focusCategory {
			sel = &m.category
			set = m.session.SetCategoryID
		}
		switch {
		case key.Matches(msg, m.keys.Left):
			sel.Prev()
			set(sel.Value())
		case key.Matches(msg, m.keys.Right):
			sel.Next()
			set(sel.Value())
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
		return m, nil

	case focusButton:
		if key.Matches(msg, m.keys.Submit) || msg.String() == " " {
			return m.submit()
		}
		return m, nil

	case focusTable:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.session.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m.toggleSelected()
		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		}
	}

	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	if f == focusName {
		cmd = m.name.Focus()
	} else {
		m.name.Blur()
	}
	if f == focusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
	return cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if _, err := m.session.Add(); err != nil {
		m.openAlert(alertValidation, m.addErrorText(err))
		return m, nil
	}
	m.name.SetValue("")
	m.shop.Reset()
	m.category.Reset()
	m.refreshRows()
	m.table.SetCursor(len(m.table.Rows()) - 1)
	return m, nil
}

func (m Model) addErrorText(err error) string {
	switch {
	case errors.Is(err, shoplist.ErrUnknownShop):
		return m.msgs.UnknownShop
	case errors.Is(err, shoplist.ErrUnknownCategory):
		return m.msgs.UnknownCategory
	default:
		return m.msgs.FillAllFields
	}
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	p, ok := m.session.List().At(m.table.Cursor())
	if !ok {
		return m, nil
	}
	now := m.now()
	res := m.session.Toggle(p.ID, now)
	m.refreshRows()
	if !res.Celebrated {
		return m, nil
	}

	m.ticket = res.Ticket
	m.openAlert(alertCelebration, m.msgs.ShoppingComplete)
	m.confetti.Resize(m.width, m.confettiHeight())
	return m, tea.Batch(expireAfter(res.Ticket, res.Ticket.Deadline.Sub(now)), frame(res.Ticket.Gen))
}

func (m *Model) deleteSelected() {
	p, ok := m.session.List().At(m.table.Cursor())
	if !ok {
		return
	}
	m.session.Delete(p.ID)
	m.refreshRows()
}

func (m *Model) openAlert(kind alertKind, text string) {
	m.alert = kind
	m.alertText = text
}

func (m *Model) closeAlert() {
	m.alert = alertNone
	m.alertText = ""
}

func expireAfter(t celebrate.Ticket, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return celebrationOverMsg{ticket: t} })
}

func frame(gen uint64) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

// confettiHeight is the whole screen behind the modal, a strip once the
// modal has been dismissed.
func (m Model) confettiHeight() int {
	if m.alert == alertCelebration {
		return m.height
	}
	return 3
}

// Run starts the program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
