package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// Renderers receive a Theme value; there is no package-level current theme.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help                          lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	SymDelete                string

	// Confetti is the particle palette; an empty palette renders uncolored.
	Confetti []lipgloss.Color
	// Glyphs are the particle shapes.
	Glyphs []rune
}

// Themes lists the names ThemeNamed understands.
var Themes = []string{"classic", "neon", "mono"}

// ThemeNamed returns a theme; unknown names get classic.
func ThemeNamed(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Name = "neon"
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13"))
		t.BorderColor = lipgloss.Color("13")
		t.BoxUnchecked, t.BoxChecked = "◻", "◼"
		t.Confetti = []lipgloss.Color{"13", "14", "11", "10", "12"}
		t.Glyphs = []rune{'*', '+', '•', '◆', '✦'}
		return t
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:         "mono",
			Title:        plain.Bold(true),
			Muted:        plain,
			Accent:       plain,
			Success:      plain,
			Error:        plain.Bold(true),
			Pending:      plain,
			Selected:     plain.Reverse(true),
			Done:         plain.Strikethrough(true),
			Help:         plain,
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.NoColor{},
			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
			SymDone:      "x",
			SymPending:   "-",
			SymDelete:    "x",
			Glyphs:       []rune{'*', '+', '.', 'o'},
		}
	default:
		return classic()
	}
}

func classic() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("8"),
		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		SymDone:      "✔",
		SymPending:   "•",
		SymDelete:    "✖",
		Confetti:     []lipgloss.Color{"196", "214", "226", "42", "39", "171"},
		Glyphs:       []rune{'*', '+', '•', '◆', '▪', '✦'},
	}
}

// DisableColor forces plain ASCII output for every style.
func DisableColor() { lipgloss.SetColorProfile(termenv.Ascii) }
