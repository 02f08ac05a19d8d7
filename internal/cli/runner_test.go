package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/shoplist/internal/catalog"
	"github.com/Makepad-fr/shoplist/internal/celebrate"
	"github.com/Makepad-fr/shoplist/internal/shoplist"
	"github.com/Makepad-fr/shoplist/internal/ui"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newSession() *shoplist.Session {
	n := 0
	return shoplist.NewSession(shoplist.Options{
		Catalog: catalog.Default(),
		NewID: func() string {
			n++
			return fmt.Sprintf("p%d", n)
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func runScript(t *testing.T, sess *shoplist.Session, clock *fakeClock, script string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(strings.NewReader(script), &out, &errOut, Options{
		Session:  sess,
		Theme:    ui.ThemeNamed("mono"),
		Messages: ui.MessagesFor("en"),
		Now:      clock.Now,
	})
	return code, out.String(), errOut.String()
}

func TestAddListToggleRemove(t *testing.T) {
	sess := newSession()
	clock := &fakeClock{t: time.Unix(0, 0)}

	code, out, errOut := runScript(t, sess, clock, `
# comment lines are skipped
add 1 4 Milk
add 3 5 Whole wheat bread
toggle 2
ls
rm 1
`)
	assert.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "added Milk (Migros, Bakliyat)")
	assert.Contains(t, out, "added Whole wheat bread (Bim, Fırın)")
	assert.Contains(t, out, "toggled Whole wheat bread (bought)")
	assert.Contains(t, out, "removed Milk")
	assert.Contains(t, out, " 1. [ ] Milk")

	products := sess.List().Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Whole wheat bread", products[0].Name)
	assert.True(t, products[0].Bought)
	assert.Equal(t, celebrate.Idle, sess.Celebration(), "delete does not celebrate")
}

func TestAddValidationFailure(t *testing.T) {
	sess := newSession()
	code, _, errOut := runScript(t, sess, &fakeClock{}, "add 1\n")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Please fill all required fields.")
	assert.Zero(t, sess.List().Len())
}

func TestAddUnknownShop(t *testing.T) {
	sess := newSession()
	code, _, errOut := runScript(t, sess, &fakeClock{}, "add 7 1 Milk\n")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Unknown shop. (valid: 1, 2, 3)")
	assert.Zero(t, sess.List().Len())
}

func TestIndexErrors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr string
	}{
		{name: "missing arg", script: "toggle\n", wantErr: "usage: toggle <index>"},
		{name: "not a number", script: "rm x\n", wantErr: "rm: not a number: x"},
		{name: "out of range", script: "add 1 1 A\ntoggle 5\n", wantErr: "index out of range: have 1, got 5"},
		{name: "unknown command", script: "buy milk\n", wantErr: "unknown command: buy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runScript(t, newSession(), &fakeClock{}, tt.script)
			assert.Equal(t, 2, code)
			assert.Contains(t, errOut, tt.wantErr)
		})
	}
}

func TestCelebrationExpiresWithClock(t *testing.T) {
	sess := newSession()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}

	_, out, _ := runScript(t, sess, clock, "add 1 4 Milk\ntoggle 1\nstatus\n")
	assert.Contains(t, out, "All products purchased, shopping complete.")
	assert.Contains(t, out, "celebration: celebrating (5s left)")
	assert.Equal(t, celebrate.Idle, sess.Celebration(), "session is closed when the shell ends")
}

func TestCelebrationPolledBetweenCommands(t *testing.T) {
	sess := newSession()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}

	var out bytes.Buffer
	s := &shell{
		opt: Options{Session: sess, Theme: ui.ThemeNamed("mono"), Messages: ui.MessagesFor("en"), Now: clock.Now},
		out: &out,
		err: io.Discard,
	}
	s.exec([]string{"add", "1", "4", "Milk"})
	s.exec([]string{"toggle", "1"})
	require.Equal(t, celebrate.Celebrating, sess.Celebration())

	clock.t = clock.t.Add(5 * time.Second)
	s.exec([]string{"status"})
	assert.Equal(t, celebrate.Idle, sess.Celebration())
	assert.Contains(t, out.String(), "(celebration over)")
	assert.Contains(t, out.String(), "celebration: idle")
}

func TestGroupedList(t *testing.T) {
	sess := newSession()
	var out bytes.Buffer
	code := Run(strings.NewReader("add 1 1 A\nadd 1 1 B\ntoggle 1\nls\n"), &out, io.Discard, Options{
		Session:  sess,
		Theme:    ui.ThemeNamed("mono"),
		Messages: ui.MessagesFor("en"),
		Group:    true,
	})
	require.Equal(t, 0, code)

	s := out.String()
	pending := strings.Index(s, "Pending")
	bought := strings.Index(s, "Bought")
	require.True(t, pending >= 0 && bought > pending)
	assert.Contains(t, s[pending:bought], " 2. [ ] B")
	assert.Contains(t, s[bought:], " 1. [x] A")
}

func TestQuitStopsReading(t *testing.T) {
	sess := newSession()
	code, _, _ := runScript(t, sess, &fakeClock{}, "add 1 1 A\nquit\nadd 1 1 B\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, 1, sess.List().Len())
}

func TestPrintCatalog(t *testing.T) {
	var out bytes.Buffer
	PrintCatalog(&out, ui.ThemeNamed("mono"), catalog.Default())
	s := out.String()
	for _, name := range []string{"Shops", "Migros", "Teknosa", "Bim", "Categories", "Şarküteri", "Fırın"} {
		assert.Contains(t, s, name)
	}
	assert.Contains(t, s, " 4 Bakliyat")
}
