// Package cli is the line-oriented front end: it reads one command per line
// and drives the same session the TUI does.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Makepad-fr/shoplist/internal/catalog"
	"github.com/Makepad-fr/shoplist/internal/celebrate"
	"github.com/Makepad-fr/shoplist/internal/shoplist"
	"github.com/Makepad-fr/shoplist/internal/ui"
)

// Exit codes, as in a process: 0 ok, 1 error, 2 usage.
const (
	codeOK    = 0
	codeError = 1
	codeUsage = 2
)

// Options tune the shell.
type Options struct {
	Session  *shoplist.Session
	Theme    ui.Theme
	Messages ui.Messages
	// Now defaults to time.Now.
	Now func() time.Time
	// Group lists products grouped by pending/bought.
	Group bool
	// Prompt is written before each line when non-empty.
	Prompt string
	// Seed drives the confetti printed on completion.
	Seed uint64
}

type shell struct {
	opt Options
	out io.Writer
	err io.Writer
}

// Run executes commands from r until EOF or quit and returns the highest
// exit code any command produced.
func Run(r io.Reader, out, errOut io.Writer, opt Options) int {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	s := &shell{opt: opt, out: out, err: errOut}

	worst := codeOK
	sc := bufio.NewScanner(r)
	for {
		if opt.Prompt != "" {
			fmt.Fprint(out, opt.Prompt)
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, quit := s.exec(strings.Fields(line))
		if code > worst {
			worst = code
		}
		if quit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		s.fail("read: " + err.Error())
		return codeError
	}
	opt.Session.Close()
	return worst
}

func (s *shell) exec(args []string) (code int, quit bool) {
	if s.opt.Session.Poll(s.opt.Now()) {
		fmt.Fprintln(s.out, s.opt.Theme.Muted.Render("(celebration over)"))
	}

	cmd, a := args[0], args[1:]
	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(s.out)
		return codeOK, false

	case "quit", "exit":
		return codeOK, true

	case "ls":
		s.list()
		return codeOK, false

	case "shops":
		s.opt.Theme.Fpanel(s.out, tableLines(s.opt.Theme, "Shops", s.opt.Session.List().Catalog().Shops))
		return codeOK, false

	case "categories":
		s.opt.Theme.Fpanel(s.out, tableLines(s.opt.Theme, "Categories", s.opt.Session.List().Catalog().Categories))
		return codeOK, false

	case "add":
		return s.add(a), false

	case "toggle", "done":
		n, code := s.index(cmd, a)
		if code != codeOK {
			return code, false
		}
		return s.toggle(n), false

	case "rm":
		n, code := s.index(cmd, a)
		if code != codeOK {
			return code, false
		}
		p, _ := s.opt.Session.List().At(n)
		s.opt.Session.Delete(p.ID)
		s.ok("removed " + p.Name)
		return codeOK, false

	case "status":
		s.status()
		return codeOK, false
	}

	s.fail("unknown command: " + cmd)
	fmt.Fprintln(s.err, s.opt.Theme.Muted.Render("Hint: run `help` to see the commands"))
	return codeUsage, false
}

// PrintHelp writes the shell usage.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `shoplist shell - one command per line

Commands:
  add <shop-id> <category-id> <name...>   Add a product (name can be multiple words)
  ls                                      List products
  toggle <index>                          Toggle bought for product at 1-based index
  rm <index>                              Remove product at 1-based index
  shops | categories                      Show the reference tables
  status                                  Show celebration state
  help | quit

Examples:
  add 1 4 Milk
  toggle 1
  rm 2
`)
}

// -------------- commands ----------------

func (s *shell) add(a []string) int {
	sess := s.opt.Session
	sess.List().ClearDraft()
	if len(a) > 0 {
		sess.SetShopID(a[0])
	}
	if len(a) > 1 {
		sess.SetCategoryID(a[1])
	}
	if len(a) > 2 {
		sess.SetName(strings.Join(a[2:], " "))
	}

	p, err := sess.Add()
	if err != nil {
		var verr *shoplist.ValidationError
		switch {
		case errors.As(err, &verr):
			s.fail(s.opt.Messages.FillAllFields)
			fmt.Fprintln(s.err, s.opt.Theme.Muted.Render("usage: add <shop-id> <category-id> <name...>"))
		case errors.Is(err, shoplist.ErrUnknownShop):
			s.fail(s.opt.Messages.UnknownShop + " " + hintIDs(sess.List().Catalog().Shops))
		case errors.Is(err, shoplist.ErrUnknownCategory):
			s.fail(s.opt.Messages.UnknownCategory + " " + hintIDs(sess.List().Catalog().Categories))
		default:
			s.fail("add: " + err.Error())
			return codeError
		}
		return codeUsage
	}
	s.ok(fmt.Sprintf("added %s (%s, %s)", p.Name, p.Shop, p.Category))
	return codeOK
}

func (s *shell) toggle(n int) int {
	p, _ := s.opt.Session.List().At(n)
	res := s.opt.Session.Toggle(p.ID, s.opt.Now())
	state := "not bought"
	if res.Product.Bought {
		state = "bought"
	}
	s.ok(fmt.Sprintf("toggled %s (%s)", res.Product.Name, state))
	if res.Celebrated {
		c := ui.NewConfetti(s.opt.Theme, s.opt.Seed)
		c.Resize(44, 3)
		c.Step()
		fmt.Fprintln(s.out, c.View())
		s.opt.Theme.Fpanel(s.out, []string{s.opt.Theme.Title.Render(s.opt.Messages.ShoppingComplete)})
	}
	return codeOK
}

func (s *shell) status() {
	sess := s.opt.Session
	bought, pending := sess.List().Stats()
	fmt.Fprintf(s.out, "products: %d bought, %d pending\n", bought, pending)
	if sess.Celebration() == celebrate.Celebrating {
		left := sess.CelebrationDeadline().Sub(s.opt.Now()).Round(time.Second)
		fmt.Fprintf(s.out, "celebration: %s (%s left)\n", sess.Celebration(), left)
		return
	}
	fmt.Fprintf(s.out, "celebration: %s\n", sess.Celebration())
}

// index parses a 1-based index argument into a 0-based position.
func (s *shell) index(cmd string, a []string) (int, int) {
	if len(a) != 1 {
		s.fail("usage: " + cmd + " <index>")
		return 0, codeUsage
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		s.fail(cmd + ": not a number: " + a[0])
		return 0, codeUsage
	}
	have := s.opt.Session.List().Len()
	if n < 1 || n > have {
		s.fail(fmt.Sprintf("index out of range: have %d, got %d", have, n))
		fmt.Fprintln(s.err, s.opt.Theme.Muted.Render("Hint: run `ls` to see valid indexes"))
		return 0, codeUsage
	}
	return n - 1, codeOK
}

func (s *shell) ok(msg string)   { s.opt.Theme.OK(s.out, msg) }
func (s *shell) fail(msg string) { s.opt.Theme.Fail(s.err, msg) }

func hintIDs(t catalog.Table) string {
	ids := make([]string, 0, t.Len())
	for _, e := range t.Entries() {
		ids = append(ids, strconv.Itoa(e.ID))
	}
	return "(valid: " + strings.Join(ids, ", ") + ")"
}
