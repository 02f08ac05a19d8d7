// Package celebrate implements the two-state completion notifier.
//
// The notifier never starts goroutines or timers itself. Firing hands back a
// Ticket that the caller schedules however its event loop schedules things
// (a tea.Tick, a wall-clock poll); the ticket is the timer handle. Only the
// ticket of the current celebration can end it, so a late or duplicated
// expiry cannot cut a newer celebration short.
package celebrate

import "time"

// DefaultDelay is how long a celebration lasts.
const DefaultDelay = 5 * time.Second

type State int

const (
	Idle State = iota
	Celebrating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Celebrating:
		return "celebrating"
	default:
		return "unknown"
	}
}

// Ticket identifies one celebration.
type Ticket struct {
	Gen      uint64
	Deadline time.Time
}

// Notifier is not safe for concurrent use; it belongs to a single event loop.
type Notifier struct {
	delay    time.Duration
	state    State
	gen      uint64
	deadline time.Time
}

func New(delay time.Duration) *Notifier {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Notifier{delay: delay}
}

func (n *Notifier) State() State         { return n.state }
func (n *Notifier) Delay() time.Duration { return n.delay }
func (n *Notifier) Celebrating() bool    { return n.state == Celebrating }

// Deadline is the moment the current celebration ends; zero when idle.
func (n *Notifier) Deadline() time.Time {
	if n.state != Celebrating {
		return time.Time{}
	}
	return n.deadline
}

// Fire moves idle -> celebrating. It reports false (and no ticket) when a
// celebration is already running.
func (n *Notifier) Fire(now time.Time) (Ticket, bool) {
	if n.state == Celebrating {
		return Ticket{}, false
	}
	n.gen++
	n.state = Celebrating
	n.deadline = now.Add(n.delay)
	return Ticket{Gen: n.gen, Deadline: n.deadline}, true
}

// Expire ends the celebration the ticket belongs to. Stale tickets are ignored.
func (n *Notifier) Expire(t Ticket) bool {
	if n.state != Celebrating || t.Gen != n.gen {
		return false
	}
	n.reset()
	return true
}

// Poll expires the current celebration once now has reached its deadline.
// It is the clock-driven alternative to delivering the ticket back.
func (n *Notifier) Poll(now time.Time) bool {
	if n.state != Celebrating || now.Before(n.deadline) {
		return false
	}
	n.reset()
	return true
}

// Cancel drops any running celebration and invalidates its ticket.
func (n *Notifier) Cancel() {
	if n.state == Celebrating {
		n.reset()
	}
}

func (n *Notifier) reset() {
	n.state = Idle
	n.deadline = time.Time{}
}
