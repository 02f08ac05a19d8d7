package shoplist

import (
	"log/slog"
	"time"

	"github.com/Makepad-fr/shoplist/internal/catalog"
	"github.com/Makepad-fr/shoplist/internal/celebrate"
)

// Options configure a Session.
type Options struct {
	Catalog catalog.Catalog
	// CelebrationDelay defaults to celebrate.DefaultDelay.
	CelebrationDelay time.Duration
	// CelebrateEmpty treats an empty list as complete.
	CelebrateEmpty bool
	// LenientLookup resolves unknown reference ids to "" instead of failing.
	LenientLookup bool
	NewID         func() string
	Logger        *slog.Logger
}

// ToggleResult describes what a toggle did.
type ToggleResult struct {
	Product Product
	Found   bool
	// Celebrated is set when this toggle started a celebration; Ticket then
	// identifies it and must be handed back to Expire when its delay elapses.
	Celebrated bool
	Ticket     celebrate.Ticket
}

// Session is the single writer over a List and its completion notifier.
// All methods are meant to be called from one event loop.
type Session struct {
	list           *List
	notifier       *celebrate.Notifier
	celebrateEmpty bool
	logger         *slog.Logger
}

func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		list: NewList(opts.Catalog,
			WithLenientLookup(opts.LenientLookup),
			WithIDGenerator(opts.NewID),
		),
		notifier:       celebrate.New(opts.CelebrationDelay),
		celebrateEmpty: opts.CelebrateEmpty,
		logger:         logger,
	}
}

func (s *Session) List() *List { return s.list }

func (s *Session) SetName(v string)       { s.list.SetName(v) }
func (s *Session) SetShopID(v string)     { s.list.SetShopID(v) }
func (s *Session) SetCategoryID(v string) { s.list.SetCategoryID(v) }

func (s *Session) Add() (Product, error) {
	p, err := s.list.Add()
	if err != nil {
		s.logger.Debug("Add rejected", "error", err)
		return Product{}, err
	}
	s.logger.Debug("Product added",
		"id", p.ID, "name", p.Name, "shop", p.Shop, "category", p.Category)
	return p, nil
}

// Toggle flips a product and then checks the completion predicate. A
// celebration starts only when the predicate holds and none is running.
func (s *Session) Toggle(id string, now time.Time) ToggleResult {
	p, found := s.list.Toggle(id)
	res := ToggleResult{Product: p, Found: found}
	if found {
		s.logger.Debug("Product toggled", "id", p.ID, "bought", p.Bought)
	} else {
		s.logger.Debug("Toggle ignored, no such product", "id", id)
	}

	if !s.list.AllBought(s.celebrateEmpty) {
		return res
	}
	if t, ok := s.notifier.Fire(now); ok {
		res.Celebrated = true
		res.Ticket = t
		s.logger.Info("Shopping complete, celebrating",
			"products", s.list.Len(), "until", t.Deadline.Format(time.RFC3339))
	}
	return res
}

// Delete never triggers the completion check.
func (s *Session) Delete(id string) (Product, bool) {
	p, ok := s.list.Delete(id)
	if ok {
		s.logger.Debug("Product deleted", "id", p.ID, "name", p.Name)
	}
	return p, ok
}

// Expire ends the celebration identified by t.
func (s *Session) Expire(t celebrate.Ticket) bool {
	if s.notifier.Expire(t) {
		s.logger.Debug("Celebration over")
		return true
	}
	return false
}

// Poll ends a celebration whose deadline has passed.
func (s *Session) Poll(now time.Time) bool {
	if s.notifier.Poll(now) {
		s.logger.Debug("Celebration over")
		return true
	}
	return false
}

func (s *Session) Celebration() celebrate.State { return s.notifier.State() }

func (s *Session) CelebrationDeadline() time.Time { return s.notifier.Deadline() }

// Close cancels a running celebration.
func (s *Session) Close() { s.notifier.Cancel() }
