// Package service runs the raffle's use cases on top of the in-memory
// repositories.  A Session is built once at startup and owns every piece
// of mutable state: the ticket pool, the sales ledger, the current price
// and the reservations awaiting confirmation.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/house-raffle/internal/config"
	"github.com/iliyamo/house-raffle/internal/model"
	"github.com/iliyamo/house-raffle/internal/queue"
	"github.com/iliyamo/house-raffle/internal/repository"
)

// Session is the single application object of a raffle run.  It is not
// safe for concurrent use; the console drives it from one goroutine.
type Session struct {
	Pool   *repository.TicketPool
	Ledger *repository.SalesLedger

	logger     *logrus.Logger
	publisher  queue.Publisher
	now        func() time.Time
	priceCents int64
	maxPerSale int
	open       map[string]model.Reservation
}

// SessionProperty groups the collaborators of a Session.  Zero values
// are replaced with defaults: a discarding logger and publisher and
// time.Now.
type SessionProperty struct {
	Config    config.Config
	Logger    *logrus.Logger
	Publisher queue.Publisher
	Now       func() time.Time
}

// Stats summarises the session for the menu header and listings.
type Stats struct {
	Issued       int
	Available    int
	Customers    int
	Sales        int
	TicketsSold  int
	RevenueCents int64
	PercentSold  float64
}

// NewSession builds a Session with a full pool and an empty ledger.
func NewSession(props SessionProperty) *Session {
	logger := props.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}
	pub := props.Publisher
	if pub == nil {
		pub = queue.Discard{}
	}
	now := props.Now
	if now == nil {
		now = time.Now
	}
	price := props.Config.TicketPriceCents
	if price <= 0 {
		price = config.DefaultTicketPriceCents
	}
	maxPer := props.Config.MaxTicketsPerSale
	if maxPer < 1 {
		maxPer = config.DefaultMaxTicketsPerSale
	}
	return &Session{
		Pool:       repository.NewTicketPool(props.Config.Seed),
		Ledger:     repository.NewSalesLedger(now),
		logger:     logger,
		publisher:  pub,
		now:        now,
		priceCents: price,
		maxPerSale: maxPer,
		open:       make(map[string]model.Reservation),
	}
}

// PriceCents returns the current ticket price.
func (s *Session) PriceCents() int64 { return s.priceCents }

// MaxPerSale returns the largest ticket count a single sale may request.
func (s *Session) MaxPerSale() int { return s.maxPerSale }

// SetPriceCents changes the price used by reservations opened from now
// on.  Open reservations keep their price.  Non-positive prices yield
// ErrInvalidPrice.
func (s *Session) SetPriceCents(cents int64) error {
	if cents <= 0 {
		return fmt.Errorf("%w: %d cents", repository.ErrInvalidPrice, cents)
	}
	old := s.priceCents
	s.priceCents = cents
	s.logger.WithFields(logrus.Fields{"old_cents": old, "new_cents": cents}).Info("ticket price changed")
	return nil
}

// RegisterCustomer adds a customer to the ledger.
func (s *Session) RegisterCustomer(name, nationalID, phone string) (model.Customer, error) {
	c, err := s.Ledger.RegisterCustomer(name, nationalID, phone)
	if err != nil {
		s.logger.WithError(err).WithField("national_id", nationalID).Debug("customer rejected")
		return model.Customer{}, err
	}
	s.logger.WithField("national_id", c.NationalID).Info("customer registered")
	return c, nil
}

// BeginSale draws count numbers for the customer at the 1-based
// position pos and returns the pending reservation.  The numbers count
// as issued until Confirm or Cancel is called.
func (s *Session) BeginSale(pos, count int) (model.Reservation, error) {
	if s.Ledger.CustomerCount() == 0 {
		return model.Reservation{}, repository.ErrNoCustomers
	}
	customer, err := s.Ledger.CustomerAt(pos)
	if err != nil {
		return model.Reservation{}, err
	}
	if count < 1 || count > s.maxPerSale {
		return model.Reservation{}, fmt.Errorf("%w: %d (must be between 1 and %d)", repository.ErrInvalidQuantity, count, s.maxPerSale)
	}
	numbers, err := s.Pool.Reserve(count)
	if err != nil {
		s.logger.WithError(err).WithField("requested", count).Warn("reservation refused")
		return model.Reservation{}, err
	}
	res := model.Reservation{
		ID:         uuid.NewString(),
		Customer:   customer,
		Numbers:    numbers,
		PriceCents: s.priceCents,
		CreatedAt:  s.now(),
	}
	s.open[res.ID] = res
	s.logger.WithFields(logrus.Fields{
		"reservation_id": res.ID,
		"national_id":    customer.NationalID,
		"tickets":        len(numbers),
	}).Info("numbers reserved")
	return res, nil
}

// Confirm commits an open reservation as a sale and publishes a
// SaleConfirmedEvent.  A publishing failure is logged and does not undo
// the sale.  Closed or unknown reservations yield ErrReservationClosed.
func (s *Session) Confirm(ctx context.Context, res model.Reservation) (model.Sale, error) {
	pending, ok := s.open[res.ID]
	if !ok {
		return model.Sale{}, fmt.Errorf("%w: %s", repository.ErrReservationClosed, res.ID)
	}
	delete(s.open, res.ID)
	sale := s.Ledger.CommitSale(pending.Customer, pending.Tickets())
	s.logger.WithFields(logrus.Fields{
		"reservation_id": pending.ID,
		"sale_id":        sale.ID,
		"total_cents":    sale.TotalCents,
	}).Info("sale committed")

	ev := queue.SaleConfirmedEvent{
		SaleID:        sale.ID,
		ReservationID: pending.ID,
		CustomerName:  sale.Customer.Name,
		NationalID:    sale.Customer.NationalID,
		Numbers:       sale.TicketNumbers(),
		PriceCents:    pending.PriceCents,
		TotalCents:    sale.TotalCents,
		ConfirmedAt:   sale.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishSaleConfirmed(ctx, ev); err != nil {
		s.logger.WithError(err).WithField("sale_id", sale.ID).Warn("publish sale confirmed failed")
	}
	return sale, nil
}

// Cancel returns an open reservation's numbers to the pool.  Closed or
// unknown reservations yield ErrReservationClosed.
func (s *Session) Cancel(res model.Reservation) error {
	pending, ok := s.open[res.ID]
	if !ok {
		return fmt.Errorf("%w: %s", repository.ErrReservationClosed, res.ID)
	}
	delete(s.open, res.ID)
	released := s.Pool.Release(pending.Numbers)
	s.logger.WithFields(logrus.Fields{
		"reservation_id": pending.ID,
		"released":       released,
	}).Info("reservation cancelled")
	return nil
}

// OpenReservations returns how many reservations await confirmation.
func (s *Session) OpenReservations() int { return len(s.open) }

// Stats returns the current counters of the session.
func (s *Session) Stats() Stats {
	issued := s.Pool.IssuedCount()
	return Stats{
		Issued:       issued,
		Available:    s.Pool.AvailableCount(),
		Customers:    s.Ledger.CustomerCount(),
		Sales:        s.Ledger.SaleCount(),
		TicketsSold:  s.Ledger.TotalTicketsSold(),
		RevenueCents: s.Ledger.TotalRevenue(),
		PercentSold:  float64(issued) * 100 / float64(repository.PoolCapacity),
	}
}
