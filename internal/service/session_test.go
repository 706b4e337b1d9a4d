package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/house-raffle/internal/config"
	"github.com/iliyamo/house-raffle/internal/model"
	"github.com/iliyamo/house-raffle/internal/queue"
	"github.com/iliyamo/house-raffle/internal/repository"
)

type recordingPublisher struct {
	events []queue.SaleConfirmedEvent
	err    error
}

func (p *recordingPublisher) PublishSaleConfirmed(_ context.Context, ev queue.SaleConfirmedEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

var testNow = time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

func newTestSession(t *testing.T, pub queue.Publisher) *Session {
	t.Helper()
	return NewSession(SessionProperty{
		Config: config.Config{
			TicketPriceCents:  1000,
			MaxTicketsPerSale: 50,
			Seed:              2026,
		},
		Publisher: pub,
		Now:       func() time.Time { return testNow },
	})
}

func registerAna(t *testing.T, s *Session) model.Customer {
	t.Helper()
	c, err := s.RegisterCustomer("Ana", "001", "555-0001")
	require.NoError(t, err)
	return c
}

func TestSession_SellThreeTickets(t *testing.T) {
	pub := &recordingPublisher{}
	s := newTestSession(t, pub)
	registerAna(t, s)

	res, err := s.BeginSale(1, 3)
	require.NoError(t, err)
	assert.Len(t, res.Numbers, 3)
	assert.Equal(t, int64(3000), res.TotalCents())
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, repository.PoolCapacity-3, s.Pool.AvailableCount())

	sale, err := s.Confirm(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), sale.ID)
	assert.Equal(t, int64(3000), sale.TotalCents)
	assert.Len(t, sale.Tickets, 3)
	assert.Equal(t, res.Numbers, sale.TicketNumbers())
	assert.Equal(t, testNow, sale.CreatedAt)
	assert.Equal(t, repository.PoolCapacity-3, s.Pool.AvailableCount())
	assert.Zero(t, s.OpenReservations())

	require.Len(t, pub.events, 1)
	assert.Equal(t, uint64(1), pub.events[0].SaleID)
	assert.Equal(t, res.ID, pub.events[0].ReservationID)
	assert.Equal(t, "2026-03-01T10:30:00Z", pub.events[0].ConfirmedAt)
}

func TestSession_CancelRestoresPoolAndSequence(t *testing.T) {
	s := newTestSession(t, nil)
	registerAna(t, s)

	res, err := s.BeginSale(1, 5)
	require.NoError(t, err)
	require.NoError(t, s.Cancel(res))
	assert.Equal(t, repository.PoolCapacity, s.Pool.AvailableCount())
	assert.Zero(t, s.Ledger.SaleCount())

	for i := 0; i < 3; i++ {
		res, err := s.BeginSale(1, 2)
		require.NoError(t, err)
		require.NoError(t, s.Cancel(res))
	}

	res, err = s.BeginSale(1, 1)
	require.NoError(t, err)
	sale, err := s.Confirm(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), sale.ID)
}

func TestSession_ReservationClosedAfterUse(t *testing.T) {
	s := newTestSession(t, nil)
	registerAna(t, s)

	res, err := s.BeginSale(1, 2)
	require.NoError(t, err)
	require.NoError(t, s.Cancel(res))

	_, err = s.Confirm(context.Background(), res)
	assert.ErrorIs(t, err, repository.ErrReservationClosed)
	assert.ErrorIs(t, s.Cancel(res), repository.ErrReservationClosed)

	res2, err := s.BeginSale(1, 2)
	require.NoError(t, err)
	_, err = s.Confirm(context.Background(), res2)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Cancel(res2), repository.ErrReservationClosed)
	assert.Equal(t, 2, s.Pool.IssuedCount())
}

func TestSession_BeginSaleErrors(t *testing.T) {
	s := newTestSession(t, nil)

	_, err := s.BeginSale(1, 1)
	require.ErrorIs(t, err, repository.ErrNoCustomers)

	registerAna(t, s)

	_, err = s.BeginSale(2, 1)
	assert.ErrorIs(t, err, repository.ErrInvalidSelection)

	for _, n := range []int{0, -1, 51} {
		_, err = s.BeginSale(1, n)
		assert.ErrorIs(t, err, repository.ErrInvalidQuantity)
	}
	assert.Equal(t, repository.PoolCapacity, s.Pool.AvailableCount())
}

func TestSession_CapacityExceeded(t *testing.T) {
	s := newTestSession(t, nil)
	registerAna(t, s)

	_, err := s.Pool.Reserve(repository.PoolCapacity - 10)
	require.NoError(t, err)
	before := s.Pool.AllIssued()

	_, err = s.BeginSale(1, 11)
	require.ErrorIs(t, err, repository.ErrCapacityExceeded)
	assert.Equal(t, before, s.Pool.AllIssued())
	assert.Zero(t, s.OpenReservations())
}

func TestSession_PriceChangeKeepsOpenReservationPrice(t *testing.T) {
	s := newTestSession(t, nil)
	registerAna(t, s)

	res, err := s.BeginSale(1, 2)
	require.NoError(t, err)
	require.NoError(t, s.SetPriceCents(2500))
	assert.Equal(t, int64(2500), s.PriceCents())

	sale, err := s.Confirm(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), sale.TotalCents)

	res, err = s.BeginSale(1, 2)
	require.NoError(t, err)
	sale, err = s.Confirm(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), sale.TotalCents)
	assert.Equal(t, int64(7000), s.Ledger.TotalRevenue())
}

func TestSession_SetPriceRejectsNonPositive(t *testing.T) {
	s := newTestSession(t, nil)
	for _, p := range []int64{0, -100} {
		assert.ErrorIs(t, s.SetPriceCents(p), repository.ErrInvalidPrice)
	}
	assert.Equal(t, int64(1000), s.PriceCents())
}

func TestSession_PublishFailureDoesNotUndoSale(t *testing.T) {
	logger, hook := test.NewNullLogger()
	pub := &recordingPublisher{err: errors.New("broker down")}
	s := NewSession(SessionProperty{
		Config:    config.Config{Seed: 1},
		Logger:    logger,
		Publisher: pub,
	})
	registerAna(t, s)

	res, err := s.BeginSale(1, 1)
	require.NoError(t, err)
	sale, err := s.Confirm(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), sale.ID)
	assert.Equal(t, 1, s.Ledger.SaleCount())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "publish sale confirmed failed", entry.Message)
}

func TestSession_RevenueMatchesPriceTimesCount(t *testing.T) {
	s := newTestSession(t, nil)
	registerAna(t, s)
	_, err := s.RegisterCustomer("Luis", "002", "555-0002")
	require.NoError(t, err)

	var want int64
	steps := []struct {
		customer, count int
		price           int64
		confirm         bool
	}{
		{1, 3, 1000, true},
		{2, 10, 1000, false},
		{2, 4, 750, true},
		{1, 50, 120, true},
		{1, 1, 99999, false},
	}
	for _, st := range steps {
		require.NoError(t, s.SetPriceCents(st.price))
		res, err := s.BeginSale(st.customer, st.count)
		require.NoError(t, err)
		if st.confirm {
			_, err = s.Confirm(context.Background(), res)
			require.NoError(t, err)
			want += st.price * int64(st.count)
		} else {
			require.NoError(t, s.Cancel(res))
		}
	}

	stats := s.Stats()
	assert.Equal(t, want, stats.RevenueCents)
	assert.Equal(t, 57, stats.TicketsSold)
	assert.Equal(t, 57, stats.Issued)
	assert.Equal(t, repository.PoolCapacity-57, stats.Available)
	assert.Equal(t, 3, stats.Sales)
	assert.Equal(t, 2, stats.Customers)
	assert.InDelta(t, 0.57, stats.PercentSold, 1e-9)
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(SessionProperty{})
	assert.Equal(t, int64(config.DefaultTicketPriceCents), s.PriceCents())
	assert.Equal(t, config.DefaultMaxTicketsPerSale, s.MaxPerSale())
	assert.Equal(t, repository.PoolCapacity, s.Pool.AvailableCount())
}
