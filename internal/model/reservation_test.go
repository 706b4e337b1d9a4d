package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservation_TicketsAndTotal(t *testing.T) {
	r := Reservation{Numbers: []string{"0003", "0001"}, PriceCents: 1250}
	assert.Equal(t, int64(2500), r.TotalCents())
	assert.Equal(t, []Ticket{{Number: "0003", PriceCents: 1250}, {Number: "0001", PriceCents: 1250}}, r.Tickets())

	s := Sale{Tickets: r.Tickets()}
	assert.Equal(t, []string{"0003", "0001"}, s.TicketNumbers())
	assert.Empty(t, Reservation{}.Tickets())
}
