package model

import "time"

// Reservation is the provisional allocation of ticket numbers for a
// customer while the purchase awaits confirmation.  The numbers are
// already counted as issued by the pool; confirming turns them into a
// Sale and cancelling returns them to the pool.
//
// Fields:
//  ID         – random UUID used to correlate log lines.
//  Customer   – the customer the numbers were drawn for.
//  Numbers    – drawn ticket numbers in draw order.
//  PriceCents – unit price fixed when the reservation was opened.
//  CreatedAt  – when the numbers were drawn.
type Reservation struct {
    ID         string
    Customer   Customer
    Numbers    []string
    PriceCents int64
    CreatedAt  time.Time
}

// TotalCents returns the amount due for the reservation.
func (r Reservation) TotalCents() int64 {
    return r.PriceCents * int64(len(r.Numbers))
}

// Tickets expands the reserved numbers into tickets at the reserved price.
func (r Reservation) Tickets() []Ticket {
    out := make([]Ticket, 0, len(r.Numbers))
    for _, n := range r.Numbers {
        out = append(out, Ticket{Number: n, PriceCents: r.PriceCents})
    }
    return out
}
