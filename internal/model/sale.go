package model

import "time"

// Sale records one completed purchase: a customer and the tickets
// issued to them in a single confirmed transaction.  Sales are never
// modified after commit.
//
// Fields:
//  ID         – monotonic sequence number starting at 1.  Cancelled
//               reservations never consume an ID.
//  Customer   – the buyer.
//  Tickets    – tickets in the order they were drawn.
//  TotalCents – sum of the ticket prices.
//  CreatedAt  – when the sale was committed.
type Sale struct {
    ID         uint64
    Customer   Customer
    Tickets    []Ticket
    TotalCents int64
    CreatedAt  time.Time
}

// TicketNumbers returns the numbers of the sale's tickets in order.
func (s Sale) TicketNumbers() []string {
    out := make([]string, 0, len(s.Tickets))
    for _, t := range s.Tickets {
        out = append(out, t.Number)
    }
    return out
}
