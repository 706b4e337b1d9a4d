package model

// Ticket is a single raffle entry.  The number is a 4-digit,
// zero-padded code in the range 0000–9999 and is unique across every
// sale.  PriceCents is the price paid for this ticket at the time the
// reservation was opened.
type Ticket struct {
    Number     string // "0000".."9999"
    PriceCents int64  // price in cents
}
