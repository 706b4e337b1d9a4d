// Package queue defines the domain events emitted by the raffle and the
// publishers that deliver them.
package queue

// SaleConfirmedEvent is published when a sale is committed.  It carries
// enough information for a consumer to log or audit the sale without
// access to the ledger.
type SaleConfirmedEvent struct {
    SaleID        uint64   `json:"sale_id"`
    ReservationID string   `json:"reservation_id"`
    CustomerName  string   `json:"customer_name"`
    NationalID    string   `json:"national_id"`
    Numbers       []string `json:"numbers"`
    PriceCents    int64    `json:"price_cents"`
    TotalCents    int64    `json:"total_cents"`
    ConfirmedAt   string   `json:"confirmed_at"`
}
