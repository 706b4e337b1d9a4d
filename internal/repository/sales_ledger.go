package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/house-raffle/internal/model"
)

// fieldLabels maps model.Customer field names to the labels used in
// validation messages.
var fieldLabels = map[string]string{
	"Name":       "name",
	"NationalID": "national ID",
	"Phone":      "phone",
}

// SalesLedger keeps the registered customers and the committed sales
// of one session.  Customers are listed in registration order and sales
// in commit order, which is also sale ID order.  The sale counter is
// per ledger, so independent ledgers each start at 1.
type SalesLedger struct {
	customers    []model.Customer
	byNationalID map[string]int
	sales        []model.Sale
	nextSaleID   uint64
	now          func() time.Time
	validate     *validator.Validate
}

// NewSalesLedger returns an empty ledger.  now stamps committed sales;
// nil means time.Now.
func NewSalesLedger(now func() time.Time) *SalesLedger {
	if now == nil {
		now = time.Now
	}
	return &SalesLedger{
		byNationalID: make(map[string]int),
		nextSaleID:   1,
		now:          now,
		validate:     validator.New(),
	}
}

// RegisterCustomer trims the fields, validates that none is empty and
// appends the customer to the registry.  It returns ErrValidation for
// an empty field and ErrDuplicateCustomer when the national ID is
// already registered; in both cases the registry is unchanged.
func (l *SalesLedger) RegisterCustomer(name, nationalID, phone string) (model.Customer, error) {
	c := model.Customer{
		Name:       strings.TrimSpace(name),
		NationalID: strings.TrimSpace(nationalID),
		Phone:      strings.TrimSpace(phone),
	}
	if err := l.validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return model.Customer{}, err
		}
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			label, ok := fieldLabels[fe.Field()]
			if !ok {
				label = fe.Field()
			}
			missing = append(missing, label)
		}
		return model.Customer{}, fmt.Errorf("%w: %s must not be empty", ErrValidation, strings.Join(missing, ", "))
	}
	if _, exists := l.byNationalID[c.NationalID]; exists {
		return model.Customer{}, fmt.Errorf("%w: national ID %s", ErrDuplicateCustomer, c.NationalID)
	}
	l.byNationalID[c.NationalID] = len(l.customers)
	l.customers = append(l.customers, c)
	return c, nil
}

// FindCustomer looks up a customer by national ID.
func (l *SalesLedger) FindCustomer(nationalID string) (model.Customer, bool) {
	i, ok := l.byNationalID[strings.TrimSpace(nationalID)]
	if !ok {
		return model.Customer{}, false
	}
	return l.customers[i], true
}

// CustomerAt returns the customer at the 1-based position used by the
// console listing.  Out-of-range positions yield ErrInvalidSelection.
func (l *SalesLedger) CustomerAt(pos int) (model.Customer, error) {
	if pos < 1 || pos > len(l.customers) {
		return model.Customer{}, fmt.Errorf("%w: customer %d", ErrInvalidSelection, pos)
	}
	return l.customers[pos-1], nil
}

// CommitSale records a confirmed purchase.  The ticket contents are
// taken as already validated; the sale gets the next ID, the sum of
// the ticket prices and the ledger clock's current time.
func (l *SalesLedger) CommitSale(customer model.Customer, tickets []model.Ticket) model.Sale {
	own := make([]model.Ticket, len(tickets))
	copy(own, tickets)
	var total int64
	for _, t := range own {
		total += t.PriceCents
	}
	sale := model.Sale{
		ID:         l.nextSaleID,
		Customer:   customer,
		Tickets:    own,
		TotalCents: total,
		CreatedAt:  l.now(),
	}
	l.nextSaleID++
	l.sales = append(l.sales, sale)
	return sale
}

// ListCustomers returns the customers in registration order.
func (l *SalesLedger) ListCustomers() []model.Customer {
	out := make([]model.Customer, len(l.customers))
	copy(out, l.customers)
	return out
}

// ListSales returns the sales in commit order.
func (l *SalesLedger) ListSales() []model.Sale {
	out := make([]model.Sale, len(l.sales))
	copy(out, l.sales)
	return out
}

func (l *SalesLedger) CustomerCount() int { return len(l.customers) }

func (l *SalesLedger) SaleCount() int { return len(l.sales) }

// TotalRevenue returns the sum of all sale totals in cents.
func (l *SalesLedger) TotalRevenue() int64 {
	var sum int64
	for _, s := range l.sales {
		sum += s.TotalCents
	}
	return sum
}

// TotalTicketsSold returns the number of tickets across all sales.
// With no reservation outstanding it equals the pool's issued count.
func (l *SalesLedger) TotalTicketsSold() int {
	n := 0
	for _, s := range l.sales {
		n += len(s.Tickets)
	}
	return n
}
