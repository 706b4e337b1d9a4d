package console

import (
	"fmt"
	"strings"

	"github.com/iliyamo/house-raffle/internal/model"
)

const (
	thick = "================================================"
	rule  = "------------------------------------------------"

	saleTimeLayout = "02/01/2006 15:04:05"
	numbersPerLine = 10
)

func (c *Console) banner(title string) {
	fmt.Fprintf(c.out, "\n%s\n%s\n%s\n", thick, center(title), thick)
}

func center(s string) string {
	pad := (len(thick) - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

func customerLine(cu model.Customer) string {
	return fmt.Sprintf("Customer: %s | National ID: %s | Phone: %s", cu.Name, cu.NationalID, cu.Phone)
}

func (c *Console) welcome() {
	fmt.Fprintf(c.out, "\n%s\n%s\n%s\n", thick, center("WELCOME TO THE HOUSE RAFFLE"), thick)
}

func (c *Console) goodbye() {
	fmt.Fprintf(c.out, "\n%s\n  Thanks for using the raffle system. Goodbye!\n%s\n", thick, thick)
}

func (c *Console) menu() {
	st := c.session.Stats()
	fmt.Fprintf(c.out, "\n%s\n%s\n", thick, center("HOUSE RAFFLE"))
	fmt.Fprintf(c.out, "  Current price: %s per ticket\n%s\n", Money(c.session.PriceCents()), thick)
	fmt.Fprintln(c.out, "  1. Register customer")
	fmt.Fprintln(c.out, "  2. Sell tickets")
	fmt.Fprintln(c.out, "  3. Sales history")
	fmt.Fprintln(c.out, "  4. Registered customers")
	fmt.Fprintln(c.out, "  5. All sold numbers")
	fmt.Fprintln(c.out, "  6. Change ticket price")
	fmt.Fprintln(c.out, "  7. Exit")
	fmt.Fprintln(c.out, thick)
	fmt.Fprintf(c.out, "  Tickets sold: %d\n", st.Issued)
	fmt.Fprintf(c.out, "  Customers: %d\n", st.Customers)
	fmt.Fprintf(c.out, "  Sales: %d\n", st.Sales)
	fmt.Fprintln(c.out, thick)
}

func (c *Console) customerPicker() {
	c.banner("REGISTERED CUSTOMERS")
	for i, cu := range c.session.Ledger.ListCustomers() {
		fmt.Fprintf(c.out, "  %d. %s (National ID: %s)\n", i+1, cu.Name, cu.NationalID)
	}
	fmt.Fprintln(c.out, rule)
}

func (c *Console) purchaseSummary(res model.Reservation) {
	fmt.Fprintln(c.out, "\nDRAWING YOUR LUCKY NUMBERS...")
	for i, n := range res.Numbers {
		fmt.Fprintf(c.out, "   %d. Number: %s\n", i+1, n)
	}
	c.banner("PURCHASE SUMMARY")
	fmt.Fprintf(c.out, "  Customer: %s\n", res.Customer.Name)
	fmt.Fprintf(c.out, "  Tickets: %d\n", len(res.Numbers))
	fmt.Fprintf(c.out, "  Price per ticket: %s\n", Money(res.PriceCents))
	fmt.Fprintln(c.out, rule)
	fmt.Fprintf(c.out, "  TOTAL DUE: %s\n", Money(res.TotalCents()))
	fmt.Fprintln(c.out, thick)
}

func (c *Console) receipt(s model.Sale) {
	c.banner(fmt.Sprintf("SALE RECEIPT - HOUSE RAFFLE #%d", s.ID))
	fmt.Fprintf(c.out, "\n%s\n", customerLine(s.Customer))
	fmt.Fprintln(c.out, "\n--- YOUR LUCKY NUMBERS ---")
	for _, t := range s.Tickets {
		fmt.Fprintf(c.out, "   >> %s <<\n", t.Number)
	}
	fmt.Fprintln(c.out, "\n"+rule)
	fmt.Fprintf(c.out, "Tickets: %d\n", len(s.Tickets))
	if len(s.Tickets) > 0 {
		fmt.Fprintf(c.out, "Price per ticket: %s\n", Money(s.Tickets[0].PriceCents))
	}
	fmt.Fprintf(c.out, "TOTAL PAID: %s\n", Money(s.TotalCents))
	fmt.Fprintf(c.out, "DATE: %s\n", s.CreatedAt.Format(saleTimeLayout))
	fmt.Fprintln(c.out, thick)
	fmt.Fprintln(c.out, center("KEEP THIS RECEIPT - GOOD LUCK!"))
	fmt.Fprintln(c.out, thick)
}

func (c *Console) salesHistory() {
	sales := c.session.Ledger.ListSales()
	if len(sales) == 0 {
		fmt.Fprintf(c.out, "\n%s\n  [INFO] No sales recorded\n%s\n", thick, thick)
		return
	}
	c.banner("SALES HISTORY")
	fmt.Fprintf(c.out, "Total sales: %d\n%s\n", len(sales), rule)
	for _, s := range sales {
		c.receipt(s)
	}
	st := c.session.Stats()
	c.banner("GENERAL SUMMARY")
	fmt.Fprintf(c.out, "  Total sales: %d\n", st.Sales)
	fmt.Fprintf(c.out, "  Tickets sold: %d\n", st.TicketsSold)
	fmt.Fprintf(c.out, "  Revenue: %s\n", Money(st.RevenueCents))
	fmt.Fprintln(c.out, thick)
}

func (c *Console) customers() {
	list := c.session.Ledger.ListCustomers()
	if len(list) == 0 {
		fmt.Fprintf(c.out, "\n%s\n  [INFO] No customers registered\n%s\n", thick, thick)
		return
	}
	c.banner("REGISTERED CUSTOMERS")
	fmt.Fprintf(c.out, "Total customers: %d\n%s\n", len(list), rule)
	for i, cu := range list {
		fmt.Fprintf(c.out, "%d. %s\n   %s\n", i+1, customerLine(cu), rule)
	}
}

func (c *Console) soldNumbers() {
	numbers := c.session.Pool.AllIssued()
	if len(numbers) == 0 {
		fmt.Fprintf(c.out, "\n%s\n  [INFO] No numbers sold yet\n%s\n", thick, thick)
		return
	}
	st := c.session.Stats()
	c.banner("SOLD RAFFLE NUMBERS")
	fmt.Fprintf(c.out, "  Tickets sold: %d\n", st.Issued)
	fmt.Fprintf(c.out, "  Numbers available: %d\n", st.Available)
	fmt.Fprintf(c.out, "  Percentage sold: %.2f%%\n", st.PercentSold)
	fmt.Fprintln(c.out, thick)
	fmt.Fprintln(c.out, "\nSOLD NUMBERS (sorted):")
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, numberGrid(numbers, numbersPerLine))
	fmt.Fprintln(c.out, rule)
}

// numberGrid lays numbers out perLine to a row, separated by two spaces.
func numberGrid(numbers []string, perLine int) string {
	var b strings.Builder
	for i, n := range numbers {
		if i > 0 {
			if i%perLine == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString(n)
	}
	return b.String()
}
