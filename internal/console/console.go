// Package console is the interactive shell of the raffle.  It reads
// menu selections and fields from an input stream, calls into the
// service.Session and renders receipts and listings as plain text.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iliyamo/house-raffle/internal/repository"
	"github.com/iliyamo/house-raffle/internal/service"
)

// Menu options.
const (
	optRegister = iota + 1
	optSell
	optHistory
	optCustomers
	optNumbers
	optPrice
	optExit
)

// Console drives one Session from an input and an output stream.
type Console struct {
	session *service.Session
	in      *bufio.Scanner
	out     io.Writer
}

// New returns a console reading from in and writing to out.
func New(session *service.Session, in io.Reader, out io.Writer) *Console {
	return &Console{session: session, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the exit option is chosen or input ends.
// Domain errors are reported and never end the loop.  It returns the
// context error if ctx is cancelled between selections and any read
// error other than end of input.
func (c *Console) Run(ctx context.Context) error {
	c.welcome()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.menu()
		opt, err := c.readInt("Select an option: ")
		if err != nil {
			return endOfInput(err)
		}
		switch opt {
		case optRegister:
			err = c.registerCustomer()
		case optSell:
			err = c.sell(ctx)
		case optHistory:
			c.salesHistory()
		case optCustomers:
			c.customers()
		case optNumbers:
			c.soldNumbers()
		case optPrice:
			err = c.changePrice()
		case optExit:
			c.goodbye()
			return nil
		default:
			c.fail(fmt.Errorf("%w: option %d", repository.ErrInvalidSelection, opt))
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput maps io.EOF to a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) registerCustomer() error {
	c.banner("CUSTOMER REGISTRATION")
	name, err := c.readLine("Full name: ")
	if err != nil {
		return err
	}
	nationalID, err := c.readLine("National ID: ")
	if err != nil {
		return err
	}
	phone, err := c.readLine("Phone: ")
	if err != nil {
		return err
	}
	customer, err := c.session.RegisterCustomer(name, nationalID, phone)
	if err != nil {
		c.fail(err)
		return nil
	}
	fmt.Fprintln(c.out, "\n[OK] Customer registered!")
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, customerLine(customer))
	fmt.Fprintln(c.out, rule)
	return nil
}

func (c *Console) sell(ctx context.Context) error {
	if c.session.Ledger.CustomerCount() == 0 {
		c.fail(repository.ErrNoCustomers)
		fmt.Fprintln(c.out, "    Register a customer first (option 1).")
		return nil
	}
	c.banner("RAFFLE TICKET SALE")
	c.customerPicker()
	pos, err := c.readInt("\nCustomer number: ")
	if err != nil {
		return err
	}
	if _, err := c.session.Ledger.CustomerAt(pos); err != nil {
		c.fail(err)
		return nil
	}
	count, err := c.readInt(fmt.Sprintf("\nHow many tickets? (1-%d): ", c.session.MaxPerSale()))
	if err != nil {
		return err
	}
	res, err := c.session.BeginSale(pos, count)
	if err != nil {
		c.fail(err)
		return nil
	}
	c.purchaseSummary(res)

	answer, err := c.readLine("\nConfirm purchase? (Y/N): ")
	if err != nil {
		_ = c.session.Cancel(res)
		return err
	}
	if !confirmed(answer) {
		if err := c.session.Cancel(res); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "\n[X] Sale cancelled.")
		return nil
	}
	sale, err := c.session.Confirm(ctx, res)
	if err != nil {
		return err
	}
	c.receipt(sale)
	fmt.Fprintln(c.out, "[OK] Sale completed. GOOD LUCK IN THE RAFFLE!")
	return nil
}

func (c *Console) changePrice() error {
	c.banner("CHANGE TICKET PRICE")
	fmt.Fprintf(c.out, "Current price: %s\n", Money(c.session.PriceCents()))
	cents, err := c.readPrice("\nNew price: $")
	if err != nil {
		return err
	}
	if err := c.session.SetPriceCents(cents); err != nil {
		c.fail(err)
		return nil
	}
	fmt.Fprintf(c.out, "\n[OK] Price updated. New price: %s\n", Money(cents))
	return nil
}

func (c *Console) fail(err error) {
	fmt.Fprintf(c.out, "\n[X] %v\n", err)
}
