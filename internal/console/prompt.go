package console

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// errInvalidPriceInput marks text that does not parse as a price.
var errInvalidPriceInput = errors.New("not a price")

// readLine prints prompt and returns the next input line without the
// line terminator.  It returns io.EOF once input is exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

// readInt keeps prompting until the line holds a whole number.
func (c *Console) readInt(prompt string) (int, error) {
	line, err := c.readLine(prompt)
	for err == nil {
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return n, nil
		}
		line, err = c.readLine("[X] Please enter a valid number: ")
	}
	return 0, err
}

// readPrice keeps prompting until the line holds a decimal amount and
// returns it in cents.  A leading "$" is accepted.
func (c *Console) readPrice(prompt string) (int64, error) {
	line, err := c.readLine(prompt)
	for err == nil {
		cents, parseErr := parseCents(line)
		if parseErr == nil {
			return cents, nil
		}
		line, err = c.readLine("[X] Please enter a valid price: $")
	}
	return 0, err
}

// parseCents converts "12.5", "$12.50" or "12" to cents, rounding to
// the nearest cent.
func parseCents(s string) (int64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > 1e12 {
		return 0, fmt.Errorf("%w: %q", errInvalidPriceInput, s)
	}
	return int64(math.Round(f * 100)), nil
}

// confirmed reports whether the answer accepts the purchase.
func confirmed(answer string) bool {
	switch strings.ToUpper(strings.TrimSpace(answer)) {
	case "Y", "YES", "S", "SI":
		return true
	}
	return false
}
