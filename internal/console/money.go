package console

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money renders cents as a dollar amount with thousands grouping,
// e.g. 123450 -> "$1,234.50".
func Money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + "$" + printer.Sprintf("%d", cents/100) + fmt.Sprintf(".%02d", cents%100)
}
