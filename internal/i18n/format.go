package i18n

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatNumber groups digits the way the locale writes them.
func FormatNumber(l Locale, d decimal.Decimal) string {
	p := message.NewPrinter(l.Tag())
	if d.IsInteger() {
		return p.Sprintf("%v", number.Decimal(d.IntPart()))
	}
	return p.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}
