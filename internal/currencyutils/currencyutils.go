// Package currencyutils formats yen amounts for display.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// YenSign prefixes every formatted amount
const YenSign = "¥"

var printer = message.NewPrinter(language.Japanese)

// FormatYen formats a whole-unit amount with thousands separators, e.g. ¥32,000.
// Negative amounts are rendered as -¥5,000.
func FormatYen(amount int64) string {
	if amount < 0 {
		return "-" + YenSign + printer.Sprintf("%d", -amount)
	}
	return YenSign + printer.Sprintf("%d", amount)
}

// FormatYenDecimal formats a decimal amount. Whole amounts look like FormatYen,
// fractional ones keep their fraction digits, e.g. ¥45,000.5.
func FormatYenDecimal(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	whole := amount.Truncate(0)
	out := sign + YenSign + printer.Sprintf("%d", whole.IntPart())

	if frac := amount.Sub(whole); !frac.IsZero() {
		digits := strings.TrimPrefix(frac.String(), "0")
		out += digits
	}
	return out
}

// Percent returns part as a whole percentage of total, 0 when total is not positive.
func Percent(part, total int64) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(0).
		IntPart())
}
