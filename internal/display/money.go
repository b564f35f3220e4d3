package display

import (
	"github.com/shopspring/decimal"
	"strings"
)

// Mata uang tanpa minor unit.
var zeroDecimal = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
	"CLP": true,
	"ISK": true,
}

func digits(currency string) int32 {
	if zeroDecimal[strings.ToUpper(currency)] {
		return 0
	}
	return 2
}

// FormatAmount: minor unit -> "12.34 USD".
func FormatAmount(amount int64, currency string) string {
	d := digits(currency)
	v := decimal.New(amount, -d)
	return v.StringFixed(d) + " " + strings.ToUpper(currency)
}
