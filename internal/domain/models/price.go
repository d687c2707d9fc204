package models

import (
	"fmt"
	"strings"
	"time"
)

// PriceSeries holds closing prices in chronological order.
type PriceSeries []float64

// PriceQuery asks a price source for daily closes of Symbol in [Start, End].
type PriceQuery struct {
	Symbol string
	Start  time.Time
	End    time.Time
}

// CurrencySymbol builds the exchange-rate ticker for a currency pair, e.g. USDEUR=X.
func CurrencySymbol(base, target string) string {
	return fmt.Sprintf("%s%s=X", strings.ToUpper(strings.TrimSpace(base)), strings.ToUpper(strings.TrimSpace(target)))
}

// Bounds returns the smallest and largest value of s. ok is false for an empty series.
func Bounds(s []float64) (lo, hi float64, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}
