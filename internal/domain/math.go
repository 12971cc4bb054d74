package domain

import (
	"errors"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const displayPrecision = 2

var (
	ErrEmptyAmount    = errors.New("amount is empty")
	ErrInvalidAmount  = errors.New("amount is not a number")
	ErrNegativeAmount = errors.New("amount is negative")
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// ParseAmount parses user-entered price text. Callers must not run a
// conversion when an error is returned. Values that overflow float64 are
// ErrInvalidAmount.
func ParseAmount(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, ErrEmptyAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrInvalidAmount
	}
	return f, nil
}

// FormatUSD renders x with two fixed decimal places and comma thousands separators,
// e.g. 254887142.857 -> "254,887,142.86". Rounding is half away from zero on the
// exact binary value, so 1.005 (stored as 1.00499...) gives "1.00".
// Infinities render as "∞" and "-∞", NaN as "NaN".
func FormatUSD(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	}

	rounded, _ := decimal.NewFromString(new(big.Rat).SetFloat64(x).FloatString(displayPrecision))
	return usdPrinter.Sprintf("%.2f", rounded.InexactFloat64())
}
