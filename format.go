package watchfolio

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Round rounds v to 2 decimals, half away from zero. NaN and infinities are
// returned unchanged.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	// decimal keeps the shortest representation of v, so 12.345 rounds up
	// even though its binary value is slightly below.
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// SignPrefix returns "-" for negative values and "+" otherwise, zero included.
func SignPrefix(v float64) string {
	if v < 0 {
		return "-"
	}
	return "+"
}

// Describe splits a return into its sign prefix and its rounded magnitude,
// ready for display.
func Describe(v float64) (prefix string, magnitude float64) {
	return SignPrefix(v), Round(math.Abs(v))
}

// ReturnInDollarsDescription describes the holding's return in dollars.
func ReturnInDollarsDescription(h Holding) (prefix string, magnitude float64) {
	return Describe(ReturnInDollars(h))
}

// ReturnInPercentageDescription describes the holding's return in percent.
func ReturnInPercentageDescription(h Holding) (prefix string, magnitude float64) {
	return Describe(ReturnInPercentage(h))
}

// Percent is a percentage, 12.5 is 12.5%.
type Percent float64

func (p Percent) String() string {
	if math.IsNaN(float64(p)) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", Round(float64(p)))
}

// SignedString returns the percentage with an explicit sign, "+0.00%" for zero.
func (p Percent) SignedString() string {
	if math.IsNaN(float64(p)) {
		return "n/a"
	}
	prefix, magnitude := Describe(float64(p))
	return fmt.Sprintf("%s%.2f%%", prefix, magnitude)
}

// defaultCurrency is used for holdings with no currency.
const defaultCurrency = "USD"

// Amount is a value in a currency.
type Amount struct {
	Value    float64
	Currency string
}

// currency returns the amount's currency
func (a Amount) currency() money.Currency {
	code := a.Currency
	if code == "" {
		code = defaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// units returns the magnitude of a in the currency's minor unit (cents).
func (a Amount) units() int64 {
	cur := a.currency()
	fraction := int32(cur.Fraction)
	return decimal.NewFromFloat(math.Abs(a.Value)).Round(fraction).Shift(fraction).IntPart()
}

// String returns the amount formatted in its currency, e.g. "-$12.35".
func (a Amount) String() string {
	if math.IsNaN(a.Value) || math.IsInf(a.Value, 0) {
		return "n/a"
	}
	cur := a.currency()
	s := cur.Formatter().Format(a.units())
	if a.Value < 0 {
		return "-" + s
	}
	return s
}

// SignedString is like String but always carries a sign prefix, "+" for zero.
func (a Amount) SignedString() string {
	if math.IsNaN(a.Value) || math.IsInf(a.Value, 0) {
		return "n/a"
	}
	cur := a.currency()
	return SignPrefix(a.Value) + cur.Formatter().Format(a.units())
}
