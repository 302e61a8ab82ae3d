package watchfolio

import (
	"fmt"

	"github.com/etnz/watchfolio/date"
)

// Purchase is a single buy of a security, a lot.
//
// Purchase is immutable: editing a lot means replacing it.
type Purchase struct {
	price  float64 // per share
	shares float64
	on     date.Date
}

// NewPurchase returns the lot of 'shares' shares bought at 'price' per share on day 'on'.
func NewPurchase(price, shares float64, on date.Date) Purchase {
	return Purchase{price: price, shares: shares, on: on}
}

// Price returns the price paid per share.
func (p Purchase) Price() float64 { return p.price }

// Shares returns the number of shares bought.
func (p Purchase) Shares() float64 { return p.shares }

// Date returns the day of the purchase.
func (p Purchase) Date() date.Date { return p.on }

// Cost returns the amount paid for the lot.
func (p Purchase) Cost() float64 { return p.price * p.shares }

func (p Purchase) String() string {
	return fmt.Sprintf("%v shares at %v on %v", p.shares, p.price, p.on)
}
