package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a menu amount. It travels as a JSON number and is shown with
// exactly two fraction digits.
type Price struct {
	d decimal.Decimal
}

// PriceFromFloat converts a float amount such as 12.99.
func PriceFromFloat(f float64) Price {
	return Price{d: decimal.NewFromFloat(f)}
}

// ParsePrice parses a decimal string such as "12.99".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("parse price %q: %w", s, err)
	}
	return Price{d: d}, nil
}

func mustParsePrice(s string) Price {
	p, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Decimal returns the underlying amount.
func (p Price) Decimal() decimal.Decimal {
	return p.d
}

// IsNegative reports whether p is below zero.
func (p Price) IsNegative() bool {
	return p.d.IsNegative()
}

// Equal compares amounts, ignoring representation (5.5 == 5.50).
func (p Price) Equal(o Price) bool {
	return p.d.Equal(o.d)
}

// String formats with two fraction digits: "12.99", "2.00".
func (p Price) String() string {
	return p.d.StringFixed(2)
}

// Display formats for diners: "$12.99".
func (p Price) Display() string {
	return "$" + p.String()
}

// MarshalJSON writes the amount as a bare JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.d.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (p *Price) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("price: %w", err)
	}
	p.d = d
	return nil
}
