package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an immutable monetary amount with two decimal places.
// All arithmetic returns a new value.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a money value from a decimal amount
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(2)}
}

// NewMoneyFromString parses a money value from its string form
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return NewMoney(amount), nil
}

// Zero returns a zero money value
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two money values
func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

// Sub returns the difference of two money values
func (m Money) Sub(other Money) Money {
	return NewMoney(m.amount.Sub(other.amount))
}

// MulInt returns the money value multiplied by an integer quantity
func (m Money) MulInt(qty int64) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(qty)))
}

// IsNegative reports whether the amount is below zero
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equals reports whether two money values are equal
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
