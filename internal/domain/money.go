package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an immutable monetary amount in a specific currency.
// Amounts use exact decimal arithmetic; arithmetic between different
// currencies is rejected.
type Money struct {
	currency string
	amount   decimal.Decimal
}

// NewMoney returns a Money value object for the given currency code and amount.
func NewMoney(currency string, amount decimal.Decimal) (Money, error) {
	if strings.TrimSpace(currency) == "" {
		return Money{}, fmt.Errorf("%w: currency cannot be empty", ErrInvalidMoneyOperation)
	}
	return Money{currency: currency, amount: amount}, nil
}

// NewMoneyFromString parses the amount from its decimal string representation.
func NewMoneyFromString(currency, amount string) (Money, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: amount %q is not a valid decimal", ErrInvalidMoneyOperation, amount)
	}
	return NewMoney(currency, dec)
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(currency, decimal.Zero)
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns a new Money holding the sum. Both operands must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{currency: m.currency, amount: m.amount.Add(other.amount)}, nil
}

// Subtract returns a new Money holding the difference. Both operands must share a currency.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{currency: m.currency, amount: m.amount.Sub(other.amount)}, nil
}

// MultiplyInt returns a new Money scaled by a whole factor.
func (m Money) MultiplyInt(factor int) Money {
	return Money{currency: m.currency, amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Equals compares currency and exact amount.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsZero reports whether the money was not constructed via NewMoney.
func (m Money) IsZero() bool {
	return m.currency == ""
}

func (m Money) requireSameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: cannot operate on %s and %s", ErrInvalidMoneyOperation, m.currency, other.currency)
	}
	return nil
}

func (m Money) String() string {
	return m.currency + " " + m.amount.String()
}
