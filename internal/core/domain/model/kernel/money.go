package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not initialized
// through one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney, MoneyFromString, or MoneyFromDecimal")

// Money is a value object for monetary amounts. It carries fixed-point
// decimal arithmetic so that item prices, line item subtotals and order
// grand totals never accumulate binary floating point drift.
//
// Money is immutable: arithmetic methods return new values. Negative
// amounts are rejected at construction; prices and totals in this domain
// are never negative.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney creates a Money value from major and minor currency units,
// e.g. NewMoney(100, 0) for 100.00 and NewMoney(9, 99) for 9.99.
func NewMoney(units int64, cents int64) (Money, error) {
	if units < 0 || cents < 0 || cents > 99 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d units %d cents is not a valid amount", units, cents))
	}
	return Money{
		amount:        decimal.New(units*100+cents, -2),
		isConstructed: true,
	}, nil
}

// MoneyFromString parses a decimal amount such as "19.99".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return MoneyFromDecimal(d)
}

// MoneyFromDecimal wraps an existing decimal amount. It is used by
// persistence adapters when restoring prices from numeric columns.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s is negative", d.String()))
	}
	return Money{amount: d, isConstructed: true}, nil
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// MulQuantity returns the amount multiplied by a unit count. Used to derive
// a line item subtotal from its unit price.
func (m Money) MulQuantity(quantity int) Money {
	return Money{
		amount:        m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}
}

// IsEqual compares two amounts by numeric value, ignoring exponent
// representation (1.5 equals 1.50).
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
