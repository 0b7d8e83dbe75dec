package commons

import (
	"fmt"
	"strings"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// MaxAmountIntegerDigits bounds the integer part of any amount.
	MaxAmountIntegerDigits = 18
	// MaxAmountScale bounds the fractional digits of any amount.
	MaxAmountScale = 18

	maxAmountInputLength = 64
)

// ParseAmount reads a user supplied amount. Anything that is not a decimal,
// or whose magnitude or precision falls outside the supported range, fails
// with domain.ErrInvalidAmount. The sign is not checked here.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > maxAmountInputLength {
		return decimal.Zero, fmt.Errorf("amount longer than %d characters: %w", maxAmountInputLength, domain.ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount must be numeric: %w", domain.ErrInvalidAmount)
	}
	if err := CheckAmountRange(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// CheckAmountRange looks only at the exponent and coefficient length, so it
// stays cheap for values that would be expensive to rescale.
func CheckAmountRange(amount decimal.Decimal) error {
	exponent := int64(amount.Exponent())
	if exponent < -MaxAmountScale {
		return fmt.Errorf("amount has more than %d decimal places: %w", MaxAmountScale, domain.ErrInvalidAmount)
	}
	if exponent+int64(amount.NumDigits()) > MaxAmountIntegerDigits {
		return fmt.Errorf("amount exceeds %d integer digits: %w", MaxAmountIntegerDigits, domain.ErrInvalidAmount)
	}
	return nil
}
