package validator

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simaogato/epcqr-backend/internal/domain"
)

// maxTransferAmount is the largest amount an EPC payload may carry
var maxTransferAmount = decimal.RequireFromString("999999999.99")

// AmountPlaces is the number of fractional digits every amount is rounded to
const AmountPlaces = 2

// RoundAmount applies round-half-to-even to two decimal places
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(AmountPlaces)
}

// TransferAmount rounds the amount and enforces 0 < amount <= 999999999.99
func TransferAmount(amount decimal.NullDecimal) (decimal.Decimal, error) {
	if !amount.Valid {
		return decimal.Zero, domain.NewValidationError(domain.CategoryMissingMandatory, "transfer amount",
			"transfer amount can not be empty")
	}

	rounded := RoundAmount(amount.Decimal)
	if rounded.LessThanOrEqual(decimal.Zero) || rounded.GreaterThan(maxTransferAmount) {
		return decimal.Zero, domain.NewValidationError(domain.CategoryRangeInvalid, "transfer amount",
			"transfer amount is out of valid range, (0.01 - 999999999.99)")
	}

	return rounded, nil
}

// ParseAmount reads a decimal amount, accepting a comma as decimal separator
func ParseAmount(value string) (decimal.Decimal, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	if value == "" {
		return decimal.Zero, domain.NewValidationError(domain.CategoryMissingMandatory, "transfer amount",
			"transfer amount can not be empty")
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, domain.NewValidationError(domain.CategoryFormatInvalid, "transfer amount",
			"transfer amount has invalid format")
	}
	return amount, nil
}

// FormatAmount renders the amount row: EUR followed by exactly two decimals
func FormatAmount(amount decimal.Decimal) string {
	return domain.Currency + amount.StringFixedBank(AmountPlaces)
}
