// Package currencyutils provides rupiah parsing and formatting helpers used
// throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var groupSeparators = regexp.MustCompile(`[.,]`)

// ParseGroupedDigits parses a digit-group string as spoken rupiah notation
// ("15.000", "1,500,000", "150000"). Both '.' and ',' are thousand separators
// here; spoken rupiah amounts carry no fractional part, which is why the
// separators are simply stripped.
func ParseGroupedDigits(s string) (decimal.Decimal, error) {
	stripped := groupSeparators.ReplaceAllString(strings.TrimSpace(s), "")
	if stripped == "" {
		return decimal.Zero, fmt.Errorf("empty amount string")
	}

	amount, err := decimal.NewFromString(stripped)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", s, err)
	}
	return amount, nil
}

// ParseDecimalNumber parses a number that may use either ',' or '.' as the
// decimal separator ("1,5" and "1.5" both mean one and a half). Used for the
// ribu/juta magnitude rules where "1,5 juta" must equal "1.5 juta".
func ParseDecimalNumber(s string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse number '%s': %w", s, err)
	}
	return amount, nil
}

// FormatRupiah formats a decimal amount the way the amount would be written
// locally: "Rp 15.000". Amounts are whole rupiah, so fractions are rounded
// away before grouping.
func FormatRupiah(amount decimal.Decimal) string {
	digits := amount.Round(0).String()

	negative := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := "Rp " + strings.Join(groups, ".")
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}

// IsPositive checks if an amount is positive
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}
