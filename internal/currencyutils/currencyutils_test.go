package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseGroupedDigits(t *testing.T) {
	testCases := []struct {
		input string
		want  int64
	}{
		{"15.000", 15000},
		{"1,500,000", 1500000},
		{"150000", 150000},
		{"2.500.000", 2500000},
		{" 500 ", 500},
	}

	for _, tc := range testCases {
		got, err := ParseGroupedDigits(tc.input)
		assert.NoError(t, err, "input %q", tc.input)
		assert.True(t, got.Equal(decimal.NewFromInt(tc.want)),
			"input %q: got %s, want %d", tc.input, got.String(), tc.want)
	}
}

func TestParseGroupedDigits_Invalid(t *testing.T) {
	for _, input := range []string{"", "..,,", "abc"} {
		_, err := ParseGroupedDigits(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseDecimalNumber(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"1,5", "1.5"},
		{"1.5", "1.5"},
		{"15", "15"},
		{"0,25", "0.25"},
	}

	for _, tc := range testCases {
		got, err := ParseDecimalNumber(tc.input)
		assert.NoError(t, err, "input %q", tc.input)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"input %q: got %s, want %s", tc.input, got.String(), tc.want)
	}
}

func TestParseDecimalNumber_Invalid(t *testing.T) {
	_, err := ParseDecimalNumber("1,5,0")
	assert.Error(t, err)
}

func TestFormatRupiah(t *testing.T) {
	testCases := []struct {
		amount int64
		want   string
	}{
		{500, "Rp 500"},
		{5000, "Rp 5.000"},
		{15000, "Rp 15.000"},
		{150000, "Rp 150.000"},
		{1500000, "Rp 1.500.000"},
		{0, "Rp 0"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatRupiah(decimal.NewFromInt(tc.amount)))
	}
}

func TestFormatRupiah_RoundsFractions(t *testing.T) {
	assert.Equal(t, "Rp 1.500", FormatRupiah(decimal.RequireFromString("1499.6")))
}

func TestFormatRupiah_Negative(t *testing.T) {
	assert.Equal(t, "-Rp 15.000", FormatRupiah(decimal.NewFromInt(-15000)))
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(decimal.NewFromInt(1)))
	assert.False(t, IsPositive(decimal.Zero))
	assert.False(t, IsPositive(decimal.NewFromInt(-1)))
}
