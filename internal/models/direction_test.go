package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "expense", Expense.String())
	assert.Equal(t, "income", Income.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("income")
	assert.NoError(t, err)
	assert.Equal(t, Income, d)

	d, err = ParseDirection("expense")
	assert.NoError(t, err)
	assert.Equal(t, Expense, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestDirectionZeroValueIsExpense(t *testing.T) {
	var d Direction
	assert.Equal(t, Expense, d)
}

func TestDirectionCSVRoundTrip(t *testing.T) {
	for _, d := range []Direction{Expense, Income} {
		s, err := d.MarshalCSV()
		assert.NoError(t, err)

		var parsed Direction
		assert.NoError(t, parsed.UnmarshalCSV(s))
		assert.Equal(t, d, parsed)
	}

	var d Direction
	assert.Error(t, d.UnmarshalCSV("banana"))
}
