package parser

import (
	"testing"

	"fjacquet/ucap-csv/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDetectDirection(t *testing.T) {
	testCases := []struct {
		name       string
		transcript string
		want       models.Direction
	}{
		{"income marker gaji", "dapat gaji 5 juta", models.Income},
		{"income marker terima", "terima transferan 200 ribu", models.Income},
		{"income marker jual", "jual sepeda bekas 500 ribu", models.Income},
		{"income marker cuan", "cuan saham 1 juta", models.Income},
		{"income marker dibayar", "dibayar hutang 50 ribu", models.Income},
		{"case insensitive marker", "DAPAT bonus", models.Income},
		{"plain expense", "beli nasi padang goceng", models.Expense},
		{"bayar is not an income marker", "bayar listrik 150 ribu", models.Expense},
		{"no markers at all", "kopi 15 ribu", models.Expense},
		{"empty transcript defaults to expense", "", models.Expense},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectDirection(tc.transcript))
		})
	}
}

func TestDetectDirection_WholeWordsOnly(t *testing.T) {
	// "masuk" is a marker but "masukkan" is a different word.
	assert.Equal(t, models.Expense, DetectDirection("masukkan 10 ribu ke parkir"))
	assert.Equal(t, models.Income, DetectDirection("uang masuk 10 ribu"))
}
