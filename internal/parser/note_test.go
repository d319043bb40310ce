package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanNote(t *testing.T) {
	testCases := []struct {
		name         string
		transcript   string
		consumedSpan string
		want         string
	}{
		{
			name:         "amount span and filler removed",
			transcript:   "beli nasi padang goceng kemarin",
			consumedSpan: "goceng",
			want:         "Nasi padang",
		},
		{
			name:         "ribu span removed",
			transcript:   "bayar listrik 150 ribu",
			consumedSpan: "150 ribu",
			want:         "Listrik",
		},
		{
			name:         "income fillers removed",
			transcript:   "dapat gaji 5 juta",
			consumedSpan: "5 juta",
			want:         "Gaji",
		},
		{
			name:         "date phrase removed",
			transcript:   "servis motor 50 ribu 3 hari lalu",
			consumedSpan: "50 ribu",
			want:         "Servis motor",
		},
		{
			name:         "nothing left yields default note",
			transcript:   "beli 5000",
			consumedSpan: "5000",
			want:         "Transaksi",
		},
		{
			name:         "empty transcript yields default note",
			transcript:   "",
			consumedSpan: "",
			want:         "Transaksi",
		},
		{
			name:         "whitespace collapses",
			transcript:   "  beli   nasi   goreng   ceban  ",
			consumedSpan: "ceban",
			want:         "Nasi goreng",
		},
		{
			name:         "first letter capitalized",
			transcript:   "ojek 15 ribu",
			consumedSpan: "15 ribu",
			want:         "Ojek",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanNote(tc.transcript, tc.consumedSpan))
		})
	}
}

func TestCleanNote_OnlyFirstSpanOccurrenceRemoved(t *testing.T) {
	// The span erases one occurrence; a later digit run is cleaned by the
	// digit pass, but words are untouched.
	got := CleanNote("goceng buat goceng-an", "goceng")
	assert.Equal(t, "Buat goceng-an", got)
}

func TestCleanNote_LeftoverDigitsRemoved(t *testing.T) {
	got := CleanNote("beli 2 kopi 15 ribu", "15 ribu")
	assert.Equal(t, "Kopi", got)
}

func TestCleanNote_SpanNotInTranscript(t *testing.T) {
	// A span that does not occur verbatim leaves the transcript alone.
	got := CleanNote("makan bakso", "goceng")
	assert.Equal(t, "Makan bakso", got)
}
