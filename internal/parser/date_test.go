package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolveDate(t *testing.T) {
	today := time.Date(2025, time.March, 15, 14, 45, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		transcript string
		want       time.Time
	}{
		{"no phrase means today", "beli kopi 15 ribu", date(2025, time.March, 15)},
		{"kemarin", "beli nasi kemarin", date(2025, time.March, 14)},
		{"kemarin lusa", "bayar parkir kemarin lusa", date(2025, time.March, 13)},
		{"dua hari lalu", "makan dua hari lalu", date(2025, time.March, 13)},
		{"n hari lalu", "servis motor 3 hari lalu", date(2025, time.March, 12)},
		{"n hari yang lalu", "beli buku 10 hari yang lalu", date(2025, time.March, 5)},
		{"tanggal earlier this month", "bayar kos tanggal 10", date(2025, time.March, 10)},
		{"tanggal today", "bayar kos tanggal 15", date(2025, time.March, 15)},
		{"tanggal rolls back a month", "bayar kos tanggal 20", date(2025, time.February, 20)},
		{"uppercase phrase", "beli nasi KEMARIN", date(2025, time.March, 14)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveDate(tc.transcript, today))
		})
	}
}

func TestResolveDate_RuleOrder(t *testing.T) {
	today := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	// "kemarin lusa" contains "kemarin" but must resolve as two days ago.
	assert.Equal(t, date(2025, time.March, 13), ResolveDate("kemarin lusa", today))

	// An explicit day count beats every keyword phrase.
	assert.Equal(t, date(2025, time.March, 10), ResolveDate("5 hari lalu kemarin", today))
}

func TestResolveDate_YearRollback(t *testing.T) {
	today := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	got := ResolveDate("bayar sewa tanggal 25", today)
	assert.Equal(t, date(2024, time.December, 25), got)
}

func TestResolveDate_NeverFuture(t *testing.T) {
	// Day 30 does not exist in February; the rollback normalizes forward past
	// today and must be clamped.
	today := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	got := ResolveDate("bayar tanggal 30", today)
	assert.False(t, got.After(today))
	assert.Equal(t, date(2025, time.March, 1), got)

	// Sweep a month of todays against every spoken day.
	for day := 1; day <= 28; day++ {
		today := date(2025, time.February, day)
		for spoken := 1; spoken <= 31; spoken++ {
			transcript := "bayar tanggal " + time.Date(2025, 1, spoken, 0, 0, 0, 0, time.UTC).Format("2")
			got := ResolveDate(transcript, today)
			assert.False(t, got.After(today), "today %s spoken %d resolved %s", today, spoken, got)
		}
	}
}

func TestResolveDate_TruncatesTimeOfDay(t *testing.T) {
	today := time.Date(2025, time.June, 20, 23, 59, 59, 0, time.UTC)
	got := ResolveDate("makan siang", today)
	assert.Equal(t, date(2025, time.June, 20), got)
}
