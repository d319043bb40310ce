package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"fjacquet/ucap-csv/internal/dateutils"
)

var (
	daysAgoPattern    = regexp.MustCompile(`(\d+)\s*hari\s*(?:yang\s*)?lalu`)
	dayOfMonthPattern = regexp.MustCompile(`tanggal\s*(\d{1,2})`)
)

// ResolveDate resolves a relative or absolute date phrase in the transcript
// against the injected "today". Rules are checked in order and only the first
// one fires:
//
//  1. "N hari (yang) lalu"
//  2. "kemarin lusa" / "dua hari lalu"
//  3. "kemarin"
//  4. "tanggal D"
//  5. no phrase: today
//
// The result never lies after today: a spoken day-of-month greater than
// today's is taken as the most recent occurrence in the previous month. That
// reading is a heuristic for ambiguous speech, not calendar truth.
func ResolveDate(transcript string, today time.Time) time.Time {
	lower := strings.ToLower(transcript)
	today = dateutils.Truncate(today)

	if m := daysAgoPattern.FindStringSubmatch(lower); m != nil {
		days, err := strconv.Atoi(m[1])
		if err == nil {
			return dateutils.DaysAgo(today, days)
		}
	}

	if strings.Contains(lower, "kemarin lusa") || strings.Contains(lower, "dua hari lalu") {
		return dateutils.DaysAgo(today, 2)
	}

	if strings.Contains(lower, "kemarin") {
		return dateutils.DaysAgo(today, 1)
	}

	if m := dayOfMonthPattern.FindStringSubmatch(lower); m != nil {
		day, err := strconv.Atoi(m[1])
		if err == nil && day >= 1 && day <= 31 {
			return resolveDayOfMonth(day, today)
		}
	}

	return today
}

// resolveDayOfMonth places the spoken day in the current month, or the
// previous month when the day has not happened yet this month.
func resolveDayOfMonth(day int, today time.Time) time.Time {
	year, month := today.Year(), today.Month()
	if day > today.Day() {
		month--
		if month == 0 {
			month = time.December
			year--
		}
	}

	resolved := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	// A day past the end of a short previous month normalizes forward and can
	// overshoot today; clamp to keep the never-future guarantee.
	if resolved.After(today) {
		return today
	}
	return resolved
}
