package parser

import (
	"regexp"
	"strings"
	"unicode"

	"fjacquet/ucap-csv/internal/models"
)

// fillerWords are verbs and currency words stripped from notes; they describe
// the act of transacting, not what was bought or earned.
var fillerWords = []string{
	"beli", "bayar", "untuk", "dapat", "terima", "rp", "rupiah",
	"seharga", "habis", "keluar",
}

// dateWords is the date resolver's vocabulary, stripped so resolved date
// phrases do not leak into the note. Phrases come before their component
// words.
var dateWords = []string{
	"kemarin lusa", "dua hari lalu", "hari ini", "minggu lalu",
	"kemarin", "lusa", "tanggal", "hari", "lalu", "yang",
}

var (
	fillerWordPatterns = compileWordPatterns(fillerWords)
	dateWordPatterns   = compileWordPatterns(dateWords)
	digitRunPattern    = regexp.MustCompile(`\b\d+\b`)
)

// CleanNote turns the transcript into a human-readable note: the extracted
// amount span, filler verbs, date phrases and leftover digit runs are removed,
// whitespace is collapsed and the first letter capitalized. Never fails; a
// transcript that cleans down to nothing yields the default note.
func CleanNote(transcript, consumedSpan string) string {
	note := removeFirst(transcript, consumedSpan)

	for _, pattern := range fillerWordPatterns {
		note = pattern.ReplaceAllString(note, " ")
	}
	for _, pattern := range dateWordPatterns {
		note = pattern.ReplaceAllString(note, " ")
	}
	note = digitRunPattern.ReplaceAllString(note, " ")

	note = strings.Join(strings.Fields(note), " ")
	note = capitalize(note)

	if note == "" {
		return models.DefaultNote
	}
	return note
}

// removeFirst erases the first occurrence of span from text. The span is the
// exact substring the amount was extracted from, so only that occurrence goes;
// other numbers in the transcript stay for the digit-run pass to judge.
func removeFirst(text, span string) string {
	if span == "" {
		return text
	}
	if i := strings.Index(text, span); i >= 0 {
		return text[:i] + " " + text[i+len(span):]
	}
	return text
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
