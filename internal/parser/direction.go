package parser

import (
	"regexp"

	"fjacquet/ucap-csv/internal/models"
)

// incomeMarkers are the words whose presence marks a transcript as income.
// Absence of evidence means spending, so there is no expense marker set.
var incomeMarkers = []string{
	"dapat", "terima", "gaji", "bonus", "untung", "hasil", "jual",
	"pendapatan", "masuk", "dibayar", "cuan",
}

var incomeMarkerPatterns = compileWordPatterns(incomeMarkers)

// DetectDirection classifies the transcript as income or expense. Markers
// match as whole words so "bayar" is not hit by the "dibayar" marker. There is
// no error path; expense is the default.
func DetectDirection(transcript string) models.Direction {
	for _, pattern := range incomeMarkerPatterns {
		if pattern.MatchString(transcript) {
			return models.Income
		}
	}
	return models.Expense
}

// wordPattern builds a case-insensitive whole-word matcher for a term or
// phrase.
func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

func compileWordPatterns(terms []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(terms))
	for i, term := range terms {
		patterns[i] = wordPattern(term)
	}
	return patterns
}
