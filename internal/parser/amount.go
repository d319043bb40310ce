package parser

import (
	"regexp"

	"fjacquet/ucap-csv/internal/currencyutils"
	"fjacquet/ucap-csv/internal/logging"
	"fjacquet/ucap-csv/internal/models"
	"fjacquet/ucap-csv/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Amount is the result of amount extraction: the rupiah value and the exact
// transcript substring it was read from. The span lets the note cleaner erase
// that occurrence and nothing else.
type Amount struct {
	Value        models.Money
	ConsumedSpan string
}

var (
	// "Rp 15.000", "rp.1,500,000" - digit groups after a currency prefix
	rupiahPattern = regexp.MustCompile(`(?i)\brp\.?\s*(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?)`)
	// "15 ribu", "15rb", "15k" - decimal number with a thousand marker
	ribuPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:ribu|rb|k)\b`)
	// "5 juta", "5jt" - decimal number with a million marker
	jutaPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:juta|jt)\b`)
	// first bare decimal number, with an optional currency prefix
	barePattern = regexp.MustCompile(`(?i)(?:rp\.?\s*)?(\d+(?:[.,]\d+)?)`)

	thousand = decimal.NewFromInt(1000)
	million  = decimal.NewFromInt(1000000)
)

// smallPurchaseWords trigger the spoken-shorthand heuristic: "parkir 2" means
// two thousand rupiah, not two.
var smallPurchaseWords = []string{
	"makan", "nasi", "kopi", "parkir", "bensin", "ojek", "angkot", "geprek", "es",
}

var smallPurchasePatterns = compileWordPatterns(smallPurchaseWords)

// ExtractAmount finds the monetary quantity in the transcript. Rules are tried
// in order and the first positive value wins: slang table, Rp-formatted digit
// groups, ribu suffix, juta suffix, bare number with the small-purchase
// heuristic. When no rule finds a positive value the whole parse fails with
// AmountNotFoundError.
func (p *Parser) ExtractAmount(transcript string) (Amount, error) {
	type rule struct {
		name    string
		extract func(string) (Amount, bool)
	}

	rules := []rule{
		{"slang", p.extractSlangAmount},
		{"rupiah", extractRupiahAmount},
		{"ribu", extractRibuAmount},
		{"juta", extractJutaAmount},
		{"bare", extractBareAmount},
	}

	for _, r := range rules {
		if amount, ok := r.extract(transcript); ok {
			p.logger.WithFields(
				logging.Field{Key: logging.FieldRule, Value: r.name},
				logging.Field{Key: logging.FieldAmount, Value: amount.Value.Amount.String()},
			).Debug("Amount extracted")
			return amount, nil
		}
	}

	return Amount{}, &parsererror.AmountNotFoundError{Transcript: transcript}
}

// extractSlangAmount scans for any whole-word slang token, in table order.
func (p *Parser) extractSlangAmount(transcript string) (Amount, bool) {
	for _, s := range p.slang {
		if span := s.pattern.FindString(transcript); span != "" {
			if s.entry.Value <= 0 {
				continue
			}
			return Amount{
				Value:        models.NewMoneyFromInt(s.entry.Value, models.CurrencyIDR),
				ConsumedSpan: span,
			}, true
		}
	}
	return Amount{}, false
}

// extractRupiahAmount parses currency-prefixed digit groups. The separators
// are grouping only, so "Rp 15.000" is fifteen thousand.
func extractRupiahAmount(transcript string) (Amount, bool) {
	m := rupiahPattern.FindStringSubmatch(transcript)
	if m == nil {
		return Amount{}, false
	}

	value, err := currencyutils.ParseGroupedDigits(m[1])
	if err != nil || !currencyutils.IsPositive(value) {
		return Amount{}, false
	}

	return Amount{
		Value:        models.NewMoney(value, models.CurrencyIDR),
		ConsumedSpan: m[0],
	}, true
}

func extractRibuAmount(transcript string) (Amount, bool) {
	return extractSuffixAmount(transcript, ribuPattern, thousand)
}

func extractJutaAmount(transcript string) (Amount, bool) {
	return extractSuffixAmount(transcript, jutaPattern, million)
}

// extractSuffixAmount handles magnitude markers. The number may use either ','
// or '.' as its decimal separator: "1,5 ribu" and "1.500 ribu" both mean 1500.
func extractSuffixAmount(transcript string, pattern *regexp.Regexp, factor decimal.Decimal) (Amount, bool) {
	m := pattern.FindStringSubmatch(transcript)
	if m == nil {
		return Amount{}, false
	}

	number, err := currencyutils.ParseDecimalNumber(m[1])
	if err != nil {
		return Amount{}, false
	}

	value := number.Mul(factor)
	if !currencyutils.IsPositive(value) {
		return Amount{}, false
	}

	return Amount{
		Value:        models.NewMoney(value, models.CurrencyIDR),
		ConsumedSpan: m[0],
	}, true
}

// extractBareAmount takes the first bare decimal number. Numbers under 1000
// next to a small-purchase word are spoken shorthand for thousands.
func extractBareAmount(transcript string) (Amount, bool) {
	m := barePattern.FindStringSubmatch(transcript)
	if m == nil {
		return Amount{}, false
	}

	value, err := currencyutils.ParseDecimalNumber(m[1])
	if err != nil {
		return Amount{}, false
	}

	if value.LessThan(thousand) && containsSmallPurchaseWord(transcript) {
		value = value.Mul(thousand)
	}

	if !currencyutils.IsPositive(value) {
		return Amount{}, false
	}

	return Amount{
		Value:        models.NewMoney(value, models.CurrencyIDR),
		ConsumedSpan: m[0],
	}, true
}

func containsSmallPurchaseWord(transcript string) bool {
	for _, pattern := range smallPurchasePatterns {
		if pattern.MatchString(transcript) {
			return true
		}
	}
	return false
}
