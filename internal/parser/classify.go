package parser

import (
	"regexp"

	"fjacquet/ucap-csv/internal/logging"
	"fjacquet/ucap-csv/internal/models"
)

// compiledCategory is one lexicon entry with its trigger terms precompiled to
// whole-word matchers.
type compiledCategory struct {
	name     string
	keywords []string
	patterns []*regexp.Regexp
}

func compileLexicon(categories []models.CategoryConfig) []compiledCategory {
	compiled := make([]compiledCategory, len(categories))
	for i, category := range categories {
		compiled[i] = compiledCategory{
			name:     category.Name,
			keywords: category.Keywords,
			patterns: compileWordPatterns(category.Keywords),
		}
	}
	return compiled
}

// Classify maps the transcript to one category from the direction's lexicon.
// Categories are tried in lexicon order and the first one with a whole-word
// hit wins; that precedence is part of the contract, not an implementation
// accident. With no hit the direction's fallback category is returned.
func (p *Parser) Classify(transcript string, direction models.Direction) string {
	lexicon := p.expense
	fallback := models.CategoryOther
	if direction == models.Income {
		lexicon = p.income
		fallback = models.CategoryOtherIncome
	}

	for _, category := range lexicon {
		for i, pattern := range category.patterns {
			if pattern.MatchString(transcript) {
				p.logger.WithFields(
					logging.Field{Key: logging.FieldCategory, Value: category.name},
					logging.Field{Key: logging.FieldKeyword, Value: category.keywords[i]},
				).Debug("Transcript classified by keyword")
				return category.name
			}
		}
	}

	return fallback
}
