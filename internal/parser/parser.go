// Package parser turns a spoken or typed Indonesian transcript into a
// structured transaction record. The pipeline is five deterministic stages:
// direction detection, amount extraction, category classification, date
// resolution and note cleanup. Only amount extraction can fail; every other
// stage falls back to a default.
package parser

import (
	"regexp"
	"time"

	"fjacquet/ucap-csv/internal/dateutils"
	"fjacquet/ucap-csv/internal/lexicon"
	"fjacquet/ucap-csv/internal/logging"
	"fjacquet/ucap-csv/internal/models"
)

// compiledSlang is one slang table entry with its whole-word matcher.
type compiledSlang struct {
	entry   models.SlangEntry
	pattern *regexp.Regexp
}

// Parser holds the compiled lexicons and slang table. It is stateless between
// calls: Parse may be invoked concurrently for independent transcripts.
type Parser struct {
	lexicons models.LexiconConfig
	expense  []compiledCategory
	income   []compiledCategory
	slang    []compiledSlang
	logger   logging.Logger
}

// New creates a Parser from the given lexicon store. Store failures degrade to
// the built-in tables with a warning; a parser is always returned.
func New(store lexicon.StoreInterface, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}

	lexicons, err := store.LoadLexicons()
	if err != nil {
		logger.WithError(err).Warn("Failed to load lexicons, using built-in tables")
		lexicons = lexicon.DefaultLexicons()
	}

	slang, err := store.LoadSlang()
	if err != nil {
		logger.WithError(err).Warn("Failed to load slang table, using built-in table")
		slang = lexicon.DefaultSlang
	}

	compiled := make([]compiledSlang, len(slang))
	for i, entry := range slang {
		compiled[i] = compiledSlang{
			entry:   entry,
			pattern: wordPattern(entry.Term),
		}
	}

	return &Parser{
		lexicons: lexicons,
		expense:  compileLexicon(lexicons.Expense),
		income:   compileLexicon(lexicons.Income),
		slang:    compiled,
		logger:   logger,
	}
}

// Lexicons returns the lexicon configuration the parser was built with.
func (p *Parser) Lexicons() models.LexiconConfig {
	return p.lexicons
}

// Parse parses the transcript against the current date.
func (p *Parser) Parse(transcript string) (models.ParsedTransaction, error) {
	return p.ParseAt(transcript, time.Now())
}

// ParseAt parses the transcript with an injected "today", which pins relative
// date phrases for callers and tests. The only error is amount-not-found;
// direction, category, date and note always resolve, to defaults if need be.
func (p *Parser) ParseAt(transcript string, today time.Time) (models.ParsedTransaction, error) {
	direction := DetectDirection(transcript)

	amount, err := p.ExtractAmount(transcript)
	if err != nil {
		p.logger.WithField(logging.FieldTranscript, transcript).Debug("No amount found in transcript")
		return models.ParsedTransaction{}, err
	}

	// Category and date re-read the original transcript, not the residual
	// text: signal words must not be lost to amount stripping.
	category := p.Classify(transcript, direction)
	date := ResolveDate(transcript, today)
	note := CleanNote(transcript, amount.ConsumedSpan)

	record := models.ParsedTransaction{
		Direction:  direction,
		Amount:     amount.Value,
		Category:   category,
		Date:       date,
		Note:       note,
		Transcript: transcript,
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldDirection, Value: direction.String()},
		logging.Field{Key: logging.FieldAmount, Value: amount.Value.Amount.String()},
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: logging.FieldDate, Value: dateutils.ToISODate(date)},
	).Debug("Transcript parsed")

	return record, nil
}
