// Package models defines the record types shared by the transcript pipeline,
// the lexicon store and the CSV ledger.
package models

import "time"

// ParsedTransaction is the pipeline's sole output: one record per successfully
// parsed transcript. Amount is always positive in whole rupiah; Date carries
// no time-of-day component and is never later than the "today" the parse was
// given.
type ParsedTransaction struct {
	Direction  Direction
	Amount     Money
	Category   string
	Date       time.Time
	Note       string
	Transcript string
}

// CategoryConfig represents one lexicon entry: a category name and the trigger
// terms that select it. Lexicon order is significant; the first category with
// a matching term wins.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// LexiconConfig is the YAML file layout for direction-scoped lexicons.
type LexiconConfig struct {
	Expense []CategoryConfig `yaml:"expense"`
	Income  []CategoryConfig `yaml:"income"`
}

// SlangEntry maps one colloquial amount word to its rupiah value. Entries are
// ordered so that lookup is deterministic.
type SlangEntry struct {
	Term  string `yaml:"term"`
	Value int64  `yaml:"value"`
}
