// Package lexicon provides the category lexicons and the amount slang table,
// with optional YAML overrides for per-locale customization.
package lexicon

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/ucap-csv/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// StoreInterface defines the interface for lexicon data access.
// This allows for dependency injection and easier testing.
type StoreInterface interface {
	LoadLexicons() (models.LexiconConfig, error)
	LoadSlang() ([]models.SlangEntry, error)
}

// Store loads lexicons and the slang table from YAML files, falling back to
// the built-in defaults when no override file exists. Missing files are not
// errors: the built-ins are the canonical rule set.
type Store struct {
	LexiconsFile string
	SlangFile    string
}

// NewStore creates a new store for lexicon-related data
func NewStore(lexiconsFile, slangFile string) *Store {
	return &Store{
		LexiconsFile: lexiconsFile,
		SlangFile:    slangFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *Store) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	// Common locations to check for config files
	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/ucap-csv/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "ucap-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadLexicons loads the direction-scoped lexicons from the YAML override
// file, or returns the built-in defaults when no file is found. A direction
// left empty in the override also falls back to its default so a partial file
// cannot silently disable classification.
func (s *Store) LoadLexicons() (models.LexiconConfig, error) {
	filename := s.LexiconsFile
	if filename == "" {
		filename = "lexicons.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Lexicons file not found, using built-in lexicons: %s", filename)
			return DefaultLexicons(), nil
		}
		return models.LexiconConfig{}, fmt.Errorf("error resolving lexicons file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return models.LexiconConfig{}, fmt.Errorf("error reading lexicons file: %w", err)
	}

	var config models.LexiconConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return models.LexiconConfig{}, fmt.Errorf("error parsing lexicons file: %w", err)
	}

	if len(config.Expense) == 0 {
		config.Expense = DefaultExpense
	}
	if len(config.Income) == 0 {
		config.Income = DefaultIncome
	}

	log.Debugf("Loaded %d expense and %d income categories from %s",
		len(config.Expense), len(config.Income), filePath)
	return config, nil
}

// LoadSlang loads the slang amount table from the YAML override file, or
// returns the built-in table when no file is found.
func (s *Store) LoadSlang() ([]models.SlangEntry, error) {
	filename := s.SlangFile
	if filename == "" {
		filename = "slang.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Slang file not found, using built-in table: %s", filename)
			return DefaultSlang, nil
		}
		return nil, fmt.Errorf("error resolving slang file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading slang file: %w", err)
	}

	var entries []models.SlangEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing slang file: %w", err)
	}

	if len(entries) == 0 {
		entries = DefaultSlang
	}

	log.Debugf("Loaded %d slang entries from %s", len(entries), filePath)
	return entries, nil
}
