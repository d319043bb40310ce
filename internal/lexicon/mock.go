package lexicon

import "fjacquet/ucap-csv/internal/models"

// MockStore is a mock implementation of StoreInterface for testing.
type MockStore struct {
	Lexicons models.LexiconConfig
	Slang    []models.SlangEntry

	// Error flags for testing error conditions
	LoadLexiconsError error
	LoadSlangError    error
}

// LoadLexicons returns the mock lexicons.
func (m *MockStore) LoadLexicons() (models.LexiconConfig, error) {
	if m.LoadLexiconsError != nil {
		return models.LexiconConfig{}, m.LoadLexiconsError
	}
	return m.Lexicons, nil
}

// LoadSlang returns the mock slang table.
func (m *MockStore) LoadSlang() ([]models.SlangEntry, error) {
	if m.LoadSlangError != nil {
		return nil, m.LoadSlangError
	}
	// Return a copy to avoid external modifications
	entries := make([]models.SlangEntry, len(m.Slang))
	copy(entries, m.Slang)
	return entries, nil
}
