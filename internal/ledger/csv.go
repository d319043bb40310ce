// Package ledger reads and writes the CSV ledger that parsed transactions are
// recorded to.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/ucap-csv/internal/dateutils"
	"fjacquet/ucap-csv/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Global CSV delimiter - configurable via config or environment variable
var delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Row is the CSV layout of one parsed transaction. Amount is whole rupiah,
// date is ISO.
type Row struct {
	Date      string           `csv:"date"`
	Direction models.Direction `csv:"direction"`
	Amount    string           `csv:"amount"`
	Category  string           `csv:"category"`
	Note      string           `csv:"note"`
}

// NewRow converts a parsed transaction to its CSV representation.
func NewRow(tx models.ParsedTransaction) Row {
	return Row{
		Date:      dateutils.ToISODate(tx.Date),
		Direction: tx.Direction,
		Amount:    tx.Amount.Amount.Round(0).String(),
		Category:  tx.Category,
		Note:      tx.Note,
	}
}

// Write writes all records to csvFile, replacing any existing content.
func Write(transactions []models.ParsedTransaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer closeFile(file)

	rows := make([]Row, len(transactions))
	for i, tx := range transactions {
		rows[i] = NewRow(tx)
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// Append adds one record to the end of csvFile, creating the file with a
// header row when it does not exist yet.
func Append(tx models.ParsedTransaction, csvFile string) error {
	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	info, err := os.Stat(csvFile)
	writeHeader := os.IsNotExist(err) || (err == nil && info.Size() == 0)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error checking CSV file: %w", err)
	}

	file, err := os.OpenFile(csvFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, models.PermissionLedgerFile)
	if err != nil {
		return fmt.Errorf("error opening CSV file: %w", err)
	}
	defer closeFile(file)

	rows := []Row{NewRow(tx)}
	if writeHeader {
		err = gocsv.MarshalFile(&rows, file)
	} else {
		err = gocsv.MarshalWithoutHeaders(&rows, file)
	}
	if err != nil {
		return fmt.Errorf("error appending to CSV file: %w", err)
	}

	log.WithField("file", csvFile).Debug("Appended transaction to ledger")
	return nil
}

// Read reads all ledger rows from csvFile.
func Read(csvFile string) ([]Row, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer closeFile(file)

	var rows []Row
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.WithField("count", len(rows)).Debug("Read ledger rows")
	return rows, nil
}

func closeFile(file *os.File) {
	if err := file.Close(); err != nil {
		log.WithError(err).Warn("Failed to close file")
	}
}
