// Package batch handles batch processing of transcript files
package batch

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"fjacquet/ucap-csv/cmd/root"
	"fjacquet/ucap-csv/internal/config"
	"fjacquet/ucap-csv/internal/ledger"
	"fjacquet/ucap-csv/internal/lexicon"
	"fjacquet/ucap-csv/internal/logging"
	"fjacquet/ucap-csv/internal/models"
	"fjacquet/ucap-csv/internal/parser"
	"fjacquet/ucap-csv/internal/parsererror"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse a file of transaction phrases into a CSV ledger",
	Long: `Batch parse a text file containing one Indonesian transaction phrase per
line and write the structured records to a CSV ledger. Lines where no
amount can be found are skipped and reported, they do not abort the run.

Example:
  ucap-csv batch -i transcripts.txt -o ledger.csv`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	config.LoadEnv()

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Error("Both input file (-i) and output file (-o) are required")
		return
	}

	parsed, skipped, err := processFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Errorf("Error processing %s: %v", root.SharedFlags.Input, err)
		os.Exit(1)
	}

	if err := ledger.Write(parsed, root.SharedFlags.Output); err != nil {
		root.Log.Errorf("Error writing ledger: %v", err)
		os.Exit(1)
	}

	root.Log.WithFields(map[string]interface{}{
		"parsed":  len(parsed),
		"skipped": skipped,
		"output":  root.SharedFlags.Output,
	}).Info("Batch processing completed")
}

// processFile parses every non-empty line of the input file. It returns the
// successfully parsed transactions and the number of lines skipped because no
// amount was found.
func processFile(inputFile string) ([]models.ParsedTransaction, int, error) {
	file, err := os.Open(inputFile)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close input file")
		}
	}()

	cfg := config.GetGlobalConfig()
	store := lexicon.NewStore(cfg.Lexicons.File, cfg.Lexicons.SlangFile)
	p := parser.New(store, logging.NewLogrusAdapterFromLogger(root.Log))

	parsed := make([]models.ParsedTransaction, 0)
	skipped := 0

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		transcript := strings.TrimSpace(scanner.Text())
		if transcript == "" {
			continue
		}

		tx, err := p.Parse(transcript)
		if err != nil {
			if parsererror.IsAmountNotFound(err) {
				root.Log.WithFields(map[string]interface{}{
					"line":       lineNo,
					"transcript": transcript,
				}).Warn("No amount found, skipping line")
				skipped++
				continue
			}
			return nil, 0, fmt.Errorf("failed to parse line %d: %w", lineNo, err)
		}
		parsed = append(parsed, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read input file: %w", err)
	}

	return parsed, skipped, nil
}
