// Package parse handles parsing a single spoken transaction phrase
package parse

import (
	"fmt"
	"strings"

	"fjacquet/ucap-csv/cmd/root"
	"fjacquet/ucap-csv/internal/config"
	"fjacquet/ucap-csv/internal/currencyutils"
	"fjacquet/ucap-csv/internal/dateutils"
	"fjacquet/ucap-csv/internal/ledger"
	"fjacquet/ucap-csv/internal/lexicon"
	"fjacquet/ucap-csv/internal/logging"
	"fjacquet/ucap-csv/internal/models"
	"fjacquet/ucap-csv/internal/parser"
	"fjacquet/ucap-csv/internal/parsererror"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse [transcript]",
	Short: "Parse one Indonesian transaction phrase",
	Long: `Parse a single free-form Indonesian transaction phrase into a structured
record and print it. With -o, the record is also appended to a CSV ledger.

Example:
  ucap-csv parse "beli nasi padang goceng kemarin"
  ucap-csv parse -t "dapat gaji 5 juta" -o ledger.csv`,
	Run: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Text, "text", "t", "", "Transcript to parse (alternative to positional argument)")
	Cmd.Flags().StringVarP(&root.Date, "date", "d", "", "Reference date for relative expressions (YYYY-MM-DD, default today)")
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Parse command called")

	config.LoadEnv()

	transcript := root.Text
	if transcript == "" {
		transcript = strings.Join(args, " ")
	}
	if transcript == "" {
		root.Log.Error("A transcript is required, pass it as an argument or with --text")
		return
	}

	cfg := config.GetGlobalConfig()
	store := lexicon.NewStore(cfg.Lexicons.File, cfg.Lexicons.SlangFile)
	p := parser.New(store, logging.NewLogrusAdapterFromLogger(root.Log))

	tx, err := parseTranscript(p, transcript)
	if err != nil {
		if parsererror.IsAmountNotFound(err) {
			root.Log.Errorf("No amount found in %q, nothing to record", transcript)
		} else {
			root.Log.Errorf("Error parsing transcript: %v", err)
		}
		return
	}

	fmt.Printf("Direction: %s\n", tx.Direction)
	fmt.Printf("Amount:    %s\n", currencyutils.FormatRupiah(tx.Amount.Amount))
	fmt.Printf("Category:  %s\n", tx.Category)
	fmt.Printf("Date:      %s\n", dateutils.ToISODate(tx.Date))
	fmt.Printf("Note:      %s\n", tx.Note)

	if root.SharedFlags.Output != "" {
		if err := ledger.Append(tx, root.SharedFlags.Output); err != nil {
			root.Log.Errorf("Error appending to ledger: %v", err)
			return
		}
		root.Log.Infof("Recorded transaction in %s", root.SharedFlags.Output)
	}
}

func parseTranscript(p *parser.Parser, transcript string) (tx models.ParsedTransaction, err error) {
	if root.Date == "" {
		return p.Parse(transcript)
	}
	today, err := dateutils.ParseISODate(root.Date)
	if err != nil {
		return tx, fmt.Errorf("invalid --date value %q: %w", root.Date, err)
	}
	return p.ParseAt(transcript, today)
}
