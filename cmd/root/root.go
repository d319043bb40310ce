// Package root contains the root command for the application
package root

import (
	"os"

	"fjacquet/ucap-csv/internal/config"
	"fjacquet/ucap-csv/internal/currencyutils"
	"fjacquet/ucap-csv/internal/ledger"
	"fjacquet/ucap-csv/internal/lexicon"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ucap-csv",
		Short: "A CLI tool to turn spoken Indonesian expense phrases into CSV ledger rows.",
		Long: `ucap-csv is a CLI tool that parses free-form Indonesian transaction phrases
such as "beli nasi padang goceng kemarin" into structured records
(direction, amount, category, date, note) and writes them to CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ucap-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all packages
			lexicon.SetLogger(Log)
			ledger.SetLogger(Log)
			currencyutils.SetLogger(Log)

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				ledger.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific parse command flags
	Text string
	Date string

	// Specific categories command flags
	DirectionName string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
}
