// Package categories prints the active category lexicons
package categories

import (
	"fmt"
	"strings"

	"fjacquet/ucap-csv/cmd/root"
	"fjacquet/ucap-csv/internal/config"
	"fjacquet/ucap-csv/internal/lexicon"
	"fjacquet/ucap-csv/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the active category lexicons",
	Long: `List the category lexicons in match order, with the keywords each
category is recognized by. Categories earlier in the list win when a
phrase matches keywords from more than one.

Example:
  ucap-csv categories
  ucap-csv categories -d income`,
	Run: categoriesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.DirectionName, "direction", "d", "", "Only show one direction (income or expense)")
}

func categoriesFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Categories command called")

	config.LoadEnv()

	cfg := config.GetGlobalConfig()
	store := lexicon.NewStore(cfg.Lexicons.File, cfg.Lexicons.SlangFile)
	lexicons, err := store.LoadLexicons()
	if err != nil {
		root.Log.Warnf("Failed to load lexicon overrides, using defaults: %v", err)
		lexicons = lexicon.DefaultLexicons()
	}

	if root.DirectionName != "" {
		direction, err := models.ParseDirection(root.DirectionName)
		if err != nil {
			root.Log.Errorf("Invalid direction %q: %v", root.DirectionName, err)
			return
		}
		printDirection(direction, lexicons)
		return
	}

	printDirection(models.Expense, lexicons)
	fmt.Println()
	printDirection(models.Income, lexicons)
}

func printDirection(direction models.Direction, lexicons models.LexiconConfig) {
	categories := lexicons.Expense
	label := "Expense"
	if direction == models.Income {
		categories = lexicons.Income
		label = "Income"
	}

	fmt.Printf("%s categories (in match order):\n", label)
	for i, category := range categories {
		fmt.Printf("%2d. %s\n", i+1, category.Name)
		fmt.Printf("    %s\n", strings.Join(category.Keywords, ", "))
	}
}
