package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"finance-dashboard/internal/logging"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/spf13/cobra"
)

func newClassifyCommand() *cobra.Command {
	var categoriesPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify <statement>",
		Short: "Classify a .csv or .xlsx statement against a categories file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := models.DefaultCategoryMap()
			if categoriesPath != "" {
				loaded, err := readCategories(categoriesPath)
				if err != nil {
					return err
				}
				categories = loaded.WithUncategorised()
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			defer f.Close()

			metrics := services.NewNoopMetrics()
			logger := logging.Discard()
			loader := services.NewStatementLoader(services.NewClassifier(nil, metrics, logger), metrics, logger)

			result, err := loader.Load(cmd.Context(), filepath.Base(args[0]), f, categories)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return printClassified(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&categoriesPath, "categories", "", "categories JSON file (default: Uncategorised only)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func printClassified(out io.Writer, result *models.LoadResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tDATE\tDESCRIPTION\tAMOUNT\tFLOW\tCATEGORY")
	for _, txn := range result.Transactions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			txn.Row,
			txn.CompletedDate.Format("2006-01-02"),
			txn.Description,
			txn.Amount.StringFixed(2),
			txn.Flow,
			txn.Category,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	summary := services.NewLedger().Summary(result.Transactions)
	fmt.Fprintf(out, "\n%d rows, %d skipped, %d with unknown type\n", len(result.Transactions), result.Skipped, len(result.UnknownTypes))
	fmt.Fprintf(out, "expenses %s, payments %s, net %s\n",
		summary.TotalExpenses.StringFixed(2),
		summary.TotalPayments.StringFixed(2),
		summary.Net.StringFixed(2),
	)
	return nil
}

func readCategories(path string) (models.CategoryMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.CategoryMap{}, fmt.Errorf("reading categories: %w", err)
	}
	var categories models.CategoryMap
	if err := json.Unmarshal(raw, &categories); err != nil {
		return models.CategoryMap{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return categories, nil
}
