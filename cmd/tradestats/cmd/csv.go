package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rustyeddy/tradestats/journal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import <trades.csv>",
	Short: "Import trades from CSV into the SQLite journal",
	Long: `Import trades from a CSV file with a header row.

Trades with an ID that already exists replace the stored trade. Rows without
an ID get a new one.

Example:
  tradestats import --db ./journal.sqlite trades.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export [trades.csv]",
	Short: "Export trades to CSV (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(importCmd, exportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	trades, err := journal.ReadTradesCSV(f)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	j, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.SaveTrades(cmd.Context(), trades); err != nil {
		return fmt.Errorf("save trades: %w", err)
	}
	log.Info("import complete", zap.String("file", args[0]), zap.Int("trades", len(trades)))
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d trades\n", len(trades))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	trades, _, err := loadJournal(cmd.Context())
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := journal.WriteTradesCSV(w, trades); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	log.Info("export complete", zap.Int("trades", len(trades)))
	return nil
}
