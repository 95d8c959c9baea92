package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradestats/filter"
	"github.com/rustyeddy/tradestats/journal"
	"github.com/rustyeddy/tradestats/pkg/id"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record and inspect trades",
	Long: `Record and inspect trades in the SQLite journal.

Subcommands:
  add    - Record a trade
  show   - Show a trade by ID
  list   - List trades, optionally filtered
  delete - Delete a trade by ID

Examples:
  tradestats trade add --symbol AAPL --direction long --entry 187.2 --exit 189.9 --pnl 268 --rr 2.7
  tradestats trade show 01J9Z8...
  tradestats trade list --period week`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeShowCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeShow,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

var (
	addTrade    journal.Trade
	addExit     float64
	addRR       float64
	addClosed   bool
	tradeFilter filterFlags
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd, tradeShowCmd, tradeListCmd, tradeDeleteCmd)

	fl := tradeAddCmd.Flags()
	fl.StringVar(&addTrade.Date, "date", "", "trade date, YYYY-MM-DD (default today)")
	fl.StringVar(&addTrade.ExitDate, "exit-date", "", "exit date when different from the trade date")
	fl.StringVar(&addTrade.EntryTime, "entry-time", "", "entry time, HH:MM")
	fl.StringVar(&addTrade.ExitTime, "exit-time", "", "exit time, HH:MM")
	fl.StringVarP(&addTrade.Symbol, "symbol", "s", "", "symbol (required)")
	fl.StringVar((*string)(&addTrade.Direction), "direction", string(journal.Long), "long|short")
	fl.Float64Var(&addTrade.EntryPrice, "entry", 0, "entry price")
	fl.Float64Var(&addExit, "exit", 0, "exit price; a non-zero exit closes the trade")
	fl.Float64Var(&addTrade.PnL, "pnl", 0, "realized profit or loss")
	fl.Float64Var(&addRR, "rr", 0, "result as a multiple of risk")
	fl.BoolVar(&addClosed, "closed", false, "mark closed without an exit price")
	fl.StringVar(&addTrade.Setup, "setup", "", "setup label")
	fl.StringSliceVar(&addTrade.Tags, "tags", nil, "comma separated tags")
	fl.StringVar(&addTrade.Notes, "notes", "", "notes")
	tradeAddCmd.MarkFlagRequired("symbol")

	tradeFilter.register(tradeListCmd)
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	t := addTrade
	t.ID = id.New()
	t.Symbol = strings.ToUpper(t.Symbol)
	t.Direction = journal.Direction(strings.ToLower(string(t.Direction)))
	if t.Direction != journal.Long && t.Direction != journal.Short {
		return fmt.Errorf("--direction must be long or short")
	}
	if t.Date == "" {
		t.Date = time.Now().Format(journal.DateLayout)
	}
	if _, ok := journal.ParseDay(t.Date); !ok {
		return fmt.Errorf("--date: invalid date %q", t.Date)
	}
	if t.ExitDate != "" {
		if _, ok := journal.ParseDay(t.ExitDate); !ok {
			return fmt.Errorf("--exit-date: invalid date %q", t.ExitDate)
		}
	}
	if cmd.Flags().Changed("exit") {
		exit := addExit
		t.ExitPrice = &exit
	}
	if cmd.Flags().Changed("rr") {
		rr := addRR
		t.RR = &rr
	}
	t.Status = journal.StatusOpen
	if addClosed || t.IsClosed() {
		t.Status = journal.StatusClosed
	}

	j, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.SaveTrade(cmd.Context(), t); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}
	log.Info("trade recorded", zap.String("id", t.ID), zap.String("symbol", t.Symbol))

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(t))
	return nil
}

func runTradeShow(cmd *cobra.Command, args []string) error {
	j, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetTrade(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(rec))
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	c, err := tradeFilter.criteria(time.Now(), cfg.Stats.Period)
	if err != nil {
		return err
	}

	trades, entries, err := loadJournal(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradesOrg(filter.ApplyJournal(trades, entries, c)))
	return nil
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	j, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.DeleteTrade(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	log.Info("trade deleted", zap.String("id", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}
