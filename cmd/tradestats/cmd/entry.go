package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradestats/journal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Record and inspect daily journal entries",
	Long: `Daily journal entries hold mood, discipline and notes for a trading day.

Examples:
  tradestats entry set 2025-10-01 --mood good --followed --review "waited for the pullback"
  tradestats entry show 2025-10-01
  tradestats entry list`,
}

var entrySetCmd = &cobra.Command{
	Use:   "set <YYYY-MM-DD>",
	Short: "Create or replace the entry for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntrySet,
}

var entryShowCmd = &cobra.Command{
	Use:   "show <YYYY-MM-DD>",
	Short: "Show the entry for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryShow,
}

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries",
	Args:  cobra.NoArgs,
	RunE:  runEntryList,
}

var (
	entryMood string
	entryData journal.Entry
)

func init() {
	rootCmd.AddCommand(entryCmd)
	entryCmd.AddCommand(entrySetCmd, entryShowCmd, entryListCmd)

	fl := entrySetCmd.Flags()
	fl.StringVar(&entryMood, "mood", "", "terrible|bad|neutral|good|great")
	fl.BoolVar(&entryData.FollowedSystem, "followed", false, "the trading plan was followed")
	fl.BoolVar(&entryData.IsNewsDay, "news", false, "scheduled news day")
	fl.StringVar(&entryData.PreMarket, "pre", "", "pre-market plan")
	fl.StringVar(&entryData.Review, "review", "", "end of day review")
	fl.StringVar(&entryData.Lessons, "lessons", "", "lessons learned")
}

func runEntrySet(cmd *cobra.Command, args []string) error {
	e := entryData
	e.Date = args[0]
	if entryMood != "" {
		m, err := journal.ParseMood(entryMood)
		if err != nil {
			return err
		}
		e.Mood = m
	}

	j, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.SaveEntry(cmd.Context(), e); err != nil {
		return fmt.Errorf("save entry: %w", err)
	}
	log.Info("entry saved", zap.String("date", e.Date))

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatEntryOrg(e))
	return nil
}

func runEntryShow(cmd *cobra.Command, args []string) error {
	j, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	e, err := j.GetEntry(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatEntryOrg(e))
	return nil
}

func runEntryList(cmd *cobra.Command, args []string) error {
	j, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	entries, err := j.ListEntries(cmd.Context())
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), journal.FormatEntryOrg(e))
	}
	return nil
}
