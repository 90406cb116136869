package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/tally/internal/display"
	"github.com/harrison/tally/internal/history"
)

func newHistoryCommand(a *app) *cobra.Command {
	var (
		kind  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently recorded results",
		Args:  cobra.NoArgs,
		RunE: a.wrap(func(cmd *cobra.Command, args []string) error {
			switch kind {
			case "", history.KindGap, history.KindFiles, history.KindWords:
			default:
				return fmt.Errorf("invalid --kind %q, must be gap, files or words", kind)
			}

			entries, err := a.loadHistory(cmd, kind, limit)
			if err != nil {
				return err
			}

			return a.emit(cmd, func(w io.Writer, colorOn bool) error {
				display.RenderHistory(w, entries, colorOn)
				return nil
			})
		}),
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Only show entries of this kind: gap, files or words")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show (0 = all)")

	cmd.AddCommand(newHistoryClearCommand(a))

	return cmd
}

// loadHistory reads entries without creating a database that does not exist yet.
func (a *app) loadHistory(cmd *cobra.Command, kind string, limit int) ([]*history.Entry, error) {
	dbPath, err := a.cfg.GetHistoryDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve history database: %w", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		a.log.LogDebug(fmt.Sprintf("no history database at %s", dbPath))
		return nil, nil
	}

	store, err := a.openHistory()
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), kind, limit)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return entries, nil
}

func newHistoryClearCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded results",
		Args:  cobra.NoArgs,
		RunE: a.wrap(func(cmd *cobra.Command, args []string) error {
			store, err := a.openHistory()
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			display.Summary(out, fmt.Sprintf("Cleared %d history entries", removed), display.ColorEnabled(out))
			return nil
		}),
	}
}
