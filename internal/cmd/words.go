package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/tally/internal/display"
	"github.com/harrison/tally/internal/docstats"
	"github.com/harrison/tally/internal/history"
)

func newWordsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words <file>...",
		Short: "Count words, characters and paragraphs in documents",
		Long: `Count the words, characters and paragraphs of Markdown (.md, .markdown)
and plain text (.txt, .text) documents.

Words are whitespace-separated and characters are counted per paragraph, so
markup, code blocks and blank lines are not included.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.wrap(func(cmd *cobra.Command, args []string) error {
			errOut := cmd.ErrOrStderr()
			var progress *display.ProgressIndicator
			if len(args) > 1 && display.IsTerminal(errOut) {
				progress = display.NewProgressIndicator(errOut, len(args), display.ColorEnabled(errOut))
			}

			all := make([]*docstats.Stats, 0, len(args))
			for _, path := range args {
				if progress != nil {
					progress.Step(path)
				}
				stats, err := docstats.AnalyzeFile(path)
				if err != nil {
					return fmt.Errorf("analyze %s: %w", path, err)
				}
				a.log.LogDebug(fmt.Sprintf("%s: %d words, %d characters", path, stats.Words, stats.Characters))
				all = append(all, stats)
			}
			if progress != nil {
				progress.Complete("documents")
			}

			err := a.emit(cmd, func(w io.Writer, colorOn bool) error {
				for i, stats := range all {
					if i > 0 {
						fmt.Fprintln(w)
					}
					display.RenderDocStats(w, stats, len(all) > 1, colorOn)
				}
				return nil
			})
			if err != nil {
				return err
			}

			entries := make([]*history.Entry, 0, len(all))
			for _, stats := range all {
				entries = append(entries, &history.Entry{
					Kind:   history.KindWords,
					Input:  stats.Path,
					Result: int64(stats.Words),
					Detail: fmt.Sprintf("%d characters, %d paragraphs", stats.Characters, stats.Paragraphs),
				})
			}
			a.record(cmd.Context(), entries...)
			return nil
		}),
	}

	return cmd
}
