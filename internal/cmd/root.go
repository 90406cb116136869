package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/tally/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for tally
func NewRootCommand() *cobra.Command {
	a := &app{log: logger.NewNoOpLogger()}

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Binary gaps, file counts and document word counts",
		Long: `Tally is a small counting toolkit.

  tally gap <n>...      longest run of zero bits enclosed by ones in n
  tally files [dir]     number of files in a directory tree
  tally words <file>... word, character and paragraph counts of documents

Results are recorded in a local history database unless --no-history is set.
Configuration is loaded from .tally/config.yaml if present; flags override it.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file (default: .tally/config.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log verbosity: trace, debug, info, warn, error")
	flags.BoolVar(&a.logToFile, "log-file", false, "Also write a run log to the configured log_dir")
	flags.BoolVar(&a.noHistory, "no-history", false, "Do not record results in the history database")
	flags.StringVarP(&a.output, "output", "o", "", "Also write the result to this file")

	cmd.AddCommand(newGapCommand(a))
	cmd.AddCommand(newFilesCommand(a))
	cmd.AddCommand(newWordsCommand(a))
	cmd.AddCommand(newHistoryCommand(a))

	return cmd
}
