package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/tally/internal/display"
	"github.com/harrison/tally/internal/fileutil"
	"github.com/harrison/tally/internal/history"
)

func newFilesCommand(a *app) *cobra.Command {
	var (
		extensions []string
		exclude    []string
		hidden     bool
		maxDepth   int
		byExt      bool
	)

	cmd := &cobra.Command{
		Use:   "files [dir]",
		Short: "Count files in a directory and all its subdirectories",
		Long: `Count every file below a directory (default: the current directory),
descending into all nested subdirectories.

Directories listed in files.exclude_dirs or --exclude are skipped. Hidden
directories are counted unless files.include_hidden is false or --hidden=false.
Unreadable directories are reported as warnings and left out of the total.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.wrap(func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			opts := fileutil.CountOptions{
				Extensions:    extensions,
				ExcludeDirs:   append(append([]string{}, a.cfg.Files.ExcludeDirs...), exclude...),
				IncludeHidden: a.cfg.Files.IncludeHidden,
				MaxDepth:      a.cfg.Files.MaxDepth,
			}
			if cmd.Flags().Changed("hidden") {
				opts.IncludeHidden = hidden
			}
			if cmd.Flags().Changed("max-depth") {
				if maxDepth < 0 {
					return fmt.Errorf("--max-depth must be >= 0, got %d", maxDepth)
				}
				opts.MaxDepth = maxDepth
			}

			a.log.LogDebug(fmt.Sprintf("counting files in %s (exclude=%v hidden=%t depth=%d)", dir, opts.ExcludeDirs, opts.IncludeHidden, opts.MaxDepth))

			result, err := fileutil.CountFiles(dir, opts)
			if err != nil {
				return err
			}

			if len(result.Errors) > 0 {
				paths := make([]string, 0, len(result.Errors))
				for _, e := range result.Errors {
					a.log.LogDebug(e.Error())
					paths = append(paths, e.Error())
				}
				errOut := cmd.ErrOrStderr()
				display.Warning{
					Title:      fmt.Sprintf("%d paths could not be read", len(result.Errors)),
					Message:    "The total excludes their contents",
					Files:      paths,
					Suggestion: "Check permissions or skip them with --exclude",
				}.Display(errOut, display.ColorEnabled(errOut))
			}

			err = a.emit(cmd, func(w io.Writer, colorOn bool) error {
				display.RenderFileCount(w, result, byExt, colorOn)
				return nil
			})
			if err != nil {
				return err
			}

			a.record(cmd.Context(), &history.Entry{
				Kind:   history.KindFiles,
				Input:  result.Root,
				Result: int64(result.Total),
				Detail: fmt.Sprintf("%d extensions, %d errors", len(result.ByExtension), len(result.Errors)),
			})
			return nil
		}),
	}

	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "Only count files with these extensions (e.g. md,go)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Directory names to skip, added to files.exclude_dirs")
	cmd.Flags().BoolVar(&hidden, "hidden", true, "Descend into hidden directories")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Limit recursion depth (0 = unlimited, 1 = top directory only)")
	cmd.Flags().BoolVar(&byExt, "by-ext", false, "Break the total down by file extension")

	return cmd
}
