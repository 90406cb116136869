package cmd

import (
	"fmt"
	"io"
	"regexp"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harrison/tally/internal/binarygap"
	"github.com/harrison/tally/internal/display"
	"github.com/harrison/tally/internal/history"
)

func newGapCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "gap <n>...",
		Short: "Compute the binary gap of positive integers",
		Long: `Print the longest run of zero bits that is enclosed by one bits in the
binary representation of each positive integer.

Trailing zeros are never enclosed, so they never count:

  tally gap 9 529 20 32
  9    1001        gap 2
  529  1000010001  gap 4
  20   10100       gap 1
  32   100000      gap 0

Integers of any size are accepted. Zero, negative numbers and anything that
is not a base-10 integer are rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.wrap(func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("invalid --format %q, must be text or yaml", format)
			}

			results := make([]binarygap.Result, 0, len(args))
			for _, arg := range args {
				n, err := binarygap.Parse(arg)
				if err != nil {
					return fmt.Errorf("invalid argument %q: %w", arg, err)
				}
				res, err := binarygap.Analyze(n)
				if err != nil {
					return fmt.Errorf("invalid argument %q: %w", arg, err)
				}
				a.log.LogDebug(fmt.Sprintf("gap(%s) = %d", res.Value, res.Gap))
				results = append(results, res)
			}

			err := a.emit(cmd, func(w io.Writer, colorOn bool) error {
				if format == "yaml" {
					data, err := yaml.Marshal(results)
					if err != nil {
						return fmt.Errorf("failed to encode results: %w", err)
					}
					_, err = w.Write(data)
					return err
				}
				display.RenderGaps(w, results, colorOn)
				return nil
			})
			if err != nil {
				return err
			}

			entries := make([]*history.Entry, 0, len(results))
			for _, r := range results {
				entries = append(entries, &history.Entry{
					Kind:   history.KindGap,
					Input:  r.Value,
					Result: int64(r.Gap),
					Detail: r.Binary,
				})
			}
			a.record(cmd.Context(), entries...)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or yaml")
	cmd.SetFlagErrorFunc(negativeArgError)

	return cmd
}

// numericShorthand matches the flag parser's error for a token such as -4,
// capturing the token.
var numericShorthand = regexp.MustCompile(`unknown shorthand flag: '\d' in (-\S+)$`)

// negativeArgError reports negative numbers, which the flag parser takes for
// shorthand flags, as invalid arguments rather than unknown flags.
func negativeArgError(_ *cobra.Command, err error) error {
	if m := numericShorthand.FindStringSubmatch(err.Error()); m != nil {
		return fmt.Errorf("invalid argument %q: %w", m[1], binarygap.ErrInvalidArgument)
	}
	return err
}
