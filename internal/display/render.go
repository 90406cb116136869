package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/harrison/tally/internal/binarygap"
	"github.com/harrison/tally/internal/docstats"
	"github.com/harrison/tally/internal/fileutil"
	"github.com/harrison/tally/internal/history"
)

// HighlightGap returns the binary string with the longest gap colored.
func HighlightGap(r binarygap.Result, colorOn bool) string {
	if r.Gap == 0 || r.Offset < 0 || r.Offset+r.Gap > len(r.Binary) {
		return r.Binary
	}
	p := newPalette(colorOn)
	return r.Binary[:r.Offset] + p.gap.Sprint(r.Binary[r.Offset:r.Offset+r.Gap]) + r.Binary[r.Offset+r.Gap:]
}

// RenderGaps writes one line per result:
//
//	529  1000010001  gap 4
func RenderGaps(w io.Writer, results []binarygap.Result, colorOn bool) {
	p := newPalette(colorOn)
	rows := make([][]cell, 0, len(results))
	for _, r := range results {
		rows = append(rows, []cell{
			plain(r.Value),
			{text: r.Binary, styled: HighlightGap(r, colorOn)},
			{text: fmt.Sprintf("gap %d", r.Gap), styled: p.label.Sprint("gap") + " " + p.value.Sprint(r.Gap)},
		})
	}
	writeTable(w, rows)
}

// cell is one table column value: text is what the terminal shows, styled is
// what gets written. Widths are measured on text so color codes never shift
// columns.
type cell struct {
	text   string
	styled string
}

func plain(s string) cell {
	return cell{text: s, styled: s}
}

// writeTable left-aligns rows into columns separated by two spaces. The last
// column is not padded.
func writeTable(w io.Writer, rows [][]cell) {
	var widths []int
	for _, row := range rows {
		for i, c := range row {
			n := utf8.RuneCountInString(c.text)
			if i >= len(widths) {
				widths = append(widths, n)
			} else if n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		for i, c := range row {
			sb.WriteString(c.styled)
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c.text)+2))
			}
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

// RenderFileCount writes the total, and the per-extension breakdown when byExt is set.
func RenderFileCount(w io.Writer, result *fileutil.CountResult, byExt bool, colorOn bool) {
	p := newPalette(colorOn)
	fmt.Fprintf(w, "%s %s\n", p.label.Sprint("Total number of files:"), p.value.Sprint(result.Total))

	if !byExt || len(result.ByExtension) == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, ext := range result.Extensions() {
		name := ext
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(tw, "  %s\t%d\n", name, result.ByExtension[ext])
	}
	tw.Flush()
}

// RenderDocStats writes the counts for one document. The path header is only
// written when more than one document is reported.
func RenderDocStats(w io.Writer, stats *docstats.Stats, withHeader bool, colorOn bool) {
	p := newPalette(colorOn)
	if withHeader {
		fmt.Fprintf(w, "%s (%s)\n", p.value.Sprint(stats.Path), stats.Format)
	}
	fmt.Fprintf(w, "%s %d\n", p.label.Sprint("Word count:"), stats.Words)
	fmt.Fprintf(w, "%s %d\n", p.label.Sprint("Character count:"), stats.Characters)
	fmt.Fprintf(w, "%s %d\n", p.label.Sprint("Paragraph count:"), stats.Paragraphs)
}

// RenderHistory writes history entries as a table, newest first.
func RenderHistory(w io.Writer, entries []*history.Entry, colorOn bool) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history recorded")
		return
	}

	p := newPalette(colorOn)
	header := make([]cell, 0, 5)
	for _, title := range []string{"WHEN", "KIND", "INPUT", "RESULT", "DETAIL"} {
		header = append(header, cell{text: title, styled: p.label.Sprint(title)})
	}

	rows := [][]cell{header}
	for _, e := range entries {
		rows = append(rows, []cell{
			plain(e.CreatedAt.Local().Format(time.DateTime)),
			plain(e.Kind),
			plain(e.Input),
			plain(fmt.Sprintf("%d", e.Result)),
			plain(truncate(e.Detail, 40)),
		})
	}
	writeTable(w, rows)
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}

// Summary writes a green check line, e.g. "✓ Cleared 4 history entries".
func Summary(w io.Writer, message string, colorOn bool) {
	p := newPalette(colorOn)
	fmt.Fprintf(w, "%s %s\n", p.success.Sprint("✓"), strings.TrimSpace(message))
}
