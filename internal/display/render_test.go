package display

import (
	"bytes"
	"math/big"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/tally/internal/binarygap"
	"github.com/harrison/tally/internal/docstats"
	"github.com/harrison/tally/internal/fileutil"
	"github.com/harrison/tally/internal/history"
)

func analyze(t *testing.T, n int64) binarygap.Result {
	t.Helper()
	r, err := binarygap.Analyze(big.NewInt(n))
	require.NoError(t, err)
	return r
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, ColorEnabled(f), "regular files are not terminals")
}

func TestHighlightGap(t *testing.T) {
	assert.Equal(t, "1000010001", HighlightGap(analyze(t, 529), false))
	assert.Equal(t, "100000", HighlightGap(analyze(t, 32), true), "no gap, nothing to color")

	colored := HighlightGap(analyze(t, 529), true)
	assert.True(t, strings.HasPrefix(colored, "1\x1b["), "got %q", colored)
	assert.Contains(t, colored, "0000")
	assert.True(t, strings.HasSuffix(colored, "\x1b[0m10001") || strings.HasSuffix(colored, "m10001"), "got %q", colored)
}

func TestRenderGaps(t *testing.T) {
	buf := &bytes.Buffer{}
	RenderGaps(buf, []binarygap.Result{analyze(t, 9), analyze(t, 1041)}, false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"9", "1001", "gap", "2"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1041", "10000010001", "gap", "5"}, strings.Fields(lines[1]))
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderGaps_ColorKeepsColumnsAligned(t *testing.T) {
	buf := &bytes.Buffer{}
	RenderGaps(buf, []binarygap.Result{analyze(t, 15), analyze(t, 9), analyze(t, 1041)}, true)
	require.Contains(t, buf.String(), "\x1b[", "expected colored output")

	lines := strings.Split(strings.TrimSpace(ansi.ReplaceAllString(buf.String(), "")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "15    1111         gap 0", lines[0])
	assert.Equal(t, "9     1001         gap 2", lines[1])
	assert.Equal(t, "1041  10000010001  gap 5", lines[2])
}

func TestRenderHistory_ColorKeepsColumnsAligned(t *testing.T) {
	buf := &bytes.Buffer{}
	RenderHistory(buf, []*history.Entry{
		{Kind: history.KindGap, Input: "529", Result: 4, Detail: "1000010001", CreatedAt: time.Now()},
	}, true)
	require.Contains(t, buf.String(), "\x1b[", "expected colored header")

	lines := strings.Split(strings.TrimSpace(ansi.ReplaceAllString(buf.String(), "")), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "KIND"), strings.Index(lines[1], "gap"))
	assert.Equal(t, strings.Index(lines[0], "INPUT"), strings.Index(lines[1], "529"))
	assert.Equal(t, strings.Index(lines[0], "DETAIL"), strings.Index(lines[1], "1000010001"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))

	cut := truncate(strings.Repeat("é", 20), 10)
	assert.True(t, utf8.ValidString(cut), "got %q", cut)
	assert.Equal(t, strings.Repeat("é", 7)+"...", cut)
}

func TestRenderFileCount(t *testing.T) {
	result := &fileutil.CountResult{
		Total:       3,
		ByExtension: map[string]int{".md": 2, "": 1},
	}

	buf := &bytes.Buffer{}
	RenderFileCount(buf, result, false, false)
	assert.Equal(t, "Total number of files: 3\n", buf.String())

	buf.Reset()
	RenderFileCount(buf, result, true, false)
	out := buf.String()
	assert.Contains(t, out, "Total number of files: 3")
	assert.Contains(t, out, "(none)")
	assert.Regexp(t, `\.md\s+2`, out)
}

func TestRenderDocStats(t *testing.T) {
	stats := &docstats.Stats{Path: "notes.md", Format: "markdown", Words: 12, Characters: 70, Paragraphs: 3}

	buf := &bytes.Buffer{}
	RenderDocStats(buf, stats, false, false)
	assert.Equal(t, "Word count: 12\nCharacter count: 70\nParagraph count: 3\n", buf.String())

	buf.Reset()
	RenderDocStats(buf, stats, true, false)
	assert.True(t, strings.HasPrefix(buf.String(), "notes.md (markdown)\n"))
}

func TestRenderHistory(t *testing.T) {
	buf := &bytes.Buffer{}
	RenderHistory(buf, nil, false)
	assert.Equal(t, "No history recorded\n", buf.String())

	buf.Reset()
	RenderHistory(buf, []*history.Entry{
		{Kind: history.KindGap, Input: "529", Result: 4, Detail: "1000010001", CreatedAt: time.Now()},
		{Kind: history.KindWords, Input: "a.md", Result: 10, Detail: strings.Repeat("x", 60), CreatedAt: time.Now()},
	}, false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "KIND")
	assert.Contains(t, lines[1], "529")
	assert.Contains(t, lines[2], "...")
}

func TestWarningDisplay(t *testing.T) {
	buf := &bytes.Buffer{}
	Warning{
		Title:      "Some directories could not be read",
		Message:    "Counts exclude them",
		Files:      []string{"/a"},
		Suggestion: "Check permissions",
	}.Display(buf, false)

	out := buf.String()
	assert.Contains(t, out, "Warning: Some directories could not be read")
	assert.Contains(t, out, "Counts exclude them")
	assert.Contains(t, out, "Affected path:\n      1. /a")
	assert.Contains(t, out, "Suggestion:\n    Check permissions")
	assert.NotContains(t, out, "\x1b[")
}

func TestWarningDisplay_TruncatesFiles(t *testing.T) {
	files := make([]string, 15)
	for i := range files {
		files[i] = "/dir"
	}

	buf := &bytes.Buffer{}
	Warning{Title: "many", Files: files}.Display(buf, false)
	assert.Contains(t, buf.String(), "Affected paths:")
	assert.Contains(t, buf.String(), "... and 5 more")
}

func TestProgressIndicator(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewProgressIndicator(buf, 2, false)
	p.Step("/docs/a.md")
	p.Step("/docs/b.txt")
	p.Complete("documents")

	assert.Equal(t, "  [1/2] a.md\n  [2/2] b.txt\n✓ Analyzed 2 documents\n", buf.String())
}
