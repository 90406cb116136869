// Package docstats counts words and characters in text documents.
//
// A document is first reduced to an ordered sequence of paragraph strings by a
// Reader, then counted. Word counts are whitespace-separated fields and
// character counts are runes, both summed over paragraphs, so markup and
// paragraph separators never contribute.
package docstats

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedFormat is returned when no Reader handles a file's extension.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Reader turns a document into its paragraphs, in document order.
type Reader interface {
	Paragraphs(r io.Reader) ([]string, error)
}

// Stats holds the counts for one document
type Stats struct {
	Path       string `yaml:"path,omitempty"`
	Format     string `yaml:"format,omitempty"`
	Words      int    `yaml:"words"`
	Characters int    `yaml:"characters"`
	Paragraphs int    `yaml:"paragraphs"`
}

// Count sums word and character counts over paragraphs.
func Count(paragraphs []string) Stats {
	stats := Stats{Paragraphs: len(paragraphs)}
	for _, p := range paragraphs {
		stats.Words += len(strings.Fields(p))
		stats.Characters += utf8.RuneCountInString(p)
	}
	return stats
}

// ReaderFor selects a Reader by file extension. It returns the reader and the
// format name used in reports.
func ReaderFor(path string) (Reader, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return NewMarkdownReader(), "markdown", nil
	case ".txt", ".text":
		return TextReader{}, "text", nil
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// AnalyzeFile reads the document at path and counts it.
func AnalyzeFile(path string) (*Stats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access document: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory: %s", path)
	}

	reader, format, err := ReaderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	paragraphs, err := reader.Paragraphs(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s document: %w", format, err)
	}

	stats := Count(paragraphs)
	stats.Path = path
	stats.Format = format
	return &stats, nil
}
