package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CountOptions configures file counting
type CountOptions struct {
	// Extensions restricts counting to these extensions (case-insensitive, dot optional)
	Extensions []string
	// ExcludeDirs is a list of directory names to skip (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// IncludeHidden descends into directories whose name starts with "."
	IncludeHidden bool
	// MaxDepth limits recursion depth (0 = unlimited, 1 = root directory only)
	MaxDepth int
}

// CountResult contains the outcome of a count
type CountResult struct {
	// Root is the absolute path of the counted directory
	Root string
	// Total is the number of files counted
	Total int
	// ByExtension maps lowercase extension ("" for none) to file count
	ByExtension map[string]int
	// Errors contains non-fatal errors encountered while walking
	Errors []error
}

// Extensions returns the keys of ByExtension in sorted order
func (r *CountResult) Extensions() []string {
	exts := make([]string, 0, len(r.ByExtension))
	for ext := range r.ByExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// CountFiles counts the files under dir according to opts
func CountFiles(dir string, opts CountOptions) (*CountResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}

	result := &CountResult{
		Root:        root,
		ByExtension: make(map[string]int),
		Errors:      make([]error, 0),
	}

	extMap := normalizeExtensions(opts.Extensions)

	excludeMap := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			// Skip the unreadable directory, keep walking its siblings
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == root {
			return nil
		}

		if d.IsDir() {
			if excludeMap[d.Name()] {
				return filepath.SkipDir
			}
			if !opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if opts.MaxDepth > 0 {
				relPath, _ := filepath.Rel(root, path)
				depth := strings.Count(relPath, string(filepath.Separator)) + 1
				if depth >= opts.MaxDepth {
					return filepath.SkipDir
				}
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if len(extMap) > 0 && !extMap[ext] {
			return nil
		}

		result.Total++
		result.ByExtension[ext]++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return result, nil
}

func normalizeExtensions(exts []string) map[string]bool {
	extMap := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}
	return extMap
}
