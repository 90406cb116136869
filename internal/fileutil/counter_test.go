package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTree builds:
//
//	root/
//	  file1.md
//	  file2.yaml
//	  file3.txt
//	  Setup.MD
//	  README
//	  subdir1/
//	    nested1.md
//	    subdir2/
//	      deep1.md
//	      deep2.txt
//	  .hidden/
//	    hidden.md
//	  node_modules/
//	    package.json
func createTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := []string{
		"file1.md",
		"file2.yaml",
		"file3.txt",
		"Setup.MD",
		"README",
		"subdir1/nested1.md",
		"subdir1/subdir2/deep1.md",
		"subdir1/subdir2/deep2.txt",
		".hidden/hidden.md",
		"node_modules/package.json",
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("test content"), 0644))
	}
	return root
}

func TestCountFiles(t *testing.T) {
	root := createTree(t)

	tests := []struct {
		name      string
		opts      CountOptions
		wantTotal int
	}{
		{
			name:      "everything including hidden",
			opts:      CountOptions{IncludeHidden: true},
			wantTotal: 10,
		},
		{
			name:      "hidden directories skipped by default",
			opts:      CountOptions{},
			wantTotal: 9,
		},
		{
			name:      "single extension, case-insensitive",
			opts:      CountOptions{Extensions: []string{".md"}},
			wantTotal: 4,
		},
		{
			name:      "extensions without dot prefix",
			opts:      CountOptions{Extensions: []string{"MD", "yaml"}, IncludeHidden: true},
			wantTotal: 6,
		},
		{
			name:      "exclude directory by name",
			opts:      CountOptions{ExcludeDirs: []string{"node_modules", "subdir1"}},
			wantTotal: 5,
		},
		{
			name:      "max depth 1 counts root only",
			opts:      CountOptions{MaxDepth: 1, IncludeHidden: true},
			wantTotal: 5,
		},
		{
			name:      "max depth 2 counts one level down",
			opts:      CountOptions{MaxDepth: 2},
			wantTotal: 7,
		},
		{
			name:      "no matching extension",
			opts:      CountOptions{Extensions: []string{".go"}},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CountFiles(root, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestCountFiles_ByExtension(t *testing.T) {
	root := createTree(t)

	result, err := CountFiles(root, CountOptions{IncludeHidden: true})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		".md":   5,
		".yaml": 1,
		".txt":  2,
		".json": 1,
		"":      1,
	}, result.ByExtension)
	assert.Equal(t, []string{"", ".json", ".md", ".txt", ".yaml"}, result.Extensions())

	sum := 0
	for _, n := range result.ByExtension {
		sum += n
	}
	assert.Equal(t, result.Total, sum)
}

func TestCountFiles_EmptyDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0755))

	result, err := CountFiles(root, CountOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, root, result.Root)
}

func TestCountFiles_InvalidRoot(t *testing.T) {
	root := t.TempDir()

	_, err := CountFiles(filepath.Join(root, "missing"), CountOptions{})
	assert.ErrorContains(t, err, "failed to access directory")

	file := filepath.Join(root, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = CountFiles(file, CountOptions{})
	assert.ErrorContains(t, err, "path is not a directory")
}

func TestCountFiles_UnreadableSubdirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	root := createTree(t)
	locked := filepath.Join(root, "subdir1")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	result, err := CountFiles(root, CountOptions{})
	require.NoError(t, err)
	assert.Equal(t, 6, result.Total)
	assert.Len(t, result.Errors, 1)
}
