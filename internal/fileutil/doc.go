// Package fileutil counts files in a directory tree.
//
// CountFiles walks a root directory recursively and counts every non-directory
// entry beneath it, optionally filtered by extension and bounded by depth.
// Directory names listed in CountOptions.ExcludeDirs are skipped entirely, and
// hidden directories (names starting with ".") are skipped unless
// IncludeHidden is set.
//
// # Usage
//
//	result, err := fileutil.CountFiles(".", fileutil.CountOptions{
//	    IncludeHidden: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Total number of files: %d\n", result.Total)
//
// Counting only Markdown and YAML files, two levels deep:
//
//	result, err := fileutil.CountFiles("docs", fileutil.CountOptions{
//	    Extensions: []string{".md", "yaml"},
//	    MaxDepth:   2,
//	})
//
// # Error Tolerance
//
// A missing root or a root that is not a directory is fatal. Errors met below
// the root (for example permission denied on a subdirectory) are collected in
// CountResult.Errors and the walk continues, so the total reflects everything
// that could be read.
//
// Symbolic links are not followed; a link is counted as a file.
package fileutil
