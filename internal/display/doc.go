// Package display formats command results for the terminal.
//
// Renderers take an explicit color flag instead of consulting global state, so
// the same code path produces plain output for pipes, files and tests. Use
// ColorEnabled to decide the flag for a writer.
//
//	colorOn := display.ColorEnabled(cmd.OutOrStdout())
//	display.RenderGaps(out, results, colorOn)
//
// Warnings are for non-fatal problems, such as directories that could not be
// read while counting files:
//
//	display.Warning{
//	    Title:      "Some directories could not be read",
//	    Files:      paths,
//	    Suggestion: "Check permissions or exclude them with --exclude",
//	}.Display(os.Stderr, colorOn)
package display
