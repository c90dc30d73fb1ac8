// Package fileutil provides directory scanning for document discovery.
//
// It is the single source of truth for filesystem traversal in planaudit:
// a recursive walk over the corpus root that filters by extension, excludes
// reserved filenames (case-insensitively, at any depth), and returns
// slash-normalized paths in sorted order so report output is deterministic
// across runs and platforms.
//
// # Usage
//
//	result, err := fileutil.ScanDirectory("docs/plans", fileutil.ScanOptions{
//	    Extensions:   []string{".md"},
//	    ExcludeNames: []string{"README.md"},
//	})
//	if err != nil {
//	    return err
//	}
//	for _, file := range result.Files {
//	    // ... read and audit file ...
//	}
//
// # Behavior Notes
//
//   - A missing root directory yields an empty result, not an error.
//     The audit simply produces no output.
//   - Hidden directories are traversed: the corpus walk is exhaustive.
//   - Only regular files are returned; symlinks and other special entries
//     are skipped.
//   - Errors while walking subdirectories abort the scan. There is no
//     skip-and-continue policy; the run either completes or fails outright.
//
// The package uses only Go's standard library (os, path/filepath, sort,
// strings).
package fileutil
