package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is a list of file extensions to include (e.g., ".md")
	Extensions []string
	// ExcludeNames is a list of filenames to skip at any depth,
	// compared case-insensitively (e.g., "README.md")
	ExcludeNames []string
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the matched paths, relative to the current working
	// directory with the scan root prefix retained, slash-normalized and
	// sorted lexicographically
	Files []string
}

// ScanDirectory recursively scans a directory for regular files matching the
// provided options. A missing root directory is not an error: the result is
// simply empty. Errors while walking subdirectories abort the scan.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	result := &ScanResult{
		Files: make([]string, 0),
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	// Extension map for fast case-insensitive lookup
	extMap := make(map[string]bool)
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}

	// Excluded filenames, compared case-insensitively
	excludeMap := make(map[string]bool)
	for _, name := range opts.ExcludeNames {
		excludeMap[strings.ToLower(name)] = true
	}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}

		if d.IsDir() {
			return nil
		}

		// Only regular files count as documents
		if !d.Type().IsRegular() {
			return nil
		}

		filename := d.Name()

		if excludeMap[strings.ToLower(filename)] {
			return nil
		}

		if len(extMap) > 0 {
			ext := strings.ToLower(filepath.Ext(filename))
			if !extMap[ext] {
				return nil
			}
		}

		result.Files = append(result.Files, filepath.ToSlash(path))
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	// Sort files for deterministic output
	sort.Strings(result.Files)

	return result, nil
}
