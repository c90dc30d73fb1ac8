package fileutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestScanDirectory(t *testing.T) {
	// Create a temporary test directory structure:
	// tmpDir/
	//   alpha.md
	//   beta.txt
	//   README.md
	//   Notes.MD (test case-insensitive extension)
	//   phase-1/
	//     tasks.md
	//     readme.MD (test case-insensitive exclusion at depth)
	//     phase-1a/
	//       deep.md
	//   .archive/
	//     old.md (hidden dirs are NOT skipped)
	tmpDir := t.TempDir()

	testFiles := []string{
		"alpha.md",
		"beta.txt",
		"README.md",
		"Notes.MD",
		"phase-1/tasks.md",
		"phase-1/readme.MD",
		"phase-1/phase-1a/deep.md",
		".archive/old.md",
	}

	for _, f := range testFiles {
		path := filepath.Join(tmpDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("test content"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	tests := []struct {
		name         string
		opts         ScanOptions
		wantRelPaths []string
	}{
		{
			name: "markdown files excluding readme",
			opts: ScanOptions{
				Extensions:   []string{".md"},
				ExcludeNames: []string{"README.md"},
			},
			wantRelPaths: []string{
				".archive/old.md",
				"Notes.MD",
				"alpha.md",
				"phase-1/phase-1a/deep.md",
				"phase-1/tasks.md",
			},
		},
		{
			name: "no exclusions",
			opts: ScanOptions{
				Extensions: []string{".md"},
			},
			wantRelPaths: []string{
				".archive/old.md",
				"Notes.MD",
				"README.md",
				"alpha.md",
				"phase-1/phase-1a/deep.md",
				"phase-1/readme.MD",
				"phase-1/tasks.md",
			},
		},
		{
			name: "all extensions",
			opts: ScanOptions{},
			wantRelPaths: []string{
				".archive/old.md",
				"Notes.MD",
				"README.md",
				"alpha.md",
				"beta.txt",
				"phase-1/phase-1a/deep.md",
				"phase-1/readme.MD",
				"phase-1/tasks.md",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanDirectory(tmpDir, tt.opts)
			if err != nil {
				t.Fatalf("ScanDirectory() error: %v", err)
			}

			var gotRel []string
			prefix := filepath.ToSlash(tmpDir) + "/"
			for _, f := range result.Files {
				gotRel = append(gotRel, strings.TrimPrefix(f, prefix))
			}

			if len(gotRel) != len(tt.wantRelPaths) {
				t.Fatalf("got %d files %v, want %d files %v",
					len(gotRel), gotRel, len(tt.wantRelPaths), tt.wantRelPaths)
			}
			for i, want := range tt.wantRelPaths {
				if gotRel[i] != want {
					t.Errorf("Files[%d] = %s, want %s", i, gotRel[i], want)
				}
			}
		})
	}
}

func TestScanDirectorySortedOutput(t *testing.T) {
	tmpDir := t.TempDir()

	// Written in non-lexicographic order on purpose
	for _, f := range []string{"z.md", "a.md", "m/nested.md", "b.md"} {
		path := filepath.Join(tmpDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	result, err := ScanDirectory(tmpDir, ScanOptions{Extensions: []string{".md"}})
	if err != nil {
		t.Fatalf("ScanDirectory() error: %v", err)
	}

	if !sort.StringsAreSorted(result.Files) {
		t.Errorf("expected sorted output, got %v", result.Files)
	}
}

func TestScanDirectoryMissingRoot(t *testing.T) {
	result, err := ScanDirectory(filepath.Join(t.TempDir(), "does-not-exist"), ScanOptions{})
	if err != nil {
		t.Fatalf("missing root should not be an error, got: %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("expected empty result for missing root, got %v", result.Files)
	}
}

func TestScanDirectoryEmptyRoot(t *testing.T) {
	result, err := ScanDirectory(t.TempDir(), ScanOptions{Extensions: []string{".md"}})
	if err != nil {
		t.Fatalf("ScanDirectory() error: %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("expected empty result for empty root, got %v", result.Files)
	}
}

func TestScanDirectoryRootIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "plan.md")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	if _, err := ScanDirectory(file, ScanOptions{}); err == nil {
		t.Error("expected error when root path is a regular file")
	}
}

func TestScanDirectoryRelativeRoot(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "docs", "plans", "sub"), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "docs", "plans", "sub", "plan.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	defer os.Chdir(oldWD)

	result, err := ScanDirectory(filepath.Join("docs", "plans"), ScanOptions{Extensions: []string{".md"}})
	if err != nil {
		t.Fatalf("ScanDirectory() error: %v", err)
	}

	want := "docs/plans/sub/plan.md"
	if len(result.Files) != 1 || result.Files[0] != want {
		t.Errorf("got %v, want [%s]", result.Files, want)
	}
}
