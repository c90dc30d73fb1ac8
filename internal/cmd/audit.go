package cmd

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/harrison/planaudit/internal/display"
	"github.com/harrison/planaudit/internal/fileutil"
	"github.com/harrison/planaudit/internal/logger"
	"github.com/harrison/planaudit/internal/parser"
)

// The audit contract is fixed: these are not configurable
const (
	corpusRoot   = "docs/plans"
	documentExt  = ".md"
	reservedName = "README.md"
)

// runAudit discovers plan documents under the corpus root, parses each for
// task-checkbox lines, and writes one report block per document to output
// as it completes. A missing corpus root produces no output and no error.
// A document that cannot be read, or whose content is not valid UTF-8,
// aborts the whole run.
func runAudit(output io.Writer, log *logger.ConsoleLogger) error {
	result, err := fileutil.ScanDirectory(corpusRoot, fileutil.ScanOptions{
		Extensions:   []string{documentExt},
		ExcludeNames: []string{reservedName},
	})
	if err != nil {
		return err
	}

	log.LogDebug(fmt.Sprintf("discovered %d document(s) under %s", len(result.Files), corpusRoot))

	reporter := display.NewReporter(output)

	for _, path := range result.Files {
		log.LogTrace("auditing " + path)

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if !utf8.Valid(content) {
			return fmt.Errorf("failed to decode %s: content is not valid UTF-8", path)
		}

		reporter.PrintReport(path, parser.ParseDocument(string(content)))
	}

	return nil
}
