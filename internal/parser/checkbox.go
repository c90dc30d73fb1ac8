package parser

import (
	"regexp"
	"strings"

	"github.com/harrison/planaudit/internal/models"
)

// MaxTextLength is the display truncation limit for unchecked task text.
// Truncation applies to preview text only, never to counts.
const MaxTextLength = 120

// taskLineRegex matches a task-checkbox line: optional leading whitespace,
// a list marker (- or *), one space, a bracketed single state character,
// one space, then the description text to end of line.
var taskLineRegex = regexp.MustCompile(`^\s*[-*] \[(.)\] (.*)$`)

// ClassifyLine determines whether a single physical line is a task-checkbox
// line. It returns the classified state and the trimmed description text.
// The state character comparison is case-insensitive: x is done, ~ is
// in-progress, any other character is unchecked. Non-matching lines return
// ok=false and are excluded from all counts.
func ClassifyLine(line string) (state models.CheckboxState, text string, ok bool) {
	matches := taskLineRegex.FindStringSubmatch(line)
	if matches == nil {
		return "", "", false
	}

	switch strings.ToLower(matches[1]) {
	case "x":
		state = models.StateDone
	case "~":
		state = models.StateInProgress
	default:
		state = models.StateUnchecked
	}

	return state, strings.TrimSpace(matches[2]), true
}

// ParseDocument scans document content line by line and aggregates the
// classified task lines into a DocumentReport. Lines are numbered from 1.
// Each physical line is independent: no nested-list or multi-line handling.
func ParseDocument(content string) models.DocumentReport {
	var report models.DocumentReport

	for i, line := range strings.Split(content, "\n") {
		// Tolerate CRLF line endings
		line = strings.TrimSuffix(line, "\r")

		state, text, ok := ClassifyLine(line)
		if !ok {
			continue
		}

		report.Total++
		switch state {
		case models.StateDone:
			report.Done++
		case models.StateInProgress:
			report.InProgress++
		default:
			report.Unchecked = append(report.Unchecked, models.TaskLine{
				Number: i + 1,
				State:  models.StateUnchecked,
				Text:   truncate(text, MaxTextLength),
			})
		}
	}

	return report
}

// truncate limits s to max runes. Rune-based so multi-byte text is never
// cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
