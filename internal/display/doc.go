// Package display provides terminal output formatting for audit reports.
//
// This package centralizes all user-facing output for the planaudit CLI.
// Each scanned document produces one block:
//
//	docs/plans/phase-1.md :: 4x + 1~ / 8 total = 50% tested
//	  [ ] 12: wire the reporter into the root command
//	  [ ] 30: add coverage for CRLF documents
//	  ... 1 more unchecked
//
// or, for documents without task checkboxes:
//
//	docs/plans/notes.md :: no task checkboxes
//
// Blocks are written incrementally as each document is audited, not buffered
// until the end of the run.
//
// Color is applied only when the writer is a TTY (detected via
// mattn/go-isatty) and the NO_COLOR convention is not in effect; redirected
// output is always plain text, which keeps the format stable for tests and
// shell pipelines. All functions accept io.Writer for testability.
package display
