package models

// CheckboxState represents the state character inside a task checkbox marker
type CheckboxState string

const (
	// StateDone marks a completed task ([x] or [X])
	StateDone CheckboxState = "done"
	// StateInProgress marks a task under active work ([~])
	StateInProgress CheckboxState = "in-progress"
	// StateUnchecked marks a task not yet started (any other state character)
	StateUnchecked CheckboxState = "unchecked"
)

// TaskLine represents a single task-checkbox line extracted from a document
type TaskLine struct {
	Number int           // 1-based line number within the document
	State  CheckboxState // Classified checkbox state
	Text   string        // Trailing description text (trimmed, possibly truncated)
}

// DocumentReport holds the per-document aggregate produced by one scan.
// Unchecked entries are ordered by ascending line number.
type DocumentReport struct {
	Total      int        // Total task-checkbox lines found
	Done       int        // Lines whose state is done
	InProgress int        // Lines whose state is in-progress
	Unchecked  []TaskLine // Unchecked lines in encounter order
}

// HasTasks reports whether the document contained any task-checkbox lines
func (r DocumentReport) HasTasks() bool {
	return r.Total > 0
}

// Percent returns the completion percentage (done / total * 100).
// Callers must ensure Total > 0; the zero-task case takes a separate
// reporting branch and never reaches here.
func (r DocumentReport) Percent() float64 {
	return float64(r.Done) / float64(r.Total) * 100.0
}

// Consistent reports whether the counts satisfy
// done + in-progress + unchecked == total
func (r DocumentReport) Consistent() bool {
	return r.Done+r.InProgress+len(r.Unchecked) == r.Total
}
