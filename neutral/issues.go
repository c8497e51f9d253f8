package neutral

import "fmt"

// ParseIssue records one recoverable parse failure: a single malformed
// record that an extractor skipped rather than raised. The parser layer
// never panics or returns an error for these; the caller decides how loudly
// to surface the accumulated log.
type ParseIssue struct {
	Block  int
	Reason string
}

func (i ParseIssue) String() string {
	return fmt.Sprintf("block %d: %s", i.Block, i.Reason)
}

// Issues accumulates ParseIssue records across one or more extractor calls.
// It is not safe for concurrent use; each goroutine that parses a file
// should own its own Issues and the caller merges them after a join, the
// same convention the result parser pool uses for per-channel logs.
type Issues struct {
	items []ParseIssue
}

// Add appends one issue.
func (l *Issues) Add(block int, reason string) {
	l.items = append(l.items, ParseIssue{Block: block, Reason: reason})
}

// Items returns the accumulated issues in the order they were added.
func (l *Issues) Items() []ParseIssue {
	return l.items
}

// Len reports how many issues have been recorded.
func (l *Issues) Len() int {
	return len(l.items)
}
