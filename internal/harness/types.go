package harness

import (
	"github.com/roach88/paint/internal/imdata"
	"github.com/roach88/paint/internal/journal"
)

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq     int64  `json:"seq"`
	Op      string `json:"op"`
	Row     *int   `json:"row,omitempty"`
	Col     *int   `json:"col,omitempty"`
	Outcome string `json:"outcome"`
	OnCount int    `json:"on_count"`

	// Dirty lists the rows the render gate reported for a commit step.
	Dirty []int `json:"dirty,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every step behaved as expected and every assertion held.
	Pass bool `json:"pass"`

	Trace  []TraceEvent `json:"trace"`
	Errors []string     `json:"errors,omitempty"`

	// Journal is the scenario's journal, read back in seq order.
	Journal []journal.Entry `json:"journal"`

	// Final is the committed board after the last step.
	Final *imdata.Board `json:"-"`

	// Staged reports whether the staged slot held a value after the last step.
	Staged bool `json:"staged"`

	// LastDirty is the dirty row set of the last commit that changed state.
	LastDirty []int `json:"last_dirty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds an error message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
