package harness

import "github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// Sorted is the final array; nil when the run itself failed.
	Sorted []int `json:"sorted"`

	// Steps is the finalized trace.
	Steps []trace.Event `json:"steps"`

	// Stats counts Steps per tag.
	Stats trace.Stats `json:"stats"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Steps:  []trace.Event{},
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
