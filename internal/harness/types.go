package harness

import "github.com/roach88/shelf/internal/movie"

// Trace event names.
const (
	EventInputsValid   = "inputs_valid"
	EventInputsInvalid = "inputs_invalid"
	EventInputsCleared = "inputs_cleared"
	EventRowsChanged   = "rows_changed"
	EventSubmit        = "submit"
	EventRemove        = "remove"
	EventReload        = "reload"
)

// TraceEvent is one surface signal or step result.
// Step 0 is the initial load; scenario steps are numbered from 1.
type TraceEvent struct {
	Step    int    `json:"step"`
	Event   string `json:"event"`
	Rows    int    `json:"rows,omitempty"`
	Outcome string `json:"outcome,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expect clause and assertion held.
	Pass bool `json:"pass"`

	// Trace holds surface signals and step results in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Rows is the controller's list after the last step.
	Rows []movie.Movie `json:"rows"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
		Rows:   []movie.Movie{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddEvent appends a trace event.
func (r *Result) AddEvent(e TraceEvent) {
	r.Trace = append(r.Trace, e)
}
