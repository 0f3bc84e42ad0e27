package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/shelf/internal/controller"
	"github.com/roach88/shelf/internal/store"
)

// Harness executes one scenario against a controller.
type Harness struct {
	ctrl    *controller.Controller
	surface *recordingSurface
	result  *Result
	logger  *slog.Logger
}

// recordingSurface turns controller signals into trace events for the
// step currently executing.
type recordingSurface struct {
	step   int
	result *Result
}

func (r *recordingSurface) SetInputsValid(valid bool) {
	event := EventInputsValid
	if !valid {
		event = EventInputsInvalid
	}
	r.result.AddEvent(TraceEvent{Step: r.step, Event: event})
}

func (r *recordingSurface) ClearInputs() {
	r.result.AddEvent(TraceEvent{Step: r.step, Event: EventInputsCleared})
}

func (r *recordingSurface) RowsChanged(rows int) {
	r.result.AddEvent(TraceEvent{Step: r.step, Event: EventRowsChanged, Rows: rows})
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
//
// Execution flow:
// 1. Open an in-memory store and load the (empty) list as step 0
// 2. Execute steps, checking expect clauses
// 3. Evaluate assertions against the final list
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	return RunWithStore(context.Background(), scenario, st)
}

// RunWithStore executes a scenario against an already opened store.
// The store is not closed.
func RunWithStore(ctx context.Context, scenario *Scenario, st controller.Store) (*Result, error) {
	result := NewResult()
	surface := &recordingSurface{result: result}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // Suppress logs in scenarios

	h := &Harness{
		ctrl:    controller.New(st, surface, logger),
		surface: surface,
		result:  result,
		logger:  logger,
	}

	if err := h.ctrl.Reload(ctx); err != nil {
		return nil, fmt.Errorf("failed to load initial list: %w", err)
	}

	for i, step := range scenario.Steps {
		surface.step = i + 1
		h.executeStep(ctx, surface.step, step)
	}

	result.Rows = h.ctrl.Rows()

	for _, msg := range EvaluateAssertions(result.Rows, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

// executeStep runs one step and records its result event.
func (h *Harness) executeStep(ctx context.Context, n int, step Step) {
	switch {
	case step.Submit != nil:
		outcome, err := h.ctrl.Submit(ctx, step.Submit.Name, step.Submit.Location)
		h.result.AddEvent(TraceEvent{Step: n, Event: EventSubmit, Outcome: outcome.String(), Error: errString(err)})
		h.checkExpect(n, step.Expect, outcome.String())

	case step.Remove != nil:
		pos := *step.Remove
		if pos >= h.ctrl.RowCount() {
			h.result.AddError(fmt.Sprintf("step %d: remove position %d out of range (list has %d rows)", n, pos, h.ctrl.RowCount()))
			return
		}
		err := h.ctrl.RemoveAt(ctx, pos)
		h.result.AddEvent(TraceEvent{Step: n, Event: EventRemove, Outcome: okOrError(err), Error: errString(err)})
		h.checkExpect(n, step.Expect, okOrError(err))

	case step.Reload:
		err := h.ctrl.Reload(ctx)
		h.result.AddEvent(TraceEvent{Step: n, Event: EventReload, Outcome: okOrError(err), Error: errString(err)})
		h.checkExpect(n, step.Expect, okOrError(err))
	}
}

// checkExpect records a failure when an expect clause does not match.
func (h *Harness) checkExpect(n int, expect, actual string) {
	if expect == "" || expect == actual {
		return
	}
	h.result.AddError(fmt.Sprintf("step %d: expected %s, got %s", n, expect, actual))
	h.logger.Debug("expect mismatch", "step", n, "expected", expect, "actual", actual)
}

func okOrError(err error) string {
	if err != nil {
		return ExpectError
	}
	return ExpectOK
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
