package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/shelf/internal/movie"
)

// AssertionError is returned when an assertion fails.
// It includes the final list to help debug the failure.
type AssertionError struct {
	Type     string        // Assertion type for categorization
	Expected string        // Human-readable expected outcome
	Actual   string        // Human-readable actual outcome
	Rows     []movie.Movie // Final list for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFinal list:\n")
	if len(e.Rows) == 0 {
		fmt.Fprintf(&buf, "  (empty)\n")
	}
	for i, m := range e.Rows {
		fmt.Fprintf(&buf, "  [%d] id=%d %q binder=%d\n", i, m.ID, m.Name, m.Location)
	}

	return buf.String()
}

// EvaluateAssertions checks every assertion against the final list and
// returns one message per failure.
func EvaluateAssertions(rows []movie.Movie, assertions []Assertion) []string {
	var failures []string
	for _, a := range assertions {
		if err := evaluateAssertion(rows, a); err != nil {
			failures = append(failures, err.Error())
		}
	}
	return failures
}

func evaluateAssertion(rows []movie.Movie, a Assertion) error {
	switch a.Type {
	case AssertRowCount:
		return assertRowCount(rows, a)
	case AssertRow:
		return assertRow(rows, a)
	case AssertAbsent:
		return assertAbsent(rows, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertRowCount checks the number of rows.
func assertRowCount(rows []movie.Movie, a Assertion) error {
	if len(rows) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertRowCount,
		Expected: fmt.Sprintf("%d rows", a.Count),
		Actual:   fmt.Sprintf("%d rows", len(rows)),
		Rows:     rows,
	}
}

// assertRow checks the name and location at a position. Names match when
// they are canonically equivalent.
func assertRow(rows []movie.Movie, a Assertion) error {
	expected := fmt.Sprintf("row %d = %q binder %d", a.Position, a.Name, a.Location)
	if a.Position >= len(rows) {
		return &AssertionError{
			Type:     AssertRow,
			Expected: expected,
			Actual:   fmt.Sprintf("list has %d rows", len(rows)),
			Rows:     rows,
		}
	}

	m := rows[a.Position]
	if movie.SameName(m.Name, a.Name) && m.Location == a.Location {
		return nil
	}
	return &AssertionError{
		Type:     AssertRow,
		Expected: expected,
		Actual:   fmt.Sprintf("row %d = %q binder %d", a.Position, m.Name, m.Location),
		Rows:     rows,
	}
}

// assertAbsent checks that no row carries the name in any normalization form.
func assertAbsent(rows []movie.Movie, a Assertion) error {
	for i, m := range rows {
		if movie.SameName(m.Name, a.Name) {
			return &AssertionError{
				Type:     AssertAbsent,
				Expected: fmt.Sprintf("no row named %q", a.Name),
				Actual:   fmt.Sprintf("found at position %d (id %d)", i, m.ID),
				Rows:     rows,
			}
		}
	}
	return nil
}
