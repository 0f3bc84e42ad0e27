package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted session against the controller.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps run in order after the initial load.
	Steps []Step `yaml:"steps"`

	// Assertions are checked against the final list.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one user action. Exactly one of Submit, Remove or Reload is set.
type Step struct {
	Submit *SubmitStep `yaml:"submit,omitempty"`

	// Remove is a zero-based list position.
	Remove *int `yaml:"remove,omitempty"`

	Reload bool `yaml:"reload,omitempty"`

	// Expect is the expected result: saved, rejected or failed for submit;
	// ok or error for remove and reload. Empty skips the check.
	Expect string `yaml:"expect,omitempty"`
}

// SubmitStep carries the raw text of the two input fields.
type SubmitStep struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

// Assertion validates the final list.
type Assertion struct {
	// Type is row_count, row or absent.
	Type string `yaml:"type"`

	// Count is the expected number of rows (row_count).
	Count int `yaml:"count,omitempty"`

	// Position is the zero-based row to check (row).
	Position int `yaml:"position,omitempty"`

	// Name is the expected title (row) or the title that must not appear (absent).
	Name string `yaml:"name,omitempty"`

	// Location is the expected binder (row).
	Location int `yaml:"location,omitempty"`
}

// Assertion type constants.
const (
	AssertRowCount = "row_count"
	AssertRow      = "row"
	AssertAbsent   = "absent"
)

// Expect values.
const (
	ExpectSaved    = "saved"
	ExpectRejected = "rejected"
	ExpectFailed   = "failed"
	ExpectOK       = "ok"
	ExpectError    = "error"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateStep checks that a step holds exactly one action and a matching expect.
func validateStep(index int, st *Step) error {
	actions := 0
	if st.Submit != nil {
		actions++
	}
	if st.Remove != nil {
		actions++
	}
	if st.Reload {
		actions++
	}
	if actions != 1 {
		return fmt.Errorf("steps[%d]: exactly one of submit, remove or reload is required", index)
	}

	if st.Remove != nil && *st.Remove < 0 {
		return fmt.Errorf("steps[%d]: remove position must be non-negative", index)
	}

	if st.Expect == "" {
		return nil
	}
	if st.Submit != nil {
		switch st.Expect {
		case ExpectSaved, ExpectRejected, ExpectFailed:
			return nil
		}
		return fmt.Errorf("steps[%d]: expect must be saved, rejected or failed for submit", index)
	}
	if st.Expect != ExpectOK && st.Expect != ExpectError {
		return fmt.Errorf("steps[%d]: expect must be ok or error", index)
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertRowCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for row_count", index)
		}
	case AssertRow:
		if a.Position < 0 {
			return fmt.Errorf("assertions[%d]: position must be non-negative for row", index)
		}
	case AssertAbsent:
		if a.Name == "" {
			return fmt.Errorf("assertions[%d]: name is required for absent", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
