// Package harness runs scripted scenarios against the list controller.
//
// A scenario drives a fresh in-memory store through the same controller the
// CLI uses, records every signal the controller sends to its display
// surface, and checks assertions on the final list.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	steps:
//	  - submit: {name: "Inception", location: "42"}
//	    expect: saved
//	  - submit: {name: "Heat", location: "7"}
//	  - remove: 1
//	    expect: ok
//	  - reload: true
//	assertions:
//	  - type: row_count
//	    count: 1
//	  - type: row
//	    position: 0
//	    name: Inception
//	    location: 42
//	  - type: absent
//	    name: Heat
//
// Each step holds exactly one of submit, remove or reload. Positions are
// zero-based, as in Controller.RemoveAt.
//
// # Assertion Types
//
//   - row_count: the list has exactly count rows
//   - row: the row at position has the given name and location
//   - absent: no row has the given name
//
// # Deterministic Testing
//
// Every run starts from an empty ":memory:" database, so ids are assigned
// from 1 and traces are identical across runs. RunWithGolden compares the
// trace with testdata/golden/<name>.golden.
package harness
