package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a sequence of intents and the expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario (and names its golden file).
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Rows and Cols size an empty starting board. Ignored when Initial is set.
	Rows int `yaml:"rows,omitempty"`
	Cols int `yaml:"cols,omitempty"`

	// Initial is an optional starting board, one string per row,
	// '#' for on and '.' for off.
	Initial []string `yaml:"initial,omitempty"`

	// Session is the journal session token. Defaults to testutil.DefaultSession.
	Session string `yaml:"session,omitempty"`

	Steps      []Step      `yaml:"steps"`
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one intent or commit.
type Step struct {
	// Op is one of toggle, reset, invert, commit.
	Op string `yaml:"op"`

	// Row and Col address the cell for toggle.
	Row *int `yaml:"row,omitempty"`
	Col *int `yaml:"col,omitempty"`

	// ExpectError names the error the step must fail with (out_of_range).
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Assertion validates the final state.
type Assertion struct {
	// Type is one of board, cell, empty, on_count, staged, dirty_rows,
	// journal_count.
	Type string `yaml:"type"`

	Board []string `yaml:"board,omitempty"` // board
	Row   *int     `yaml:"row,omitempty"`   // cell
	Col   *int     `yaml:"col,omitempty"`   // cell
	On    *bool    `yaml:"on,omitempty"`    // cell

	// Count is the expected number for on_count and journal_count.
	Count *int `yaml:"count,omitempty"`

	// Staged is the expected staged-slot occupancy for staged.
	Staged *bool `yaml:"staged,omitempty"`

	// Rows is the expected dirty row set for dirty_rows.
	Rows []int `yaml:"rows,omitempty"`

	// Outcome filters journal_count; empty counts every entry.
	Outcome string `yaml:"outcome,omitempty"`
}

// Step operations.
const (
	OpToggle = "toggle"
	OpReset  = "reset"
	OpInvert = "invert"
	OpCommit = "commit"
)

// Assertion types.
const (
	AssertBoard        = "board"
	AssertCell         = "cell"
	AssertEmpty        = "empty"
	AssertOnCount      = "on_count"
	AssertStaged       = "staged"
	AssertDirtyRows    = "dirty_rows"
	AssertJournalCount = "journal_count"
)

// ExpectOutOfRange is the only ExpectError value a step may carry.
const ExpectOutOfRange = "out_of_range"

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

// ParseScenario parses scenario YAML. See LoadScenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
// Out-of-range coordinates are allowed: rejecting them is behaviour under test.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Initial) == 0 && (s.Rows <= 0 || s.Cols <= 0) {
		return fmt.Errorf("rows and cols must be positive (or give an initial board)")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		switch step.Op {
		case OpToggle:
			if step.Row == nil || step.Col == nil {
				return fmt.Errorf("steps[%d]: toggle requires row and col", i)
			}
		case OpReset, OpInvert, OpCommit:
			if step.Row != nil || step.Col != nil {
				return fmt.Errorf("steps[%d]: %s takes no row or col", i, step.Op)
			}
		default:
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}
		if step.ExpectError != "" && step.ExpectError != ExpectOutOfRange {
			return fmt.Errorf("steps[%d]: unknown expect_error %q", i, step.ExpectError)
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(a); err != nil {
			return fmt.Errorf("assertions[%d]: %w", i, err)
		}
	}
	return nil
}

func validateAssertion(a Assertion) error {
	switch a.Type {
	case AssertBoard:
		if len(a.Board) == 0 {
			return fmt.Errorf("board requires board lines")
		}
	case AssertCell:
		if a.Row == nil || a.Col == nil || a.On == nil {
			return fmt.Errorf("cell requires row, col and on")
		}
	case AssertOnCount, AssertJournalCount:
		if a.Count == nil {
			return fmt.Errorf("%s requires count", a.Type)
		}
	case AssertStaged:
		if a.Staged == nil {
			return fmt.Errorf("staged requires staged")
		}
	case AssertEmpty, AssertDirtyRows:
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}
