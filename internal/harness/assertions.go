package harness

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/paint/internal/imdata"
	"github.com/roach88/paint/internal/journal"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion %s failed: expected %s, got %s", e.Type, e.Expected, e.Actual)
}

func evaluateAssertion(ctx context.Context, a Assertion, r *Result, j *journal.Journal) error {
	switch a.Type {
	case AssertBoard:
		want, err := parseBoard(a.Board)
		if err != nil {
			return err
		}
		if !imdata.Equals(want, r.Final) {
			return &AssertionError{
				Type:     a.Type,
				Expected: quoteBoard(want),
				Actual:   quoteBoard(r.Final),
			}
		}

	case AssertCell:
		on, err := r.Final.Get(*a.Row, *a.Col)
		if err != nil {
			return err
		}
		if on != *a.On {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("(%d,%d) on=%t", *a.Row, *a.Col, *a.On),
				Actual:   fmt.Sprintf("on=%t", on),
			}
		}

	case AssertEmpty:
		rows, cols := r.Final.Dimensions()
		empty, err := imdata.MakeEmpty(rows, cols)
		if err != nil {
			return err
		}
		if !imdata.Equals(empty, r.Final) {
			return &AssertionError{
				Type:     a.Type,
				Expected: "empty board",
				Actual:   quoteBoard(r.Final),
			}
		}

	case AssertOnCount:
		if n := r.Final.CountOn(); n != *a.Count {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("%d lit cells", *a.Count),
				Actual:   fmt.Sprintf("%d", n),
			}
		}

	case AssertStaged:
		if r.Staged != *a.Staged {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("staged=%t", *a.Staged),
				Actual:   fmt.Sprintf("staged=%t", r.Staged),
			}
		}

	case AssertDirtyRows:
		if !slices.Equal(a.Rows, r.LastDirty) && !(len(a.Rows) == 0 && len(r.LastDirty) == 0) {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("%v", a.Rows),
				Actual:   fmt.Sprintf("%v", r.LastDirty),
			}
		}

	case AssertJournalCount:
		n, err := j.Count(ctx, a.Outcome)
		if err != nil {
			return err
		}
		if n != *a.Count {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("%d entries (outcome=%q)", *a.Count, a.Outcome),
				Actual:   fmt.Sprintf("%d", n),
			}
		}

	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}

func quoteBoard(b *imdata.Board) string {
	return "[" + strings.ReplaceAll(b.String(), "\n", " ") + "]"
}
