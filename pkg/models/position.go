package models

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// BranchSlot places a workflow step above or below the main line when two
// steps share a sequence index.
type BranchSlot int

const (
	BranchNone BranchSlot = iota
	BranchUp
	BranchDown
)

// StepPosition orders steps within one workflow. It serializes as the dotted
// string the original data uses ("3", "4.1", "4.2"): the integer part is the
// sequence index, the fractional part the branch slot (.1 up, .2 down). The
// dotted form exists only at the JSON boundary.
type StepPosition struct {
	Sequence int
	Branch   BranchSlot
}

// ParseStepPosition parses the dotted string form. Parsing is lenient:
// malformed input maps to the zero position rather than an error, so a broken
// step never poisons the whole collection it arrived with.
func ParseStepPosition(s string) StepPosition {
	var position StepPosition

	parts := strings.SplitN(s, ".", 2)

	sequence, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || sequence < 0 {
		return StepPosition{}
	}

	position.Sequence = sequence

	if len(parts) == 2 {
		branch, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || branch < 0 {
			branch = 0
		}

		switch {
		case branch == 1:
			position.Branch = BranchUp
		case branch >= 2:
			position.Branch = BranchDown
		}
	}

	return position
}

func (p StepPosition) String() string {
	s := strconv.Itoa(p.Sequence)

	switch p.Branch {
	case BranchUp:
		s += ".1"
	case BranchDown:
		s += ".2"
	case BranchNone:
	}

	return s
}

// Compare orders positions by sequence index first, branch slot second
// (main line before up, up before down), matching numeric per-segment
// comparison of the dotted form.
func (p StepPosition) Compare(other StepPosition) int {
	if p.Sequence != other.Sequence {
		return p.Sequence - other.Sequence
	}

	return int(p.Branch) - int(other.Branch)
}

func (p StepPosition) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *StepPosition) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ParseStepPosition(s)

		return nil
	}

	// Older exports stored the sequence as a bare number.
	var n float64
	if err := json.Unmarshal(data, &n); err == nil && n >= 0 {
		*p = StepPosition{Sequence: int(n)}

		return nil
	}

	*p = StepPosition{}

	return nil
}

// SortSteps orders steps by position, in place. The sort is stable so steps
// with equal positions keep their relative order.
func SortSteps(steps []WorkflowStep) {
	slices.SortStableFunc(steps, func(a, b WorkflowStep) int {
		return a.Position.Compare(b.Position)
	})
}

// NextSequence returns the sequence index a step appended to the workflow
// should get: one past the highest sequence in use.
func NextSequence(steps []WorkflowStep) int {
	max := 0

	for _, step := range steps {
		if step.Position.Sequence > max {
			max = step.Position.Sequence
		}
	}

	return max + 1
}
