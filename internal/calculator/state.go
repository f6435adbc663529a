package calculator

import (
	"math/big"

	"numsys-api/internal/radix"
)

// DisplayError is the literal the display shows after a failed evaluation.
const DisplayError = "Error"

// State is one calculator session: a display buffer of digits in the current
// radix plus at most one held operand and operator. Callers own the instance;
// methods mutate it in place and none are safe for concurrent use.
type State struct {
	radix   int
	buffer  string
	pending *big.Int
	op      Op
}

// NewState returns a cleared calculator fixed to radix r.
func NewState(r int) (*State, error) {
	if _, err := radix.Lookup(r); err != nil {
		return nil, err
	}
	return &State{radix: r, buffer: "0"}, nil
}

// Radix reports the session's current radix.
func (s *State) Radix() int { return s.radix }

// Display reports the buffer: a numeral in the session radix, or DisplayError.
func (s *State) Display() string { return s.buffer }

// Pending reports the held operator and a copy of the held operand, if any.
func (s *State) Pending() (Op, *big.Int, bool) {
	if s.pending == nil {
		return "", nil, false
	}
	return s.op, new(big.Int).Set(s.pending), true
}

// PressDigit appends a digit to the buffer. A lone "0" and the error display
// are replaced rather than extended. The digit must already be valid for the
// session radix; rejecting foreign digits is the caller's job.
func (s *State) PressDigit(c byte) {
	if s.buffer == "0" || s.buffer == DisplayError {
		s.buffer = string(c)
		return
	}
	s.buffer += string(c)
}

// ClearAll resets the display and drops any held operator and operand.
func (s *State) ClearAll() {
	s.buffer = "0"
	s.pending = nil
	s.op = ""
}

// ClearEntry resets the display only; a held operation survives.
func (s *State) ClearEntry() {
	s.buffer = "0"
}

// Backspace drops the last character of the buffer, bottoming out at "0".
// The error display clears straight to "0".
func (s *State) Backspace() {
	if len(s.buffer) <= 1 || s.buffer == DisplayError {
		s.buffer = "0"
		return
	}
	s.buffer = s.buffer[:len(s.buffer)-1]
}

// PressOperator folds the buffer into the running calculation. With an
// operation already held, the held operand and the buffer are evaluated
// first and the result becomes both the display and the new held operand;
// otherwise the buffer is captured as the held operand. Either way op
// becomes the held operator. A failed parse or evaluation moves the display
// to DisplayError, drops the held operation, and returns the cause.
func (s *State) PressOperator(op Op) error {
	current, err := radix.ToDecimal(s.buffer, s.radix)
	if err != nil {
		return s.fail(err)
	}
	if s.pending != nil {
		result, err := evaluate(s.pending, current, s.op)
		if err != nil {
			return s.fail(err)
		}
		rendered, err := radix.FromDecimal(result, s.radix)
		if err != nil {
			return s.fail(err)
		}
		s.buffer = rendered
		s.pending = result
	} else {
		s.pending = current
	}
	s.op = op
	return nil
}

// PressEquals evaluates the held operation against the buffer and ends the
// chain. Without a held operation it does nothing. Failures behave as in
// PressOperator.
func (s *State) PressEquals() error {
	if s.pending == nil {
		return nil
	}
	current, err := radix.ToDecimal(s.buffer, s.radix)
	if err != nil {
		return s.fail(err)
	}
	result, err := Apply(s.pending, current, s.op, s.radix)
	if err != nil {
		return s.fail(err)
	}
	s.buffer = result
	s.pending = nil
	s.op = ""
	return nil
}

// SetRadix switches the session to a new radix and resets it.
func (s *State) SetRadix(r int) error {
	if _, err := radix.Lookup(r); err != nil {
		return err
	}
	s.radix = r
	s.ClearAll()
	return nil
}

func (s *State) fail(err error) error {
	s.buffer = DisplayError
	s.pending = nil
	s.op = ""
	return err
}
