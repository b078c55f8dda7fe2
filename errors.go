package forth

import "fmt"

// Error enumerates the ways that parsing or running a program can fail.
// Errors returned by Interpreter.Eval may carry extra context, like the
// offending token; use errors.Is to test for a particular kind.
type Error uint8

const (
	// DivisionByZero is returned when dividing by a zero denominator.
	DivisionByZero Error = iota + 1

	// StackUnderflow is returned when a word needs more values than the stack
	// holds.
	StackUnderflow

	// UnknownWord is returned when a token is neither a number nor defined.
	UnknownWord

	// InvalidWord is returned for a malformed definition: missing or numeric
	// name, missing ";" terminator, or a stray ";" outside of any definition.
	InvalidWord
)

func (kind Error) Error() string {
	switch kind {
	case DivisionByZero:
		return "division by zero"
	case StackUnderflow:
		return "stack underflow"
	case UnknownWord:
		return "unknown word"
	case InvalidWord:
		return "invalid word"
	}
	return fmt.Sprintf("forth.Error(%d)", uint8(kind))
}

// wordError attributes an error to the token or word name that caused it.
type wordError struct {
	word string
	err  error
}

func (we wordError) Error() string { return fmt.Sprintf("%v: %v", we.word, we.err) }
func (we wordError) Unwrap() error { return we.err }
