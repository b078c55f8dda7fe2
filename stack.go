package forth

// Stack is the interpreter's data stack: a standard LIFO of int64 values,
// used implicitly by every word.
type Stack struct {
	values []int64
}

// Push appends a value onto the top of the stack.
func (s *Stack) Push(val int64) { s.values = append(s.values, val) }

// Pop removes and returns the top value, or fails with StackUnderflow.
func (s *Stack) Pop() (val int64, err error) {
	i := len(s.values) - 1
	if i < 0 {
		return 0, StackUnderflow
	}
	val, s.values = s.values[i], s.values[:i]
	return val, nil
}

// Peek returns the top value without removing it, or fails with
// StackUnderflow.
func (s *Stack) Peek() (int64, error) {
	i := len(s.values) - 1
	if i < 0 {
		return 0, StackUnderflow
	}
	return s.values[i], nil
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int { return len(s.values) }

// Values returns a copy of the stack contents, bottom first.
func (s *Stack) Values() []int64 {
	values := make([]int64, len(s.values))
	copy(values, s.values)
	return values
}

func (s *Stack) pop2() (a, b int64, err error) {
	if b, err = s.Pop(); err == nil {
		a, err = s.Pop()
	}
	return a, b, err
}
