package forth

import (
	"strconv"
)

//// Integer Operations

// Name   Function
//  +     pop top 2 elements of stack, add, push
func add(stack *Stack, _ *Dictionary) error {
	a, b, err := stack.pop2()
	if err == nil {
		stack.Push(a + b)
	}
	return err
}

// Name   Function
//  -     pop top 2 elements of stack, subtract the top from the second, push
func sub(stack *Stack, _ *Dictionary) error {
	a, b, err := stack.pop2()
	if err == nil {
		stack.Push(a - b)
	}
	return err
}

// Name   Function
//  *     pop top 2 elements of stack, multiply, push
func mul(stack *Stack, _ *Dictionary) error {
	a, b, err := stack.pop2()
	if err == nil {
		stack.Push(a * b)
	}
	return err
}

// Name   Function
//  /     pop denominator then numerator, push their truncated quotient
func div(stack *Stack, _ *Dictionary) error {
	num, den, err := stack.pop2()
	if err != nil {
		return err
	}
	if den == 0 {
		return DivisionByZero
	}
	stack.Push(num / den)
	return nil
}

//// Stack Operations

// Name   Function
//  DUP   push another copy of the top of stack
func dup(stack *Stack, _ *Dictionary) error {
	val, err := stack.Peek()
	if err == nil {
		stack.Push(val)
	}
	return err
}

// Name   Function
//  DROP  discard the top of stack
func drop(stack *Stack, _ *Dictionary) error {
	_, err := stack.Pop()
	return err
}

// Name   Function
//  SWAP  exchange the top two stack values
func swap(stack *Stack, _ *Dictionary) error {
	a, b, err := stack.pop2()
	if err == nil {
		stack.Push(b)
		stack.Push(a)
	}
	return err
}

// Name   Function
//  OVER  push a copy of the second stack value
func over(stack *Stack, _ *Dictionary) error {
	top, err := stack.Pop()
	if err != nil {
		return err
	}
	second, err := stack.Peek()
	if err != nil {
		return err
	}
	stack.Push(top)
	stack.Push(second)
	return nil
}

// Concat implements the optional "||" word: it pops two values and pushes the
// number spelled by their decimal digits written one after the other, so that
// "15 6 ||" leaves 156. Fails with InvalidWord if that is not a valid int64,
// as when the right value is negative or the result overflows.
//
// It is not installed by default; see WithBuiltin.
func Concat(stack *Stack, _ *Dictionary) error {
	left, right, err := stack.pop2()
	if err != nil {
		return err
	}
	digits := strconv.AppendInt(nil, left, 10)
	digits = strconv.AppendInt(digits, right, 10)
	val, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return InvalidWord
	}
	stack.Push(val)
	return nil
}

var builtins = []struct {
	name string
	fn   BuiltinFunc
}{
	{"+", add},
	{"-", sub},
	{"*", mul},
	{"/", div},
	{"DUP", dup},
	{"DROP", drop},
	{"SWAP", swap},
	{"OVER", over},
}

func (dict *Dictionary) defineBuiltins() {
	for _, bi := range builtins {
		dict.define(NewBuiltin(bi.name, bi.fn))
	}
}
