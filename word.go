package forth

import (
	"strconv"
	"strings"
)

// Word is a callable unit of behavior: a literal number, a native builtin, or
// a user defined composite of other words. Words never change once created;
// only the Dictionary binding of a name to a word changes over time.
type Word interface {
	// Call runs the word against the given stack. The dictionary is provided
	// for words that need to look something up, and must not be modified.
	Call(stack *Stack, dict *Dictionary) error

	String() string
}

// Literal is a word that pushes its value.
type Literal int64

// Call pushes the literal value.
func (lit Literal) Call(stack *Stack, _ *Dictionary) error {
	stack.Push(int64(lit))
	return nil
}

func (lit Literal) String() string { return strconv.FormatInt(int64(lit), 10) }

// BuiltinFunc implements a native word.
type BuiltinFunc func(stack *Stack, dict *Dictionary) error

// Builtin is a named native word.
type Builtin struct {
	name string
	fn   BuiltinFunc
}

// NewBuiltin creates a builtin word; its name is canonicalized like any other
// dictionary name.
func NewBuiltin(name string, fn BuiltinFunc) *Builtin {
	return &Builtin{canonicalName(name), fn}
}

// Call runs the native function, attributing any error to the builtin name.
func (bi *Builtin) Call(stack *Stack, dict *Dictionary) error {
	if err := bi.fn(stack, dict); err != nil {
		return wordError{bi.name, err}
	}
	return nil
}

// Name returns the builtin's canonical name.
func (bi *Builtin) Name() string   { return bi.name }
func (bi *Builtin) String() string { return bi.name }

// Composite is a user defined word: an ordered list of words that were
// resolved when its definition was parsed. Redefining a name used inside a
// composite does not change the composite.
type Composite struct {
	name  string
	words []Word
}

func newComposite(name string, words []Word) *Composite {
	return &Composite{name, words}
}

// Call runs each sub-word in order, stopping at the first error.
func (comp *Composite) Call(stack *Stack, dict *Dictionary) error {
	for _, word := range comp.words {
		if err := word.Call(stack, dict); err != nil {
			return err
		}
	}
	return nil
}

// Name returns the name that the composite was defined under; it is empty
// for the anonymous program built by Interpreter.Eval.
func (comp *Composite) Name() string { return comp.name }

// Words returns a copy of the composite's sub-words.
func (comp *Composite) Words() []Word {
	words := make([]Word, len(comp.words))
	copy(words, comp.words)
	return words
}

func (comp *Composite) String() string {
	if comp.name != "" {
		return comp.name
	}
	parts := make([]string, len(comp.words))
	for i, word := range comp.words {
		parts[i] = word.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}
