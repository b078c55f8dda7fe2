package forth

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes a human readable description of the interpreter's stack and
// dictionary. Each definition is written back out in ": NAME body ;" form; a
// reference to a name whose binding has since changed is marked with a
// trailing "'", since it still refers to the older definition.
func (in *Interpreter) Dump(w io.Writer) error {
	dump := dumper{dict: &in.dict, out: bufio.NewWriter(w)}
	dump.dump(in.stack.values)
	return dump.out.Flush()
}

type dumper struct {
	dict *Dictionary
	out  *bufio.Writer
}

func (dump dumper) dump(stack []int64) {
	fmt.Fprintf(dump.out, "# Forth Dump\n")
	fmt.Fprintf(dump.out, "  stack: %v\n", stack)
	fmt.Fprintf(dump.out, "  dict: %v words\n", dump.dict.Len())
	for i, name := range dump.dict.strings {
		dump.formatWord(name, dump.dict.words[i])
	}
}

func (dump dumper) formatWord(name string, word Word) {
	dump.out.WriteString("  : ")
	dump.out.WriteString(name)
	switch impl := word.(type) {
	case *Composite:
		for _, sub := range impl.words {
			dump.out.WriteByte(' ')
			dump.formatRef(sub)
		}
		dump.out.WriteString(" ;")
	case *Builtin:
		dump.out.WriteString(" <builtin>")
	default:
		fmt.Fprintf(dump.out, " <%T %v>", word, word)
	}
	dump.out.WriteByte('\n')
}

func (dump dumper) formatRef(word Word) {
	named, ok := word.(namedWord)
	if !ok || named.Name() == "" {
		dump.out.WriteString(word.String())
		return
	}
	dump.out.WriteString(named.Name())
	if cur, _ := dump.dict.Lookup(named.Name()); cur != word {
		dump.out.WriteByte('\'')
	}
}
