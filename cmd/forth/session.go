package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	forth "github.com/jcorbin/goforth"
	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/logio"
	"github.com/jcorbin/goforth/internal/store"
)

type session struct {
	log     *logio.Logger
	out     flushio.WriteFlusher
	in      *forth.Interpreter
	journal store.Store
}

func (sess *session) record(def forth.Definition) {
	if sess.journal != nil {
		sess.log.ErrorIf(sess.journal.Append(def))
	}
}

// eval evaluates one line of non-interactive input, logging any error with
// its location; errors make for a non-zero exit code.
func (sess *session) eval(loc, line string) bool {
	if err := sess.in.Eval(line); err != nil {
		sess.log.Errorf("%v: %v", loc, err)
		return false
	}
	return true
}

// interact evaluates one line of interactive input, answering with the
// resulting stack; errors are only reported.
func (sess *session) interact(loc, line string) {
	if err := sess.in.Eval(line); err != nil {
		sess.log.Printf("ERROR", "%v: %v", loc, err)
		return
	}
	sess.printStack("ok")
	sess.log.ErrorIf(sess.out.Flush())
}

func (sess *session) printStack(suffix string) {
	stack := sess.in.Stack()
	parts := make([]string, 0, len(stack)+1)
	for _, val := range stack {
		parts = append(parts, fmt.Sprint(val))
	}
	if suffix != "" {
		parts = append(parts, suffix)
	}
	fmt.Fprintln(sess.out, strings.Join(parts, " "))
}

func (sess *session) dumpIf(dump bool) {
	if !dump {
		return
	}
	lw := logio.Writer{Logf: sess.log.Leveledf("DUMP")}
	defer lw.Close()
	sess.log.ErrorIf(sess.in.Dump(&lw))
}

func (sess *session) repl(stdin io.Reader, history string) error {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return sess.readlineREPL(history)
	}
	return sess.basicREPL(stdin)
}

func (sess *session) basicREPL(stdin io.Reader) error {
	in := fileinput.Input{Queue: []io.Reader{fileinput.NamedReader("<stdin>", stdin)}}
	defer in.Close()
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		sess.interact(in.Last.String(), line)
	}
}

func (sess *session) readlineREPL(history string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistoryFile:       history,
		AutoComplete:      wordCompleter{sess.in},
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// answers go out through readline so that they don't mangle the prompt
	sess.out = flushio.NewWriteFlusher(rl.Stdout())
	sess.log.SetOutput(rl.Stderr())

	for n := 1; ; n++ {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		sess.interact(fmt.Sprintf("<tty>:%v", n), line)
	}
}

// wordCompleter completes the word under the cursor from the dictionary,
// matching case-insensitively and answering in the case being typed.
type wordCompleter struct{ in *forth.Interpreter }

func (wc wordCompleter) Do(line []rune, pos int) (suffixes [][]rune, length int) {
	start := pos
	for start > 0 && !isSpace(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}
	lower := prefix == strings.ToLower(prefix)
	for _, name := range wc.in.Words() {
		if len(name) <= len(prefix) || !strings.EqualFold(name[:len(prefix)], prefix) {
			continue
		}
		rest := name[len(prefix):]
		if lower {
			rest = strings.ToLower(rest)
		}
		suffixes = append(suffixes, []rune(rest))
	}
	return suffixes, len([]rune(prefix))
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }
