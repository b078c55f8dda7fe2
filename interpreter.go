package forth

import (
	"fmt"
	"strconv"
	"strings"
)

// Interpreter evaluates programs against a persistent stack and dictionary.
// It is not safe for concurrent use.
type Interpreter struct {
	logging

	stack Stack
	dict  Dictionary

	defined func(Definition)
}

// Definition records the source of a definition committed by Eval.
type Definition struct {
	Name   string
	Source string
}

// New creates an interpreter with an empty stack and a dictionary holding the
// builtin words + - * / DUP DROP SWAP OVER.
func New(opts ...Option) *Interpreter {
	var in Interpreter
	in.dict.defineBuiltins()
	in.apply(opts...)
	return &in
}

// Stack returns a copy of the stack contents, bottom first.
func (in *Interpreter) Stack() []int64 { return in.stack.Values() }

// Words returns every defined name, in order of first definition.
func (in *Interpreter) Words() []string { return in.dict.Names() }

// Lookup returns the word currently bound to name, if any.
func (in *Interpreter) Lookup(name string) (Word, bool) { return in.dict.Lookup(name) }

// Eval parses the whitespace separated tokens of input into a program, and
// then runs that program.
//
// Words are resolved as they are parsed, and definitions are added to the
// dictionary as soon as their closing ";" is parsed. So a word referenced
// before being redefined keeps its prior meaning, and definitions made before
// a failure stay defined.
//
// Parse errors (UnknownWord, InvalidWord) leave the stack untouched. Runtime
// errors stop the program, leaving whatever it had done to the stack so far.
func (in *Interpreter) Eval(input string) error {
	p := parser{Interpreter: in, tokens: strings.Fields(input)}
	prog, err := p.parse()
	if err != nil {
		in.logf("!", "parse error: %v", err)
		return err
	}
	if err := in.exec(prog); err != nil {
		in.logf("!", "exec error: %v", err)
		return err
	}
	return nil
}

func (in *Interpreter) exec(prog *Composite) error {
	if in.logfn == nil {
		return prog.Call(&in.stack, &in.dict)
	}
	for i, word := range prog.words {
		in.logf("@", "exec[%v] %v -- s:%v", i, word, in.stack.values)
		if err := word.Call(&in.stack, &in.dict); err != nil {
			return err
		}
	}
	in.logf("@", "done -- s:%v", in.stack.values)
	return nil
}

type parser struct {
	*Interpreter
	tokens []string
	pos    int

	// committed holds the outermost definitions installed so far
	committed []span
}

type span struct {
	name       string
	start, end int
}

func (p *parser) parse() (*Composite, error) {
	defer p.report()
	return p.parseWords("", true)
}

func (p *parser) next() (string, bool) {
	if p.pos < len(p.tokens) {
		token := p.tokens[p.pos]
		p.pos++
		return token, true
	}
	return "", false
}

// parseWords collects words into a composite, until the end of input when
// topmost, or until the ";" that ends the named definition.
func (p *parser) parseWords(name string, topmost bool) (*Composite, error) {
	var words []Word
	for {
		token, ok := p.next()
		switch {
		case !ok && topmost:
			return newComposite(name, words), nil

		case !ok:
			return nil, fmt.Errorf("unterminated definition of %v: %w", name, InvalidWord)

		case token == ":":
			if err := p.parseDefinition(); err != nil {
				return nil, err
			}

		case token == ";" && topmost:
			return nil, fmt.Errorf("unmatched ;: %w", InvalidWord)

		case token == ";":
			return newComposite(name, words), nil

		default:
			word, err := p.resolve(token)
			if err != nil {
				return nil, err
			}
			words = append(words, word)
		}
	}
}

// parseDefinition parses a name and body after a ":", and installs the
// resulting word into the dictionary.
func (p *parser) parseDefinition() error {
	start := p.pos - 1

	token, ok := p.next()
	if !ok {
		return fmt.Errorf("missing definition name: %w", InvalidWord)
	}
	if _, err := strconv.ParseInt(token, 10, 64); err == nil {
		return fmt.Errorf("cannot define number %v: %w", token, InvalidWord)
	}
	name := canonicalName(token)

	p.logf(">", "define %v", name)
	word, err := p.parseWords(name, false)
	if err != nil {
		return err
	}
	p.dict.define(word)
	p.logf(":", "%v %v ;", name, strings.Join(p.tokens[start+2:p.pos-1], " "))

	p.commit(span{name, start, p.pos})
	return nil
}

func (p *parser) resolve(token string) (Word, error) {
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return Literal(n), nil
	}
	if word, defined := p.dict.Lookup(token); defined {
		return word, nil
	}
	return nil, wordError{token, UnknownWord}
}

// commit records a completed definition, replacing any nested definitions
// that it encloses.
func (p *parser) commit(def span) {
	i := len(p.committed)
	for i > 0 && p.committed[i-1].start > def.start {
		i--
	}
	p.committed = append(p.committed[:i], def)
}

func (p *parser) report() {
	if p.defined == nil {
		return
	}
	for _, def := range p.committed {
		p.defined(Definition{
			Name:   def.name,
			Source: strings.Join(p.tokens[def.start:def.end], " "),
		})
	}
}
