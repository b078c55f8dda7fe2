package forth

import (
	"fmt"
	"strings"
)

// Option customizes an Interpreter created by New.
type Option interface{ apply(in *Interpreter) }

// Options combines any number of options into one.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

// WithLogf enables trace logging of parsing and execution.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithBuiltin defines a native word, replacing any prior definition of name.
func WithBuiltin(name string, fn BuiltinFunc) Option { return builtinOption{name, fn} }

// WithDefinitionLog calls the given function after every Eval that commits
// definitions, once per outermost definition in the order they were
// installed. Replaying every reported Source through Eval, in order,
// rebuilds the same dictionary.
func WithDefinitionLog(fn func(Definition)) Option { return definitionLog(fn) }

func (in *Interpreter) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

type options []Option

func (opts options) apply(in *Interpreter) { in.apply(opts...) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(in *Interpreter) { in.logfn = logfn }

type builtinOption struct {
	name string
	fn   BuiltinFunc
}

func (bo builtinOption) apply(in *Interpreter) {
	in.dict.define(NewBuiltin(bo.name, bo.fn))
}

type definitionLog func(Definition)

func (fn definitionLog) apply(in *Interpreter) { in.defined = fn }

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(" ", n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
