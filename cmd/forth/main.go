// Command forth evaluates forth expressions, scripts, or an interactive
// session.
//
// Usage:
//
//	forth [flags] [script ...]
//
// Expressions given with -e run first, then each script, line by line; the
// final stack is then printed. Without either, lines are read from stdin: as
// an editable prompt with history when stdin is a terminal.
//
// With -db, every definition is saved in a SQLite database and restored by
// the next run using the same database.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	forth "github.com/jcorbin/goforth"
	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/logio"
	"github.com/jcorbin/goforth/internal/panicerr"
	"github.com/jcorbin/goforth/internal/store"
)

type config struct {
	expr    string
	files   []string
	dbPath  string
	reset   bool
	history string
	trace   bool
	dump    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.expr, "e", "", "evaluate an expression")
	flag.StringVar(&cfg.dbPath, "db", "", "save definitions to, and restore them from, a SQLite database")
	flag.BoolVar(&cfg.reset, "reset", false, "forget any definitions saved in the -db database")
	flag.StringVar(&cfg.history, "history", "", "interactive line history file")
	flag.BoolVar(&cfg.trace, "trace", false, "enable trace logging")
	flag.BoolVar(&cfg.dump, "dump", false, "dump the stack and dictionary before exiting")
	flag.Parse()
	cfg.files = flag.Args()

	var log logio.Logger
	log.SetOutput(os.Stderr)
	log.ErrorIf(panicerr.Recover("forth", func() error {
		return run(&log, cfg, os.Stdin, os.Stdout)
	}))
	os.Exit(log.ExitCode())
}

func run(log *logio.Logger, cfg config, stdin io.Reader, stdout io.Writer) (rerr error) {
	sess := session{
		log: log,
		out: flushio.NewWriteFlusher(stdout),
	}
	defer func() {
		if err := sess.out.Flush(); rerr == nil {
			rerr = err
		}
	}()

	opts := []forth.Option{
		forth.WithBuiltin("||", forth.Concat),
		forth.WithDefinitionLog(sess.record),
	}
	if cfg.trace {
		opts = append(opts, forth.WithLogf(log.Leveledf("TRACE")))
	}
	sess.in = forth.New(opts...)

	if cfg.dbPath != "" {
		db, err := store.NewSQLite(cfg.dbPath)
		if err != nil {
			return fmt.Errorf("unable to open definitions database: %w", err)
		}
		defer db.Close()
		if cfg.reset {
			if err := db.Reset(); err != nil {
				return err
			}
		}
		n, err := store.Replay(db, sess.in)
		if err != nil {
			return err
		}
		log.Printf("INFO", "restored %v definitions from %v", n, cfg.dbPath)
		sess.journal = db
	}

	if cfg.expr == "" && len(cfg.files) == 0 {
		err := sess.repl(stdin, cfg.history)
		sess.dumpIf(cfg.dump)
		return err
	}

	if cfg.expr == "" || sess.eval("-e", cfg.expr) {
		sess.runFiles(cfg.files)
	}
	sess.printStack("")
	sess.dumpIf(cfg.dump)
	return nil
}

func (sess *session) runFiles(names []string) {
	var in fileinput.Input
	defer in.Close()
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			sess.log.Errorf("%v", err)
			return
		}
		in.Queue = append(in.Queue, f)
	}
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			return
		} else if err != nil {
			sess.log.Errorf("%v", err)
			return
		}
		if !sess.eval(in.Last.String(), line) {
			return
		}
	}
}
