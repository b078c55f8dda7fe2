// Package store persists the definitions made by a forth interpreter, so
// that a later session can replay them.
package store

import (
	"fmt"

	forth "github.com/jcorbin/goforth"
)

// Store is an append-only journal of definitions.
type Store interface {
	// Append records a definition after any prior ones.
	Append(def forth.Definition) error

	// Definitions returns every recorded definition, oldest first.
	Definitions() ([]forth.Definition, error)

	// Reset discards all recorded definitions.
	Reset() error

	// Close releases resources.
	Close() error
}

// Replay evaluates every stored definition in order, so that the given
// interpreter ends up with the same dictionary as the session(s) that
// recorded them. Stops at the first error.
func Replay(s Store, in *forth.Interpreter) (int, error) {
	defs, err := s.Definitions()
	if err != nil {
		return 0, err
	}
	for i, def := range defs {
		if err := in.Eval(def.Source); err != nil {
			return i, fmt.Errorf("replaying definition #%v of %v: %w", i+1, def.Name, err)
		}
	}
	return len(defs), nil
}
