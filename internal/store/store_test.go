package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forth "github.com/jcorbin/goforth"
	"github.com/jcorbin/goforth/internal/store"
)

func Test_Memory(t *testing.T) {
	s := store.NewMemory()
	defer s.Close()
	testStore(t, s)
}

func Test_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forth.db")

	s, err := store.NewSQLite(path)
	require.NoError(t, err, "must create sqlite store")
	testStore(t, s)

	require.NoError(t, s.Append(forth.Definition{Name: "FOO", Source: ": foo 1 ;"}))
	require.NoError(t, s.Close())

	s2, err := store.NewSQLite(path)
	require.NoError(t, err, "must reopen sqlite store")
	defer s2.Close()
	defs, err := s2.Definitions()
	require.NoError(t, err)
	assert.Equal(t, []forth.Definition{
		{Name: "FOO", Source: ": foo 1 ;"},
	}, defs, "expected definitions to persist")
}

func Test_SQLite_schemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forth.db")

	s, err := store.NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE metadata SET value = '99' WHERE key = 'schema_version'`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = store.NewSQLite(path)
	assert.EqualError(t, err, "unsupported schema version: 99 (expected 1)")
}

func Test_Replay(t *testing.T) {
	s := store.NewMemory()

	orig := forth.New(forth.WithDefinitionLog(func(def forth.Definition) {
		require.NoError(t, s.Append(def))
	}))
	require.NoError(t, orig.Eval(`: sq dup * ; : cube dup sq * ; 2`))
	require.NoError(t, orig.Eval(`: sq drop 0 ; 3 cube`))

	in := forth.New()
	n, err := store.Replay(s, in)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "expected replayed definitions")
	assert.Equal(t, []int64{}, in.Stack(), "expected replay to leave no values")

	require.NoError(t, in.Eval(`3 cube 3 sq`))
	assert.Equal(t, []int64{27, 0}, in.Stack())
}

func Test_Replay_error(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Append(forth.Definition{Name: "FOO", Source: ": foo 1 ;"}))
	require.NoError(t, s.Append(forth.Definition{Name: "BAR", Source: ": bar baz ;"}))

	n, err := store.Replay(s, forth.New())
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, forth.UnknownWord)
	assert.EqualError(t, err, "replaying definition #2 of BAR: baz: unknown word")
}

func testStore(t *testing.T, s store.Store) {
	defs, err := s.Definitions()
	require.NoError(t, err)
	assert.Empty(t, defs, "expected no initial definitions")

	want := []forth.Definition{
		{Name: "FOO", Source: ": foo 1 ;"},
		{Name: "BAR", Source: ": bar foo foo ;"},
		{Name: "FOO", Source: ": Foo 2 ;"},
	}
	for _, def := range want {
		require.NoError(t, s.Append(def), "must append %v", def.Name)
	}
	defs, err = s.Definitions()
	require.NoError(t, err)
	assert.Equal(t, want, defs, "expected definitions in append order")

	require.NoError(t, s.Reset())
	defs, err = s.Definitions()
	require.NoError(t, err)
	assert.Empty(t, defs, "expected no definitions after reset")
}
