package forth

import "strings"

// Dictionary binds case-insensitive names to words. Names are interned into
// a symbol table the first time they are defined; redefining a name rebinds
// its symbol, so only the latest definition is visible to later lookups.
type Dictionary struct {
	symbols
	words []Word
}

// Lookup returns the word currently bound to name, if any.
func (dict *Dictionary) Lookup(name string) (Word, bool) {
	if id := dict.symbol(canonicalName(name)); id != 0 {
		return dict.words[id-1], true
	}
	return nil, false
}

// Names returns all defined names, in order of first definition.
func (dict *Dictionary) Names() []string {
	names := make([]string, len(dict.strings))
	copy(names, dict.strings)
	return names
}

// Len returns the number of defined names.
func (dict *Dictionary) Len() int { return len(dict.strings) }

// define binds the word under its name, which must already be canonical.
func (dict *Dictionary) define(word namedWord) {
	id := dict.symbolicate(word.Name())
	if i := int(id) - 1; i < len(dict.words) {
		dict.words[i] = word
	} else {
		dict.words = append(dict.words, word)
	}
}

type namedWord interface {
	Word
	Name() string
}

func canonicalName(name string) string { return strings.ToUpper(name) }

type symbols struct {
	strings []string
	symbols map[string]uint
}

func (sym symbols) symbol(s string) uint {
	return sym.symbols[s]
}

func (sym *symbols) symbolicate(s string) (id uint) {
	id, defined := sym.symbols[s]
	if !defined {
		if sym.symbols == nil {
			sym.symbols = make(map[string]uint)
		}
		id = uint(len(sym.strings)) + 1
		sym.strings = append(sym.strings, s)
		sym.symbols[s] = id
	}
	return id
}
