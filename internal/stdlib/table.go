package stdlib

import (
	"strings"

	"github.com/foxlang/fox/internal/engine"
)

type tableEntry struct {
	key engine.Value
	val engine.Value
}

// Table is an insertion-ordered map keyed by value hash, with equality
// resolving collisions inside a bucket.
type Table struct {
	entries []tableEntry
	index   map[uint32][]int
}

func NewTable() *Table {
	return &Table{index: make(map[uint32][]int)}
}

// Set inserts or replaces the entry for key.
func (t *Table) Set(key, val engine.Value) {
	h := key.Hash()
	for _, i := range t.index[h] {
		if t.entries[i].key.Equal(key) {
			t.entries[i].val = val
			return
		}
	}
	t.index[h] = append(t.index[h], len(t.entries))
	t.entries = append(t.entries, tableEntry{key: key, val: val})
}

func (t *Table) Get(key engine.Value) (engine.Value, bool) {
	for _, i := range t.index[key.Hash()] {
		if t.entries[i].key.Equal(key) {
			return t.entries[i].val, true
		}
	}
	return engine.Value{}, false
}

func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) Repr() string {
	if len(t.entries) == 0 {
		return "[:]"
	}
	parts := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		parts = append(parts, e.key.Repr()+": "+e.val.Repr())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (t *Table) CloneNative() engine.NativeObject {
	nt := NewTable()
	nt.entries = make([]tableEntry, len(t.entries))
	for i, e := range t.entries {
		nt.entries[i] = tableEntry{key: e.key.Clone(), val: e.val.Clone()}
	}
	for h, idx := range t.index {
		nt.index[h] = append([]int(nil), idx...)
	}
	return nt
}
