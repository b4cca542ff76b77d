package stdlib

import (
	"strings"

	"github.com/foxlang/fox/internal/engine"
)

// Tuple is a fixed-size grouping of values built by Core.TupleN.
type Tuple struct {
	Items []engine.Value
}

func (t *Tuple) Repr() string {
	parts := make([]string, 0, len(t.Items))
	for _, v := range t.Items {
		parts = append(parts, v.Repr())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *Tuple) CloneNative() engine.NativeObject {
	items := make([]engine.Value, len(t.Items))
	for i, v := range t.Items {
		items[i] = v.Clone()
	}
	return &Tuple{Items: items}
}
