package stdlib

import (
	"strings"

	"github.com/foxlang/fox/internal/engine"
)

// List is an ordered collection of values.
type List struct {
	Items []engine.Value
}

func NewList() *List {
	return &List{}
}

func (l *List) Repr() string {
	parts := make([]string, 0, len(l.Items))
	for _, v := range l.Items {
		parts = append(parts, v.Repr())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) CloneNative() engine.NativeObject {
	items := make([]engine.Value, len(l.Items))
	for i, v := range l.Items {
		items[i] = v.Clone()
	}
	return &List{Items: items}
}
