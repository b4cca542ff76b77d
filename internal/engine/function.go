package engine

import "github.com/foxlang/fox/internal/ast"

// Handler is a host-native operation. It is called with read access to
// the function registry and the current locals, and mutable access to
// the operand stack. Handlers are the only place arbitrary host
// effects occur; they may be closures over an Engine when they need to
// re-enter evaluation.
type Handler func(defs *Env[Function], locals *Env[Value], st *Stack) error

// Function is an entry in the registry: either a user-defined word
// with a code body, or a host-native operation.
type Function interface {
	FuncName() string
}

// Fox is a user-defined word; invoking it re-evaluates its body.
type Fox struct {
	Name string
	Body []ast.Expr
}

func (f *Fox) FuncName() string { return f.Name }

func NewFox(name string, body []ast.Expr) *Fox {
	return &Fox{Name: name, Body: body}
}

// NativeFn is a host-registered operation.
type NativeFn struct {
	Name    string
	Handler Handler
}

func (f *NativeFn) FuncName() string { return f.Name }

func NewNative(name string, handler Handler) *NativeFn {
	return &NativeFn{Name: name, Handler: handler}
}
