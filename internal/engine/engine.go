package engine

import (
	"fmt"
	"io"

	"github.com/foxlang/fox/internal/ast"
	"github.com/foxlang/fox/internal/token"
)

// Engine owns the operand stack and the function registry. One engine
// instance is single-threaded: one stack, one locals chain, one active
// evaluation.
type Engine struct {
	Definitions *Env[Function]
	Stack       *Stack

	// Trace, when set, receives the stack before every expression.
	Trace io.Writer

	quoteID int
}

func New() *Engine {
	return &Engine{
		Definitions: NewEnv[Function](),
		Stack:       NewStack(),
	}
}

// Eval executes an expression sequence against the engine stack with a
// fresh locals scope. It returns at the first error; the stack keeps
// whatever state it had at that point.
func (e *Engine) Eval(exprs []ast.Expr) error {
	return e.eval(exprs, nil)
}

func (e *Engine) eval(exprs []ast.Expr, parent *Env[Value]) error {
	locals := NewEnclosedEnv(parent)

	for _, expr := range exprs {
		if e.Trace != nil {
			fmt.Fprintf(e.Trace, "%s\t%s\n", e.Stack, expr)
		}

		switch ex := expr.(type) {
		case *ast.LiteralExpr:
			e.pushLiteral(ex.Value)

		case *ast.QuoteExpr:
			// Quotations become anonymous functions stored by
			// identity; the value only carries the name. Every
			// evaluation of a quote registers a fresh entry; quote
			// bodies are never mutated, so entries share the body.
			e.Stack.PushSymbol(e.registerQuote(ex.Body))

		case *ast.LocalExpr:
			// Pop k values; the last name binds the top of the
			// stack.
			for i := len(ex.Names) - 1; i >= 0; i-- {
				v, err := e.Stack.Pop()
				if err != nil {
					return &StackError{Msg: fmt.Sprintf("missing value for local %q", ex.Names[i])}
				}
				locals.Set(ex.Names[i], v)
			}

		case *ast.TermExpr:
			if err := e.evalTerm(ex, locals); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Engine) evalTerm(ex *ast.TermExpr, locals *Env[Value]) error {
	name := ex.FullName()

	if local, ok := locals.Get(name); ok {
		if local.Kind() == KindSymbol {
			// A symbol-valued local is a late-bound function
			// reference: resolve and invoke it.
			sym, _ := local.AsSymbol()
			f, ok := e.Definitions.Get(sym)
			if !ok {
				return &UnknownSymbolError{Name: sym}
			}
			return e.call(f, locals)
		}
		e.Stack.Push(local.Clone())
		return nil
	}

	if f, ok := e.Definitions.Get(name); ok {
		return e.call(f, locals)
	}

	return &UnknownSymbolError{Name: name}
}

func (e *Engine) call(f Function, locals *Env[Value]) error {
	switch fn := f.(type) {
	case *Fox:
		return e.eval(fn.Body, locals)
	case *NativeFn:
		if locals == nil {
			locals = NewEnv[Value]()
		}
		return fn.Handler(e.Definitions, locals, e.Stack)
	default:
		return &UnknownSymbolError{Name: f.FuncName()}
	}
}

// Invoke resolves a name in the function registry and calls it with a
// fresh locals scope. Native handlers use it to run quotation values.
func (e *Engine) Invoke(name string) error {
	f, ok := e.Definitions.Get(name)
	if !ok {
		return &UnknownSymbolError{Name: name}
	}
	return e.call(f, nil)
}

func (e *Engine) pushLiteral(lit token.Literal) {
	switch lit.Kind {
	case token.LitInt:
		// Ints fold into Num on the stack.
		e.Stack.PushNum(float64(lit.Int))
	case token.LitFloat:
		e.Stack.PushNum(lit.Float)
	case token.LitChar:
		e.Stack.PushChar(lit.Char)
	case token.LitString:
		e.Stack.PushStr(lit.Str)
	}
}

// registerQuote stores a quote body as an anonymous Fox. The generated
// name contains ':', which cannot appear in a source-level term, so
// user words never collide with it.
func (e *Engine) registerQuote(body []ast.Expr) string {
	e.quoteID++
	name := fmt.Sprintf("quote:%d", e.quoteID)
	e.Definitions.Set(name, NewFox(name, body))
	return name
}

// LoadProgram registers every function definition of a parsed program
// as a Fox entry. Type definitions are metadata and are skipped.
func (e *Engine) LoadProgram(program *ast.Program) {
	for _, def := range program.Definitions {
		if fd, ok := def.(*ast.FunctionDefinition); ok {
			e.Definitions.Set(fd.Name, NewFox(fd.Name, fd.Body))
		}
	}
}
