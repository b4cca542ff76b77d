package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/foxlang/fox/internal/ast"
	"github.com/foxlang/fox/internal/token"
)

func num(n int64) ast.Expr {
	return &ast.LiteralExpr{Value: *token.IntLiteral(n)}
}

func str(s string) ast.Expr {
	return &ast.LiteralExpr{Value: *token.StringLiteral(s)}
}

func quote(body ...ast.Expr) ast.Expr {
	return &ast.QuoteExpr{Body: body}
}

func local(names ...string) ast.Expr {
	return &ast.LocalExpr{Names: names}
}

// testList mirrors the kind of native collection a host registers.
type testList struct {
	items []Value
}

func (l *testList) Repr() string {
	parts := make([]string, 0, len(l.items))
	for _, v := range l.items {
		parts = append(parts, v.Repr())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *testList) CloneNative() NativeObject {
	items := make([]Value, len(l.items))
	for i, v := range l.items {
		items[i] = v.Clone()
	}
	return &testList{items: items}
}

func registerListWords(e *Engine) {
	e.Definitions.Set("List.new", NewNative("List.new", func(_ *Env[Function], _ *Env[Value], st *Stack) error {
		st.PushNative(&testList{})
		return nil
	}))
	e.Definitions.Set("List.push", NewNative("List.push", func(_ *Env[Function], _ *Env[Value], st *Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		lv, err := st.Pop()
		if err != nil {
			return err
		}
		l, err := NativeMutAs[*testList](&lv)
		if err != nil {
			return err
		}
		l.items = append(l.items, v)
		st.Push(lv)
		return nil
	}))
}

func TestEvalEmptyBody(t *testing.T) {
	e := New()
	if err := e.Eval(nil); err != nil {
		t.Fatalf("empty body failed: %v", err)
	}
	if e.Stack.Len() != 0 {
		t.Errorf("stack length %d, want 0", e.Stack.Len())
	}
}

func TestEvalLiterals(t *testing.T) {
	e := New()
	err := e.Eval([]ast.Expr{num(1), str("two"),
		&ast.LiteralExpr{Value: *token.FloatLiteral(3.5)},
		&ast.LiteralExpr{Value: *token.CharLiteral('x')}})
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if got := e.Stack.String(); got != "[1, two, 3.5, x]" {
		t.Errorf("stack = %q", got)
	}
}

func TestLocalBinding(t *testing.T) {
	// 10 20 -> x, y x  ==> y binds the top (20) and is dropped
	e := New()
	err := e.Eval([]ast.Expr{num(10), num(20), local("x", "y"), ast.Term("x")})
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if got := e.Stack.String(); got != "[10]" {
		t.Errorf("stack = %q, want [10]", got)
	}
}

func TestLocalUnderflow(t *testing.T) {
	e := New()
	err := e.Eval([]ast.Expr{local("a")})
	var stackErr *StackError
	if !errors.As(err, &stackErr) {
		t.Fatalf("err = %v, want StackError", err)
	}
}

func TestUnknownSymbol(t *testing.T) {
	e := New()
	err := e.Eval([]ast.Expr{ast.Term("nope")})
	var unknown *UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownSymbolError", err)
	}
	if unknown.Name != "nope" {
		t.Errorf("name = %q, want nope", unknown.Name)
	}
	if e.Stack.Len() != 0 {
		t.Errorf("stack length %d, want 0", e.Stack.Len())
	}
}

func TestFailureKeepsStackState(t *testing.T) {
	e := New()
	err := e.Eval([]ast.Expr{num(1), ast.Term("nope")})
	if err == nil {
		t.Fatal("eval should have failed")
	}
	if got := e.Stack.String(); got != "[1]" {
		t.Errorf("stack = %q, want the pre-failure state [1]", got)
	}
}

func TestNativeWords(t *testing.T) {
	e := New()
	registerListWords(e)

	err := e.Eval([]ast.Expr{ast.Term("List.new"), num(42), ast.Term("List.push")})
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if got := e.Stack.String(); got != "[[42]]" {
		t.Errorf("stack = %q, want [[42]]", got)
	}
}

func TestFoxWordsAreInlined(t *testing.T) {
	e := New()
	e.Definitions.Set("five", NewFox("five", []ast.Expr{num(5)}))
	e.Definitions.Set("ten", NewFox("ten", []ast.Expr{ast.Term("five"), ast.Term("five")}))

	if err := e.Eval([]ast.Expr{ast.Term("ten")}); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if got := e.Stack.String(); got != "[5, 5]" {
		t.Errorf("stack = %q, want [5, 5]", got)
	}
}

func TestFoxErrorPropagates(t *testing.T) {
	e := New()
	e.Definitions.Set("boom", NewFox("boom", []ast.Expr{ast.Term("nope")}))

	err := e.Eval([]ast.Expr{ast.Term("boom")})
	var unknown *UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownSymbolError from the nested body", err)
	}
}

func TestQuoteValues(t *testing.T) {
	// A quote pushes a symbol naming an anonymous function; the body
	// is carried by value and can run any number of times.
	e := New()
	err := e.Eval([]ast.Expr{quote(num(5)), local("q"), ast.Term("q"), ast.Term("q")})
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if got := e.Stack.String(); got != "[5, 5]" {
		t.Errorf("stack = %q, want [5, 5]", got)
	}
}

func TestSymbolLocalLateBinding(t *testing.T) {
	// A local holding a symbol resolves through the registry at use
	// time.
	e := New()
	e.Stack.PushSymbol("ghost")
	err := e.Eval([]ast.Expr{local("f"), ast.Term("f")})
	var unknown *UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownSymbolError", err)
	}
	if unknown.Name != "ghost" {
		t.Errorf("name = %q, want ghost", unknown.Name)
	}
}

func TestInvoke(t *testing.T) {
	e := New()
	e.Definitions.Set("main", NewFox("main", []ast.Expr{num(7)}))

	if err := e.Invoke("main"); err != nil {
		t.Fatalf("invoke failed: %v", err)
	}
	if got := e.Stack.String(); got != "[7]" {
		t.Errorf("stack = %q, want [7]", got)
	}

	var unknown *UnknownSymbolError
	if err := e.Invoke("missing"); !errors.As(err, &unknown) {
		t.Errorf("Invoke(missing) = %v, want UnknownSymbolError", err)
	}
}

func TestLoadProgram(t *testing.T) {
	program := &ast.Program{Definitions: []ast.Definition{
		&ast.FunctionDefinition{Name: "one", Body: []ast.Expr{num(1)}},
		&ast.TypeDefinition{Name: "Ignored"},
		&ast.FunctionDefinition{Name: "main", Body: []ast.Expr{ast.Term("one")}},
	}}

	e := New()
	e.LoadProgram(program)

	if !e.Definitions.Has("one") || !e.Definitions.Has("main") {
		t.Fatal("function definitions were not registered")
	}
	if e.Definitions.Has("Ignored") {
		t.Error("type definitions must not enter the registry")
	}
	if err := e.Invoke("main"); err != nil {
		t.Fatalf("invoke failed: %v", err)
	}
	if got := e.Stack.String(); got != "[1]" {
		t.Errorf("stack = %q, want [1]", got)
	}
}

func TestCopyOnWriteThroughStack(t *testing.T) {
	e := New()
	registerListWords(e)

	// Build [1], peek a handle, then mutate the value on the stack.
	if err := e.Eval([]ast.Expr{ast.Term("List.new"), num(1), ast.Term("List.push")}); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	snapshot, err := e.Stack.Peek()
	if err != nil {
		t.Fatalf("peek failed: %v", err)
	}
	before := snapshot.Repr()

	if err := e.Eval([]ast.Expr{num(2), ast.Term("List.push")}); err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	if got := snapshot.Repr(); got != before {
		t.Errorf("snapshot changed from %q to %q after mutation", before, got)
	}
	top, _ := e.Stack.Peek()
	if got := top.Repr(); got != "[1, 2]" {
		t.Errorf("mutated list = %q, want [1, 2]", got)
	}
}
