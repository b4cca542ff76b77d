package ast

import (
	"strings"

	"github.com/foxlang/fox/internal/token"
)

// Expr is a single postfix expression.
type Expr interface {
	Node
	exprNode()
}

// LiteralExpr pushes a literal value.
type LiteralExpr struct {
	Token token.Token
	Value token.Literal
}

func (le *LiteralExpr) exprNode()             {}
func (le *LiteralExpr) GetToken() token.Token { return le.Token }
func (le *LiteralExpr) String() string        { return le.Value.String() }

// TermExpr references a named word, possibly qualified by a module path.
type TermExpr struct {
	Token  token.Token
	Name   string
	Module []string
}

func (te *TermExpr) exprNode()             {}
func (te *TermExpr) GetToken() token.Token { return te.Token }
func (te *TermExpr) String() string        { return te.FullName() }

// FullName joins the module path and name with dots.
func (te *TermExpr) FullName() string {
	if len(te.Module) == 0 {
		return te.Name
	}
	return strings.Join(te.Module, ".") + "." + te.Name
}

// Term builds a TermExpr from a dot-joined full name. Used by the
// desugaring rules, which reference words like Core.List.push.
func Term(fullName string) *TermExpr {
	parts := strings.Split(fullName, ".")
	return &TermExpr{
		Name:   parts[len(parts)-1],
		Module: parts[:len(parts)-1],
	}
}

// LocalExpr binds the top N stack values to names: -> x, y
type LocalExpr struct {
	Token token.Token
	Names []string
}

func (le *LocalExpr) exprNode()             {}
func (le *LocalExpr) GetToken() token.Token { return le.Token }
func (le *LocalExpr) String() string        { return "-> " + strings.Join(le.Names, ", ") }

// QuoteExpr is a nested, unevaluated code body: { ... }
type QuoteExpr struct {
	Token token.Token
	Body  []Expr
}

func (qe *QuoteExpr) exprNode()             {}
func (qe *QuoteExpr) GetToken() token.Token { return qe.Token }
func (qe *QuoteExpr) String() string {
	if len(qe.Body) == 0 {
		return "{ }"
	}
	return "{ " + ExprsString(qe.Body) + " }"
}

// ExprsString renders an expression sequence space-joined, the way the
// source reads after desugaring. Parser tests compare against it.
func ExprsString(exprs []Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, " ")
}
