package ast

import (
	"strings"

	"github.com/foxlang/fox/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	GetToken() token.Token
	String() string
}

// Program is the root node: an ordered list of definitions.
type Program struct {
	Definitions []Definition
}

func (p *Program) String() string {
	var sb strings.Builder
	for i, d := range p.Definitions {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(d.String())
	}
	return sb.String()
}

// Definition is either a function or a type definition.
type Definition interface {
	Node
	definitionNode()
}

// FunctionDefinition is `def name (ftype)? = body...`.
type FunctionDefinition struct {
	Token token.Token // the 'def' token
	Name  string
	FType *FunctionType // optional, never enforced at runtime
	Body  []Expr
}

func (fd *FunctionDefinition) definitionNode()       {}
func (fd *FunctionDefinition) GetToken() token.Token { return fd.Token }
func (fd *FunctionDefinition) String() string {
	var sb strings.Builder
	sb.WriteString("def ")
	sb.WriteString(fd.Name)
	if fd.FType != nil {
		sb.WriteString(" ")
		sb.WriteString(fd.FType.String())
	}
	sb.WriteString(" = ")
	sb.WriteString(ExprsString(fd.Body))
	return sb.String()
}

// TypeDefinition is `type Name vars... = Variant | Variant ...`.
// Type definitions are metadata; the evaluator never consumes them.
type TypeDefinition struct {
	Token    token.Token // the 'type' token
	Name     string
	Vars     []string
	Variants []VariantDefinition
}

func (td *TypeDefinition) definitionNode()       {}
func (td *TypeDefinition) GetToken() token.Token { return td.Token }
func (td *TypeDefinition) String() string {
	var sb strings.Builder
	sb.WriteString("type ")
	sb.WriteString(td.Name)
	for _, v := range td.Vars {
		sb.WriteString(" ")
		sb.WriteString(v)
	}
	sb.WriteString(" = ")
	for i, v := range td.Variants {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(v.String())
	}
	return sb.String()
}

// VariantDefinition is a single constructor of a type definition.
// Tuple variants use positional field names `_0`, `_1`, ...
type VariantDefinition struct {
	Name  string
	Items map[string]string // field name -> type name
}

func (vd VariantDefinition) String() string {
	if len(vd.Items) == 0 {
		return vd.Name
	}
	keys := make([]string, 0, len(vd.Items))
	for k := range vd.Items {
		keys = append(keys, k)
	}
	// map order is not stable; sort for a deterministic debug form
	sortStrings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+vd.Items[k])
	}
	return vd.Name + " { " + strings.Join(parts, ", ") + " }"
}

func sortStrings(ss []string) {
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && ss[j] < ss[j-1]; j-- {
			ss[j], ss[j-1] = ss[j-1], ss[j]
		}
	}
}

// FunctionType is the optional annotation `(inputs -> outputs)` on a
// function definition. Parsed and carried, never checked.
type FunctionType struct {
	Inputs []ParamType
	Output []ParamType
}

func (ft *FunctionType) paramTypeNode() {}
func (ft *FunctionType) String() string {
	parts := make([]string, 0, len(ft.Inputs))
	for _, p := range ft.Inputs {
		parts = append(parts, p.String())
	}
	out := make([]string, 0, len(ft.Output))
	for _, p := range ft.Output {
		out = append(out, p.String())
	}
	s := "(" + strings.Join(parts, ", ")
	if len(out) > 0 {
		s += " -> " + strings.Join(out, ", ")
	}
	return s + ")"
}

// ParamType is a value type or a nested function type.
type ParamType interface {
	paramTypeNode()
	String() string
}

// ValueType is a possibly module-qualified type name: Core.List
type ValueType struct {
	Name   string
	Module []string
}

func (vt *ValueType) paramTypeNode() {}
func (vt *ValueType) String() string {
	if len(vt.Module) == 0 {
		return vt.Name
	}
	return strings.Join(vt.Module, ".") + "." + vt.Name
}
