package pipeline

import (
	"github.com/foxlang/fox/internal/ast"
	"github.com/foxlang/fox/internal/diagnostics"
)

// PipelineContext holds all the data passed between pipeline stages.
type PipelineContext struct {
	SourceCode  string
	FilePath    string // Path to the source file (if any)
	TokenStream TokenStream
	Program     *ast.Program
	Errors      []*diagnostics.DiagnosticError
}

// NewPipelineContext creates and initializes a new PipelineContext.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		Errors:     []*diagnostics.DiagnosticError{},
	}
}

// HasErrors reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}
