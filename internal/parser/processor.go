package parser

import (
	"github.com/foxlang/fox/internal/diagnostics"
	"github.com/foxlang/fox/internal/pipeline"
	"github.com/foxlang/fox/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// Should not happen when the lexer runs first, but as a safeguard:
		err := diagnostics.NewPhaseError(diagnostics.PhaseParser, diagnostics.ErrP001, token.Token{}, "a token stream", "nil")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	p := New(ctx.TokenStream, ctx)
	ctx.Program = p.ParseProgram()
	return ctx
}
