package lexer

import (
	"github.com/foxlang/fox/internal/pipeline"
	"github.com/foxlang/fox/internal/token"
)

// bufferedLexer adapts a Lexer to the pipeline.TokenStream contract
// with single-token lookahead.
type bufferedLexer struct {
	l      *Lexer
	peeked *token.Token
}

func NewTokenStream(l *Lexer) pipeline.TokenStream {
	return &bufferedLexer{l: l}
}

func (bl *bufferedLexer) Next() token.Token {
	if bl.peeked != nil {
		tok := *bl.peeked
		bl.peeked = nil
		return tok
	}
	return bl.l.NextToken()
}

func (bl *bufferedLexer) Peek() token.Token {
	if bl.peeked == nil {
		tok := bl.l.NextToken()
		bl.peeked = &tok
	}
	return *bl.peeked
}

var _ pipeline.TokenStream = (*bufferedLexer)(nil)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	ctx.TokenStream = NewTokenStream(l)
	return ctx
}
