package parser

import (
	"fmt"
	"strings"

	"github.com/foxlang/fox/internal/ast"
	"github.com/foxlang/fox/internal/config"
	"github.com/foxlang/fox/internal/diagnostics"
	"github.com/foxlang/fox/internal/pipeline"
	"github.com/foxlang/fox/internal/token"
)

// Parser holds the state of our parser. It stops at the first error;
// the language has no parse recovery.
type Parser struct {
	stream    pipeline.TokenStream
	ctx       *pipeline.PipelineContext
	curToken  token.Token
	peekToken token.Token
	failed    bool
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}
	// Fill curToken and peekToken
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) fail(code diagnostics.ErrorCode, phase diagnostics.Phase, tok token.Token, args ...interface{}) {
	if p.failed {
		return
	}
	p.failed = true
	err := diagnostics.NewPhaseError(phase, code, tok, args...)
	err.File = p.ctx.FilePath
	p.ctx.Errors = append(p.ctx.Errors, err)
}

// errExpected records a P001 with the set of expected alternatives.
func (p *Parser) errExpected(expected string) {
	got := p.curToken.Lexeme
	if p.curToken.Type == token.EOF {
		got = "end of file"
	}
	p.fail(diagnostics.ErrP001, diagnostics.PhaseParser, p.curToken, expected, got)
}

// lexError converts an ILLEGAL token into a lexer-phase diagnostic.
func (p *Parser) lexError(tok token.Token) {
	switch {
	case strings.HasPrefix(tok.Lexeme, `"`):
		p.fail(diagnostics.ErrL002, diagnostics.PhaseLexer, tok)
	case strings.HasPrefix(tok.Lexeme, `'`):
		p.fail(diagnostics.ErrL003, diagnostics.PhaseLexer, tok, tok.Lexeme)
	default:
		p.fail(diagnostics.ErrL001, diagnostics.PhaseLexer, tok, tok.Lexeme)
	}
}

// ParseProgram parses a sequence of definitions until EOF.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for p.curToken.Type != token.EOF && !p.failed {
		def := p.parseDefinition()
		if def != nil {
			program.Definitions = append(program.Definitions, def)
		}
	}
	return program
}

func (p *Parser) parseDefinition() ast.Definition {
	switch p.curToken.Type {
	case token.DEF:
		return p.parseFunctionDefinition()
	case token.TYPE:
		return p.parseTypeDefinition()
	case token.ILLEGAL:
		p.lexError(p.curToken)
		return nil
	default:
		p.errExpected("'def' or 'type'")
		return nil
	}
}

func (p *Parser) parseFunctionDefinition() ast.Definition {
	defTok := p.curToken
	p.nextToken()

	if p.curToken.Type != token.TERM {
		p.errExpected("a term name")
		return nil
	}
	name := p.curToken.Lexeme
	p.nextToken()

	var ftype *ast.FunctionType
	if p.curToken.Type == token.LPAREN {
		ftype = p.parseFunctionType()
		if p.failed {
			return nil
		}
	}

	if p.curToken.Type != token.ASSIGN {
		p.errExpected("'='")
		return nil
	}
	p.nextToken()

	body := p.parseExprSeq(token.DEF, token.TYPE, token.EOF)
	if p.failed {
		return nil
	}

	return &ast.FunctionDefinition{Token: defTok, Name: name, FType: ftype, Body: body}
}

// parseExprSeq parses expressions until one of the stop token types (or
// an error). EOF always stops the loop.
func (p *Parser) parseExprSeq(stops ...token.TokenType) []ast.Expr {
	stopSet := make(map[token.TokenType]bool, len(stops)+1)
	stopSet[token.EOF] = true
	for _, s := range stops {
		stopSet[s] = true
	}

	var seq []ast.Expr
	for !p.failed && !stopSet[p.curToken.Type] {
		seq = append(seq, p.parseExpr()...)
	}
	if p.failed {
		return nil
	}
	return seq
}

// parseExpr parses a single surface expression. Collection, tuple,
// lambda and if-then-else forms desugar into postfix term sequences,
// which is why the result is a slice.
func (p *Parser) parseExpr() []ast.Expr {
	switch p.curToken.Type {
	case token.INT, token.FLOAT, token.CHAR, token.STRING:
		e := &ast.LiteralExpr{Token: p.curToken, Value: *p.curToken.Literal}
		p.nextToken()
		return []ast.Expr{e}
	case token.TERM:
		e := &ast.TermExpr{Token: p.curToken, Name: p.curToken.Lexeme}
		p.nextToken()
		return []ast.Expr{e}
	case token.MODULE:
		e := p.parseQualifiedTerm()
		if p.failed {
			return nil
		}
		return []ast.Expr{e}
	case token.ARROW:
		return p.parseLocal()
	case token.LBRACE:
		return p.parseQuote()
	case token.LAMBDA:
		return p.parseLambda()
	case token.LPAREN:
		return p.parseTuple()
	case token.LBRACKET:
		return p.parseBracket()
	case token.THEN:
		return p.parseThenElse()
	case token.ILLEGAL:
		p.lexError(p.curToken)
		return nil
	default:
		got := p.curToken.Lexeme
		if p.curToken.Type == token.EOF {
			got = "end of file"
		}
		p.fail(diagnostics.ErrP002, diagnostics.PhaseParser, p.curToken, got)
		return nil
	}
}

// parseQualifiedTerm parses (Module '.')+ term.
func (p *Parser) parseQualifiedTerm() ast.Expr {
	tok := p.curToken
	modules := []string{p.curToken.Lexeme}
	p.nextToken()

	for {
		if p.curToken.Type != token.DOT {
			p.errExpected("'.'")
			return nil
		}
		p.nextToken()

		switch p.curToken.Type {
		case token.MODULE:
			modules = append(modules, p.curToken.Lexeme)
			p.nextToken()
		case token.TERM:
			e := &ast.TermExpr{Token: tok, Name: p.curToken.Lexeme, Module: modules}
			p.nextToken()
			return e
		default:
			p.errExpected("a module or term name")
			return nil
		}
	}
}

// parseLocal parses `-> a, b, c`.
func (p *Parser) parseLocal() []ast.Expr {
	tok := p.curToken
	p.nextToken()

	if p.curToken.Type != token.TERM {
		p.errExpected("a local name")
		return nil
	}
	names := []string{p.curToken.Lexeme}
	p.nextToken()

	for p.curToken.Type == token.COMMA {
		p.nextToken()
		if p.curToken.Type != token.TERM {
			p.errExpected("a local name")
			return nil
		}
		names = append(names, p.curToken.Lexeme)
		p.nextToken()
	}

	return []ast.Expr{&ast.LocalExpr{Token: tok, Names: names}}
}

// parseQuote parses `{ ... }`.
func (p *Parser) parseQuote() []ast.Expr {
	tok := p.curToken
	p.nextToken()

	body := p.parseExprSeq(token.RBRACE)
	if p.failed {
		return nil
	}
	if p.curToken.Type != token.RBRACE {
		p.errExpected("'}'")
		return nil
	}
	p.nextToken()

	return []ast.Expr{&ast.QuoteExpr{Token: tok, Body: body}}
}

// parseLambda parses `\X` into Quote([X]) for a literal or term X.
func (p *Parser) parseLambda() []ast.Expr {
	tok := p.curToken
	p.nextToken()

	var inner ast.Expr
	switch p.curToken.Type {
	case token.INT, token.FLOAT, token.CHAR, token.STRING:
		inner = &ast.LiteralExpr{Token: p.curToken, Value: *p.curToken.Literal}
		p.nextToken()
	case token.TERM:
		inner = &ast.TermExpr{Token: p.curToken, Name: p.curToken.Lexeme}
		p.nextToken()
	case token.MODULE:
		inner = p.parseQualifiedTerm()
		if p.failed {
			return nil
		}
	default:
		p.errExpected("a literal or term")
		return nil
	}

	return []ast.Expr{&ast.QuoteExpr{Token: tok, Body: []ast.Expr{inner}}}
}

// parseTuple parses `( e1, e2, ... )` into the element sequences
// followed by Core.TupleN.
func (p *Parser) parseTuple() []ast.Expr {
	tok := p.curToken
	p.nextToken()

	var elems [][]ast.Expr
	if p.curToken.Type != token.RPAREN {
		for {
			el := p.parseExprSeq(token.COMMA, token.RPAREN)
			if p.failed {
				return nil
			}
			elems = append(elems, el)
			if p.curToken.Type == token.COMMA {
				p.nextToken()
				continue
			}
			break
		}
	}

	if p.curToken.Type != token.RPAREN {
		p.errExpected("')'")
		return nil
	}
	p.nextToken()

	if len(elems) > config.MaxTupleLen {
		p.fail(diagnostics.ErrP003, diagnostics.PhaseParser, tok, config.MaxTupleLen)
		return nil
	}

	var res []ast.Expr
	for _, el := range elems {
		res = append(res, el...)
	}
	res = append(res, ast.Term(config.TupleWord(len(elems))))
	return res
}

// parseBracket parses `[ ... ]` into either a list build (no ':') or a
// table build (every element a `k : v` pair). Empty `[]` is a list,
// `[:]` a table; mixing pair and plain elements is an error.
func (p *Parser) parseBracket() []ast.Expr {
	tok := p.curToken
	p.nextToken()

	if p.curToken.Type == token.RBRACKET {
		p.nextToken()
		return []ast.Expr{ast.Term(config.ListEmptyWord)}
	}
	if p.curToken.Type == token.COLON && p.peekToken.Type == token.RBRACKET {
		p.nextToken()
		p.nextToken()
		return []ast.Expr{ast.Term(config.TableEmptyWord)}
	}

	first := p.parseExprSeq(token.COLON, token.COMMA, token.RBRACKET)
	if p.failed {
		return nil
	}

	if p.curToken.Type == token.COLON {
		return p.parseTableRest(tok, first)
	}
	return p.parseListRest(tok, first)
}

func (p *Parser) parseListRest(tok token.Token, first []ast.Expr) []ast.Expr {
	elems := [][]ast.Expr{first}
	for p.curToken.Type == token.COMMA {
		p.nextToken()
		el := p.parseExprSeq(token.COLON, token.COMMA, token.RBRACKET)
		if p.failed {
			return nil
		}
		if p.curToken.Type == token.COLON {
			p.fail(diagnostics.ErrP004, diagnostics.PhaseParser, p.curToken)
			return nil
		}
		elems = append(elems, el)
	}

	if p.curToken.Type != token.RBRACKET {
		p.errExpected("']'")
		return nil
	}
	p.nextToken()

	res := []ast.Expr{ast.Term(config.ListEmptyWord)}
	for _, el := range elems {
		res = append(res, el...)
		res = append(res, ast.Term(config.ListPushWord))
	}
	return res
}

func (p *Parser) parseTableRest(tok token.Token, firstKey []ast.Expr) []ast.Expr {
	type pair struct {
		key []ast.Expr
		val []ast.Expr
	}

	// curToken is the ':' after the first key
	p.nextToken()
	firstVal := p.parseExprSeq(token.COLON, token.COMMA, token.RBRACKET)
	if p.failed {
		return nil
	}
	if p.curToken.Type == token.COLON {
		p.fail(diagnostics.ErrP004, diagnostics.PhaseParser, p.curToken)
		return nil
	}

	pairs := []pair{{firstKey, firstVal}}
	for p.curToken.Type == token.COMMA {
		p.nextToken()
		key := p.parseExprSeq(token.COLON, token.COMMA, token.RBRACKET)
		if p.failed {
			return nil
		}
		if p.curToken.Type != token.COLON {
			p.fail(diagnostics.ErrP004, diagnostics.PhaseParser, p.curToken)
			return nil
		}
		p.nextToken()
		val := p.parseExprSeq(token.COLON, token.COMMA, token.RBRACKET)
		if p.failed {
			return nil
		}
		if p.curToken.Type == token.COLON {
			p.fail(diagnostics.ErrP004, diagnostics.PhaseParser, p.curToken)
			return nil
		}
		pairs = append(pairs, pair{key, val})
	}

	if p.curToken.Type != token.RBRACKET {
		p.errExpected("']'")
		return nil
	}
	p.nextToken()

	res := []ast.Expr{ast.Term(config.TableEmptyWord)}
	for _, kv := range pairs {
		res = append(res, kv.key...)
		res = append(res, kv.val...)
		res = append(res, ast.Term(config.TableSetWord))
	}
	return res
}

// parseThenElse parses `then { A } else { B }` into
// Quote(A) Quote(B) Core.??
func (p *Parser) parseThenElse() []ast.Expr {
	thenTok := p.curToken
	p.nextToken()

	if p.curToken.Type != token.LBRACE {
		p.errExpected("'{'")
		return nil
	}
	p.nextToken()
	thenBody := p.parseExprSeq(token.RBRACE)
	if p.failed {
		return nil
	}
	if p.curToken.Type != token.RBRACE {
		p.errExpected("'}'")
		return nil
	}
	p.nextToken()

	if p.curToken.Type != token.ELSE {
		p.errExpected("'else'")
		return nil
	}
	elseTok := p.curToken
	p.nextToken()

	if p.curToken.Type != token.LBRACE {
		p.errExpected("'{'")
		return nil
	}
	p.nextToken()
	elseBody := p.parseExprSeq(token.RBRACE)
	if p.failed {
		return nil
	}
	if p.curToken.Type != token.RBRACE {
		p.errExpected("'}'")
		return nil
	}
	p.nextToken()

	return []ast.Expr{
		&ast.QuoteExpr{Token: thenTok, Body: thenBody},
		&ast.QuoteExpr{Token: elseTok, Body: elseBody},
		ast.Term(config.CondWord),
	}
}

// parseFunctionType parses `( params? (-> params)? )`.
func (p *Parser) parseFunctionType() *ast.FunctionType {
	// curToken is '('
	p.nextToken()

	ft := &ast.FunctionType{}
	if p.curToken.Type != token.ARROW && p.curToken.Type != token.RPAREN {
		ft.Inputs = p.parseParamList()
		if p.failed {
			return nil
		}
	}
	if p.curToken.Type == token.ARROW {
		p.nextToken()
		ft.Output = p.parseParamList()
		if p.failed {
			return nil
		}
	}

	if p.curToken.Type != token.RPAREN {
		p.errExpected("')'")
		return nil
	}
	p.nextToken()
	return ft
}

func (p *Parser) parseParamList() []ast.ParamType {
	params := []ast.ParamType{p.parseParamType()}
	if p.failed {
		return nil
	}
	for p.curToken.Type == token.COMMA {
		p.nextToken()
		params = append(params, p.parseParamType())
		if p.failed {
			return nil
		}
	}
	return params
}

func (p *Parser) parseParamType() ast.ParamType {
	switch p.curToken.Type {
	case token.LPAREN:
		return p.parseFunctionType()
	case token.MODULE:
		return p.parseValueType()
	default:
		p.errExpected("a type name or '('")
		return nil
	}
}

func (p *Parser) parseValueType() ast.ParamType {
	names := []string{p.curToken.Lexeme}
	p.nextToken()
	for p.curToken.Type == token.DOT {
		p.nextToken()
		if p.curToken.Type != token.MODULE {
			p.errExpected("a type name")
			return nil
		}
		names = append(names, p.curToken.Lexeme)
		p.nextToken()
	}
	return &ast.ValueType{Name: names[len(names)-1], Module: names[:len(names)-1]}
}

// parseTypeDefinition parses `type Name vars = Variant | Variant ...`.
func (p *Parser) parseTypeDefinition() ast.Definition {
	typeTok := p.curToken
	p.nextToken()

	if p.curToken.Type != token.MODULE {
		p.errExpected("a type name")
		return nil
	}
	name := p.curToken.Lexeme
	p.nextToken()

	var vars []string
	for p.curToken.Type == token.TERM {
		vars = append(vars, p.curToken.Lexeme)
		p.nextToken()
	}

	if p.curToken.Type != token.ASSIGN {
		p.errExpected("'='")
		return nil
	}
	p.nextToken()

	if p.curToken.Type == token.PIPE { // leading '|' is allowed
		p.nextToken()
	}

	variants := []ast.VariantDefinition{p.parseVariant()}
	if p.failed {
		return nil
	}
	for p.curToken.Type == token.PIPE {
		p.nextToken()
		variants = append(variants, p.parseVariant())
		if p.failed {
			return nil
		}
	}

	return &ast.TypeDefinition{Token: typeTok, Name: name, Vars: vars, Variants: variants}
}

func (p *Parser) parseVariant() ast.VariantDefinition {
	if p.curToken.Type != token.MODULE {
		p.errExpected("a variant name")
		return ast.VariantDefinition{}
	}
	name := p.curToken.Lexeme
	p.nextToken()

	items := map[string]string{}

	if p.curToken.Type == token.LBRACE {
		// record form: Name { field: Type, ... }
		p.nextToken()
		for p.curToken.Type != token.RBRACE {
			if p.curToken.Type != token.TERM {
				p.errExpected("a field name")
				return ast.VariantDefinition{}
			}
			field := p.curToken.Lexeme
			p.nextToken()

			if p.curToken.Type != token.COLON {
				p.errExpected("':'")
				return ast.VariantDefinition{}
			}
			p.nextToken()

			if p.curToken.Type != token.TERM && p.curToken.Type != token.MODULE {
				p.errExpected("a type name")
				return ast.VariantDefinition{}
			}
			items[field] = p.curToken.Lexeme
			p.nextToken()

			if p.curToken.Type == token.COMMA {
				p.nextToken()
				continue
			}
			break
		}
		if p.curToken.Type != token.RBRACE {
			p.errExpected("'}'")
			return ast.VariantDefinition{}
		}
		p.nextToken()
	} else {
		// tuple form: Name Type Type ... with positional _N fields
		n := 0
		for p.curToken.Type == token.TERM || p.curToken.Type == token.MODULE {
			items[fmt.Sprintf("_%d", n)] = p.curToken.Lexeme
			n++
			p.nextToken()
		}
	}

	return ast.VariantDefinition{Name: name, Items: items}
}
