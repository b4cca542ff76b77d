package diagnostics

import (
	"fmt"

	"github.com/foxlang/fox/internal/token"
)

// Phase represents the processing phase where an error occurred
type Phase string

const (
	PhaseLexer   Phase = "lexer"
	PhaseParser  Phase = "parser"
	PhaseRuntime Phase = "runtime"
)

type ErrorCode string

const (
	// Lexer Errors
	ErrL001 ErrorCode = "L001" // Invalid character
	ErrL002 ErrorCode = "L002" // Unterminated string literal
	ErrL003 ErrorCode = "L003" // Malformed char literal

	// Parser Errors
	ErrP001 ErrorCode = "P001" // Unexpected token
	ErrP002 ErrorCode = "P002" // Cannot start an expression here
	ErrP003 ErrorCode = "P003" // Tuple literal too long
	ErrP004 ErrorCode = "P004" // Mixed bracket literal

	// Runtime Errors
	ErrR001 ErrorCode = "R001" // Runtime error
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "invalid character: '%s'",
	ErrL002: "unterminated string literal",
	ErrL003: "malformed char literal: '%s'",
	ErrP001: "unexpected token: expected %s, but got '%s'",
	ErrP002: "cannot parse expression starting with '%s'",
	ErrP003: "tuple literals take at most %d elements",
	ErrP004: "bracket literal mixes pair and plain elements",
	ErrR001: "runtime error: %s",
}

type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Token token.Token
	File  string
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}

	message := fmt.Sprintf(template, e.Args...)

	prefix := ""
	if e.File != "" {
		prefix = fmt.Sprintf("%s: ", e.File)
	}

	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}

	if e.Token.Line > 0 {
		return fmt.Sprintf("%s%serror at %d:%d [%s]: %s", prefix, phaseStr, e.Token.Line, e.Token.Column, e.Code, message)
	}
	return fmt.Sprintf("%s%serror [%s]: %s", prefix, phaseStr, e.Code, message)
}

// NewError creates an error with just code and token
func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:  code,
		Token: tok,
		Args:  args,
	}
}

// NewPhaseError creates an error with phase information
func NewPhaseError(phase Phase, code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:  code,
		Phase: phase,
		Token: tok,
		Args:  args,
	}
}
