package config

import (
	"fmt"

	"github.com/xyproto/env/v2"
)

// Source files
const (
	SourceFileExtension = ".fox"
	EntryPointName      = "main"
)

// Words consumed by the parser's desugaring. The host must register
// them before evaluating scripts that use the corresponding syntax.
const (
	ListEmptyWord  = "Core.List.empty"
	ListPushWord   = "Core.List.push"
	TableEmptyWord = "Core.Table.empty"
	TableSetWord   = "Core.Table.set"
	CondWord       = "Core.??"

	MaxTupleLen = 9
)

// TupleWord returns the constructor word for an n-tuple: Core.Tuple3.
func TupleWord(n int) string {
	return fmt.Sprintf("Core.Tuple%d", n)
}

// TraceEnabled reports whether FOX_TRACE asks for per-expression stack
// tracing on stderr.
func TraceEnabled() bool {
	return env.Bool("FOX_TRACE")
}
