// Package stdlib provides the native word modules the host registers
// with an engine before evaluating scripts. Core words back the
// parser's desugaring; the remaining modules give programs stack
// manipulation, arithmetic, strings, output, UUIDs and SQL access.
package stdlib

import (
	"io"

	"github.com/foxlang/fox/internal/engine"
)

// Register installs every native module into the engine's definitions.
// Output-producing words write to out.
func Register(e *engine.Engine, out io.Writer) {
	registerCore(e)
	registerStackOps(e)
	registerMath(e)
	registerStr(e)
	registerIO(e, out)
	registerUuid(e)
	registerSql(e)
}

// define is the registration shorthand shared by the module files.
func define(e *engine.Engine, name string, h engine.Handler) {
	e.Definitions.Set(name, engine.NewNative(name, h))
}
