package stdlib

import (
	"fmt"
	"io"

	"github.com/foxlang/fox/internal/engine"
)

// registerIO installs the output words. All program output flows
// through native words; the engine itself writes only its optional
// stack trace.
func registerIO(e *engine.Engine, out io.Writer) {
	define(e, "print", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(out, v.Repr())
		return nil
	})

	define(e, "println", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, v.Repr())
		return nil
	})
}
