package stdlib

import "github.com/foxlang/fox/internal/engine"

// registerStackOps installs the classic shuffle words: dup, drop,
// swap, over, rot.
func registerStackOps(e *engine.Engine) {
	define(e, "dup", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Peek()
		if err != nil {
			return err
		}
		st.Push(v)
		return nil
	})

	define(e, "drop", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		_, err := st.Pop()
		return err
	})

	define(e, "swap", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		b, err := st.Pop()
		if err != nil {
			return err
		}
		a, err := st.Pop()
		if err != nil {
			return err
		}
		st.Push(b)
		st.Push(a)
		return nil
	})

	define(e, "over", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		b, err := st.Pop()
		if err != nil {
			return err
		}
		a, err := st.Pop()
		if err != nil {
			return err
		}
		dup := a.Clone()
		st.Push(a)
		st.Push(b)
		st.Push(dup)
		return nil
	})

	define(e, "rot", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		c, err := st.Pop()
		if err != nil {
			return err
		}
		b, err := st.Pop()
		if err != nil {
			return err
		}
		a, err := st.Pop()
		if err != nil {
			return err
		}
		st.Push(b)
		st.Push(c)
		st.Push(a)
		return nil
	})
}
