package stdlib

import "github.com/foxlang/fox/internal/engine"

func registerStr(e *engine.Engine) {
	define(e, "Str.len", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		s, err := v.AsStr()
		if err != nil {
			return err
		}
		st.PushNum(float64(len([]rune(s))))
		return nil
	})

	define(e, "Str.concat", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		bv, err := st.Pop()
		if err != nil {
			return err
		}
		av, err := st.Pop()
		if err != nil {
			return err
		}
		b, err := bv.AsStr()
		if err != nil {
			return err
		}
		a, err := av.AsStr()
		if err != nil {
			return err
		}
		st.PushStr(a + b)
		return nil
	})

	define(e, "Str.chars", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		s, err := v.AsStr()
		if err != nil {
			return err
		}
		l := NewList()
		for _, r := range s {
			l.Items = append(l.Items, engine.Char(r))
		}
		st.PushNative(l)
		return nil
	})

	// Str.repr renders any value the way the engine prints it.
	define(e, "Str.repr", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		st.PushStr(v.Repr())
		return nil
	})
}
