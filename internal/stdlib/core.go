package stdlib

import (
	"github.com/foxlang/fox/internal/config"
	"github.com/foxlang/fox/internal/engine"
)

// registerCore installs the words the parser's desugaring relies on,
// plus the boolean words. Booleans have no literal form; they enter
// programs through `true` and `false`.
func registerCore(e *engine.Engine) {
	define(e, "true", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		st.PushBool(true)
		return nil
	})
	define(e, "false", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		st.PushBool(false)
		return nil
	})

	define(e, config.ListEmptyWord, func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		st.PushNative(NewList())
		return nil
	})

	define(e, config.ListPushWord, func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		lv, err := st.Pop()
		if err != nil {
			return err
		}
		l, err := engine.NativeMutAs[*List](&lv)
		if err != nil {
			return err
		}
		l.Items = append(l.Items, v)
		st.Push(lv)
		return nil
	})

	define(e, config.TableEmptyWord, func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		st.PushNative(NewTable())
		return nil
	})

	define(e, config.TableSetWord, func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		k, err := st.Pop()
		if err != nil {
			return err
		}
		tv, err := st.Pop()
		if err != nil {
			return err
		}
		t, err := engine.NativeMutAs[*Table](&tv)
		if err != nil {
			return err
		}
		t.Set(k, v)
		st.Push(tv)
		return nil
	})

	for n := 0; n <= config.MaxTupleLen; n++ {
		define(e, config.TupleWord(n), tupleWord(n))
	}

	// Core.?? pops two quotations and a bool, then runs the first
	// quotation if the bool is true, the second otherwise. Quotation
	// values carry the name of an anonymous function, so the handler
	// re-enters the engine.
	define(e, config.CondWord, func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		qElse, err := st.Pop()
		if err != nil {
			return err
		}
		qThen, err := st.Pop()
		if err != nil {
			return err
		}
		cond, err := st.Pop()
		if err != nil {
			return err
		}
		b, err := cond.AsBool()
		if err != nil {
			return err
		}

		chosen := qThen
		if !b {
			chosen = qElse
		}
		sym, err := chosen.AsSymbol()
		if err != nil {
			return err
		}
		return e.Invoke(sym)
	})
}

func tupleWord(n int) engine.Handler {
	return func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		items := make([]engine.Value, n)
		for i := n - 1; i >= 0; i-- {
			v, err := st.Pop()
			if err != nil {
				return err
			}
			items[i] = v
		}
		st.PushNative(&Tuple{Items: items})
		return nil
	}
}
