package stdlib

import (
	"math"

	"github.com/foxlang/fox/internal/engine"
)

// registerMath installs arithmetic, comparison and boolean words.
// Equality words are spelled eq? and neq? because '=' opens a
// punctuation token and cannot start a term.
func registerMath(e *engine.Engine) {
	define(e, "+", binNum(func(a, b float64) float64 { return a + b }))
	define(e, "-", binNum(func(a, b float64) float64 { return a - b }))
	define(e, "*", binNum(func(a, b float64) float64 { return a * b }))
	define(e, "/", binNum(func(a, b float64) float64 { return a / b }))
	define(e, "%", binNum(math.Mod))
	define(e, "neg", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		n, err := v.AsNum()
		if err != nil {
			return err
		}
		st.PushNum(-n)
		return nil
	})

	define(e, "<", binCmp(func(a, b float64) bool { return a < b }))
	define(e, ">", binCmp(func(a, b float64) bool { return a > b }))
	define(e, "<=", binCmp(func(a, b float64) bool { return a <= b }))
	define(e, ">=", binCmp(func(a, b float64) bool { return a >= b }))

	define(e, "eq?", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		b, err := st.Pop()
		if err != nil {
			return err
		}
		a, err := st.Pop()
		if err != nil {
			return err
		}
		st.PushBool(a.Equal(b))
		return nil
	})
	define(e, "neq?", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		b, err := st.Pop()
		if err != nil {
			return err
		}
		a, err := st.Pop()
		if err != nil {
			return err
		}
		st.PushBool(!a.Equal(b))
		return nil
	})

	define(e, "and", binBool(func(a, b bool) bool { return a && b }))
	define(e, "or", binBool(func(a, b bool) bool { return a || b }))
	define(e, "not", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		b, err := v.AsBool()
		if err != nil {
			return err
		}
		st.PushBool(!b)
		return nil
	})
}

func binNum(f func(a, b float64) float64) engine.Handler {
	return func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		bv, err := st.Pop()
		if err != nil {
			return err
		}
		av, err := st.Pop()
		if err != nil {
			return err
		}
		b, err := bv.AsNum()
		if err != nil {
			return err
		}
		a, err := av.AsNum()
		if err != nil {
			return err
		}
		st.PushNum(f(a, b))
		return nil
	}
}

func binCmp(f func(a, b float64) bool) engine.Handler {
	return func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		bv, err := st.Pop()
		if err != nil {
			return err
		}
		av, err := st.Pop()
		if err != nil {
			return err
		}
		b, err := bv.AsNum()
		if err != nil {
			return err
		}
		a, err := av.AsNum()
		if err != nil {
			return err
		}
		st.PushBool(f(a, b))
		return nil
	}
}

func binBool(f func(a, b bool) bool) engine.Handler {
	return func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		bv, err := st.Pop()
		if err != nil {
			return err
		}
		av, err := st.Pop()
		if err != nil {
			return err
		}
		b, err := bv.AsBool()
		if err != nil {
			return err
		}
		a, err := av.AsBool()
		if err != nil {
			return err
		}
		st.PushBool(f(a, b))
		return nil
	}
}
