package stdlib

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/foxlang/fox/internal/engine"
)

// Uuid wraps google/uuid as a native object.
type Uuid struct {
	Value uuid.UUID
}

func (u *Uuid) Repr() string {
	return u.Value.String()
}

func (u *Uuid) CloneNative() engine.NativeObject {
	return &Uuid{Value: u.Value}
}

func uuidError(err error) error {
	return &engine.CastError{Expected: fmt.Sprintf("Uuid(%v)", err)}
}

func registerUuid(e *engine.Engine) {
	define(e, "Uuid.new", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		u, err := uuid.NewRandom()
		if err != nil {
			return uuidError(err)
		}
		st.PushNative(&Uuid{Value: u})
		return nil
	})

	define(e, "Uuid.parse", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		s, err := v.AsStr()
		if err != nil {
			return err
		}
		u, err := uuid.Parse(s)
		if err != nil {
			return uuidError(err)
		}
		st.PushNative(&Uuid{Value: u})
		return nil
	})

	define(e, "Uuid.repr", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		u, err := engine.NativeAs[*Uuid](v)
		if err != nil {
			return err
		}
		st.PushStr(u.Value.String())
		return nil
	})

	define(e, "Uuid.nil?", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		u, err := engine.NativeAs[*Uuid](v)
		if err != nil {
			return err
		}
		st.PushBool(u.Value == uuid.Nil)
		return nil
	})

	// Uuid.v5 pops the name and the namespace: ns "name" Uuid.v5
	define(e, "Uuid.v5", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		nv, err := st.Pop()
		if err != nil {
			return err
		}
		name, err := nv.AsStr()
		if err != nil {
			return err
		}
		nsv, err := st.Pop()
		if err != nil {
			return err
		}
		ns, err := engine.NativeAs[*Uuid](nsv)
		if err != nil {
			return err
		}
		st.PushNative(&Uuid{Value: uuid.NewSHA1(ns.Value, []byte(name))})
		return nil
	})

	define(e, "Uuid.namespaceDNS", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		st.PushNative(&Uuid{Value: uuid.NameSpaceDNS})
		return nil
	})

	define(e, "Uuid.namespaceURL", func(_ *engine.Env[engine.Function], _ *engine.Env[engine.Value], st *engine.Stack) error {
		st.PushNative(&Uuid{Value: uuid.NameSpaceURL})
		return nil
	})
}
