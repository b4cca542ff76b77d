package engine

import (
	"errors"
	"testing"
)

func TestPushPopRoundTrip(t *testing.T) {
	st := NewStack()
	st.PushNum(42)

	v, err := st.Pop()
	if err != nil {
		t.Fatalf("pop failed: %v", err)
	}
	if n, _ := v.AsNum(); n != 42 {
		t.Errorf("popped %g, want 42", n)
	}
	if st.Len() != 0 {
		t.Errorf("stack length %d after pop, want 0", st.Len())
	}
}

func TestPopEmpty(t *testing.T) {
	st := NewStack()
	_, err := st.Pop()
	var stackErr *StackError
	if !errors.As(err, &stackErr) {
		t.Fatalf("err = %v, want StackError", err)
	}
}

func TestPeek(t *testing.T) {
	st := NewStack()

	if _, err := st.Peek(); err == nil {
		t.Error("peek on empty stack should fail")
	}

	st.PushStr("top")
	v, err := st.Peek()
	if err != nil {
		t.Fatalf("peek failed: %v", err)
	}
	if s, _ := v.AsStr(); s != "top" {
		t.Errorf("peeked %q, want top", s)
	}
	if st.Len() != 1 {
		t.Errorf("peek must not consume; length %d", st.Len())
	}
}

func TestTypedPushes(t *testing.T) {
	st := NewStack()
	st.PushBool(true)
	st.PushChar('c')
	st.PushSymbol("word")
	st.PushNative(&counter{n: 1})

	if st.Len() != 4 {
		t.Fatalf("length %d, want 4", st.Len())
	}
	v, _ := st.Pop()
	if _, err := NativeAs[*counter](v); err != nil {
		t.Errorf("top should be the native object: %v", err)
	}
}

func TestStackString(t *testing.T) {
	st := NewStack()
	if got := st.String(); got != "[]" {
		t.Errorf("empty stack = %q, want []", got)
	}

	st.PushNum(10)
	st.PushNum(20)
	st.PushStr("x")
	if got := st.String(); got != "[10, 20, x]" {
		t.Errorf("stack = %q, want [10, 20, x]", got)
	}
}
