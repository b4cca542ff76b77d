package engine

import "strings"

// Stack is the LIFO operand store.
type Stack struct {
	items []Value
}

func NewStack() *Stack {
	return &Stack{}
}

func (s *Stack) Push(v Value) {
	s.items = append(s.items, v)
}

func (s *Stack) PushBool(b bool)     { s.Push(Bool(b)) }
func (s *Stack) PushNum(n float64)   { s.Push(Num(n)) }
func (s *Stack) PushChar(r rune)     { s.Push(Char(r)) }
func (s *Stack) PushStr(str string)  { s.Push(Str(str)) }
func (s *Stack) PushSymbol(n string) { s.Push(Symbol(n)) }

// PushNative wraps an opaque host payload in a Value.
func (s *Stack) PushNative(obj NativeObject) {
	s.Push(Native(obj))
}

// Pop transfers ownership of the top value to the caller.
func (s *Stack) Pop() (Value, error) {
	if len(s.items) == 0 {
		return Value{}, &StackError{Msg: "stack is empty"}
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Peek returns a clone of the top value, leaving the stack unchanged.
func (s *Stack) Peek() (Value, error) {
	if len(s.items) == 0 {
		return Value{}, &StackError{Msg: "stack is empty"}
	}
	return s.items[len(s.items)-1].Clone(), nil
}

func (s *Stack) Len() int {
	return len(s.items)
}

// String renders the stack bottom-first: [10, 20, 30]
func (s *Stack) String() string {
	parts := make([]string, 0, len(s.items))
	for _, v := range s.items {
		parts = append(parts, v.Repr())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
