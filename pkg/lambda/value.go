package lambda

import "strconv"

// Value is the result of evaluating a term.
// Abstractions evaluate to Proc; Bool and Int only appear when a decoder
// feeds host probes into a procedure.
type Value interface {
	String() string
	isValue()
}

// Thunk is a suspended computation. It may be forced any number of times.
type Thunk func() (Value, error)

// Proc is a callable value taking one suspended argument.
type Proc func(arg Thunk) (Value, error)

// Bool is a host boolean surfaced by the boolean decoder.
type Bool bool

// Int is a host integer surfaced by the numeral decoder.
type Int int

func (Proc) String() string   { return "<proc>" }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (n Int) String() string  { return strconv.Itoa(int(n)) }

func (Proc) isValue() {}
func (Bool) isValue() {}
func (Int) isValue()  {}

// Const returns a thunk that always yields v.
func Const(v Value) Thunk {
	return func() (Value, error) { return v, nil }
}

// Invoke calls fn with arg, failing if fn is not a procedure.
func Invoke(fn Value, arg Thunk) (Value, error) {
	p, ok := fn.(Proc)
	if !ok {
		return nil, &NotCallableError{Value: fn}
	}
	return p(arg)
}
