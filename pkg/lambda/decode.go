package lambda

import "errors"

// ToInt decodes a closed Church numeral into a host integer.
func ToInt(term Term) (int, error) {
	return New(Options{}).ToInt(term)
}

// ToBool decodes a closed Church boolean into a host boolean.
func ToBool(term Term) (bool, error) {
	return New(Options{}).ToBool(term)
}

// ToInt evaluates term in the empty environment and drives it with a
// successor probe and Int(0), counting how often the probe is applied.
func (ev *Evaluator) ToInt(term Term) (int, error) {
	succ := Proc(func(x Thunk) (Value, error) {
		v, err := x()
		if err != nil {
			return nil, err
		}
		n, ok := v.(Int)
		if !ok {
			return nil, &DecodeError{Kind: "int", Value: v}
		}
		return n + 1, nil
	})

	v, err := ev.drive("int", term, Const(succ), Const(Int(0)))
	if err != nil {
		return 0, err
	}
	n, ok := v.(Int)
	if !ok {
		return 0, &DecodeError{Kind: "int", Value: v}
	}
	return int(n), nil
}

// ToBool evaluates term in the empty environment and selects between
// Bool(true) and Bool(false) with it.
func (ev *Evaluator) ToBool(term Term) (bool, error) {
	v, err := ev.drive("bool", term, Const(Bool(true)), Const(Bool(false)))
	if err != nil {
		return false, err
	}
	b, ok := v.(Bool)
	if !ok {
		return false, &DecodeError{Kind: "bool", Value: v}
	}
	return bool(b), nil
}

func (ev *Evaluator) drive(kind string, term Term, probes ...Thunk) (Value, error) {
	v, err := ev.Evaluate(nil, term)
	if err != nil {
		return nil, err
	}
	for _, p := range probes {
		v, err = Invoke(v, p)
		if err != nil {
			var nc *NotCallableError
			if errors.As(err, &nc) {
				return nil, &DecodeError{Kind: kind, Value: nc.Value, Err: err}
			}
			return nil, err
		}
	}
	return v, nil
}
