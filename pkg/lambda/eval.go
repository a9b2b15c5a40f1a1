package lambda

import (
	"fmt"
	"os"
)

var evalDebug = os.Getenv("LAMBDA_DEBUG") != ""

// Options tunes an Evaluator. The zero value gives plain call-by-name.
type Options struct {
	// MaxSteps bounds the number of evaluation steps; 0 means unbounded.
	MaxSteps uint64
	// Memoize caches each argument thunk after its first force (call-by-need).
	Memoize bool
	// Trace, when positive, records the first Trace events.
	Trace int
}

// Evaluator interprets terms under an environment using call-by-name.
// It is not safe for concurrent use.
type Evaluator struct {
	opts  Options
	stats Stats

	traceBuf []TraceEvent
	traceOn  bool
}

// New returns an evaluator configured by opts, with tracing enabled when
// opts.Trace is positive.
func New(opts Options) *Evaluator {
	ev := &Evaluator{opts: opts}
	if opts.Trace > 0 {
		ev.EnableTrace(opts.Trace)
	}
	return ev
}

// Evaluate evaluates term in env with a fresh unbounded evaluator.
func Evaluate(env *Env, term Term) (Value, error) {
	return New(Options{}).Evaluate(env, term)
}

// Evaluate maps term to a value under env.
// Procedures it returns keep reporting into ev's stats when invoked later.
func (ev *Evaluator) Evaluate(env *Env, term Term) (Value, error) {
	return ev.eval(env, term)
}

func (ev *Evaluator) eval(env *Env, term Term) (Value, error) {
	ev.stats.Steps++
	if ev.opts.MaxSteps > 0 && ev.stats.Steps > ev.opts.MaxSteps {
		return nil, fmt.Errorf("%w (%d)", ErrStepLimit, ev.opts.MaxSteps)
	}
	if evalDebug {
		fmt.Fprintf(os.Stderr, "eval %d: %v\n", ev.stats.Steps, term)
	}

	switch t := term.(type) {
	case Var:
		ev.stats.Lookups++
		if ev.traceOn {
			ev.recordTrace(EventLookup, func() string { return t.Name })
		}
		th, ok := env.Lookup(t.Name)
		if !ok {
			return nil, &UnboundVariableError{Name: t.Name, Scope: env.Names()}
		}
		return th()
	case Abs:
		ev.stats.Closures++
		if ev.traceOn {
			ev.recordTrace(EventClosure, describe(t))
		}
		return Proc(func(x Thunk) (Value, error) {
			return ev.eval(env.Bind(t.Arg, x), t.Body)
		}), nil
	case App:
		fn, err := ev.eval(env, t.Fun)
		if err != nil {
			return nil, err
		}
		ev.stats.Applications++
		if ev.traceOn {
			ev.recordTrace(EventApply, describe(t.Arg))
		}
		return Invoke(fn, ev.suspend(env, t.Arg))
	default:
		return nil, &UnsupportedExpressionError{Term: term}
	}
}

// suspend delays evaluation of arg in the caller's environment.
func (ev *Evaluator) suspend(env *Env, arg Term) Thunk {
	th := func() (Value, error) {
		return ev.eval(env, arg)
	}
	if !ev.opts.Memoize {
		return th
	}

	var (
		done bool
		val  Value
		err  error
	)
	return func() (Value, error) {
		if done {
			ev.stats.MemoHits++
			if ev.traceOn {
				ev.recordTrace(EventMemoHit, describe(arg))
			}
			return val, err
		}
		val, err = th()
		done = true
		return val, err
	}
}

func describe(t Term) func() string {
	return func() string { return fmt.Sprint(t) }
}
