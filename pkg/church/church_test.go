package church

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/lazylam/pkg/lambda"
)

func toInt(t *testing.T, term lambda.Term) int {
	t.Helper()
	n, err := lambda.ToInt(term)
	require.NoError(t, err, "term %v", term)
	return n
}

func toBool(t *testing.T, term lambda.Term) bool {
	t.Helper()
	b, err := lambda.ToBool(term)
	require.NoError(t, err, "term %v", term)
	return b
}

func TestNumeralRoundTrip(t *testing.T) {
	for n := 0; n <= 12; n++ {
		assert.Equal(t, n, toInt(t, Church(n)))
	}
	assert.Equal(t, Zero, Church(0))
	assert.Equal(t, lambda.A(Next, Church(2)), Church(3))
	assert.Panics(t, func() { Church(-1) })
}

func TestIdentityLaw(t *testing.T) {
	id := lambda.L("x", lambda.V("x"))
	for n := 0; n <= 9; n++ {
		assert.Equal(t, toInt(t, Church(n)), toInt(t, lambda.A(id, Church(n))))
	}
}

func TestSuccessorLaw(t *testing.T) {
	for n := 0; n <= 10; n++ {
		assert.Equal(t, n+1, toInt(t, lambda.A(Next, Church(n))))
	}
}

func TestPredecessor(t *testing.T) {
	assert.Equal(t, 0, toInt(t, lambda.A(Pre, Church(0))))
	for n := 1; n <= 6; n++ {
		assert.Equal(t, n-1, toInt(t, lambda.A(Pre, Church(n))))
	}
}

func TestZeroLaw(t *testing.T) {
	assert.True(t, toBool(t, lambda.A(IsZero, Church(0))))
	for n := 1; n <= 6; n++ {
		assert.False(t, toBool(t, lambda.A(IsZero, Church(n))), "ISZERO #%d", n)
	}
}

func TestArithmetic(t *testing.T) {
	for m := 0; m <= 4; m++ {
		for n := 0; n <= 4; n++ {
			t.Run(fmt.Sprintf("%d_%d", m, n), func(t *testing.T) {
				assert.Equal(t, m+n, toInt(t, lambda.Apply(Plus, Church(m), Church(n))), "PLUS")
				assert.Equal(t, m*n, toInt(t, lambda.Apply(Mult, Church(m), Church(n))), "MULT")
				assert.Equal(t, pow(m, n), toInt(t, lambda.Apply(Exp, Church(m), Church(n))), "EXP")
				if m >= n {
					assert.Equal(t, m-n, toInt(t, lambda.Apply(Minus, Church(m), Church(n))), "MINUS")
				} else {
					assert.Equal(t, 0, toInt(t, lambda.Apply(Minus, Church(m), Church(n))), "MINUS truncates")
				}
			})
		}
	}
}

func pow(m, n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r *= m
	}
	return r
}

func TestOrderingAndEquality(t *testing.T) {
	for m := 0; m <= 4; m++ {
		for n := 0; n <= 4; n++ {
			assert.Equal(t, m <= n, toBool(t, lambda.Apply(Leq, Church(m), Church(n))), "LEQ #%d #%d", m, n)
			assert.Equal(t, m == n, toBool(t, lambda.Apply(Eq, Church(m), Church(n))), "EQ #%d #%d", m, n)
		}
	}
}

func TestBooleanLogic(t *testing.T) {
	bools := map[bool]lambda.Term{true: True, false: False}
	for p, pt := range bools {
		assert.Equal(t, !p, toBool(t, lambda.A(Not, pt)), "NOT %v", p)
		for q, qt := range bools {
			assert.Equal(t, p && q, toBool(t, lambda.Apply(And, pt, qt)), "AND %v %v", p, q)
			assert.Equal(t, p || q, toBool(t, lambda.Apply(Or, pt, qt)), "OR %v %v", p, q)
		}
	}

	assert.Equal(t, 4, toInt(t, lambda.Apply(If, True, Church(4), Church(5))))
	assert.Equal(t, 5, toInt(t, lambda.Apply(If, False, Church(4), Church(5))))
	assert.Equal(t, 4, toInt(t, lambda.Apply(If, lambda.Apply(Eq, Church(3), Church(3)), Church(4), Church(5))))
}

func TestPairs(t *testing.T) {
	for x := 0; x <= 3; x++ {
		for y := 0; y <= 3; y++ {
			pair := lambda.Apply(Cons, Church(x), Church(y))
			assert.Equal(t, x, toInt(t, lambda.A(Car, pair)))
			assert.Equal(t, y, toInt(t, lambda.A(Cdr, pair)))
		}
	}
}

func TestFixedPoint(t *testing.T) {
	facts := []int{1, 1, 2, 6, 24, 120}
	for n, want := range facts {
		assert.Equal(t, want, toInt(t, lambda.Apply(Y, Fact, Church(n))), "FACT #%d", n)
	}

	fibs := map[int]int{0: 0, 1: 1, 2: 1, 5: 5, 7: 13, 10: 55}
	for n, want := range fibs {
		assert.Equal(t, want, toInt(t, lambda.Apply(Y, Fib, Church(n))), "FIB #%d", n)
	}
}

func TestFixedPointMemoized(t *testing.T) {
	plain := lambda.New(lambda.Options{})
	memo := lambda.New(lambda.Options{Memoize: true})

	n, err := plain.ToInt(lambda.Apply(Y, Fib, Church(10)))
	require.NoError(t, err)
	assert.Equal(t, 55, n)

	n, err = memo.ToInt(lambda.Apply(Y, Fib, Church(10)))
	require.NoError(t, err)
	assert.Equal(t, 55, n)

	t.Logf("FIB #10: %d steps by name, %d steps by need", plain.Stats().Steps, memo.Stats().Steps)
	assert.Less(t, memo.Stats().Steps, plain.Stats().Steps)
}

func TestLazyDivergentArgument(t *testing.T) {
	diverge := lambda.A(Y, lambda.L("f", lambda.V("f")))
	assert.Equal(t, 0, toInt(t, lambda.A(lambda.L("x", Church(0)), diverge)))
	assert.Equal(t, 4, toInt(t, lambda.Apply(If, True, Church(4), diverge)))

	ev := lambda.New(lambda.Options{MaxSteps: 10000})
	_, err := ev.ToInt(diverge)
	assert.True(t, errors.Is(err, lambda.ErrStepLimit), "got %v", err)
}

func TestDecodeMismatch(t *testing.T) {
	var decodeErr *lambda.DecodeError

	_, err := lambda.ToInt(True)
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "int", decodeErr.Kind)

	_, err = lambda.ToBool(Church(2))
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "bool", decodeErr.Kind)
	var notCallable *lambda.NotCallableError
	assert.ErrorAs(t, err, &notCallable)

	_, err = lambda.ToInt(lambda.A(Car, lambda.Apply(Cons, True, Church(1))))
	require.ErrorAs(t, err, &decodeErr)
}

func TestLibrary(t *testing.T) {
	names := Names()
	require.Len(t, names, 22)
	assert.IsIncreasing(t, names)

	for _, name := range names {
		term, ok := Lookup(name)
		require.True(t, ok, name)
		assert.True(t, lambda.Closed(term), "%s must be closed", name)
	}

	plus, ok := Lookup("PLUS")
	require.True(t, ok)
	assert.Equal(t, Plus, plus)

	_, ok = Lookup("plus")
	assert.False(t, ok)
}
