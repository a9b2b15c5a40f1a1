// Package church encodes booleans, numerals, pairs and recursion as closed
// lambda terms.
package church

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/vic/lazylam/pkg/lambda"
)

var (
	v = lambda.V
	l = lambda.L
	a = lambda.Apply
)

// Booleans select their first or second argument.
var (
	True  = l("a", l("b", v("a")))
	False = l("a", l("b", v("b")))
)

// Numerals.
var (
	Zero   = l("f", l("x", v("x")))
	IsZero = l("n", a(v("n"), l("x", False), True))
	Next   = l("n", l("f", l("x", a(v("f"), a(v("n"), v("f"), v("x"))))))
	Pre    = l("n", l("f", l("x", a(
		v("n"),
		l("g", l("h", a(v("h"), a(v("g"), v("f"))))),
		l("u", v("x")),
		l("u", v("u")),
	))))
)

// Arithmetic. Minus truncates at zero.
var (
	Plus  = l("m", l("n", a(v("m"), Next, v("n"))))
	Minus = l("m", l("n", a(v("n"), Pre, v("m"))))
	Mult  = l("m", l("n", l("f", a(v("m"), a(v("n"), v("f"))))))
	Exp   = l("m", l("n", a(v("n"), v("m"))))
)

// Logic and comparison.
var (
	If  = l("p", l("a", l("b", a(v("p"), v("a"), v("b")))))
	And = l("p", l("q", a(v("p"), v("q"), v("p"))))
	Or  = l("p", l("q", a(v("p"), v("p"), v("q"))))
	Not = l("p", a(v("p"), False, True))
	Leq = l("m", l("n", a(IsZero, a(Minus, v("m"), v("n")))))
	Eq  = l("m", l("n", a(And, a(Leq, v("m"), v("n")), a(Leq, v("n"), v("m")))))
)

// Pairs.
var (
	Cons = l("x", l("y", l("p", a(v("p"), v("x"), v("y")))))
	Car  = l("p", a(v("p"), l("x", l("y", v("x")))))
	Cdr  = l("p", a(v("p"), l("x", l("y", v("y")))))
)

// Y is the fixed-point combinator. Fact and Fib take their own recursion
// as the first argument and are meant to be used as Y Fact, Y Fib.
var (
	Y = l("g", a(
		l("x", a(v("g"), a(v("x"), v("x")))),
		l("x", a(v("g"), a(v("x"), v("x")))),
	))

	Fact = l("r", l("n", a(
		a(IsZero, v("n")),
		Church(1),
		a(Mult, v("n"), a(v("r"), a(Pre, v("n")))),
	)))

	Fib = l("r", l("x", a(
		If,
		a(Leq, v("x"), Church(1)),
		v("x"),
		a(
			Plus,
			a(v("r"), a(Pre, v("x"))),
			a(v("r"), a(Pre, a(Pre, v("x")))),
		),
	)))
)

// Church builds the numeral for n as n applications of Next to Zero.
func Church(n int) lambda.Term {
	if n < 0 {
		panic(fmt.Sprintf("church: negative numeral %d", n))
	}
	t := Zero
	for i := 0; i < n; i++ {
		t = lambda.A(Next, t)
	}
	return t
}

var library = map[string]lambda.Term{
	"TRUE":   True,
	"FALSE":  False,
	"ZERO":   Zero,
	"ISZERO": IsZero,
	"NEXT":   Next,
	"PRE":    Pre,
	"PLUS":   Plus,
	"MINUS":  Minus,
	"MULT":   Mult,
	"EXP":    Exp,
	"IF":     If,
	"AND":    And,
	"OR":     Or,
	"NOT":    Not,
	"LEQ":    Leq,
	"EQ":     Eq,
	"CONS":   Cons,
	"CAR":    Car,
	"CDR":    Cdr,
	"Y":      Y,
	"FACT":   Fact,
	"FIB":    Fib,
}

// Lookup returns the combinator registered under name, e.g. "PLUS".
func Lookup(name string) (lambda.Term, bool) {
	t, ok := library[name]
	return t, ok
}

// Names lists the registered combinators in sorted order.
func Names() []string {
	names := lo.Keys(library)
	slices.Sort(names)
	return names
}
