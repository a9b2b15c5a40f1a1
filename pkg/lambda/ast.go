package lambda

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Term represents a lambda calculus term.
// The set of terms is closed: only Var, Abs and App implement it.
type Term interface {
	String() string
	isTerm()
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (v Var) String() string {
	return v.Name
}

// Abs represents an abstraction (lambda).
type Abs struct {
	Arg  string
	Body Term
}

func (a Abs) String() string {
	return fmt.Sprintf("(%s: %s)", a.Arg, a.Body)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

func (Var) isTerm() {}
func (Abs) isTerm() {}
func (App) isTerm() {}

// V builds a variable reference.
func V(name string) Term { return Var{Name: name} }

// L builds a single-parameter abstraction.
func L(arg string, body Term) Term { return Abs{Arg: arg, Body: body} }

// A builds a binary application.
func A(fun, arg Term) Term { return App{Fun: fun, Arg: arg} }

// Apply left-folds args onto fun, so Apply(f, x, y) is ((f x) y).
func Apply(fun Term, args ...Term) Term {
	return lo.Reduce(args, func(acc Term, arg Term, _ int) Term {
		return App{Fun: acc, Arg: arg}
	}, fun)
}

// Lams nests abstractions right to left: Lams([]string{"f", "x"}, b) is (f: (x: b)).
func Lams(args []string, body Term) Term {
	for i := len(args) - 1; i >= 0; i-- {
		body = Abs{Arg: args[i], Body: body}
	}
	return body
}

// FreeVars returns the sorted names occurring free in t.
func FreeVars(t Term) []string {
	var names []string
	var walk func(Term, map[string]int)
	walk = func(t Term, bound map[string]int) {
		switch t := t.(type) {
		case Var:
			if bound[t.Name] == 0 {
				names = append(names, t.Name)
			}
		case Abs:
			bound[t.Arg]++
			walk(t.Body, bound)
			bound[t.Arg]--
		case App:
			walk(t.Fun, bound)
			walk(t.Arg, bound)
		}
	}
	walk(t, map[string]int{})
	slices.Sort(names)
	return slices.Compact(names)
}

// Closed reports whether t has no free variables.
func Closed(t Term) bool {
	return len(FreeVars(t)) == 0
}
