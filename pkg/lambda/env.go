package lambda

// Env is an immutable chain of bindings from names to suspended values.
// The nil *Env is the empty environment.
type Env struct {
	name   string
	thunk  Thunk
	parent *Env
}

// Bind returns a new environment in which name resolves to th.
// The receiver is left untouched, so closures holding it are unaffected.
func (e *Env) Bind(name string, th Thunk) *Env {
	return &Env{name: name, thunk: th, parent: e}
}

// Lookup finds the innermost binding of name.
func (e *Env) Lookup(name string) (Thunk, bool) {
	for s := e; s != nil; s = s.parent {
		if s.name == name {
			return s.thunk, true
		}
	}
	return nil, false
}

// Names lists the visible names, innermost first, without shadowed duplicates.
func (e *Env) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for s := e; s != nil; s = s.parent {
		if !seen[s.name] {
			seen[s.name] = true
			names = append(names, s.name)
		}
	}
	return names
}
