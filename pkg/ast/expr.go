// Package ast defines the expression and statement trees produced by
// pkg/parser and consumed by pkg/synth. Every Expr is pure: it evaluates,
// given a mapping from input bus names to booleans, to a boolean, and never
// mutates its environment.
package ast

// Expr is a boolean-valued expression node.
type Expr interface {
	// Eval evaluates this expression against a mapping from bus name to its
	// currently-selected boolean value.
	Eval(env map[string]bool) bool
	// CollectNames adds every bus name referenced anywhere in this
	// expression (transitively) to the given set.
	CollectNames(into map[string]bool)
}

// BusRef is a leaf expression referring to an input bus by name.
type BusRef struct {
	Name string
}

// Eval implements Expr.
func (b BusRef) Eval(env map[string]bool) bool { return env[b.Name] }

// CollectNames implements Expr.
func (b BusRef) CollectNames(into map[string]bool) { into[b.Name] = true }

// Lit is a leaf expression holding a boolean constant (0 or 1).
type Lit struct {
	Value bool
}

// Eval implements Expr.
func (l Lit) Eval(map[string]bool) bool { return l.Value }

// CollectNames implements Expr.
func (l Lit) CollectNames(map[string]bool) {}

// Not negates its single child.
type Not struct {
	X Expr
}

// Eval implements Expr.
func (n Not) Eval(env map[string]bool) bool { return !n.X.Eval(env) }

// CollectNames implements Expr.
func (n Not) CollectNames(into map[string]bool) { n.X.CollectNames(into) }

// Or folds two or more children with boolean OR. The identity is false, but
// AST construction always supplies at least two children.
type Or struct {
	Xs []Expr
}

// Eval implements Expr.
func (o Or) Eval(env map[string]bool) bool {
	result := false
	for _, x := range o.Xs {
		result = result || x.Eval(env)
	}

	return result
}

// CollectNames implements Expr.
func (o Or) CollectNames(into map[string]bool) {
	for _, x := range o.Xs {
		x.CollectNames(into)
	}
}

// And folds two or more children with boolean AND. The identity is true.
type And struct {
	Xs []Expr
}

// Eval implements Expr.
func (a And) Eval(env map[string]bool) bool {
	result := true
	for _, x := range a.Xs {
		result = result && x.Eval(env)
	}

	return result
}

// CollectNames implements Expr.
func (a And) CollectNames(into map[string]bool) {
	for _, x := range a.Xs {
		x.CollectNames(into)
	}
}

// Xor folds two or more children with boolean XOR. The identity is false.
type Xor struct {
	Xs []Expr
}

// Eval implements Expr.
func (x Xor) Eval(env map[string]bool) bool {
	result := false
	for _, c := range x.Xs {
		result = result != c.Eval(env)
	}

	return result
}

// CollectNames implements Expr.
func (x Xor) CollectNames(into map[string]bool) {
	for _, c := range x.Xs {
		c.CollectNames(into)
	}
}
