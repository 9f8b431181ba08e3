package ast

import "testing"

func TestBusRef_Eval(t *testing.T) {
	env := map[string]bool{"a": true}

	if !(BusRef{Name: "a"}).Eval(env) {
		t.Fatalf("expected BusRef(a) to evaluate true")
	}

	if (BusRef{Name: "b"}).Eval(env) {
		t.Fatalf("expected absent bus name to default to false")
	}
}

func TestLit_Eval(t *testing.T) {
	if !(Lit{Value: true}).Eval(nil) {
		t.Fatalf("expected Lit(true) to evaluate true")
	}

	if (Lit{Value: false}).Eval(nil) {
		t.Fatalf("expected Lit(false) to evaluate false")
	}
}

func TestNot_Eval(t *testing.T) {
	if (Not{X: Lit{Value: true}}).Eval(nil) {
		t.Fatalf("expected Not(true) to evaluate false")
	}
}

func TestOr_Eval(t *testing.T) {
	tests := []struct {
		xs   []Expr
		want bool
	}{
		{[]Expr{Lit{false}, Lit{false}}, false},
		{[]Expr{Lit{false}, Lit{true}}, true},
		{[]Expr{Lit{true}, Lit{true}, Lit{false}}, true},
	}

	for _, tt := range tests {
		if got := (Or{Xs: tt.xs}).Eval(nil); got != tt.want {
			t.Fatalf("Or(%v) = %v, want %v", tt.xs, got, tt.want)
		}
	}
}

func TestAnd_Eval(t *testing.T) {
	tests := []struct {
		xs   []Expr
		want bool
	}{
		{[]Expr{Lit{true}, Lit{true}}, true},
		{[]Expr{Lit{true}, Lit{false}}, false},
	}

	for _, tt := range tests {
		if got := (And{Xs: tt.xs}).Eval(nil); got != tt.want {
			t.Fatalf("And(%v) = %v, want %v", tt.xs, got, tt.want)
		}
	}
}

func TestXor_Eval(t *testing.T) {
	tests := []struct {
		xs   []Expr
		want bool
	}{
		{[]Expr{Lit{true}, Lit{false}}, true},
		{[]Expr{Lit{true}, Lit{true}}, false},
		{[]Expr{Lit{true}, Lit{true}, Lit{true}}, true},
	}

	for _, tt := range tests {
		if got := (Xor{Xs: tt.xs}).Eval(nil); got != tt.want {
			t.Fatalf("Xor(%v) = %v, want %v", tt.xs, got, tt.want)
		}
	}
}

func TestCollectNames_transitive(t *testing.T) {
	expr := And{Xs: []Expr{
		Or{Xs: []Expr{BusRef{Name: "a"}, BusRef{Name: "b"}}},
		Not{X: Xor{Xs: []Expr{BusRef{Name: "c"}, BusRef{Name: "a"}}}},
	}}

	names := map[string]bool{}
	expr.CollectNames(names)

	want := map[string]bool{"a": true, "b": true, "c": true}
	if len(names) != len(want) {
		t.Fatalf("CollectNames = %v, want %v", names, want)
	}

	for n := range want {
		if !names[n] {
			t.Fatalf("CollectNames missing %q", n)
		}
	}
}

func TestLit_CollectNames_isNoop(t *testing.T) {
	names := map[string]bool{}
	Lit{Value: true}.CollectNames(names)

	if len(names) != 0 {
		t.Fatalf("expected Lit to contribute no names, got %v", names)
	}
}
