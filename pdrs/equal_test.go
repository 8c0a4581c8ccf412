package pdrs

import (
	"testing"

	"github.com/semkit/pdrt/drs"
)

func manCond(ptr PVar) PCon {
	return PCon{Pointer: ptr, Cond: &Pred{Rel: &RelName{Name: "man"}, Refs: []Ref{&RefVar{Var: "x"}}}}
}

func walkCond(ptr PVar) PCon {
	return PCon{Pointer: ptr, Cond: &Pred{Rel: &RelName{Name: "walk"}, Refs: []Ref{&RefVar{Var: "x"}}}}
}

func TestEqualStructural(t *testing.T) {
	build := func() PDRS {
		return &Resolved{
			Label:    1,
			MAPs:     []MAP{{From: 1, To: 2}},
			Universe: []PRef{{Pointer: 1, Ref: &RefVar{Var: "x"}}},
			Conds:    []PCon{manCond(1), walkCond(1)},
		}
	}
	if !Equal(build(), build()) {
		t.Error("separately built identical trees should be equal")
	}
}

func TestEqualOrderSensitive(t *testing.T) {
	a := &Resolved{Label: 1, Conds: []PCon{manCond(1), walkCond(1)}}
	b := &Resolved{Label: 1, Conds: []PCon{walkCond(1), manCond(1)}}
	if Equal(a, b) {
		t.Error("condition order is significant")
	}

	u1 := &Resolved{Label: 1, Universe: []PRef{{Pointer: 1, Ref: &RefVar{Var: "x"}}, {Pointer: 1, Ref: &RefVar{Var: "y"}}}}
	u2 := &Resolved{Label: 1, Universe: []PRef{{Pointer: 1, Ref: &RefVar{Var: "y"}}, {Pointer: 1, Ref: &RefVar{Var: "x"}}}}
	if Equal(u1, u2) {
		t.Error("universe order is significant")
	}

	m1 := &Resolved{Label: 1, MAPs: []MAP{{From: 1, To: 2}, {From: 2, To: 1}}}
	m2 := &Resolved{Label: 1, MAPs: []MAP{{From: 2, To: 1}, {From: 1, To: 2}}}
	if Equal(m1, m2) {
		t.Error("MAP order is significant")
	}
}

func TestEqualDistinguishesVariants(t *testing.T) {
	l := &Lambda{Var: "K"}
	r := &Resolved{Label: 1}
	cases := []struct {
		name string
		a, b PDRS
	}{
		{"lambda vs resolved", l, r},
		{"amerge vs pmerge", &AMerge{Left: l, Right: l}, &PMerge{Left: l, Right: l}},
		{"different labels", &Resolved{Label: 1}, &Resolved{Label: 2}},
		{"different lambda vars", &Lambda{Var: "K"}, &Lambda{Var: "L"}},
		{"different lambda pos", &Lambda{Var: "K", Pos: 0}, &Lambda{Var: "K", Pos: 1}},
		{"different pointers", &Resolved{Label: 1, Conds: []PCon{manCond(1)}}, &Resolved{Label: 1, Conds: []PCon{manCond(2)}}},
	}
	for _, tc := range cases {
		if Equal(tc.a, tc.b) {
			t.Errorf("%s: should not be equal", tc.name)
		}
	}
}

func TestEqualNested(t *testing.T) {
	inner := func(label PVar) PDRS {
		return &Resolved{Label: label, Conds: []PCon{manCond(label)}}
	}
	a := &Resolved{Label: 1, Conds: []PCon{{Pointer: 1, Cond: &Imp{Ant: inner(2), Cons: inner(3)}}}}
	b := &Resolved{Label: 1, Conds: []PCon{{Pointer: 1, Cond: &Imp{Ant: inner(2), Cons: inner(3)}}}}
	c := &Resolved{Label: 1, Conds: []PCon{{Pointer: 1, Cond: &Imp{Ant: inner(3), Cons: inner(2)}}}}
	if !Equal(a, b) {
		t.Error("identical nested trees should be equal")
	}
	if Equal(a, c) {
		t.Error("swapped antecedent and consequent should not be equal")
	}
}

func TestEqualRefs(t *testing.T) {
	if !EqualRefs(&RefVar{Var: "x"}, &RefVar{Var: "x"}) {
		t.Error("identical concrete referents should be equal")
	}
	if EqualRefs(&RefVar{Var: "x"}, &RefVar{Var: "y"}) {
		t.Error("distinct referents should not be equal")
	}
	if EqualRefs(&RefVar{Var: "x"}, &LambdaRef{Var: "x"}) {
		t.Error("concrete and lambda referents should not be equal")
	}
	if !EqualRefs(&LambdaRef{Var: "R", Args: []drs.Var{"a", "b"}}, &LambdaRef{Var: "R", Args: []drs.Var{"a", "b"}}) {
		t.Error("identical lambda referents should be equal")
	}
	if EqualRefs(&LambdaRef{Var: "R", Args: []drs.Var{"a", "b"}}, &LambdaRef{Var: "R", Args: []drs.Var{"b", "a"}}) {
		t.Error("lambda argument order is significant")
	}
}
