package pdrs

import (
	"fmt"

	"github.com/semkit/pdrt/drs"
)

// Equal reports deep structural equality of two PDRS trees. Two trees
// are equal iff their shapes and all contained fields match
// recursively; universes, MAP slices and condition lists are
// order-sensitive.
func Equal(a, b PDRS) bool {
	switch a := a.(type) {
	case *Lambda:
		b, ok := b.(*Lambda)
		return ok && a.Var == b.Var && varsEqual(a.Args, b.Args) && a.Pos == b.Pos
	case *AMerge:
		b, ok := b.(*AMerge)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *PMerge:
		b, ok := b.(*PMerge)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Resolved:
		b, ok := b.(*Resolved)
		if !ok || a.Label != b.Label {
			return false
		}
		if len(a.MAPs) != len(b.MAPs) || len(a.Universe) != len(b.Universe) || len(a.Conds) != len(b.Conds) {
			return false
		}
		for i := range a.MAPs {
			if a.MAPs[i] != b.MAPs[i] {
				return false
			}
		}
		for i := range a.Universe {
			if !prefsEqual(a.Universe[i], b.Universe[i]) {
				return false
			}
		}
		for i := range a.Conds {
			if a.Conds[i].Pointer != b.Conds[i].Pointer || !condsEqual(a.Conds[i].Cond, b.Conds[i].Cond) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("pdrs: unknown PDRS variant %T", a))
	}
}

// EqualRefs reports structural equality of two referents.
func EqualRefs(a, b Ref) bool {
	switch a := a.(type) {
	case *RefVar:
		b, ok := b.(*RefVar)
		return ok && a.Var == b.Var
	case *LambdaRef:
		b, ok := b.(*LambdaRef)
		return ok && a.Var == b.Var && varsEqual(a.Args, b.Args) && a.Pos == b.Pos
	default:
		panic(fmt.Sprintf("pdrs: unknown referent variant %T", a))
	}
}

func prefsEqual(a, b PRef) bool {
	return a.Pointer == b.Pointer && EqualRefs(a.Ref, b.Ref)
}

func relationsEqual(a, b Relation) bool {
	switch a := a.(type) {
	case *RelName:
		b, ok := b.(*RelName)
		return ok && a.Name == b.Name
	case *LambdaRel:
		b, ok := b.(*LambdaRel)
		return ok && a.Var == b.Var && varsEqual(a.Args, b.Args) && a.Pos == b.Pos
	default:
		panic(fmt.Sprintf("pdrs: unknown relation variant %T", a))
	}
}

func condsEqual(a, b Cond) bool {
	switch a := a.(type) {
	case *Pred:
		b, ok := b.(*Pred)
		if !ok || !relationsEqual(a.Rel, b.Rel) || len(a.Refs) != len(b.Refs) {
			return false
		}
		for i := range a.Refs {
			if !EqualRefs(a.Refs[i], b.Refs[i]) {
				return false
			}
		}
		return true
	case *Neg:
		b, ok := b.(*Neg)
		return ok && Equal(a.Inner, b.Inner)
	case *Imp:
		b, ok := b.(*Imp)
		return ok && Equal(a.Ant, b.Ant) && Equal(a.Cons, b.Cons)
	case *Or:
		b, ok := b.(*Or)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Prop:
		b, ok := b.(*Prop)
		return ok && EqualRefs(a.Ref, b.Ref) && Equal(a.Inner, b.Inner)
	case *Diamond:
		b, ok := b.(*Diamond)
		return ok && Equal(a.Inner, b.Inner)
	case *Box:
		b, ok := b.(*Box)
		return ok && Equal(a.Inner, b.Inner)
	default:
		panic(fmt.Sprintf("pdrs: unknown condition variant %T", a))
	}
}

func varsEqual(a, b []drs.Var) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
