package drs

import "fmt"

// IsLambda reports whether d is entirely unresolved: a lambda
// placeholder, or a merge whose operands are both entirely unresolved.
// A resolved DRS is never a lambda, whatever it contains.
func IsLambda(d DRS) bool {
	switch d := d.(type) {
	case *Lambda:
		return true
	case *Merge:
		return IsLambda(d.Left) && IsLambda(d.Right)
	case *Resolved:
		return false
	default:
		panic(fmt.Sprintf("drs: unknown DRS variant %T", d))
	}
}

// Universe returns the referents introduced at d's top level. Merges
// concatenate left before right without deduplication; a resolved DRS
// yields its universe verbatim.
func Universe(d DRS) []Var {
	switch d := d.(type) {
	case *Lambda:
		return nil
	case *Merge:
		l, r := Universe(d.Left), Universe(d.Right)
		u := make([]Var, 0, len(l)+len(r))
		u = append(u, l...)
		return append(u, r...)
	case *Resolved:
		return d.Universe
	default:
		panic(fmt.Sprintf("drs: unknown DRS variant %T", d))
	}
}

// IsSub reports whether d1 is d2 itself or occurs embedded in one of
// d2's conditions. Lambda targets have no substructure and always
// report false; merge nodes are descended into but never matched
// directly.
func IsSub(d1, d2 DRS) bool {
	switch d2 := d2.(type) {
	case *Lambda:
		return false
	case *Merge:
		return IsSub(d1, d2.Left) || IsSub(d1, d2.Right)
	case *Resolved:
		if Equal(d1, d2) {
			return true
		}
		for _, c := range d2.Conds {
			if subCond(d1, c) {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("drs: unknown DRS variant %T", d2))
	}
}

func subCond(d1 DRS, c Cond) bool {
	switch c := c.(type) {
	case *Pred:
		return false
	case *Neg:
		return IsSub(d1, c.Inner)
	case *Imp:
		return IsSub(d1, c.Ant) || IsSub(d1, c.Cons)
	case *Or:
		return IsSub(d1, c.Left) || IsSub(d1, c.Right)
	case *Prop:
		return IsSub(d1, c.Inner)
	case *Diamond:
		return IsSub(d1, c.Inner)
	case *Box:
		return IsSub(d1, c.Inner)
	default:
		panic(fmt.Sprintf("drs: unknown condition variant %T", c))
	}
}

// Equal reports deep structural equality of two DRS trees. Universes
// and condition lists are order-sensitive.
func Equal(a, b DRS) bool {
	switch a := a.(type) {
	case *Lambda:
		b, ok := b.(*Lambda)
		return ok && a.Var == b.Var && varsEqual(a.Args, b.Args) && a.Pos == b.Pos
	case *Merge:
		b, ok := b.(*Merge)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Resolved:
		b, ok := b.(*Resolved)
		if !ok || !varsEqual(a.Universe, b.Universe) || len(a.Conds) != len(b.Conds) {
			return false
		}
		for i := range a.Conds {
			if !condsEqual(a.Conds[i], b.Conds[i]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("drs: unknown DRS variant %T", a))
	}
}

func condsEqual(a, b Cond) bool {
	switch a := a.(type) {
	case *Pred:
		b, ok := b.(*Pred)
		return ok && a.Rel == b.Rel && varsEqual(a.Refs, b.Refs)
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
		return ok && a.Ref == b.Ref && Equal(a.Inner, b.Inner)
	case *Diamond:
		b, ok := b.(*Diamond)
		return ok && Equal(a.Inner, b.Inner)
	case *Box:
		b, ok := b.(*Box)
		return ok && Equal(a.Inner, b.Inner)
	default:
		panic(fmt.Sprintf("drs: unknown condition variant %T", a))
	}
}

func varsEqual(a, b []Var) bool {
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
