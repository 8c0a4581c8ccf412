package pdrs

import "fmt"

// IsLambda reports whether p is entirely unresolved: a lambda
// placeholder, or a merge whose operands are both entirely unresolved.
// A resolved node is never a lambda, whatever it contains.
func IsLambda(p PDRS) bool {
	switch p := p.(type) {
	case *Lambda:
		return true
	case *AMerge:
		return IsLambda(p.Left) && IsLambda(p.Right)
	case *PMerge:
		return IsLambda(p.Left) && IsLambda(p.Right)
	case *Resolved:
		return false
	default:
		panic(fmt.Sprintf("pdrs: unknown PDRS variant %T", p))
	}
}

// IsMerge reports whether the top node of p is an unresolved merge.
func IsMerge(p PDRS) bool {
	switch p.(type) {
	case *AMerge, *PMerge:
		return true
	default:
		return false
	}
}

// Label returns the label of p, or NoLabel for a lambda placeholder.
// At a merge the right operand's label wins whenever the right side is
// resolved; the left operand is the fallback when the right side is
// entirely unresolved.
func Label(p PDRS) PVar {
	switch p := p.(type) {
	case *Lambda:
		return NoLabel
	case *AMerge:
		if IsLambda(p.Right) {
			return Label(p.Left)
		}
		return Label(p.Right)
	case *PMerge:
		if IsLambda(p.Right) {
			return Label(p.Left)
		}
		return Label(p.Right)
	case *Resolved:
		return p.Label
	default:
		panic(fmt.Sprintf("pdrs: unknown PDRS variant %T", p))
	}
}

// Universe returns the projected referents introduced at p's top
// level, without descending into condition-embedded sub-PDRSs. Merges
// concatenate left before right without deduplication; a resolved node
// yields its universe verbatim.
func Universe(p PDRS) []PRef {
	switch p := p.(type) {
	case *Lambda:
		return nil
	case *AMerge:
		return joinPRefs(Universe(p.Left), Universe(p.Right))
	case *PMerge:
		return joinPRefs(Universe(p.Left), Universe(p.Right))
	case *Resolved:
		return p.Universe
	default:
		panic(fmt.Sprintf("pdrs: unknown PDRS variant %T", p))
	}
}

// MAPs returns the minimally-accessible-projection pairs at p's top
// level, shaped like Universe: empty for a lambda, left-then-right
// concatenation at a merge, verbatim for a resolved node.
func MAPs(p PDRS) []MAP {
	switch p := p.(type) {
	case *Lambda:
		return nil
	case *AMerge:
		return joinMAPs(MAPs(p.Left), MAPs(p.Right))
	case *PMerge:
		return joinMAPs(MAPs(p.Left), MAPs(p.Right))
	case *Resolved:
		return p.MAPs
	default:
		panic(fmt.Sprintf("pdrs: unknown PDRS variant %T", p))
	}
}

// joinPRefs concatenates into fresh backing storage so a verbatim
// universe slice is never appended onto in place.
func joinPRefs(l, r []PRef) []PRef {
	u := make([]PRef, 0, len(l)+len(r))
	u = append(u, l...)
	return append(u, r...)
}

func joinMAPs(l, r []MAP) []MAP {
	m := make([]MAP, 0, len(l)+len(r))
	m = append(m, l...)
	return append(m, r...)
}

// IsSub reports whether p1 is p2 itself or occurs embedded in one of
// p2's conditions, however deeply. Lambda targets have no substructure
// and always report false; merge nodes are descended into but never
// matched directly — only resolved nodes get the structural-equality
// check. Evaluation is left before right, in condition-list order,
// stopping at the first match.
func IsSub(p1, p2 PDRS) bool {
	switch p2 := p2.(type) {
	case *Lambda:
		return false
	case *AMerge:
		return IsSub(p1, p2.Left) || IsSub(p1, p2.Right)
	case *PMerge:
		return IsSub(p1, p2.Left) || IsSub(p1, p2.Right)
	case *Resolved:
		if Equal(p1, p2) {
			return true
		}
		for _, pc := range p2.Conds {
			if subCond(p1, pc.Cond) {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("pdrs: unknown PDRS variant %T", p2))
	}
}

func subCond(p1 PDRS, c Cond) bool {
	switch c := c.(type) {
	case *Pred:
		return false
	case *Neg:
		return IsSub(p1, c.Inner)
	case *Imp:
		return IsSub(p1, c.Ant) || IsSub(p1, c.Cons)
	case *Or:
		return IsSub(p1, c.Left) || IsSub(p1, c.Right)
	case *Prop:
		return IsSub(p1, c.Inner)
	case *Diamond:
		return IsSub(p1, c.Inner)
	case *Box:
		return IsSub(p1, c.Inner)
	default:
		panic(fmt.Sprintf("pdrs: unknown condition variant %T", c))
	}
}

// Labels returns every label occurring in p in depth-first order: a
// resolved node's own label first, then the labels of the PDRSs
// embedded in its conditions, in condition order. Lambdas contribute
// nothing. Duplicates are kept.
func Labels(p PDRS) []PVar {
	var labels []PVar
	st := newWalkStack(p)
	for !st.empty() {
		switch n := st.pop().(type) {
		case *Lambda:
		case *AMerge:
			st.push(n.Right)
			st.push(n.Left)
		case *PMerge:
			st.push(n.Right)
			st.push(n.Left)
		case *Resolved:
			labels = append(labels, n.Label)
			pushCondsReversed(st, n.Conds)
		default:
			panic(fmt.Sprintf("pdrs: unknown PDRS variant %T", n))
		}
	}
	return labels
}

// IsResolved reports whether no lambda placeholder occurs anywhere in
// p: not on the merge spine, not among referents or relation symbols,
// not inside any condition-embedded sub-PDRS.
func IsResolved(p PDRS) bool {
	st := newWalkStack(p)
	for !st.empty() {
		switch n := st.pop().(type) {
		case *Lambda:
			return false
		case *AMerge:
			st.push(n.Right)
			st.push(n.Left)
		case *PMerge:
			st.push(n.Right)
			st.push(n.Left)
		case *Resolved:
			for _, pr := range n.Universe {
				if !refResolved(pr.Ref) {
					return false
				}
			}
			for _, pc := range n.Conds {
				if !condShallowResolved(pc.Cond) {
					return false
				}
			}
			pushCondsReversed(st, n.Conds)
		default:
			panic(fmt.Sprintf("pdrs: unknown PDRS variant %T", n))
		}
	}
	return true
}

// condShallowResolved checks the referents and relation symbol of a
// condition; embedded sub-PDRSs are visited by the walk stack.
func condShallowResolved(c Cond) bool {
	p, ok := c.(*Pred)
	if !ok {
		return true
	}
	if _, lam := p.Rel.(*LambdaRel); lam {
		return false
	}
	for _, r := range p.Refs {
		if !refResolved(r) {
			return false
		}
	}
	return true
}

func refResolved(r Ref) bool {
	_, lam := r.(*LambdaRef)
	return !lam
}

// pushCondsReversed pushes the sub-PDRSs embedded in conds so that the
// walk stack pops them in condition order, left operand first.
func pushCondsReversed(st *walkStack, conds []PCon) {
	for i := len(conds) - 1; i >= 0; i-- {
		switch c := conds[i].Cond.(type) {
		case *Pred:
		case *Neg:
			st.push(c.Inner)
		case *Imp:
			st.push(c.Cons)
			st.push(c.Ant)
		case *Or:
			st.push(c.Right)
			st.push(c.Left)
		case *Prop:
			st.push(c.Inner)
		case *Diamond:
			st.push(c.Inner)
		case *Box:
			st.push(c.Inner)
		default:
			panic(fmt.Sprintf("pdrs: unknown condition variant %T", c))
		}
	}
}
