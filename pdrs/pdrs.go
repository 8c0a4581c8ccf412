// Package pdrs models Projective Discourse Representation Structures:
// DRSs extended with labels and projection pointers, so a referent or
// condition can be introduced at one node but anchored at another.
// The package is a pure value-tree model plus read-only structural
// queries; it performs no pointer resolution, merging or renaming.
package pdrs

import "github.com/semkit/pdrt/drs"

// PVar is a projection variable: the label a PDRS occupies, or the
// pointer a referent or condition is anchored to. Plain integer, no
// uniqueness enforced here.
type PVar int

// NoLabel is the reserved sentinel returned as the label of a lambda
// placeholder.
const NoLabel PVar = 0

// MAP is a minimally-accessible-projection pair: To is minimally
// accessible from From. A PDRS stores its MAPs as an order-preserving
// slice even though they denote a set.
type MAP struct {
	From, To PVar
}

// PDRS is a projective discourse representation structure. The variant
// set is closed: Lambda, AMerge, PMerge and Resolved are the only
// implementations.
type PDRS interface {
	isPDRS()
}

// Lambda is a placeholder for an unresolved PDRS. Var identifies the
// placeholder, Args lists the referents it abstracts over, and Pos is
// its position in the argument list of the function to resolve it.
// A lambda carries no label, universe or conditions.
type Lambda struct {
	Var  drs.Var
	Args []drs.Var
	Pos  int
}

// AMerge is an unresolved assertive merge of two PDRSs, kept as a
// binary node until a merge-resolution pass unions the operands.
type AMerge struct {
	Left, Right PDRS
}

// PMerge is an unresolved projective merge of two PDRSs. Structurally
// identical to AMerge; the merge semantics differ only once resolved.
type PMerge struct {
	Left, Right PDRS
}

// Resolved is a fully resolved PDRS node: its label, its MAP
// accessibility pairs, the projected referents introduced here, and
// its projected conditions. All sequences preserve insertion order.
type Resolved struct {
	Label    PVar
	MAPs     []MAP
	Universe []PRef
	Conds    []PCon
}

func (*Lambda) isPDRS()   {}
func (*AMerge) isPDRS()   {}
func (*PMerge) isPDRS()   {}
func (*Resolved) isPDRS() {}

// AsResolved returns p as a resolved node when it is one.
func AsResolved(p PDRS) (*Resolved, bool) {
	r, ok := p.(*Resolved)
	return r, ok
}

// PRef is a projected referent: a referent paired with the label it is
// anchored to. Pointer need not equal the label of the node that
// introduces the referent.
type PRef struct {
	Pointer PVar
	Ref     Ref
}

// Ref is a PDRS referent: a concrete discourse referent or a lambda
// placeholder for one.
type Ref interface {
	isRef()
}

// RefVar is a concrete discourse referent.
type RefVar struct {
	Var drs.Var
}

// LambdaRef is an unresolved referent placeholder, with the same
// shape as Lambda.
type LambdaRef struct {
	Var  drs.Var
	Args []drs.Var
	Pos  int
}

func (*RefVar) isRef()    {}
func (*LambdaRef) isRef() {}

// Relation is a PDRS relation symbol: a concrete name or a lambda
// placeholder for one.
type Relation interface {
	isRelation()
}

// RelName is a concrete relation symbol.
type RelName struct {
	Name drs.Rel
}

// LambdaRel is an unresolved relation placeholder, with the same
// shape as Lambda.
type LambdaRel struct {
	Var  drs.Var
	Args []drs.Var
	Pos  int
}

func (*RelName) isRelation()   {}
func (*LambdaRel) isRelation() {}

// PCon is a projected condition: a condition paired with the label it
// is anchored to.
type PCon struct {
	Pointer PVar
	Cond    Cond
}

// Cond is a PDRS condition payload. The variant set is closed.
type Cond interface {
	isCond()
}

// Pred is an n-ary relation applied to an ordered list of referents.
// It embeds no sub-PDRS.
type Pred struct {
	Rel  Relation
	Refs []Ref
}

// Neg is the negation of a sub-PDRS.
type Neg struct {
	Inner PDRS
}

// Imp is an implication between two sub-PDRSs.
type Imp struct {
	Ant, Cons PDRS
}

// Or is a disjunction between two sub-PDRSs.
type Or struct {
	Left, Right PDRS
}

// Prop binds a proposition referent to a sub-PDRS.
type Prop struct {
	Ref   Ref
	Inner PDRS
}

// Diamond is modal possibility over a sub-PDRS.
type Diamond struct {
	Inner PDRS
}

// Box is modal necessity over a sub-PDRS.
type Box struct {
	Inner PDRS
}

func (*Pred) isCond()    {}
func (*Neg) isCond()     {}
func (*Imp) isCond()     {}
func (*Or) isCond()      {}
func (*Prop) isCond()    {}
func (*Diamond) isCond() {}
func (*Box) isCond()     {}
