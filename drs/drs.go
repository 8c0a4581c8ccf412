// Package drs models unprojected Discourse Representation Structures:
// the classical DRT box of discourse referents and conditions, without
// projection pointers. It owns the atomic identifier types (Var, Rel)
// that the pdrs package builds on.
package drs

// Var is a discourse referent identifier. Identity is textual.
type Var string

// Rel is a relation symbol name.
type Rel string

// DRS is a discourse representation structure. The variant set is
// closed: Lambda, Merge and Resolved are the only implementations.
type DRS interface {
	isDRS()
}

// Lambda is a placeholder for an unresolved DRS. Var identifies the
// placeholder, Args lists the referents it abstracts over, and Pos is
// its position in the argument list of the function to resolve it.
type Lambda struct {
	Var  Var
	Args []Var
	Pos  int
}

// Merge is an unresolved merge of two DRSs, kept as a binary node
// until a merge-resolution pass unions the operands.
type Merge struct {
	Left, Right DRS
}

// Resolved is a fully resolved DRS: the referents introduced here and
// the conditions over them. Both sequences preserve insertion order.
type Resolved struct {
	Universe []Var
	Conds    []Cond
}

func (*Lambda) isDRS()   {}
func (*Merge) isDRS()    {}
func (*Resolved) isDRS() {}

// Cond is a DRS condition. The variant set is closed.
type Cond interface {
	isCond()
}

// Pred is an n-ary relation applied to an ordered list of referents.
type Pred struct {
	Rel  Rel
	Refs []Var
}

// Neg is the negation of a sub-DRS.
type Neg struct {
	Inner DRS
}

// Imp is an implication between two sub-DRSs.
type Imp struct {
	Ant, Cons DRS
}

// Or is a disjunction between two sub-DRSs.
type Or struct {
	Left, Right DRS
}

// Prop binds a proposition referent to a sub-DRS.
type Prop struct {
	Ref   Var
	Inner DRS
}

// Diamond is modal possibility over a sub-DRS.
type Diamond struct {
	Inner DRS
}

// Box is modal necessity over a sub-DRS.
type Box struct {
	Inner DRS
}

func (*Pred) isCond()    {}
func (*Neg) isCond()     {}
func (*Imp) isCond()     {}
func (*Or) isCond()      {}
func (*Prop) isCond()    {}
func (*Diamond) isCond() {}
func (*Box) isCond()     {}
