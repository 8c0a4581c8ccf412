package pdrs

// walkStack implements a simple stack of PDRS nodes for the iterative
// whole-tree walks. Keeping the frontier explicit bounds Go stack use
// on deep trees.
type walkStack struct {
	data []PDRS
}

// newWalkStack creates a walk stack seeded with the root node.
func newWalkStack(root PDRS) *walkStack {
	s := &walkStack{data: make([]PDRS, 0, 16)}
	s.push(root)
	return s
}

// push adds a node to the top of the stack.
func (s *walkStack) push(p PDRS) {
	s.data = append(s.data, p)
}

// pop removes and returns the top node. Panics if the stack is empty.
func (s *walkStack) pop() PDRS {
	if len(s.data) == 0 {
		panic("pdrs: walk stack underflow")
	}
	p := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return p
}

// empty checks if the stack is empty.
func (s *walkStack) empty() bool {
	return len(s.data) == 0
}
