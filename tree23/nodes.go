package tree23

// nodeRef addresses a node within the arena of a tree. The zero value
// denotes an absent node.
type nodeRef int32

const nilRef nodeRef = 0

// Child slots of an inner node. Children are packed to the left: a 2-node
// uses left and middle, a node in underflow uses left only.
const (
	leftSlot = iota
	middleSlot
	rightSlot
)

// node is either a leaf (no children) or an inner node with 2 or 3 children.
type node[K, V any] struct {
	parent   nodeRef
	children [3]nodeRef
	// key is the stored key for leaves. For inner nodes it is the key of the
	// rightmost child, i.e. the maximum key of the subtree.
	key K
	// value is the stored value and is set for leaves only.
	value V
	sum   V
	size  int
}

func (n *node[K, V]) isLeaf() bool {
	return n.children[leftSlot] == nilRef
}

func (n *node[K, V]) degree() int {
	d := 0
	for _, c := range n.children {
		if c != nilRef {
			d++
		}
	}
	return d
}

// arena owns all nodes of a tree. Slot 0 is never handed out.
//
// alloc may grow the backing slice, therefore pointers obtained from at are
// invalidated by a subsequent alloc.
type arena[K, V any] struct {
	nodes []node[K, V]
	free  []nodeRef
}

func (a *arena[K, V]) at(r nodeRef) *node[K, V] {
	assert(r != nilRef, "arena access with nil node reference")
	return &a.nodes[r]
}

func (a *arena[K, V]) alloc() nodeRef {
	if len(a.nodes) == 0 {
		a.nodes = append(a.nodes, node[K, V]{})
	}
	if n := len(a.free); n > 0 {
		r := a.free[n-1]
		a.free = a.free[:n-1]
		return r
	}
	a.nodes = append(a.nodes, node[K, V]{})
	return nodeRef(len(a.nodes) - 1)
}

func (a *arena[K, V]) release(r nodeRef) {
	assert(r != nilRef, "arena release of nil node reference")
	a.nodes[r] = node[K, V]{}
	a.free = append(a.free, r)
}

// live returns the number of allocated nodes.
func (a *arena[K, V]) live() int {
	if len(a.nodes) == 0 {
		return 0
	}
	return len(a.nodes) - 1 - len(a.free)
}

func (a *arena[K, V]) reset() {
	a.nodes = nil
	a.free = nil
}
