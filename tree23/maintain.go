package tree23

// setChildren replaces the children of x and re-parents them. The cached key,
// size and sum of x are recomputed from the new children.
func (t *Tree[K, V]) setChildren(x, l, m, r nodeRef) {
	assert(l != nilRef, "setChildren requires a left child")
	assert(r == nilRef || m != nilRef, "setChildren: right child without middle child")
	xn := t.arena.at(x)
	xn.children = [3]nodeRef{l, m, r}
	for _, c := range xn.children {
		if c != nilRef {
			t.arena.at(c).parent = x
		}
	}
	t.recompute(x)
}

// recompute refreshes the cached key, size and sum of inner node x.
func (t *Tree[K, V]) recompute(x nodeRef) {
	xn := t.arena.at(x)
	assert(!xn.isLeaf(), "recompute called for a leaf")
	xn.size = 0
	xn.sum = t.cfg.Monoid.Zero()
	for _, c := range xn.children {
		if c == nilRef {
			break
		}
		cn := t.arena.at(c)
		xn.size += cn.size
		xn.sum = t.cfg.Monoid.Add(xn.sum, cn.sum)
		xn.key = cn.key
	}
}

// slotOf returns the child slot c occupies within its parent.
func (t *Tree[K, V]) slotOf(c nodeRef) int {
	p := t.arena.at(c).parent
	assert(p != nilRef, "slotOf called for the root")
	for i, s := range t.arena.at(p).children {
		if s == c {
			return i
		}
	}
	assert(false, "slotOf: node is not a child of its parent")
	return -1
}

// insertAndSplit inserts z as a child of x, keeping children ordered by
// their cached keys.
//
// If x had two children, it becomes a 3-node and nilRef is returned.
// Otherwise the four children are split: x keeps the two smallest, a new
// node y receives the two largest, and y is returned. The caller has to
// insert y into the parent of x.
func (t *Tree[K, V]) insertAndSplit(x, z nodeRef) nodeRef {
	c := t.arena.at(x).children
	l, m, r := c[leftSlot], c[middleSlot], c[rightSlot]
	zkey := t.arena.at(z).key
	before := func(child nodeRef) bool {
		return t.cfg.Compare(zkey, t.arena.at(child).key) < 0
	}
	if r == nilRef {
		switch {
		case before(l):
			t.setChildren(x, z, l, m)
		case before(m):
			t.setChildren(x, l, z, m)
		default:
			t.setChildren(x, l, m, z)
		}
		return nilRef
	}
	y := t.arena.alloc()
	switch {
	case before(l):
		t.setChildren(x, z, l, nilRef)
		t.setChildren(y, m, r, nilRef)
	case before(m):
		t.setChildren(x, l, z, nilRef)
		t.setChildren(y, m, r, nilRef)
	case before(r):
		t.setChildren(x, l, m, nilRef)
		t.setChildren(y, z, r, nilRef)
	default:
		t.setChildren(x, l, m, nilRef)
		t.setChildren(y, r, z, nilRef)
	}
	return y
}

// borrowOrMerge repairs y, which has dropped to a single child, using its
// neighbouring sibling below the common parent z.
//
// If the sibling is a 3-node, one of its children is moved over to y.
// Otherwise y's remaining child is merged into the sibling, y is released
// and z loses one child, possibly dropping to a single child itself.
// z is returned so that the caller may continue upwards.
func (t *Tree[K, V]) borrowOrMerge(y nodeRef) nodeRef {
	yn := t.arena.at(y)
	assert(yn.degree() == 1, "borrowOrMerge called for a node without underflow")
	z := yn.parent
	only := yn.children[leftSlot]
	zc := t.arena.at(z).children
	switch t.slotOf(y) {
	case leftSlot:
		x := zc[middleSlot]
		xc := t.arena.at(x).children
		if xc[rightSlot] != nilRef {
			t.setChildren(y, only, xc[leftSlot], nilRef)
			t.setChildren(x, xc[middleSlot], xc[rightSlot], nilRef)
			return z
		}
		t.setChildren(x, only, xc[leftSlot], xc[middleSlot])
		t.arena.release(y)
		t.setChildren(z, x, zc[rightSlot], nilRef)
	case middleSlot:
		x := zc[leftSlot]
		xc := t.arena.at(x).children
		if xc[rightSlot] != nilRef {
			t.setChildren(y, xc[rightSlot], only, nilRef)
			t.setChildren(x, xc[leftSlot], xc[middleSlot], nilRef)
			return z
		}
		t.setChildren(x, xc[leftSlot], xc[middleSlot], only)
		t.arena.release(y)
		t.setChildren(z, x, zc[rightSlot], nilRef)
	default:
		x := zc[middleSlot]
		xc := t.arena.at(x).children
		if xc[rightSlot] != nilRef {
			t.setChildren(y, xc[rightSlot], only, nilRef)
			t.setChildren(x, xc[leftSlot], xc[middleSlot], nilRef)
			return z
		}
		t.setChildren(x, xc[leftSlot], xc[middleSlot], only)
		t.arena.release(y)
		t.setChildren(z, zc[leftSlot], x, nilRef)
	}
	tracer().Debugf("tree23: merged underflowing node into sibling")
	return z
}
