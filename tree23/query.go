package tree23

// Search returns a copy of the value stored for key.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	var zero V
	if t.IsEmpty() {
		return zero, false
	}
	x := t.findLeaf(key)
	if x == nilRef {
		return zero, false
	}
	return t.cfg.CloneValue(t.arena.at(x).value), true
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return !t.IsEmpty() && t.findLeaf(key) != nilRef
}

// findLeaf descends along the cached subtree maxima and returns the leaf
// holding key, or nilRef.
func (t *Tree[K, V]) findLeaf(key K) nodeRef {
	x := t.root
	for x != nilRef {
		n := t.arena.at(x)
		if n.isLeaf() {
			if t.cfg.Compare(n.key, key) == 0 {
				return x
			}
			return nilRef
		}
		c := n.children
		switch {
		case t.cfg.Compare(key, t.arena.at(c[leftSlot]).key) <= 0:
			x = c[leftSlot]
		case c[middleSlot] != nilRef && t.cfg.Compare(key, t.arena.at(c[middleSlot]).key) <= 0:
			x = c[middleSlot]
		default:
			x = c[rightSlot]
		}
	}
	return nilRef
}

// Rank returns the 1-based position of key in ascending key order, or 0 if
// key is not stored in the tree.
func (t *Tree[K, V]) Rank(key K) int {
	if t.IsEmpty() {
		return 0
	}
	x := t.findLeaf(key)
	if x == nilRef {
		return 0
	}
	return t.rankOfLeaf(x)
}

// rankOfLeaf walks from leaf x to the root, counting the elements in all
// subtrees left of the path.
func (t *Tree[K, V]) rankOfLeaf(x nodeRef) int {
	rank := 1
	for x != t.root {
		p := t.arena.at(x).parent
		for _, c := range t.arena.at(p).children {
			if c == x {
				break
			}
			rank += t.arena.at(c).size
		}
		x = p
	}
	return rank
}

// Select returns a copy of the key at 1-based position index in ascending
// key order. It reports false if index is not within [1, Len()].
func (t *Tree[K, V]) Select(index int) (K, bool) {
	var zero K
	x := t.selectLeaf(index)
	if x == nilRef {
		return zero, false
	}
	return t.cfg.CloneKey(t.arena.at(x).key), true
}

// At returns copies of key and value at 1-based position index.
func (t *Tree[K, V]) At(index int) (K, V, bool) {
	return t.element(t.selectLeaf(index))
}

func (t *Tree[K, V]) selectLeaf(index int) nodeRef {
	if index < 1 || index > t.Len() {
		return nilRef
	}
	x := t.root
	for !t.arena.at(x).isLeaf() {
		next := nilRef
		for _, c := range t.arena.at(x).children {
			if c == nilRef {
				break
			}
			size := t.arena.at(c).size
			if index <= size {
				next = c
				break
			}
			index -= size
		}
		assert(next != nilRef, "selectLeaf index routing exceeded subtree size")
		x = next
	}
	return x
}

// Ceiling returns the element with the smallest key greater than or equal to
// key.
func (t *Tree[K, V]) Ceiling(key K) (K, V, bool) {
	return t.element(t.ceilingLeaf(key))
}

// ceilingLeaf returns the leaf with the smallest key >= key, or nilRef if
// key is greater than every stored key.
func (t *Tree[K, V]) ceilingLeaf(key K) nodeRef {
	if t.IsEmpty() || t.cfg.Compare(key, t.arena.at(t.root).key) > 0 {
		return nilRef
	}
	x := t.root
	for !t.arena.at(x).isLeaf() {
		next := nilRef
		for _, c := range t.arena.at(x).children {
			if c != nilRef && t.cfg.Compare(key, t.arena.at(c).key) <= 0 {
				next = c
				break
			}
		}
		assert(next != nilRef, "ceilingLeaf: key exceeds cached subtree maximum")
		x = next
	}
	return x
}

// Min returns the element with the smallest key.
func (t *Tree[K, V]) Min() (K, V, bool) {
	return t.element(t.leftmostLeaf())
}

// Max returns the element with the largest key.
func (t *Tree[K, V]) Max() (K, V, bool) {
	return t.element(t.rightmostLeaf())
}

func (t *Tree[K, V]) leftmostLeaf() nodeRef {
	if t.IsEmpty() {
		return nilRef
	}
	x := t.root
	for !t.arena.at(x).isLeaf() {
		x = t.arena.at(x).children[leftSlot]
	}
	return x
}

func (t *Tree[K, V]) rightmostLeaf() nodeRef {
	if t.IsEmpty() {
		return nilRef
	}
	x := t.root
	for n := t.arena.at(x); !n.isLeaf(); n = t.arena.at(x) {
		x = n.children[n.degree()-1]
	}
	return x
}

// Total returns the aggregate of all values in the tree. It reports false
// for an empty tree.
func (t *Tree[K, V]) Total() (V, bool) {
	var zero V
	if t.IsEmpty() {
		return zero, false
	}
	return t.cfg.CloneValue(t.arena.at(t.root).sum), true
}

func (t *Tree[K, V]) element(x nodeRef) (K, V, bool) {
	var k K
	var v V
	if x == nilRef {
		return k, v, false
	}
	leaf := t.arena.at(x)
	return t.cfg.CloneKey(leaf.key), t.cfg.CloneValue(leaf.value), true
}
