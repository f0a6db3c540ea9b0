package tree23

// Tree is an ordered aggregate 2-3 tree.
//
// K is the key type, ordered by Config.Compare. V is the value type,
// aggregated by Config.Monoid. Keys and values are copied on the way in and
// on the way out, using Config.CloneKey and Config.CloneValue.
//
// A Tree created by New is empty. A nil *Tree behaves like an empty tree for
// all queries, Config and Clear; mutating it with Insert, Update or Delete
// panics.
type Tree[K, V any] struct {
	cfg    Config[K, V]
	arena  arena[K, V]
	root   nodeRef
	height int // 0 means empty tree, 1 means a leaf root
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K, V] {
	if t == nil {
		return Config[K, V]{}
	}
	return t.cfg
}

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nilRef
}

// Len returns the number of elements in the tree.
func (t *Tree[K, V]) Len() int {
	if t.IsEmpty() {
		return 0
	}
	return t.arena.at(t.root).size
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Clear removes all elements.
func (t *Tree[K, V]) Clear() {
	if t == nil {
		return
	}
	t.arena.reset()
	t.root = nilRef
	t.height = 0
}

// Insert stores a copy of key and value in the tree.
//
// key must not compare equal to a key already present; see the package
// documentation.
func (t *Tree[K, V]) Insert(key K, value V) {
	z := t.newLeaf(key, value)
	if t.root == nilRef {
		t.root = z
		t.height = 1
		return
	}
	if t.height == 1 {
		w := t.arena.alloc()
		if t.cfg.Compare(t.arena.at(t.root).key, t.arena.at(z).key) > 0 {
			t.setChildren(w, z, t.root, nilRef)
		} else {
			t.setChildren(w, t.root, z, nilRef)
		}
		t.root = w
		t.height = 2
		return
	}
	x := t.root
	for level := t.height; level > 2; level-- {
		x = t.routeInsert(x, key)
	}
	split := t.insertAndSplit(x, z)
	for x != t.root {
		x = t.arena.at(x).parent
		if split != nilRef {
			split = t.insertAndSplit(x, split)
		} else {
			t.recompute(x)
		}
	}
	if split != nilRef {
		w := t.arena.alloc()
		t.setChildren(w, x, split, nilRef)
		t.root = w
		t.height++
		tracer().Debugf("tree23: root split, height is now %d", t.height)
	}
}

func (t *Tree[K, V]) newLeaf(key K, value V) nodeRef {
	z := t.arena.alloc()
	leaf := t.arena.at(z)
	leaf.key = t.cfg.CloneKey(key)
	leaf.value = t.cfg.CloneValue(value)
	leaf.sum = t.cfg.CloneValue(value)
	leaf.size = 1
	return z
}

// routeInsert selects the child of inner node x to descend into for key.
func (t *Tree[K, V]) routeInsert(x nodeRef, key K) nodeRef {
	c := t.arena.at(x).children
	switch {
	case t.cfg.Compare(key, t.arena.at(c[leftSlot]).key) <= 0:
		return c[leftSlot]
	case t.cfg.Compare(key, t.arena.at(c[middleSlot]).key) <= 0:
		return c[middleSlot]
	case c[rightSlot] != nilRef:
		return c[rightSlot]
	}
	return c[middleSlot]
}

// Update replaces the value stored for key, leaving the tree's shape
// untouched. It reports false, without storing anything, if key is absent.
func (t *Tree[K, V]) Update(key K, value V) bool {
	x := t.findLeaf(key)
	if x == nilRef {
		return false
	}
	leaf := t.arena.at(x)
	leaf.value = t.cfg.CloneValue(value)
	leaf.sum = t.cfg.CloneValue(value)
	for x = leaf.parent; x != nilRef; x = t.arena.at(x).parent {
		t.recompute(x)
	}
	return true
}

// Delete removes the element with the given key. It reports whether an
// element has been removed; deleting an absent key leaves the tree unchanged.
func (t *Tree[K, V]) Delete(key K) bool {
	x := t.findLeaf(key)
	if x == nilRef {
		return false
	}
	if x == t.root {
		t.Clear()
		return true
	}
	y := t.arena.at(x).parent
	c := t.arena.at(y).children
	switch t.slotOf(x) {
	case leftSlot:
		t.setChildren(y, c[middleSlot], c[rightSlot], nilRef)
	case middleSlot:
		t.setChildren(y, c[leftSlot], c[rightSlot], nilRef)
	default:
		t.setChildren(y, c[leftSlot], c[middleSlot], nilRef)
	}
	t.arena.release(x)
	for y != nilRef {
		yn := t.arena.at(y)
		if yn.children[middleSlot] != nilRef {
			t.recompute(y)
			y = yn.parent
			continue
		}
		if y == t.root {
			t.root = yn.children[leftSlot]
			t.arena.at(t.root).parent = nilRef
			t.arena.release(y)
			t.height--
			tracer().Debugf("tree23: root collapsed, height is now %d", t.height)
			break
		}
		y = t.borrowOrMerge(y)
	}
	return true
}
