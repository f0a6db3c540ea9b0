package tree23

import "iter"

// ForEach walks the elements in ascending key order, passing copies of keys
// and values.
//
// Iteration stops early if fn returns false. fn must not modify the tree.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K, V]) forEachNode(x nodeRef, fn func(K, V) bool) bool {
	n := t.arena.at(x)
	if n.isLeaf() {
		return fn(t.cfg.CloneKey(n.key), t.cfg.CloneValue(n.value))
	}
	for _, c := range n.children {
		if c == nilRef {
			break
		}
		if !t.forEachNode(c, fn) {
			return false
		}
	}
	return true
}

// All returns an iterator over the elements in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.ForEach(yield)
	}
}

// Keys returns an iterator over the keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEach(func(k K, _ V) bool {
			return yield(k)
		})
	}
}
