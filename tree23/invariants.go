package tree23

import "fmt"

// Check validates structural tree invariants:
//
//   - children are ordered strictly by key range,
//   - all leaves are at the same depth, which equals Height(),
//   - cached keys and sizes match their recomputation from children,
//   - parent links are consistent,
//   - the root is empty, a leaf, or has at least two children,
//   - the arena holds no unreachable nodes.
//
// Check is intended for tests.
func (t *Tree[K, V]) Check() error {
	return t.check(nil)
}

// CheckSums validates the same invariants as Check, and additionally
// verifies every cached aggregate against its recomputation, using equal to
// compare values.
func (t *Tree[K, V]) CheckSums(equal func(a, b V) bool) error {
	if equal == nil {
		return fmt.Errorf("%w: no equality for values given", ErrInvalidConfig)
	}
	return t.check(equal)
}

type subtreeFacts[K, V any] struct {
	min, max K
	size     int
	height   int
	nodes    int
	sum      V
}

func (t *Tree[K, V]) check(equal func(a, b V) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nilRef {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height=0", ErrInvariant)
		}
		if t.arena.live() != 0 {
			return fmt.Errorf("%w: empty tree holds %d nodes", ErrInvariant, t.arena.live())
		}
		return nil
	}
	if p := t.arena.at(t.root).parent; p != nilRef {
		return fmt.Errorf("%w: root has parent %d", ErrInvariant, p)
	}
	if d := t.arena.at(t.root).degree(); d == 1 {
		return fmt.Errorf("%w: root has a single child", ErrInvariant)
	}
	facts, err := t.checkNode(t.root, equal)
	if err != nil {
		return err
	}
	if facts.height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, facts.height, t.height)
	}
	if facts.nodes != t.arena.live() {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrInvariant, facts.nodes, t.arena.live())
	}
	return nil
}

func (t *Tree[K, V]) checkNode(x nodeRef, equal func(a, b V) bool) (subtreeFacts[K, V], error) {
	var facts subtreeFacts[K, V]
	n := t.arena.at(x)
	if n.isLeaf() {
		if n.children != [3]nodeRef{} {
			return facts, fmt.Errorf("%w: leaf %d has children", ErrInvariant, x)
		}
		if n.size != 1 {
			return facts, fmt.Errorf("%w: leaf %d has size %d", ErrInvariant, x, n.size)
		}
		if equal != nil && !equal(n.sum, n.value) {
			return facts, fmt.Errorf("%w: leaf %d sum differs from value", ErrInvariant, x)
		}
		facts.min, facts.max = n.key, n.key
		facts.size, facts.height, facts.nodes = 1, 1, 1
		facts.sum = n.value
		return facts, nil
	}
	if d := n.degree(); d < 2 {
		return facts, fmt.Errorf("%w: inner node %d has %d children", ErrInvariant, x, d)
	}
	if n.children[middleSlot] == nilRef {
		return facts, fmt.Errorf("%w: inner node %d has a gap in its children", ErrInvariant, x)
	}
	facts.sum = t.cfg.Monoid.Zero()
	for i, c := range n.children {
		if c == nilRef {
			break
		}
		if p := t.arena.at(c).parent; p != x {
			return facts, fmt.Errorf("%w: child %d of %d points to parent %d", ErrInvariant, c, x, p)
		}
		cf, err := t.checkNode(c, equal)
		if err != nil {
			return facts, err
		}
		if i == 0 {
			facts.min = cf.min
			facts.height = cf.height
		} else {
			if cf.height != facts.height {
				return facts, fmt.Errorf("%w: non-uniform subtree heights below %d", ErrInvariant, x)
			}
			if t.cfg.Compare(facts.max, cf.min) >= 0 {
				return facts, fmt.Errorf("%w: children of %d not ordered by key", ErrInvariant, x)
			}
		}
		facts.max = cf.max
		facts.size += cf.size
		facts.nodes += cf.nodes
		facts.sum = t.cfg.Monoid.Add(facts.sum, cf.sum)
	}
	facts.height++
	facts.nodes++
	if facts.size != n.size {
		return facts, fmt.Errorf("%w: node %d caches size %d, has %d", ErrInvariant, x, n.size, facts.size)
	}
	if t.cfg.Compare(facts.max, n.key) != 0 {
		return facts, fmt.Errorf("%w: node %d caches a stale maximum key", ErrInvariant, x)
	}
	if equal != nil && !equal(facts.sum, n.sum) {
		return facts, fmt.Errorf("%w: node %d caches a stale sum", ErrInvariant, x)
	}
	return facts, nil
}
