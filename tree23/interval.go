package tree23

// SumInterval returns the aggregate of all values whose keys lie within the
// closed interval [key1, key2].
//
// It reports false if no stored key falls into the interval, including the
// case key1 > key2. This is distinct from an interval whose values aggregate
// to the monoid's zero.
func (t *Tree[K, V]) SumInterval(key1, key2 K) (V, bool) {
	var zero V
	if t.IsEmpty() || t.cfg.Compare(key1, key2) > 0 {
		return zero, false
	}
	left := t.ceilingLeaf(key1)
	if left == nilRef {
		left = t.rightmostLeaf()
	}
	right := t.ceilingLeaf(key2)
	if right == nilRef {
		right = t.rightmostLeaf()
	} else if t.cfg.Compare(t.arena.at(right).key, key2) > 0 {
		// the ceiling of key2 lies beyond the interval; step back by one
		if rank := t.rankOfLeaf(right); rank > 1 {
			right = t.selectLeaf(rank - 1)
		}
	}
	lkey, rkey := t.arena.at(left).key, t.arena.at(right).key
	if t.cfg.Compare(rkey, lkey) < 0 ||
		t.cfg.Compare(lkey, key2) > 0 ||
		t.cfg.Compare(rkey, key1) < 0 {
		return zero, false
	}
	if left == right {
		return t.cfg.CloneValue(t.arena.at(left).value), true
	}
	return t.cfg.CloneValue(t.sumBetween(left, right)), true
}

// sumBetween aggregates the values of leaves left to right, inclusive.
// left must precede right in key order.
//
// Both leaves ascend towards their lowest common ancestor in lock step.
// On the way up, every sibling subtree to the right of the left path and to
// the left of the right path is added; at the common ancestor, the children
// strictly between both paths are added. Values are combined in key order.
func (t *Tree[K, V]) sumBetween(left, right nodeRef) V {
	m := t.cfg.Monoid
	accL := m.Add(m.Zero(), t.arena.at(left).sum)
	accR := m.Add(t.arena.at(right).sum, m.Zero())
	for {
		pl, pr := t.arena.at(left).parent, t.arena.at(right).parent
		assert(pl != nilRef && pr != nilRef, "sumBetween ascended beyond the root")
		sl, sr := t.slotOf(left), t.slotOf(right)
		if pl == pr {
			c := t.arena.at(pl).children
			for i := sl + 1; i < sr; i++ {
				accL = m.Add(accL, t.arena.at(c[i]).sum)
			}
			return m.Add(accL, accR)
		}
		cl := t.arena.at(pl).children
		for i := sl + 1; i < len(cl) && cl[i] != nilRef; i++ {
			accL = m.Add(accL, t.arena.at(cl[i]).sum)
		}
		cr := t.arena.at(pr).children
		for i := sr - 1; i >= 0; i-- {
			accR = m.Add(t.arena.at(cr[i]).sum, accR)
		}
		left, right = pl, pr
	}
}
