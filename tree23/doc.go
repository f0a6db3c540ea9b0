/*
Package tree23 implements an ordered aggregate tree: a 2-3 search tree whose
nodes cache subtree size and a subtree aggregate of the stored values.

All elements are stored in leaves, and every leaf sits at the same depth.
Inner nodes have two or three children and cache

  - the maximum key of their subtree (used for routing),
  - the number of leaves below them,
  - the monoid sum of all values below them.

With these caches the tree answers, in O(log n),

  - point lookup (Search),
  - insertion and deletion (Insert, Delete),
  - rank and select (Rank, Select),
  - closed-interval aggregates (SumInterval).

Keys are ordered by a client-provided three-way comparison, values are
combined by a client-provided SummaryMonoid. Both are supplied with Config.

Nodes are kept in an arena and reference each other by index, so parent
back-links do not form pointer cycles.

A Tree is not safe for concurrent use. Clients have to serialize access.

Inserting a key which compares equal to a stored key is not supported. The
tree does not detect this case; it stores a second leaf next to the first
one and subsequent lookups will find only one of them. Package aggtree
provides a wrapper with upsert semantics.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package tree23

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'aggtree'
func tracer() tracing.Trace {
	return tracing.Select("aggtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
