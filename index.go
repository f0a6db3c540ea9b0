package aggtree

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"iter"

	"github.com/npillmayer/aggtree/agg"
	"github.com/npillmayer/aggtree/tree23"
	"golang.org/x/exp/constraints"
)

// Index is an ordered map from keys to values which maintains aggregates of
// values over key ranges.
//
// Other than the underlying tree, an Index guarantees that every key is
// stored at most once: Insert rejects duplicates, Put replaces values.
type Index[K, V any] struct {
	tree *tree23.Tree[K, V]
}

// New creates an empty index with the given tree configuration.
func New[K, V any](cfg tree23.Config[K, V]) (*Index[K, V], error) {
	tree, err := tree23.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Index[K, V]{tree: tree}, nil
}

// NewSumIndex creates an empty index for ordered keys and numeric values,
// aggregating values by addition.
func NewSumIndex[K constraints.Ordered, V agg.Number]() *Index[K, V] {
	idx, err := New(tree23.Config[K, V]{
		Compare: agg.Compare[K],
		Monoid:  agg.Sum[V]{},
	})
	assert(err == nil, "NewSumIndex: cannot create tree")
	return idx
}

// Tree exposes the underlying tree.
func (idx *Index[K, V]) Tree() *tree23.Tree[K, V] {
	return idx.tree
}

// Len returns the number of keys in the index.
func (idx *Index[K, V]) Len() int {
	return idx.tree.Len()
}

// Insert adds a new key. If the key is already present, ErrDuplicateKey is
// returned and the index remains unchanged.
func (idx *Index[K, V]) Insert(key K, value V) error {
	if idx.tree.Contains(key) {
		return ErrDuplicateKey
	}
	idx.tree.Insert(key, value)
	return nil
}

// Put stores value for key, replacing a value already present. It reports
// whether a value has been replaced.
func (idx *Index[K, V]) Put(key K, value V) (replaced bool) {
	if idx.tree.Update(key, value) {
		T().Debugf("index: replaced value of existing key %v", key)
		return true
	}
	idx.tree.Insert(key, value)
	return false
}

// Remove deletes key from the index and reports whether it was present.
func (idx *Index[K, V]) Remove(key K) bool {
	return idx.tree.Delete(key)
}

// Get returns the value stored for key.
func (idx *Index[K, V]) Get(key K) (V, bool) {
	return idx.tree.Search(key)
}

// Rank returns the 1-based position of key in ascending order, or 0 if key
// is not present.
func (idx *Index[K, V]) Rank(key K) int {
	return idx.tree.Rank(key)
}

// Select returns the key at 1-based position i.
func (idx *Index[K, V]) Select(i int) (K, bool) {
	return idx.tree.Select(i)
}

// At returns key and value at 1-based position i, or ErrIndexOutOfBounds.
func (idx *Index[K, V]) At(i int) (K, V, error) {
	k, v, ok := idx.tree.At(i)
	if !ok {
		return k, v, ErrIndexOutOfBounds
	}
	return k, v, nil
}

// Sum returns the aggregate of all values with keys in [lo, hi]. It reports
// false if no key of the index falls into the interval.
func (idx *Index[K, V]) Sum(lo, hi K) (V, bool) {
	return idx.tree.SumInterval(lo, hi)
}

// Total returns the aggregate of all values in the index.
func (idx *Index[K, V]) Total() (V, bool) {
	return idx.tree.Total()
}

// Ceiling returns the smallest key ≥ key, together with its value.
func (idx *Index[K, V]) Ceiling(key K) (K, V, bool) {
	return idx.tree.Ceiling(key)
}

// Min returns the smallest key and its value.
func (idx *Index[K, V]) Min() (K, V, bool) {
	return idx.tree.Min()
}

// Max returns the largest key and its value.
func (idx *Index[K, V]) Max() (K, V, bool) {
	return idx.tree.Max()
}

// All iterates over keys and values in ascending key order.
func (idx *Index[K, V]) All() iter.Seq2[K, V] {
	return idx.tree.All()
}

// Clear removes all keys.
func (idx *Index[K, V]) Clear() {
	idx.tree.Clear()
}

// Check validates the internal structure of the index (for testing and
// debugging purposes).
func (idx *Index[K, V]) Check() error {
	return idx.tree.Check()
}

// Dot outputs the internal tree of an index in Graphviz DOT format
// (for debugging purposes).
func (idx *Index[K, V]) Dot(w io.Writer) error {
	if w == nil {
		return ErrIllegalArguments
	}
	return idx.tree.ToDot(w)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
