package tree23

import (
	"errors"
	"math/big"
	"testing"

	"github.com/npillmayer/aggtree/agg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeIntTree(t *testing.T) *Tree[int, int] {
	t.Helper()
	tree, err := New(Config[int, int]{
		Compare: agg.Compare[int],
		Monoid:  agg.Sum[int]{},
	})
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}
	return tree
}

func insertKeys(t *testing.T, tree *Tree[int, int], keys ...int) {
	t.Helper()
	for _, k := range keys {
		tree.Insert(k, k)
		if err := tree.CheckSums(agg.Equal[int]); err != nil {
			t.Fatalf("invariants broken after inserting %d: %v", k, err)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int, int]{Monoid: agg.Sum[int]{}})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing comparison, got %v", err)
	}
	_, err = New(Config[int, int]{Compare: agg.Compare[int]})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing monoid, got %v", err)
	}
}

func TestNewNormalizesCloners(t *testing.T) {
	tree := makeIntTree(t)
	cfg := tree.Config()
	if cfg.CloneKey == nil || cfg.CloneValue == nil {
		t.Fatalf("expected default cloners in normalized config")
	}
}

func TestEmptyTree(t *testing.T) {
	tree := makeIntTree(t)
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if _, ok := tree.Search(1); ok {
		t.Errorf("search in empty tree reported a value")
	}
	if r := tree.Rank(1); r != 0 {
		t.Errorf("rank in empty tree = %d, want 0", r)
	}
	if _, ok := tree.Select(1); ok {
		t.Errorf("select in empty tree reported a key")
	}
	if _, ok := tree.SumInterval(0, 100); ok {
		t.Errorf("interval sum in empty tree reported a value")
	}
	if _, ok := tree.Total(); ok {
		t.Errorf("total of empty tree reported a value")
	}
	if tree.Delete(1) {
		t.Errorf("delete in empty tree reported a removal")
	}
}

func TestNilTreeQueries(t *testing.T) {
	var tree *Tree[int, int]
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("nil tree should behave like an empty tree")
	}
	if _, ok := tree.Search(3); ok {
		t.Errorf("search in nil tree reported a value")
	}
	if _, _, ok := tree.Max(); ok {
		t.Errorf("max of nil tree reported an element")
	}
	tree.Clear()
	if cfg := tree.Config(); cfg.Compare != nil || cfg.Monoid != nil {
		t.Errorf("nil tree reported a configuration")
	}
}

func TestLeafRootAndFirstSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aggtree")
	defer teardown()
	//
	tree := makeIntTree(t)
	insertKeys(t, tree, 20)
	if tree.Height() != 1 || !tree.arena.at(tree.root).isLeaf() {
		t.Fatalf("expected a leaf root, height=%d", tree.Height())
	}
	insertKeys(t, tree, 10)
	if tree.Height() != 2 || tree.arena.at(tree.root).degree() != 2 {
		t.Fatalf("expected a 2-node root of height 2, height=%d", tree.Height())
	}
	if k, _ := tree.Select(1); k != 10 {
		t.Errorf("expected smallest key 10, got %d", k)
	}
	insertKeys(t, tree, 30, 40)
	if tree.Height() != 3 {
		t.Fatalf("expected root split to grow height to 3, is %d", tree.Height())
	}
	if tree.Len() != 4 {
		t.Errorf("expected 4 elements, have %d", tree.Len())
	}
}

func TestConcreteScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aggtree")
	defer teardown()
	//
	tree := makeIntTree(t)
	insertKeys(t, tree, 10, 20, 30, 40, 50)
	if r := tree.Rank(30); r != 3 {
		t.Errorf("rank(30) = %d, want 3", r)
	}
	if k, ok := tree.Select(3); !ok || k != 30 {
		t.Errorf("select(3) = %d/%v, want 30", k, ok)
	}
	if s, ok := tree.SumInterval(15, 45); !ok || s != 90 {
		t.Errorf("sum[15,45] = %d/%v, want 90", s, ok)
	}
	if !tree.Delete(30) {
		t.Fatalf("delete(30) reported no removal")
	}
	if err := tree.CheckSums(agg.Equal[int]); err != nil {
		t.Fatal(err)
	}
	if _, ok := tree.Search(30); ok {
		t.Errorf("search(30) found a deleted key")
	}
	if s, ok := tree.SumInterval(15, 45); !ok || s != 60 {
		t.Errorf("sum[15,45] = %d/%v, want 60", s, ok)
	}
}

func TestSearchReturnsInsertedValues(t *testing.T) {
	tree := makeIntTree(t)
	for i := 0; i < 200; i++ {
		k := (i * 37) % 200
		tree.Insert(k, 1000+k)
	}
	if tree.Len() != 200 {
		t.Fatalf("expected 200 elements, have %d", tree.Len())
	}
	if err := tree.CheckSums(agg.Equal[int]); err != nil {
		t.Fatal(err)
	}
	for k := 0; k < 200; k++ {
		v, ok := tree.Search(k)
		if !ok || v != 1000+k {
			t.Fatalf("search(%d) = %d/%v, want %d", k, v, ok, 1000+k)
		}
	}
	if _, ok := tree.Search(200); ok {
		t.Errorf("search(200) found a key never inserted")
	}
	if _, ok := tree.Search(-1); ok {
		t.Errorf("search(-1) found a key never inserted")
	}
}

func TestDeleteAbsentKeyIsNoop(t *testing.T) {
	tree := makeIntTree(t)
	insertKeys(t, tree, 2, 4, 6, 8)
	if tree.Delete(5) {
		t.Fatalf("delete of absent key reported a removal")
	}
	if tree.Len() != 4 {
		t.Fatalf("delete of absent key changed size to %d", tree.Len())
	}
	if err := tree.CheckSums(agg.Equal[int]); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteAllReturnsToEmpty(t *testing.T) {
	tree := makeIntTree(t)
	const n = 300
	for i := 0; i < n; i++ {
		tree.Insert(i, i)
	}
	for i := 0; i < n; i++ {
		k := (i * 131) % n
		if !tree.Delete(k) {
			t.Fatalf("delete(%d) reported no removal", k)
		}
		if tree.Len() != n-i-1 {
			t.Fatalf("expected size %d after deleting %d, have %d", n-i-1, k, tree.Len())
		}
		if _, ok := tree.Search(k); ok {
			t.Fatalf("search(%d) found deleted key", k)
		}
		if err := tree.CheckSums(agg.Equal[int]); err != nil {
			t.Fatalf("invariants broken after deleting %d: %v", k, err)
		}
	}
	if !tree.IsEmpty() || tree.Height() != 0 || tree.arena.live() != 0 {
		t.Fatalf("expected empty tree, len=%d height=%d live=%d",
			tree.Len(), tree.Height(), tree.arena.live())
	}
}

func TestClearAndReuse(t *testing.T) {
	tree := makeIntTree(t)
	insertKeys(t, tree, 5, 3, 9, 1)
	tree.Clear()
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	insertKeys(t, tree, 7)
	if tree.Len() != 1 {
		t.Fatalf("expected 1 element after reuse, have %d", tree.Len())
	}
}

func TestDefensiveCopies(t *testing.T) {
	tree, err := New(Config[string, *big.Int]{
		Compare:    agg.Compare[string],
		Monoid:     agg.BigSum{},
		CloneValue: agg.CloneBig,
	})
	if err != nil {
		t.Fatal(err)
	}
	v := big.NewInt(7)
	tree.Insert("a", v)
	tree.Insert("b", big.NewInt(5))
	v.SetInt64(1000) // must not affect the tree
	got, ok := tree.Search("a")
	if !ok || got.Int64() != 7 {
		t.Fatalf("stored value aliases caller's value: got %v", got)
	}
	got.SetInt64(-1) // must not affect the tree either
	if again, _ := tree.Search("a"); again.Int64() != 7 {
		t.Fatalf("returned value aliases stored value: got %v", again)
	}
	total, ok := tree.SumInterval("a", "b")
	if !ok || total.Int64() != 12 {
		t.Fatalf("expected interval sum 12, got %v", total)
	}
	if err := tree.CheckSums(agg.BigEqual); err != nil {
		t.Fatal(err)
	}
}

func TestArenaRecyclesSlots(t *testing.T) {
	tree := makeIntTree(t)
	insertKeys(t, tree, 1, 2, 3, 4, 5, 6, 7, 8)
	allocated := len(tree.arena.nodes)
	for k := 1; k <= 4; k++ {
		tree.Delete(k)
	}
	insertKeys(t, tree, 1, 2, 3, 4)
	if len(tree.arena.nodes) > allocated+3 {
		t.Errorf("arena grew from %d to %d slots, expected recycling",
			allocated, len(tree.arena.nodes))
	}
}

func TestUpdateKeepsShape(t *testing.T) {
	tree := makeIntTree(t)
	insertKeys(t, tree, 10, 20, 30, 40, 50, 60, 70)
	root, height := tree.root, tree.Height()
	slots, free := len(tree.arena.nodes), len(tree.arena.free)
	if !tree.Update(40, 400) {
		t.Fatalf("update of present key reported false")
	}
	if err := tree.CheckSums(agg.Equal[int]); err != nil {
		t.Fatal(err)
	}
	if tree.root != root || tree.Height() != height ||
		len(tree.arena.nodes) != slots || len(tree.arena.free) != free {
		t.Errorf("update changed the tree's shape or arena")
	}
	if v, _ := tree.Search(40); v != 400 {
		t.Errorf("search(40) = %d after update, want 400", v)
	}
	if s, _ := tree.Total(); s != 10+20+30+400+50+60+70 {
		t.Errorf("total after update = %d", s)
	}
	if s, _ := tree.SumInterval(35, 45); s != 400 {
		t.Errorf("sum[35,45] after update = %d, want 400", s)
	}
	if tree.Update(45, 1) {
		t.Errorf("update of absent key reported true")
	}
	if tree.Len() != 7 {
		t.Errorf("update of absent key changed size to %d", tree.Len())
	}
}

func TestUpdateLeafRoot(t *testing.T) {
	tree := makeIntTree(t)
	insertKeys(t, tree, 5)
	if !tree.Update(5, 50) {
		t.Fatalf("update of leaf root reported false")
	}
	if err := tree.CheckSums(agg.Equal[int]); err != nil {
		t.Fatal(err)
	}
	if s, _ := tree.Total(); s != 50 {
		t.Errorf("total after update = %d, want 50", s)
	}
}
