package dominance_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wyrmlang/wyrmmir/dominance"
	"github.com/wyrmlang/wyrmmir/graph"
)

func diamond() *graph.Graph {
	return graph.NewFromArcs([]graph.Arc{{0, 1}, {0, 2}, {1, 2}})
}

func eightNode() *graph.Graph {
	return graph.NewFromArcs([]graph.Arc{
		{0, 1}, {1, 2}, {1, 3}, {2, 7}, {3, 4}, {4, 5}, {4, 6}, {5, 7}, {6, 4},
	})
}

func set(vs ...int) dominance.DominatorSet {
	s := make(dominance.DominatorSet, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

func TestDominatorsSlowDiamond(t *testing.T) {
	got := dominance.DominatorsSlow(diamond())
	want := dominance.DominatorMap{
		0: set(0),
		1: set(0, 1),
		2: set(0, 2),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DominatorsSlow(diamond) mismatch (-want +got):\n%s", diff)
	}
}

func TestDominatorsSlowEightNode(t *testing.T) {
	got := dominance.DominatorsSlow(eightNode())
	want := dominance.DominatorMap{
		0: set(0),
		1: set(0, 1),
		2: set(0, 1, 2),
		3: set(0, 1, 3),
		4: set(0, 1, 3, 4),
		5: set(0, 1, 3, 4, 5),
		6: set(0, 1, 3, 4, 6),
		7: set(0, 1, 7),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DominatorsSlow(eightNode) mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDominatorTreeEightNode(t *testing.T) {
	tree := dominance.BuildDominatorTree(eightNode())
	wantArcs := []graph.Arc{
		{0, 1}, {1, 2}, {1, 3}, {3, 4}, {4, 5}, {4, 6}, {1, 7},
	}
	for _, a := range wantArcs {
		if !tree.HasArc(a) {
			t.Errorf("dominator tree missing arc %v", a)
		}
	}
	// Exactly one incoming arc per non-root reachable node: the tree has
	// as many arcs as non-root nodes.
	n := 0
	for from := 0; from < tree.Size(); from++ {
		n += len(tree.Successors(from))
	}
	if n != len(wantArcs) {
		t.Fatalf("dominator tree has %d arcs, want %d", n, len(wantArcs))
	}
}

func TestReflexivity(t *testing.T) {
	for _, g := range []*graph.Graph{diamond(), eightNode()} {
		dom := dominance.DominatorsSlow(g)
		for _, v := range g.DFSOrder() {
			if !dom[v].Has(v) {
				t.Errorf("node %d does not dominate itself", v)
			}
		}
	}
}

func TestRootDominatesAllReachable(t *testing.T) {
	for _, g := range []*graph.Graph{diamond(), eightNode()} {
		dom := dominance.DominatorsSlow(g)
		for _, v := range g.DFSOrder() {
			if !dom[v].Has(0) {
				t.Errorf("root does not dominate reachable node %d", v)
			}
		}
	}
}

func TestDominatorMapSizeMatchesVertexCount(t *testing.T) {
	for _, g := range []*graph.Graph{diamond(), eightNode()} {
		dom := dominance.DominatorsSlow(g)
		if len(dom) != g.Size() {
			t.Errorf("len(DominatorsSlow(g)) = %d, want %d", len(dom), g.Size())
		}
	}
}

func TestIdempotent(t *testing.T) {
	g := eightNode()
	first := dominance.DominatorsSlow(g)
	second := dominance.DominatorsSlow(g)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("DominatorsSlow not idempotent (-first +second):\n%s", diff)
	}
}

func TestImmediateDominatorCardinality(t *testing.T) {
	g := eightNode()
	dom := dominance.DominatorsSlow(g)
	tree := dominance.BuildDominatorTree(g)
	for from := 0; from < tree.Size(); from++ {
		for _, n := range tree.Successors(from) {
			d := from
			if len(dom[d])+1 != len(dom[n]) {
				t.Errorf("idom(%d)=%d: len(Dom[%d])+1 = %d, want len(Dom[%d]) = %d", n, d, d, len(dom[d])+1, n, len(dom[n]))
			}
			if !dom[n].Has(d) {
				t.Errorf("idom(%d)=%d is not in Dom[%d]", n, d, n)
			}
		}
	}
}
