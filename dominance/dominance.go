// Package dominance computes the dominator relation and immediate-dominator
// tree of a control-flow graph, via the classic iterative set-intersection
// fixed-point (Muchnick, "Advanced Compiler Design and Implementation",
// §7.3).
package dominance

import "github.com/wyrmlang/wyrmmir/graph"

// DominatorSet is the set of vertices that dominate a given node.
type DominatorSet map[int]struct{}

// Has reports whether v is in the set.
func (s DominatorSet) Has(v int) bool {
	_, ok := s[v]
	return ok
}

// DominatorMap maps every node reachable from the root to its dominator
// set. Unreachable nodes have no entry: a node that the root cannot reach
// has no well-defined dominators, so DominatorsSlow only ever populates
// entries discovered by the CFG's own DFS order. This is the policy §9's
// open question recommends, and the one this package implements.
type DominatorMap map[int]DominatorSet

// clone returns a shallow copy of s.
func (s DominatorSet) clone() DominatorSet {
	out := make(DominatorSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// DominatorsSlow computes, for every node reachable from cfg's root, the
// set of nodes that dominate it.
//
// Initialization: Dom[root] = {root}; every other reachable node starts
// with the universal set U of all reachable nodes. Iteration repeatedly
// intersects each successor's dominator set with its predecessor's
// dominator set plus itself, until a full pass makes no change. Because
// sets only shrink and are bounded below by the true dominator set, the
// iteration is monotonic and terminates at the greatest fixed point, which
// coincides with the dominator relation.
func DominatorsSlow(cfg *graph.Graph) DominatorMap {
	order := cfg.DFSOrder()

	universe := make(DominatorSet, len(order))
	for _, v := range order {
		universe[v] = struct{}{}
	}

	dom := make(DominatorMap, len(order))
	for i, v := range order {
		if i == 0 {
			dom[v] = DominatorSet{v: {}}
		} else {
			dom[v] = universe.clone()
		}
	}

	for changed := true; changed; {
		changed = false
		for _, p := range order {
			for _, s := range cfg.Successors(p) {
				if _, ok := dom[s]; !ok {
					// Defensive only: p is reachable, so DFSOrder has
					// already visited s and it has an entry. A node
					// without an entry is skipped, consistent with the
					// reachable-only policy above.
					continue
				}
				n := dom[p].clone()
				n[s] = struct{}{}
				for v := range dom[s] {
					if _, ok := n[v]; !ok {
						delete(dom[s], v)
						changed = true
					}
				}
			}
		}
	}
	return dom
}

// BuildDominatorTree derives the immediate-dominator tree from
// DominatorsSlow(cfg), as a Graph rooted at the same root vertex.
//
// For each non-root reachable node n, its immediate dominator idom(n) is
// the dominator d in Dom[n] with |Dom[d]|+1 == |Dom[n]|. This criterion is
// valid because the dominators of n form a chain, totally ordered by set
// inclusion, from the root to n; the chain property guarantees d is
// unique, so the first d satisfying the cardinality test is correct.
func BuildDominatorTree(cfg *graph.Graph) *graph.Graph {
	dom := DominatorsSlow(cfg)
	tree := graph.New()
	order := cfg.DFSOrder()
	for _, n := range order {
		if n == 0 {
			continue
		}
		want := len(dom[n]) - 1
		for d := range dom[n] {
			if d == n {
				continue
			}
			if len(dom[d]) == want {
				tree.AddArc(graph.Arc{From: d, To: n})
				break
			}
		}
	}
	return tree
}
