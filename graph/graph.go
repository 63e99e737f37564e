// Package graph implements a small directed graph type with a distinguished
// root at vertex 0, used as the input and output representation for the
// dominance package.
package graph

import (
	"fmt"
	"io"
	"sort"
)

// Arc is a directed edge of a Graph.
type Arc struct {
	From, To int
}

// Graph is a directed graph with a distinguished root at index 0.
// Adjacency is stored as an indexed slice of successor sets; the zero value
// is not a usable Graph (use New or NewFromArcs).
type Graph struct {
	succs []map[int]struct{}
}

// New returns a Graph containing only the root vertex and no arcs.
func New() *Graph {
	g := &Graph{}
	g.ensure(0)
	return g
}

// NewFromArcs returns a Graph built from arcs, in order, via AddArc.
func NewFromArcs(arcs []Arc) *Graph {
	g := New()
	for _, a := range arcs {
		g.AddArc(a)
	}
	return g
}

// ensure grows the adjacency slice so that vertex v exists.
func (g *Graph) ensure(v int) {
	for len(g.succs) <= v {
		g.succs = append(g.succs, make(map[int]struct{}))
	}
}

// AddArc adds the arc from->to, creating either endpoint vertex if
// necessary. Adding an arc that already exists is a no-op.
//
// Precondition: arc.To must not be the root vertex (0); arcs into the root
// are never well-formed in a CFG, since the root is the unique entry.
func (g *Graph) AddArc(arc Arc) {
	if arc.To == 0 {
		panic("graph: arc into the root vertex is not allowed")
	}
	top := arc.From
	if arc.To > top {
		top = arc.To
	}
	g.ensure(top)
	g.succs[arc.From][arc.To] = struct{}{}
}

// Size returns the number of vertices in the graph.
func (g *Graph) Size() int { return len(g.succs) }

// Successors returns the set of successor vertices of v, as a sorted slice
// for deterministic iteration.
//
// Precondition: v < g.Size().
func (g *Graph) Successors(v int) []int {
	if v < 0 || v >= len(g.succs) {
		panic(fmt.Sprintf("graph: vertex %d out of range [0,%d)", v, len(g.succs)))
	}
	out := make([]int, 0, len(g.succs[v]))
	for s := range g.succs[v] {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// HasArc reports whether arc is present in the graph.
func (g *Graph) HasArc(arc Arc) bool {
	if arc.From < 0 || arc.From >= len(g.succs) {
		return false
	}
	_, ok := g.succs[arc.From][arc.To]
	return ok
}

// DFSOrder returns the vertices reachable from the root in depth-first
// pre-order. Ties among siblings are broken by ascending vertex number,
// which keeps the order deterministic for a fixed input without claiming
// any particular significance for the tie-break itself.
func (g *Graph) DFSOrder() []int {
	visited := make([]bool, len(g.succs))
	var order []int
	var visit func(int)
	visit = func(v int) {
		if visited[v] {
			return
		}
		visited[v] = true
		order = append(order, v)
		for _, s := range g.Successors(v) {
			visit(s)
		}
	}
	if len(g.succs) > 0 {
		visit(0)
	}
	return order
}

// Dump writes the graph's arcs to w, one per line, as "from -> to". Arcs
// are emitted in ascending (from, to) order for determinism.
func (g *Graph) Dump(w io.Writer) error {
	for from := 0; from < len(g.succs); from++ {
		for _, to := range g.Successors(from) {
			if _, err := fmt.Fprintf(w, "%d -> %d\n", from, to); err != nil {
				return err
			}
		}
	}
	return nil
}

// String renders the graph in the same form as Dump, for use in tests and
// debugging.
func (g *Graph) String() string {
	var b []byte
	for from := 0; from < len(g.succs); from++ {
		for _, to := range g.Successors(from) {
			b = append(b, []byte(fmt.Sprintf("%d -> %d\n", from, to))...)
		}
	}
	return string(b)
}
