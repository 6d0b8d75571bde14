package triangulate

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/vbraun/torsion-cup-product/builder"
	"github.com/vbraun/torsion-cup-product/simplex"
)

// ErrCyclic indicates a topological query on a cyclic orientation graph.
var ErrCyclic = errors.New("triangulate: orientation graph has a cycle")

// vertexGraph is a directed graph over lattice vertices, backed by a gonum
// simple.DirectedGraph with a bidirectional vertex ↔ node-id mapping.
type vertexGraph struct {
	g     *simple.DirectedGraph
	ids   map[string]int64
	verts map[int64]simplex.Vertex
	next  int64
}

func newVertexGraph() *vertexGraph {
	return &vertexGraph{
		g:     simple.NewDirectedGraph(),
		ids:   make(map[string]int64),
		verts: make(map[int64]simplex.Vertex),
	}
}

// ensure returns the node id of v, registering it on first sight.
func (vg *vertexGraph) ensure(v simplex.Vertex) int64 {
	key := v.Key()
	if id, ok := vg.ids[key]; ok {
		return id
	}
	id := vg.next
	vg.next++
	vg.ids[key] = id
	vg.verts[id] = v.Clone()
	vg.g.AddNode(simple.Node(id))
	return id
}

// addEdge commits the directed edge from → to. Self-edges are ignored.
func (vg *vertexGraph) addEdge(from, to simplex.Vertex) {
	f, t := vg.ensure(from), vg.ensure(to)
	if f == t {
		return
	}
	vg.g.SetEdge(simple.Edge{F: simple.Node(f), T: simple.Node(t)})
}

// hasEitherDirection reports whether a→b or b→a is committed.
func (vg *vertexGraph) hasEitherDirection(a, b simplex.Vertex) bool {
	ia, ok := vg.ids[a.Key()]
	if !ok {
		return false
	}
	ib, ok := vg.ids[b.Key()]
	if !ok {
		return false
	}
	return vg.g.HasEdgeFromTo(ia, ib) || vg.g.HasEdgeFromTo(ib, ia)
}

// clone returns an independent copy of the graph and its mappings.
func (vg *vertexGraph) clone() *vertexGraph {
	c := newVertexGraph()
	c.next = vg.next
	for key, id := range vg.ids {
		c.ids[key] = id
		c.verts[id] = vg.verts[id].Clone()
		c.g.AddNode(simple.Node(id))
	}
	edges := vg.g.Edges()
	for edges.Next() {
		e := edges.Edge()
		c.g.SetEdge(simple.Edge{F: simple.Node(e.From().ID()), T: simple.Node(e.To().ID())})
	}
	return c
}

// acyclic reports whether the graph admits a topological order.
func (vg *vertexGraph) acyclic() bool {
	_, err := topo.Sort(vg.g)
	return err == nil
}

// orientations lists the committed directed edges, sorted for determinism.
func (vg *vertexGraph) orientations() []Edge {
	var out []Edge
	edges := vg.g.Edges()
	for edges.Next() {
		e := edges.Edge()
		out = append(out, Edge{
			From: vg.verts[e.From().ID()].Clone(),
			To:   vg.verts[e.To().ID()].Clone(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// topoOrder returns the vertices in topological order, or ErrCyclic.
func (vg *vertexGraph) topoOrder() ([]simplex.Vertex, error) {
	nodes, err := topo.Sort(vg.g)
	if err != nil {
		return nil, ErrCyclic
	}
	out := make([]simplex.Vertex, len(nodes))
	for i, n := range nodes {
		out[i] = vg.verts[n.ID()].Clone()
	}
	return out, nil
}

// levelSets peels the graph by iterated minimal elements: level 0 holds the
// sources, each next level the vertices whose predecessors are all in
// earlier levels. Vertices within a level are sorted by key.
func (vg *vertexGraph) levelSets() ([][]simplex.Vertex, error) {
	indeg := make(map[int64]int, len(vg.verts))
	for id := range vg.verts {
		indeg[id] = vg.g.To(id).Len()
	}
	var levels [][]simplex.Vertex
	remaining := len(indeg)
	for remaining > 0 {
		var ids []int64
		for id, d := range indeg {
			if d == 0 {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return nil, ErrCyclic
		}
		level := make([]simplex.Vertex, len(ids))
		for i, id := range ids {
			level[i] = vg.verts[id].Clone()
		}
		sort.Slice(level, func(i, j int) bool {
			return simplex.Compare(level[i], level[j]) < 0
		})
		levels = append(levels, level)
		for _, id := range ids {
			delete(indeg, id)
			remaining--
			succ := vg.g.From(id)
			for succ.Next() {
				if _, ok := indeg[succ.Node().ID()]; ok {
					indeg[succ.Node().ID()]--
				}
			}
		}
	}
	return levels, nil
}

// fullGraph builds the orientation graph of the builder's whole complex:
// one node per inserted vertex, one directed edge per inserted 1-simplex.
func fullGraph(b *builder.Builder) *vertexGraph {
	vg := newVertexGraph()
	for _, s := range b.Simplices(1) {
		vg.ensure(s[0])
	}
	for _, e := range b.Simplices(2) {
		vg.addEdge(e[0], e[1])
	}
	return vg
}
