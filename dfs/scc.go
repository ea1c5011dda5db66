package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/opgraph/core"
)

// tarjan holds the state of one component search.
type tarjan struct {
	g       *core.Graph
	opts    Options
	index   map[string]int
	low     map[string]int
	onStack map[string]bool
	stack   []string
	next    int
	comps   [][]string
}

// StronglyConnected splits g into strongly connected components.
//
// Components are returned in topological order of the condensation: for
// every edge u→v with u and v in different components, u's component comes
// first. Inside a component vertices keep g.Vertices() order. A vertex on no
// cycle forms a component of its own.
//
// Complexity: O(V+E).
func StronglyConnected(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	t := &tarjan{
		g:       g,
		opts:    apply(opts),
		index:   make(map[string]int, n),
		low:     make(map[string]int, n),
		onStack: make(map[string]bool, n),
	}
	for _, v := range g.Vertices() {
		if _, seen := t.index[v]; seen {
			continue
		}
		if err := t.connect(v); err != nil {
			return nil, err
		}
	}

	// Tarjan completes sinks first.
	slices.Reverse(t.comps)
	for _, c := range t.comps {
		slices.SortFunc(c, func(a, b string) int {
			ia, _ := g.Index(a)
			ib, _ := g.Index(b)
			return ia - ib
		})
	}

	return t.comps, nil
}

func (t *tarjan) connect(v string) error {
	if err := t.opts.Ctx.Err(); err != nil {
		return err
	}
	t.index[v], t.low[v] = t.next, t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	succ, err := t.g.Successors(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighborFetch, v, err)
	}
	for _, w := range succ {
		if _, seen := t.index[w]; !seen {
			if err = t.connect(w); err != nil {
				return err
			}
			t.low[v] = min(t.low[v], t.low[w])
		} else if t.onStack[w] {
			t.low[v] = min(t.low[v], t.index[w])
		}
	}

	if t.low[v] != t.index[v] {
		return nil
	}
	var comp []string
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	t.comps = append(t.comps, comp)

	return nil
}
