package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/opgraph/core"
)

// topoSorter carries the three-color state of one sort.
type topoSorter struct {
	g     *core.Graph
	opts  Options
	state map[string]int
	order []string
}

// TopologicalSort orders every vertex of g so that each edge points forward.
//
// Implementation:
//   - Stage 1: DFS from every White vertex in g.Vertices() order.
//   - Stage 2: Meeting a Gray vertex is a back edge: ErrCycleDetected.
//   - Stage 3: Reverse the post-order.
//
// Complexity: O(V+E).
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	s := &topoSorter{
		g:     g,
		opts:  apply(opts),
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if s.state[v] != White {
			continue
		}
		if err := s.visit(v); err != nil {
			return nil, err
		}
	}
	slices.Reverse(s.order)

	return s.order, nil
}

func (s *topoSorter) visit(id string) error {
	if err := s.opts.Ctx.Err(); err != nil {
		return err
	}
	s.state[id] = Gray

	succ, err := s.g.Successors(id)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighborFetch, id, err)
	}
	for _, to := range succ {
		switch s.state[to] {
		case Gray:
			return fmt.Errorf("%w: edge %q→%q closes a cycle", ErrCycleDetected, id, to)
		case White:
			if err = s.visit(to); err != nil {
				return err
			}
		}
	}

	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
