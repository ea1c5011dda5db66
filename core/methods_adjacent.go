// File: methods_adjacent.go
// Role: Adjacency queries used by traversals and centrality measures.
//
// Determinism:
//   - Successors/Predecessors follow edge insertion order.
//   - Neighbors(All) lists successors first, then predecessors not already seen.
package core

// Successors returns the IDs v such that id→v exists, in edge insertion order.
// A self-loop makes id its own successor.
func (g *Graph) Successors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, err := g.lookup(id)
	if err != nil {
		return nil, err
	}

	return g.namesOf(g.succ[i]), nil
}

// Predecessors returns the IDs u such that u→id exists, in edge insertion order.
func (g *Graph) Predecessors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, err := g.lookup(id)
	if err != nil {
		return nil, err
	}

	return g.namesOf(g.pred[i]), nil
}

// Neighbors returns one Arc per vertex reachable from id in a single step
// along dir.
//
// Behavior highlights:
//   - Out: successors, arc weight = weight(id→v).
//   - In:  predecessors, arc weight = weight(u→id).
//   - All: the union of both; when u→id and id→u both exist the arc carries
//     the smaller weight, which is what a shortest-path search would use.
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph) Neighbors(id string, dir Direction) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, err := g.lookup(id)
	if err != nil {
		return nil, err
	}

	switch dir {
	case Out:
		return g.outArcs(i), nil
	case In:
		return g.inArcs(i), nil
	default:
		out := g.outArcs(i)
		seen := make(map[string]int, len(out)+len(g.pred[i]))
		for k, a := range out {
			seen[a.To] = k
		}
		for _, a := range g.inArcs(i) {
			if k, ok := seen[a.To]; ok {
				if a.Weight < out[k].Weight {
					out[k].Weight = a.Weight
				}
				continue
			}
			seen[a.To] = len(out)
			out = append(out, a)
		}

		return out, nil
	}
}

func (g *Graph) outArcs(i int) []Arc {
	from := g.names[i]
	arcs := make([]Arc, 0, len(g.succ[i]))
	for _, j := range g.succ[i] {
		to := g.names[j]
		arcs = append(arcs, Arc{To: to, Weight: g.edges[EdgeKey{From: from, To: to}]})
	}

	return arcs
}

func (g *Graph) inArcs(i int) []Arc {
	to := g.names[i]
	arcs := make([]Arc, 0, len(g.pred[i]))
	for _, j := range g.pred[i] {
		from := g.names[j]
		arcs = append(arcs, Arc{To: from, Weight: g.edges[EdgeKey{From: from, To: to}]})
	}

	return arcs
}

func (g *Graph) namesOf(idx []int) []string {
	out := make([]string, len(idx))
	for k, j := range idx {
		out[k] = g.names[j]
	}

	return out
}
