package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/opgraph/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g. It accepts functional options to customize
// behavior (Direction, ReturnPath, MaxDistance, InfEdgeThreshold).
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Unreachable if not reached).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the first-found shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs or options are invalid.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	res, err := ShortestPaths(g, opts...)
	if err != nil {
		return nil, nil, err
	}

	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	for _, v := range vertices {
		d, ok := res.Dist[v]
		if !ok {
			d = Unreachable
		}
		dist[v] = d
	}

	cfg := buildOptions(opts)
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[string]string, len(vertices))
	for _, v := range vertices {
		prev[v] = ""
		if ps := res.Parents[v]; len(ps) > 0 {
			prev[v] = ps[0]
		}
	}

	return dist, prev, nil
}

// ShortestPaths runs Dijkstra from Options.Source and returns the full
// single-source Result, including shortest-path counts and the settle order.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//
// Implementation:
//   - Stage 1: dist[Source]=0, sigma[Source]=1, push Source.
//   - Stage 2: Pop the closest unsettled vertex u, append it to Order.
//   - Stage 3: For each arc u→v along Direction: a strictly shorter candidate
//     resets sigma[v] and Parents[v]; an equal candidate adds sigma[u] and u.
//
// Complexity:
//   - Time O((V + E) log V), Space O(V + E).
func ShortestPaths(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := buildOptions(opts)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
		res: &Result{
			Source:  cfg.Source,
			Dist:    make(map[string]int64, n),
			Sigma:   make(map[string]float64, n),
			Parents: make(map[string][]string, n),
			Order:   make([]string, 0, n),
		},
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	visited map[string]bool
	pq      nodePQ
	seq     int
	res     *Result
}

// init seeds the source with distance 0 and one (empty) path.
func (r *runner) init() {
	src := r.options.Source
	r.res.Dist[src] = 0
	r.res.Sigma[src] = 1
	heap.Init(&r.pq)
	r.push(src, 0)
}

func (r *runner) push(id string, d int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// vertex with the minimum distance and relaxes its arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The context is done.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale entries (lazy decrease-key).
		if r.visited[u] || item.dist > r.res.Dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)

		if err := r.relax(u); err != nil {
			return err
		}
	}

	// Tentative distances that were never settled are beyond MaxDistance.
	for v := range r.res.Dist {
		if !r.visited[v] {
			delete(r.res.Dist, v)
			delete(r.res.Sigma, v)
			delete(r.res.Parents, v)
		}
	}

	return nil
}

// relax examines each arc leaving u along the configured direction.
// Assumes r.res.Dist[u] is final.
func (r *runner) relax(u string) error {
	arcs, err := r.g.Neighbors(u, r.options.Direction)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, a := range arcs {
		v := a.To
		if v == u || a.Weight >= r.options.InfEdgeThreshold || r.visited[v] {
			continue
		}

		nd := du + a.Weight
		if nd > r.options.MaxDistance {
			continue
		}

		dv, seen := r.res.Dist[v]
		switch {
		case !seen || nd < dv:
			r.res.Dist[v] = nd
			r.res.Sigma[v] = r.res.Sigma[u]
			r.res.Parents[v] = append(r.res.Parents[v][:0], u)
			r.push(v, nd)
		case nd == dv:
			r.res.Sigma[v] += r.res.Sigma[u]
			r.res.Parents[v] = append(r.res.Parents[v], u)
		}
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
	seq  int // push order, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
// We use the “lazy-decrease-key” approach: when a shorter distance to v is
// found we push a new item; the outdated one is ignored when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
