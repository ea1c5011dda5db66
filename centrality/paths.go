package centrality

import (
	"github.com/katalvlaran/opgraph/bfs"
	"github.com/katalvlaran/opgraph/core"
	"github.com/katalvlaran/opgraph/dijkstra"
)

// sssp is the single-source state shared by closeness and betweenness.
type sssp struct {
	order   []string
	dist    map[string]float64
	sigma   map[string]float64
	parents map[string][]string
}

// shortestPaths runs bfs (unweighted) or dijkstra (weighted) from src along dir.
func shortestPaths(g *core.Graph, src string, dir core.Direction, o Options) (*sssp, error) {
	if !o.Weighted {
		r, err := bfs.BFS(g, src, bfs.WithDirection(dir), bfs.WithContext(o.Ctx))
		if err != nil {
			return nil, err
		}
		dist := make(map[string]float64, len(r.Depth))
		for v, d := range r.Depth {
			dist[v] = float64(d)
		}

		return &sssp{order: r.Order, dist: dist, sigma: r.Sigma, parents: r.Parents}, nil
	}

	r, err := dijkstra.ShortestPaths(g,
		dijkstra.Source(src),
		dijkstra.WithDirection(dir),
		dijkstra.WithContext(o.Ctx),
	)
	if err != nil {
		return nil, err
	}
	dist := make(map[string]float64, len(r.Dist))
	for v, d := range r.Dist {
		dist[v] = float64(d)
	}

	return &sssp{order: r.Order, dist: dist, sigma: r.Sigma, parents: r.Parents}, nil
}
