package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/opgraph/core"
)

// ErrNeighbors wraps a failed adjacency lookup during the walk.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

type frontierItem struct {
	id    string
	depth int
}

// walker owns the queue and the Result under construction.
type walker struct {
	g     *core.Graph
	opts  Options
	ctx   context.Context
	queue []frontierItem
	res   *Result
}

// BFS walks g breadth-first from startID.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, ctx.Err() on cancellation, or the OnVisit error (wrapped).
//
// Complexity: O(V + E).
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		g:     g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]frontierItem, 0, n),
		res: &Result{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Parents: make(map[string][]string, n),
			Sigma:   make(map[string]float64, n),
		},
	}
	w.res.Sigma[startID] = 1
	w.push(startID, 0)

	return w.res, w.run()
}

func (w *walker) push(id string, depth int) {
	w.res.Depth[id] = depth
	w.queue = append(w.queue, frontierItem{id: id, depth: depth})
}

func (w *walker) run() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		cur := w.queue[head]
		w.res.Order = append(w.res.Order, cur.id)
		if err := w.opts.OnVisit(cur.id, cur.depth); err != nil {
			return fmt.Errorf("bfs: visit %q: %w", cur.id, err)
		}
		if err := w.expand(cur); err != nil {
			return err
		}
	}

	return nil
}

// expand discovers the neighbors of cur and credits cur's path count to
// every neighbor exactly one hop deeper. Self-loops never qualify.
func (w *walker) expand(cur frontierItem) error {
	next := cur.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	arcs, err := w.g.Neighbors(cur.id, w.opts.Direction)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighbors, cur.id, err)
	}

	for _, a := range arcs {
		if !w.opts.FilterNeighbor(cur.id, a.To) {
			continue
		}
		d, seen := w.res.Depth[a.To]
		if !seen {
			w.res.Parent[a.To] = cur.id
			w.push(a.To, next)
			d = next
		}
		if d == next {
			w.res.Sigma[a.To] += w.res.Sigma[cur.id]
			w.res.Parents[a.To] = append(w.res.Parents[a.To], cur.id)
		}
	}

	return nil
}
