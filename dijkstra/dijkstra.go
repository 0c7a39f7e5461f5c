// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Runner holds the mutable state for Dijkstra executions over an implicit
// graph whose vertices are values of T. Its maps and heap are reused between
// runs, so a long-lived Runner avoids reallocating per query. A Runner must
// not be shared between goroutines.
type Runner[T comparable] struct {
	dist    map[T]float64 // vertex → best-known distance from source
	prev    map[T]T       // vertex → predecessor on a shortest path
	settled mapset.Set[T] // vertices whose distance is final
	order   []T           // settle order, ascending distance
	pq      nodePQ[T]     // lazy decrease-key min-heap
	seq     uint64        // insertion counter for stable tie-breaks
	options Options
}

// NewRunner returns an empty Runner.
func NewRunner[T comparable]() *Runner[T] {
	return &Runner[T]{
		dist:    make(map[T]float64),
		prev:    make(map[T]T),
		settled: mapset.New[T](),
	}
}

// Run computes shortest distances from source to every vertex reachable
// through neighbors, using cost for edge weights. Previous results are
// discarded.
//
// Ties in distance are broken by push order, so for a deterministic neighbor
// enumeration the settle order is deterministic too.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func (r *Runner[T]) Run(source T, neighbors NeighborFunc[T], cost CostFunc[T], opts ...Option) error {
	if neighbors == nil {
		return ErrNilNeighbors
	}
	if cost == nil {
		return ErrNilCost
	}

	r.options = DefaultOptions()
	for _, opt := range opts {
		opt(&r.options)
	}

	r.reset()
	r.dist[source] = 0
	r.push(source, 0)

	return r.process(neighbors, cost)
}

// reset clears state left over from a previous run.
func (r *Runner[T]) reset() {
	if r.dist == nil {
		r.dist = make(map[T]float64)
		r.prev = make(map[T]T)
		r.settled = mapset.New[T]()
	}
	r.settled.Each(r.settled.Remove)
	clear(r.dist)
	clear(r.prev)
	r.order = r.order[:0]
	r.pq = r.pq[:0]
	r.seq = 0
}

// process pops the closest unsettled vertex and relaxes its edges until the
// heap drains.
func (r *Runner[T]) process(neighbors NeighborFunc[T], cost CostFunc[T]) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[T])
		u := item.id
		if r.settled.Has(u) {
			continue
		}

		r.settled.Put(u)
		r.order = append(r.order, u)

		if err := r.relax(u, neighbors, cost); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve distances to every neighbor of u.
func (r *Runner[T]) relax(u T, neighbors NeighborFunc[T], cost CostFunc[T]) error {
	du := r.dist[u]
	for v := range neighbors(u) {
		if r.settled.Has(v) {
			continue
		}
		w := cost(u, v)
		if w < 0 {
			return fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeWeight, u, v, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		nd := du + w
		if old, ok := r.dist[v]; ok && nd >= old {
			continue
		}

		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}

	return nil
}

func (r *Runner[T]) push(v T, d float64) {
	heap.Push(&r.pq, &nodeItem[T]{id: v, dist: d, seq: r.seq})
	r.seq++
}

// Distance returns the best distance found to v and whether v was reached.
func (r *Runner[T]) Distance(v T) (float64, bool) {
	d, ok := r.dist[v]
	return d, ok
}

// Parent returns v's predecessor on a shortest path. The source and
// unreached vertices have no parent.
func (r *Runner[T]) Parent(v T) (T, bool) {
	p, ok := r.prev[v]
	return p, ok
}

// Order returns the vertices in the order they were settled (ascending
// distance). The slice is owned by the Runner and overwritten by the next Run.
func (r *Runner[T]) Order() []T { return r.order }

// Len returns the number of settled vertices.
func (r *Runner[T]) Len() int { return len(r.order) }

// Path returns the vertices from the source to v, inclusive, or nil if v was
// not reached.
func (r *Runner[T]) Path(v T) []T {
	if _, ok := r.dist[v]; !ok {
		return nil
	}
	path := []T{v}
	for cur := v; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem[T comparable] struct {
	id   T
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by push order.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ[T comparable] []*nodeItem[T]

func (pq nodePQ[T]) Len() int { return len(pq) }

func (pq nodePQ[T]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[T]) Push(x any) { *pq = append(*pq, x.(*nodeItem[T])) }

func (pq *nodePQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
