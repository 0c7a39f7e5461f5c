// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cellfind/core"
)

// queueItem pairs a region with its link distance from the root.
type queueItem struct {
	region *core.Region
	depth  int
}

// Traverser runs breadth-first traversals and keeps its queue buffer between
// runs. The zero value is ready to use. A Traverser must not be shared between
// goroutines.
type Traverser struct {
	queue  []queueItem
	closed mapset.Set[int] // empty between runs once made
	made   bool
	busy   bool
}

// NewTraverser returns an empty Traverser.
func NewTraverser() *Traverser {
	return &Traverser{}
}

// BreadthFirstTraverse walks the region graph from root.
//
// The root is processed unconditionally. For every processed region, each
// neighbor not yet enqueued whose type is in the mask and which entry accepts
// is enqueued. A nil entry accepts everything. The traversal ends when
// process returns true (stopped == true), when MaxRegions regions have been
// processed, or when the queue drains.
func (t *Traverser) BreadthFirstTraverse(
	root *core.Region,
	entry EntryCondition,
	process RegionProcessor,
	opts ...Option,
) (stopped bool, err error) {
	if root == nil {
		return false, ErrNilRoot
	}
	if process == nil {
		return false, ErrNilProcessor
	}
	if t.busy {
		return false, ErrBusy
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}

	t.busy = true
	defer t.release()

	if !t.made {
		t.closed, t.made = mapset.New[int](), true
	}
	t.closed.Put(root.ID)
	t.queue = append(t.queue[:0], queueItem{region: root})
	o.OnEnqueue(root, 0)

	processed := 0
	for head := 0; head < len(t.queue); head++ {
		item := t.queue[head]
		if process(item.region) {
			return true, nil
		}
		processed++
		if processed >= o.MaxRegions {
			return false, nil
		}

		for _, nb := range item.region.Neighbors() {
			if t.closed.Has(nb.ID) {
				continue
			}
			if !o.RegionTypes.Allows(nb.Type) {
				continue
			}
			if entry != nil && !entry(item.region, nb) {
				continue
			}
			t.closed.Put(nb.ID)
			t.queue = append(t.queue, queueItem{region: nb, depth: item.depth + 1})
			o.OnEnqueue(nb, item.depth+1)
		}
	}

	return false, nil
}

// release drops region references so the buffer does not pin a stale graph,
// and empties the closed set for the next run.
func (t *Traverser) release() {
	for i := range t.queue {
		t.queue[i] = queueItem{}
	}
	t.queue = t.queue[:0]
	t.closed.Each(t.closed.Remove)
	t.busy = false
}

// BreadthFirstTraverse runs a one-shot traversal with its own Traverser.
// maxRegions == 0 means DefaultMaxRegions.
func BreadthFirstTraverse(
	root *core.Region,
	entry EntryCondition,
	process RegionProcessor,
	maxRegions int,
	types core.RegionType,
) (bool, error) {
	stopped, err := NewTraverser().BreadthFirstTraverse(root, entry, process,
		WithMaxRegions(maxRegions), WithRegionTypes(types))
	if err != nil {
		return false, fmt.Errorf("bfs: traverse from %v: %w", root, err)
	}

	return stopped, nil
}
