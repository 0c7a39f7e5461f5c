// SPDX-License-Identifier: MIT

package debugdraw

import (
	"sync"

	"github.com/katalvlaran/cellfind/cellfinder"
	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
)

// Flash is one observed candidate.
type Flash struct {
	Cell  grid.Cell
	Value float64
	Label string
}

// Visit is one region a traversal enqueued.
type Visit struct {
	RegionID int
	Depth    int
}

// Recorder collects flashes and region visits in arrival order. Safe for
// concurrent use.
type Recorder struct {
	mu      sync.Mutex
	flashes []Flash
	last    map[grid.Cell]int // cell -> index of its latest flash
	visits  []Visit
}

var _ cellfinder.RegionObserver = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{last: make(map[grid.Cell]int)}
}

// FlashCell implements cellfinder.Observer.
func (r *Recorder) FlashCell(c grid.Cell, value float64, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		r.last = make(map[grid.Cell]int)
	}
	r.last[c] = len(r.flashes)
	r.flashes = append(r.flashes, Flash{Cell: c, Value: value, Label: label})
}

// EnqueueRegion implements cellfinder.RegionObserver.
func (r *Recorder) EnqueueRegion(reg *core.Region, depth int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visits = append(r.visits, Visit{RegionID: reg.ID, Depth: depth})
}

// Visits returns a copy of the recorded region visits.
func (r *Recorder) Visits() []Visit {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Visit, len(r.visits))
	copy(out, r.visits)
	return out
}

// Flashes returns a copy of everything recorded so far.
func (r *Recorder) Flashes() []Flash {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Flash, len(r.flashes))
	copy(out, r.flashes)
	return out
}

// Latest returns the most recent flash on c.
func (r *Recorder) Latest(c grid.Cell) (Flash, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.last[c]
	if !ok {
		return Flash{}, false
	}
	return r.flashes[i], true
}

// Count reports how many flashes carried label.
func (r *Recorder) Count(label string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, f := range r.flashes {
		if f.Label == label {
			n++
		}
	}
	return n
}

// Len is the number of recorded flashes.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.flashes)
}

// Reset forgets all flashes and visits.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flashes = r.flashes[:0]
	r.visits = r.visits[:0]
	clear(r.last)
}
