// SPDX-License-Identifier: MIT

package cellfinder

import (
	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/rng"
)

// regionFilter is the acceptance test shared by RandomRegionNear and
// AllRegionsNear. It is applied to the root as well as to every neighbor.
func regionFilter(tp core.TraverseParms, validator func(*core.Region) bool, pawnToAllow *core.Pawn) func(*core.Region) bool {
	return func(r *core.Region) bool {
		if validator != nil && !validator(r) {
			return false
		}
		if !r.Allows(tp, true) {
			return false
		}
		return pawnToAllow == nil || !r.IsForbiddenEntirely(pawnToAllow)
	}
}

// TryFindClosestRegionWith returns the first region in breadth-first order
// from root that satisfies validator. Regions are entered only when they
// allow tp as a destination; root itself is always tested. A nil validator
// accepts root.
//
// A nil root is logged once and reported as not found.
func (f *Finder) TryFindClosestRegionWith(
	root *core.Region,
	tp core.TraverseParms,
	validator func(*core.Region) bool,
	maxRegions int,
	types core.RegionType,
) (*core.Region, bool) {
	if root == nil {
		f.errorOnce(keyClosestNilRoot, "cellfinder: TryFindClosestRegionWith called with a nil root")
		return nil, false
	}
	s := f.acquire()
	defer f.release(s)

	var found *core.Region
	_, err := s.trav.BreadthFirstTraverse(root,
		func(_, r *core.Region) bool { return r.Allows(tp, true) },
		func(r *core.Region) bool {
			if validator == nil || validator(r) {
				found = r
				return true
			}
			return false
		},
		f.traverseOptions(maxRegions, types)...)
	if err != nil {
		f.log.Error("cellfinder: closest region traversal failed", "root", root.String(), "err", err)
		return nil, false
	}

	return found, found != nil
}

// RandomRegionNear collects the regions reachable from root through regions
// passing validator, tp and the pawnToAllow forbidden check, then picks one
// with probability proportional to its cell count.
//
// maxRegions <= 1 returns root without searching, so root is then returned
// even if validator, tp or the forbidden check would reject it. When nothing
// qualifies, root is returned too. Panics with ErrNilRoot if root is nil.
func (f *Finder) RandomRegionNear(
	root *core.Region,
	maxRegions int,
	tp core.TraverseParms,
	validator func(*core.Region) bool,
	pawnToAllow *core.Pawn,
	types core.RegionType,
) *core.Region {
	if root == nil {
		panic(ErrNilRoot)
	}
	if maxRegions <= 1 {
		return root
	}
	s := f.acquire()
	defer f.release(s)

	if err := f.collectRegions(s, root, maxRegions, regionFilter(tp, validator, pawnToAllow), types); err != nil {
		f.log.Error("cellfinder: random region traversal failed", "root", root.String(), "err", err)
		return root
	}
	i := rng.ElementByWeight(s.regions, f.rnd, cellCountWeight)
	if i < 0 {
		return root
	}

	return s.regions[i]
}

// AllRegionsNear replaces *results with every region reachable from root
// under the same rules as RandomRegionNear, in breadth-first order.
//
// A nil results pointer or a nil root is logged once and leaves nothing to
// report.
func (f *Finder) AllRegionsNear(
	results *[]*core.Region,
	root *core.Region,
	maxRegions int,
	tp core.TraverseParms,
	validator func(*core.Region) bool,
	pawnToAllow *core.Pawn,
	types core.RegionType,
) {
	if results == nil {
		f.errorOnce(keyAllRegionsNilResults, "cellfinder: AllRegionsNear called with a nil results list")
		return
	}
	clear(*results)
	*results = (*results)[:0]
	if root == nil {
		f.errorOnce(keyAllRegionsNilRoot, "cellfinder: AllRegionsNear called with a nil root")
		return
	}
	s := f.acquire()
	defer f.release(s)

	if err := f.collectRegions(s, root, maxRegions, regionFilter(tp, validator, pawnToAllow), types); err != nil {
		f.log.Error("cellfinder: region traversal failed", "root", root.String(), "err", err)
		return
	}
	*results = append(*results, s.regions...)
}

// collectRegions fills s.regions with root (if accept allows it) and every
// region accept lets the traversal enter.
func (f *Finder) collectRegions(s *scratch, root *core.Region, maxRegions int, accept func(*core.Region) bool, types core.RegionType) error {
	s.regions = s.regions[:0]
	_, err := s.trav.BreadthFirstTraverse(root,
		func(_, r *core.Region) bool { return accept(r) },
		func(r *core.Region) bool {
			if r != root || accept(r) {
				s.regions = append(s.regions, r)
			}
			return false
		},
		f.traverseOptions(maxRegions, types)...)

	return err
}
