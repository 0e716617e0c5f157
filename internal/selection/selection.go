package selection

import "sort"

// Selection is a sorted, non-overlapping sequence of Region; it
// always contains at least one region.
type Selection struct {
	regions []Region
}

// New returns a Selection containing a single caret at offset.
func New(offset int) Selection {
	return Selection{regions: []Region{Caret(offset)}}
}

// FromRegion returns a Selection containing exactly r.
func FromRegion(r Region) Selection {
	return Selection{regions: []Region{r}}
}

// Len returns the number of regions.
func (s Selection) Len() int { return len(s.regions) }

// All returns the regions in order.
func (s Selection) All() []Region { return s.regions }

// Last returns the final region in sorted order (the one movement and
// scroll-point computation treat as "active").
func (s Selection) Last() Region {
	return s.regions[len(s.regions)-1]
}

// RegionsInRange returns every region overlapping [a,b].
func (s Selection) RegionsInRange(a, b int) []Region {
	var out []Region
	for _, r := range s.regions {
		if r.Min() <= b && r.Max() >= a {
			out = append(out, r)
		}
	}
	return out
}

// AddRegion inserts r, merging with any overlapping regions, and
// keeps the result sorted. The added/merged region is Last() only when
// no other region sorts after it.
func (s Selection) AddRegion(r Region) Selection {
	var kept []Region
	merged := r
	for _, existing := range s.regions {
		if existing.Max() < merged.Min() || existing.Min() > merged.Max() {
			kept = append(kept, existing)
			continue
		}
		merged = mergeRegions(merged, existing)
	}
	kept = append(kept, merged)
	sort.Slice(kept, func(i, j int) bool { return kept[i].Min() < kept[j].Min() })
	return Selection{regions: kept}
}

func mergeRegions(a, b Region) Region {
	start := min(a.Min(), b.Min())
	end := max(a.Max(), b.Max())
	// preserve the direction/affinity of a (the region being added)
	if a.Start <= a.End {
		return Region{Start: start, End: end, Affinity: a.Affinity}
	}
	return Region{Start: end, End: start, Affinity: a.Affinity}
}

// DeleteRange removes every region overlapping [a,b]. If keepLast is
// true and this would empty the selection, the last removed region's
// caret is kept instead, so the selection never becomes empty when
// keepLast is set.
func (s Selection) DeleteRange(a, b int, keepLast bool) Selection {
	var kept []Region
	var removedLast Region
	hadRemoved := false
	for _, r := range s.regions {
		if r.Min() <= b && r.Max() >= a {
			removedLast = r
			hadRemoved = true
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 && keepLast && hadRemoved {
		kept = []Region{removedLast.Collapsed()}
	}
	if len(kept) == 0 {
		kept = []Region{Caret(a)}
	}
	return Selection{regions: kept}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
