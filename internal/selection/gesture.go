package selection

import (
	"github.com/clipperhouse/uax29/v2/words"

	"github.com/xonecas/viewengine/internal/rope"
)

// Granularity names the unit a mouse gesture selects.
type Granularity int

const (
	Point Granularity = iota
	Word
	Line
)

// GestureType names the kind of mouse gesture.
type GestureType int

const (
	Select GestureType = iota
	SelectExtend
	Drag
)

// Gesture is one mouse gesture event.
type Gesture struct {
	Type        GestureType
	Granularity Granularity
	Multi       bool
}

// RegionForGesture returns the region a gesture at offset produces
// for the given granularity.
func RegionForGesture(text rope.Text, offset int, g Granularity) Region {
	switch g {
	case Word:
		start, end := wordAt(text, offset)
		return Region{Start: start, End: end}
	case Line:
		line := text.LineOfOffset(offset)
		start := text.OffsetOfLine(line)
		end := text.OffsetOfLine(line + 1)
		return Region{Start: start, End: end}
	default:
		return Caret(offset)
	}
}

func wordAt(text rope.Text, offset int) (int, int) {
	full := text.String()
	pos := 0
	seg := words.NewSegmenter([]byte(full))
	for seg.Next() {
		b := seg.Bytes()
		end := pos + len(b)
		if offset >= pos && offset < end {
			return pos, end
		}
		pos = end
	}
	return offset, offset
}

// SelectionForGesture computes the new selection produced by applying
// gesture at offset to sel:
//   - toggling a Select{Point,multi:true} off one region of a
//     multi-region selection never drops below one region;
//   - SelectExtend merges the last active region against the new
//     region, picking the new region's end or start depending on
//     which side of the active region's start offset falls;
//   - Drag leaves the selection unchanged (incremental drag-following
//     is driven by repeated Select{multi:false} calls from the host).
func SelectionForGesture(text rope.Text, sel Selection, offset int, g Gesture) Selection {
	if g.Type == Select && g.Granularity == Point && g.Multi {
		hits := sel.RegionsInRange(offset, offset)
		if len(hits) > 0 && sel.Len() > 1 {
			return sel.DeleteRange(offset, offset, true)
		}
	}

	switch g.Type {
	case Select:
		newRegion := RegionForGesture(text, offset, g.Granularity)
		if g.Multi {
			return sel.AddRegion(newRegion)
		}
		return FromRegion(newRegion)
	case SelectExtend:
		if sel.Len() == 0 {
			return sel
		}
		active := sel.Last()
		newRegion := RegionForGesture(text, offset, g.Granularity)
		var merged Region
		if offset >= active.Start {
			merged = Region{Start: active.Start, End: newRegion.End}
		} else {
			merged = Region{Start: active.Start, End: newRegion.Start}
		}
		return sel.AddRegion(merged)
	case Drag:
		return sel
	default:
		return sel
	}
}
