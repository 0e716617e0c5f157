package selection

import "github.com/xonecas/viewengine/internal/rope"

// Drift governs how a caret sitting exactly at an insertion point
// moves when a Delta is applied.
type Drift int

const (
	// DriftDefault keeps the caret on the inserted-text side: typing
	// at a caret pushes the caret past what was typed.
	DriftDefault Drift = iota
	// DriftBefore keeps the caret before the inserted text.
	DriftBefore
)

// ApplyDelta shifts every region of s through d, returning a new
// Selection. after is accepted for signature parity with
// apply_delta(delta, after, drift); this implementation always
// transforms against the delta as applied, so it has no separate
// effect here.
func (s Selection) ApplyDelta(d rope.Delta, after bool, drift Drift) Selection {
	_ = after
	out := make([]Region, len(s.regions))
	for i, r := range s.regions {
		out[i] = Region{
			Start:    transformOffset(r.Start, d, drift),
			End:      transformOffset(r.End, d, drift),
			Affinity: r.Affinity,
		}
	}
	return Selection{regions: out}
}

func transformOffset(off int, d rope.Delta, drift Drift) int {
	insLen := len(d.Insert)
	delLen := d.End - d.Start
	switch {
	case off < d.Start:
		return off
	case off == d.Start:
		if d.Start == d.End && drift == DriftDefault {
			return off + insLen
		}
		return off
	case off < d.End:
		return d.Start + insLen
	default:
		return off - delLen + insLen
	}
}
