// Package breaks implements the Breaks container: a sequence of break
// records over the rope, each carrying the width of the line it
// terminates, used to drive soft-wrap line counting and the
// document's rendered width.
package breaks

// Record is one break: BaseLen is the number of text bytes the break
// covers (i.e. the length of the line it ends), Width is that line's
// measured rendered width.
type Record struct {
	BaseLen int
	Width   int
}

// Breaks is an immutable sequence of break Records. The sum of every
// record's BaseLen equals the length of the text it was built over.
type Breaks struct {
	records []Record
	maxW    int
}

// Empty returns a Breaks with no records (used when word-wrap is off).
func Empty() Breaks { return Breaks{} }

// Count returns the number of break records (this is count_lines - 1
// when word-wrap is active, since the final partial line adds one).
func (b Breaks) Count() int { return len(b.records) }

// MaxWidth returns the widest width ever recorded, per record, across
// the whole sequence.
func (b Breaks) MaxWidth() int { return b.maxW }

// TotalBaseLen returns the sum of every record's BaseLen.
func (b Breaks) TotalBaseLen() int {
	total := 0
	for _, r := range b.records {
		total += r.BaseLen
	}
	return total
}

// OffsetOfBreak returns the byte offset at which break n begins (the
// cumulative BaseLen of all records before it).
func (b Breaks) OffsetOfBreak(n int) int {
	off := 0
	for i := 0; i < n && i < len(b.records); i++ {
		off += b.records[i].BaseLen
	}
	return off
}

// LineOfOffset returns which visual line (0-indexed) contains offset,
// consistent with Count()+1 total visual lines.
func (b Breaks) LineOfOffset(offset int) int {
	cum := 0
	for i, r := range b.records {
		cum += r.BaseLen
		if offset < cum {
			return i
		}
	}
	return len(b.records)
}

// Records exposes the underlying sequence for iteration.
func (b Breaks) Records() []Record { return b.records }

// Builder accumulates break records.
type Builder struct {
	records []Record
	maxW    int
}

// NewBuilder starts an empty break builder.
func NewBuilder() *Builder { return &Builder{} }

// AddBreak appends one break record and folds its width into the
// running maximum.
func (bb *Builder) AddBreak(baseLen, width int) {
	bb.records = append(bb.records, Record{BaseLen: baseLen, Width: width})
	if width > bb.maxW {
		bb.maxW = width
	}
}

// Build freezes the builder.
func (bb *Builder) Build() Breaks {
	return Breaks{records: bb.records, maxW: bb.maxW}
}
