package style

import "sync"

// Table interns Style values into stable, monotonically growing IDs
// and tracks which ones the host hasn't been told about yet.
type Table struct {
	mu      sync.Mutex
	byStyle map[Style]ID
	next    ID
	pending []New
}

// NewTable returns an empty style table.
func NewTable() *Table {
	return &Table{byStyle: make(map[Style]ID)}
}

// Intern returns the stable ID for s, minting one and queuing it for
// take_new_styles if s hasn't been seen before.
func (t *Table) Intern(s Style) ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.byStyle[s]; ok {
		return id
	}
	id := t.next
	t.next++
	t.byStyle[s] = id
	t.pending = append(t.pending, New{ID: id, Style: s})
	return id
}

// TakeNewStyles drains and returns every style minted since the last
// call. Its result must reach the host before any span referencing
// those ids.
func (t *Table) TakeNewStyles() []New {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.pending) == 0 {
		return nil
	}
	out := t.pending
	t.pending = nil
	return out
}
