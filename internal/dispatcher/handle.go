// Package dispatcher decodes host requests and routes them to the
// view engine and input machine, then materialises the resulting
// Update as an ordered sequence of host callbacks. It is the one place in this repo that knows about the wire
// shape of the external interface; everything below it works in
// plain Go types.
package dispatcher

import (
	"github.com/google/uuid"

	"github.com/xonecas/viewengine/internal/widthcache"
)

// Handle identifies one live view across the host/engine boundary,
// the Go substitute for the opaque handle the source hands back from
// create().
type Handle struct {
	id uuid.UUID
}

// String renders the handle for logging.
func (h Handle) String() string { return h.id.String() }

func newHandle() Handle { return Handle{id: uuid.New()} }

// RPCCallback delivers one engine-initiated RPC to the host: a method
// name and its JSON-able params object.
type RPCCallback func(method string, params any)

// InvalidateCallback asks the host to redraw lines [start,end).
type InvalidateCallback func(start, end int)

// WidthCallback is the host-owned, pure string-measurement function
// the width cache memoises.
type WidthCallback func(s string) widthcache.Size

// Callbacks bundles the three host callbacks required at create()
// time.
type Callbacks struct {
	RPC        RPCCallback
	Invalidate InvalidateCallback
	Width      WidthCallback
}

// EventCallback forwards a key event's opaque payload to the host IME
// (discard=false) or releases it (discard=true), per the send/free-once
// contract on event payloads.
type EventCallback func(payload any, discard bool)

// ActionCallback reports a vim-lite action parsed by the input machine
// to the host (move, delete, mode_change, parse_state,
// insert_newline). The dispatcher applies the action to the view
// engine itself; this callback only notifies the host.
type ActionCallback func(action string, params map[string]any)

// TimerCallback schedules payload to be redelivered after delayMs and
// returns a token the machine can later cancel.
type TimerCallback func(payload any, delayMs int) uint32

// CancelTimerCallback cancels a previously scheduled token.
type CancelTimerCallback func(token uint32)

// InputCallbacks bundles the four callbacks register_input supplies
//.
type InputCallbacks struct {
	Event       EventCallback
	Action      ActionCallback
	Timer       TimerCallback
	CancelTimer CancelTimerCallback
}
