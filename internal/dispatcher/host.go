package dispatcher

import (
	"time"

	"github.com/xonecas/viewengine/internal/inputmachine"
	"github.com/xonecas/viewengine/internal/selection"
	"github.com/xonecas/viewengine/internal/view"
)

// inputHost adapts a Dispatcher to inputmachine.Host: it turns the
// machine's abstract "forward/free/schedule/cancel" requests into the
// concrete host callbacks registered via RegisterInput, and turns its
// vim-lite actions into view-engine events, materialising each
// resulting Update immediately.
type inputHost struct {
	d *Dispatcher
}

func (h *inputHost) SendEvent(ev inputmachine.KeyEvent) {
	h.d.inputCb.Event(ev.Payload, false)
}

func (h *inputHost) FreeEvent(ev inputmachine.KeyEvent) {
	h.d.inputCb.Event(ev.Payload, true)
}

func (h *inputHost) ScheduleEvent(ev inputmachine.KeyEvent, delay time.Duration) inputmachine.PendingToken {
	token := h.d.inputCb.Timer(ev.Payload, int(delay/time.Millisecond))
	return inputmachine.PendingToken(token)
}

func (h *inputHost) CancelTimer(token inputmachine.PendingToken) {
	h.d.inputCb.CancelTimer(uint32(token))
}

// motionKind maps the inputmachine's motion-name vocabulary (command.go's
// Motion.String() and the mode-switch actions' own motion names) onto
// selection.Kind.
var motionKind = map[string]selection.Kind{
	"left":          selection.Left,
	"right":         selection.Right,
	"up":            selection.Up,
	"down":          selection.Down,
	"word":          selection.WordRight,
	"word_back":     selection.WordLeft,
	"start_of_line": selection.LineStart,
	"end_of_line":   selection.LineEnd,
}

// SendAction both reports action to the host via action_cb (so a host
// UI can track mode/parse-state without polling) and, for the verbs
// that mutate the buffer or selection, drives the view engine directly
// so the host never has to re-derive the resulting Update itself.
func (h *inputHost) SendAction(action string, params map[string]any) {
	h.d.inputCb.Action(action, params)
	switch action {
	case "mode_change", "parse_state":
		h.d.cbs.RPC(action, params)
	case "move":
		h.runMotion(params, false)
	case "delete":
		h.runMotion(params, true)
		h.d.dispatchBuffer(view.BufferEvent{Kind: view.Backspace})
	case "insert_newline":
		h.d.dispatchBuffer(view.BufferEvent{Kind: view.InsertNewline})
	default:
		h.d.logger.Warn().Str("action", action).Msg("unrecognized input-machine action, dropping")
	}
}

// runMotion repeats a single Move (or ModifySelection, for the d-verb
// case) dist times, materialising each step's Update: "move selection
// by motion × count".
func (h *inputHost) runMotion(params map[string]any, modify bool) {
	motion, _ := params["motion"].(string)
	kind, ok := motionKind[motion]
	if !ok {
		h.d.logger.Warn().Str("motion", motion).Msg("unrecognized vim-lite motion, dropping")
		return
	}
	dist := 1
	if d, ok := params["dist"].(int); ok && d > 0 {
		dist = d
	}
	evKind := view.Move
	if modify {
		evKind = view.ModifySelection
	}
	for i := 0; i < dist; i++ {
		h.d.dispatchView(view.ViewEvent{Kind: evKind, Movement: kind})
	}
}

// dispatchView and dispatchBuffer run one Event through the engine
// and materialise its Update immediately, the shape every vim-lite
// action and every send_message selector reduces to.
func (d *Dispatcher) dispatchView(ev view.ViewEvent) {
	d.materialize(d.engine.HandleEvent(view.Event{View: &ev}))
}

func (d *Dispatcher) dispatchBuffer(ev view.BufferEvent) {
	d.materialize(d.engine.HandleEvent(view.Event{Buffer: &ev}))
}
