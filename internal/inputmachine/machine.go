// Package inputmachine implements a modal Insert/Command key-event
// state machine.
package inputmachine

import (
	"time"

	"github.com/rs/zerolog"
)

// KeyTimeout is how long the machine waits after a lone "j" in Insert
// mode before giving up on the "jj" → Escape shortcut.
const KeyTimeout = 500 * time.Millisecond

// PendingToken identifies a scheduled event so the host can cancel it.
type PendingToken uint32

// KeyEvent is one raw keystroke delivered by the host.
type KeyEvent struct {
	Characters string
	Modifiers  uint32
	// Payload is the host-owned opaque token accompanying the
	// keystroke; the machine never
	// inspects it, only round-trips it through Host.
	Payload any
}

// Host is what the machine needs from its embedder: a way to forward
// or drop the raw event, emit an action (an RPC-shaped command to the
// view engine), and schedule/cancel the "jj" timeout.
type Host interface {
	SendEvent(ev KeyEvent)
	FreeEvent(ev KeyEvent)
	SendAction(action string, params map[string]any)
	ScheduleEvent(ev KeyEvent, delay time.Duration) PendingToken
	CancelTimer(token PendingToken)
}

// Mode names the machine's top-level mode.
type Mode int

const (
	Insert Mode = iota
	Command
)

// Machine is the modal key-event parser: one per view, holding
// whatever partial vim-lite command is in progress.
type Machine struct {
	mode         Mode
	state        commandState
	raw          string
	pendingToken PendingToken
	hasPending   bool
	pendingEvent KeyEvent
	logger       zerolog.Logger
}

// New returns a Machine starting in Insert mode, logging abandoned or
// unrecognised command-mode input through logger.
func New(logger zerolog.Logger) *Machine {
	return &Machine{mode: Insert, state: readyState(), logger: logger}
}

// Mode reports the machine's current mode.
func (m *Machine) Mode() Mode { return m.mode }

// HandleEvent routes ev through Insert or Command handling.
func (m *Machine) HandleEvent(ev KeyEvent, host Host) {
	switch m.mode {
	case Insert:
		m.handleInsert(ev, host)
	case Command:
		m.handleCommand(ev, host)
		host.FreeEvent(ev)
	}
}

// ClearPending tells the machine a scheduled event's timer is no
// longer live, either because it fired or was cancelled. The host is
// responsible for redelivering the original keystroke (via SendEvent)
// when a timer fires on its own, before calling this; the machine
// itself only forgets the token.
func (m *Machine) ClearPending(token PendingToken) {
	if m.hasPending && m.pendingToken == token {
		m.hasPending = false
	}
}

func (m *Machine) handleInsert(ev KeyEvent, host Host) {
	hadPending := m.hasPending
	token := m.pendingToken
	m.hasPending = false

	switch {
	case ev.Characters == "Escape":
		m.toCommandMode(ev, host)
	case ev.Characters == "j":
		if hadPending {
			host.CancelTimer(token)
			m.toCommandMode(ev, host)
		} else {
			m.pendingToken = host.ScheduleEvent(ev, KeyTimeout)
			m.pendingEvent = ev
			m.hasPending = true
		}
	default:
		host.SendEvent(ev)
	}
}

func (m *Machine) toCommandMode(ev KeyEvent, host Host) {
	m.mode = Command
	host.SendAction("mode_change", map[string]any{"mode": "command"})
	host.FreeEvent(ev)
}
