package dispatcher

import (
	"github.com/rs/zerolog"

	"github.com/xonecas/viewengine/internal/engineconfig"
	"github.com/xonecas/viewengine/internal/inputmachine"
	"github.com/xonecas/viewengine/internal/view"
	"github.com/xonecas/viewengine/internal/widthcache"
)

// Dispatcher owns one view Engine and its input machine, and is the
// sole point of contact the host's opaque Handle resolves to. It is
// single-threaded and synchronous: every method runs to completion on
// the caller's goroutine.
type Dispatcher struct {
	handle  Handle
	logger  zerolog.Logger
	engine  *view.Engine
	input   *inputmachine.Machine
	cbs     Callbacks
	inputCb InputCallbacks
	freed   bool
}

// Create mints a new Handle over a fresh, empty-document Engine,
// wiring cbs as the engine's only channel back to the host.
func Create(logger zerolog.Logger, lang, theme string, cfg engineconfig.BufferConfig, cbs Callbacks) (*Dispatcher, Handle) {
	if cbs.RPC == nil || cbs.Invalidate == nil || cbs.Width == nil {
		logger.Fatal().Msg("dispatcher.Create: nil callback violates host contract")
	}
	h := newHandle()
	measure := widthcache.MeasureFunc(func(s string) widthcache.Size { return cbs.Width(s) })
	d := &Dispatcher{
		handle: h,
		logger: logger.With().Str("handle", h.String()).Logger(),
		engine: view.New(measure, lang, theme, cfg),
		cbs:    cbs,
	}
	return d, h
}

// RegisterInput wires the modal input machine's callbacks. It must be
// called at most once per Dispatcher.
func (d *Dispatcher) RegisterInput(cbs InputCallbacks) {
	if cbs.Event == nil || cbs.Action == nil || cbs.Timer == nil || cbs.CancelTimer == nil {
		d.logger.Fatal().Msg("RegisterInput: nil callback violates host contract")
	}
	d.inputCb = cbs
	d.input = inputmachine.New(d.logger)
}

// HandleInput delivers one raw keystroke to the modal input machine.
// The input machine must have been registered first.
func (d *Dispatcher) HandleInput(modifiers uint32, characters string, payload any) {
	if d.freed {
		d.logger.Fatal().Msg("HandleInput called on a freed handle")
	}
	if d.input == nil {
		d.logger.Fatal().Msg("HandleInput called before RegisterInput")
	}
	ev := inputmachine.KeyEvent{Characters: characters, Modifiers: modifiers, Payload: payload}
	d.input.HandleEvent(ev, &inputHost{d: d})
}

// ClearPending tells the input machine a previously scheduled timer
// either fired or was cancelled. A token may be cleared at most once;
// clearing an unknown or already-cleared token is a silent no-op in
// the machine itself.
func (d *Dispatcher) ClearPending(token uint32) {
	if d.input == nil {
		d.logger.Fatal().Msg("ClearPending called before RegisterInput")
	}
	d.input.ClearPending(inputmachine.PendingToken(token))
}

// GetLine returns the rendered snapshot of line idx, or nil if out of
// range.
func (d *Dispatcher) GetLine(idx uint32) *view.Line {
	if d.freed {
		d.logger.Fatal().Msg("GetLine called on a freed handle")
	}
	return d.engine.GetLine(int(idx))
}

// SetText replaces the document wholesale, the host-driven equivalent
// of opening a file; not part of the host RPC surface proper, but
// every host needs some way to seed the engine with content before
// the first render.
func (d *Dispatcher) SetText(text string) {
	if d.freed {
		d.logger.Fatal().Msg("SetText called on a freed handle")
	}
	d.engine.SetText(text)
}

// Text returns the document's current contents, for a host to persist.
func (d *Dispatcher) Text() string {
	if d.freed {
		d.logger.Fatal().Msg("Text called on a freed handle")
	}
	return d.engine.Text().String()
}

// SendMessage decodes one JSON request and, if it names a recognised
// selector, applies it to the view engine and materialises the
// resulting Update as host callbacks. A malformed request or unknown
// selector is logged and dropped rather than treated as an error.
func (d *Dispatcher) SendMessage(msg []byte) {
	if d.freed {
		d.logger.Fatal().Msg("SendMessage called on a freed handle")
	}
	m, err := decodeMessage(msg)
	if err != nil {
		d.logger.Warn().Err(err).Msg("malformed request, dropping")
		return
	}

	ev, ok := eventForMessage(m, d.logger)
	if !ok {
		return
	}

	update := d.engine.HandleEvent(ev)
	d.materialize(update)
}

// Free releases the Dispatcher. Calling any other method on it
// afterwards, or calling Free twice, is a host contract violation.
func (d *Dispatcher) Free() {
	if d.freed {
		d.logger.Fatal().Msg("double free of handle")
	}
	d.freed = true
}

// materialize sends update's populated fields to the host in a fixed
// order: content_size, new_styles, invalidate, scroll_to,
// set_pasteboard. Absent fields are skipped.
func (d *Dispatcher) materialize(u view.Update) {
	if u.Size != nil {
		d.cbs.RPC("content_size", map[string]any{"width": u.Size.Width, "height": u.Size.Height})
	}
	if len(u.Styles) > 0 {
		styles := make([]map[string]any, 0, len(u.Styles))
		for _, s := range u.Styles {
			styles = append(styles, map[string]any{
				"id":        s.ID,
				"fg":        s.Style.FgRGBA,
				"bg":        s.Style.BgRGBA,
				"italic":    s.Style.Italic,
				"bold":      s.Style.Bold,
				"underline": s.Style.Under,
			})
		}
		d.cbs.RPC("new_styles", map[string]any{"styles": styles})
	}
	if u.Lines != nil {
		d.cbs.Invalidate(u.Lines.Start, u.Lines.End)
	}
	if u.Scroll != nil {
		d.cbs.RPC("scroll_to", map[string]any{"line": u.Scroll.Line, "col": u.Scroll.Col})
	}
	if u.Pasteboard != nil {
		d.cbs.RPC("set_pasteboard", map[string]any{"text": *u.Pasteboard})
	}
}
