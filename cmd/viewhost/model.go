package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/cursor"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/xonecas/viewengine/internal/dispatcher"
	"github.com/xonecas/viewengine/internal/highlight"
	"github.com/xonecas/viewengine/internal/style"
	"github.com/xonecas/viewengine/internal/view"
)

const gutterWidth = 5

// model is the bubbletea front end over a Dispatcher: it owns no
// buffer state of its own (that lives in the engine), only the
// screen geometry, the interned style table, and a scroll offset for
// windowing get_line calls.
type model struct {
	d       *dispatcher.Dispatcher
	timers  *timerSet
	deliver func(chars string)

	path, lang, theme string

	width, height int
	topLine       int
	dragging      bool

	styles map[style.ID]style.Style
	mode   string
	parse  string
	status string
	dirty  bool

	caret cursor.Model
}

func newModel(d *dispatcher.Dispatcher, timers *timerSet, deliver func(string), path, lang, theme string) model {
	c := cursor.New()
	c.SetMode(cursor.CursorBlink)
	c.Focus()
	return model{
		d:       d,
		timers:  timers,
		deliver: deliver,
		path:    path,
		lang:    lang,
		theme:   theme,
		styles:  make(map[style.ID]style.Style),
		mode:    "insert",
		caret:   c,
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg { return cursor.Blink() }
}

func (m model) send(msg []byte) { m.d.SendMessage(msg) }

func (m *model) save() {
	if err := writeFile(m.path, m.d.Text()); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.dirty = false
	m.status = "saved"
}

func (m *model) paste() {
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		return
	}
	m.d.SendMessage(insertMessage(text))
	m.dirty = true
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 1
		if m.height < 1 {
			m.height = 1
		}
		m.send(viewportMessage(0, 0, m.width-gutterWidth, m.height))

	case rpcMsg:
		m.applyRPC(msg)

	case invalidateMsg:
		// Nothing to cache client-side: View() always re-reads
		// get_line, so invalidation is implicit on every redraw.

	case timerFiredMsg:
		if chars, ok := msg.payload.(string); ok {
			m.deliver(chars)
		}
		m.d.ClearPending(msg.token)

	case tea.KeyPressMsg:
		if c, handled := m.handleKey(msg); handled {
			m.caret, cmd = m.caret.Update(msg)
			return m, tea.Batch(c, cmd)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.caret, cmd = m.caret.Update(msg)
	return m, cmd
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-3)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(3)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		line, col := m.screenToLineCol(msg.X, msg.Y)
		m.dragging = true
		m.send(gestureMessage(line, col, "select", "point", false))
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	case msg.Action == tea.MouseActionMotion && m.dragging:
		line, col := m.screenToLineCol(msg.X, msg.Y)
		m.send(gestureMessage(line, col, "drag", "point", false))
	}
}

func (m *model) scrollBy(delta int) {
	m.topLine += delta
	if m.topLine < 0 {
		m.topLine = 0
	}
}

func (m *model) screenToLineCol(x, y int) (int, int) {
	col := x - gutterWidth
	if col < 0 {
		col = 0
	}
	return m.topLine + y, col
}

func (m *model) applyRPC(msg rpcMsg) {
	params, _ := msg.params.(map[string]any)
	switch msg.method {
	case "new_styles":
		entries, _ := params["styles"].([]map[string]any)
		for _, e := range entries {
			id, _ := e["id"].(style.ID)
			m.styles[id] = style.Style{
				FgRGBA: e["fg"].(style.RGBA),
				BgRGBA: e["bg"].(style.RGBA),
				Italic: e["italic"].(bool),
				Bold:   e["bold"].(bool),
				Under:  e["underline"].(bool),
			}
		}
	case "scroll_to":
		line, _ := params["line"].(int)
		if line < m.topLine {
			m.topLine = line
		} else if m.height > 0 && line >= m.topLine+m.height {
			m.topLine = line - m.height + 1
		}
	case "mode_change":
		m.mode, _ = params["mode"].(string)
	case "parse_state":
		m.parse, _ = params["state"].(string)
	case "set_pasteboard":
		if text, ok := params["text"].(string); ok {
			clipboard.WriteAll(text)
		}
	case "content_size":
		// Purely informational for a terminal host that always fills
		// its own window; nothing to react to.
	}
}

// handleKey translates one keystroke into either a direct selector
// (navigation, deletion, and other host-level keybindings) or a raw
// character fed through the modal input machine, the way a real host
// splits "what the keyboard shortcut means" from "what the user typed".
func (m *model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.Keystroke() {
	case "ctrl+c", "ctrl+q":
		return tea.Quit, true
	case "ctrl+s":
		m.save()
	case "ctrl+z":
		m.send(selectorMessage("undo"))
		m.dirty = true
	case "ctrl+y":
		m.send(selectorMessage("redo"))
		m.dirty = true
	case "ctrl+a":
		m.send(selectorMessage("selectAll:"))
	case "ctrl+x":
		m.send(selectorMessage("cut"))
		m.dirty = true
	case "ctrl+v":
		m.paste()
	case "up":
		m.send(selectorMessage("moveUp:"))
	case "shift+up":
		m.send(selectorMessage("moveUpAndModifySelection:"))
	case "down":
		m.send(selectorMessage("moveDown:"))
	case "shift+down":
		m.send(selectorMessage("moveDownAndModifySelection:"))
	case "left":
		m.send(selectorMessage("moveLeft:"))
	case "shift+left":
		m.send(selectorMessage("moveLeftAndModifySelection:"))
	case "right":
		m.send(selectorMessage("moveRight:"))
	case "shift+right":
		m.send(selectorMessage("moveRightAndModifySelection:"))
	case "ctrl+left":
		m.send(selectorMessage("moveWordLeft:"))
	case "ctrl+right":
		m.send(selectorMessage("moveWordRight:"))
	case "home":
		m.send(selectorMessage("moveToBeginningOfLine:"))
	case "shift+home":
		m.send(selectorMessage("moveToLeftEndOfLineAndModifySelection:"))
	case "end":
		m.send(selectorMessage("moveToEndOfLine:"))
	case "shift+end":
		m.send(selectorMessage("moveToRightEndOfLineAndModifySelection:"))
	case "ctrl+home":
		m.send(selectorMessage("moveToBeginningOfDocument:"))
	case "ctrl+end":
		m.send(selectorMessage("moveToEndOfDocument:"))
	case "pgup":
		m.send(selectorMessage("pageUp:"))
	case "pgdown":
		m.send(selectorMessage("pageDown:"))
	case "backspace":
		m.send(selectorMessage("deleteBackward:"))
		m.dirty = true
	case "delete":
		m.send(selectorMessage("deleteForward:"))
		m.dirty = true
	case "enter":
		m.send(selectorMessage("insertNewline:"))
		m.dirty = true
	case "tab":
		m.send(selectorMessage("insertTab:"))
		m.dirty = true
	case "escape":
		m.d.HandleInput(0, "Escape", "Escape")
	default:
		if msg.Text != "" {
			for _, r := range msg.Text {
				m.d.HandleInput(0, string(r), string(r))
			}
			m.dirty = true
		}
	}
	return nil, true
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var b strings.Builder
	textWidth := m.width - gutterWidth
	for row := 0; row < m.height; row++ {
		idx := m.topLine + row
		line := m.d.GetLine(uint32(idx))
		if line == nil {
			fmt.Fprintf(&b, "%*s\n", gutterWidth, "")
			continue
		}
		fmt.Fprintf(&b, "%*d ", gutterWidth-1, idx)
		rendered := renderLine(line, m.styles, textWidth)
		if rw := lipgloss.Width(rendered); rw > textWidth {
			rendered = ansi.Truncate(rendered, textWidth, "")
		}
		b.WriteString(rendered)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "-- %s -- %s  %s%s", m.mode, m.path, m.parse, dirtyMark(m.dirty))
	if m.status != "" {
		fmt.Fprintf(&b, "  %s", m.status)
	}
	return b.String()
}

func dirtyMark(dirty bool) string {
	if dirty {
		return "  [+]"
	}
	return ""
}

// renderLine converts one get_line snapshot into an ANSI string,
// applying interned styles per byte-offset run and reverse-video for
// the caret and any selected span. The caret is always drawn; no
// blink phase is applied, so a golden terminal snapshot sees a
// deterministic caret.
func renderLine(l *view.Line, styles map[style.ID]style.Style, width int) string {
	var b strings.Builder
	byteLen := len(l.Text)
	styleAt := make([]style.ID, byteLen)
	for _, r := range l.StyleRuns {
		end := r.Start + r.Length
		if end > byteLen {
			end = byteLen
		}
		for i := r.Start; i < end; i++ {
			styleAt[i] = r.StyleID
		}
	}

	col := 0
	pos := 0
	for _, r := range l.Text {
		n := utf8.RuneLen(r)
		inSel := l.SelEnd > l.SelStart && pos >= l.SelStart && pos < l.SelEnd
		isCaret := l.Caret != nil && pos == *l.Caret

		if st, ok := styles[styleAt[pos]]; ok {
			b.WriteString(highlight.SGR(st))
		}
		if inSel || isCaret {
			b.WriteString("\x1b[7m")
		}
		b.WriteRune(r)
		b.WriteString(highlight.Reset)

		col += runewidth.RuneWidth(r)
		pos += n
	}
	if l.Caret != nil && *l.Caret == byteLen {
		b.WriteString("\x1b[7m \x1b[0m")
		col++
	}
	for col < width {
		b.WriteByte(' ')
		col++
	}
	return b.String()
}
