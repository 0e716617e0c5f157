package inputmachine

// CommandType names the verb of a pending vim-lite command.
type CommandType int

const (
	MoveCmd CommandType = iota
	DeleteCmd
)

func commandTypeFromChar(c rune) (CommandType, bool) {
	if c == 'd' {
		return DeleteCmd, true
	}
	return 0, false
}

func (t CommandType) String() string {
	switch t {
	case DeleteCmd:
		return "delete"
	default:
		return "move"
	}
}

// Motion names a vim-lite motion.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionWord
	MotionBackWord
	MotionStartOfLine
	MotionEndOfLine
)

func motionFromChar(c rune) (Motion, bool) {
	switch c {
	case 'h':
		return MotionLeft, true
	case 'l':
		return MotionRight, true
	case 'j':
		return MotionDown, true
	case 'k':
		return MotionUp, true
	case 'w':
		return MotionWord, true
	case 'b':
		return MotionBackWord, true
	case '0':
		return MotionStartOfLine, true
	case '$':
		return MotionEndOfLine, true
	default:
		return 0, false
	}
}

func (m Motion) String() string {
	switch m {
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionDown:
		return "down"
	case MotionUp:
		return "up"
	case MotionWord:
		return "word"
	case MotionBackWord:
		return "word_back"
	case MotionStartOfLine:
		return "start_of_line"
	case MotionEndOfLine:
		return "end_of_line"
	default:
		return ""
	}
}

// command is a fully parsed vim-lite command: a verb, a motion, and a
// repeat count.
type command struct {
	Type     CommandType
	Motion   Motion
	Distance int
}

// stateKind names which phase of command-parsing the machine is in.
type stateKind int

const (
	stateReady stateKind = iota
	stateAwaitMotion
	stateDone
	stateFailed
)

// commandState is the parser's current partial-command state.
type commandState struct {
	kind     stateKind
	cmdType  CommandType
	distance int
	done     command
}

func readyState() commandState { return commandState{kind: stateReady} }

func (m *Machine) handleCommand(ev KeyEvent, host Host) {
	if ev.Characters == "" {
		return
	}
	chr := []rune(ev.Characters)[0]

	if m.state.kind == stateReady && (chr == 'i' || chr == 'a' || chr == 'A') {
		m.mode = Insert
		if chr != 'i' {
			motion := "end_of_line"
			if chr == 'a' {
				motion = "right"
			}
			host.SendAction("move", map[string]any{"motion": motion, "dist": 1})
		}
		host.SendAction("mode_change", map[string]any{"mode": "insert"})
		host.SendAction("parse_state", map[string]any{"state": ""})
		return
	}

	if m.state.kind == stateReady && (chr == 'o' || chr == 'O') {
		m.mode = Insert
		if chr == 'o' {
			host.SendAction("move", map[string]any{"motion": "end_of_line", "dist": 1})
			host.SendAction("insert_newline", nil)
		} else {
			host.SendAction("move", map[string]any{"motion": "start_of_line", "dist": 1})
			host.SendAction("insert_newline", nil)
			host.SendAction("move", map[string]any{"motion": "up", "dist": 1})
		}
		host.SendAction("mode_change", map[string]any{"mode": "insert"})
		host.SendAction("parse_state", map[string]any{"state": ""})
		return
	}

	switch m.state.kind {
	case stateReady:
		m.raw += string(chr)
		// A leading "0" is the start-of-line motion, not a count; "0"
		// only joins a count once a nonzero digit has started one.
		if num, ok := digitValue(chr); ok && num > 0 {
			m.state = commandState{kind: stateAwaitMotion, cmdType: MoveCmd, distance: num}
		} else if motion, ok := motionFromChar(chr); ok {
			m.state = commandState{kind: stateDone, done: command{Type: MoveCmd, Motion: motion, Distance: 1}}
		} else if ty, ok := commandTypeFromChar(chr); ok {
			m.state = commandState{kind: stateAwaitMotion, cmdType: ty, distance: 0}
		} else {
			m.state = commandState{kind: stateFailed}
		}
	case stateAwaitMotion:
		m.raw += string(chr)
		if num, ok := digitValue(chr); ok && (num > 0 || m.state.distance > 0) {
			m.state = commandState{kind: stateAwaitMotion, cmdType: m.state.cmdType, distance: m.state.distance*10 + num}
		} else if motion, ok := motionFromChar(chr); ok {
			dist := m.state.distance
			if dist < 1 {
				dist = 1
			}
			m.state = commandState{kind: stateDone, done: command{Type: m.state.cmdType, Motion: motion, Distance: dist}}
		} else {
			m.state = commandState{kind: stateFailed}
		}
	}

	switch m.state.kind {
	case stateDone:
		cmd := m.state.done
		host.SendAction(cmd.Type.String(), map[string]any{"motion": cmd.Motion.String(), "dist": cmd.Distance})
		host.SendAction("parse_state", map[string]any{"state": m.raw})
		m.state = readyState()
		m.raw = ""
	case stateFailed:
		m.logger.Warn().Str("raw", m.raw).Msg("unrecognized command-mode input, resetting to ready")
		m.state = readyState()
		host.SendAction("parse_state", map[string]any{"state": m.raw})
		m.raw = ""
	default:
		host.SendAction("parse_state", map[string]any{"state": m.raw})
	}
}

func digitValue(c rune) (int, bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	return 0, false
}
