package main

import "encoding/json"

// rpcMsg carries one engine-initiated callback (content_size,
// new_styles, scroll_to, set_pasteboard, mode_change, parse_state)
// onto the bubbletea message loop.
type rpcMsg struct {
	method string
	params any
}

// invalidateMsg asks the view to redraw lines [start, end).
type invalidateMsg struct {
	start, end int
}

// timerFiredMsg redelivers a payload whose jj-escape timeout elapsed
// without being cancelled.
type timerFiredMsg struct {
	payload any
	token   uint32
}

type request struct {
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

func encode(method string, params any) []byte {
	b, _ := json.Marshal(request{Method: method, Params: params})
	return b
}

func insertMessage(chars string) []byte {
	return encode("insert", map[string]string{"chars": chars})
}

func selectorMessage(selector string) []byte {
	return encode(selector, nil)
}

func viewportMessage(x, y, width, height int) []byte {
	return encode("viewport_change", map[string]int{"x": x, "y": y, "width": width, "height": height})
}

func gestureMessage(line, col int, kind, granularity string, multi bool) []byte {
	return encode("gesture", map[string]any{
		"line": line,
		"col":  col,
		"ty": map[string]any{
			"kind":        kind,
			"granularity": granularity,
			"multi":       multi,
		},
	})
}
