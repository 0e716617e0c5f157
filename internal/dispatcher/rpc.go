package dispatcher

import "encoding/json"

// rpcMessage is one decoded host request: a method
// selector and its raw parameters, parsed further once the selector is
// known.
type rpcMessage struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

func decodeMessage(msg []byte) (rpcMessage, error) {
	var m rpcMessage
	err := json.Unmarshal(msg, &m)
	return m, err
}

type insertParams struct {
	Chars string `json:"chars"`
}

type viewportChangeParams struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type gestureParams struct {
	Line int             `json:"line"`
	Col  int             `json:"col"`
	Ty   gestureTyParams `json:"ty"`
}

// gestureTyParams mirrors the tagged-union shape of the original
// source's GestureType param (Select{granularity,multi} |
// SelectExtend{granularity} | Drag | Point | Word | Line): a flat
// struct with a required Kind tag and fields that apply to a subset of
// kinds, the idiomatic Go substitute for a Rust enum-with-payload.
type gestureTyParams struct {
	Kind        string `json:"kind"`
	Granularity string `json:"granularity"`
	Multi       bool   `json:"multi"`
}
