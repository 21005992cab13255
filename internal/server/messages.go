package server

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/algoviz/visualizer"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	// Client -> Server
	TypeRun  MessageType = "run"  // Start an algorithm on the given panel state
	TypeStop MessageType = "stop" // Cancel the running algorithm
	TypePing MessageType = "ping" // Keep-alive

	// Server -> Client
	TypeFrame    MessageType = "frame"    // One visualizer.Event
	TypeComplete MessageType = "complete" // Run finished
	TypeError    MessageType = "error"    // Error message
	TypePong     MessageType = "pong"
)

// Message is the base WebSocket message structure
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EdgePayload is one directed edge of the graph panel.
type EdgePayload struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// GraphPayload is the graph panel state.
type GraphPayload struct {
	Nodes    []string      `json:"nodes"`
	Edges    []EdgePayload `json:"edges"`
	Start    string        `json:"start"`
	End      string        `json:"end"`
	Strategy string        `json:"strategy,omitempty"` // "heap" (default) or "linear"
}

// RunPayload sent by client to start a run. Panel selects which of Array,
// Graph or Tree is read.
type RunPayload struct {
	Panel     visualizer.Panel `json:"panel"`
	Algorithm string           `json:"algorithm,omitempty"` // sort name or "bfs"/"dfs"
	SpeedMS   *int             `json:"speed_ms,omitempty"`
	Array     []int            `json:"array,omitempty"`
	Graph     *GraphPayload    `json:"graph,omitempty"`
	Tree      []int            `json:"tree,omitempty"`
}

// CompletePayload sent when a run is done
type CompletePayload struct {
	Panel  visualizer.Panel `json:"panel"`
	Frames int              `json:"frames"`
}

// ErrorPayload for error messages
type ErrorPayload struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error codes of ErrorPayload.
const (
	CodeBusy       = "busy"
	CodeBadRequest = "bad_request"
	CodeRunFailed  = "run_failed"
	CodeCancelled  = "cancelled"
)

// Helper functions to create messages

func NewFrameMessage(ev visualizer.Event) Message {
	payloadBytes, _ := json.Marshal(ev)
	return Message{Type: TypeFrame, Payload: payloadBytes}
}

func NewCompleteMessage(panel visualizer.Panel, frames int) Message {
	payloadBytes, _ := json.Marshal(CompletePayload{Panel: panel, Frames: frames})
	return Message{Type: TypeComplete, Payload: payloadBytes}
}

func NewErrorMessage(code, message string, err error) Message {
	errMsg := message
	if err != nil {
		errMsg = fmt.Sprintf("%s: %v", message, err)
	}
	payloadBytes, _ := json.Marshal(ErrorPayload{Message: errMsg, Code: code})
	return Message{Type: TypeError, Payload: payloadBytes}
}

// ParseRunPayload extracts the run payload from a message
func ParseRunPayload(msg Message) (*RunPayload, error) {
	var payload RunPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse run payload: %w", err)
	}
	return &payload, nil
}
