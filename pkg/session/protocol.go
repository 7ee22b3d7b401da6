package session

import (
	"encoding/json"
	"fmt"

	"github.com/spearit/dashboard/internal/errors"
	"github.com/spearit/dashboard/pkg/vdom"
)

// Message types on the wire.
const (
	// Client to server.
	MsgEvent = "event"
	MsgFrame = "frame"

	// Server to client.
	MsgRender = "render"
	MsgRAF    = "raf"
	MsgError  = "error"
)

// ClientMessage is a JSON text frame sent by the thin client.
type ClientMessage struct {
	T     string `json:"t"`
	HID   string `json:"hid,omitempty"`
	Type  string `json:"type,omitempty"`
	Value string `json:"value,omitempty"`

	// Epoch is the handler layout the event was produced against.
	Epoch uint64 `json:"epoch,omitempty"`
}

// ServerMessage is a JSON text frame sent to the thin client.
type ServerMessage struct {
	T       string `json:"t"`
	HTML    string `json:"html,omitempty"`
	Title   string `json:"title,omitempty"`
	Epoch   uint64 `json:"epoch,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// DecodeClientMessage parses and validates a client frame.
func DecodeClientMessage(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, errors.New(errors.CodeMalformedFrame).Wrap(err)
	}

	switch msg.T {
	case MsgFrame:
		return &msg, nil
	case MsgEvent:
		if msg.HID == "" {
			return nil, errors.New(errors.CodeMalformedFrame).WithDetail("event without hid")
		}
		if !vdom.IsEventName(msg.Type) {
			return nil, errors.New(errors.CodeMalformedFrame).
				WithDetailf("unsupported event type %q", msg.Type)
		}
		return &msg, nil
	default:
		return nil, errors.New(errors.CodeMalformedFrame).
			WithDetailf("unknown message type %q", msg.T)
	}
}

// Encode returns the JSON encoding of m.
func (m ServerMessage) Encode() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s message: %w", m.T, err)
	}
	return data, nil
}

// errorMessage builds an error frame from a coded error.
func errorMessage(err *errors.DashError) ServerMessage {
	msg := err.Message
	if err.Detail != "" {
		msg += ": " + err.Detail
	}
	return ServerMessage{T: MsgError, Code: err.Code, Message: msg}
}
