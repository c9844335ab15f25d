package model

import "encoding/json"

// Websocket event types pushed to connected clients.
const (
	WSTurnResolved = "turn_resolved"
	WSStateChanged = "state_changed"
)

type WSEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewWSEvent marshals a payload into an event. A payload that cannot be
// marshaled yields a bare event with no data.
func NewWSEvent(eventType string, payload any) *WSEvent {
	data, err := json.Marshal(payload)
	if err != nil {
		return &WSEvent{Type: eventType}
	}
	return &WSEvent{Type: eventType, Data: data}
}
