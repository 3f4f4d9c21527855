package thenvoitest

import (
	"encoding/json"
	"fmt"
)

// Phoenix Channels protocol events.
const (
	EventJoin  = "phx_join"
	EventLeave = "phx_leave"
	EventReply = "phx_reply"
	EventClose = "phx_close"
)

// Phoenix reply statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Envelope is a Phoenix Channels V2 wire frame. On the wire it is a JSON
// array of exactly five elements: [join_ref, ref, topic, event, payload].
// JoinRef and Ref are peer-supplied correlation tokens (string or null)
// echoed back unchanged in replies.
type Envelope struct {
	JoinRef *string
	Ref     *string
	Topic   string
	Event   string
	Payload json.RawMessage
}

// ReplyPayload is the payload shape of a phx_reply frame.
type ReplyPayload struct {
	Status   string         `json:"status"`
	Response map[string]any `json:"response"`
}

// MarshalJSON encodes the envelope as the 5-element array form.
func (e Envelope) MarshalJSON() ([]byte, error) {
	payload := e.Payload
	if payload == nil {
		payload = json.RawMessage(`{}`)
	}
	return json.Marshal([5]any{e.JoinRef, e.Ref, e.Topic, e.Event, payload})
}

// UnmarshalJSON decodes the 5-element array form. Anything that is not a
// JSON array of exactly five elements is rejected.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("parse envelope: %w", err)
	}
	if len(parts) != 5 {
		return fmt.Errorf("envelope has %d elements, want 5", len(parts))
	}
	if err := json.Unmarshal(parts[0], &e.JoinRef); err != nil {
		return fmt.Errorf("parse join_ref: %w", err)
	}
	if err := json.Unmarshal(parts[1], &e.Ref); err != nil {
		return fmt.Errorf("parse ref: %w", err)
	}
	if err := json.Unmarshal(parts[2], &e.Topic); err != nil {
		return fmt.Errorf("parse topic: %w", err)
	}
	if err := json.Unmarshal(parts[3], &e.Event); err != nil {
		return fmt.Errorf("parse event: %w", err)
	}
	e.Payload = parts[4]
	return nil
}

// Ref returns a pointer to s, for filling Envelope correlation slots.
func Ref(s string) *string {
	return &s
}
