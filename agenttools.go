package thenvoitest

import (
	"context"
	"fmt"
	"sync"
)

// FakeAgentTools is a call-recording fake of the platform's agent tool
// surface, for unit testing adapters. No mocking framework needed; run the
// code under test against it, then assert on the recorded slices.
//
//	tools := thenvoitest.NewFakeAgentTools()
//	adapter.OnMessage(ctx, msg, tools)
//
//	if len(tools.MessagesSent) != 1 {
//	    t.Fatalf("sent %d messages, want 1", len(tools.MessagesSent))
//	}
type FakeAgentTools struct {
	mu sync.Mutex

	// Recorded calls, in order.
	MessagesSent        []RecordedMessage
	EventsSent          []RecordedEvent
	ParticipantsAdded   []RecordedParticipant
	ParticipantsRemoved []RecordedParticipant
	ToolCalls           []RecordedToolCall

	// Canned results. Empty by default.
	Participants []ChatParticipant
	Peers        []Peer
}

// RecordedMessage is a message sent through the fake.
type RecordedMessage struct {
	ID       string
	Content  string
	Mentions []string
}

// RecordedEvent is an event sent through the fake.
type RecordedEvent struct {
	ID          string
	Content     string
	MessageType string
	Metadata    map[string]any
}

// RecordedParticipant is a participant added or removed through the fake.
type RecordedParticipant struct {
	ID   string
	Name string
	Role string
}

// RecordedToolCall is a tool invocation made through the fake.
type RecordedToolCall struct {
	ToolName  string
	Arguments map[string]any
}

// NewFakeAgentTools creates an empty recording fake.
func NewFakeAgentTools() *FakeAgentTools {
	return &FakeAgentTools{}
}

// SendMessage records and returns a message.
func (f *FakeAgentTools) SendMessage(ctx context.Context, content string, mentions []string) (RecordedMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if mentions == nil {
		mentions = []string{}
	}
	msg := RecordedMessage{
		ID:       fmt.Sprintf("msg-%d", len(f.MessagesSent)),
		Content:  content,
		Mentions: mentions,
	}
	f.MessagesSent = append(f.MessagesSent, msg)
	return msg, nil
}

// SendEvent records and returns an event.
func (f *FakeAgentTools) SendEvent(ctx context.Context, content, messageType string, metadata map[string]any) (RecordedEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if metadata == nil {
		metadata = map[string]any{}
	}
	event := RecordedEvent{
		ID:          fmt.Sprintf("evt-%d", len(f.EventsSent)),
		Content:     content,
		MessageType: messageType,
		Metadata:    metadata,
	}
	f.EventsSent = append(f.EventsSent, event)
	return event, nil
}

// AddParticipant records and returns a participant addition.
func (f *FakeAgentTools) AddParticipant(ctx context.Context, name, role string) (RecordedParticipant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if role == "" {
		role = "member"
	}
	p := RecordedParticipant{ID: "p-" + name, Name: name, Role: role}
	f.ParticipantsAdded = append(f.ParticipantsAdded, p)
	return p, nil
}

// RemoveParticipant records and returns a participant removal.
func (f *FakeAgentTools) RemoveParticipant(ctx context.Context, name string) (RecordedParticipant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := RecordedParticipant{ID: "p-" + name, Name: name}
	f.ParticipantsRemoved = append(f.ParticipantsRemoved, p)
	return p, nil
}

// GetParticipants returns the canned participant list.
func (f *FakeAgentTools) GetParticipants(ctx context.Context) ([]ChatParticipant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ChatParticipant(nil), f.Participants...), nil
}

// LookupPeers returns the canned peer list wrapped in a list envelope.
func (f *FakeAgentTools) LookupPeers(ctx context.Context, page, pageSize int) (*ListResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data := make([]map[string]any, 0, len(f.Peers))
	for _, p := range f.Peers {
		data = append(data, AsMap(p))
	}
	return &ListResponse{
		Data: data,
		Meta: PageMeta{Page: page, PageSize: pageSize, TotalPages: 1, Total: len(data)},
	}, nil
}

// CreateChatroom returns a fresh room ID.
func (f *FakeAgentTools) CreateChatroom(ctx context.Context, taskID string) (string, error) {
	return "room-" + NewID(), nil
}

// ExecuteToolCall records a tool invocation and returns an ok result.
func (f *FakeAgentTools) ExecuteToolCall(ctx context.Context, toolName string, arguments map[string]any) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ToolCalls = append(f.ToolCalls, RecordedToolCall{ToolName: toolName, Arguments: arguments})
	return map[string]any{"status": "ok"}, nil
}

// ToolSchemas returns tool schemas for the given provider format.
// Empty by default.
func (f *FakeAgentTools) ToolSchemas(format string) []map[string]any {
	return []map[string]any{}
}
