package thenvoitest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Mock data factory for SDK response objects. Each Make* builder returns a
// value seeded with the OpenAPI example defaults; override functions adjust
// whatever the test cares about:
//
//	agent := thenvoitest.MakeAgentMe(func(a *thenvoitest.AgentMe) {
//	    a.ID = "agent-123"
//	    a.Name = "TestBot"
//	})
//	resp := thenvoitest.NewResponse(agent, nil)

// AgentMe is the current agent's profile.
type AgentMe struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerUUID   string `json:"owner_uuid"`
	InsertedAt  string `json:"inserted_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Peer is an entity available for interaction in chat rooms (user or agent).
type Peer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	IsExternal  bool   `json:"is_external"`
	IsGlobal    bool   `json:"is_global"`
}

// ChatRoom is a chat room.
type ChatRoom struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TaskID     string `json:"task_id,omitempty"`
	InsertedAt string `json:"inserted_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ChatParticipant is a chat room participant.
type ChatParticipant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// ChatMessage is a chat message.
type ChatMessage struct {
	ID          string         `json:"id"`
	Content     string         `json:"content"`
	ChatRoomID  string         `json:"chat_room_id"`
	SenderID    string         `json:"sender_id"`
	SenderName  string         `json:"sender_name"`
	SenderType  string         `json:"sender_type"`
	MessageType string         `json:"message_type"`
	Metadata    map[string]any `json:"metadata"`
	InsertedAt  string         `json:"inserted_at"`
	UpdatedAt   string         `json:"updated_at"`
}

// ChatEvent is a chat event (tool_call, tool_result, thought, error, task).
type ChatEvent struct {
	ID          string         `json:"id"`
	Content     string         `json:"content"`
	ChatRoomID  string         `json:"chat_room_id"`
	SenderID    string         `json:"sender_id"`
	SenderName  string         `json:"sender_name"`
	SenderType  string         `json:"sender_type"`
	MessageType string         `json:"message_type"`
	Metadata    map[string]any `json:"metadata"`
	InsertedAt  string         `json:"inserted_at"`
	UpdatedAt   string         `json:"updated_at"`
}

// UserProfile is a user's profile.
type UserProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	InsertedAt string `json:"inserted_at"`
	UpdatedAt  string `json:"updated_at"`
}

// OwnedAgent is an agent owned by a user (list_my_agents).
type OwnedAgent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
	IsExternal  bool   `json:"is_external"`
	InsertedAt  string `json:"inserted_at"`
	UpdatedAt   string `json:"updated_at"`
}

// AgentCredentials carries the API key issued on agent registration.
type AgentCredentials struct {
	APIKey string `json:"api_key"`
}

// RegisteredAgent is the register_my_agent response.
type RegisteredAgent struct {
	Agent       OwnedAgent       `json:"agent"`
	Credentials AgentCredentials `json:"credentials"`
}

// DeletedAgent is the delete_my_agent response.
type DeletedAgent struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	ExecutionsDeleted int    `json:"executions_deleted"`
}

// MakeAgentMe builds an AgentMe from the OpenAPI example defaults.
func MakeAgentMe(mods ...func(*AgentMe)) AgentMe {
	a := ExampleAgentMe
	for _, mod := range mods {
		mod(&a)
	}
	return a
}

// MakePeer builds a Peer from the OpenAPI example defaults.
func MakePeer(mods ...func(*Peer)) Peer {
	p := ExamplePeer
	for _, mod := range mods {
		mod(&p)
	}
	return p
}

// MakeChatRoom builds a ChatRoom from the OpenAPI example defaults.
// TaskID is left empty unless overridden.
func MakeChatRoom(mods ...func(*ChatRoom)) ChatRoom {
	r := ExampleChatRoom
	r.TaskID = ""
	for _, mod := range mods {
		mod(&r)
	}
	return r
}

// MakeChatParticipant builds a ChatParticipant with role "member".
// Username and DisplayName stay empty unless overridden so participant
// lookups that key on them see explicit values.
func MakeChatParticipant(mods ...func(*ChatParticipant)) ChatParticipant {
	p := ExampleChatParticipant
	p.Role = "member"
	for _, mod := range mods {
		mod(&p)
	}
	return p
}

// MakeChatMessage builds a ChatMessage from the OpenAPI example defaults.
func MakeChatMessage(mods ...func(*ChatMessage)) ChatMessage {
	m := ExampleChatMessage
	m.Metadata = cloneMap(m.Metadata)
	for _, mod := range mods {
		mod(&m)
	}
	return m
}

// MakeChatEvent builds a ChatEvent with message type "thought".
func MakeChatEvent(mods ...func(*ChatEvent)) ChatEvent {
	e := ExampleChatEvent
	e.Metadata = cloneMap(e.Metadata)
	e.MessageType = "thought"
	for _, mod := range mods {
		mod(&e)
	}
	return e
}

// MakeUserProfile builds a UserProfile from the OpenAPI example defaults.
func MakeUserProfile(mods ...func(*UserProfile)) UserProfile {
	u := ExampleUserProfile
	for _, mod := range mods {
		mod(&u)
	}
	return u
}

// MakeOwnedAgent builds an OwnedAgent from the OpenAPI example defaults.
func MakeOwnedAgent(mods ...func(*OwnedAgent)) OwnedAgent {
	a := ExampleOwnedAgent
	for _, mod := range mods {
		mod(&a)
	}
	return a
}

// MakeRegisteredAgent builds a RegisteredAgent from the OpenAPI example defaults.
func MakeRegisteredAgent(mods ...func(*RegisteredAgent)) RegisteredAgent {
	a := ExampleRegisteredAgent
	for _, mod := range mods {
		mod(&a)
	}
	return a
}

// MakeDeletedAgent builds a DeletedAgent from the OpenAPI example defaults.
func MakeDeletedAgent(mods ...func(*DeletedAgent)) DeletedAgent {
	a := ExampleDeletedAgent
	for _, mod := range mods {
		mod(&a)
	}
	return a
}

// APIResponse is the {data, meta} envelope single-object endpoints return.
type APIResponse struct {
	Data any            `json:"data"`
	Meta map[string]any `json:"meta,omitempty"`
}

// NewResponse wraps data in the API response envelope.
func NewResponse(data any, meta map[string]any) *APIResponse {
	return &APIResponse{Data: data, Meta: meta}
}

// NewListResponse wraps items in the paginated list envelope with
// single-page metadata.
func NewListResponse(items ...any) *ListResponse {
	data := make([]map[string]any, 0, len(items))
	for _, item := range items {
		data = append(data, AsMap(item))
	}
	return &ListResponse{
		Data: data,
		Meta: PageMeta{
			Page:       1,
			PageSize:   DefaultPageSize,
			TotalPages: 1,
			Total:      len(items),
		},
	}
}

// AsMap converts a value to its JSON object form, the way the wire sees it.
func AsMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}

// cloneMap deep-copies a JSON-shaped map so builder overrides never mutate
// the shared example data.
func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// NewID generates a random UUID string.
func NewID() string {
	return uuid.New().String()
}

// NowTimestamp returns the current UTC time in the API's timestamp format.
func NowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
