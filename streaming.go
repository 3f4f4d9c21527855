package thenvoitest

// WebSocket streaming payload types for Thenvoi platform events. These
// mirror the shapes the platform pushes over Phoenix Channels, with JSON
// tags matching the wire names, so tests can build and assert on event
// payloads without hand-rolled maps.

// Mention is a mention object within message metadata.
type Mention struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// MessageMetadata is the metadata within a message_created payload.
type MessageMetadata struct {
	Mentions []Mention `json:"mentions"`
	Status   string    `json:"status"`
}

// MessageCreatedPayload is the payload for message_created events.
type MessageCreatedPayload struct {
	ID          string          `json:"id"`
	Content     string          `json:"content"`
	MessageType string          `json:"message_type"`
	Metadata    MessageMetadata `json:"metadata"`
	SenderID    string          `json:"sender_id"`
	SenderType  string          `json:"sender_type"`
	ChatRoomID  string          `json:"chat_room_id"`
	ThreadID    string          `json:"thread_id,omitempty"`
	InsertedAt  string          `json:"inserted_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// RoomOwner is the owner object within a room_added payload.
type RoomOwner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// RoomAddedPayload is the payload for room_added events.
type RoomAddedPayload struct {
	ID              string    `json:"id"`
	Owner           RoomOwner `json:"owner"`
	Status          string    `json:"status"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	CreatedAt       string    `json:"created_at"`
	ParticipantRole string    `json:"participant_role"`
}

// RoomRemovedPayload is the payload for room_removed events.
type RoomRemovedPayload struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	RemovedAt string `json:"removed_at"`
}

// ParticipantAddedPayload is the payload for participant_added events.
type ParticipantAddedPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ParticipantRemovedPayload is the payload for participant_removed events.
type ParticipantRemovedPayload struct {
	ID string `json:"id"`
}
