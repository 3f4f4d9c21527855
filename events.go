package thenvoitest

// Event wrappers pairing a room ID with a streaming payload. Handlers under
// test receive these; the Make* factories below build them with sensible
// defaults so a test only spells out what it cares about:
//
//	event := thenvoitest.MakeMessageEvent(func(e *thenvoitest.MessageEvent) {
//	    e.Payload.Content = "@TestBot hello"
//	})

const eventTimestamp = "2024-01-01T00:00:00Z"

// MessageEvent wraps a message_created payload.
type MessageEvent struct {
	RoomID  string
	Payload MessageCreatedPayload
}

// RoomAddedEvent wraps a room_added payload.
type RoomAddedEvent struct {
	RoomID  string
	Payload RoomAddedPayload
}

// RoomRemovedEvent wraps a room_removed payload.
type RoomRemovedEvent struct {
	RoomID  string
	Payload RoomRemovedPayload
}

// ParticipantAddedEvent wraps a participant_added payload.
type ParticipantAddedEvent struct {
	RoomID  string
	Payload ParticipantAddedPayload
}

// ParticipantRemovedEvent wraps a participant_removed payload.
type ParticipantRemovedEvent struct {
	RoomID  string
	Payload ParticipantRemovedPayload
}

// MakeMessageEvent creates a MessageEvent with default fields, applying any
// override functions on top.
func MakeMessageEvent(mods ...func(*MessageEvent)) MessageEvent {
	e := MessageEvent{
		RoomID: "room-123",
		Payload: MessageCreatedPayload{
			ID:          "msg-123",
			Content:     "Test message",
			MessageType: "text",
			Metadata:    MessageMetadata{Mentions: []Mention{}, Status: "sent"},
			SenderID:    "user-456",
			SenderType:  "User",
			ChatRoomID:  "room-123",
			InsertedAt:  eventTimestamp,
			UpdatedAt:   eventTimestamp,
		},
	}
	for _, mod := range mods {
		mod(&e)
	}
	return e
}

// MakeRoomAddedEvent creates a RoomAddedEvent with default fields.
func MakeRoomAddedEvent(mods ...func(*RoomAddedEvent)) RoomAddedEvent {
	e := RoomAddedEvent{
		RoomID: "room-123",
		Payload: RoomAddedPayload{
			ID:              "room-123",
			Owner:           RoomOwner{ID: "user-1", Name: "Test User", Type: "User"},
			Status:          "active",
			Type:            "direct",
			Title:           "Test Room",
			CreatedAt:       eventTimestamp,
			ParticipantRole: "member",
		},
	}
	for _, mod := range mods {
		mod(&e)
	}
	return e
}

// MakeRoomRemovedEvent creates a RoomRemovedEvent with default fields.
func MakeRoomRemovedEvent(mods ...func(*RoomRemovedEvent)) RoomRemovedEvent {
	e := RoomRemovedEvent{
		RoomID: "room-123",
		Payload: RoomRemovedPayload{
			ID:        "room-123",
			Status:    "removed",
			Type:      "direct",
			Title:     "Test Room",
			RemovedAt: eventTimestamp,
		},
	}
	for _, mod := range mods {
		mod(&e)
	}
	return e
}

// MakeParticipantAddedEvent creates a ParticipantAddedEvent with default fields.
func MakeParticipantAddedEvent(mods ...func(*ParticipantAddedEvent)) ParticipantAddedEvent {
	e := ParticipantAddedEvent{
		RoomID: "room-123",
		Payload: ParticipantAddedPayload{
			ID:   "user-456",
			Name: "Test User",
			Type: "User",
		},
	}
	for _, mod := range mods {
		mod(&e)
	}
	return e
}

// MakeParticipantRemovedEvent creates a ParticipantRemovedEvent with default fields.
func MakeParticipantRemovedEvent(mods ...func(*ParticipantRemovedEvent)) ParticipantRemovedEvent {
	e := ParticipantRemovedEvent{
		RoomID:  "room-123",
		Payload: ParticipantRemovedPayload{ID: "user-456"},
	}
	for _, mod := range mods {
		mod(&e)
	}
	return e
}
