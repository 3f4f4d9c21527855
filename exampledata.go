package thenvoitest

// Default fixture values extracted from the Thenvoi API OpenAPI examples.
// The factory builders start from these, so mock objects round-trip the
// same shapes the documented API returns.

// ExampleAgentMe is the documented AgentMe example (current agent's profile).
var ExampleAgentMe = AgentMe{
	ID:          "550e8400-e29b-41d4-a716-446655440000",
	Name:        "Weather Assistant",
	Description: "Provides weather updates and forecasts using external APIs",
	OwnerUUID:   "7fa85f64-5717-4562-b3fc-2c963f66afa6",
	InsertedAt:  "2025-01-15T10:30:00Z",
	UpdatedAt:   "2025-01-15T14:45:00Z",
}

// ExamplePeer is the documented Peer example (an entity available for
// interaction in chat rooms).
var ExamplePeer = Peer{
	ID:          "3fa85f64-5717-4562-b3fc-2c963f66afa6",
	Name:        "Data Analyst",
	Type:        "Agent",
	Description: "Analyzes datasets and generates reports",
	IsExternal:  false,
	IsGlobal:    true,
}

// ExampleChatRoom is the documented ChatRoom example.
var ExampleChatRoom = ChatRoom{
	ID:         "daca00d0-eb6b-4db1-8201-c46015c93d04",
	Title:      "Q4 Sales Analysis Discussion",
	TaskID:     "550e8400-e29b-41d4-a716-446655440000",
	InsertedAt: "2025-01-15T10:30:00Z",
	UpdatedAt:  "2025-01-15T14:45:00Z",
}

// ExampleChatParticipant is the documented ChatParticipant example.
var ExampleChatParticipant = ChatParticipant{
	ID:     "3fa85f64-5717-4562-b3fc-2c963f66afa6",
	Name:   "Data Analyst",
	Type:   "Agent",
	Status: "active",
}

// ExampleChatMessage is the documented ChatMessage example.
var ExampleChatMessage = ChatMessage{
	ID:          "a1b2c3d4-e5f6-4a5b-9c8d-e7f8a9b0c1d2",
	Content:     "@DataAnalyst please analyze the Q4 sales data",
	ChatRoomID:  "daca00d0-eb6b-4db1-8201-c46015c93d04",
	SenderID:    "550e8400-e29b-41d4-a716-446655440000",
	SenderName:  "John Smith",
	SenderType:  "User",
	MessageType: "text",
	Metadata: map[string]any{
		"mentions": []any{
			map[string]any{"id": "uuid", "username": "DataAnalyst"},
		},
	},
	InsertedAt: "2025-01-15T10:30:00Z",
	UpdatedAt:  "2025-01-15T10:30:00Z",
}

// ExampleChatEvent is the documented ChatEvent example (tool_call,
// tool_result, thought, error, or task).
var ExampleChatEvent = ChatEvent{
	ID:         "e1f2a3b4-c5d6-4e7f-8a9b-0c1d2e3f4a5b",
	Content:    "Calling send_direct_message_service",
	ChatRoomID: "daca00d0-eb6b-4db1-8201-c46015c93d04",
	SenderID:   "550e8400-e29b-41d4-a716-446655440000",
	SenderName: "Weather Assistant",
	SenderType: "Agent",
	Metadata: map[string]any{
		"id":   "chatcmpl-tool-abc123",
		"type": "function",
		"function": map[string]any{
			"name": "send_direct_message_service",
			"arguments": map[string]any{
				"message":    "Hello!",
				"recipients": []any{},
			},
		},
	},
	InsertedAt: "2025-01-15T10:30:00Z",
	UpdatedAt:  "2025-01-15T10:30:00Z",
}

// ExampleUserProfile is the documented UserProfile example.
var ExampleUserProfile = UserProfile{
	ID:         "7fa85f64-5717-4562-b3fc-2c963f66afa6",
	Name:       "Test User",
	Email:      "test@example.com",
	InsertedAt: "2025-01-15T10:30:00Z",
	UpdatedAt:  "2025-01-15T14:45:00Z",
}

// ExampleOwnedAgent is the documented OwnedAgent example (list_my_agents).
var ExampleOwnedAgent = OwnedAgent{
	ID:          "550e8400-e29b-41d4-a716-446655440000",
	Name:        "Weather Assistant",
	Description: "Provides weather updates and forecasts using external APIs",
	OwnerID:     "7fa85f64-5717-4562-b3fc-2c963f66afa6",
	IsExternal:  true,
	InsertedAt:  "2025-01-15T10:30:00Z",
	UpdatedAt:   "2025-01-15T14:45:00Z",
}

// ExampleRegisteredAgent is the documented register_my_agent response.
// The API key is returned only once by the real API.
var ExampleRegisteredAgent = RegisteredAgent{
	Agent: OwnedAgent{
		ID:          "660e8400-e29b-41d4-a716-446655440001",
		Name:        "SDK Test Agent",
		Description: "Agent created by SDK integration tests",
		OwnerID:     "7fa85f64-5717-4562-b3fc-2c963f66afa6",
		IsExternal:  true,
		InsertedAt:  "2025-01-15T10:30:00Z",
		UpdatedAt:   "2025-01-15T10:30:00Z",
	},
	Credentials: AgentCredentials{
		APIKey: "thnv_1234567890_TestApiKeyForUnitTests",
	},
}

// ExampleDeletedAgent is the documented delete_my_agent response.
var ExampleDeletedAgent = DeletedAgent{
	ID:          "550e8400-e29b-41d4-a716-446655440000",
	Name:        "Weather Assistant",
	Description: "Provides weather updates and forecasts using external APIs",
}

// ChatEventMessageTypes are the valid ChatEvent message_type values.
var ChatEventMessageTypes = []string{"tool_call", "tool_result", "thought", "error", "task"}

// ParticipantRoles are the valid participant role values.
var ParticipantRoles = []string{"owner", "admin", "member"}
