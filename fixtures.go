package thenvoitest

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Pre-configured testify mocks for the platform's two API namespaces.
// NewMockAgentAPI and NewMockHumanAPI register default expectations built
// from the factory, so a test only overrides what it asserts on:
//
//	api := thenvoitest.NewMockAgentAPI()
//	result, err := codeUnderTest(ctx, api)
//	api.AssertCalled(t, "GetAgentMe", mock.Anything)

// MockAgentAPI mocks the agent_api namespace.
type MockAgentAPI struct {
	mock.Mock
}

func (m *MockAgentAPI) GetAgentMe(ctx context.Context) (*APIResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*APIResponse)
	return resp, args.Error(1)
}

func (m *MockAgentAPI) ListAgentChats(ctx context.Context, page, pageSize int) (*ListResponse, error) {
	args := m.Called(ctx, page, pageSize)
	resp, _ := args.Get(0).(*ListResponse)
	return resp, args.Error(1)
}

func (m *MockAgentAPI) ListAgentChatParticipants(ctx context.Context, roomID string) (*ListResponse, error) {
	args := m.Called(ctx, roomID)
	resp, _ := args.Get(0).(*ListResponse)
	return resp, args.Error(1)
}

func (m *MockAgentAPI) CreateAgentChatEvent(ctx context.Context, roomID string, event ChatEvent) (*APIResponse, error) {
	args := m.Called(ctx, roomID, event)
	resp, _ := args.Get(0).(*APIResponse)
	return resp, args.Error(1)
}

func (m *MockAgentAPI) CreateAgentChatMessage(ctx context.Context, roomID string, message ChatMessage) (*APIResponse, error) {
	args := m.Called(ctx, roomID, message)
	resp, _ := args.Get(0).(*APIResponse)
	return resp, args.Error(1)
}

// NewMockAgentAPI creates a MockAgentAPI with default expectations:
// GetAgentMe returns a TestBot profile, ListAgentChats returns two rooms,
// ListAgentChatParticipants returns the TestBot participant, and the create
// calls return factory defaults.
func NewMockAgentAPI() *MockAgentAPI {
	m := &MockAgentAPI{}

	m.On("GetAgentMe", mock.Anything).Return(NewResponse(MakeAgentMe(func(a *AgentMe) {
		a.ID = "agent-123"
		a.Name = "TestBot"
		a.Description = "Test agent"
	}), nil), nil)

	m.On("ListAgentChats", mock.Anything, mock.Anything, mock.Anything).Return(NewListResponse(
		MakeChatRoom(func(r *ChatRoom) { r.ID = "room-1" }),
		MakeChatRoom(func(r *ChatRoom) { r.ID = "room-2" }),
	), nil)

	m.On("ListAgentChatParticipants", mock.Anything, mock.Anything).Return(NewListResponse(
		MakeChatParticipant(func(p *ChatParticipant) {
			p.ID = "agent-123"
			p.Name = "TestBot"
			p.Type = "Agent"
		}),
	), nil)

	m.On("CreateAgentChatEvent", mock.Anything, mock.Anything, mock.Anything).
		Return(NewResponse(MakeChatEvent(), nil), nil)

	m.On("CreateAgentChatMessage", mock.Anything, mock.Anything, mock.Anything).
		Return(NewResponse(MakeChatMessage(), nil), nil)

	return m
}

// MockHumanAPI mocks the human_api (user) namespace.
type MockHumanAPI struct {
	mock.Mock
}

func (m *MockHumanAPI) GetMyProfile(ctx context.Context) (*APIResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*APIResponse)
	return resp, args.Error(1)
}

func (m *MockHumanAPI) ListMyAgents(ctx context.Context) (*ListResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*ListResponse)
	return resp, args.Error(1)
}

func (m *MockHumanAPI) RegisterMyAgent(ctx context.Context, name, description string) (*APIResponse, error) {
	args := m.Called(ctx, name, description)
	resp, _ := args.Get(0).(*APIResponse)
	return resp, args.Error(1)
}

func (m *MockHumanAPI) DeleteMyAgent(ctx context.Context, agentID string) (*APIResponse, error) {
	args := m.Called(ctx, agentID)
	resp, _ := args.Get(0).(*APIResponse)
	return resp, args.Error(1)
}

func (m *MockHumanAPI) ListMyChats(ctx context.Context, page, pageSize int) (*ListResponse, error) {
	args := m.Called(ctx, page, pageSize)
	resp, _ := args.Get(0).(*ListResponse)
	return resp, args.Error(1)
}

func (m *MockHumanAPI) CreateMyChatRoom(ctx context.Context, title string) (*APIResponse, error) {
	args := m.Called(ctx, title)
	resp, _ := args.Get(0).(*APIResponse)
	return resp, args.Error(1)
}

func (m *MockHumanAPI) GetMyChatRoom(ctx context.Context, roomID string) (*APIResponse, error) {
	args := m.Called(ctx, roomID)
	resp, _ := args.Get(0).(*APIResponse)
	return resp, args.Error(1)
}

func (m *MockHumanAPI) ListMyChatParticipants(ctx context.Context, roomID string) (*ListResponse, error) {
	args := m.Called(ctx, roomID)
	resp, _ := args.Get(0).(*ListResponse)
	return resp, args.Error(1)
}

func (m *MockHumanAPI) ListMyPeers(ctx context.Context, page, pageSize int) (*ListResponse, error) {
	args := m.Called(ctx, page, pageSize)
	resp, _ := args.Get(0).(*ListResponse)
	return resp, args.Error(1)
}

// NewMockHumanAPI creates a MockHumanAPI with default expectations built
// from the factory: a user profile, one owned agent, registration and
// deletion responses, one chat room, its participant list, and one peer.
func NewMockHumanAPI() *MockHumanAPI {
	m := &MockHumanAPI{}

	m.On("GetMyProfile", mock.Anything).Return(NewResponse(MakeUserProfile(), nil), nil)

	m.On("ListMyAgents", mock.Anything).Return(NewListResponse(MakeOwnedAgent()), nil)

	m.On("RegisterMyAgent", mock.Anything, mock.Anything, mock.Anything).
		Return(NewResponse(MakeRegisteredAgent(), nil), nil)

	m.On("DeleteMyAgent", mock.Anything, mock.Anything).
		Return(NewResponse(MakeDeletedAgent(), nil), nil)

	m.On("ListMyChats", mock.Anything, mock.Anything, mock.Anything).
		Return(NewListResponse(MakeChatRoom()), nil)

	m.On("CreateMyChatRoom", mock.Anything, mock.Anything).
		Return(NewResponse(MakeChatRoom(), nil), nil)

	m.On("GetMyChatRoom", mock.Anything, mock.Anything).
		Return(NewResponse(MakeChatRoom(), nil), nil)

	m.On("ListMyChatParticipants", mock.Anything, mock.Anything).Return(NewListResponse(
		MakeChatParticipant(func(p *ChatParticipant) {
			p.ID = "user-1"
			p.Name = "Test User"
			p.Type = "User"
			p.Role = "owner"
		}),
	), nil)

	m.On("ListMyPeers", mock.Anything, mock.Anything, mock.Anything).
		Return(NewListResponse(MakePeer()), nil)

	return m
}
