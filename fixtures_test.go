package thenvoitest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMockAgentAPI_Defaults(t *testing.T) {
	api := NewMockAgentAPI()
	ctx := context.Background()

	resp, err := api.GetAgentMe(ctx)
	require.NoError(t, err)
	agent, ok := resp.Data.(AgentMe)
	require.True(t, ok)
	assert.Equal(t, "agent-123", agent.ID)
	assert.Equal(t, "TestBot", agent.Name)

	chats, err := api.ListAgentChats(ctx, 1, DefaultPageSize)
	require.NoError(t, err)
	require.Len(t, chats.Data, 2)
	assert.Equal(t, "room-1", chats.Data[0]["id"])
	assert.Equal(t, "room-2", chats.Data[1]["id"])

	participants, err := api.ListAgentChatParticipants(ctx, "room-1")
	require.NoError(t, err)
	require.Len(t, participants.Data, 1)
	assert.Equal(t, "TestBot", participants.Data[0]["name"])

	api.AssertCalled(t, "GetAgentMe", mock.Anything)
}

func TestMockAgentAPI_CreateCalls(t *testing.T) {
	api := NewMockAgentAPI()
	ctx := context.Background()

	resp, err := api.CreateAgentChatMessage(ctx, "room-1", MakeChatMessage())
	require.NoError(t, err)
	msg, ok := resp.Data.(ChatMessage)
	require.True(t, ok)
	assert.Equal(t, ExampleChatMessage.ID, msg.ID)

	resp, err = api.CreateAgentChatEvent(ctx, "room-1", MakeChatEvent())
	require.NoError(t, err)
	event, ok := resp.Data.(ChatEvent)
	require.True(t, ok)
	assert.Equal(t, "thought", event.MessageType)

	api.AssertNumberOfCalls(t, "CreateAgentChatMessage", 1)
}

func TestMockHumanAPI_Defaults(t *testing.T) {
	api := NewMockHumanAPI()
	ctx := context.Background()

	profile, err := api.GetMyProfile(ctx)
	require.NoError(t, err)
	user, ok := profile.Data.(UserProfile)
	require.True(t, ok)
	assert.Equal(t, "test@example.com", user.Email)

	agents, err := api.ListMyAgents(ctx)
	require.NoError(t, err)
	require.Len(t, agents.Data, 1)
	assert.Equal(t, ExampleOwnedAgent.ID, agents.Data[0]["id"])

	registered, err := api.RegisterMyAgent(ctx, "SDK Test Agent", "created by tests")
	require.NoError(t, err)
	reg, ok := registered.Data.(RegisteredAgent)
	require.True(t, ok)
	assert.NotEmpty(t, reg.Credentials.APIKey)

	deleted, err := api.DeleteMyAgent(ctx, reg.Agent.ID)
	require.NoError(t, err)
	_, ok = deleted.Data.(DeletedAgent)
	assert.True(t, ok)

	peers, err := api.ListMyPeers(ctx, 1, DefaultPageSize)
	require.NoError(t, err)
	require.Len(t, peers.Data, 1)
	assert.Equal(t, "Data Analyst", peers.Data[0]["name"])
}

func TestMockHumanAPI_ChatRooms(t *testing.T) {
	api := NewMockHumanAPI()
	ctx := context.Background()

	created, err := api.CreateMyChatRoom(ctx, "New Room")
	require.NoError(t, err)
	room, ok := created.Data.(ChatRoom)
	require.True(t, ok)

	fetched, err := api.GetMyChatRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Data, fetched.Data)

	participants, err := api.ListMyChatParticipants(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, participants.Data, 1)
	assert.Equal(t, "owner", participants.Data[0]["role"])
}

// Overriding a default for one test: build a bare mock and register only
// what the test needs.
func TestMockAgentAPI_CustomExpectation(t *testing.T) {
	api := &MockAgentAPI{}
	api.On("GetAgentMe", mock.Anything).Return(nil, assert.AnError)

	_, err := api.GetAgentMe(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
