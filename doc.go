// Package thenvoitest provides shared test support for projects built on the
// Thenvoi chat/agent platform: a fake Phoenix Channels WebSocket server, mock
// data factories seeded with the platform's OpenAPI examples, testify-based
// API client mocks, pagination helpers, skip helpers, and test settings
// loading. Downstream projects use it to write unit and integration tests
// without a live backend.
//
// The centerpiece is the fake Phoenix server:
//
//	server := thenvoitest.NewFakePhoenixServer()
//	if err := server.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Stop()
//
//	// ...client under test connects to server.URL() and joins "test-topic"
//
//	server.SimulateServerEvent("test-topic", "new_message",
//	    map[string]any{"text": "hello"})
//
// Integration tests that need a real backend gate themselves on settings:
//
//	settings := thenvoitest.LoadSettings()
//	thenvoitest.RequireRealBackend(t, settings)
package thenvoitest
