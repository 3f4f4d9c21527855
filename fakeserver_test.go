package thenvoitest

import (
	"encoding/json"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// freePort grabs an ephemeral port for tests that can't use the default.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func startServer(t *testing.T, opts ...ServerOption) *FakePhoenixServer {
	t.Helper()
	opts = append([]ServerOption{WithPort(freePort(t))}, opts...)
	server := NewFakePhoenixServer(opts...)
	if err := server.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	t.Cleanup(func() {
		if err := server.Stop(); err != nil {
			t.Errorf("Stop() error: %v", err)
		}
	})
	return server
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env Envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read envelope: %v", err)
	}
	return env
}

// expectNoFrame asserts that nothing arrives within a short window. The
// read deadline poisons the connection, so only call this last.
func expectNoFrame(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, data, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected no frame, got %s", data)
	}
}

func sendEnvelope(t *testing.T, conn *websocket.Conn, env Envelope) {
	t.Helper()
	if err := conn.WriteJSON(env); err != nil {
		t.Fatalf("write envelope: %v", err)
	}
}

func replyPayload(t *testing.T, env Envelope) ReplyPayload {
	t.Helper()
	var reply ReplyPayload
	if err := json.Unmarshal(env.Payload, &reply); err != nil {
		t.Fatalf("parse reply payload: %v", err)
	}
	return reply
}

func TestFakePhoenixServer_URL(t *testing.T) {
	server := NewFakePhoenixServer(WithHost("localhost"), WithPort(9999))
	if got, want := server.URL(), "ws://localhost:9999/socket/websocket"; got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestFakePhoenixServer_IsValidTopic(t *testing.T) {
	server := NewFakePhoenixServer()
	for _, topic := range []string{"test-topic", "test-topic-b"} {
		if !server.IsValidTopic(topic) {
			t.Errorf("IsValidTopic(%q) = false, want true", topic)
		}
	}
	if server.IsValidTopic("nonexistent-topic") {
		t.Error(`IsValidTopic("nonexistent-topic") = true, want false`)
	}

	server.AddTopic("room:lobby")
	if !server.IsValidTopic("room:lobby") {
		t.Error("IsValidTopic should see added topic")
	}
}

func TestFakePhoenixServer_StopWithoutStart(t *testing.T) {
	server := NewFakePhoenixServer()
	if err := server.Stop(); err != nil {
		t.Errorf("Stop() without Start() error: %v", err)
	}
}

func TestFakePhoenixServer_JoinValidTopic(t *testing.T) {
	server := startServer(t)
	conn := dial(t, server.URL())

	sendEnvelope(t, conn, Envelope{
		JoinRef: Ref("1"),
		Ref:     Ref("2"),
		Topic:   "test-topic",
		Event:   EventJoin,
	})

	env := readEnvelope(t, conn)
	if env.Event != EventReply {
		t.Fatalf("event = %q, want %q", env.Event, EventReply)
	}
	if env.JoinRef == nil || *env.JoinRef != "1" {
		t.Errorf("join_ref = %v, want echoed %q", env.JoinRef, "1")
	}
	if env.Ref == nil || *env.Ref != "2" {
		t.Errorf("ref = %v, want echoed %q", env.Ref, "2")
	}
	if env.Topic != "test-topic" {
		t.Errorf("topic = %q, want echoed %q", env.Topic, "test-topic")
	}

	reply := replyPayload(t, env)
	if reply.Status != StatusOK {
		t.Errorf("status = %q, want %q", reply.Status, StatusOK)
	}
	if len(reply.Response) != 0 {
		t.Errorf("response = %v, want empty", reply.Response)
	}

	// Exactly one reply per join.
	expectNoFrame(t, conn)
}

func TestFakePhoenixServer_JoinUnknownTopic(t *testing.T) {
	server := startServer(t)
	conn := dial(t, server.URL())

	sendEnvelope(t, conn, Envelope{
		JoinRef: Ref("1"),
		Ref:     Ref("1"),
		Topic:   "nonexistent-topic",
		Event:   EventJoin,
	})

	env := readEnvelope(t, conn)
	if env.Event != EventReply {
		t.Fatalf("event = %q, want %q", env.Event, EventReply)
	}
	reply := replyPayload(t, env)
	if reply.Status != StatusError {
		t.Errorf("status = %q, want %q", reply.Status, StatusError)
	}
	if reason := reply.Response["reason"]; reason != "unmatched topic" {
		t.Errorf("reason = %v, want %q", reason, "unmatched topic")
	}

	// No phx_close follows a rejected join.
	expectNoFrame(t, conn)
}

func TestFakePhoenixServer_LeaveReplyThenClose(t *testing.T) {
	server := startServer(t)
	conn := dial(t, server.URL())

	sendEnvelope(t, conn, Envelope{
		JoinRef: Ref("j1"),
		Ref:     Ref("m1"),
		Topic:   "test-topic",
		Event:   EventJoin,
	})
	readEnvelope(t, conn)

	sendEnvelope(t, conn, Envelope{
		JoinRef: Ref("j1"),
		Ref:     Ref("m2"),
		Topic:   "test-topic",
		Event:   EventLeave,
	})

	reply := readEnvelope(t, conn)
	if reply.Event != EventReply {
		t.Fatalf("first frame event = %q, want %q", reply.Event, EventReply)
	}
	if reply.Ref == nil || *reply.Ref != "m2" {
		t.Errorf("leave reply ref = %v, want echoed %q", reply.Ref, "m2")
	}
	if status := replyPayload(t, reply).Status; status != StatusOK {
		t.Errorf("leave reply status = %q, want %q", status, StatusOK)
	}

	closeFrame := readEnvelope(t, conn)
	if closeFrame.Event != EventClose {
		t.Fatalf("second frame event = %q, want %q", closeFrame.Event, EventClose)
	}
	// The close frame carries the join_ref in the ref slot, not the
	// request's ref.
	if closeFrame.Ref == nil || *closeFrame.Ref != "j1" {
		t.Errorf("close ref = %v, want join_ref %q", closeFrame.Ref, "j1")
	}
	if closeFrame.JoinRef == nil || *closeFrame.JoinRef != "j1" {
		t.Errorf("close join_ref = %v, want %q", closeFrame.JoinRef, "j1")
	}
	var payload map[string]any
	if err := json.Unmarshal(closeFrame.Payload, &payload); err != nil || len(payload) != 0 {
		t.Errorf("close payload = %s, want empty object", closeFrame.Payload)
	}
}

func TestFakePhoenixServer_MalformedFramesIgnored(t *testing.T) {
	server := startServer(t)
	conn := dial(t, server.URL())

	// Wrong length, wrong shape, and an unrecognized inbound event.
	for _, frame := range []string{
		`["1","2","test-topic","phx_join"]`,
		`{"topic":"test-topic","event":"phx_join"}`,
		`"just a string"`,
		`["1","2","test-topic","some_app_event",{}]`,
	} {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
			t.Fatalf("write frame: %v", err)
		}
	}

	// A valid join afterwards gets a reply, and it is the FIRST frame the
	// client sees: none of the frames above produced output.
	sendEnvelope(t, conn, Envelope{
		JoinRef: Ref("1"),
		Ref:     Ref("1"),
		Topic:   "test-topic",
		Event:   EventJoin,
	})

	env := readEnvelope(t, conn)
	if env.Event != EventReply {
		t.Fatalf("event = %q, want %q", env.Event, EventReply)
	}
	if status := replyPayload(t, env).Status; status != StatusOK {
		t.Errorf("status = %q, want %q", status, StatusOK)
	}
}

func TestFakePhoenixServer_SimulateWithoutConnection(t *testing.T) {
	server := startServer(t)

	err := server.SimulateServerEvent("test-topic", "new_message", map[string]any{"text": "hello"})
	if err != nil {
		t.Errorf("SimulateServerEvent() without client error: %v", err)
	}
}

func TestFakePhoenixServer_SimulateServerEvent(t *testing.T) {
	server := startServer(t)
	conn := dial(t, server.URL())

	sendEnvelope(t, conn, Envelope{
		JoinRef: Ref("1"),
		Ref:     Ref("1"),
		Topic:   "test-topic",
		Event:   EventJoin,
	})
	readEnvelope(t, conn)

	err := server.SimulateServerEvent("test-topic", "new_message",
		map[string]any{"text": "hello"}, WithJoinRef("1"))
	if err != nil {
		t.Fatalf("SimulateServerEvent() error: %v", err)
	}

	env := readEnvelope(t, conn)
	if env.Event != "new_message" {
		t.Errorf("event = %q, want %q", env.Event, "new_message")
	}
	if env.Topic != "test-topic" {
		t.Errorf("topic = %q, want %q", env.Topic, "test-topic")
	}
	if env.JoinRef == nil || *env.JoinRef != "1" {
		t.Errorf("join_ref = %v, want %q", env.JoinRef, "1")
	}
	if env.Ref != nil {
		t.Errorf("ref = %v, want null", env.Ref)
	}
	var payload map[string]any
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		t.Fatalf("parse payload: %v", err)
	}
	if payload["text"] != "hello" {
		t.Errorf("payload = %v, want text=hello", payload)
	}
}

func TestFakePhoenixServer_Received(t *testing.T) {
	server := startServer(t)
	conn := dial(t, server.URL())

	sendEnvelope(t, conn, Envelope{
		JoinRef: Ref("1"),
		Ref:     Ref("1"),
		Topic:   "test-topic",
		Event:   EventJoin,
	})
	readEnvelope(t, conn)

	received := server.Received()
	if len(received) != 1 {
		t.Fatalf("Received() len = %d, want 1", len(received))
	}
	if received[0].Event != EventJoin || received[0].Topic != "test-topic" {
		t.Errorf("recorded = %+v, want the join frame", received[0])
	}
}

func TestFakePhoenixServer_OnMessageHook(t *testing.T) {
	seen := make(chan Envelope, 1)
	server := startServer(t, WithOnMessage(func(env Envelope) {
		seen <- env
	}))
	conn := dial(t, server.URL())

	sendEnvelope(t, conn, Envelope{
		JoinRef: Ref("1"),
		Ref:     Ref("1"),
		Topic:   "test-topic",
		Event:   EventJoin,
	})

	select {
	case env := <-seen:
		if env.Event != EventJoin {
			t.Errorf("hook saw event %q, want %q", env.Event, EventJoin)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for OnMessage hook")
	}
}

func TestFakePhoenixServer_SecondConnectionOverwrites(t *testing.T) {
	server := startServer(t)

	first := dial(t, server.URL())
	_ = first
	second := dial(t, server.URL())

	// Give the second upgrade time to land before injecting.
	time.Sleep(100 * time.Millisecond)

	if err := server.SimulateServerEvent("test-topic", "ping", nil); err != nil {
		t.Fatalf("SimulateServerEvent() error: %v", err)
	}

	env := readEnvelope(t, second)
	if env.Event != "ping" {
		t.Errorf("event = %q, want %q", env.Event, "ping")
	}
}

// TestFakePhoenixServer_EndToEnd runs the full client lifecycle against the
// default localhost:8765 binding: join, server push, leave, shutdown.
func TestFakePhoenixServer_EndToEnd(t *testing.T) {
	server := NewFakePhoenixServer()
	if err := server.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if server.URL() != "ws://localhost:"+strconv.Itoa(DefaultPort)+"/socket/websocket" {
		t.Errorf("URL() = %q", server.URL())
	}

	conn := dial(t, server.URL())

	sendEnvelope(t, conn, Envelope{
		JoinRef: Ref("jr"),
		Ref:     Ref("mr"),
		Topic:   "test-topic",
		Event:   EventJoin,
	})
	reply := readEnvelope(t, conn)
	if status := replyPayload(t, reply).Status; status != StatusOK {
		t.Fatalf("join status = %q, want %q", status, StatusOK)
	}

	if err := server.SimulateServerEvent("test-topic", "new_message",
		map[string]any{"text": "hello"}); err != nil {
		t.Fatalf("SimulateServerEvent() error: %v", err)
	}
	push := readEnvelope(t, conn)
	if push.JoinRef != nil || push.Ref != nil {
		t.Errorf("push refs = %v/%v, want null/null", push.JoinRef, push.Ref)
	}
	if push.Event != "new_message" {
		t.Errorf("push event = %q, want %q", push.Event, "new_message")
	}

	sendEnvelope(t, conn, Envelope{
		JoinRef: Ref("jr"),
		Ref:     Ref("mr2"),
		Topic:   "test-topic",
		Event:   EventLeave,
	})
	leaveReply := readEnvelope(t, conn)
	if leaveReply.Event != EventReply {
		t.Errorf("leave reply event = %q, want %q", leaveReply.Event, EventReply)
	}
	closeFrame := readEnvelope(t, conn)
	if closeFrame.Event != EventClose {
		t.Errorf("close event = %q, want %q", closeFrame.Event, EventClose)
	}

	done := make(chan error, 1)
	go func() { done <- server.Stop() }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Stop() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Stop() did not complete")
	}
}
