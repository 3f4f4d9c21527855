package thenvoitest

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// Defaults for the fake Phoenix server.
const (
	DefaultHost = "localhost"
	DefaultPort = 8765

	socketPath = "/socket/websocket"
)

// FakePhoenixServer simulates a Phoenix Channels server for testing
// WebSocket clients. It accepts one connection at a time, answers
// phx_join/phx_leave with protocol-correct replies, validates topics
// against a fixed allow-list, and lets tests inject server-originated
// events out-of-band via SimulateServerEvent.
//
// The fake prioritizes not crashing the test harness over surfacing
// protocol errors: malformed frames are dropped and receive-loop errors
// end the loop quietly.
//
//	server := NewFakePhoenixServer()
//	if err := server.Start(); err != nil {
//	    t.Fatal(err)
//	}
//	defer server.Stop()
type FakePhoenixServer struct {
	host   string
	port   int
	logger *log.Logger

	upgrader websocket.Upgrader

	mu       sync.Mutex // protects conn writes, topics, received
	topics   map[string]struct{}
	conn     *websocket.Conn
	received []Envelope
	onMsg    func(Envelope)

	httpServer *http.Server
}

// ServerOption configures a FakePhoenixServer.
type ServerOption func(*FakePhoenixServer)

// WithHost sets the bind host (default "localhost").
func WithHost(host string) ServerOption {
	return func(s *FakePhoenixServer) {
		s.host = host
	}
}

// WithPort sets the bind port (default 8765).
func WithPort(port int) ServerOption {
	return func(s *FakePhoenixServer) {
		s.port = port
	}
}

// WithTopics replaces the default topic allow-list.
func WithTopics(topics ...string) ServerOption {
	return func(s *FakePhoenixServer) {
		s.topics = make(map[string]struct{}, len(topics))
		for _, t := range topics {
			s.topics[t] = struct{}{}
		}
	}
}

// WithOnMessage registers a callback invoked for every well-formed inbound
// envelope, after the server's own dispatch. Useful for scripting custom
// server behavior in tests.
func WithOnMessage(fn func(Envelope)) ServerOption {
	return func(s *FakePhoenixServer) {
		s.onMsg = fn
	}
}

// WithLogger sets a logger for receive-loop diagnostics. By default all
// output is discarded; the fake degrades silently.
func WithLogger(logger *log.Logger) ServerOption {
	return func(s *FakePhoenixServer) {
		s.logger = logger
	}
}

// NewFakePhoenixServer creates a fake Phoenix server bound to
// localhost:8765 with topics "test-topic" and "test-topic-b" joinable.
// The server does not listen until Start is called.
func NewFakePhoenixServer(opts ...ServerOption) *FakePhoenixServer {
	s := &FakePhoenixServer{
		host:   DefaultHost,
		port:   DefaultPort,
		logger: log.New(io.Discard, "", 0),
		topics: map[string]struct{}{
			"test-topic":   {},
			"test-topic-b": {},
		},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the WebSocket URL clients should dial.
func (s *FakePhoenixServer) URL() string {
	return fmt.Sprintf("ws://%s:%d%s", s.host, s.port, socketPath)
}

// IsValidTopic reports whether a topic is joinable. Exact match, no wildcards.
func (s *FakePhoenixServer) IsValidTopic(topic string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.topics[topic]
	return ok
}

// AddTopic adds a topic to the allow-list.
func (s *FakePhoenixServer) AddTopic(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics[topic] = struct{}{}
}

// Start binds the listening socket and begins accepting connections.
// It returns once the listener is ready, so a client may dial immediately.
// Calling Start twice is not supported.
func (s *FakePhoenixServer) Start() error {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}

	router := mux.NewRouter()
	router.HandleFunc(socketPath, s.handleUpgrade)

	s.httpServer = &http.Server{Handler: router}
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Printf("fake phoenix server: serve: %v", err)
		}
	}()
	return nil
}

// Stop closes the listener and any active connection, blocking until
// resources are released. Safe to call when Start was never called.
func (s *FakePhoenixServer) Stop() error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Close()
}

// Received returns a copy of all well-formed envelopes received so far.
func (s *FakePhoenixServer) Received() []Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Envelope, len(s.received))
	copy(cp, s.received)
	return cp
}

// SimulateServerEvent sends a server-originated event to the connected
// client: [join_ref, null, topic, event, payload]. If no client is
// connected this is a silent no-op, so tests can call it unconditionally.
func (s *FakePhoenixServer) SimulateServerEvent(topic, event string, payload any, opts ...EventOption) error {
	o := eventDefaults()
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := marshalPayload(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	s.sendToClient(Envelope{
		JoinRef: o.joinRef,
		Topic:   topic,
		Event:   event,
		Payload: raw,
	})
	return nil
}

// handleUpgrade accepts a WebSocket connection and runs its receive loop.
// The stored connection reference is overwritten by a later connection and
// left stale when the peer disconnects, matching the single-peer model.
func (s *FakePhoenixServer) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("fake phoenix server: upgrade: %v", err)
		return
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			// Transport errors end the loop quietly.
			s.logger.Printf("fake phoenix server: read loop ended: %v", err)
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			// Malformed frames are dropped without a reply.
			s.logger.Printf("fake phoenix server: dropped frame: %v", err)
			continue
		}

		s.mu.Lock()
		s.received = append(s.received, env)
		onMsg := s.onMsg
		s.mu.Unlock()

		s.handleMessage(env)
		if onMsg != nil {
			onMsg(env)
		}
	}
}

// handleMessage dispatches an inbound envelope.
//
// phx_join gets exactly one phx_reply, ok for allow-listed topics and
// "unmatched topic" otherwise. phx_leave gets an ok phx_reply followed by a
// phx_close whose ref slot carries the join_ref, not the request's ref;
// Phoenix closes channels keyed by join_ref and clients depend on the quirk.
// Every other event is assumed to be an application push that only travels
// server-to-client, so inbound it gets no reply.
func (s *FakePhoenixServer) handleMessage(env Envelope) {
	switch env.Event {
	case EventJoin:
		reply := ReplyPayload{Status: StatusOK, Response: map[string]any{}}
		if !s.IsValidTopic(env.Topic) {
			reply = ReplyPayload{
				Status:   StatusError,
				Response: map[string]any{"reason": "unmatched topic"},
			}
		}
		raw, _ := json.Marshal(reply)
		s.sendToClient(Envelope{
			JoinRef: env.JoinRef,
			Ref:     env.Ref,
			Topic:   env.Topic,
			Event:   EventReply,
			Payload: raw,
		})

	case EventLeave:
		raw, _ := json.Marshal(ReplyPayload{Status: StatusOK, Response: map[string]any{}})
		s.sendToClient(Envelope{
			JoinRef: env.JoinRef,
			Ref:     env.Ref,
			Topic:   env.Topic,
			Event:   EventReply,
			Payload: raw,
		})
		s.sendToClient(Envelope{
			JoinRef: env.JoinRef,
			Ref:     env.JoinRef,
			Topic:   env.Topic,
			Event:   EventClose,
		})
	}
}

// sendToClient writes an envelope to the current connection, if any.
func (s *FakePhoenixServer) sendToClient(env Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return
	}
	data, err := json.Marshal(env)
	if err != nil {
		s.logger.Printf("fake phoenix server: marshal frame: %v", err)
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Printf("fake phoenix server: write frame: %v", err)
	}
}

// marshalPayload converts an arbitrary payload value to raw JSON,
// defaulting to an empty object.
func marshalPayload(payload any) (json.RawMessage, error) {
	if payload == nil {
		return json.RawMessage(`{}`), nil
	}
	if raw, ok := payload.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(payload)
}

// EventOption configures SimulateServerEvent.
type EventOption func(*eventOptions)

type eventOptions struct {
	joinRef *string
}

func eventDefaults() eventOptions {
	return eventOptions{}
}

// WithJoinRef sets the join_ref slot of the injected envelope. Phoenix
// clients route pushes to a joined channel by join_ref, so tests exercising
// that path supply the ref the client joined with.
func WithJoinRef(ref string) EventOption {
	return func(o *eventOptions) {
		o.joinRef = &ref
	}
}
