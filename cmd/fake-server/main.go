// Command fake-server runs the fake Phoenix server standalone, for manually
// exercising WebSocket clients outside the test suite. Frames are logged to
// the console as they arrive.
//
//	fake-server -port 8765 -topic test-topic -topic room:lobby
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"

	thenvoitest "github.com/thenvoi/go-testing"
)

type topicList []string

func (t *topicList) String() string {
	return strings.Join(*t, ",")
}

func (t *topicList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func main() {
	var (
		host   = flag.String("host", thenvoitest.DefaultHost, "bind host")
		port   = flag.Int("port", thenvoitest.DefaultPort, "bind port")
		topics topicList
	)
	flag.Var(&topics, "topic", "joinable topic (repeatable; defaults to test-topic, test-topic-b)")
	flag.Parse()

	eventColor := color.New(color.FgCyan).SprintFunc()
	topicColor := color.New(color.FgYellow).SprintFunc()

	opts := []thenvoitest.ServerOption{
		thenvoitest.WithHost(*host),
		thenvoitest.WithPort(*port),
		thenvoitest.WithOnMessage(func(env thenvoitest.Envelope) {
			payload, _ := json.Marshal(env.Payload)
			log.Printf("recv %s %s %s", topicColor(env.Topic), eventColor(env.Event), payload)
		}),
	}
	if len(topics) > 0 {
		opts = append(opts, thenvoitest.WithTopics(topics...))
	}

	server := thenvoitest.NewFakePhoenixServer(opts...)
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}

	color.Green("fake phoenix server listening at %s", server.URL())
	if len(topics) == 0 {
		topics = topicList{"test-topic", "test-topic-b"}
	}
	fmt.Printf("joinable topics: %s\n", topicColor(topics.String()))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	if err := server.Stop(); err != nil {
		log.Fatal(err)
	}
	color.Green("stopped")
}
