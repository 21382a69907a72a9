package server

import (
	"testing"
	"time"

	"gridworld/pkg/api"
)

func newForwardingClient() *Client {
	return &Client{
		Send: make(chan api.Frame, 1),
		done: make(chan struct{}),
		ID:   "test-client",
	}
}

func TestForwardFrames_StopsWhenWriterDies(t *testing.T) {
	c := newForwardingClient()
	frames := make(chan api.Frame, 4)

	finished := make(chan struct{})
	go func() {
		c.forwardFrames(frames)
		close(finished)
	}()

	// 1. Обычная перекачка кадра
	frames <- api.Frame{Type: "INIT"}
	select {
	case f := <-c.Send:
		if f.Type != "INIT" {
			t.Errorf("Expected INIT frame, got %s", f.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Frame was not forwarded")
	}

	// 2. Забиваем Send до отказа (клиента никто не читает) и шлем еще
	frames <- api.Frame{Type: "UPDATE"}
	frames <- api.Frame{Type: "UPDATE"}

	// 3. writePump умер - перекачка обязана завершиться, а не висеть
	// навсегда на полном канале
	close(c.done)
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("forwardFrames leaked after the writer died")
	}
}

func TestForwardFrames_ClosesSendOnHubClose(t *testing.T) {
	c := newForwardingClient()
	frames := make(chan api.Frame)

	finished := make(chan struct{})
	go func() {
		c.forwardFrames(frames)
		close(finished)
	}()

	// Unregister в хабе закрывает личный канал - перекачка завершается
	// и закрывает Send, чтобы writePump отправил CloseMessage
	close(frames)
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("forwardFrames did not stop after the hub channel closed")
	}

	if _, open := <-c.Send; open {
		t.Error("Expected Send to be closed after forwarding stopped")
	}
}
