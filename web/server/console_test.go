package server

import (
	"testing"
	"time"

	"github.com/df07/go-glimpse/pkg/logging"
)

func TestConsoleLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewConsoleLogger(logging.NewTestLogger(t), "render-123", messageChan)

	logger.Infow("Test log message", "width", 16)

	select {
	case msg := <-messageChan:
		if msg.Message != "Test log message" {
			t.Errorf("Expected message 'Test log message', got '%s'", msg.Message)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for console message")
	}
}

func TestConsoleLogger_MultipleMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewConsoleLogger(logging.NewTestLogger(t), "render-456", messageChan)

	messages := []string{"Message 1", "Message 2", "Message 3"}
	for _, msg := range messages {
		logger.Info(msg)
	}

	for i, want := range messages {
		select {
		case msg := <-messageChan:
			if msg.Message != want {
				t.Errorf("Message %d: expected '%s', got '%s'", i, want, msg.Message)
			}
		case <-time.After(200 * time.Millisecond):
			t.Fatalf("Timeout waiting for message %d", i+1)
		}
	}
}

func TestConsoleLogger_Levels(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewConsoleLogger(logging.NewTestLogger(t), "render-789", messageChan)

	logger.Warn("careful")
	logger.Error("broken")

	if msg := <-messageChan; msg.Level != "warn" {
		t.Errorf("Expected level 'warn', got '%s'", msg.Level)
	}
	if msg := <-messageChan; msg.Level != "error" {
		t.Errorf("Expected level 'error', got '%s'", msg.Level)
	}
}

func TestConsoleLogger_FullChannelDoesNotBlock(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewConsoleLogger(logging.NewTestLogger(t), "render-full", messageChan)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			logger.Infof("message %d", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Logging blocked on a full console channel")
	}
	if len(messageChan) != 1 {
		t.Errorf("Expected exactly 1 buffered message, got %d", len(messageChan))
	}
}

func TestConsoleLogger_NamesRender(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewConsoleLogger(logging.NewTestLogger(t), "render-abc", messageChan)

	logger.Info("named")
	if msg := <-messageChan; msg.Logger == "" {
		t.Error("Expected the logger name to include the render ID")
	}
}
