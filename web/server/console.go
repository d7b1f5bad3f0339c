package server

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/df07/go-glimpse/pkg/logging"
)

// ConsoleMessage is a log line forwarded to a render's event stream
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug", "info", "warn", "error"
	Logger    string    `json:"logger"`
}

// NewConsoleLogger returns a child of base that also copies each entry to consoleChan.
// Entries are dropped rather than blocking when the channel is full.
func NewConsoleLogger(base logging.Logger, renderID string, consoleChan chan<- ConsoleMessage) logging.Logger {
	forward := func(entry zapcore.Entry) error {
		select {
		case consoleChan <- ConsoleMessage{
			Message:   entry.Message,
			Timestamp: entry.Time,
			Level:     entry.Level.String(),
			Logger:    entry.LoggerName,
		}:
		default:
		}
		return nil
	}
	return base.Desugar().WithOptions(zap.Hooks(forward)).Sugar().Named(renderID)
}
