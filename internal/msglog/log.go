// Package msglog keeps the player-facing message history.
package msglog

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/Just-a-Unity-Dev/aeros/internal/logger"
)

// DefaultLimit is the retention bound used when none is configured.
const DefaultLimit = 100

// Message is a single log line.
type Message struct {
	Text  string
	Color tcell.Color
}

// Log is an ordered, append-only message history.
// Once full, adding a message evicts the oldest one.
type Log struct {
	messages []Message
	limit    int
}

// New creates a log holding at most limit messages.
// A non-positive limit selects DefaultLimit.
func New(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{
		messages: make([]Message, 0, limit),
		limit:    limit,
	}
}

// Add appends a message.
func (l *Log) Add(text string, color tcell.Color) {
	if len(l.messages) == l.limit {
		copy(l.messages, l.messages[1:])
		l.messages = l.messages[:len(l.messages)-1]
	}
	l.messages = append(l.messages, Message{Text: text, Color: color})

	logger.Log.WithFields(logrus.Fields{
		"component": "message_log",
		"size":      len(l.messages),
	}).Info(text)
}

// Messages returns the history, oldest first. The slice must not be modified.
func (l *Log) Messages() []Message {
	return l.messages
}

// Last returns up to n of the most recent messages, oldest first.
func (l *Log) Last(n int) []Message {
	if n <= 0 {
		return nil
	}
	if n > len(l.messages) {
		n = len(l.messages)
	}
	return l.messages[len(l.messages)-n:]
}

// Len returns the number of retained messages.
func (l *Log) Len() int {
	return len(l.messages)
}

// Limit returns the retention bound.
func (l *Log) Limit() int {
	return l.limit
}
