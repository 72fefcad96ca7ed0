// Package audit keeps the append-only record of every attempted operation.
package audit

import (
	"fmt"
	"sync"
	"time"

	"github.com/Cyclone1070/fman/internal/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Level is the severity of an entry.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Entry is one immutable audit record.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
}

// String renders the entry the way the log panel shows it: "[INFO] Folder created: /x".
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", levelTag(e.Level), e.Message)
}

func levelTag(l Level) string {
	if l == LevelError {
		return "ERROR"
	}
	return "INFO"
}

// Log is an in-memory, append-only sequence of entries. Every append is mirrored to the
// structured logger.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	clock   clock.Clock
	logger  *zap.Logger
}

// NewLog creates an empty log.
func NewLog(c clock.Clock, logger *zap.Logger) *Log {
	if c == nil {
		c = clock.RealClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{
		entries: make([]Entry, 0),
		clock:   c,
		logger:  logger,
	}
}

// Info appends an info entry.
func (l *Log) Info(message string, fields ...zap.Field) Entry {
	return l.append(LevelInfo, message, fields)
}

// Error appends an error entry.
func (l *Log) Error(message string, fields ...zap.Field) Entry {
	return l.append(LevelError, message, fields)
}

func (l *Log) append(level Level, message string, fields []zap.Field) Entry {
	l.mu.Lock()
	// Stamped under the lock so timestamps never go backwards along the log.
	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: l.clock.Now(),
		Level:     level,
		Message:   message,
	}
	l.entries = append(l.entries, entry)
	l.mu.Unlock()

	fields = append(fields, zap.String("audit_id", entry.ID))
	if level == LevelError {
		l.logger.Error(message, fields...)
	} else {
		l.logger.Info(message, fields...)
	}
	return entry
}

// Entries returns a copy of every entry, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]Entry, len(l.entries))
	copy(result, l.entries)
	return result
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Last returns the newest entry.
func (l *Log) Last() (Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}
