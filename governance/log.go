// Package governance maintains the per-session governance log and renders
// it for display. The log is an append-only sequence of
// contracts.GovernanceLogEntry stored in a host-owned session state under
// a single slot key; the host serializes access per session, so the
// adapter itself takes no locks.
package governance

import (
	"time"

	"go.uber.org/zap"

	"github.com/intelliflow-os/intelliflow-core/contracts"
)

// StateKey is the slot under which the log lives in the session state.
const StateKey = "governance_logs"

// SessionState is the per-session key/value store capability the adapter
// needs from the host. Values set under a key must persist for the
// session's lifetime.
type SessionState interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
}

// MemoryState is a map-backed SessionState for hosts without their own
// session store, and for tests. Each instance models one session.
type MemoryState struct {
	values map[string]interface{}
}

// NewMemoryState creates an empty in-memory session state.
func NewMemoryState() *MemoryState {
	return &MemoryState{values: make(map[string]interface{})}
}

// Get returns the value stored under key.
func (s *MemoryState) Get(key string) (interface{}, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *MemoryState) Set(key string, value interface{}) {
	s.values[key] = value
}

// Log appends governance entries into one session's state and exposes
// them for display.
type Log struct {
	state  SessionState
	clock  func() time.Time
	logger *zap.Logger
}

// LogOption customizes a Log.
type LogOption func(*Log)

// WithClock overrides the time source used for entry timestamps.
func WithClock(clock func() time.Time) LogOption {
	return func(l *Log) {
		l.clock = clock
	}
}

// WithLogger attaches a structured logger; appends are logged at debug
// level.
func WithLogger(logger *zap.Logger) LogOption {
	return func(l *Log) {
		l.logger = logger
	}
}

// NewLog creates a governance log adapter over the given session state.
func NewLog(state SessionState, opts ...LogOption) *Log {
	l := &Log{
		state:  state,
		clock:  func() time.Time { return time.Now().UTC() },
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Init ensures the log slot exists in the session state. Idempotent; an
// existing sequence is never reset.
func (l *Log) Init() {
	if _, ok := l.entries(); !ok {
		l.state.Set(StateKey, []contracts.GovernanceLogEntry{})
	}
}

// Append records a governance event with the current timestamp and
// returns the created entry. details may be empty.
func (l *Log) Append(component, action string, success bool, details string) contracts.GovernanceLogEntry {
	l.Init()

	entry := contracts.GovernanceLogEntry{
		Timestamp: l.clock(),
		Component: component,
		Action:    action,
		Success:   success,
		Details:   details,
	}

	entries, _ := l.entries()
	l.state.Set(StateKey, append(entries, entry))

	l.logger.Debug("governance log appended",
		zap.String("component", component),
		zap.String("action", action),
		zap.Bool("success", success))

	return entry
}

// Snapshot returns a copy of the log ordered newest-first. Mutating the
// returned slice does not affect the backing sequence.
func (l *Log) Snapshot() []contracts.GovernanceLogEntry {
	l.Init()

	entries, _ := l.entries()
	out := make([]contracts.GovernanceLogEntry, len(entries))
	for i, entry := range entries {
		out[len(entries)-1-i] = entry
	}
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	entries, _ := l.entries()
	return len(entries)
}

func (l *Log) entries() ([]contracts.GovernanceLogEntry, bool) {
	v, ok := l.state.Get(StateKey)
	if !ok {
		return nil, false
	}
	entries, ok := v.([]contracts.GovernanceLogEntry)
	return entries, ok
}
