// Package host connects the status bar to the workspace that drives it.
//
// The host reports state changes (mode, sessions, tabs) and asks for
// renders. Both arrive as JSON events, one per line, and are applied to a
// Bar strictly in order.
package host

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/young1lin/tabline/internal/statusbar/tabs"
)

// EventType identifies a host event
type EventType string

const (
	EventMode     EventType = "mode"
	EventSessions EventType = "sessions"
	EventTabs     EventType = "tabs"
	EventRender   EventType = "render"
)

var (
	// ErrUnknownEvent is returned for events with an unrecognized type
	ErrUnknownEvent = errors.New("unknown event type")
	// ErrUnknownMode is returned for mode events naming no known mode
	ErrUnknownMode = errors.New("unknown input mode")
)

// SessionInfo describes one session as reported by the host
type SessionInfo struct {
	Name             string `json:"name"`
	IsCurrentSession bool   `json:"is_current_session"`
}

// Event is a single host notification
type Event struct {
	Type     EventType     `json:"type"`
	Mode     string        `json:"mode,omitempty"`
	Sessions []SessionInfo `json:"sessions,omitempty"`
	Tabs     []tabs.Info   `json:"tabs,omitempty"`
	Cols     int           `json:"cols,omitempty"`
}

// ModeEvent creates a mode update
func ModeEvent(mode string) Event {
	return Event{Type: EventMode, Mode: mode}
}

// SessionsEvent creates a session list update
func SessionsEvent(sessions []SessionInfo) Event {
	return Event{Type: EventSessions, Sessions: sessions}
}

// TabsEvent creates a tab list update
func TabsEvent(list []tabs.Info) Event {
	return Event{Type: EventTabs, Tabs: list}
}

// RenderEvent creates a render request for the given width
func RenderEvent(cols int) Event {
	return Event{Type: EventRender, Cols: cols}
}

// DecodeError reports a line that is not a valid event
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decoder reads newline-delimited JSON events
type Decoder struct {
	scanner *bufio.Scanner
	line    int
}

// NewDecoder creates a decoder reading from r
func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &Decoder{scanner: scanner}
}

// Next returns the next event. Blank lines are skipped. It returns io.EOF
// when the input is exhausted and a *DecodeError for malformed lines, after
// which decoding can continue.
func (d *Decoder) Next() (Event, error) {
	for d.scanner.Scan() {
		d.line++
		data := d.scanner.Bytes()
		if len(bytes.TrimSpace(data)) == 0 {
			continue
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			return Event{}, &DecodeError{Line: d.line, Err: err}
		}
		if !ev.Type.valid() {
			return Event{}, &DecodeError{Line: d.line, Err: fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)}
		}
		return ev, nil
	}
	if err := d.scanner.Err(); err != nil {
		return Event{}, err
	}
	return Event{}, io.EOF
}

func (t EventType) valid() bool {
	switch t {
	case EventMode, EventSessions, EventTabs, EventRender:
		return true
	}
	return false
}

// Snapshot is the complete workspace state in one document
type Snapshot struct {
	Mode     string        `json:"mode,omitempty"`
	Sessions []SessionInfo `json:"sessions,omitempty"`
	Tabs     []tabs.Info   `json:"tabs"`
	Cols     int           `json:"cols,omitempty"`
}

// Events expands the snapshot into state updates. The render request is
// not included; callers pick the width.
func (s Snapshot) Events() []Event {
	var events []Event
	if s.Mode != "" {
		events = append(events, ModeEvent(s.Mode))
	}
	if len(s.Sessions) > 0 {
		events = append(events, SessionsEvent(s.Sessions))
	}
	events = append(events, TabsEvent(s.Tabs))
	return events
}

// ReadSnapshot decodes a snapshot document
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return s, nil
}

// LoadSnapshot reads a snapshot file
func LoadSnapshot(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}
