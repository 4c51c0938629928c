// Package mcplog appends one JSON line per MCP tool call to an audit file.
package mcplog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/mark3labs/mcp-go/mcp"
)

// Entry is one line of the tool log.
type Entry struct {
	Ts            string         `json:"ts"`
	Tool          string         `json:"tool"`
	Params        map[string]any `json:"params"`
	DurationMs    int64          `json:"duration_ms"`
	ResponseBytes int            `json:"response_bytes"`
	IsError       bool           `json:"is_error"`
	Error         *string        `json:"error"`
}

// NewEntry describes a finished call. A tool-level error result (IsError)
// and a transport error are both recorded; err wins for the message.
func NewEntry(tool string, args map[string]any, start time.Time, result *mcp.CallToolResult, err error) Entry {
	e := Entry{
		Ts:            start.UTC().Format(time.RFC3339),
		Tool:          tool,
		Params:        SanitizeParams(args),
		DurationMs:    Now().Sub(start).Milliseconds(),
		ResponseBytes: ResponseBytes(result),
	}
	switch {
	case err != nil:
		msg := err.Error()
		e.IsError = true
		e.Error = &msg
	case result != nil && result.IsError:
		e.IsError = true
		if msg := firstText(result); msg != "" {
			e.Error = &msg
		}
	}
	return e
}

// Logger appends entries to a file. Writes are serialized within the
// process by a mutex and across processes by a lock file next to the log,
// so several servers can share one log.
type Logger struct {
	mu   sync.Mutex
	f    *os.File
	enc  *json.Encoder
	lock *flock.Flock
}

// NewLogger opens path for appending, creating parent directories.
// An empty path returns a nil Logger, which discards writes.
func NewLogger(path string) (*Logger, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mcplog: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("mcplog: open log file: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	return &Logger{f: f, enc: enc, lock: flock.New(path + ".lock")}, nil
}

// Write appends a single entry. Callers usually ignore the error so that a
// broken log never changes a tool result.
func (l *Logger) Write(entry Entry) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.lock.Lock(); err != nil {
		return fmt.Errorf("mcplog: lock: %w", err)
	}
	defer func() { _ = l.lock.Unlock() }()

	return l.enc.Encode(entry)
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

const shortStringMax = 64

// SanitizeParams returns a copy of args that is safe to log. Long strings
// become "<key>_len" and nested objects become "<key>_keys", so prop payloads
// never reach the file verbatim.
func SanitizeParams(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		switch val := v.(type) {
		case string:
			if len(val) > shortStringMax {
				out[k+"_len"] = len(val)
				continue
			}
			out[k] = val
		case map[string]any:
			out[k+"_keys"] = len(val)
		default:
			out[k] = v
		}
	}
	return out
}

// ResponseBytes is the serialized size of a result's content, 0 for nil.
func ResponseBytes(result *mcp.CallToolResult) int {
	if result == nil {
		return 0
	}
	b, err := json.Marshal(result.Content)
	if err != nil {
		return 0
	}
	return len(b)
}

func firstText(result *mcp.CallToolResult) string {
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// Now is a replaceable clock for testing.
var Now = time.Now
