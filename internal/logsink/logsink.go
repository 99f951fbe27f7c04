// Package logsink writes timestamped, level-tagged text lines to an
// append-only sink such as a log file.
//
// There is no process-wide instance: construct a Logger and pass it to
// whatever needs it.
package logsink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ErrNotInitialized is returned by Log when the logger has no sink.
var ErrNotInitialized = errors.New("logger is not initialized: set a sink first")

// Level is the severity of a log line.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Sink receives fully formatted lines without a trailing newline.
type Sink interface {
	Append(line string) error
}

// Flusher is implemented by sinks that buffer.
type Flusher interface {
	Flush() error
}

// FileSink appends lines to a file. Lines are buffered until Flush or Close.
type FileSink struct {
	mu   sync.Mutex
	path string
	f    *os.File
	w    *bufio.Writer
}

// OpenFileSink opens path for appending, creating it if needed.
func OpenFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return &FileSink{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// Path returns the file the sink appends to.
func (s *FileSink) Path() string { return s.path }

// Append buffers line followed by a newline.
func (s *FileSink) Append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return os.ErrClosed
	}
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Flush writes buffered lines to the file.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	return s.w.Flush()
}

// Close flushes and closes the file. Closing twice is a no-op.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	flushErr := s.w.Flush()
	closeErr := s.f.Close()
	s.f = nil
	return errors.Join(flushErr, closeErr)
}

// WriterSink appends lines to an io.Writer, e.g. stdout.
type WriterSink struct {
	mu sync.Mutex
	W  io.Writer
}

func (s *WriterSink) Append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.W, line)
	return err
}

// Logger formats lines as "[timestamp] [LEVEL] message" and hands them to a sink.
type Logger struct {
	mu   sync.Mutex
	sink Sink
	now  func() time.Time
}

// New creates a logger writing to sink. A nil sink is allowed; Log then
// fails with ErrNotInitialized until SetSink is called.
func New(sink Sink) *Logger {
	return &Logger{sink: sink, now: time.Now}
}

// SetSink replaces the sink. The previous sink is not closed.
func (l *Logger) SetSink(sink Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sink = sink
}

// Log writes one line at level.
func (l *Logger) Log(level Level, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sink == nil {
		return ErrNotInitialized
	}
	ts := l.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	return l.sink.Append(fmt.Sprintf("[%s] [%s] %s", ts, level, message))
}

func (l *Logger) Info(message string) error    { return l.Log(LevelInfo, message) }
func (l *Logger) Warning(message string) error { return l.Log(LevelWarning, message) }
func (l *Logger) Error(message string) error   { return l.Log(LevelError, message) }

// Flush flushes the sink if it buffers.
func (l *Logger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.sink.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close closes the sink if it can be closed. The logger keeps the sink, so
// later Log calls report the sink's own error.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
