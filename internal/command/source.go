package command

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// DefaultBuffer is the number of commands a LineSource holds before its
// reader blocks.
const DefaultBuffer = 16

// Request is the JSON form of a command line: {"command": "save"}.
type Request struct {
	Command string `json:"command"`
}

// LineSource reads commands from a text stream, one per line, on a
// background goroutine. Each line is a key, a command name or a JSON
// Request. The session loop drains it with Poll, which never blocks.
type LineSource struct {
	ch     chan Command
	done   chan struct{}
	closed chan struct{}
	once   sync.Once
	logger *slog.Logger

	mu  sync.Mutex
	err error
}

// NewLineSource starts reading r. A nil logger discards diagnostics.
func NewLineSource(r io.Reader, logger *slog.Logger) *LineSource {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &LineSource{
		ch:     make(chan Command, DefaultBuffer),
		done:   make(chan struct{}),
		closed: make(chan struct{}),
		logger: logger,
	}
	go s.read(r)
	return s
}

func (s *LineSource) read(r io.Reader) {
	defer close(s.done)

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 4*1024)
	scanner.Buffer(buf, 64*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := parseLine(line)
		if err != nil {
			s.logger.Warn("ignoring command line", "line", line, "error", err)
			continue
		}
		if cmd == None {
			s.logger.Debug("unknown command", "line", line)
			continue
		}

		select {
		case s.ch <- cmd:
		case <-s.closed:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		s.mu.Lock()
		s.err = fmt.Errorf("command reader: %w", err)
		s.mu.Unlock()
	}
}

func parseLine(line string) (Command, error) {
	if !strings.HasPrefix(line, "{") {
		return Parse(line), nil
	}
	var req Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return None, fmt.Errorf("failed to parse request: %w", err)
	}
	return Parse(req.Command), nil
}

// Poll returns the next pending command, or None when nothing is queued.
func (s *LineSource) Poll() Command {
	select {
	case cmd := <-s.ch:
		return cmd
	default:
		return None
	}
}

// Done is closed once the reader has hit end of input or an error.
// Commands already queued can still be polled.
func (s *LineSource) Done() <-chan struct{} {
	return s.done
}

// Err returns the read error that stopped the reader, if any. End of
// input is not an error.
func (s *LineSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close stops delivering commands. A reader blocked in the underlying
// Read stays blocked until that Read returns.
func (s *LineSource) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}

// Poller is anything that yields pending commands without blocking.
type Poller interface {
	Poll() Command
}

type merged []Poller

func (m merged) Poll() Command {
	for _, p := range m {
		if cmd := p.Poll(); cmd != None {
			return cmd
		}
	}
	return None
}

// Merge returns a Poller that asks each non-nil poller in turn and
// returns the first command found.
func Merge(pollers ...Poller) Poller {
	var m merged
	for _, p := range pollers {
		if p != nil {
			m = append(m, p)
		}
	}
	return m
}
