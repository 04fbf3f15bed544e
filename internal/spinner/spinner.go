// Package spinner provides a terminal progress indicator for long analyses.
//
// The spinner only animates when its writer is a terminal; redirected or
// piped output stays free of control sequences.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var defaultFrames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

// Spinner represents a spinning progress indicator.
type Spinner struct {
	frames   []string
	delay    time.Duration
	writer   io.Writer
	terminal bool

	mu      sync.RWMutex
	active  bool
	message string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a spinner that writes to writer.
// ctx cancellation stops the animation goroutine.
func New(ctx context.Context, writer io.Writer, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		frames:   defaultFrames,
		delay:    100 * time.Millisecond,
		writer:   writer,
		terminal: isTerminal(writer),
		message:  message,
		ctx:      spinnerCtx,
		cancel:   cancel,
	}
}

// Start begins the animation. It is a no-op if already running.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}
	s.active = true

	if !s.terminal {
		return
	}

	s.wg.Add(1)
	go s.run()
}

// Stop ends the animation and clears the spinner line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()

	if s.terminal {
		fmt.Fprint(s.writer, "\r\033[2K")
	}
}

// IsActive returns whether the spinner is currently running
func (s *Spinner) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// UpdateMessage changes the text shown next to the spinner
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

func (s *Spinner) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.mu.RLock()
			fmt.Fprintf(s.writer, "\r%s %s", s.frames[frame%len(s.frames)], s.message)
			s.mu.RUnlock()
		}
	}
}

// isTerminal reports whether w is an *os.File attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
