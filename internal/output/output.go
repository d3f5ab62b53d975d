// Package output hands a picked playbook line back to the user's shell.
package output

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/atotto/clipboard"
)

// Sink receives picked lines.
type Sink interface {
	Emit(line string) error
}

var errNoClipboard = errors.New("no clipboard utility found")

// Clipboard copies lines to the system clipboard.
type Clipboard struct {
	write func(string) error
}

// NewClipboard returns a sink backed by the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{write: systemClipboard}
}

func systemClipboard(line string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(line)
}

// Emit copies line to the clipboard.
func (c *Clipboard) Emit(line string) error {
	if err := c.write(line); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// Collector remembers the last picked line so it can be printed once the
// terminal has been restored.
type Collector struct {
	mu   sync.Mutex
	last string
	set  bool
}

// Emit records line.
func (c *Collector) Emit(line string) error {
	c.mu.Lock()
	c.last, c.set = line, true
	c.mu.Unlock()
	return nil
}

// Last returns the most recent line, if any.
func (c *Collector) Last() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.set
}

// WriteTo writes the last line followed by a newline to w. Nothing is written
// when no line was picked.
func (c *Collector) WriteTo(w io.Writer) (int64, error) {
	line, ok := c.Last()
	if !ok {
		return 0, nil
	}
	n, err := fmt.Fprintln(w, line)
	return int64(n), err
}

// Multi emits to every sink and joins their errors.
type Multi []Sink

// Emit forwards line to all sinks.
func (m Multi) Emit(line string) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(line); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
