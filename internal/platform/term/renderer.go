// Package term runs the game directly on the controlling terminal: ANSI
// escape sequences for output and a raw go-tty reader for input.
package term

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// ANSI control sequences.
const (
	seqClear      = "\x1b[2J\x1b[H"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
)

// Renderer draws on an ANSI terminal. Output is buffered for a whole frame
// and written on Flush; write errors surface from whichever call hits them.
// It is safe for concurrent use, so the interrupt path can restore the
// cursor while a frame is being drawn.
type Renderer struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: bufio.NewWriter(w)}
}

// ClearScreen implements core.Renderer.
func (r *Renderer) ClearScreen() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.w.WriteString(seqClear)
	return err
}

// MoveCursorTo implements core.Renderer. Coordinates are 0-based; the
// terminal's are 1-based.
func (r *Renderer) MoveCursorTo(x, y int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintf(r.w, "\x1b[%d;%dH", y+1, x+1)
	return err
}

// PrintChar implements core.Renderer.
func (r *Renderer) PrintChar(c rune) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.w.WriteRune(c)
	return err
}

// Flush implements core.Flusher.
func (r *Renderer) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.w.Flush()
}

// HideCursor hides the terminal cursor until ShowCursor.
func (r *Renderer) HideCursor() error {
	return r.writeNow(seqHideCursor)
}

// ShowCursor makes the cursor visible again.
func (r *Renderer) ShowCursor() error {
	return r.writeNow(seqShowCursor)
}

// writeNow appends seq to the pending output and flushes it.
func (r *Renderer) writeNow(seq string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.w.WriteString(seq); err != nil {
		return err
	}
	return r.w.Flush()
}
