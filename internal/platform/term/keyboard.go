package term

import (
	"fmt"
	"sync"

	"github.com/mattn/go-tty"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Keyboard reads the terminal in raw mode on a background goroutine and
// reports the keys that arrived since the previous poll.
//
// A terminal delivers key presses, not key state, so "pressed" here means
// "arrived since the last PressedKeys call". Ctrl+C is never reported; it
// triggers the interrupt callback instead.
type Keyboard struct {
	tty         *tty.TTY
	onInterrupt func()

	mu      sync.Mutex
	pending []core.Key
	closed  bool
}

// OpenKeyboard switches the controlling terminal to raw mode and starts
// reading it. When Ctrl+C arrives the keyboard closes itself, restoring the
// tty mode, and then calls onInterrupt on the reader goroutine.
func OpenKeyboard(onInterrupt func()) (*Keyboard, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("term: cannot open tty: %w", err)
	}

	k := &Keyboard{
		tty:         t,
		onInterrupt: onInterrupt,
	}
	go k.read()
	return k, nil
}

// read decodes runes until the tty is closed.
func (k *Keyboard) read() {
	var d decoder
	for {
		r, err := k.tty.ReadRune()
		if err != nil {
			return
		}
		key, ok := d.feed(r)
		if !ok {
			continue
		}
		if key == core.KeyCtrlC {
			_ = k.Close()
			if k.onInterrupt != nil {
				k.onInterrupt()
			}
			return
		}
		k.push(key)
	}
}

func (k *Keyboard) push(key core.Key) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.closed {
		k.pending = append(k.pending, key)
	}
}

// PressedKeys implements core.Keyboard. It returns the keys received since
// the last call, oldest first, and forgets them.
func (k *Keyboard) PressedKeys() []core.Key {
	k.mu.Lock()
	defer k.mu.Unlock()
	keys := k.pending
	k.pending = nil
	return keys
}

// Close restores the terminal mode. It is safe to call more than once.
func (k *Keyboard) Close() error {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return nil
	}
	k.closed = true
	k.mu.Unlock()

	if k.tty == nil {
		return nil
	}
	if err := k.tty.Close(); err != nil {
		return fmt.Errorf("term: cannot restore tty: %w", err)
	}
	return nil
}
