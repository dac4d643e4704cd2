package term

import (
	"unicode"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// decoder turns the raw rune stream of a terminal into key names.
// It understands CSI arrow keys (ESC [ A..D) and Ctrl+C; letters are
// lower-cased so Shift and Caps Lock do not change the key.
type decoder struct {
	state int
}

const (
	stateGround = iota
	stateEscape
	stateCSI
)

// feed consumes one rune and returns a key once one is complete.
func (d *decoder) feed(r rune) (core.Key, bool) {
	switch d.state {
	case stateEscape:
		if r == '[' {
			d.state = stateCSI
			return "", false
		}
		d.state = stateGround
		return d.feed(r)

	case stateCSI:
		// Parameter bytes (e.g. "1;5" for modified arrows) are skipped
		if r >= '0' && r <= '?' {
			return "", false
		}
		d.state = stateGround
		switch r {
		case 'A':
			return core.KeyUp, true
		case 'B':
			return core.KeyDown, true
		case 'C':
			return core.KeyRight, true
		case 'D':
			return core.KeyLeft, true
		}
		return "", false
	}

	switch {
	case r == 0x1b:
		d.state = stateEscape
		return "", false
	case r == 0x03:
		return core.KeyCtrlC, true
	case unicode.IsPrint(r):
		return core.Key(string(unicode.ToLower(r))), true
	}
	return "", false
}
