package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap holds the keys the platform handles itself. Steering keys are not
// listed here: they go to the game untouched and the game decides.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default platform bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// KeyName converts a Bubble Tea key message into the game's key name.
// Single characters are lower-cased so Shift does not matter.
func KeyName(msg tea.KeyMsg) core.Key {
	s := msg.String()
	if utf8.RuneCountInString(s) == 1 {
		s = strings.ToLower(s)
	}
	return core.Key(s)
}

// KeyBuffer collects key presses between ticks. It implements core.Keyboard.
// Bubble Tea delivers messages on one goroutine, so it needs no locking.
type KeyBuffer struct {
	keys []core.Key
}

// Press records a key press.
func (b *KeyBuffer) Press(k core.Key) {
	b.keys = append(b.keys, k)
}

// PressedKeys implements core.Keyboard. It returns the keys pressed since
// the previous call, oldest first, and forgets them.
func (b *KeyBuffer) PressedKeys() []core.Key {
	keys := b.keys
	b.keys = nil
	return keys
}
