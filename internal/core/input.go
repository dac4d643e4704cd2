package core

// Key is the name of a key as reported by a keyboard collaborator.
// Printable keys use their character ("w", "a"); special keys use
// lower-case names ("up", "ctrl+c"), matching Bubble Tea's key strings.
type Key string

// Special key names produced by the platforms.
const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyCtrlC Key = "ctrl+c"
)

// Keyboard is the input collaborator polled once per tick.
//
// PressedKeys returns the keys currently reported as pressed, oldest first.
// The game only ever looks at the last element. An empty slice means nothing
// is pressed. Implementations decide how long a key stays "pressed"; a key
// pressed and released between two polls may never be reported.
type Keyboard interface {
	PressedKeys() []Key
}

// NoKeys is a Keyboard that never reports a key press.
type NoKeys struct{}

// PressedKeys implements Keyboard.
func (NoKeys) PressedKeys() []Key { return nil }

// Last returns the most recent key in keys and whether there was one.
func Last(keys []Key) (Key, bool) {
	if len(keys) == 0 {
		return "", false
	}
	return keys[len(keys)-1], true
}
