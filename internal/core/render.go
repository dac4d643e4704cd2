package core

// Renderer is the output collaborator the game draws through.
// Every call is synchronous; a returned error means the output device is
// unusable and the game treats it as fatal.
type Renderer interface {
	ClearScreen() error
	MoveCursorTo(x, y int) error
	PrintChar(r rune) error
}

// Flusher is implemented by renderers that buffer a frame before showing it.
// The game calls Flush once per tick after drawing.
type Flusher interface {
	Flush() error
}
