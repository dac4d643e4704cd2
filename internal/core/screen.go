package core

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal: it implements Renderer with
// a virtual cursor, and the platform turns the buffer into actual output.
type Screen struct {
	width   int
	height  int
	cells   [][]rune
	cursorX int
	cursorY int
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x]
}

// ClearScreen implements Renderer. It blanks the buffer and homes the cursor.
func (s *Screen) ClearScreen() error {
	s.Clear()
	s.cursorX, s.cursorY = 0, 0
	return nil
}

// MoveCursorTo implements Renderer.
func (s *Screen) MoveCursorTo(x, y int) error {
	s.cursorX, s.cursorY = x, y
	return nil
}

// PrintChar implements Renderer. It writes at the cursor and advances it one
// column, like a terminal does. Writes outside the buffer are dropped.
func (s *Screen) PrintChar(r rune) error {
	s.Set(s.cursorX, s.cursorY, r)
	s.cursorX++
	return nil
}
