package term

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ExitInterrupted is the process status after Ctrl+C or SIGINT/SIGTERM.
const ExitInterrupted = 130

// Run plays one game on stdout until the snake dies.
//
// A render failure is returned as is and the screen is left untouched;
// only the tty mode is put back. On Ctrl+C or a termination signal the
// terminal is restored and the process exits with ExitInterrupted.
func Run(cfg config.SnakeConfig, logger *log.Logger) error {
	fd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(fd) {
		return errors.New("term: stdout is not a terminal")
	}
	if w, h, err := xterm.GetSize(fd); err == nil {
		if w < cfg.Field.Width || h < cfg.Field.Height {
			return fmt.Errorf("term: terminal is %dx%d, the field needs %dx%d", w, h, cfg.Field.Width, cfg.Field.Height)
		}
	} else {
		logger.Warn("cannot read terminal size", "error", err)
	}

	renderer := NewRenderer(os.Stdout)

	// The keyboard has already restored the tty mode when this runs.
	interrupt := func() {
		logger.Info("interrupted")
		_ = renderer.ShowCursor()
		os.Exit(ExitInterrupted)
	}

	kb, err := OpenKeyboard(interrupt)
	if err != nil {
		return err
	}
	// The tty mode is restored on every exit path, render failures included.
	// The screen itself is left as drawn.
	defer kb.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signals)
		close(signals)
	}()
	go func() {
		if _, ok := <-signals; ok {
			_ = kb.Close()
			interrupt()
		}
	}()

	if err := renderer.HideCursor(); err != nil {
		return fmt.Errorf("term: %w", err)
	}

	session := snake.NewSession(cfg, renderer, kb, logger)
	session.Init()
	if err := session.Run(); err != nil {
		return err
	}

	// Park the cursor under the field so the shell prompt does not overwrite it
	if err := renderer.MoveCursorTo(0, cfg.Field.Height); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	return renderer.ShowCursor()
}
