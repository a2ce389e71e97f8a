// Package clipboard delivers secrets to the system clipboard through a
// platform copy command, keeping them out of terminal scrollback.
package clipboard

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupported is returned when no clipboard command is known for the
// host platform.
var ErrUnsupported = errors.New("clipboard not supported")

// Sink delivers text to the system clipboard.
type Sink interface {
	Copy(text string) error
}

// New selects the copy command for the host platform, once at startup.
// A non-empty override is used verbatim on every platform. Platforms with
// no known command get a sink whose Copy always fails, so commands that
// never touch the clipboard still work there.
func New(override string) Sink {
	if override != "" {
		return NewCommand(strings.Fields(override)...)
	}
	switch runtime.GOOS {
	case "darwin":
		return NewCommand("pbcopy")
	case "linux":
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			return NewCommand("wl-copy")
		}
		return NewCommand("xclip", "-selection", "clipboard")
	case "windows":
		return NewCommand("clip")
	}
	return unsupportedSink{goos: runtime.GOOS}
}

// NewCommand builds a Sink around an arbitrary copy command. The command
// receives the text on standard input.
func NewCommand(argv ...string) Sink {
	return &commandSink{argv: argv}
}

// commandSink pipes text to an external copy command's stdin.
type commandSink struct {
	argv []string
}

// Copy runs the copy command with text on stdin. A non-zero exit means
// the secret did not reach the clipboard.
func (s *commandSink) Copy(text string) error {
	cmd := exec.Command(s.argv[0], s.argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("copy command %s: %w", s.argv[0], err)
	}
	return nil
}

type unsupportedSink struct {
	goos string
}

func (s unsupportedSink) Copy(string) error {
	return fmt.Errorf("%w on %s", ErrUnsupported, s.goos)
}
