package twidge

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// enterRaw switches the terminal on fd to byte-at-a-time, unechoed,
// signal-disabled input and returns a restore function. Output
// post-processing (OPOST) is left enabled so newlines keep working.
// The restore function is safe to call while unwinding.
func enterRaw(fd int) (restore func() error, err error) {
	old, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("get termios: %w", err)
	}

	raw := *old
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("set raw mode: %w", err)
	}

	return func() error {
		if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, old); err != nil {
			return fmt.Errorf("restore termios: %w", err)
		}
		return nil
	}, nil
}

// terminalSize returns the terminal dimensions for fd.
func terminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
