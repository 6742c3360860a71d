//go:build unix

package config

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// terminalWidth returns the column count of the terminal on standard output, or zero.
func terminalWidth() int {
	outputDescriptor := os.Stdout.Fd()
	if !isatty.IsTerminal(outputDescriptor) {
		return 0
	}
	windowSize, ioctlError := unix.IoctlGetWinsize(int(outputDescriptor), unix.TIOCGWINSZ)
	if ioctlError != nil {
		return 0
	}
	return int(windowSize.Col)
}
