//go:build !unix

package config

func terminalWidth() int {
	return 0
}
