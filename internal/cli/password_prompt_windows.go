//go:build windows

package cli

import (
	"os"

	"golang.org/x/sys/windows"
)

func readSecretLine(stdin *os.File) (string, error) {
	if stdin == nil {
		return "", errStdinUnavailable
	}

	handle := windows.Handle(stdin.Fd())
	var originalMode uint32
	if err := windows.GetConsoleMode(handle, &originalMode); err != nil {
		return readLine(stdin)
	}

	updatedMode := originalMode &^ windows.ENABLE_ECHO_INPUT
	if err := windows.SetConsoleMode(handle, updatedMode); err != nil {
		return "", err
	}
	defer func() {
		_ = windows.SetConsoleMode(handle, originalMode)
	}()

	return readLine(stdin)
}
