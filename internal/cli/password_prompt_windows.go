//go:build windows

package cli

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

func readPasswordNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errors.New("no stdin")
	}

	handle := windows.Handle(stdin.Fd())
	var previousMode uint32
	if err := windows.GetConsoleMode(handle, &previousMode); err != nil {
		return nil, err
	}

	if err := windows.SetConsoleMode(handle, previousMode&^windows.ENABLE_ECHO_INPUT); err != nil {
		return nil, err
	}
	defer func() {
		_ = windows.SetConsoleMode(handle, previousMode)
	}()

	return readTrimmedLine(stdin)
}
