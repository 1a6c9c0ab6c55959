package main

import (
	"os"

	"golang.org/x/term"
)

const defaultTerminalWidth = 80

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// terminalWidth returns the column count of writer, or a default when it is
// not a terminal.
func terminalWidth(writer any) int {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
