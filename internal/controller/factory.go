package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// IsTTY reports whether the writer is an interactive terminal.
func IsTTY(output io.Writer) bool {
	file, ok := output.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// NewUI picks the interactive TUI when stdout is a terminal, and the plain
// writer-backed UI otherwise (pipes, CI).
func NewUI(cmd *cobra.Command, interactive bool) UI {
	simple := NewSimpleUI(cmd)

	if interactive {
		return NewTUI(simple, os.Stdout)
	}

	return simple
}
