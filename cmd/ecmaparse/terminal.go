package main

import "os"

// isTerminal reports whether f looks like an interactive character device,
// the same information golang.org/x/term.IsTerminal provides via an ioctl
// on the descriptor — used only to auto-detect --color=auto and therefore
// kept to stdlib; no terminal-capability library is needed for this.
func isTerminal(f interface{ Fd() uintptr }) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
