package tui

import (
	"fmt"
	"io"
)

// PrintBanner outputs the grievanceflow ASCII art banner.
func PrintBanner(w io.Writer) {
	p := profileFor(w)
	// Saffron to green, top to bottom.
	lines := []struct{ text, color string }{
		{"   __ _ _ __(_)_____   ____ _ _ __   ___ ___", "#ff9933"},
		{"  / _` | '__| |/ _ \\ \\ / / _` | '_ \\ / __/ _ \\", "#f7b267"},
		{" | (_| | |  | |  __/\\ V / (_| | | | | (_|  __/", "#e0e0e0"},
		{"  \\__, |_|  |_|\\___| \\_/ \\__,_|_| |_|\\___\\___|  flow", "#7cb342"},
		{"  |___/", "#138808"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
