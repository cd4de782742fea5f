package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Summary is what the generate command reports after writing a flow.
type Summary struct {
	Path      string
	Nodes     int
	Edges     int
	Languages []string
	Warnings  int
}

// profileFor returns a color profile for w: colors only on an interactive terminal.
func profileFor(w io.Writer) termenv.Profile {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// PrintSummary writes the human-readable generation report.
func PrintSummary(w io.Writer, s Summary) error {
	p := profileFor(w)
	ok := p.String("✅ Flow generated successfully!").Foreground(p.Color("#22c55e")).Bold()
	value := func(v any) termenv.Style {
		return p.String(fmt.Sprint(v)).Foreground(p.Color("#818cf8"))
	}

	lines := []string{
		ok.String(),
		fmt.Sprintf("📁 File: %s", value(s.Path)),
		fmt.Sprintf("📊 Total Nodes: %s", value(s.Nodes)),
		fmt.Sprintf("🔗 Total Edges: %s", value(s.Edges)),
		fmt.Sprintf("🌐 Languages: %s", value(strings.Join(s.Languages, ", "))),
	}
	if s.Warnings > 0 {
		lines = append(lines, p.String(fmt.Sprintf("⚠️  %d validation warning(s)", s.Warnings)).Foreground(p.Color("#f59e0b")).String())
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// PrintIssues writes one line per finding under a colored heading.
func PrintIssues(w io.Writer, heading string, color string, issues []string) {
	if len(issues) == 0 {
		return
	}
	p := profileFor(w)
	fmt.Fprintln(w, p.String(fmt.Sprintf("%s (%d):", heading, len(issues))).Foreground(p.Color(color)).Bold())
	for _, i := range issues {
		fmt.Fprintf(w, "  - %s\n", i)
	}
}
