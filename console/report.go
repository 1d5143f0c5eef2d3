// SPDX-License-Identifier: MIT

package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Report is the end-of-run overview printed to the diagnostics stream.
type Report struct {
	Root       string
	Files      int
	Processed  int
	FileErrors int
	DirErrors  int
	TimedOut   bool
	Vertices   int
	Edges      int
	Teams      int
	Singletons int
	Largest    int
	Connectors int
	Ingest     time.Duration
	Analysis   time.Duration
}

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorWarning = lipgloss.Color("#F4D03F")
)

// RenderReport writes r as a bordered box. Styling follows the color
// profile of w, so plain buffers and pipes get unstyled text.
func RenderReport(w io.Writer, r Report) error {
	re := lipgloss.NewRenderer(w)
	title := re.NewStyle().Bold(true).Foreground(colorAccent)
	label := re.NewStyle().Width(12)
	warn := re.NewStyle().Foreground(colorWarning)
	box := re.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1)

	row := func(k string, v any) string {
		return label.Render(k) + fmt.Sprint(v)
	}
	lines := []string{
		title.Render("commgraph " + r.Root),
		row("files", fmt.Sprintf("%d dispatched, %d processed", r.Files, r.Processed)),
		row("errors", fmt.Sprintf("%d files, %d dirs", r.FileErrors, r.DirErrors)),
		row("people", r.Vertices),
		row("links", r.Edges),
		row("teams", fmt.Sprintf("%d (%d singletons, largest %d)", r.Teams, r.Singletons, r.Largest)),
		row("connectors", r.Connectors),
		row("timing", fmt.Sprintf("ingest %s, analysis %s",
			r.Ingest.Round(time.Millisecond), r.Analysis.Round(time.Millisecond))),
	}
	if r.TimedOut {
		lines = append(lines, warn.Render("drain timed out: graph is partial"))
	}

	_, err := fmt.Fprintln(w, box.Render(strings.Join(lines, "\n")))

	return err
}
