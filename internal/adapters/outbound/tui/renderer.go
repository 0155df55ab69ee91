package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/makeca/make-ca/internal/domain"
)

// ── warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	layerStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderGenerateReport formats the outcome of a generate run.
func RenderGenerateReport(report *domain.GenerateReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("make-ca")
	subtitle := dimStyle.Render("generate")
	if report.DryRun {
		subtitle = dimStyle.Render("generate (dry run)")
	}
	entity := titleStyle.Render(report.Entity.PascalCase)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + entity))
	b.WriteString("\n\n")

	// ── Layers ──
	for _, l := range report.Layers {
		renderLayer(&b, l)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Summary ──
	verb := "written"
	if report.DryRun {
		verb = "planned"
	}
	if report.Failed() {
		b.WriteString("  " + errorTagStyle.Render("failed") + "  ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d files %s before the error", report.FileCount(), verb)))
	} else {
		b.WriteString("  " + passStyle.Render("done") + "  ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d files %s", report.FileCount(), verb)))
	}
	b.WriteString("\n\n")
	return b.String()
}

func renderLayer(b *strings.Builder, l domain.LayerResult) {
	name := padRight(string(l.Layer), 16)

	switch {
	case l.Skipped:
		fmt.Fprintf(b, "  %s %s %s\n",
			skipStyle.Render("○"),
			skipStyle.Render(name),
			skipStyle.Render("skipped"),
		)
		return
	case l.Failed():
		fmt.Fprintf(b, "  %s %s %s\n",
			failStyle.Render("●"),
			layerStyle.Render(name),
			dimStyle.Render(fmt.Sprintf("%d files", len(l.Files))),
		)
		fmt.Fprintf(b, "      %s %s\n", errorTagStyle.Render("error"), dimStyle.Render(l.Error))
	default:
		fmt.Fprintf(b, "  %s %s %s\n",
			passStyle.Render("●"),
			layerStyle.Render(name),
			dimStyle.Render(fmt.Sprintf("%d files", len(l.Files))),
		)
	}

	for _, f := range l.Files {
		fmt.Fprintf(b, "      %s\n", fileStyle.Render(shortenPath(f)))
	}
}

// shortenPath drops the source-root prefix shared by every generated file.
func shortenPath(path string) string {
	p := filepath.ToSlash(path)
	for _, marker := range []string{"core/", "infrastructure/", "application/"} {
		if idx := strings.Index(p, marker); idx >= 0 {
			return p[idx:]
		}
	}
	return p
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
