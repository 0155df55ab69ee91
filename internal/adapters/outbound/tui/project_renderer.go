package tui

import (
	"fmt"
	"strings"

	"github.com/makeca/make-ca/internal/domain"
)

// RenderInitReport formats the outcome of an init run.
func RenderInitReport(report *domain.InitReport) string {
	var b strings.Builder

	title := headerStyle.Render("make-ca")
	subtitle := dimStyle.Render("init")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + titleStyle.Render(report.ProjectPath)))
	b.WriteString("\n\n")

	if report.NonEmpty {
		b.WriteString(Warn("directory is not empty, some files might be overwritten"))
	}
	if report.AlreadyInitialized {
		b.WriteString(Warn("Project is already initialized"))
		b.WriteString(Hint("make-ca generate <entity>"))
		return b.String()
	}

	if len(report.Directories) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Directories"), dimStyle.Render(fmt.Sprintf("(%d)", len(report.Directories))))
		for _, d := range report.Directories {
			fmt.Fprintf(&b, "    %s %s\n", passStyle.Render("●"), fileStyle.Render(d))
		}
		b.WriteString("\n")
	}
	if len(report.Files) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Files"), dimStyle.Render(fmt.Sprintf("(%d)", len(report.Files))))
		for _, f := range report.Files {
			fmt.Fprintf(&b, "    %s %s\n", passStyle.Render("●"), fileStyle.Render(f))
		}
		b.WriteString("\n")
	}
	if report.GitInitialized {
		b.WriteString("  " + dimStyle.Render("initialized git repository") + "\n\n")
	}

	b.WriteString(Success("Project initialized"))
	b.WriteString(Hint("make-ca generate <entity>"))
	return b.String()
}

// RenderEntities lists the entities recorded in a manifest.
func RenderEntities(m *domain.Manifest) string {
	names := m.Names()
	if len(names) == 0 {
		return "  " + dimStyle.Render("No entities generated yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Entities") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, n := range names {
		layers := make([]string, 0, len(m.Entities[n]))
		for _, l := range m.Entities[n] {
			layers = append(layers, string(l))
		}
		fmt.Fprintf(&b, "  %s  %s\n", layerStyle.Render(padRight(n, 24)), dimStyle.Render(strings.Join(layers, ", ")))
	}
	return b.String()
}

// Success renders a one-line success message.
func Success(msg string) string {
	return "  " + passStyle.Render("✓") + " " + msg + "\n"
}

// Warn renders a one-line warning.
func Warn(msg string) string {
	return "  " + warnTagStyle.Render("warn ") + " " + warnStyle.Render(msg) + "\n"
}

// Error renders a one-line error.
func Error(msg string) string {
	return "  " + errorTagStyle.Render("error") + " " + msg + "\n"
}

// Hint renders a suggested command.
func Hint(cmd string) string {
	return "  " + hintStyle.Render("try: "+cmd) + "\n"
}
