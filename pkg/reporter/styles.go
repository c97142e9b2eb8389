package reporter

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for run output.
type Styles struct {
	// File and summary components.
	FilePath lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Dim      lipgloss.Style
	Bold     lipgloss.Style

	// Diff components.
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style
}

// NewStyles creates styles, colored or plain.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			FilePath:    plain,
			Success:     plain,
			Failure:     plain,
			Dim:         plain,
			Bold:        plain,
			DiffHeader:  plain,
			DiffHunk:    plain,
			DiffAdd:     plain,
			DiffRemove:  plain,
			DiffContext: plain,
		}
	}

	return &Styles{
		FilePath:    lipgloss.NewStyle().Bold(true),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:        lipgloss.NewStyle().Bold(true),
		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		DiffContext: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// ColorEnabled resolves a color mode ("auto", "always", "never") against
// the output terminal and the NO_COLOR convention.
func ColorEnabled(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if out == nil {
			return false
		}
		return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	}
}
