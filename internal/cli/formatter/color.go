package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/proposal/internal/contract"
	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// NoticeStyle returns the style for a notice level.
func NoticeStyle(level contract.NoticeLevel) lipgloss.Style {
	switch level {
	case contract.NoticeSuccess:
		return StyleGreen
	case contract.NoticeWarning:
		return StyleYellow
	case contract.NoticeError:
		return StyleRed
	default:
		return StyleBlue
	}
}

// NoticeIcon returns the leading marker for a notice level.
func NoticeIcon(level contract.NoticeLevel) string {
	switch level {
	case contract.NoticeSuccess:
		return "✔"
	case contract.NoticeWarning:
		return "▲"
	case contract.NoticeError:
		return "✖"
	default:
		return "●"
	}
}

// RegionBadge returns a colored region label. Unknown is dimmed.
func RegionBadge(r domain.Region) string {
	switch r {
	case domain.RegionUnknown:
		return StyleDim.Render(string(r))
	case "":
		return StyleDim.Render("--")
	default:
		return StylePurple.Render(string(r))
	}
}

// WorkloadStyle colors an allocation total by its status.
func WorkloadStyle(status domain.WorkloadStatus) lipgloss.Style {
	switch status {
	case domain.WorkloadExact:
		return StyleGreen
	case domain.WorkloadOver:
		return StyleRed
	default:
		return StyleYellow
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
