package views

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary = lipgloss.Color("63")
	ColorError   = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("241")
	ColorSuccess = lipgloss.Color("42")
)

var (
	HeaderStyle   lipgloss.Style
	PathStyle     lipgloss.Style
	ActionStyle   lipgloss.Style
	DisabledStyle lipgloss.Style
	DirStyle      lipgloss.Style
	FileStyle     lipgloss.Style
	IgnoredStyle  lipgloss.Style
	LabelStyle    lipgloss.Style
	InputStyle    lipgloss.Style
	PanelStyle    lipgloss.Style

	StatusDefaultStyle   lipgloss.Style
	StatusExecutingStyle lipgloss.Style
	StatusDoneStyle      lipgloss.Style
	StatusErrorStyle     lipgloss.Style

	LogInfoStyle  lipgloss.Style
	LogErrorStyle lipgloss.Style
)

func init() {
	buildStyles()
}

// SetColors replaces the palette. Empty values keep the current color.
func SetColors(primary, errColor, muted string) {
	if primary != "" {
		ColorPrimary = lipgloss.Color(primary)
	}
	if errColor != "" {
		ColorError = lipgloss.Color(errColor)
	}
	if muted != "" {
		ColorMuted = lipgloss.Color(muted)
	}
	buildStyles()
}

func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	PathStyle = lipgloss.NewStyle().Bold(true)
	ActionStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	DisabledStyle = lipgloss.NewStyle().Foreground(ColorMuted).Faint(true)
	DirStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	FileStyle = lipgloss.NewStyle()
	IgnoredStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	LabelStyle = lipgloss.NewStyle().Bold(true)
	InputStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(ColorMuted)
	PanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorPrimary).Padding(0, 1)

	StatusDefaultStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusExecutingStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	StatusDoneStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	StatusErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	LogInfoStyle = lipgloss.NewStyle()
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
}
