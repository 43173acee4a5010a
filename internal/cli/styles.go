// Package cli provides the console surface: styled output with lipgloss,
// validated line input, and a waiting indicator.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for the dashboard banner.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats dividers and secondary text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true)
)

// Icons.
const (
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	HeartIcon   = "🩺"
)

// DividerWidth is the width of banner and result dividers.
const DividerWidth = 40

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatTitle formats a title with the dashboard icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(HeartIcon + " " + title)
}

// Divider renders a horizontal rule made of ch.
func Divider(ch string) string {
	return SubtleStyle.Render(strings.Repeat(ch, DividerWidth))
}

// RenderBanner renders a title between two "=" dividers.
func RenderBanner(title string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		Divider("="),
		"  "+FormatTitle(title),
		Divider("="),
	)
}
