// Package styles holds the active color palette and the lipgloss styles
// derived from it.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette is the palette the styles below were built from.
var CurrentPalette Palette

var (
	ToastSuccessStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style

	ToastMessageStyle     lipgloss.Style
	ToastDescriptionStyle lipgloss.Style
	ToastMetaStyle        lipgloss.Style

	TitleStyle lipgloss.Style
	MutedStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		Background(p.Surface).
		Foreground(p.Foreground).
		Padding(0, 1)

	ToastSuccessStyle = toastBase.BorderForeground(p.Success)
	ToastErrorStyle = toastBase.BorderForeground(p.Error)
	ToastInfoStyle = toastBase.BorderForeground(p.Info)
	ToastWarningStyle = toastBase.BorderForeground(p.Warning)

	ToastMessageStyle = lipgloss.NewStyle().Bold(true)
	ToastDescriptionStyle = lipgloss.NewStyle().Foreground(p.Muted)
	ToastMetaStyle = lipgloss.NewStyle().Foreground(p.Muted).Italic(true)

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
