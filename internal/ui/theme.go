// Package ui holds the palette, icons and text blocks shared by the
// interactive selector and the plain report printer.
package ui

import "github.com/charmbracelet/lipgloss"

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#06B6D4")
	ColorCoral     = lipgloss.Color("#F87171")
	ColorText      = lipgloss.Color("#E5E7EB")
	ColorTextDim   = lipgloss.Color("#9CA3AF")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorError     = lipgloss.Color("#EF4444")
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconDiamond   = "◆"
	IconChevron   = "›"
	IconBullet    = "•"
	IconFolder    = "▸ "
	IconBlock     = "▌"
	IconPipe      = "│"
	IconSuccess   = "✓"
	IconError     = "✗"
	IconWarning   = "!"
	IconChecked   = "[x]"
	IconUnchecked = "[ ]"
)

// ─── Styles ──────────────────────────────────────────────────────────────────

// TitleStyle is used for section headings.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorCoral)
}

// HintBarStyle renders the key hint line under lists.
func HintBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// TagWarningStyle renders short inline warning tags such as "partial".
func TagWarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
}

func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

func sizeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
}

func successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}
