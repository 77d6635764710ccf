package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/vendorkill/internal/ui"
)

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	if m.done || m.cancelled {
		return ""
	}
	w := m.width
	if w < 40 {
		w = 40
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")

	if m.screen == screenConfirm {
		s.WriteString(m.renderConfirm())
		s.WriteString("\n\n")
		s.WriteString("  " + m.help.View(confirmHelp(m.keys)))
		return s.String()
	}

	s.WriteString(m.renderBody())
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorCoral).
		Render("  " + ui.IconDiamond + " " + m.label)

	count := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render(fmt.Sprintf("  %d of %d selected", len(m.chosen), len(m.options)))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorCoral).
		Width(w - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, count))
}

// ─── Body (option list) ──────────────────────────────────────────────────────

func (m Model) renderBody() string {
	if len(m.options) == 0 {
		return lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render("  (nothing to select)")
	}

	vh := m.viewportHeight()
	var lines []string
	for i := m.offset; i < len(m.options) && i < m.offset+vh; i++ {
		lines = append(lines, m.renderOption(i))
	}

	if len(m.options) > vh {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render(fmt.Sprintf("  ── %d/%d ──", min(m.offset+vh, len(m.options)), len(m.options))))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderOption(i int) string {
	o := m.options[i]

	box := ui.IconUnchecked
	boxColor := ui.ColorMuted
	if m.chosen[o.Key] {
		box = ui.IconChecked
		boxColor = ui.ColorSuccess
	}
	boxStr := lipgloss.NewStyle().Foreground(boxColor).Render(box)
	numStr := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(fmt.Sprintf("%3d.", o.Key))

	labelColor := ui.ColorText
	if i == m.cursor {
		labelColor = ui.ColorPrimary
	}
	label := lipgloss.NewStyle().Foreground(labelColor).Render(o.Label)

	prefix := "  "
	if i == m.cursor {
		prefix = " " + lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Render(ui.IconBlock)
	}
	return fmt.Sprintf("%s %s %s %s", prefix, boxStr, numStr, label)
}

// ─── Confirmation ────────────────────────────────────────────────────────────

func (m Model) renderConfirm() string {
	chosen := m.chosenOptions()

	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(ui.ColorError).
		Bold(true).
		Render(fmt.Sprintf("  %s Permanently delete %d director%s? This cannot be undone.",
			ui.IconWarning, len(chosen), pluralY(len(chosen)))))
	lines = append(lines, "")
	for _, o := range chosen {
		lines = append(lines, fmt.Sprintf("    %s %s", ui.IconBullet, o.Label))
	}
	return strings.Join(lines, "\n")
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter() string {
	return "  " + m.help.View(selectHelp(m.keys))
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
