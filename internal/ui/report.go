package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/vendorkill/internal/catalog"
	"github.com/lakshaymaurya-felt/vendorkill/internal/core"
)

// ruleWidth is the width of the horizontal rules around listings.
const ruleWidth = 58

func rule() string {
	return "  " + mutedStyle().Render(strings.Repeat("-", ruleWidth))
}

// Header prints the run banner.
func Header(w io.Writer, root string, marker string) {
	title := TitleStyle().Render("  " + IconDiamond + " VendorKill")
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, mutedStyle().Render(fmt.Sprintf("  Searching %s for %s directories", root, marker)))
	fmt.Fprintln(w)
}

// NoneFound prints the empty-result message.
func NoneFound(w io.Writer, marker string) {
	fmt.Fprintln(w, mutedStyle().Render(fmt.Sprintf("  No %s directories found", marker)))
}

// Summary prints "Found N <marker> directories (<size> total)".
func Summary(w io.Writer, marker string, s catalog.Summary) {
	noun := "directories"
	if s.Count == 1 {
		noun = "directory"
	}
	total := s.Human
	if s.Partial {
		total = ">= " + total
	}
	fmt.Fprintf(w, "  Found %d %s %s (%s total)\n", s.Count, marker, noun, sizeStyle().Render(total))
}

// Detail prints every entry in two columns: index and project on the left,
// size on the right, with the full path on its own muted line.
func Detail(w io.Writer, entries []catalog.Entry) {
	if len(entries) == 0 {
		return
	}

	nameWidth := 0
	for _, e := range entries {
		nameWidth = max(nameWidth, lipgloss.Width(e.ProjectName))
	}

	fmt.Fprintln(w, rule())
	for _, e := range entries {
		num := mutedStyle().Render(fmt.Sprintf("%3d.", e.Index))
		name := lipgloss.NewStyle().Foreground(ColorCoral).Bold(true).
			Width(nameWidth).Render(e.ProjectName)
		size := sizeStyle().Render(core.FormatSize(e.Size))
		tag := ""
		if e.Partial {
			tag = "  " + TagWarningStyle().Render("partial")
		}
		fmt.Fprintf(w, "  %s %s  %s%s\n", num, name, size, tag)
		fmt.Fprintf(w, "       %s\n", mutedStyle().Render(e.Path))
	}
	fmt.Fprintln(w, rule())
}

// Warnings prints non-fatal problems collected during the run.
func Warnings(w io.Writer, warnings []error) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, TagWarningStyle().Render(fmt.Sprintf("  %s %d warning(s)", IconWarning, len(warnings))))
	for _, err := range warnings {
		fmt.Fprintln(w, mutedStyle().Render("    "+err.Error()))
	}
}

// Deleted reports one removed (or, in a dry run, removable) directory.
func Deleted(w io.Writer, e catalog.Entry, dryRun bool) {
	verb := "Deleted"
	if dryRun {
		verb = "Would delete"
	}
	fmt.Fprintf(w, "  %s %s %s (%s)\n",
		successStyle().Render(IconSuccess), verb, e.Path, core.FormatSize(e.Size))
}

// Failed reports one directory that could not be removed.
func Failed(w io.Writer, e catalog.Entry, err error) {
	fmt.Fprintf(w, "  %s %s: %s\n", errorStyle().Render(IconError), e.ProjectName, errorStyle().Render(err.Error()))
}

// Reclaimed prints the total freed by the run.
func Reclaimed(w io.Writer, count int, bytes int64, dryRun bool) {
	verb := "Reclaimed"
	if dryRun {
		verb = "Would reclaim"
	}
	fmt.Fprintf(w, "\n  %s %s from %d director%s\n",
		verb, sizeStyle().Render(core.FormatSize(bytes)), count, plural(count, "y", "ies"))
}

// Volume prints the free-space change of the scanned volume.
func Volume(w io.Writer, r core.VolumeReport) {
	fmt.Fprintln(w, mutedStyle().Render("  Disk: "+r.String()))
}

// NothingSelected is printed when the operator picks no entries.
func NothingSelected(w io.Writer) {
	fmt.Fprintln(w, mutedStyle().Render("  Nothing selected, no directories deleted"))
}

// Thanks prints the closing line.
func Thanks(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle().Render("  Thanks for using VendorKill!"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
