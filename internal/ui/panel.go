package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/fruits/internal/a11y"
	"github.com/idilsaglam/fruits/internal/presenter"
)

// Point sizes at which a label switches weight.
const (
	boldFromPoints  = 24.0
	faintBelowPoint = 14.0
)

// NoFocus marks a row whose elements are not under assistive focus.
const NoFocus = -1

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, Current().FrameStyle().Render(strings.Join(lines, "\n")))
}

// LabelStyle derives a label's terminal style from its scaled font size.
// Every label turns bold at the accessibility text sizes.
func LabelStyle(base lipgloss.Style, f a11y.Font, cs a11y.ContentSize) lipgloss.Style {
	pt := f.Scaled(cs)
	s := base.Height(presenter.LabelLines(f, cs))
	switch {
	case pt >= boldFromPoints, cs.IsAccessibilitySize():
		s = s.Bold(true)
	case pt < faintBelowPoint:
		s = s.Faint(true)
	}
	return s
}

// RowOptions controls how a bound row is drawn.
type RowOptions struct {
	Width    int
	Size     a11y.ContentSize
	Selected bool
	// Focus is the index of the accessibility element under focus, or NoFocus.
	Focus int
}

// RenderRow draws name and calories stacked on the left and the favourite
// star vertically centred on the right. The result is exactly
// presenter.Layout(opt.Size).Height() lines tall.
func RenderRow(row presenter.Row, opt RowOptions) string {
	t := Current()
	layout := presenter.Layout(opt.Size)

	prefix := strings.Repeat(" ", lipgloss.Width(t.CursorMark)+1)
	if opt.Selected {
		prefix = t.Cursor.Render(t.CursorMark) + " "
	}
	star := t.Star(row.IsFavourite())
	if row.IsFavourite() {
		star = t.Success.Render(star)
	} else {
		star = t.Muted.Render(star)
	}

	textWidth := opt.Width - lipgloss.Width(prefix) - lipgloss.Width(star) - 1
	if textWidth < 1 {
		textWidth = 1
	}

	name := LabelStyle(t.Primary, presenter.PrimaryFont, opt.Size).
		Width(textWidth).MaxWidth(textWidth).MaxHeight(layout.PrimaryLines)
	cal := LabelStyle(t.Secondary, presenter.SecondaryFont, opt.Size).
		Width(textWidth).MaxWidth(textWidth).MaxHeight(layout.SecondaryLines)

	nameText, calText := row.PrimaryText(), row.SecondaryText()
	if opt.Selected {
		switch opt.Focus {
		case 0:
			nameText = t.Focus.Render(nameText)
		case 1:
			calText = t.Focus.Render(calText)
		case 2:
			star = t.Focus.Render(t.Star(row.IsFavourite()))
		}
	}

	left := lipgloss.JoinVertical(lipgloss.Left, name.Render(nameText), cal.Render(calText))
	right := lipgloss.NewStyle().Height(layout.Height()).AlignVertical(lipgloss.Center).Render(star)
	gutter := lipgloss.NewStyle().Height(layout.Height()).Render(prefix)

	return lipgloss.JoinHorizontal(lipgloss.Top, gutter, left, " ", right)
}
