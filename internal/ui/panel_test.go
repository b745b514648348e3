package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/fruits/internal/a11y"
	"github.com/idilsaglam/fruits/internal/model"
	"github.com/idilsaglam/fruits/internal/presenter"
)

func TestRenderRowHeightFollowsTextSize(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	row := presenter.BindRow(model.Fruit{Name: "Banana", Calories: 89}, nil)
	for _, cs := range []a11y.ContentSize{a11y.SizeXS, a11y.SizeL, a11y.SizeAX1, a11y.SizeAX5} {
		out := RenderRow(row, RowOptions{Width: 40, Size: cs, Focus: NoFocus})
		want := presenter.Layout(cs).Height()
		if got := lipgloss.Height(out); got != want {
			t.Fatalf("%v: height %d, want %d\n%s", cs, got, want, out)
		}
		if !strings.Contains(out, "Banana") || !strings.Contains(out, "89 per 100g") {
			t.Fatalf("%v: missing labels:\n%s", cs, out)
		}
	}
}

func TestRenderRowStar(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	row := presenter.BindRow(model.Fruit{Name: "Apple", Calories: 52}, nil)
	if out := RenderRow(row, RowOptions{Width: 40}); !strings.Contains(out, "( )") {
		t.Fatalf("expected empty star:\n%s", out)
	}
	row.ToggleFavourite()
	out := RenderRow(row, RowOptions{Width: 40, Selected: true, Focus: 2})
	if !strings.Contains(out, "(*)") {
		t.Fatalf("expected filled star:\n%s", out)
	}
	if !strings.HasPrefix(out, ">") {
		t.Fatalf("selected row must carry the cursor mark:\n%s", out)
	}
}

func TestLabelStyleWeight(t *testing.T) {
	base := lipgloss.NewStyle()
	if LabelStyle(base, presenter.PrimaryFont, a11y.SizeL).GetBold() {
		t.Fatal("20pt must not be bold")
	}
	if !LabelStyle(base, presenter.PrimaryFont, a11y.SizeAX1).GetBold() {
		t.Fatal("scaled primary label must turn bold")
	}
	if LabelStyle(base, presenter.SecondaryFont, a11y.SizeXXXL).GetBold() {
		t.Fatal("secondary label below the accessibility sizes must stay regular")
	}
	for cs := a11y.SizeAX1; cs <= a11y.SizeAX5; cs++ {
		if !LabelStyle(base, presenter.SecondaryFont, cs).GetBold() {
			t.Fatalf("%v: accessibility sizes must be bold", cs)
		}
	}
	if !LabelStyle(base, presenter.SecondaryFont, a11y.SizeXS).GetFaint() {
		t.Fatal("small secondary label must be faint")
	}
}

func TestPanelAndStatus(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"Fruits", "Apple"})
	OK(&buf, "done")
	Fail(&buf, "broken")
	out := buf.String()
	for _, want := range []string{"+", "Fruits", "Apple", "✔ done", "✖ broken"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("classic")
	for _, name := range []string{"classic", "neon", "mono"} {
		SetTheme(name)
		if Current().Name != name {
			t.Fatalf("SetTheme(%q) gave %q", name, Current().Name)
		}
		if Current().Star(true) == Current().Star(false) {
			t.Fatalf("%s: star glyphs must differ", name)
		}
	}
	SetTheme("unknown")
	if Current().Name != "classic" {
		t.Fatalf("unknown theme must fall back to classic, got %q", Current().Name)
	}
}
