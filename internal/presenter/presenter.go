// Package presenter binds fruit records to list rows.
//
// A row is a slot in a recycled list. Its favourite flag belongs to the slot,
// not to the record: binding a different record to a slot clears the flag.
package presenter

import (
	"math"

	"github.com/idilsaglam/fruits/internal/a11y"
	"github.com/idilsaglam/fruits/internal/model"
)

// Spoken text of the favourite toggle.
const (
	FavouriteLabel      = "favourite"
	HintMakeFavourite   = "makes favourite"
	HintRemoveFavourite = "removes favourite"
)

// Base fonts of the name and calories labels, before text-size scaling.
var (
	PrimaryFont   = a11y.Font{Name: "Helvetica", Size: 20}
	SecondaryFont = a11y.Font{Name: "Helvetica", Size: 15}
)

// cellPoints is the point height one terminal line stands in for.
const cellPoints = 24.0

// Presenter serves a fixed, ordered list of records to a list view.
type Presenter struct {
	records []model.Fruit
}

// New presents records in the given order.
func New(records []model.Fruit) *Presenter {
	return &Presenter{records: records}
}

// RowCount is the number of records, one row each.
func (p *Presenter) RowCount() int { return len(p.records) }

// Record is the i-th record in presentation order.
func (p *Presenter) Record(i int) model.Fruit { return p.records[i] }

// Records returns a copy so callers cannot reorder the source list.
func (p *Presenter) Records() []model.Fruit {
	out := make([]model.Fruit, len(p.records))
	copy(out, p.records)
	return out
}

// RowState is what a row slot remembers between binds.
type RowState struct {
	Record    model.Fruit
	Bound     bool
	Favourite bool
}

// Row is a record bound to a slot.
type Row struct {
	State RowState
}

// BindRow binds record to a slot whose previous state is prev (nil for a
// fresh slot). The favourite flag survives only a rebind of the same record.
func BindRow(record model.Fruit, prev *RowState) Row {
	st := RowState{Record: record, Bound: true}
	if prev != nil && prev.Bound && prev.Record == record {
		st.Favourite = prev.Favourite
	}
	return Row{State: st}
}

// BindRow binds the i-th record.
func (p *Presenter) BindRow(i int, prev *RowState) Row {
	return BindRow(p.records[i], prev)
}

// ToggleFavourite flips the row's own favourite flag; records are untouched.
func (r *Row) ToggleFavourite() { r.State.Favourite = !r.State.Favourite }

func (r Row) IsFavourite() bool { return r.State.Favourite }

func (r Row) PrimaryText() string { return r.State.Record.Name }

func (r Row) SecondaryText() string { return r.State.Record.CaloriesText() }

// FavouriteHint describes what activating the toggle will do.
func FavouriteHint(favourite bool) string {
	if favourite {
		return HintRemoveFavourite
	}
	return HintMakeFavourite
}

// AccessibilityElements is the traversal order: name, calories, toggle.
func (r Row) AccessibilityElements() []a11y.Element {
	primary, secondary := PrimaryFont, SecondaryFont
	toggle := a11y.Element{
		Label:  FavouriteLabel,
		Hint:   FavouriteHint(r.State.Favourite),
		Traits: a11y.TraitButton,
	}
	if r.State.Favourite {
		toggle.Traits |= a11y.TraitSelected
	}
	return []a11y.Element{
		{
			Label:                 r.PrimaryText(),
			Traits:                a11y.TraitStaticText,
			Font:                  &primary,
			AdjustsForContentSize: true,
		},
		{
			Label:                 r.SecondaryText(),
			Traits:                a11y.TraitStaticText,
			Font:                  &secondary,
			AdjustsForContentSize: true,
		},
		toggle,
	}
}

// RowLayout is a row's height derived from its content.
type RowLayout struct {
	PrimaryLines   int
	SecondaryLines int
}

func (l RowLayout) Height() int { return l.PrimaryLines + l.SecondaryLines }

// Layout sizes a row for the given text-size category. Every row uses the
// same fonts, so the result does not depend on the record.
func Layout(cs a11y.ContentSize) RowLayout {
	return RowLayout{
		PrimaryLines:   LabelLines(PrimaryFont, cs),
		SecondaryLines: LabelLines(SecondaryFont, cs),
	}
}

// LabelLines is how many terminal lines a label in font f occupies.
func LabelLines(f a11y.Font, cs a11y.ContentSize) int {
	n := int(math.Ceil(f.Scaled(cs) / cellPoints))
	if n < 1 {
		n = 1
	}
	return n
}
