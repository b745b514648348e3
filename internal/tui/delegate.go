package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/fruits/internal/a11y"
	"github.com/idilsaglam/fruits/internal/model"
	"github.com/idilsaglam/fruits/internal/presenter"
	"github.com/idilsaglam/fruits/internal/ui"
)

// fruitItem adapts a record to bubbles/list.Item
type fruitItem struct {
	model.Fruit
}

func (i fruitItem) FilterValue() string { return i.Name }

// rowPool holds one slot per visible row. Slots are positional: when the
// page changes, a slot is rebound to whatever record now sits there.
type rowPool struct {
	slots []presenter.RowState
}

// bind attaches page[i] to slot i, growing the pool if the page got longer.
func (p *rowPool) bind(page []model.Fruit) {
	for len(p.slots) < len(page) {
		p.slots = append(p.slots, presenter.RowState{})
	}
	for i, f := range page {
		p.slots[i] = presenter.BindRow(f, &p.slots[i]).State
	}
}

// row returns the row drawn at slot pos for record f without mutating the pool.
func (p *rowPool) row(pos int, f model.Fruit) presenter.Row {
	if pos < 0 || pos >= len(p.slots) {
		return presenter.BindRow(f, nil)
	}
	return presenter.BindRow(f, &p.slots[pos])
}

// rowDelegate draws a fruit row; height follows the text-size category.
type rowDelegate struct {
	pool  *rowPool
	size  a11y.ContentSize
	focus int
}

func (d rowDelegate) Height() int                               { return presenter.Layout(d.size).Height() }
func (d rowDelegate) Spacing() int                              { return 1 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(fruitItem)
	if !ok {
		return
	}
	pos := index - m.Paginator.Page*m.Paginator.PerPage
	selected := index == m.Index()
	focus := ui.NoFocus
	if selected {
		focus = d.focus
	}
	fmt.Fprint(w, ui.RenderRow(d.pool.row(pos, it.Fruit), ui.RowOptions{
		Width:    m.Width(),
		Size:     d.size,
		Selected: selected,
		Focus:    focus,
	}))
}
