package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"k8s.io/klog/v2"

	"github.com/idilsaglam/fruits/internal/a11y"
	"github.com/idilsaglam/fruits/internal/model"
	"github.com/idilsaglam/fruits/internal/presenter"
	"github.com/idilsaglam/fruits/internal/ui"
)

// Title is shown once, at the top of the screen.
const Title = "Fruits Calories Counter"

// fallback size until the first tea.WindowSizeMsg arrives
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Frame border plus padding, and the announcement line under the list.
const (
	frameWidth  = 4
	frameHeight = 2
	statusLines = 1
)

type Options struct {
	Size a11y.ContentSize
}

type Model struct {
	list list.Model
	keys keyMap
	pool *rowPool
	size a11y.ContentSize

	// focus is the assistive focus inside the selected row (0 name,
	// 1 calories, 2 toggle) or ui.NoFocus while not exploring.
	focus        int
	announcement string
}

func New(p *presenter.Presenter, opt Options) Model {
	records := p.Records()
	li := make([]list.Item, 0, len(records))
	for _, f := range records {
		li = append(li, fruitItem{Fruit: f})
	}

	m := Model{
		keys:  defaultKeyMap(),
		pool:  &rowPool{},
		size:  opt.Size,
		focus: ui.NoFocus,
	}

	t := ui.Current()
	l := list.New(li, m.delegate(), 0, 0)
	l.Title = Title
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("fruit", "fruits")
	l.AdditionalShortHelpKeys = m.keys.bindings
	l.AdditionalFullHelpKeys = m.keys.bindings

	m.list = l
	m.setSize(defaultWidth, defaultHeight)
	return m
}

// Run starts the Bubble Tea program, blocks until the user quits and
// returns the final model.
func Run(p *presenter.Presenter, opt Options) (Model, error) {
	klog.V(1).InfoS("starting list", "rows", p.RowCount(), "textSize", opt.Size)
	m := New(p, opt)
	finalModel, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return m, err
	}
	fm, ok := finalModel.(Model)
	if !ok {
		return m, nil
	}
	return fm, nil
}

func (m Model) delegate() rowDelegate {
	return rowDelegate{pool: m.pool, size: m.size, focus: m.focus}
}

func (m *Model) setSize(w, h int) {
	m.list.SetSize(w-frameWidth, h-frameHeight-statusLines)
	m.bindPage()
}

// page returns the records currently on screen, in slot order.
func (m Model) page() []model.Fruit {
	items := m.list.VisibleItems()
	start, end := m.list.Paginator.GetSliceBounds(len(items))
	out := make([]model.Fruit, 0, end-start)
	for _, it := range items[start:end] {
		if fi, ok := it.(fruitItem); ok {
			out = append(out, fi.Fruit)
		}
	}
	return out
}

func (m *Model) bindPage() {
	page := m.page()
	m.pool.bind(page)
	klog.V(3).InfoS("bound page", "page", m.list.Paginator.Page, "rows", len(page))
}

// Rows returns the rows on the current page.
func (m Model) Rows() []presenter.Row {
	page := m.page()
	rows := make([]presenter.Row, len(page))
	for i, f := range page {
		rows[i] = m.pool.row(i, f)
	}
	return rows
}

// SelectedRow is the row under the list cursor.
func (m Model) SelectedRow() (presenter.Row, bool) {
	it, ok := m.list.SelectedItem().(fruitItem)
	if !ok {
		return presenter.Row{}, false
	}
	return m.pool.row(m.list.Cursor(), it.Fruit), true
}

// Favourites names the favourited rows on the current page.
func (m Model) Favourites() []string {
	var names []string
	for _, r := range m.Rows() {
		if r.IsFavourite() {
			names = append(names, r.PrimaryText())
		}
	}
	return names
}

func (m Model) Focus() int { return m.focus }

func (m Model) Announcement() string { return m.announcement }

func (m *Model) setFocus(focus int) {
	m.focus = focus
	m.list.SetDelegate(m.delegate())
	m.announce()
}

func (m *Model) announce() {
	row, ok := m.SelectedRow()
	if !ok || m.focus == ui.NoFocus {
		m.announcement = ""
		return
	}
	m.announcement = a11y.Announce(row.AccessibilityElements()[m.focus])
}

func (m *Model) moveFocus(delta int) {
	row, ok := m.SelectedRow()
	if !ok {
		return
	}
	n := len(row.AccessibilityElements())
	switch {
	case m.focus != ui.NoFocus:
		m.setFocus(((m.focus+delta)%n + n) % n)
	case delta < 0:
		m.setFocus(n - 1)
	default:
		m.setFocus(0)
	}
}

func (m *Model) toggleSelected() {
	it, ok := m.list.SelectedItem().(fruitItem)
	if !ok {
		return
	}
	pos := m.list.Cursor()
	m.bindPage()
	row := m.pool.row(pos, it.Fruit)
	row.ToggleFavourite()
	m.pool.slots[pos] = row.State
	klog.V(2).InfoS("toggled favourite", "fruit", it.Name, "slot", pos, "favourite", row.IsFavourite())
	m.announce()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, m.keys.Toggle):
				m.toggleSelected()
				return m, nil
			case key.Matches(msg, m.keys.NextElement):
				m.moveFocus(1)
				return m, nil
			case key.Matches(msg, m.keys.PrevElement):
				m.moveFocus(-1)
				return m, nil
			}
		}
	}

	prev, _ := m.list.SelectedItem().(fruitItem)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.bindPage()
	if m.focus != ui.NoFocus {
		// filtering can swap the selected record without moving the cursor
		if cur, _ := m.list.SelectedItem().(fruitItem); cur != prev {
			// a new row starts from its first element
			m.setFocus(0)
		} else {
			m.announce()
		}
	}
	return m, cmd
}

func (m Model) View() string {
	t := ui.Current()
	status := t.Muted.Render("tab: explore row")
	if m.announcement != "" {
		status = t.Accent.Render("♪ " + m.announcement)
	}
	return t.FrameStyle().Render(m.list.View() + "\n" + status)
}
