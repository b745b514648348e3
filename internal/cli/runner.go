package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"k8s.io/klog/v2"

	"github.com/idilsaglam/fruits/internal/a11y"
	"github.com/idilsaglam/fruits/internal/config"
	"github.com/idilsaglam/fruits/internal/filter"
	"github.com/idilsaglam/fruits/internal/model"
	"github.com/idilsaglam/fruits/internal/presenter"
	"github.com/idilsaglam/fruits/internal/store/jsonstore"
	"github.com/idilsaglam/fruits/internal/tui"
	"github.com/idilsaglam/fruits/internal/ui"
)

// width of the static `ls` rendering
const listWidth = 40

// Options tune output behavior from root flags.
type Options struct {
	Config config.Config
	Out    io.Writer
	Err    io.Writer

	// Load supplies the records; nil means the embedded document.
	Load func() ([]model.Fruit, error)
}

func (o Options) load() ([]model.Fruit, error) {
	if o.Load == nil {
		return jsonstore.Load()
	}
	return o.Load()
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o Options) err() io.Writer {
	if o.Err == nil {
		return os.Stderr
	}
	return o.Err
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no subcommand it opens the interactive list.
func Run(args []string, opt Options) int {
	cmd := "show"
	if len(args) > 0 {
		cmd = args[0]
	}
	if len(args) > 1 {
		ui.Fail(opt.err(), fmt.Sprintf("%s: unexpected arguments %v", cmd, args[1:]))
		return 2
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.out())
		return 0
	case "show", "ls", "a11y", "dump":
	default:
		ui.Fail(opt.err(), "unknown subcommand: "+cmd)
		fmt.Fprintln(opt.err())
		PrintHelp(opt.err())
		return 2
	}

	if err := opt.Config.Validate(); err != nil {
		ui.Fail(opt.err(), err.Error())
		return 2
	}
	ui.SetTheme(opt.Config.Theme)
	size, _ := opt.Config.ContentSize()

	records, code := loadRecords(opt)
	if code != 0 {
		return code
	}
	p := presenter.New(records)

	switch cmd {
	case "ls":
		return doList(p, size, opt)
	case "a11y":
		return doTranscript(p, size, opt)
	case "dump":
		spew.Fdump(opt.out(), records)
		return 0
	}
	return doShow(p, size, opt)
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `fruits - calories per 100g, screen-reader friendly

Usage:
  fruits [flags] [subcommand]

Subcommands:
  show               Interactive list (default)
  ls                 Print the list once
  a11y               Print what a screen reader announces, row by row
  dump               Dump decoded records (debugging)

Flags:
  -theme classic|neon|mono      (env %s)
  -text-size xs..xxxl|ax1..ax5  (env %s)
  -filter <expr>                (env %s), e.g. "Calories < 60"

Keys (show):
  space/enter  toggle favourite
  tab          move through name, calories, favourite
  /            filter by name
  q            quit
`, config.EnvTheme, config.EnvTextSize, config.EnvFilter)
}

// loadRecords decodes the embedded document and applies the filter.
// A decode failure is fatal: the document ships inside the binary.
func loadRecords(opt Options) ([]model.Fruit, int) {
	records, err := opt.load()
	if err != nil {
		var pe *jsonstore.ParseError
		if errors.As(err, &pe) {
			klog.ErrorS(err, "embedded fruit document is malformed", "record", pe.Record, "field", pe.Field)
		}
		ui.Fail(opt.err(), "load: "+err.Error())
		return nil, 1
	}
	klog.V(1).InfoS("loaded fruits", "count", len(records))

	f, err := filter.Compile(opt.Config.Filter)
	if err != nil {
		ui.Fail(opt.err(), err.Error())
		return nil, 2
	}
	records, err = f.Apply(records)
	if err != nil {
		ui.Fail(opt.err(), err.Error())
		return nil, 1
	}
	klog.V(2).InfoS("filtered fruits", "filter", f.String(), "count", len(records))
	return records, 0
}

// -------------- subcommand impls ----------------

func doShow(p *presenter.Presenter, size a11y.ContentSize, opt Options) int {
	detachLogs()
	fm, err := tui.Run(p, tui.Options{Size: size})
	if err != nil {
		ui.Fail(opt.err(), "tui: "+err.Error())
		return 1
	}
	sessionSummary(opt.out(), fm.Favourites())
	return 0
}

func doList(p *presenter.Presenter, size a11y.ContentSize, opt Options) int {
	t := ui.Current()
	lines := []string{t.Title.Render(tui.Title), ""}
	if p.RowCount() == 0 {
		lines = append(lines, t.Muted.Render("no fruits"))
	}
	for i := 0; i < p.RowCount(); i++ {
		lines = append(lines, ui.RenderRow(p.BindRow(i, nil), ui.RowOptions{
			Width: listWidth,
			Size:  size,
			Focus: ui.NoFocus,
		}))
	}
	lines = append(lines, "", t.Muted.Render(fmt.Sprintf("%d fruits · text size %s", p.RowCount(), size)))
	ui.Panel(opt.out(), lines)
	return 0
}

func doTranscript(p *presenter.Presenter, size a11y.ContentSize, opt Options) int {
	w := opt.out()
	fmt.Fprintf(w, "%s, heading\n", tui.Title)
	for i := 0; i < p.RowCount(); i++ {
		fmt.Fprintf(w, "row %d of %d\n", i+1, p.RowCount())
		for j, el := range p.BindRow(i, nil).AccessibilityElements() {
			line := fmt.Sprintf("  %d. %s", j+1, a11y.Announce(el))
			if el.Font != nil {
				line += fmt.Sprintf("  [%s %gpt, %gpt at %s]", el.Font.Name, el.Font.Size, el.Font.Scaled(size), size)
			}
			fmt.Fprintln(w, line)
		}
	}
	return 0
}

// sessionSummary reports the favourites that were on screen at quit.
// They are not kept anywhere.
func sessionSummary(w io.Writer, favourites []string) {
	if len(favourites) == 0 {
		return
	}
	ui.OK(w, fmt.Sprintf("favourites this session: %s", strings.Join(favourites, ", ")))
}

// detachLogs keeps klog off the terminal while the alt screen owns it.
func detachLogs() {
	klog.LogToStderr(false)
	if f := flag.Lookup("log_file"); f != nil && f.Value.String() != "" {
		return
	}
	klog.SetOutput(io.Discard)
}
