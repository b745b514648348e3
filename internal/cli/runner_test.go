package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/idilsaglam/fruits/internal/config"
	"github.com/idilsaglam/fruits/internal/model"
	"github.com/idilsaglam/fruits/internal/store/jsonstore"
	"github.com/idilsaglam/fruits/internal/ui"
)

func run(t *testing.T, cfg config.Config, args ...string) (int, string, string) {
	t.Helper()
	defer ui.SetTheme("classic")
	var out, errOut bytes.Buffer
	code := Run(args, Options{Config: cfg, Out: &out, Err: &errOut})
	return code, out.String(), errOut.String()
}

func monoConfig() config.Config {
	c := config.Default()
	c.Theme = "mono"
	return c
}

func TestList(t *testing.T) {
	code, out, _ := run(t, monoConfig(), "ls")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	for _, want := range []string{"Fruits Calories Counter", "Apple", "52 per 100g", "Banana", "89 per 100g", "Orange", "47 per 100g", "3 fruits"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "Apple") > strings.Index(out, "Banana") || strings.Index(out, "Banana") > strings.Index(out, "Orange") {
		t.Fatalf("rows out of order:\n%s", out)
	}
}

func TestListFiltered(t *testing.T) {
	cfg := monoConfig()
	cfg.Filter = "Calories < 50"
	code, out, _ := run(t, cfg, "ls")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if strings.Contains(out, "Apple") || !strings.Contains(out, "Orange") || !strings.Contains(out, "1 fruits") {
		t.Fatalf("filter not applied:\n%s", out)
	}
}

func TestTranscript(t *testing.T) {
	cfg := monoConfig()
	cfg.TextSize = "ax1"
	code, out, _ := run(t, cfg, "a11y")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	want := []string{
		"Fruits Calories Counter, heading",
		"row 2 of 3",
		"  1. Banana  [Helvetica 20pt,",
		"  2. 89 per 100g  [Helvetica 15pt,",
		"  3. favourite, button, makes favourite",
		"at ax1]",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("missing %q in:\n%s", w, out)
		}
	}
	if got := strings.Count(out, "favourite, button"); got != 3 {
		t.Fatalf("want one toggle per row, got %d", got)
	}
}

func TestDump(t *testing.T) {
	code, out, _ := run(t, monoConfig(), "dump")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out, `"Banana"`) || !strings.Contains(out, "Calories: (int) 89") {
		t.Fatalf("unexpected dump:\n%s", out)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
		args []string
		want string
	}{
		{"unknown subcommand", monoConfig(), []string{"eat"}, "unknown subcommand: eat"},
		{"extra args", monoConfig(), []string{"ls", "Apple"}, "unexpected arguments"},
		{"bad theme", config.Config{Theme: "x", TextSize: "l"}, []string{"ls"}, "unknown theme"},
		{"bad text size", config.Config{Theme: "mono", TextSize: "huge"}, []string{"ls"}, "unknown text size"},
		{"bad filter", config.Config{Theme: "mono", TextSize: "l", Filter: "Calories +"}, []string{"ls"}, "compile filter"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := run(t, tc.cfg, tc.args...)
			if code != 2 {
				t.Fatalf("exit code %d, want 2", code)
			}
			if !strings.Contains(errOut, tc.want) {
				t.Fatalf("stderr missing %q:\n%s", tc.want, errOut)
			}
		})
	}
}

func TestMalformedDocumentIsFatal(t *testing.T) {
	defer ui.SetTheme("classic")
	var out, errOut bytes.Buffer
	code := Run([]string{"ls"}, Options{
		Config: monoConfig(),
		Out:    &out,
		Err:    &errOut,
		Load: func() ([]model.Fruit, error) {
			return jsonstore.Decode([]byte(`[{"name":"Apple","callories":"52"}]`))
		},
	})
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "load: parse fruits") {
		t.Fatalf("stderr = %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Fatalf("nothing may be rendered, got:\n%s", out.String())
	}
}

func TestSessionSummary(t *testing.T) {
	var buf bytes.Buffer
	sessionSummary(&buf, nil)
	if buf.Len() != 0 {
		t.Fatalf("no favourites must print nothing, got %q", buf.String())
	}
	sessionSummary(&buf, []string{"Apple", "Orange"})
	if !strings.Contains(buf.String(), "✔ favourites this session: Apple, Orange") {
		t.Fatalf("summary = %q", buf.String())
	}
}

func TestHelp(t *testing.T) {
	code, out, _ := run(t, config.Config{}, "help")
	if code != 0 || !strings.Contains(out, "Subcommands:") {
		t.Fatalf("help: code %d\n%s", code, out)
	}
}
