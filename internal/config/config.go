package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/idilsaglam/fruits/internal/a11y"
	"github.com/idilsaglam/fruits/internal/filter"
)

// Environment overrides, read before flags so a flag always wins.
const (
	EnvTheme    = "FRUITS_THEME"
	EnvTextSize = "FRUITS_TEXT_SIZE"
	EnvFilter   = "FRUITS_FILTER"
)

var themes = []string{"classic", "neon", "mono"}

// Config is the resolved root configuration.
type Config struct {
	Theme    string
	TextSize string
	Filter   string
}

// Default is the configuration with nothing set.
func Default() Config {
	return Config{
		Theme:    "classic",
		TextSize: a11y.DefaultContentSize.String(),
		Filter:   filter.DefaultExpression,
	}
}

// FromEnv applies environment overrides on top of Default.
func FromEnv(getenv func(string) string) Config {
	c := Default()
	if v := strings.TrimSpace(getenv(EnvTheme)); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(getenv(EnvTextSize)); v != "" {
		c.TextSize = v
	}
	if v := strings.TrimSpace(getenv(EnvFilter)); v != "" {
		c.Filter = v
	}
	return c
}

// RegisterFlags binds root flags, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Theme, "theme", c.Theme, "color theme: "+strings.Join(themes, "|"))
	fs.StringVar(&c.TextSize, "text-size", c.TextSize, "text size category: "+strings.Join(a11y.ContentSizeNames(), "|"))
	fs.StringVar(&c.Filter, "filter", c.Filter, `expression selecting fruits, e.g. "Calories < 60"`)
}

// ContentSize parses TextSize.
func (c Config) ContentSize() (a11y.ContentSize, error) {
	return a11y.ParseContentSize(c.TextSize)
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	known := false
	for _, t := range themes {
		if strings.EqualFold(t, c.Theme) {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(themes, ", "))
	}
	if _, err := c.ContentSize(); err != nil {
		return err
	}
	return nil
}
