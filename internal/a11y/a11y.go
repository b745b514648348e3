// Package a11y describes what a row exposes to assistive navigation: the
// focusable elements, their spoken text, and the fonts their text is drawn
// with before and after the user's text-size preference is applied.
package a11y

import (
	"fmt"
	"math"
	"strings"
)

// Trait flags an element's role and state for a screen reader.
type Trait uint8

const (
	TraitStaticText Trait = 1 << iota
	TraitButton
	TraitSelected
)

func (t Trait) Has(o Trait) bool { return t&o != 0 }

// Font is a named typeface at its unscaled point size.
type Font struct {
	Name string
	Size float64
}

// Scaled returns the point size after applying the content size category.
func (f Font) Scaled(c ContentSize) float64 {
	return math.Round(f.Size*c.Multiplier()*10) / 10
}

// Element is one stop in the assistive traversal order.
type Element struct {
	Label  string
	Hint   string
	Traits Trait

	// Font is nil for elements without text of their own (icon buttons).
	Font *Font
	// AdjustsForContentSize marks text that follows the text-size preference.
	AdjustsForContentSize bool
}

// Announce is what a screen reader speaks when the element gains focus:
// label, state, role, then hint.
func Announce(e Element) string {
	parts := make([]string, 0, 4)
	if e.Label != "" {
		parts = append(parts, e.Label)
	}
	if e.Traits.Has(TraitSelected) {
		parts = append(parts, "selected")
	}
	if e.Traits.Has(TraitButton) {
		parts = append(parts, "button")
	}
	if e.Hint != "" {
		parts = append(parts, e.Hint)
	}
	return strings.Join(parts, ", ")
}

// ContentSize is the user's preferred text size category.
type ContentSize int

const (
	SizeXS ContentSize = iota
	SizeS
	SizeM
	SizeL
	SizeXL
	SizeXXL
	SizeXXXL
	SizeAX1
	SizeAX2
	SizeAX3
	SizeAX4
	SizeAX5

	_sizeMax
)

// DefaultContentSize is the category every base font size is designed for.
const DefaultContentSize = SizeL

var contentSizes = [...]struct {
	name string
	// body text point size at this category; SizeL's 17pt is the reference
	body float64
}{
	SizeXS:   {"xs", 14},
	SizeS:    {"s", 15},
	SizeM:    {"m", 16},
	SizeL:    {"l", 17},
	SizeXL:   {"xl", 19},
	SizeXXL:  {"xxl", 21},
	SizeXXXL: {"xxxl", 23},
	SizeAX1:  {"ax1", 28},
	SizeAX2:  {"ax2", 33},
	SizeAX3:  {"ax3", 40},
	SizeAX4:  {"ax4", 47},
	SizeAX5:  {"ax5", 53},
}

func (c ContentSize) valid() bool { return c >= 0 && c < _sizeMax }

func (c ContentSize) String() string {
	if !c.valid() {
		return fmt.Sprintf("ContentSize(%d)", int(c))
	}
	return contentSizes[c].name
}

// Multiplier scales a base size designed for DefaultContentSize.
func (c ContentSize) Multiplier() float64 {
	if !c.valid() {
		c = DefaultContentSize
	}
	return contentSizes[c].body / contentSizes[DefaultContentSize].body
}

// IsAccessibilitySize reports one of the enlarged accessibility categories.
func (c ContentSize) IsAccessibilitySize() bool { return c >= SizeAX1 && c < _sizeMax }

// ParseContentSize accepts the short names ("xs" … "xxxl", "ax1" … "ax5").
// An empty string yields the default category.
func ParseContentSize(s string) (ContentSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultContentSize, nil
	}
	for i, cs := range contentSizes {
		if cs.name == s {
			return ContentSize(i), nil
		}
	}
	return DefaultContentSize, fmt.Errorf("unknown text size %q (want one of %s)", s, strings.Join(ContentSizeNames(), ", "))
}

// ContentSizeNames lists accepted category names from smallest to largest.
func ContentSizeNames() []string {
	names := make([]string, len(contentSizes))
	for i, cs := range contentSizes {
		names[i] = cs.name
	}
	return names
}
