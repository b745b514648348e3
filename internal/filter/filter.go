package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/idilsaglam/fruits/internal/model"
)

// DefaultExpression keeps every record.
const DefaultExpression = "All()"

// Env is what a filter expression sees for one record.
type Env struct {
	Name     string
	Calories int
}

func (e Env) All() bool {
	return true
}

func (e Env) None() bool {
	return false
}

// Names matches the record name case-insensitively against any of vals.
func (e Env) Names(vals ...string) bool {
	if len(vals) == 0 {
		return true
	}
	for _, val := range vals {
		if strings.EqualFold(val, e.Name) {
			return true
		}
	}
	return false
}

// Filter is a compiled boolean expression over Env.
type Filter struct {
	src     string
	program *vm.Program
}

// Compile checks src against Env; an empty src means DefaultExpression.
func Compile(src string) (*Filter, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		src = DefaultExpression
	}
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}
	return &Filter{src: src, program: program}, nil
}

func (f *Filter) String() string { return f.src }

// Match evaluates the filter for a single record.
func (f *Filter) Match(fruit model.Fruit) (bool, error) {
	out, err := expr.Run(f.program, Env{Name: fruit.Name, Calories: fruit.Calories})
	if err != nil {
		return false, fmt.Errorf("filter %q on %q: %w", f.src, fruit.Name, err)
	}
	pass, _ := out.(bool)
	return pass, nil
}

// Apply returns the matching records in their original order.
func (f *Filter) Apply(fruits []model.Fruit) ([]model.Fruit, error) {
	out := make([]model.Fruit, 0, len(fruits))
	for _, fruit := range fruits {
		pass, err := f.Match(fruit)
		if err != nil {
			return nil, err
		}
		if pass {
			out = append(out, fruit)
		}
	}
	return out, nil
}
