package jsonstore

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/idilsaglam/fruits/internal/model"
)

// JSON-backed storage compiled into the binary. Read-only, decoded once at
// startup; a decode failure means the build shipped a broken document.

//go:embed fruits.json
var document []byte

// ParseError reports a document that does not have the expected shape.
// Record is -1 when the failure is not tied to a single entry.
type ParseError struct {
	Record int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Record < 0:
		return fmt.Sprintf("parse fruits: %v", e.Err)
	case e.Field == "":
		return fmt.Sprintf("parse fruits: record %d: %v", e.Record, e.Err)
	default:
		return fmt.Sprintf("parse fruits: record %d: field %q: %v", e.Record, e.Field, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errMissing  = errors.New("missing")
	errNotArray = errors.New("document is not an array")
)

// rawFruit uses pointers so an absent key is told apart from a zero value.
type rawFruit struct {
	Name     *string `json:"name"`
	Calories *int    `json:"callories"`
}

// Load decodes the embedded document.
func Load() ([]model.Fruit, error) {
	return Decode(document)
}

// MustLoad is Load for callers that cannot continue without the data.
func MustLoad() []model.Fruit {
	fruits, err := Load()
	if err != nil {
		panic(err)
	}
	return fruits
}

// Decode turns a document into records, keeping document order.
// On failure it returns nil and a *ParseError; no partial list escapes.
func Decode(b []byte) ([]model.Fruit, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, &ParseError{Record: -1, Err: fmt.Errorf("json unmarshal: %w", err)}
	}
	if raw == nil {
		return nil, &ParseError{Record: -1, Err: errNotArray}
	}

	fruits := make([]model.Fruit, 0, len(raw))
	for i, msg := range raw {
		var rf rawFruit
		if err := json.Unmarshal(msg, &rf); err != nil {
			return nil, &ParseError{Record: i, Err: fmt.Errorf("json unmarshal: %w", err)}
		}
		if rf.Name == nil {
			return nil, &ParseError{Record: i, Field: "name", Err: errMissing}
		}
		if rf.Calories == nil {
			return nil, &ParseError{Record: i, Field: "callories", Err: errMissing}
		}
		fruits = append(fruits, model.Fruit{Name: *rf.Name, Calories: *rf.Calories})
	}
	return fruits, nil
}
