package model

import "fmt"

// Fruit is the domain model for a list entry.
// The json key "callories" is the document's spelling and stays that way.
type Fruit struct {
	Name     string `json:"name"`
	Calories int    `json:"callories"`
}

// CaloriesText is the secondary label shown under the name.
func (f Fruit) CaloriesText() string {
	return fmt.Sprintf("%d per 100g", f.Calories)
}
