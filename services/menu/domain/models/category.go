package models

import "fmt"

// Category is the menu section an item belongs to.
type Category string

const (
	CategoryAppetizers Category = "appetizers"
	CategoryMains      Category = "mains"
	CategoryDesserts   Category = "desserts"
	CategoryBeverages  Category = "beverages"
)

// categoryOrder is the fixed presentation order.
var categoryOrder = []Category{
	CategoryAppetizers,
	CategoryMains,
	CategoryDesserts,
	CategoryBeverages,
}

var categoryTitles = map[Category]string{
	CategoryAppetizers: "Appetizers",
	CategoryMains:      "Main Courses",
	CategoryDesserts:   "Desserts",
	CategoryBeverages:  "Beverages",
}

// Categories returns every category in presentation order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory returns the Category named s.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryTitles[c]
	return ok
}

// Title is the heading diners see for the category.
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return string(c)
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}
