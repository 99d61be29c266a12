package services

import "github.com/ghuser/qrmenu/services/menu/domain/models"

// Section is one category heading with its items, as diners see it.
type Section struct {
	Category models.Category
	Title    string
	Items    []models.MenuItem
}

// Partition buckets items by category, preserving relative order.
// Categories with no items have no key.
func Partition(items []models.MenuItem) map[models.Category][]models.MenuItem {
	out := make(map[models.Category][]models.MenuItem)
	for _, it := range items {
		out[it.Category] = append(out[it.Category], it)
	}
	return out
}

// GroupByCategory returns the non-empty sections in the fixed category order.
// Items with an unknown category are not shown.
func GroupByCategory(items []models.MenuItem) []Section {
	buckets := Partition(items)
	sections := make([]Section, 0, len(buckets))
	for _, c := range models.Categories() {
		group := buckets[c]
		if len(group) == 0 {
			continue
		}
		sections = append(sections, Section{
			Category: c,
			Title:    c.Title(),
			Items:    group,
		})
	}
	return sections
}
