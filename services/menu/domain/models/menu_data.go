package models

import "time"

// DefaultRestaurantName stands in until the operator names the restaurant.
const DefaultRestaurantName = "My Restaurant"

// MenuData is a menu snapshot: everything a diner's view needs.
// LastUpdated is set on save and absent from inline legacy links.
type MenuData struct {
	RestaurantName string     `json:"restaurantName"`
	Items          []MenuItem `json:"items"`
	LastUpdated    *time.Time `json:"lastUpdated,omitempty"`
}

// NewMenuData builds a snapshot, applying the placeholder name when name is blank.
func NewMenuData(name string, items []MenuItem) MenuData {
	if name == "" {
		name = DefaultRestaurantName
	}
	out := make([]MenuItem, len(items))
	copy(out, items)
	return MenuData{RestaurantName: name, Items: out}
}

// Name returns the restaurant name or the placeholder.
func (m MenuData) Name() string {
	if m.RestaurantName == "" {
		return DefaultRestaurantName
	}
	return m.RestaurantName
}

// Equal compares name and items, ignoring LastUpdated.
func (m MenuData) Equal(o MenuData) bool {
	if m.RestaurantName != o.RestaurantName || len(m.Items) != len(o.Items) {
		return false
	}
	for i := range m.Items {
		if !m.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

// SampleItems seeds a brand-new menu so the operator starts from a working example.
func SampleItems() []MenuItem {
	return []MenuItem{
		{
			ID:          "1",
			Name:        "Caesar Salad",
			Description: "Fresh romaine lettuce with parmesan cheese and croutons",
			Price:       mustParsePrice("12.99"),
			Category:    CategoryAppetizers,
		},
		{
			ID:          "2",
			Name:        "Grilled Salmon",
			Description: "Atlantic salmon with lemon herb butter and seasonal vegetables",
			Price:       mustParsePrice("24.99"),
			Category:    CategoryMains,
		},
		{
			ID:          "3",
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with vanilla ice cream",
			Price:       mustParsePrice("8.99"),
			Category:    CategoryDesserts,
		},
	}
}
