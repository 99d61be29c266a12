package models

// MenuItem is one orderable dish or drink. JSON field names are part of the
// shareable-link and persisted-snapshot formats.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       Price    `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image,omitempty"`
}

// ItemInput is a MenuItem without its id: what add and update receive.
type ItemInput struct {
	Name        string
	Description string
	Price       Price
	Category    Category
	Image       string
}

// Input strips the id.
func (m MenuItem) Input() ItemInput {
	return ItemInput{
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		Image:       m.Image,
	}
}

// WithID builds the item identified by id.
func (in ItemInput) WithID(id string) MenuItem {
	return MenuItem{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
	}
}

// Equal compares every field; prices compare by amount.
func (m MenuItem) Equal(o MenuItem) bool {
	return m.ID == o.ID &&
		m.Name == o.Name &&
		m.Description == o.Description &&
		m.Price.Equal(o.Price) &&
		m.Category == o.Category &&
		m.Image == o.Image
}
