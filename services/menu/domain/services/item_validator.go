// Package services contains stateless domain services for the menu bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ghuser/qrmenu/services/menu/domain/models"
)

const maxItemNameLength = 255

// ValidateName enforces the item name rules:
//   - Not empty once surrounding whitespace is trimmed
//   - At most 255 characters
//   - No control characters (Unicode category Cc)
func ValidateName(name string) error {
	s := strings.TrimSpace(name)
	if s == "" {
		return fmt.Errorf("item name is required")
	}
	return validateText("item name", s)
}

// ValidateRestaurantName applies the item name length and character rules to
// a restaurant name. Blank is allowed and means the placeholder name.
func ValidateRestaurantName(name string) error {
	s := strings.TrimSpace(name)
	if s == "" {
		return nil
	}
	return validateText("restaurant name", s)
}

func validateText(label, s string) error {
	if utf8.RuneCountInString(s) > maxItemNameLength {
		return fmt.Errorf("%s must not exceed %d characters", label, maxItemNameLength)
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s must not contain control characters", label)
		}
	}

	return nil
}

// ValidateItemInput checks an add/update payload before it reaches the collection.
func ValidateItemInput(in models.ItemInput) error {
	if err := ValidateName(in.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if in.Price.IsNegative() {
		return fmt.Errorf("price must not be negative, got %s", in.Price.Decimal())
	}

	if !in.Category.Valid() {
		return fmt.Errorf("unknown category %q", in.Category)
	}

	return nil
}

// NormalizeItemInput trims the name and description.
func NormalizeItemInput(in models.ItemInput) models.ItemInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	return in
}
