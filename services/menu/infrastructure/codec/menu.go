// Package codec converts menu snapshots to and from the JSON stored under
// menu keys and carried in legacy inline links.
package codec

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	menudomain "github.com/ghuser/qrmenu/services/menu/domain"
	"github.com/ghuser/qrmenu/services/menu/domain/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// wireMenu distinguishes a missing items field from an empty one.
type wireMenu struct {
	RestaurantName string             `json:"restaurantName"`
	Items          *[]models.MenuItem `json:"items"`
	LastUpdated    *time.Time         `json:"lastUpdated,omitempty"`
}

// Encode serializes menu. A nil item slice is written as [].
func Encode(menu models.MenuData) (string, error) {
	items := menu.Items
	if items == nil {
		items = []models.MenuItem{}
	}
	b, err := json.Marshal(wireMenu{
		RestaurantName: menu.RestaurantName,
		Items:          &items,
		LastUpdated:    menu.LastUpdated,
	})
	if err != nil {
		return "", fmt.Errorf("encode menu: %w", err)
	}
	return string(b), nil
}

// Decode parses a payload produced by Encode. Malformed JSON, null and
// payloads without an items array return an error wrapping ErrCorruptMenu.
func Decode(payload string) (models.MenuData, error) {
	// Unmarshal alone tolerates some truncated inputs.
	if !json.Valid([]byte(payload)) {
		return models.MenuData{}, fmt.Errorf("%w: malformed json", menudomain.ErrCorruptMenu)
	}
	var w *wireMenu
	if err := json.UnmarshalFromString(payload, &w); err != nil {
		return models.MenuData{}, fmt.Errorf("%w: %w", menudomain.ErrCorruptMenu, err)
	}
	if w == nil {
		return models.MenuData{}, fmt.Errorf("%w: null payload", menudomain.ErrCorruptMenu)
	}
	if w.Items == nil {
		return models.MenuData{}, fmt.Errorf("%w: missing items", menudomain.ErrCorruptMenu)
	}
	return models.MenuData{
		RestaurantName: w.RestaurantName,
		Items:          *w.Items,
		LastUpdated:    w.LastUpdated,
	}, nil
}
