package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/qrmenu/pkg/errhttp"
	"github.com/ghuser/qrmenu/pkg/kv"
	"github.com/ghuser/qrmenu/pkg/session"
	appsvcs "github.com/ghuser/qrmenu/services/menu/application/services"
	menudomain "github.com/ghuser/qrmenu/services/menu/domain"
	"github.com/ghuser/qrmenu/services/menu/domain/models"
	domainsvcs "github.com/ghuser/qrmenu/services/menu/domain/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"menu not found"`
} // @name ErrorResponse

// ItemRequest is the request body for creating or replacing a menu item.
type ItemRequest struct {
	Name        string        `json:"name"        validate:"required,max=255"                                 example:"Caesar Salad"`
	Description string        `json:"description" validate:"max=1000"                                         example:"Fresh romaine lettuce"`
	Price       *models.Price `json:"price"       validate:"required"                                         swaggertype:"number" example:"12.99"`
	Category    string        `json:"category"    validate:"required,oneof=appetizers mains desserts beverages" example:"appetizers"`
	Image       string        `json:"image,omitempty" validate:"max=2048"`
} // @name ItemRequest

func (r *ItemRequest) input() (models.ItemInput, error) {
	category, err := models.ParseCategory(r.Category)
	if err != nil {
		return models.ItemInput{}, fmt.Errorf("%w: %w", menudomain.ErrInvalidMenuItem, err)
	}
	return models.ItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Category:    category,
		Image:       r.Image,
	}, nil
}

// ItemResponse is one menu item as shown to operators and diners.
type ItemResponse struct {
	ID           string  `json:"id"            example:"1"`
	Name         string  `json:"name"          example:"Caesar Salad"`
	Description  string  `json:"description"   example:"Fresh romaine lettuce"`
	Price        float64 `json:"price"         example:"12.99"`
	PriceDisplay string  `json:"price_display" example:"$12.99"`
	Category     string  `json:"category"      example:"appetizers"`
	Image        string  `json:"image,omitempty"`
} // @name ItemResponse

// SectionResponse is one non-empty category of a menu.
type SectionResponse struct {
	Category string         `json:"category" example:"mains"`
	Title    string         `json:"title"    example:"Main Courses"`
	Items    []ItemResponse `json:"items"`
} // @name SectionResponse

// CodeResponse is a generated QR code.
type CodeResponse struct {
	URL   string `json:"url"   example:"https://menu.example.com/menu?id=menu_1709294400000_a1b2c3d4e"`
	Image string `json:"image" example:"data:image/png;base64,iVBORw0KGgo="`
} // @name CodeResponse

// EditorResponse is the operator's view after every editor request.
type EditorResponse struct {
	MenuID         string            `json:"menu_id"         example:"menu_1709294400000_a1b2c3d4e"`
	RestaurantName string            `json:"restaurant_name" example:"Joe's Diner"`
	Items          []ItemResponse    `json:"items"`
	Sections       []SectionResponse `json:"sections"`
	Code           *CodeResponse     `json:"code"`
	CodeStatus     string            `json:"code_status"     example:"ready"`
} // @name EditorResponse

// ItemMutationResponse is returned when an item is created or replaced.
type ItemMutationResponse struct {
	Item   ItemResponse   `json:"item"`
	Editor EditorResponse `json:"editor"`
} // @name ItemMutationResponse

// MenuViewResponse is the diner's read-only menu.
type MenuViewResponse struct {
	RestaurantName string            `json:"restaurant_name" example:"Joe's Diner"`
	Sections       []SectionResponse `json:"sections"`
} // @name MenuViewResponse

func toItemResponse(it models.MenuItem) ItemResponse {
	price, _ := it.Price.Decimal().Float64()
	return ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		Price:        price,
		PriceDisplay: it.Price.Display(),
		Category:     it.Category.String(),
		Image:        it.Image,
	}
}

func toItemResponses(items []models.MenuItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

func toSectionResponses(items []models.MenuItem) []SectionResponse {
	sections := domainsvcs.GroupByCategory(items)
	out := make([]SectionResponse, 0, len(sections))
	for _, s := range sections {
		out = append(out, SectionResponse{
			Category: s.Category.String(),
			Title:    s.Title,
			Items:    toItemResponses(s.Items),
		})
	}
	return out
}

func toEditorResponse(state appsvcs.EditorState) EditorResponse {
	resp := EditorResponse{
		MenuID:         state.MenuID,
		RestaurantName: state.Menu.Name(),
		Items:          toItemResponses(state.Menu.Items),
		Sections:       toSectionResponses(state.Menu.Items),
		CodeStatus:     string(state.CodeStatus),
	}
	if state.Code != nil {
		resp.Code = &CodeResponse{URL: state.Code.URL, Image: state.Code.DataURL()}
	}
	return resp
}

func toMenuViewResponse(menu models.MenuData) MenuViewResponse {
	return MenuViewResponse{
		RestaurantName: menu.Name(),
		Sections:       toSectionResponses(menu.Items),
	}
}

// clientScope returns the session-backed store holding the client's menu id.
// It writes a 500 and returns false when the session middleware did not run.
func clientScope(w http.ResponseWriter, r *http.Request) (kv.Store, bool) {
	values, err := session.FromContext(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return nil, false
	}
	return values, true
}
