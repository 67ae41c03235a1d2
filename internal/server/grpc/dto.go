package grpc

import "github.com/dmitrijs2005/storefront/internal/models"

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	OK          bool             `json:"ok"`
	Message     string           `json:"message,omitempty"`
	Identity    *models.Identity `json:"identity,omitempty"`
	AccessToken string           `json:"access_token,omitempty"`
}

type currentUserResponse struct {
	State    string           `json:"state"`
	Identity *models.Identity `json:"identity"`
}

type lineRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type cartResponse struct {
	Items      []models.CartLine `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
	Merged     *bool             `json:"merged,omitempty"`
	Quantity   int               `json:"quantity,omitempty"`
}

type checkoutResponse struct {
	Receipt *models.Receipt   `json:"receipt,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type listRequest struct {
	Category string `json:"category"`
	// Filter is one of "", "sale", "deals" or "featured".
	Filter string `json:"filter"`
}

type searchRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Sort     string `json:"sort"`
}

type productsResponse struct {
	Products []models.Product `json:"products"`
}

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

type wishlistResponse struct {
	Added *bool                 `json:"added,omitempty"`
	Items []models.WishlistItem `json:"items"`
}
