package order

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one line of a storefront order. The shape mirrors what
// the catalog read path serves: a stable id, display name and the
// effective price.
type CartItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is a submitted order as forwarded to the notification channel.
// Orders are not persisted; delivery is at-most-once.
type Order struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"`
	Items       []CartItem `json:"items"`
	Total       float64    `json:"total"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SubmitOrderRequest is the checkout payload from the storefront.
type SubmitOrderRequest struct {
	Cart        []CartItem `json:"cart"`
	Total       float64    `json:"total"`
	PhoneNumber string     `json:"phoneNumber"`
	Email       string     `json:"email"`
}
