package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidOrder marks a submission rejected by validation.
var ErrInvalidOrder = errors.New("invalid order")

// Service defines the order submission business logic.
type Service interface {
	// Submit validates the cart, fills in the total when the client
	// omitted it, and forwards the formatted summary to the
	// notification channel.
	Submit(ctx context.Context, req SubmitOrderRequest) (*Order, error)
}

type service struct {
	notifier Notifier
}

func NewService(notifier Notifier) Service {
	return &service{notifier: notifier}
}

func (s *service) Submit(ctx context.Context, req SubmitOrderRequest) (*Order, error) {
	if len(req.Cart) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalidOrder)
	}
	for _, item := range req.Cart {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0 for product %s", ErrInvalidOrder, item.ProductID)
		}
	}

	total := req.Total
	if total == 0 {
		for _, item := range req.Cart {
			total += item.Price * float64(item.Quantity)
		}
	}

	o := &Order{
		ID:          uuid.New(),
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Items:       req.Cart,
		Total:       total,
		CreatedAt:   time.Now(),
	}

	if err := s.notifier.Send(ctx, formatOrderMessage(o)); err != nil {
		return nil, fmt.Errorf("deliver order notification: %w", err)
	}
	return o, nil
}

// formatOrderMessage renders the chat summary in Markdown. Prices are
// in Rial, shown with thousand separators.
func formatOrderMessage(o *Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 *NEW ORDER* (%s)\n\n", o.CreatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("*Customer Information:*\n")
	fmt.Fprintf(&b, "📧 Email: %s\n", o.Email)
	fmt.Fprintf(&b, "📱 Phone: %s\n\n", o.PhoneNumber)
	fmt.Fprintf(&b, "*Order Summary:* %d items\n\n", len(o.Items))

	for i, item := range o.Items {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Quantity: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Price: ﷼ %s\n", formatPrice(item.Price))
		fmt.Fprintf(&b, "   Subtotal: ﷼ %s\n\n", formatPrice(item.Price*float64(item.Quantity)))
	}

	fmt.Fprintf(&b, "*TOTAL: ﷼ %s*", formatPrice(o.Total))
	return b.String()
}

// formatPrice adds thousand separators to the integer part.
func formatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var out strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteByte(intPart[i])
	}
	if hasFrac {
		out.WriteByte('.')
		out.WriteString(frac)
	}
	return out.String()
}
