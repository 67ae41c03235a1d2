package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/models"
)

// ValidationErrors maps a checkout form field (by its JSON name) to the
// message shown next to it. An empty map means the form is valid.
type ValidationErrors map[string]string

// ValidateCheckout checks required shipping fields and the fields the
// chosen payment method needs.
func ValidateCheckout(form models.CheckoutForm) ValidationErrors {
	errs := ValidationErrors{}
	required := func(field, value, msg string) {
		if strings.TrimSpace(value) == "" {
			errs[field] = msg
		}
	}

	required("fullName", form.FullName, "Full name is required")
	required("email", form.Email, "Email is required")
	required("phone", form.Phone, "Phone number is required")
	required("address", form.Address, "Address is required")
	required("city", form.City, "City is required")

	switch form.PaymentMethod {
	case models.PaymentGCash:
		required("gcashNumber", form.GCashNumber, "GCash number is required")
	case models.PaymentBank:
		required("bankName", form.BankName, "Bank name is required")
		required("accountNumber", form.AccountNumber, "Account number is required")
	case models.PaymentCOD:
	default:
		errs["paymentMethod"] = "Select a payment method"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Checkout turns the active cart into a receipt.
type Checkout struct {
	session *SessionStore
	cart    *CartStore
	opts    options
}

func NewCheckout(session *SessionStore, cart *CartStore, opts ...Option) *Checkout {
	if session == nil || cart == nil {
		panic("services: NewCheckout requires a session and a cart")
	}
	return &Checkout{session: session, cart: cart, opts: buildOptions(opts)}
}

// PrefillForm starts a form from the active identity, paying by GCash.
func (c *Checkout) PrefillForm() models.CheckoutForm {
	form := models.CheckoutForm{PaymentMethod: models.PaymentGCash}
	if ident := c.session.Current(); ident != nil {
		form.FullName = ident.Name
		form.Email = ident.Email
	}
	return form
}

// PlaceOrder validates form and, if it passes, snapshots the cart into a
// receipt and clears the cart. Invalid input comes back as
// ValidationErrors with a nil receipt; an empty cart is common.ErrEmptyCart.
func (c *Checkout) PlaceOrder(ctx context.Context, form models.CheckoutForm) (*models.Receipt, ValidationErrors, error) {
	if verrs := ValidateCheckout(form); verrs != nil {
		c.opts.notifier.Notify("Please check your information", "Some required fields are missing or invalid", true)
		return nil, verrs, nil
	}

	lines := c.cart.Items()
	if len(lines) == 0 {
		return nil, nil, common.ErrEmptyCart
	}

	receipt := &models.Receipt{
		OrderID:       "order-" + c.opts.newID(),
		Lines:         lines,
		PaymentMethod: form.PaymentMethod,
		PlacedAt:      c.opts.now().UTC(),
	}
	for _, l := range lines {
		receipt.TotalItems += l.Quantity
		receipt.TotalPrice += l.Subtotal()
	}

	if err := c.cart.ClearCart(ctx); err != nil {
		return nil, nil, fmt.Errorf("clear cart after order: %w", err)
	}

	c.opts.logger.Info(ctx, "order placed",
		"order", receipt.OrderID,
		"items", receipt.TotalItems,
		"total", receipt.TotalPrice,
		"payment", string(receipt.PaymentMethod),
	)
	return receipt, nil, nil
}
