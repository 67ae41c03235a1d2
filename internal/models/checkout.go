package models

import "time"

// PaymentMethod selects which extra checkout fields are required.
type PaymentMethod string

const (
	PaymentGCash PaymentMethod = "gcash"
	PaymentBank  PaymentMethod = "bank"
	PaymentCOD   PaymentMethod = "cod"
)

// CheckoutForm carries shipping and payment details entered at checkout.
type CheckoutForm struct {
	FullName      string        `json:"fullName"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	GCashNumber   string        `json:"gcashNumber,omitempty"`
	BankName      string        `json:"bankName,omitempty"`
	AccountNumber string        `json:"accountNumber,omitempty"`
}

// Receipt summarizes a placed order.
type Receipt struct {
	OrderID       string        `json:"orderId"`
	Lines         []CartLine    `json:"lines"`
	TotalItems    int           `json:"totalItems"`
	TotalPrice    float64       `json:"totalPrice"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PlacedAt      time.Time     `json:"placedAt"`
}
