package models

import (
	"strings"
	"time"
)

// DeliveryOption is the closed set of fulfilment choices.
type DeliveryOption string

const (
	DeliveryStandard DeliveryOption = "standard"
	DeliveryExpress  DeliveryOption = "express"
	DeliveryPickup   DeliveryOption = "pickup"
)

func (d DeliveryOption) Valid() bool {
	switch d {
	case DeliveryStandard, DeliveryExpress, DeliveryPickup:
		return true
	}
	return false
}

// PaymentMethod is the closed set of accepted payment channels.
type PaymentMethod string

const (
	PaymentCOD         PaymentMethod = "cod"
	PaymentOrangeMoney PaymentMethod = "orange-money"
	PaymentVault       PaymentMethod = "vault"
	PaymentAfrimoney   PaymentMethod = "afrimoney"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCOD, PaymentOrangeMoney, PaymentVault, PaymentAfrimoney:
		return true
	}
	return false
}

// RequiresProof reports whether the method needs a payment screenshot
// attached before the order can be compiled. Cash on delivery is the
// only method settled at the door.
func (p PaymentMethod) RequiresProof() bool {
	return p != PaymentCOD
}

// Label renders the method the way it appears in the outbound message,
// e.g. "ORANGE MONEY".
func (p PaymentMethod) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(p), "-", " "))
}

// Customer holds the per-order contact details. Nothing here outlives
// the order itself.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type DeliveryAddress struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	Instructions string `json:"instructions,omitempty"`
}

// Order is a finalized order. Created once at checkout, never mutated.
type Order struct {
	ID                string          `json:"id"`
	Reference         string          `json:"reference"`
	Customer          Customer        `json:"customer"`
	DeliveryAddress   DeliveryAddress `json:"deliveryAddress"`
	Items             []CartItem      `json:"items"`
	Subtotal          int             `json:"subtotal"`
	DeliveryFee       int             `json:"deliveryFee"`
	Tax               int             `json:"tax"`
	Discount          int             `json:"discount"`
	Total             int             `json:"total"`
	DeliveryOption    DeliveryOption  `json:"deliveryOption"`
	PaymentMethod     PaymentMethod   `json:"paymentMethod"`
	PaymentProofURL   string          `json:"paymentProofUrl,omitempty"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
}
