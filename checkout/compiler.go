// Package checkout turns a cart snapshot plus customer details into a
// finalized order and the outbound WhatsApp message. A compiled order
// never changes afterwards; its status is "confirmed" from birth and
// any later fulfilment states live outside this system.
package checkout

import (
	"errors"
	"fmt"
	"time"

	"bakehouse/models"
	"bakehouse/utils"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownDelivery = errors.New("unknown delivery option")
	ErrUnknownPayment  = errors.New("unknown payment method")
	ErrMissingField    = errors.New("missing required field")
	ErrMissingProof    = errors.New("payment proof required")
)

// Pricing is the deployment's pricing policy. Fees and tax rate are
// injected from config rather than hardcoded.
type Pricing struct {
	TaxRateBasisPoints int // 500 = 5%
	DeliveryFees       map[models.DeliveryOption]int
	DeliveryETA        map[models.DeliveryOption]time.Duration
}

// Totals is the cost breakdown shown before and after compilation.
type Totals struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"deliveryFee"`
	Tax         int `json:"tax"`
	Discount    int `json:"discount"`
	Total       int `json:"total"`
}

// Input is everything the compiler needs for one order.
type Input struct {
	Items           []models.CartItem
	Customer        models.Customer
	Address         models.DeliveryAddress
	DeliveryOption  models.DeliveryOption
	PaymentMethod   models.PaymentMethod
	PaymentProofURL string
}

type Compiler struct {
	Pricing        Pricing
	BusinessName   string
	Currency       string
	WhatsAppNumber string

	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time
}

func (c *Compiler) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Quote computes the cost breakdown for a cart and delivery option.
// tax = round(subtotal × rate), discount is always zero here.
func (c *Compiler) Quote(items []models.CartItem, option models.DeliveryOption) (Totals, error) {
	if !option.Valid() {
		return Totals{}, ErrUnknownDelivery
	}

	subtotal := 0
	for _, item := range items {
		subtotal += item.TotalPrice
	}

	fee := c.Pricing.DeliveryFees[option]
	tax := (subtotal*c.Pricing.TaxRateBasisPoints + 5000) / 10000

	t := Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Discount:    0,
	}
	t.Total = t.Subtotal + t.DeliveryFee + t.Tax - t.Discount
	return t, nil
}

// Validate enforces the submission preconditions: non-empty cart,
// required customer and address fields, known enums, and a payment
// proof when the method needs one.
func Validate(in Input) error {
	if len(in.Items) == 0 {
		return ErrEmptyCart
	}
	if !in.DeliveryOption.Valid() {
		return ErrUnknownDelivery
	}
	if !in.PaymentMethod.Valid() {
		return ErrUnknownPayment
	}
	for _, field := range []struct{ name, value string }{
		{"customer name", in.Customer.Name},
		{"customer phone", in.Customer.Phone},
		{"street", in.Address.Street},
		{"city", in.Address.City},
		{"zip code", in.Address.ZipCode},
	} {
		if field.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}
	if in.PaymentMethod.RequiresProof() && in.PaymentProofURL == "" {
		return ErrMissingProof
	}
	return nil
}

// Compile produces the finalized order. The reference is unique enough
// for a handoff that no backend ever deduplicates: the current year
// plus four random digits.
func (c *Compiler) Compile(in Input) (models.Order, error) {
	if len(in.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	totals, err := c.Quote(in.Items, in.DeliveryOption)
	if err != nil {
		return models.Order{}, err
	}
	if !in.PaymentMethod.Valid() {
		return models.Order{}, ErrUnknownPayment
	}

	now := c.now()
	ref := c.reference(now)

	return models.Order{
		ID:                ref,
		Reference:         ref,
		Customer:          in.Customer,
		DeliveryAddress:   in.Address,
		Items:             in.Items,
		Subtotal:          totals.Subtotal,
		DeliveryFee:       totals.DeliveryFee,
		Tax:               totals.Tax,
		Discount:          totals.Discount,
		Total:             totals.Total,
		DeliveryOption:    in.DeliveryOption,
		PaymentMethod:     in.PaymentMethod,
		PaymentProofURL:   in.PaymentProofURL,
		Status:            "confirmed",
		CreatedAt:         now,
		EstimatedDelivery: now.Add(c.Pricing.DeliveryETA[in.DeliveryOption]),
	}, nil
}

func (c *Compiler) reference(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.Year(), utils.GenerateRandomDigitString(4))
}
