package checkout

import (
	"fmt"
	"strings"

	"bakehouse/models"
)

// Message renders the order as the multi-line text block sent through
// the WhatsApp deep link. Layout matches what the kitchen staff expect
// to read on a phone.
func (c *Compiler) Message(order models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*New Order from %s*\n\n", c.BusinessName)
	fmt.Fprintf(&b, "*Order Reference:* %s\n\n", order.Reference)

	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", order.Customer.Phone)
	if order.Customer.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", order.Customer.Email)
	}
	b.WriteString("\n")

	b.WriteString("*Delivery Address:*\n")
	fmt.Fprintf(&b, "%s\n", order.DeliveryAddress.Street)
	fmt.Fprintf(&b, "%s, %s\n", order.DeliveryAddress.City, order.DeliveryAddress.ZipCode)
	if order.DeliveryAddress.Instructions != "" {
		fmt.Fprintf(&b, "Instructions: %s\n", order.DeliveryAddress.Instructions)
	}
	b.WriteString("\n")

	b.WriteString("*Order Items:*\n")
	for _, item := range order.Items {
		b.WriteString(c.itemLine(item))
	}
	b.WriteString("\n")

	b.WriteString("*Order Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: %s %d\n", c.Currency, order.Subtotal)
	fmt.Fprintf(&b, "Delivery: %s %d (%s)\n", c.Currency, order.DeliveryFee, order.DeliveryOption)
	fmt.Fprintf(&b, "Tax: %s %d\n", c.Currency, order.Tax)
	fmt.Fprintf(&b, "*Total: %s %d*\n\n", c.Currency, order.Total)

	fmt.Fprintf(&b, "*Payment Method:* %s\n", order.PaymentMethod.Label())
	if order.PaymentProofURL != "" {
		fmt.Fprintf(&b, "*Payment Proof:* %s\n", order.PaymentProofURL)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "*Estimated Delivery:* %s\n\n", order.EstimatedDelivery.Format("02 Jan 2006 15:04"))
	b.WriteString("Thank you for your order!")

	return b.String()
}

func (c *Compiler) itemLine(item models.CartItem) string {
	name := item.Product.Name
	if item.SelectedVariant != nil {
		name = fmt.Sprintf("%s (%s)", name, item.SelectedVariant.Name)
	}
	line := fmt.Sprintf("- %s x%d - %s %d\n", name, item.Quantity, c.Currency, item.TotalPrice)
	for _, a := range item.SelectedAddOns {
		line += fmt.Sprintf("  + %s\n", a.Name)
	}
	return line
}
