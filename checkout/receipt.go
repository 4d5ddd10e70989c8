package checkout

import (
	"bytes"
	"fmt"

	"bakehouse/models"
	"bakehouse/whatsapp"

	"github.com/phpdave11/gofpdf"
)

// Receipt renders the order as a printable PDF with a QR code of the
// WhatsApp handoff link, so the confirmation screen can be re-opened
// from another device.
func (c *Compiler) Receipt(order models.Order) ([]byte, error) {
	message := c.Message(order)
	qrPNG, err := whatsapp.QR(whatsapp.Link(c.WhatsAppNumber, message), 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, fmt.Sprintf("%s Receipt", c.BusinessName), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order: %s", order.Reference))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006 15:04")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Customer: %s (%s)", order.Customer.Name, order.Customer.Phone))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Items")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		name := item.Product.Name
		if item.SelectedVariant != nil {
			name = fmt.Sprintf("%s (%s)", name, item.SelectedVariant.Name)
		}
		pdf.Cell(0, 7, fmt.Sprintf("%dx %s - %s %d", item.Quantity, name, c.Currency, item.TotalPrice))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Subtotal: %s %d", c.Currency, order.Subtotal))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Delivery (%s): %s %d", order.DeliveryOption, c.Currency, order.DeliveryFee))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Tax: %s %d", c.Currency, order.Tax))
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s %d", c.Currency, order.Total))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Payment: %s", order.PaymentMethod.Label()))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Estimated delivery: %s", order.EstimatedDelivery.Format("02 Jan 2006 15:04")))
	pdf.Ln(12)

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("whatsapp-qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("whatsapp-qr", 20, pdf.GetY(), 45, 45, false, imgOpts, 0, "")
	pdf.SetY(pdf.GetY() + 48)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 6, "Scan to resend this order on WhatsApp")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
