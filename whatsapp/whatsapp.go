// Package whatsapp builds the outbound handoff link: a wa.me deep link
// pre-filled with the order message, plus a QR rendering of it so the
// confirmation screen can be scanned from a phone.
package whatsapp

import (
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// Link returns the deep link that opens a chat with the given number
// and the message text pre-filled.
func Link(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// QR encodes a link as a PNG of the given pixel size.
func QR(link string, size int) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, size)
}
