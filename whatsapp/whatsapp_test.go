package whatsapp

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	link := Link("232033680260", "*New Order*\nTotal: Le 146500")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/232033680260?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "*New Order*\nTotal: Le 146500", u.Query().Get("text"))
}

func TestQR(t *testing.T) {
	png, err := QR(Link("232033680260", "hello"), 128)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
