package itinerary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF(t *testing.T) {
	doc, err := RenderPDF(Generate("Goa", 3, 25000), "https://www.youtube.com/watch?v=abc")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))

	plain, err := RenderPDF(Generate("Goa", 3, 25000), "")
	require.NoError(t, err)
	assert.Less(t, len(plain), len(doc), "QR image adds to the document")
}

func TestRenderPDFLongItinerary(t *testing.T) {
	doc, err := RenderPDF(Generate("Reykjavík", 30, 200000), "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
}

func TestFileSlug(t *testing.T) {
	cases := map[string]string{
		"Goa":             "goa",
		"Goa, India":      "goa-india",
		"  New   York!! ": "new-york",
		"東京":              "trip",
		"":                "trip",
	}
	for in, want := range cases {
		assert.Equal(t, want, fileSlug(in), in)
	}
}
