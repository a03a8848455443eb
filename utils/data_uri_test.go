package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImageDataURI(t *testing.T) {
	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	data, contentType, err := ParseImageDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestParseImageDataURI_Invalid(t *testing.T) {
	cases := []struct {
		name string
		uri  string
	}{
		{"no comma", "data:image/jpeg;base64"},
		{"no data prefix", "image/jpeg;base64,AAAA"},
		{"bad base64", "data:image/png;base64,!!!"},
		{"empty content type", "data:;base64,AAAA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseImageDataURI(tc.uri)
			assert.Error(t, err)
		})
	}
}
