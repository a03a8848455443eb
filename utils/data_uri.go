package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ParseImageDataURI splits a "data:<mime>;base64,<data>" payload into raw
// bytes and the declared content type. Only the MIME prefix is validated
// here; whether it names an image is the caller's gate.
func ParseImageDataURI(dataURI string) ([]byte, string, error) {
	parts := strings.Split(dataURI, ",")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") {
		return nil, "", fmt.Errorf("invalid base64 image")
	}

	mediaType := strings.TrimPrefix(parts[0], "data:")    // "image/jpeg;base64"
	contentType := strings.SplitN(mediaType, ";", 2)[0]   // "image/jpeg"
	if contentType == "" {
		return nil, "", fmt.Errorf("missing content type")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %v", err)
	}
	return data, contentType, nil
}
