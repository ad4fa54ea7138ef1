package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUploadObjectKey(t *testing.T) {
	cases := map[string]bool{
		"order-assets/3f1c.png":      true,
		"order-assets/3f1c.JPG":      true,
		"order-assets/3f1c.jpeg":     true,
		"order-assets/3f1c.webp":     true,
		"order-assets/3f1c.gif":      false,
		"user-assets/1/3f1c.png":     false,
		"order-assets/../secret.png": false,
		"order-assets//x.png":        false,
		"order-assets\\x.png":        false,
		"":                           false,
		"order-assets/" + strings.Repeat("a", 200) + ".png": false,
	}
	for key, want := range cases {
		assert.Equal(t, want, isValidUploadObjectKey(key), key)
	}
}
