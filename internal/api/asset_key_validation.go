package api

import (
	"strings"
	"unicode/utf8"
)

const uploadKeyPrefix = "order-assets/"

var uploadExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// isValidUploadObjectKey 只接受本服务生成的订单素材键。
func isValidUploadObjectKey(key string) bool {
	if key == "" || !utf8.ValidString(key) || len(key) > 200 {
		return false
	}
	if !strings.HasPrefix(key, uploadKeyPrefix) {
		return false
	}
	if strings.Contains(key, "..") || strings.Contains(key, "\\") || strings.Contains(key, "//") {
		return false
	}
	lower := strings.ToLower(key)
	for _, ext := range uploadExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return strings.HasSuffix(lower, ".jpeg")
}
