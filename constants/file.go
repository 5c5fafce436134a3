package constants

import "strings"

// AllowedContentTypes holds the image content types accepted for upload.
var AllowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// ExtensionFor maps an allowed content type to a file extension for
// object storage keys.
func ExtensionFor(ct string) string {
	switch NormalizeContentType(ct) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// NormalizeContentType lowercases and strips parameters from a MIME type.
func NormalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
