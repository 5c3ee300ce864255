package storage

import (
	"strings"

	"github.com/google/uuid"
)

// Key prefixes per asset category.
const (
	PrefixGallery     = "Gallery"
	PrefixBeforeAfter = "Beforeandafter"
	PrefixLanding     = "LP"
	PrefixVideo       = "videos"
)

// Keys generates object keys and converts between keys and public URLs.
type Keys struct {
	base string
}

func NewKeys(publicBaseURL string) *Keys {
	return &Keys{base: strings.TrimSuffix(publicBaseURL, "/")}
}

// New returns a fresh key of the form "<prefix>/<uuid><ext>".
func (k *Keys) New(prefix, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.Trim(prefix, "/") + "/" + uuid.NewString() + ext
}

func (k *Keys) PublicURL(key string) string {
	return k.base + "/" + key
}

// KeyFromURL reverses PublicURL. It reports false for URLs that were not
// produced under this base, which callers treat as externally hosted.
func (k *Keys) KeyFromURL(url string) (string, bool) {
	prefix := k.base + "/"
	if url == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

func (k *Keys) BaseURL() string {
	return k.base
}
