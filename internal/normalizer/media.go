package normalizer

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
)

// MediaKind classifies the primary media of a token
type MediaKind string

const (
	MediaKindImage       MediaKind = "image"
	MediaKindAnimation   MediaKind = "animation"
	MediaKindInteractive MediaKind = "interactive"
)

// IsAnimated reports whether the media belongs in the animation slot
func (k MediaKind) IsAnimated() bool {
	return k == MediaKindAnimation || k == MediaKindInteractive
}

var animatedImageTypes = map[string]bool{
	"image/gif":              true,
	"image/apng":             true,
	"image/vnd.mozilla.apng": true,
}

var interactiveTypes = map[string]bool{
	"text/html":               true,
	"application/xhtml+xml":   true,
	"application/x-directory": true,
}

var animationExtensions = map[string]bool{
	".mp4": true, ".webm": true, ".mov": true, ".m4v": true, ".ogv": true,
	".gif": true, ".apng": true,
	".glb": true, ".gltf": true,
	".mp3": true, ".wav": true, ".flac": true,
}

var interactiveExtensions = map[string]bool{
	".html": true, ".htm": true, ".xhtml": true,
}

var stillImageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".webp": true,
	".bmp": true, ".tif": true, ".tiff": true, ".avif": true, ".svg": true,
}

var interactiveKeywords = []string{"generator", "interactive", "/html"}

// CanonicalMimeType resolves aliases ("image/x-png") to the canonical type
// and drops parameters. Unknown types are lower-cased and returned as is.
func CanonicalMimeType(mimeType string) string {
	m := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(m, ';'); i >= 0 {
		m = strings.TrimSpace(m[:i])
	}
	if m == "" {
		return ""
	}
	if known := mimetype.Lookup(m); known != nil {
		return known.String()
	}
	return m
}

// ClassifyMedia decides whether a media URL is a still image or an
// animation/interactive work. The declared MIME type wins; without one the
// file extension and path keywords are used.
func ClassifyMedia(mediaURL string, mimeType *string) MediaKind {
	if mimeType != nil {
		if m := CanonicalMimeType(*mimeType); m != "" {
			return classifyMimeType(m)
		}
	}

	p := strings.ToLower(mediaPath(mediaURL))
	ext := path.Ext(p)
	switch {
	case interactiveExtensions[ext]:
		return MediaKindInteractive
	case animationExtensions[ext]:
		return MediaKindAnimation
	}
	for _, keyword := range interactiveKeywords {
		if strings.Contains(p, keyword) {
			return MediaKindInteractive
		}
	}
	return MediaKindImage
}

// isStillImage reports whether the media is known to be a still image,
// either by its MIME type or by its extension
func isStillImage(mediaURL string, mimeType *string) bool {
	if mimeType != nil {
		if m := CanonicalMimeType(*mimeType); m != "" {
			return classifyMimeType(m) == MediaKindImage
		}
	}
	return stillImageExtensions[path.Ext(strings.ToLower(mediaPath(mediaURL)))]
}

func classifyMimeType(m string) MediaKind {
	switch {
	case interactiveTypes[m]:
		return MediaKindInteractive
	case strings.HasPrefix(m, "video/"),
		strings.HasPrefix(m, "audio/"),
		strings.HasPrefix(m, "model/"),
		animatedImageTypes[m]:
		return MediaKindAnimation
	case strings.HasPrefix(m, "application/"):
		return MediaKindInteractive
	default:
		return MediaKindImage
	}
}

// mediaPath returns the path of a URL, or the input when it does not parse
func mediaPath(mediaURL string) string {
	u, err := url.Parse(mediaURL)
	if err != nil || u.Path == "" {
		return mediaURL
	}
	return u.Path
}

// uriToGateway converts ipfs:// and ar:// URIs to gateway URLs
func uriToGateway(uri string) string {
	uri = strings.TrimSpace(uri)
	if after, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		after = strings.TrimPrefix(after, "ipfs/")
		return fmt.Sprintf("%s/ipfs/%s", domain.DEFAULT_IPFS_GATEWAY, after)
	}
	if after, ok := strings.CutPrefix(uri, "ar://"); ok {
		return fmt.Sprintf("%s/%s", domain.DEFAULT_ARWEAVE_GATEWAY, after)
	}
	return uri
}

// gatewayPtr applies uriToGateway to an optional URI, dropping blanks
func gatewayPtr(uri *string) *string {
	if uri == nil {
		return nil
	}
	s := uriToGateway(*uri)
	if s == "" {
		return nil
	}
	return &s
}
