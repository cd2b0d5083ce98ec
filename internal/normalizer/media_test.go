package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-catalog-indexer/internal/types"
)

func TestClassifyMedia(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		mimeType *string
		expected MediaKind
	}{
		{name: "video mime", url: "https://cdn.example/a", mimeType: types.StringPtr("video/mp4"), expected: MediaKindAnimation},
		{name: "png mime", url: "https://cdn.example/a.png", mimeType: types.StringPtr("image/png"), expected: MediaKindImage},
		{name: "gif mime", url: "https://cdn.example/a", mimeType: types.StringPtr("image/gif"), expected: MediaKindAnimation},
		{name: "html mime", url: "https://cdn.example/a", mimeType: types.StringPtr("text/html; charset=utf-8"), expected: MediaKindInteractive},
		{name: "generic application mime", url: "https://cdn.example/a", mimeType: types.StringPtr("application/x-directory"), expected: MediaKindInteractive},
		{name: "pdf mime", url: "https://cdn.example/a", mimeType: types.StringPtr("application/pdf"), expected: MediaKindInteractive},
		{name: "mime wins over extension", url: "https://cdn.example/a.mp4", mimeType: types.StringPtr("image/jpeg"), expected: MediaKindImage},
		{name: "blank mime falls back", url: "https://cdn.example/a.mp4", mimeType: types.StringPtr(" "), expected: MediaKindAnimation},
		{name: "html path", url: "https://cdn.example/work/index.html", expected: MediaKindInteractive},
		{name: "html path with query", url: "https://cdn.example/work/index.HTML?hash=0x1", expected: MediaKindInteractive},
		{name: "generator keyword", url: "https://generator.example/generator/123", expected: MediaKindInteractive},
		{name: "interactive keyword", url: "https://cdn.example/interactive/123", expected: MediaKindInteractive},
		{name: "mp4 path", url: "ipfs://Qm123/video.mp4", expected: MediaKindAnimation},
		{name: "glb path", url: "https://cdn.example/model.glb", expected: MediaKindAnimation},
		{name: "png path", url: "https://cdn.example/a.png", expected: MediaKindImage},
		{name: "no hint", url: "https://cdn.example/a", expected: MediaKindImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyMedia(tt.url, tt.mimeType))
		})
	}
}

func TestCanonicalMimeType(t *testing.T) {
	assert.Equal(t, "", CanonicalMimeType(""))
	assert.Equal(t, "video/mp4", CanonicalMimeType("VIDEO/MP4"))
	assert.Equal(t, "text/html", CanonicalMimeType("text/html; charset=utf-8"))
	assert.Equal(t, "application/x-unknown-thing", CanonicalMimeType("application/x-unknown-thing"))
}

func TestMediaSlots(t *testing.T) {
	t.Run("video in image slot moves to animation", func(t *testing.T) {
		img, anim, kind := media(types.StringPtr("https://cdn.example/a.mp4"), nil, nil)
		assert.Equal(t, "https://cdn.example/a.mp4", *img)
		assert.Equal(t, "https://cdn.example/a.mp4", *anim)
		assert.Equal(t, MediaKindAnimation, kind)
	})

	t.Run("png without animation stays image", func(t *testing.T) {
		img, anim, kind := media(types.StringPtr("https://cdn.example/a.png"), nil, types.StringPtr("image/png"))
		assert.Equal(t, "https://cdn.example/a.png", *img)
		assert.Nil(t, anim)
		assert.Equal(t, MediaKindImage, kind)
	})

	t.Run("still animation becomes image", func(t *testing.T) {
		img, anim, kind := media(nil, types.StringPtr("https://cdn.example/a.jpg"), nil)
		assert.Equal(t, "https://cdn.example/a.jpg", *img)
		assert.Nil(t, anim)
		assert.Equal(t, MediaKindImage, kind)
	})

	t.Run("declared animation without hints is kept", func(t *testing.T) {
		img, anim, kind := media(types.StringPtr("https://cdn.example/a.png"), types.StringPtr("https://api.example/live/1"), nil)
		assert.Equal(t, "https://cdn.example/a.png", *img)
		assert.Equal(t, "https://api.example/live/1", *anim)
		assert.Equal(t, MediaKindAnimation, kind)
	})

	t.Run("gateway conversion", func(t *testing.T) {
		img, _, _ := media(types.StringPtr("ipfs://ipfs/QmHash/1.png"), nil, nil)
		assert.Equal(t, "https://ipfs.io/ipfs/QmHash/1.png", *img)
		img, _, _ = media(types.StringPtr("ar://tx123"), nil, nil)
		assert.Equal(t, "https://arweave.net/tx123", *img)
	})
}
