package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRefs(t *testing.T) {
	body := `<p>intro</p>
<img src="https://res.cloudinary.com/demo/image/upload/v1712345/abc123.png" alt="">
<video src="https://res.cloudinary.com/demo/video/upload/v1712346/def456.mp4"></video>
<a href="https://example.com/not-media/xyz.png">unrelated</a>`

	refs := ExtractRefs(body)

	assert.Equal(t, []Ref{
		{PublicID: "abc123", ResourceType: "image"},
		{PublicID: "def456", ResourceType: "video"},
	}, refs)
}

func TestExtractRefs_DeduplicatesRepeatedEmbeds(t *testing.T) {
	body := `<img src="https://res.cloudinary.com/demo/image/upload/v1/pic.jpg">
<img src="https://res.cloudinary.com/demo/image/upload/v1/pic.jpg">`

	refs := ExtractRefs(body)

	assert.Len(t, refs, 1)
	assert.Equal(t, "pic", refs[0].PublicID)
}

func TestExtractRefs_TransformedDeliveryURL(t *testing.T) {
	// Delivery URLs may carry transformation segments between upload/ and
	// the filename; the public ID is still the last segment minus extension.
	body := `https://res.cloudinary.com/demo/image/upload/w_800,c_fill/v99/cover42.webp`

	refs := ExtractRefs(body)

	assert.Equal(t, []Ref{{PublicID: "cover42", ResourceType: "image"}}, refs)
}

func TestExtractRefs_NoMedia(t *testing.T) {
	refs := ExtractRefs("plain text post without any embeds")
	assert.Empty(t, refs)
}
