package utils

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://fonts.example.com/NotoColorEmoji.ttf"))
	assert.False(t, IsValidUrl("/usr/share/fonts/NotoColorEmoji.ttf"))
	assert.False(t, IsValidUrl("not a url"))
}

func TestUtils_ShouldDetectImageContentType(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(path)
	assert.NoError(err)
	assert.NoError(png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 4, 4))))
	assert.NoError(f.Close())

	ctype, err := DetectContentType(path)
	assert.NoError(err)
	assert.True(strings.Contains(ctype.(string), "image"))
}

func TestUtils_ShouldDetectFontContentType(t *testing.T) {
	assert := assert.New(t)

	// An sfnt container starts with the 0x00010000 version tag,
	// which is all the content sniffer looks at.
	data := append([]byte{0x00, 0x01, 0x00, 0x00}, make([]byte, 64)...)
	path := filepath.Join(t.TempDir(), "sample.ttf")
	assert.NoError(os.WriteFile(path, data, 0644))

	ctype, err := DetectContentType(path)
	assert.NoError(err)
	assert.True(strings.Contains(ctype.(string), "font"))
}
