package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestDownscaleLeavesSmallImages(t *testing.T) {
	data := encodePNG(t, 200, 100)
	out, resized, err := Downscale(data, 1024, 80)
	require.NoError(t, err)
	assert.False(t, resized)
	assert.Equal(t, data, out)
}

func TestDownscaleLargeImage(t *testing.T) {
	data := encodePNG(t, 400, 200)
	out, resized, err := Downscale(data, 100, 80)
	require.NoError(t, err)
	assert.True(t, resized)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestDownscaleRejectsNonImages(t *testing.T) {
	_, _, err := Downscale([]byte("%PDF-1.4"), 100, 80)
	assert.Error(t, err)
}

func TestFit(t *testing.T) {
	w, h := fit(300, 1200, 600)
	assert.Equal(t, 150, w)
	assert.Equal(t, 600, h)

	w, h = fit(5000, 1, 100)
	assert.Equal(t, 100, w)
	assert.Equal(t, 1, h)
}
