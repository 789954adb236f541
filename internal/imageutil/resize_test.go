package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestInspect(t *testing.T) {
	info, err := Inspect(pngBytes(t, 40, 20))
	require.NoError(t, err)
	assert.Equal(t, Info{Format: "png", Width: 40, Height: 20}, info)

	_, err = Inspect([]byte("<html>not an image</html>"))
	assert.Error(t, err)
}

func TestResizeImageKeepsAspectRatio(t *testing.T) {
	out, err := ResizeImage(pngBytes(t, 400, 100), &ResizeConfig{MaxDimension: 100, OutputFormat: "png"})
	require.NoError(t, err)

	info, err := Inspect(out)
	require.NoError(t, err)
	assert.Equal(t, 100, info.Width)
	assert.Equal(t, 25, info.Height)
}

func TestResizeImageSmallImageUnscaled(t *testing.T) {
	out, err := ResizeImage(pngBytes(t, 30, 60), nil)
	require.NoError(t, err)

	info, err := Inspect(out)
	require.NoError(t, err)
	assert.Equal(t, 30, info.Width)
	assert.Equal(t, 60, info.Height)
}
