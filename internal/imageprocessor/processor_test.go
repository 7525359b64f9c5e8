package imageprocessor

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
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSquareJPEG(t *testing.T) {
	p := NewProcessor(80)

	tests := []struct {
		name     string
		w, h     int
		side     int
		wantSide int
	}{
		{"landscape is cropped and downscaled", 300, 200, 128, 128},
		{"portrait is cropped and downscaled", 120, 240, 64, 64},
		{"small image is not upscaled", 40, 60, 512, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := p.SquareJPEG(pngBytes(t, tt.w, tt.h), tt.side)
			require.NoError(t, err)

			w, h, err := GetImageDimensions(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSide, w)
			assert.Equal(t, tt.wantSide, h)

			_, format, err := image.DecodeConfig(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, "jpeg", format)
		})
	}
}

func TestSquareJPEGRejectsGarbage(t *testing.T) {
	_, err := NewProcessor(0).SquareJPEG([]byte("definitely not an image"), 128)
	assert.Error(t, err)
}

func TestCenterSquare(t *testing.T) {
	assert.Equal(t, image.Rect(50, 0, 250, 200), centerSquare(image.Rect(0, 0, 300, 200)))
	assert.Equal(t, image.Rect(0, 60, 120, 180), centerSquare(image.Rect(0, 0, 120, 240)))
}
