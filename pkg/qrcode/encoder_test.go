package qrcode

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEncoder_Defaults(t *testing.T) {
	e, err := NewEncoder(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, e.size)
	assert.Equal(t, color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}, e.fg)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, e.bg)
}

func TestNewEncoder_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"too small", Options{Size: 10}},
		{"bad foreground", Options{Foreground: "#12"}},
		{"non-hex background", Options{Background: "#zzzzzz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEncoder(tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestEncode_ProducesDecodablePNG(t *testing.T) {
	e, err := NewEncoder(Options{Size: 256})
	require.NoError(t, err)

	out, err := e.Encode(context.Background(), "http://localhost:8080/menu?id=menu_1700000000000_abc123xyz")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestEncode_TooLongFails(t *testing.T) {
	e, err := NewEncoder(Options{})
	require.NoError(t, err)

	_, err = e.Encode(context.Background(), strings.Repeat("x", 8000))
	assert.Error(t, err)
}

func TestEncode_CancelledContext(t *testing.T) {
	e, err := NewEncoder(Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Encode(ctx, "http://localhost/menu?id=x")
	assert.ErrorIs(t, err, context.Canceled)
}
