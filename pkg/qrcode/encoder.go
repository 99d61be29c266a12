// Package qrcode renders text (shareable menu links) as PNG QR codes.
package qrcode

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
)

// Defaults match the printed table cards: slate modules on white, 256px.
const (
	DefaultSize       = 256
	DefaultForeground = "#1e293b"
	DefaultBackground = "#ffffff"
)

// Options configures an Encoder. Zero values fall back to the defaults.
type Options struct {
	Size       int
	Foreground string
	Background string
}

// Encoder renders QR codes with fixed styling.
type Encoder struct {
	size int
	fg   color.Color
	bg   color.Color
}

// NewEncoder validates opts and returns an Encoder.
func NewEncoder(opts Options) (*Encoder, error) {
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	if opts.Size < 21 {
		return nil, fmt.Errorf("qr size must be at least 21px, got %d", opts.Size)
	}
	if opts.Foreground == "" {
		opts.Foreground = DefaultForeground
	}
	if opts.Background == "" {
		opts.Background = DefaultBackground
	}

	fg, err := parseHex(opts.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := parseHex(opts.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return &Encoder{size: opts.Size, fg: fg, bg: bg}, nil
}

// Encode renders text as a PNG.
func (e *Encoder) Encode(ctx context.Context, text string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q, err := goqrcode.New(text, goqrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("build qr code: %w", err)
	}
	q.ForegroundColor = e.fg
	q.BackgroundColor = e.bg

	png, err := q.PNG(e.size)
	if err != nil {
		return nil, fmt.Errorf("render qr png: %w", err)
	}
	return png, nil
}

// parseHex parses "#rrggbb".
func parseHex(s string) (color.Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
