package tetromino

import "fmt"

// Color is an RGB value with every channel in [0, 1].
type Color struct {
	R, G, B float32
}

func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

var (
	Cyan   = RGB(0, 1, 1)
	Blue   = RGB(0, 0, 1)
	Orange = RGB(1, 0.65, 0)
	Yellow = RGB(1, 1, 0)
	Green  = RGB(0, 1, 0)
	Purple = RGB(1, 0, 1)
	Red    = RGB(1, 0, 0)
)

// RGB255 scales the channels to 0-255.
func (c Color) RGB255() (uint8, uint8, uint8) {
	return channel(c.R), channel(c.G), channel(c.B)
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (c Color) String() string {
	return c.Hex()
}
