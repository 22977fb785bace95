// Package image16bit provides a 16-bit RGB565 image format optimized for the ST7735 display.
//
// Pixels are stored as big-endian byte pairs, matching the wire format of the
// controller's memory-write command.
package image16bit

import (
	"image"
	"image/color"
)

// RGB565 represents a 16-bit color with 5 bits red, 6 bits green and 5 bits blue.
type RGB565 uint16

// RGBA converts the RGB565 color to standard RGBA.
// Each channel is expanded to 8 bits by replicating its high bits, then
// scaled to 16-bit.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	r = (r5<<3 | r5>>2) * 0x101
	g = (g6<<2 | g6>>4) * 0x101
	b = (b5<<3 | b5>>2) * 0x101
	return r, g, b, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565.
func toRGB565(c color.Color) color.Color {
	if c565, ok := c.(RGB565); ok {
		return c565
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit channels; keep the top 5-6-5 bits.
	return RGB565(uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11))
}

// RGB565Model converts colors to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)

// BigEndian is a 16-bit RGB565 image where each pixel is stored as two bytes,
// high byte first. The Pix slice is therefore byte-for-byte identical to the
// stream the ST7735 expects after a memory-write command.
type BigEndian struct {
	Pix    []byte          // Pixel data (2 bytes per pixel)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewBigEndian creates a new BigEndian image with the specified bounds.
func NewBigEndian(r image.Rectangle) *BigEndian {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &BigEndian{Rect: r}
	}
	stride := w * 2
	return &BigEndian{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *BigEndian) ColorModel() color.Model {
	return RGB565Model
}

// Bounds returns the image bounds.
func (p *BigEndian) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *BigEndian) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y).
func (p *BigEndian) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return RGB565(0)
	}
	offset := p.PixOffset(x, y)
	return RGB565(uint16(p.Pix[offset])<<8 | uint16(p.Pix[offset+1]))
}

// Set sets the color of the pixel at (x, y).
func (p *BigEndian) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, RGB565Model.Convert(c).(RGB565))
}

// SetRGB565 sets the RGB565 color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *BigEndian) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset := p.PixOffset(x, y)
	p.Pix[offset] = byte(c >> 8)
	p.Pix[offset+1] = byte(c)
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *BigEndian) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
