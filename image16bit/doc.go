// Package image16bit provides the 16-bit RGB565 pixel format used by the ST7735 display controller.
//
// The ST7735 TFT controller accepts pixel data as 16-bit words with 5 bits of
// red, 6 bits of green and 5 bits of blue, transmitted high byte first.
//
// Memory layout example for a 2-pixel row (red followed by green):
//
//	Pixels: 0      1
//	Colors: 0xF800 0x07E0
//	Bytes:  0xF8 0x00 0x07 0xE0
//
// This package provides:
//
// - RGB565: a color type packing a 5-6-5 color value into a uint16
// - RGB565Model: a color model for converting standard Go colors to RGB565
// - BigEndian: an image.Image implementation storing pixels exactly as the
// controller expects them on the wire, so a full frame can be streamed
// without any per-pixel conversion.
//
// Example usage:
//
//	// Create a 128x160 image
//	img := image16bit.NewBigEndian(image.Rect(0, 0, 128, 160))
//
//	// Set a pixel to pure red
//	img.SetRGB565(10, 20, image16bit.RGB565(0xF800))
//
//	// Get a pixel
//	c := img.RGB565At(10, 20)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package image16bit
