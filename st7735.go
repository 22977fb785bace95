// Package st7735 controls a ST7735 TFT LCD display via SPI.
//
// The ST7735 is a single-chip controller for 262K-color TFT panels of up to
// 132x162 pixels. Common panel resolutions are 128x160 and 160x80.
//
// See the examples for how to use this package.
package st7735

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/flavioheleno/st7735/image16bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Orientation is the logical orientation of the panel.
//
// Each value is the MADCTL base byte for that orientation; the BGR color
// order bit is composed in at send time.
type Orientation byte

const (
	Portrait         Orientation = 0x00
	Landscape        Orientation = 0x60
	PortraitSwapped  Orientation = 0xC0
	LandscapeSwapped Orientation = 0xA0
)

// bgrBit selects BGR color order in the MADCTL register.
const bgrBit = 0x08

// madctl composes the MADCTL parameter byte for the orientation and the
// panel wiring.
func (o Orientation) madctl(rgb bool) byte {
	if rgb {
		return byte(o)
	}
	return byte(o) | bgrBit
}

// bufferedPixels is the number of pixels batched into a single SPI write on
// the buffered streaming path.
const bufferedPixels = 16

// Opts is the configuration for the ST7735 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128)
	H int // Height (default: 160)

	// RGB is true when the panel is wired for RGB color order, false for BGR.
	RGB bool
	// Inverted enables display color inversion.
	Inverted bool

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the ST7735 display.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinIO  // Reset pin (optional)

	// Panel wiring
	rgb      bool
	inverted bool

	// Display geometry
	rect   image.Rectangle
	dx, dy uint16 // Global offset into the controller's memory array

	// State
	halted bool

	sleep func(time.Duration)
}

// NewSPI creates a new ST7735 device connected via SPI.
//
// The SPI port is configured for 12MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output.
//
// opts can be nil to use defaults (128x160 display, BGR wiring).
//
// The display is fully initialized before NewSPI returns; if the optional
// RST pin is provided the init starts with a hardware reset, otherwise it
// relies on power-on reset.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{W: 128, H: 160}
	}

	if opts.W <= 0 || opts.W > 0xFFFF {
		return nil, errors.New("st7735: width must be between 1 and 65535")
	}
	if opts.H <= 0 || opts.H > 0xFFFF {
		return nil, errors.New("st7735: height must be between 1 and 65535")
	}

	// Establish SPI connection
	// The ST7735 serial write clock cycle is 66ns, so 12MHz keeps margin.
	c, err := p.Connect(12*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	// Create device
	d := &Dev{
		c:        c,
		dc:       dc,
		rst:      opts.RST,
		rgb:      opts.RGB,
		inverted: opts.Inverted,
		rect:     image.Rect(0, 0, opts.W, opts.H),
		sleep:    time.Sleep,
	}

	// Initialize the display
	if err := d.Init(); err != nil {
		return nil, err
	}

	return d, nil
}

// command is one step of the initialization sequence.
type command struct {
	ins    instruction
	params []byte
	delay  time.Duration
}

// Init runs the full initialization sequence, bringing the display from
// reset to a ready, displaying state.
//
// NewSPI calls Init once; calling it again is the documented recovery path
// after a bus failure, and redoes the hardware reset when a RST pin is
// available. A failure mid-sequence leaves the display in an indeterminate
// state and Init must be re-run from the top before issuing drawing calls.
func (d *Dev) Init() error {
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	d.halted = false

	if d.rst != nil {
		if err := d.hardReset(); err != nil {
			return err
		}
	}

	inv := invoff
	if d.inverted {
		inv = invon
	}
	mad := byte(0x00)
	if !d.rgb {
		mad = bgrBit
	}

	seq := []command{
		{swreset, nil, 200 * time.Millisecond},
		{slpout, nil, 200 * time.Millisecond},
		{frmctr1, []byte{0x01, 0x2C, 0x2D}, 0},
		{frmctr2, []byte{0x01, 0x2C, 0x2D}, 0},
		{frmctr3, []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}, 0},
		{invctr, []byte{0x07}, 0},
		{pwctr1, []byte{0xA2, 0x02, 0x84}, 0},
		{pwctr2, []byte{0xC5}, 0},
		{pwctr3, []byte{0x0A, 0x00}, 0},
		{pwctr4, []byte{0x8A, 0x2A}, 0},
		{pwctr5, []byte{0x8A, 0xEE}, 0},
		{vmctr1, []byte{0x0E}, 0},
		{inv, nil, 0},
		{madctl, []byte{mad}, 0},
		{colmod, []byte{0x05}, 0}, // 16-bit/pixel
		{dispon, nil, 200 * time.Millisecond},
	}

	for _, c := range seq {
		if err := d.sendCommand(c.ins, c.params); err != nil {
			return err
		}
		if c.delay != 0 {
			d.sleep(c.delay)
		}
	}
	return nil
}

// hardReset pulses the RST line to reset the controller.
func (d *Dev) hardReset() error {
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7735: failed to pull RST high: %w", err)
	}
	d.sleep(10 * time.Millisecond)

	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7735: failed to pull RST low: %w", err)
	}
	d.sleep(10 * time.Millisecond)

	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7735: failed to pull RST high: %w", err)
	}
	return nil
}

// sendCommand sends one command opcode with DC low, then any parameter
// bytes with DC high.
//
// On failure the DC line is left in whatever state it was last driven to;
// callers must not assume a default.
func (d *Dev) sendCommand(ins instruction, params []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{byte(ins)}, nil); err != nil {
		return err
	}
	if len(params) == 0 {
		return nil
	}
	return d.sendData(params)
}

// sendData sends a slice of data bytes with DC high.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writeWord sends a 16-bit value, high byte first.
func (d *Dev) writeWord(v uint16) error {
	return d.sendData([]byte{byte(v >> 8), byte(v)})
}

// SetOffset sets the global offset of the displayed image.
//
// The offset maps a smaller visible panel onto the controller's larger
// addressable memory array; it is added to every address window coordinate.
func (d *Dev) SetOffset(dx, dy uint16) {
	d.dx = dx
	d.dy = dy
}

// SetOrientation sets the logical orientation of the panel.
//
// It sends a single MADCTL command composed from the orientation and the
// RGB/BGR wiring; no other display state is touched.
func (d *Dev) SetOrientation(o Orientation) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	return d.sendCommand(madctl, []byte{o.madctl(d.rgb)})
}

// SetAddressWindow sets the rectangular window of display memory that
// subsequent pixel writes will fill.
//
// The global offset is added to all four coordinates. No bounds validation
// is performed; windows outside the panel are accepted by the controller
// but produce undefined visual results. The controller remembers the last
// window until it is changed.
func (d *Dev) SetAddressWindow(sx, sy, ex, ey uint16) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	var w [4]byte
	binary.BigEndian.PutUint16(w[0:], sx+d.dx)
	binary.BigEndian.PutUint16(w[2:], ex+d.dx)
	if err := d.sendCommand(caset, w[:]); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(w[0:], sy+d.dy)
	binary.BigEndian.PutUint16(w[2:], ey+d.dy)
	return d.sendCommand(raset, w[:])
}

// SetPixel sets a single pixel to a raw RGB565 color value.
//
// The coordinate is not clipped; see DrawPixel for the clipping variant.
func (d *Dev) SetPixel(x, y, color uint16) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	if err := d.SetAddressWindow(x, y, x, y); err != nil {
		return err
	}
	if err := d.sendCommand(ramwr, nil); err != nil {
		return err
	}
	return d.writeWord(color)
}

// WritePixels writes raw RGB565 colors sequentially into the current
// address window, one bus transfer per pixel.
func (d *Dev) WritePixels(colors []uint16) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	if err := d.sendCommand(ramwr, nil); err != nil {
		return err
	}
	for _, c := range colors {
		if err := d.writeWord(c); err != nil {
			return err
		}
	}
	return nil
}

// WritePixelsBuffered writes raw RGB565 colors sequentially into the
// current address window, batching bufferedPixels pixels per bus transfer.
//
// This cuts the transaction count by up to 16x versus WritePixels and is
// the preferred path for area fills and frame updates. A failure aborts the
// remaining pixels; already-sent pixels stay on the controller, partially
// updating the window.
func (d *Dev) WritePixelsBuffered(colors []uint16) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	if err := d.sendCommand(ramwr, nil); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}

	var buf [bufferedPixels * 2]byte
	n := 0
	for _, c := range colors {
		binary.BigEndian.PutUint16(buf[n:], c)
		n += 2
		if n == len(buf) {
			if err := d.c.Tx(buf[:], nil); err != nil {
				return err
			}
			n = 0
		}
	}
	if n > 0 {
		return d.c.Tx(buf[:n], nil)
	}
	return nil
}

// SetPixels sets the address window and writes one color per pixel into it.
func (d *Dev) SetPixels(sx, sy, ex, ey uint16, colors []uint16) error {
	if err := d.SetAddressWindow(sx, sy, ex, ey); err != nil {
		return err
	}
	return d.WritePixels(colors)
}

// SetPixelsBuffered sets the address window and streams colors into it in
// batched bus transfers.
func (d *Dev) SetPixelsBuffered(sx, sy, ex, ey uint16, colors []uint16) error {
	if err := d.SetAddressWindow(sx, sy, ex, ey); err != nil {
		return err
	}
	return d.WritePixelsBuffered(colors)
}

// Invert toggles display color inversion.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	d.inverted = invert
	ins := invoff
	if invert {
		ins = invon
	}
	return d.sendCommand(ins, nil)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image16bit.RGB565Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// DrawPixel sets a single pixel, converting the color to RGB565.
//
// Coordinates outside the panel are silently dropped; off-screen draws are
// a no-op, not an error.
func (d *Dev) DrawPixel(x, y int, c color.Color) error {
	if d.halted {
		return errors.New("st7735: halted")
	}
	if !(image.Point{X: x, Y: y}.In(d.rect)) {
		return nil
	}
	c565 := image16bit.RGB565Model.Convert(c).(image16bit.RGB565)
	return d.SetPixel(uint16(x), uint16(y), uint16(c565))
}

// Draw draws an image onto the display.
//
// The dst rectangle is clipped to the panel; an empty intersection is a
// no-op. A full-frame image16bit.BigEndian source is streamed as-is without
// per-pixel conversion.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("st7735: halted")
	}

	// Clip to display bounds
	clipped := dst.Intersect(d.rect)
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(dst.Min))
	dst = clipped

	// Fast path: if source is already BigEndian at full size
	if srcImg, ok := src.(*image16bit.BigEndian); ok {
		zeroPoint := image.Point{}
		if dst == d.rect && sp == zeroPoint && srcImg.Rect == d.rect {
			if err := d.SetAddressWindow(0, 0, uint16(d.rect.Max.X-1), uint16(d.rect.Max.Y-1)); err != nil {
				return err
			}
			if err := d.sendCommand(ramwr, nil); err != nil {
				return err
			}
			return d.sendData(srcImg.Pix)
		}
	}

	// Slow path: convert pixel by pixel and stream the clipped region.
	colors := make([]uint16, 0, dst.Dx()*dst.Dy())
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			c := src.At(sp.X+x-dst.Min.X, sp.Y+y-dst.Min.Y)
			colors = append(colors, uint16(image16bit.RGB565Model.Convert(c).(image16bit.RGB565)))
		}
	}
	return d.SetPixelsBuffered(
		uint16(dst.Min.X), uint16(dst.Min.Y),
		uint16(dst.Max.X-1), uint16(dst.Max.Y-1),
		colors)
}

// Clear fills the whole panel with a single color.
func (d *Dev) Clear(c color.Color) error {
	if d.halted {
		return errors.New("st7735: halted")
	}

	c565 := uint16(image16bit.RGB565Model.Convert(c).(image16bit.RGB565))
	w := d.rect.Dx()
	h := d.rect.Dy()
	if err := d.SetAddressWindow(0, 0, uint16(w-1), uint16(h-1)); err != nil {
		return err
	}
	if err := d.sendCommand(ramwr, nil); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}

	var buf [bufferedPixels * 2]byte
	for i := 0; i < len(buf); i += 2 {
		binary.BigEndian.PutUint16(buf[i:], c565)
	}
	remaining := w * h
	for remaining > 0 {
		n := bufferedPixels
		if remaining < n {
			n = remaining
		}
		if err := d.c.Tx(buf[:n*2], nil); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

// Halt turns the display off.
// After calling Halt, the display will not respond to further commands
// until Init is run again.
func (d *Dev) Halt() error {
	err := d.sendCommand(dispoff, nil)
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7735.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
