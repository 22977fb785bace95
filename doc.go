// Package st7735 controls a ST7735 TFT LCD display via SPI.
//
// The ST7735 is a 262K-color single-chip TFT controller driving panels of up
// to 132x162 pixels. This driver implements the display.Drawer interface
// from periph.io.
//
// # Display Characteristics
//
// - 16-bit RGB565 color (5 bits red, 6 bits green, 5 bits blue)
// - Support for various resolutions (typically 128x160 or 160x80)
// - Four hardware orientations plus RGB/BGR channel order selection
// - Display color inversion
// - 132x162 internal RAM with a configurable window offset for panels whose
// visible area is a sub-window of the memory array
//
// # Hardware Connection
//
// Connect the ST7735 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC/A0       → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"image"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/st7735"
//		"github.com/flavioheleno/st7735/image16bit"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command GPIO pin
//		dcPin := gpioreg.ByName("GPIO24")
//
//		// Create device
//		dev, _ := st7735.NewSPI(spiBus, dcPin, &st7735.Opts{
//			W: 128,
//			H: 160,
//		})
//		defer dev.Halt()
//
//		// Create an image in the display's native pixel format
//		img := image16bit.NewBigEndian(dev.Bounds())
//
//		// Draw a red/blue gradient
//		for y := 0; y < 160; y++ {
//			for x := 0; x < 128; x++ {
//				r := uint16(x * 31 / 127)
//				b := uint16(y * 31 / 159)
//				img.SetRGB565(x, y, image16bit.RGB565(r<<11|b))
//			}
//		}
//
//		// Display the image
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// # Using Hardware Reset Pin (Optional)
//
// If your display has a reset (RES) pin connected to a GPIO, you can provide
// it in the Opts struct for clean hardware initialization:
//
//	rstPin := gpioreg.ByName("GPIO25")
//
//	dev, _ := st7735.NewSPI(spiBus, dcPin, &st7735.Opts{
//		W:   128,
//		H:   160,
//		RST: rstPin, // Optional reset pin
//	})
//
// The driver will automatically perform a hardware reset (pulse RST high,
// low, high with 10ms waits) at the start of initialization. If RST is nil
// or not provided, the driver skips the hardware reset and relies on
// power-on reset.
//
// # Error Recovery
//
// Every operation that touches the bus returns the transport error
// uninterpreted. The driver never retries: a failure mid-sequence leaves the
// display in an indeterminate state, and the documented recovery path is to
// call Init again, which re-runs the whole sequence from the hardware reset.
// The DC line state after a failed write is whatever it was last driven to.
//
// # Drawing Modes
//
// The driver supports two kinds of drawing surface.
//
// The high-level surface is the display.Drawer interface: Draw clips the
// destination rectangle to the panel, converts the source image to RGB565
// and streams it in batched transfers. Full-frame image16bit.BigEndian
// sources are streamed without any per-pixel conversion:
//
//	img := image16bit.NewBigEndian(dev.Bounds())
//	// ... draw into img ...
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// DrawPixel and Clear round out the surface; off-screen coordinates are
// silently dropped rather than reported as errors.
//
// The low-level surface mirrors the controller's own protocol:
// SetAddressWindow selects the rectangular write window, and
// WritePixels/WritePixelsBuffered stream raw RGB565 words into it.
// The buffered variant batches 16 pixels per SPI transaction and is the
// preferred path for area fills and frame updates.
//
// # Orientation
//
// The display supports four logical orientations. SetOrientation sends a
// single memory-access-control byte composed from the orientation and the
// panel's RGB/BGR wiring:
//
//	dev.SetOrientation(st7735.Landscape)
//
// # Concurrency
//
// All operations are synchronous, blocking bus transactions. The device
// handle is not safe for concurrent use; callers sharing a Dev across
// goroutines must supply their own mutual exclusion.
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/ST7735.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package st7735
