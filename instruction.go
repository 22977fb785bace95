package st7735

// instruction is an ST7735 command opcode.
//
// The values come straight from the datasheet command table and must not be
// changed: the controller decodes each opcode byte literally.
type instruction byte

const (
	nop     instruction = 0x00
	swreset instruction = 0x01 // Software reset
	rddid   instruction = 0x04
	rddst   instruction = 0x09
	slpin   instruction = 0x10 // Sleep in
	slpout  instruction = 0x11 // Sleep out
	ptlon   instruction = 0x12
	noron   instruction = 0x13
	invoff  instruction = 0x20 // Display inversion off
	invon   instruction = 0x21 // Display inversion on
	dispoff instruction = 0x28
	dispon  instruction = 0x29 // Display on
	caset   instruction = 0x2A // Column address set
	raset   instruction = 0x2B // Row address set
	ramwr   instruction = 0x2C // Memory write
	ramrd   instruction = 0x2E
	ptlar   instruction = 0x30
	colmod  instruction = 0x3A // Interface pixel format
	madctl  instruction = 0x36 // Memory data access control
	frmctr1 instruction = 0xB1 // Frame rate control (normal mode)
	frmctr2 instruction = 0xB2 // Frame rate control (idle mode)
	frmctr3 instruction = 0xB3 // Frame rate control (partial mode)
	invctr  instruction = 0xB4 // Display inversion control
	disset5 instruction = 0xB6
	pwctr1  instruction = 0xC0 // Power control 1
	pwctr2  instruction = 0xC1 // Power control 2
	pwctr3  instruction = 0xC2 // Power control 3
	pwctr4  instruction = 0xC3 // Power control 4
	pwctr5  instruction = 0xC4 // Power control 5
	vmctr1  instruction = 0xC5 // VCOM control 1
	rdid1   instruction = 0xDA
	rdid2   instruction = 0xDB
	rdid3   instruction = 0xDC
	rdid4   instruction = 0xDD
	pwctr6  instruction = 0xFC
	gmctrp1 instruction = 0xE0 // Positive gamma correction
	gmctrn1 instruction = 0xE1 // Negative gamma correction
)
