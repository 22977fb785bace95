package image16bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestRGB565RGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       RGB565
		r, g, b uint32
	}{
		{"black", RGB565(0x0000), 0x0000, 0x0000, 0x0000},
		{"white", RGB565(0xFFFF), 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", RGB565(0xF800), 0xFFFF, 0x0000, 0x0000},
		{"green", RGB565(0x07E0), 0x0000, 0xFFFF, 0x0000},
		{"blue", RGB565(0x001F), 0x0000, 0x0000, 0xFFFF},
		{"mid gray", RGB565(0x8410), 0x8484, 0x8282, 0x8484},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, %x)",
					r, g, b, a, tt.r, tt.g, tt.b, uint32(0xFFFF))
			}
		})
	}
}

func TestRGB565ModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  RGB565
	}{
		{"rgb565 passthrough", RGB565(0x1234), RGB565(0x1234)},
		{"black", color.Black, RGB565(0x0000)},
		{"white", color.White, RGB565(0xFFFF)},
		{"red", color.RGBA{0xFF, 0x00, 0x00, 0xFF}, RGB565(0xF800)},
		{"green", color.RGBA{0x00, 0xFF, 0x00, 0xFF}, RGB565(0x07E0)},
		{"blue", color.RGBA{0x00, 0x00, 0xFF, 0xFF}, RGB565(0x001F)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RGB565Model.Convert(tt.input).(RGB565)
			if result != tt.want {
				t.Errorf("RGB565Model.Convert(%v) = 0x%04X, want 0x%04X", tt.input, uint16(result), uint16(tt.want))
			}
		})
	}
}

func TestNewBigEndian(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"128x160", image.Rect(0, 0, 128, 160), 256, 40960},
		{"160x80", image.Rect(0, 0, 160, 80), 320, 25600},
		{"4x2", image.Rect(0, 0, 4, 2), 8, 16},
		{"1x1", image.Rect(0, 0, 1, 1), 2, 2},
		{"offset rect", image.Rect(10, 20, 14, 22), 8, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewBigEndian(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestBigEndianBytePacking(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 2, 1))

	img.SetRGB565(0, 0, RGB565(0xF800))
	img.SetRGB565(1, 0, RGB565(0x07E0))

	// High byte first, matching the wire format.
	want := []byte{0xF8, 0x00, 0x07, 0xE0}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
		}
	}
}

func TestBigEndianSetGet(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 4, 2))

	testCases := [][4]RGB565{
		{0x0000, 0xF800, 0x07E0, 0x001F},
		{0xFFFF, 0x8410, 0x1234, 0xFEDC},
	}

	for y, row := range testCases {
		for x, c := range row {
			img.SetRGB565(x, y, c)
		}
	}

	for y, row := range testCases {
		for x, want := range row {
			if got := img.RGB565At(x, y); got != want {
				t.Errorf("RGB565At(%d, %d) = 0x%04X, want 0x%04X", x, y, uint16(got), uint16(want))
			}
		}
	}
}

func TestBigEndianOutOfBounds(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 2, 2))

	// Writes outside the bounds are dropped.
	img.SetRGB565(2, 0, RGB565(0xFFFF))
	img.SetRGB565(0, -1, RGB565(0xFFFF))
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X, want 0x00", i, b)
		}
	}

	// Reads outside the bounds return zero.
	if got := img.RGB565At(-1, 0); got != 0 {
		t.Errorf("RGB565At(-1, 0) = 0x%04X, want 0", uint16(got))
	}
}

func TestBigEndianDrawInterop(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 4, 4))

	draw.Draw(img, image.Rect(1, 1, 3, 3), image.NewUniform(color.RGBA{0xFF, 0x00, 0x00, 0xFF}), image.Point{}, draw.Src)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := RGB565(0)
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = RGB565(0xF800)
			}
			if got := img.RGB565At(x, y); got != want {
				t.Errorf("RGB565At(%d, %d) = 0x%04X, want 0x%04X", x, y, uint16(got), uint16(want))
			}
		}
	}
}
