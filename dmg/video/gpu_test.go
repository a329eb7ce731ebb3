package video

import (
	"testing"

	"github.com/kestrel-emu/dmgcore/dmg/addr"
	"github.com/kestrel-emu/dmgcore/dmg/memory"
)

type expectedPixel struct {
	x, y  int
	color uint32
}

func TestGPUBackgroundTileDrawing(t *testing.T) {
	tests := []struct {
		name             string
		tileData         []byte // 16 bytes for one tile
		palette          byte
		scrollX, scrollY byte
		expectedPixels   []expectedPixel
		lcdcFlags        byte
		tileMapData      byte
		tileMapAddr      uint16
		tileDataAddr     uint16
	}{
		{
			name: "Simple 8x8 tile with all black pixels",
			tileData: []byte{
				0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
				0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
			},
			palette: 0xE4, // 11 10 01 00
			scrollX: 0, scrollY: 0,
			lcdcFlags:    0x91, // LCD enabled + BG enabled + tileset 1
			tileMapData:  0x00,
			tileMapAddr:  0x9800,
			tileDataAddr: 0x8000,
			expectedPixels: []expectedPixel{
				{0, 0, uint32(BlackColor)},
				{7, 0, uint32(BlackColor)},
				{0, 7, uint32(BlackColor)},
				{7, 7, uint32(BlackColor)},
			},
		},
		{
			name: "Checkered pattern tile",
			tileData: []byte{
				0xAA, 0x00, 0x55, 0x00, 0xAA, 0x00, 0x55, 0x00,
				0xAA, 0x00, 0x55, 0x00, 0xAA, 0x00, 0x55, 0x00,
			},
			palette: 0xE4,
			scrollX: 0, scrollY: 0,
			lcdcFlags:    0x91,
			tileMapData:  0x00,
			tileMapAddr:  0x9800,
			tileDataAddr: 0x8000,
			expectedPixels: []expectedPixel{
				{0, 0, uint32(LightGreyColor)}, // 0xAA bit 7=1, 0x00 bit 7=0 -> color 1
				{1, 0, uint32(WhiteColor)},     // 0xAA bit 6=0, 0x00 bit 6=0 -> color 0
				{0, 1, uint32(WhiteColor)},     // 0x55 bit 7=0, 0x00 bit 7=0 -> color 0
				{1, 1, uint32(LightGreyColor)}, // 0x55 bit 6=1, 0x00 bit 6=0 -> color 1
			},
		},
		{
			name: "Scroll offset shifts which tile column/row is visible",
			tileData: []byte{
				0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00,
				0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00,
			},
			palette: 0xE4,
			scrollX: 4, scrollY: 2,
			lcdcFlags:    0x91,
			tileMapData:  0x00,
			tileMapAddr:  0x9800,
			tileDataAddr: 0x8000,
			expectedPixels: []expectedPixel{
				{0, 0, uint32(LightGreyColor)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mmu := memory.New()
			gpu := NewPPU(mmu)

			mmu.Write(addr.LCDC, tt.lcdcFlags)
			mmu.Write(addr.BGP, tt.palette)
			mmu.Write(addr.SCX, tt.scrollX)
			mmu.Write(addr.SCY, tt.scrollY)

			for i, data := range tt.tileData {
				mmu.Write(tt.tileDataAddr+uint16(i), data)
			}
			mmu.Write(tt.tileMapAddr, tt.tileMapData)

			lines := map[int]bool{}
			for _, expected := range tt.expectedPixels {
				lines[expected.y] = true
			}
			for line := range lines {
				gpu.line = line
				gpu.mode = vramReadMode
				gpu.drawBackground()
			}

			fb := gpu.GetFrameBuffer()
			for _, expected := range tt.expectedPixels {
				actual := fb.GetPixel(uint(expected.x), uint(expected.y))
				if actual != expected.color {
					t.Errorf("pixel (%d,%d): expected %08X, got %08X", expected.x, expected.y, expected.color, actual)
				}
			}
		})
	}
}

// TestGPUTileAddressCalculation only checks that background drawing completes
// without panicking across both tileset addressing modes; the address math
// itself is verified pixel-by-pixel in gpu_tile_test.go.
func TestGPUTileAddressCalculation(t *testing.T) {
	tests := []struct {
		name           string
		useTileSetZero bool
		tileNumber     byte
	}{
		{"Tileset 1, tile 0", false, 0x00},
		{"Tileset 1, tile 255", false, 0xFF},
		{"Tileset 0, tile 128 (signed -128)", true, 0x80},
		{"Tileset 0, tile 127 (signed +127)", true, 0x7F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mmu := memory.New()
			gpu := NewPPU(mmu)

			lcdcFlags := byte(0x81)
			if !tt.useTileSetZero {
				lcdcFlags |= 0x10
			}
			mmu.Write(addr.LCDC, lcdcFlags)
			mmu.Write(0x9800, tt.tileNumber)

			gpu.line = 0
			gpu.mode = vramReadMode
			gpu.drawBackground()
		})
	}
}
