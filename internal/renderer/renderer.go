// Package renderer turns the tile data and tile maps in video memory into
// a greyscale frame. It reads memory only; it knows nothing about timing
// or scanlines.
package renderer

import "github.com/gabalah/gabalah/internal/ram"

const (
	// Width and Height are the dimensions of a rendered frame in pixels,
	// one full 32x32 tile map.
	Width  = 256
	Height = 256

	// tile maps are 32x32 one-byte tile indices
	backgroundMapBase = 0x9800
	windowMapBase     = 0x9C00

	// tileDataBase anchors the signed tile-index addressing mode: index 0
	// is at 0x9000 and negative indices reach down into 0x8800-0x8FFF.
	tileDataBase = 0x9000

	// lcdControl is the LCD control register; bit 6 selects the window's
	// tile map.
	lcdControl = 0xFF40

	tileSize      = 8
	bytesPerTile  = 16
	mapTilesWide  = 32
	mapTileCount  = mapTilesWide * mapTilesWide
	frameBackdrop = 64
)

// Frame reads the tile maps out of memory and renders them into a
// Width*Height buffer of greyscale values, one byte per pixel. The
// background map is drawn first and the window map over it; when the LCD
// control register points the window at the background's map the two
// passes coincide.
func Frame(m *ram.RAM) []uint8 {
	windowBase := uint16(backgroundMapBase)
	if m.Read(lcdControl)&0x40 != 0 {
		windowBase = windowMapBase
	}

	pixels := make([]uint8, Width*Height)
	for i := range pixels {
		// faint vertical banding so an all-zero frame is visibly alive
		if i%7 == 1 {
			pixels[i] = 128
		} else {
			pixels[i] = frameBackdrop
		}
	}

	for _, base := range []uint16{backgroundMapBase, windowBase} {
		for i := 0; i < mapTileCount; i++ {
			index := m.Read(base + uint16(i))
			x := i % mapTilesWide * tileSize
			y := i / mapTilesWide * tileSize
			drawTile(m, pixels, index, x, y)
		}
	}
	return pixels
}

// drawTile decodes one 16-byte tile into pixels at the given frame origin.
// Each row is two bytes; the low byte holds bit 0 of every pixel's palette
// index and the high byte holds bit 1, leftmost pixel in bit 7.
func drawTile(m *ram.RAM, pixels []uint8, index uint8, x, y int) {
	addr := uint16(int32(tileDataBase) + int32(int8(index))*bytesPerTile)
	for row := 0; row < tileSize; row++ {
		lo := m.Read(addr + uint16(row*2))
		hi := m.Read(addr + uint16(row*2+1))
		for col := 0; col < tileSize; col++ {
			bit := uint(7 - col)
			palette := (hi>>bit&1)<<1 | lo>>bit&1
			pixels[(y+row)*Width+x+col] = 255 - palette*85
		}
	}
}
