package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetPixelDotBits(t *testing.T) {
	b := newBrailleBuf(2, 1)
	// dots of one cell, left column top to bottom
	b.setPixel(0, 0, 1)
	require.Equal(t, uint8(0x01), b.m[0][0])
	b.setPixel(0, 1, 1)
	require.Equal(t, uint8(0x03), b.m[0][0])
	b.setPixel(0, 3, 1)
	require.Equal(t, uint8(0x43), b.m[0][0])
	// right column lands in the same cell
	b.setPixel(1, 0, 1)
	require.Equal(t, uint8(0x4B), b.m[0][0])
	// next cell over
	b.setPixel(2, 0, 2)
	require.Equal(t, uint8(0x01), b.m[0][1])
	require.Equal(t, uint8(2), b.c[0][1])
}

func TestSetPixelOutOfBounds(t *testing.T) {
	b := newBrailleBuf(2, 2)
	b.setPixel(-1, 0, 1)
	b.setPixel(0, -3, 1)
	b.setPixel(4, 0, 1)
	b.setPixel(0, 8, 1)
	for y := range b.m {
		for x := range b.m[y] {
			require.Zero(t, b.m[y][x])
		}
	}
}

func TestDrawLineMicro(t *testing.T) {
	b := newBrailleBuf(4, 1)
	b.drawLineMicro(0, 0, 7, 0, 1)
	for x := 0; x < 4; x++ {
		require.NotZero(t, b.m[0][x], "cell %d must carry part of the line", x)
	}
}

func TestFillTriangleMicro(t *testing.T) {
	b := newBrailleBuf(4, 2)
	b.fillTriangleMicro(0, 0, 7, 0, 0, 7, 3)

	require.NotZero(t, b.m[0][0])
	require.Equal(t, uint8(3), b.c[0][0])
	// hypotenuse leaves the far corner untouched
	require.Zero(t, b.m[1][3])
}

func TestFillTriangleLastWriterOwnsCell(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.fillTriangleMicro(0, 0, 3, 0, 0, 3, 1)
	b.fillTriangleMicro(0, 0, 3, 0, 0, 3, 2)
	require.Equal(t, uint8(2), b.c[0][0])
}

func TestToStyledLinesWidth(t *testing.T) {
	b := newBrailleBuf(5, 2)
	b.setPixel(2, 4, 1)
	b.setPixel(6, 5, 2)
	lines := b.toStyledLines(buildPalette())
	require.Len(t, lines, 2)
	require.Len(t, []rune(lines[1]), 5)

	// empty cells render as plain spaces
	require.Equal(t, "     ", lines[0])
}
