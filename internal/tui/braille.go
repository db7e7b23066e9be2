package tui

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit dot mask
	c    [][]uint8 // per-cell palette index; 0 means unset
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) with a palette
// color. The last writer owns the cell color, which suits painter-ordered
// fills.
func (b *brailleBuf) setPixel(mx, my int, col uint8) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.c[cy][cx] = col
}

// drawLineMicro draws a line on the microgrid using Bresenham.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, col uint8) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangleMicro rasterizes a filled triangle on the microgrid with a
// per-scanline span fill.
func (b *brailleBuf) fillTriangleMicro(x0, y0, x1, y1, x2, y2 int, col uint8) {
	minY := min(y0, min(y1, y2))
	maxY := max(y0, max(y1, y2))
	if minY < 0 {
		minY = 0
	}
	if maxY >= b.h*4 {
		maxY = b.h*4 - 1
	}
	edges := [3][4]int{{x0, y0, x1, y1}, {x1, y1, x2, y2}, {x2, y2, x0, y0}}
	for y := minY; y <= maxY; y++ {
		xmin, xmax := 1<<30, -(1 << 30)
		for _, e := range edges {
			ax, ay, bx, by := e[0], e[1], e[2], e[3]
			if ay == by {
				if ay == y {
					xmin = min(xmin, min(ax, bx))
					xmax = max(xmax, max(ax, bx))
				}
				continue
			}
			if (y >= ay && y <= by) || (y >= by && y <= ay) {
				t := float64(y-ay) / float64(by-ay)
				x := int(float64(ax) + t*float64(bx-ax))
				xmin = min(xmin, x)
				xmax = max(xmax, x)
			}
		}
		if xmin > xmax {
			continue
		}
		for x := max(0, xmin); x <= xmax; x++ {
			b.setPixel(x, y, col)
		}
	}
}

// toStyledLines renders the buffer to terminal rows, styling runs of cells
// that share a palette color.
func (b *brailleBuf) toStyledLines(pal *palette) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb []byte
		runStart := 0
		runCol := uint8(0)
		flush := func(end int) {
			if end <= runStart {
				return
			}
			runes := make([]rune, 0, end-runStart)
			for x := runStart; x < end; x++ {
				mask := b.m[y][x]
				if mask == 0 {
					runes = append(runes, ' ')
				} else {
					runes = append(runes, rune(0x2800+int(mask)))
				}
			}
			sb = append(sb, pal.render(runCol, string(runes))...)
		}
		for x := 0; x < b.w; x++ {
			col := b.c[y][x]
			if b.m[y][x] == 0 {
				col = 0
			}
			if col != runCol {
				flush(x)
				runStart = x
				runCol = col
			}
		}
		flush(b.w)
		out[y] = string(sb)
	}
	return out
}
