// SPDX-License-Identifier: MIT

package debugdraw

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/gridgraph"
)

// GlyphPawn marks a cell with at least one pawn.
const GlyphPawn = '@'

// View is what Render reads from a map. *gridgraph.Map implements it.
type View interface {
	Size() grid.Size
	Terrain(c grid.Cell) gridgraph.Terrain
	DoorAt(c grid.Cell) *core.Door
	FirstPawnAt(c grid.Cell) *core.Pawn
	Fogged(c grid.Cell) bool
	Roofed(c grid.Cell) bool
}

var _ View = (*gridgraph.Map)(nil)

var (
	styleRejected = color.Style{color.FgRed}
	styleScanned  = color.Style{color.FgYellow}
	styleAccepted = color.Style{color.FgGreen, color.OpBold}
	styleWall     = color.Style{color.FgGray}
	styleDoor     = color.Style{color.FgYellow, color.OpBold}
	stylePawn     = color.Style{color.FgCyan, color.OpBold}
)

// Render writes m row by row, top row first, with the latest flash of every
// recorded cell drawn over it. Flashes outside m are ignored.
func (r *Recorder) Render(w io.Writer, m View) error {
	size := m.Size()
	bw := bufio.NewWriter(w)
	var line strings.Builder
	for z := size.Z - 1; z >= 0; z-- {
		line.Reset()
		for x := 0; x < size.X; x++ {
			c := grid.Cell{X: x, Z: z}
			if f, ok := r.Latest(c); ok {
				line.WriteString(heatStyle(f.Value).Sprint(string(heatGlyph(f.Value))))
				continue
			}
			line.WriteString(cellGlyph(m, c))
		}
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return fmt.Errorf("debugdraw: write row %d: %w", z, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("debugdraw: flush: %w", err)
	}
	return nil
}

// String renders m without colour.
func (r *Recorder) String(m View) string {
	var sb strings.Builder
	_ = r.Render(&sb, m)
	return color.ClearCode(sb.String())
}

func heatGlyph(v float64) byte {
	switch {
	case v <= 0:
		return '0'
	case v >= 1:
		return '9'
	}
	return '0' + byte(v*9)
}

func heatStyle(v float64) color.Style {
	switch {
	case v <= 0:
		return styleRejected
	case v < 0.5:
		return styleScanned
	}
	return styleAccepted
}

func cellGlyph(m View, c grid.Cell) string {
	if d := m.DoorAt(c); d != nil {
		g := gridgraph.GlyphDoor
		switch {
		case d.Open:
			g = gridgraph.GlyphOpenDoor
		case d.Locked:
			g = gridgraph.GlyphLocked
		}
		return styleDoor.Sprint(string(rune(g)))
	}
	if m.FirstPawnAt(c) != nil {
		return stylePawn.Sprint(string(GlyphPawn))
	}
	switch m.Terrain(c) {
	case gridgraph.Rock:
		return styleWall.Sprint(string(rune(gridgraph.GlyphRock)))
	case gridgraph.Water:
		return string(rune(gridgraph.GlyphWater))
	case gridgraph.Sand:
		return string(rune(gridgraph.GlyphSand))
	}
	switch {
	case m.Fogged(c):
		return string(rune(gridgraph.GlyphFog))
	case m.Roofed(c):
		return string(rune(gridgraph.GlyphRoof))
	}
	return string(rune(gridgraph.GlyphFloor))
}
