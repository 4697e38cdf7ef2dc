// Package layout defines the abstract document flow consumed by the PDF
// rendering engine: paragraphs, spacers, tables and forced page breaks.
// Blocks carry their own styling so the composer stays independent of
// page geometry and pagination.
package layout

import "strconv"

// Block is a single unit of document flow.
type Block interface {
	block()
}

// Paragraph is a run of styled text, wrapped by the renderer.
type Paragraph struct {
	Text  string
	Style TextStyle
}

// Spacer is a fixed vertical gap, in points.
type Spacer struct {
	Height float64
}

// PageBreak forces the next block onto a new page.
type PageBreak struct{}

// Table is a grid of plain-text cells with fixed column widths in points.
// When ColWidths is nil the renderer divides the content width evenly.
type Table struct {
	Rows      [][]string
	ColWidths []float64
	Style     TableStyle
}

func (Paragraph) block() {}
func (Spacer) block()    {}
func (PageBreak) block() {}
func (Table) block()     {}

// Alignment selects horizontal paragraph placement.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// White is the default cell background.
var White = Color{1, 1, 1}

// Hex parses a "#rrggbb" color. Malformed input yields black.
func Hex(s string) Color {
	if len(s) != 7 || s[0] != '#' {
		return Color{}
	}
	r, _ := strconv.ParseUint(s[1:3], 16, 8)
	g, _ := strconv.ParseUint(s[3:5], 16, 8)
	b, _ := strconv.ParseUint(s[5:7], 16, 8)
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// TextStyle controls paragraph rendering.
type TextStyle struct {
	FontSize    float64
	Bold        bool
	Color       Color
	Align       Alignment
	SpaceBefore float64
	SpaceAfter  float64
}

// TableStyle controls table rendering. A table may style its first column
// as a label column (key/value tables), its leading rows as header rows,
// or band alternating data rows; the zero value renders a plain grid.
type TableStyle struct {
	FontSize float64
	Padding  float64

	GridColor Color

	// LabelColumn styles column 0 as bold label cells.
	LabelColumn     bool
	LabelBackground Color
	LabelColor      Color

	ValueColor Color

	// HeaderRows marks the leading rows as bold header rows.
	HeaderRows       int
	HeaderBackground Color
	HeaderColor      Color

	// RowBanding alternates data row backgrounds between white and BandColor.
	RowBanding bool
	BandColor  Color
}
