// Package pdfgen paginates a layout block sequence and writes it out as
// PDF bytes. It emits PDF 1.4 directly: per-page content streams with
// text and rectangle operators, a page tree, two base fonts and an xref
// table. No external renderer is involved.
package pdfgen

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/chacepro/sbom-to-pdf/layout"
)

// Config holds page geometry and document metadata.
type Config struct {
	// Page size and margins in points (1 point = 1/72 inch).
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// Info dictionary metadata.
	Title    string
	Creator  string
	Producer string

	// Compress enables zlib content stream compression.
	Compress bool
}

// DefaultConfig returns US-letter geometry with one-inch margins on three
// sides and a reduced bottom margin.
func DefaultConfig() Config {
	return Config{
		PageWidth:    612,
		PageHeight:   792,
		MarginLeft:   72,
		MarginRight:  72,
		MarginTop:    72,
		MarginBottom: 18,
		Producer:     "sbom-to-pdf",
		Compress:     true,
	}
}

// Engine renders block sequences with a fixed configuration. Engines are
// stateless across calls and safe for concurrent use.
type Engine struct {
	cfg Config
}

// New returns an Engine for the given configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Render paginates the blocks and writes the finished PDF to w.
func (e *Engine) Render(blocks []layout.Block, w io.Writer) error {
	p := newPager(e.cfg)
	for _, b := range blocks {
		switch blk := b.(type) {
		case layout.Paragraph:
			e.paragraph(p, blk)
		case layout.Spacer:
			p.y -= blk.Height
		case layout.PageBreak:
			p.newPage()
		case layout.Table:
			e.table(p, blk)
		default:
			return fmt.Errorf("pdfgen: unsupported block type %T", b)
		}
	}

	doc := newDocument(e.cfg)
	for _, content := range p.close() {
		doc.addPage(content)
	}
	_, err := w.Write(doc.build())
	return err
}

func (e *Engine) paragraph(p *pager, par layout.Paragraph) {
	st := par.Style
	size := st.FontSize
	if size == 0 {
		size = 10
	}
	lineHeight := size * 1.25

	p.y -= st.SpaceBefore
	for _, line := range wrapText(par.Text, p.contentWidth(), size) {
		p.ensure(lineHeight)
		p.y -= lineHeight
		x := e.cfg.MarginLeft
		if st.Align == layout.AlignCenter {
			x += (p.contentWidth() - textWidth(line, size)) / 2
			if x < e.cfg.MarginLeft {
				x = e.cfg.MarginLeft
			}
		}
		p.text(x, p.y, line, size, st.Bold, st.Color)
	}
	p.y -= st.SpaceAfter
}

func (e *Engine) table(p *pager, t layout.Table) {
	st := t.Style
	size := st.FontSize
	if size == 0 {
		size = 10
	}
	pad := st.Padding
	if pad == 0 {
		pad = 4
	}
	lineHeight := size * 1.2
	widths := e.colWidths(t, p.contentWidth())

	for rowIdx, row := range t.Rows {
		// Wrap every cell first so the row height is known up front;
		// a row never splits across pages.
		cellLines := make([][]string, len(row))
		maxLines := 1
		for i, cell := range row {
			w := widths[i] - 2*pad
			cellLines[i] = wrapText(cell, w, size)
			if n := len(cellLines[i]); n > maxLines {
				maxLines = n
			}
		}
		rowHeight := float64(maxLines)*lineHeight + 2*pad

		p.ensure(rowHeight)
		top := p.y
		x := e.cfg.MarginLeft
		for i := range row {
			bg, fg, bold := cellStyle(st, rowIdx, i)
			p.fillRect(x, top-rowHeight, widths[i], rowHeight, bg)
			p.strokeRect(x, top-rowHeight, widths[i], rowHeight, st.GridColor)
			ty := top - pad - size
			for _, line := range cellLines[i] {
				p.text(x+pad, ty, line, size, bold, fg)
				ty -= lineHeight
			}
			x += widths[i]
		}
		p.y -= rowHeight
	}
}

func (e *Engine) colWidths(t layout.Table, contentWidth float64) []float64 {
	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if len(t.ColWidths) >= cols {
		return t.ColWidths
	}
	widths := make([]float64, cols)
	for i := range widths {
		widths[i] = contentWidth / float64(cols)
	}
	return widths
}

// cellStyle resolves the background, text color and weight of one cell.
func cellStyle(st layout.TableStyle, row, col int) (bg, fg layout.Color, bold bool) {
	if row < st.HeaderRows {
		return st.HeaderBackground, st.HeaderColor, true
	}
	if st.LabelColumn && col == 0 {
		return st.LabelBackground, st.LabelColor, true
	}
	bg = layout.White
	if st.RowBanding && (row-st.HeaderRows)%2 == 1 {
		bg = st.BandColor
	}
	return bg, st.ValueColor, false
}

// glyphWidth approximates the average Helvetica advance as a fraction of
// the font size. Good enough for wrapping; cells pad generously.
const glyphWidth = 0.5

func textWidth(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * glyphWidth
}

// wrapText breaks s into lines that fit the given width, honoring
// embedded newlines and hard-splitting words longer than a line.
// Lengths are measured in runes so multibyte text wraps like ASCII.
func wrapText(s string, width, size float64) []string {
	maxChars := int(width / (size * glyphWidth))
	if maxChars < 1 {
		maxChars = 1
	}
	var lines []string
	for _, raw := range strings.Split(s, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range words {
			for utf8.RuneCountInString(word) > maxChars {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				runes := []rune(word)
				lines = append(lines, string(runes[:maxChars]))
				word = string(runes[maxChars:])
			}
			switch {
			case line == "":
				line = word
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= maxChars:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// pager accumulates per-page content streams, flowing a y cursor from the
// top margin down and opening a new page when a block would not fit.
type pager struct {
	cfg   Config
	pages []string
	sb    strings.Builder
	y     float64
}

func newPager(cfg Config) *pager {
	p := &pager{cfg: cfg}
	p.open()
	return p
}

func (p *pager) contentWidth() float64 {
	return p.cfg.PageWidth - p.cfg.MarginLeft - p.cfg.MarginRight
}

func (p *pager) open() {
	p.sb.WriteString("q\n")
	fmt.Fprintf(&p.sb, "1 1 1 rg\n0 0 %.2f %.2f re f\n", p.cfg.PageWidth, p.cfg.PageHeight)
	p.y = p.cfg.PageHeight - p.cfg.MarginTop
}

func (p *pager) newPage() {
	p.sb.WriteString("Q\n")
	p.pages = append(p.pages, p.sb.String())
	p.sb.Reset()
	p.open()
}

// ensure starts a new page when height points no longer fit above the
// bottom margin.
func (p *pager) ensure(height float64) {
	if p.y-height < p.cfg.MarginBottom {
		p.newPage()
	}
}

// close flushes the open page and returns all content streams.
func (p *pager) close() []string {
	p.sb.WriteString("Q\n")
	p.pages = append(p.pages, p.sb.String())
	p.sb.Reset()
	return p.pages
}

func (p *pager) text(x, y float64, s string, size float64, bold bool, c layout.Color) {
	font := "/F1"
	if bold {
		font = "/F2"
	}
	p.sb.WriteString("BT\n")
	fmt.Fprintf(&p.sb, "%s %.2f Tf\n", font, size)
	fmt.Fprintf(&p.sb, "%.3f %.3f %.3f rg\n", c.R, c.G, c.B)
	fmt.Fprintf(&p.sb, "%.2f %.2f Td\n", x, y)
	fmt.Fprintf(&p.sb, "(%s) Tj\n", escapeString(encodeWinAnsi(s)))
	p.sb.WriteString("ET\n")
}

func (p *pager) fillRect(x, y, w, h float64, c layout.Color) {
	fmt.Fprintf(&p.sb, "%.3f %.3f %.3f rg\n", c.R, c.G, c.B)
	fmt.Fprintf(&p.sb, "%.2f %.2f %.2f %.2f re f\n", x, y, w, h)
}

func (p *pager) strokeRect(x, y, w, h float64, c layout.Color) {
	fmt.Fprintf(&p.sb, "%.3f %.3f %.3f RG\n0.5 w\n", c.R, c.G, c.B)
	fmt.Fprintf(&p.sb, "%.2f %.2f %.2f %.2f re S\n", x, y, w, h)
}

var pdfEscaper = strings.NewReplacer(
	`\`, `\\`,
	"(", `\(`,
	")", `\)`,
	"\r", " ",
	"\n", " ",
)

// escapeString makes s safe inside a PDF literal string.
func escapeString(s string) string {
	return pdfEscaper.Replace(s)
}

// cp1252 maps the non-Latin-1 code points WinAnsi places in 0x80..0x9F.
var cp1252 = map[rune]byte{
	'€': 0x80, // €
	'‚': 0x82,
	'ƒ': 0x83,
	'„': 0x84,
	'…': 0x85,
	'†': 0x86,
	'‡': 0x87,
	'ˆ': 0x88,
	'‰': 0x89,
	'Š': 0x8a,
	'‹': 0x8b,
	'Œ': 0x8c,
	'Ž': 0x8e,
	'‘': 0x91,
	'’': 0x92,
	'“': 0x93, // “
	'”': 0x94, // ”
	'•': 0x95,
	'–': 0x96, // –
	'—': 0x97, // —
	'˜': 0x98,
	'™': 0x99, // ™
	'š': 0x9a,
	'›': 0x9b,
	'œ': 0x9c,
	'ž': 0x9e,
	'Ÿ': 0x9f,
}

// encodeWinAnsi converts UTF-8 text to the single-byte WinAnsi encoding
// the base fonts declare. ASCII and Latin-1 pass through; the CP1252
// punctuation block is remapped; anything else becomes '?'.
func encodeWinAnsi(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 0x80:
			sb.WriteByte(byte(r))
		case r >= 0xa0 && r <= 0xff:
			sb.WriteByte(byte(r))
		default:
			if b, ok := cp1252[r]; ok {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('?')
			}
		}
	}
	return sb.String()
}
