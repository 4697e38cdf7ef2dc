package pdfgen

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"strings"
	"time"
)

const pdfVersion = "1.4"

// document assembles finished content streams into a complete PDF file:
// catalog, page tree, fonts, streams, info dictionary, xref and trailer.
type document struct {
	cfg      Config
	contents []string
}

func newDocument(cfg Config) *document {
	return &document{cfg: cfg}
}

func (d *document) addPage(content string) {
	d.contents = append(d.contents, content)
}

// Fixed object layout:
//
//	1 catalog, 2 page tree, 3 Helvetica, 4 Helvetica-Bold,
//	5+2i stream for page i, 6+2i page i, last object the info dict.
func (d *document) build() []byte {
	n := len(d.contents)
	objects := make([]string, 0, 5+2*n)

	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")

	var kids strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			kids.WriteString(" ")
		}
		fmt.Fprintf(&kids, "%d 0 R", 6+2*i)
	}
	objects = append(objects, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), n))

	objects = append(objects, fontObject("Helvetica"), fontObject("Helvetica-Bold"))

	for i, content := range d.contents {
		objects = append(objects, d.streamObject(content))
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Contents %d 0 R /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> >>",
			d.cfg.PageWidth, d.cfg.PageHeight, 5+2*i))
	}

	objects = append(objects, d.infoObject())
	infoNum := len(objects)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%%PDF-%s\n", pdfVersion)
	buf.WriteString("%\xE2\xE3\xCF\xD3\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefPos := buf.Len()
	buf.WriteString("xref\n")
	fmt.Fprintf(&buf, "0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	buf.WriteString("trailer\n")
	fmt.Fprintf(&buf, "<< /Size %d /Root 1 0 R /Info %d 0 R >>\n", len(objects)+1, infoNum)
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", xrefPos)

	return buf.Bytes()
}

func fontObject(base string) string {
	return fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /WinAnsiEncoding >>", base)
}

func (d *document) streamObject(content string) string {
	data := []byte(content)
	filter := ""
	if d.cfg.Compress {
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		w.Write(data)
		w.Close()
		data = buf.Bytes()
		filter = "/Filter /FlateDecode "
	}
	return fmt.Sprintf("<< /Length %d %s>>\nstream\n%s\nendstream", len(data), filter, data)
}

func (d *document) infoObject() string {
	var sb strings.Builder
	sb.WriteString("<<\n")
	if d.cfg.Title != "" {
		fmt.Fprintf(&sb, "/Title (%s)\n", escapeString(d.cfg.Title))
	}
	if d.cfg.Producer != "" {
		fmt.Fprintf(&sb, "/Producer (%s)\n", escapeString(d.cfg.Producer))
	}
	if d.cfg.Creator != "" {
		fmt.Fprintf(&sb, "/Creator (%s)\n", escapeString(d.cfg.Creator))
	}
	fmt.Fprintf(&sb, "/CreationDate (%s)\n", time.Now().UTC().Format("D:20060102150405Z"))
	sb.WriteString(">>")
	return sb.String()
}
