package report

import (
	"fmt"

	"github.com/chacepro/sbom-to-pdf/layout"
	"github.com/chacepro/sbom-to-pdf/model"
)

const inch = 72.0

// Paragraph styles for the three heading levels.
var (
	titleStyle = layout.TextStyle{
		FontSize:   24,
		Bold:       true,
		Color:      layout.Hex("#1a1a1a"),
		Align:      layout.AlignCenter,
		SpaceAfter: 30,
	}
	headingStyle = layout.TextStyle{
		FontSize:    16,
		Bold:        true,
		Color:       layout.Hex("#2c3e50"),
		SpaceBefore: 20,
		SpaceAfter:  12,
	}
	subheadingStyle = layout.TextStyle{
		FontSize:    14,
		Bold:        true,
		Color:       layout.Hex("#34495e"),
		SpaceBefore: 12,
		SpaceAfter:  8,
	}
)

// Key/value tables carry a per-section tint so section types are visually
// distinct; the relationship table gets a dark header with row banding.
var (
	infoTableStyle = layout.TableStyle{
		FontSize:        10,
		Padding:         6,
		GridColor:       layout.Hex("#bdc3c7"),
		LabelColumn:     true,
		LabelBackground: layout.Hex("#ecf0f1"),
		LabelColor:      layout.Hex("#2c3e50"),
		ValueColor:      layout.Hex("#333333"),
	}
	packageTableStyle = layout.TableStyle{
		FontSize:        9,
		Padding:         5,
		GridColor:       layout.Hex("#c8e6c9"),
		LabelColumn:     true,
		LabelBackground: layout.Hex("#e8f5e9"),
		LabelColor:      layout.Hex("#2c3e50"),
		ValueColor:      layout.Hex("#333333"),
	}
	fileTableStyle = layout.TableStyle{
		FontSize:        9,
		Padding:         5,
		GridColor:       layout.Hex("#90caf9"),
		LabelColumn:     true,
		LabelBackground: layout.Hex("#e3f2fd"),
		LabelColor:      layout.Hex("#2c3e50"),
		ValueColor:      layout.Hex("#333333"),
	}
	relationshipTableStyle = layout.TableStyle{
		FontSize:         9,
		Padding:          6,
		GridColor:        layout.Hex("#95a5a6"),
		ValueColor:       layout.Hex("#333333"),
		HeaderRows:       1,
		HeaderBackground: layout.Hex("#34495e"),
		HeaderColor:      layout.Hex("#f5f5f5"),
		RowBanding:       true,
		BandColor:        layout.Hex("#f8f9fa"),
	}
)

var (
	kvColWidths  = []float64{2 * inch, 4.5 * inch}
	relColWidths = []float64{2 * inch, 2 * inch, 2.5 * inch}
)

type fieldSpec struct {
	key   string
	label string
}

var documentFields = []fieldSpec{
	{"SPDXID", "Document ID:"},
	{"spdxVersion", "SPDX Version:"},
	{"dataLicense", "Data License:"},
	{"documentNamespace", "Document Namespace:"},
	{"comment", "Comment:"},
}

var creationFields = []fieldSpec{
	{"created", "Created:"},
	{"creators", "Creators:"},
	{"licenseListVersion", "License List Version:"},
	{"comment", "Comment:"},
}

var packageFields = []fieldSpec{
	{"SPDXID", "Package ID:"},
	{"versionInfo", "Version:"},
	{"description", "Description:"},
	{"summary", "Summary:"},
	{"homepage", "Homepage:"},
	{"downloadLocation", "Download Location:"},
	{"copyrightText", "Copyright:"},
	{"licenseConcluded", "License Concluded:"},
	{"licenseDeclared", "License Declared:"},
	{"supplier", "Supplier:"},
	{"originator", "Originator:"},
}

var fileFields = []fieldSpec{
	{"SPDXID", "File ID:"},
	{"fileTypes", "File Types:"},
	{"copyrightText", "Copyright:"},
	{"licenseConcluded", "License Concluded:"},
	{"licenseInfoInFiles", "License Info in Files:"},
	{"fileContributors", "Contributors:"},
	{"comment", "Comment:"},
}

var relationshipColumns = []string{"spdxElementId", "relationshipType", "relatedSpdxElement"}

// Compose builds the ordered block sequence for the full report:
// title, document information, creation information, packages, files,
// relationships. Sections whose data is absent are suppressed entirely.
// A malformed entry anywhere aborts the whole document.
func Compose(doc model.Document) ([]layout.Block, error) {
	blocks := []layout.Block{
		layout.Paragraph{Text: doc.StringOr("name", "SBOM Document"), Style: titleStyle},
		layout.Spacer{Height: 0.2 * inch},
	}

	if doc.Has("spdxVersion") || doc.Has("SPDXID") {
		if rows := fieldRows(doc, documentFields); len(rows) > 0 {
			blocks = append(blocks,
				layout.Paragraph{Text: "Document Information", Style: headingStyle},
				layout.Table{Rows: rows, ColWidths: kvColWidths, Style: infoTableStyle},
				layout.Spacer{Height: 0.2 * inch},
			)
		}
	}

	creation, present, err := doc.Object("creationInfo")
	if err != nil {
		return nil, err
	}
	if present {
		if rows := fieldRows(creation, creationFields); len(rows) > 0 {
			blocks = append(blocks,
				layout.Paragraph{Text: "Creation Information", Style: headingStyle},
				layout.Table{Rows: rows, ColWidths: kvColWidths, Style: infoTableStyle},
				layout.Spacer{Height: 0.2 * inch},
			)
		}
	}

	packages, err := doc.Objects("packages")
	if err != nil {
		return nil, err
	}
	if len(packages) > 0 {
		blocks = append(blocks, layout.Paragraph{Text: "Packages", Style: headingStyle})
		for i, pkg := range packages {
			blocks = append(blocks, layout.Paragraph{
				Text:  fmt.Sprintf("Package %d: %s", i+1, pkg.StringOr("name", "Unknown")),
				Style: subheadingStyle,
			})
			if rows := fieldRows(pkg, packageFields); len(rows) > 0 {
				blocks = append(blocks,
					layout.Table{Rows: rows, ColWidths: kvColWidths, Style: packageTableStyle},
					layout.Spacer{Height: 0.15 * inch},
				)
			}
		}
	}

	files, err := doc.Objects("files")
	if err != nil {
		return nil, err
	}
	if len(files) > 0 {
		blocks = append(blocks,
			layout.PageBreak{},
			layout.Paragraph{Text: "Files", Style: headingStyle},
		)
		for i, file := range files {
			blocks = append(blocks, layout.Paragraph{
				Text:  fmt.Sprintf("File %d: %s", i+1, file.StringOr("fileName", "Unknown")),
				Style: subheadingStyle,
			})
			if rows := fieldRows(file, fileFields); len(rows) > 0 {
				blocks = append(blocks,
					layout.Table{Rows: rows, ColWidths: kvColWidths, Style: fileTableStyle},
					layout.Spacer{Height: 0.15 * inch},
				)
			}
		}
	}

	relationships, err := doc.Objects("relationships")
	if err != nil {
		return nil, err
	}
	if len(relationships) > 0 {
		rows := [][]string{{"From", "Relationship Type", "To"}}
		for _, rel := range relationships {
			row := make([]string, len(relationshipColumns))
			for i, key := range relationshipColumns {
				if !rel.Has(key) {
					// Literal default, not the formatter's absent path.
					row[i] = "N/A"
					continue
				}
				row[i] = FormatValue(rel.Value(key))
			}
			rows = append(rows, row)
		}
		blocks = append(blocks,
			layout.PageBreak{},
			layout.Paragraph{Text: "Relationships", Style: headingStyle},
			layout.Table{Rows: rows, ColWidths: relColWidths, Style: relationshipTableStyle},
			layout.Spacer{Height: 0.2 * inch},
		)
	}

	return blocks, nil
}

// fieldRows collects the present-only label/value rows for one object,
// in the fixed field order. Absent fields contribute no row.
func fieldRows(obj model.Document, fields []fieldSpec) [][]string {
	var rows [][]string
	for _, f := range fields {
		if obj.Has(f.key) {
			rows = append(rows, []string{f.label, FormatValue(obj.Value(f.key))})
		}
	}
	return rows
}
