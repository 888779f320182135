package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"resumegen/resume/layout"
)

const fontName = "Calibri"

// Line spacing in twentieths of a point for single-spaced text.
const singleSpacedLine = 240

// stylesXML renders word/styles.xml with the tier's font sizes. Word sizes
// are half-points, so a 12pt body becomes w:sz 24.
func stylesXML(tier layout.Tier) string {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<w:styles xmlns:w="` + wmlNamespace + `">`)

	fmt.Fprintf(&buf,
		`<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s"/><w:sz w:val="%d"/></w:rPr></w:rPrDefault></w:docDefaults>`,
		fontName, fontName, halfPoints(tier.BodySize),
	)

	writeStyle(&buf, styleName, styleSpec{
		size:    halfPoints(tier.NameSize),
		bold:    true,
		afterPt: 2,
	})
	writeStyle(&buf, styleHeading, styleSpec{
		size:     halfPoints(tier.HeadingSize),
		bold:     true,
		beforePt: 6,
		afterPt:  2,
	})
	writeStyle(&buf, styleBody, styleSpec{
		size: halfPoints(tier.BodySize),
	})

	buf.WriteString(`</w:styles>`)
	return buf.String()
}

type styleSpec struct {
	size     int
	bold     bool
	beforePt int
	afterPt  int
}

func writeStyle(buf *bytes.Buffer, id string, spec styleSpec) {
	fmt.Fprintf(buf, `<w:style w:type="paragraph" w:styleId="%s"><w:name w:val="%s"/>`, id, id)

	fmt.Fprintf(buf,
		`<w:pPr><w:spacing w:before="%d" w:after="%d" w:line="%d" w:lineRule="auto"/></w:pPr>`,
		spec.beforePt*20, spec.afterPt*20, singleSpacedLine,
	)

	buf.WriteString("<w:rPr>")
	if spec.bold {
		buf.WriteString("<w:b/>")
	}
	fmt.Fprintf(buf, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/><w:sz w:val="%d"/>`, fontName, fontName, spec.size)
	buf.WriteString("</w:rPr></w:style>")
}

func halfPoints(pt float64) int {
	return int(pt*2 + 0.5)
}

const contentTypesXML = xml.Header +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`
