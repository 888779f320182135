package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"resumegen/resume/layout"
)

const (
	styleName    = "ResumeName"
	styleHeading = "ResumeHeading"
	styleBody    = "ResumeBody"

	bulletIndentTwips = 288 // 0.2 inch
	twipsPerInch      = 1440
)

// document accumulates WordprocessingML paragraphs plus the hyperlink
// relationships they reference.
type document struct {
	tier layout.Tier
	body bytes.Buffer
	rels []relationship
}

type relationship struct {
	ID     string
	Target string
}

type paraOpts struct {
	style        string
	center       bool
	indent       bool
	spaceAfterPt int
}

type run struct {
	text      string
	bold      bool
	hyperlink string // external URL; empty for plain runs
}

func newDocument(tier layout.Tier) *document {
	return &document{tier: tier}
}

func (d *document) heading(text string) {
	d.paragraph(paraOpts{style: styleHeading}, run{text: text, bold: true})
}

func (d *document) bullet(text string) {
	d.paragraph(paraOpts{style: styleBody, indent: true}, run{text: text})
}

// spacer emits an empty body paragraph between entries.
func (d *document) spacer() {
	d.paragraph(paraOpts{style: styleBody, spaceAfterPt: 2})
}

func (d *document) paragraph(opts paraOpts, runs ...run) {
	d.body.WriteString("<w:p><w:pPr>")
	fmt.Fprintf(&d.body, `<w:pStyle w:val="%s"/>`, opts.style)
	if opts.center {
		d.body.WriteString(`<w:jc w:val="center"/>`)
	}
	if opts.indent {
		fmt.Fprintf(&d.body, `<w:ind w:left="%d"/>`, bulletIndentTwips)
	}
	if opts.spaceAfterPt > 0 {
		fmt.Fprintf(&d.body, `<w:spacing w:after="%d"/>`, opts.spaceAfterPt*20)
	}
	d.body.WriteString("</w:pPr>")

	for _, r := range runs {
		if r.hyperlink != "" {
			d.writeHyperlink(r)
			continue
		}
		d.writeRun(r)
	}

	d.body.WriteString("</w:p>")
}

func (d *document) writeRun(r run) {
	d.body.WriteString("<w:r>")
	if r.bold {
		d.body.WriteString("<w:rPr><w:b/></w:rPr>")
	}
	fmt.Fprintf(&d.body, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(r.text))
	d.body.WriteString("</w:r>")
}

func (d *document) writeHyperlink(r run) {
	relID := d.addRelationship(r.hyperlink)
	fmt.Fprintf(&d.body, `<w:hyperlink r:id="%s">`, relID)
	d.body.WriteString(`<w:r><w:rPr><w:color w:val="0000FF"/><w:u w:val="single"/></w:rPr>`)
	fmt.Fprintf(&d.body, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(r.text))
	d.body.WriteString("</w:r></w:hyperlink>")
}

func (d *document) addRelationship(target string) string {
	// rId1 is reserved for styles.xml.
	id := fmt.Sprintf("rId%d", len(d.rels)+2)
	d.rels = append(d.rels, relationship{ID: id, Target: target})
	return id
}

func (d *document) documentXML() string {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<w:document xmlns:w="` + wmlNamespace + `" xmlns:r="` + relNamespace + `">`)
	buf.WriteString("<w:body>")
	buf.Write(d.body.Bytes())
	buf.WriteString(d.sectionProperties())
	buf.WriteString("</w:body></w:document>")
	return buf.String()
}

func (d *document) sectionProperties() string {
	margin := int(d.tier.Margin * twipsPerInch)
	return fmt.Sprintf(
		`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>`+
			`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`+
			`</w:sectPr>`,
		margin, margin, margin, margin,
	)
}

func (d *document) relationshipsXML() string {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	buf.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	for _, rel := range d.rels {
		fmt.Fprintf(&buf,
			`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="%s" TargetMode="External"/>`,
			rel.ID, escapeXMLAttr(rel.Target),
		)
	}
	buf.WriteString(`</Relationships>`)
	return buf.String()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
	}
	return buf.String()
}

func escapeXMLAttr(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;").Replace(s)
}
