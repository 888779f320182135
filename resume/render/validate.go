package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
const relNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

// validateDocumentXMLStrict confirms the generated document.xml is
// well-formed and only uses namespaces declared on the root element.
func validateDocumentXMLStrict(xmlText string) error {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("document.xml parse failed: %w\n%s", err, firstLines(xmlText, 5))
		}
		if start, ok := token.(xml.StartElement); ok {
			if start.Name.Space != "" && start.Name.Space != wmlNamespace && start.Name.Space != relNamespace {
				return fmt.Errorf("document.xml uses undeclared namespace %s on element %s", start.Name.Space, start.Name.Local)
			}
		}
	}
	return nil
}

// validateDocumentXMLStructure rejects WordprocessingML shapes Word refuses
// to open: nested <w:p> and run properties appearing after run text.
func validateDocumentXMLStructure(xmlText string) error {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	var stack []xml.Name
	type runState struct {
		seenText bool
	}
	var runs []runState

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("document.xml parse failed: %w\n%s", err, firstLines(xmlText, 5))
		}
		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name)
			if isWmlElement(t.Name, "p") {
				for i := len(stack) - 2; i >= 0; i-- {
					if isWmlElement(stack[i], "p") {
						return fmt.Errorf("document.xml has nested <w:p>\n%s", firstLines(xmlText, 5))
					}
				}
			}
			if isWmlElement(t.Name, "r") {
				runs = append(runs, runState{})
			}
			if isWmlElement(t.Name, "t") && len(runs) > 0 {
				runs[len(runs)-1].seenText = true
			}
			if isWmlElement(t.Name, "rPr") && len(runs) > 0 && runs[len(runs)-1].seenText {
				return fmt.Errorf("document.xml has <w:rPr> after <w:t> in a run\n%s", firstLines(xmlText, 5))
			}
		case xml.EndElement:
			if isWmlElement(t.Name, "r") && len(runs) > 0 {
				runs = runs[:len(runs)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return nil
}

func isWmlElement(name xml.Name, local string) bool {
	return name.Local == local && name.Space == wmlNamespace
}

func firstLines(text string, count int) string {
	if count <= 0 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) > count {
		lines = lines[:count]
	}
	return strings.Join(lines, "\n")
}
