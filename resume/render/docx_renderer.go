package render

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"

	"resumegen/resume/layout"
	"resumegen/resume/model"
)

const mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// MimeType is the content type of rendered documents.
func MimeType() string { return mimeDOCX }

// RenderResume renders a resume into a DOCX byte slice using the given
// formatting tier. The OOXML package is assembled in memory; no template
// file is involved.
func RenderResume(resume model.Resume, tier layout.Tier) ([]byte, error) {
	if strings.TrimSpace(resume.Name) == "" {
		return nil, errors.New("name is required")
	}

	doc := newDocument(tier)
	buildBody(doc, resume)

	documentXML := doc.documentXML()
	if err := validateDocumentXMLStrict(documentXML); err != nil {
		return nil, err
	}
	if err := validateDocumentXMLStructure(documentXML); err != nil {
		return nil, err
	}

	return packDocx(documentXML, stylesXML(tier), doc.relationshipsXML())
}

func buildBody(doc *document, resume model.Resume) {
	addHeader(doc, resume)
	addProfessionalSummary(doc, resume)
	addExperienceSection(doc, "WORK EXPERIENCE", resume.WorkExperience)
	addExperienceSection(doc, "INTERNSHIPS", resume.Internships)
	addProjects(doc, resume.Projects)
	addCertifications(doc, resume.Certifications)
	addTechnicalSkills(doc, resume.TechnicalSkills)
	addEducation(doc, resume.Education)
}

func addHeader(doc *document, resume model.Resume) {
	doc.paragraph(paraOpts{style: styleName, center: true}, run{text: resume.Name, bold: true})

	if len(resume.ContactInfo) == 0 {
		return
	}

	// LinkedIn entries become clickable; everything else joins with pipes.
	var linkedin string
	var others []string
	for _, item := range resume.ContactInfo {
		if strings.TrimSpace(item) == "" {
			continue
		}
		if linkedin == "" && strings.Contains(strings.ToLower(item), "linkedin.com") {
			linkedin = item
			continue
		}
		others = append(others, item)
	}

	var runs []run
	if len(others) > 0 {
		text := strings.Join(others, " | ")
		if linkedin != "" {
			text += " | "
		}
		runs = append(runs, run{text: text})
	}
	if linkedin != "" {
		runs = append(runs, run{text: linkedin, hyperlink: ensureURL(linkedin)})
	}
	if len(runs) > 0 {
		doc.paragraph(paraOpts{style: styleBody, center: true, spaceAfterPt: 4}, runs...)
	}
}

func addProfessionalSummary(doc *document, resume model.Resume) {
	if strings.TrimSpace(resume.ProfessionalSummary) == "" {
		return
	}
	doc.heading("PROFESSIONAL SUMMARY")
	doc.paragraph(paraOpts{style: styleBody, spaceAfterPt: 4}, run{text: resume.ProfessionalSummary})
}

func addExperienceSection(doc *document, heading string, entries []model.Experience) {
	if len(entries) == 0 {
		return
	}
	doc.heading(heading)

	for i, entry := range entries {
		doc.paragraph(paraOpts{style: styleBody, spaceAfterPt: 2},
			run{text: entry.Title + " | " + entry.Company, bold: true},
			run{text: " — " + entry.Location + " | " + entry.StartDate + " - " + entry.EndDate},
		)
		for _, resp := range entry.Responsibilities {
			doc.bullet("• " + resp)
		}
		for _, ach := range entry.Achievements {
			doc.bullet("✓ " + ach)
		}
		if i < len(entries)-1 {
			doc.spacer()
		}
	}
}

func addProjects(doc *document, projects []model.Project) {
	if len(projects) == 0 {
		return
	}
	doc.heading("PROJECTS")

	for i, project := range projects {
		runs := []run{{text: project.Name, bold: true}}
		if project.StartDate != "" && project.EndDate != "" {
			runs = append(runs, run{text: " | " + project.StartDate + " - " + project.EndDate})
		}
		if project.URL != "" {
			runs = append(runs,
				run{text: " | "},
				run{text: "Project Link", hyperlink: ensureURL(project.URL)},
			)
		}
		doc.paragraph(paraOpts{style: styleBody}, runs...)

		if project.Description != "" {
			doc.paragraph(paraOpts{style: styleBody, indent: true}, run{text: project.Description})
		}
		if len(project.Technologies) > 0 {
			doc.paragraph(paraOpts{style: styleBody, indent: true},
				run{text: "Technologies: ", bold: true},
				run{text: strings.Join(project.Technologies, ", ")},
			)
		}
		if i < len(projects)-1 {
			doc.spacer()
		}
	}
}

func addCertifications(doc *document, certs []model.Certification) {
	if len(certs) == 0 {
		return
	}
	doc.heading("CERTIFICATIONS")

	for _, cert := range certs {
		runs := []run{{text: cert.Name + " | " + cert.Issuer, bold: true}}
		dateInfo := " | Issued: " + cert.Date
		if cert.ExpirationDate != "" {
			dateInfo += " | Expires: " + cert.ExpirationDate
		}
		runs = append(runs, run{text: dateInfo})
		if cert.URL != "" {
			runs = append(runs,
				run{text: " | "},
				run{text: "Verify", hyperlink: ensureURL(cert.URL)},
			)
		}
		doc.paragraph(paraOpts{style: styleBody, spaceAfterPt: 2}, runs...)
	}
}

func addTechnicalSkills(doc *document, skills model.SkillsMap) {
	if skills.Len() == 0 {
		return
	}
	doc.heading("TECHNICAL SKILLS")

	// One paragraph per category keeps the section compact.
	categories := skills.Keys()
	for i, category := range categories {
		values, _ := skills.Get(category)
		opts := paraOpts{style: styleBody}
		if i == len(categories)-1 {
			opts.spaceAfterPt = 4
		}
		doc.paragraph(opts,
			run{text: category + ": ", bold: true},
			run{text: strings.Join(values, ", ")},
		)
	}
}

func addEducation(doc *document, entries []model.Education) {
	if len(entries) == 0 {
		return
	}
	doc.heading("EDUCATION")

	for i, edu := range entries {
		tail := " — " + edu.Location + " | " + edu.GraduationDate
		if edu.GPA != "" {
			tail += " (GPA: " + edu.GPA + ")"
		}
		opts := paraOpts{style: styleBody}
		if i < len(entries)-1 {
			opts.spaceAfterPt = 2
		}
		doc.paragraph(opts,
			run{text: edu.Degree + " | " + edu.Institution, bold: true},
			run{text: tail},
		)
		if len(edu.RelevantCourses) > 0 {
			doc.paragraph(paraOpts{style: styleBody, indent: true},
				run{text: "Relevant Coursework: ", bold: true},
				run{text: strings.Join(edu.RelevantCourses, ", ")},
			)
		}
	}
}

func ensureURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	return "https://" + trimmed
}

func packDocx(documentXML, stylesXML, relsXML string) ([]byte, error) {
	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML},
		{"word/styles.xml", stylesXML},
		{"word/_rels/document.xml.rels", relsXML},
	}

	for _, part := range parts {
		dst, err := writer.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := dst.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}
