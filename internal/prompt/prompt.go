package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"resumegen/resume/model"
)

// ErrInterrupted is returned when the user aborts the interactive session.
var ErrInterrupted = errors.New("interactive session interrupted")

// Asker abstracts the terminal prompts so the builder flow can be tested
// without a real terminal.
type Asker interface {
	Input(message, defaultValue string) (string, error)
	Multiline(message string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

type surveyAsker struct{}

func (surveyAsker) Input(message, defaultValue string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateErr(err)
	}
	return out, nil
}

func (surveyAsker) Multiline(message string) (string, error) {
	var out string
	if err := survey.AskOne(&survey.Multiline{Message: message}, &out); err != nil {
		return "", translateErr(err)
	}
	return out, nil
}

func (surveyAsker) Confirm(message string, defaultValue bool) (bool, error) {
	var out bool
	prompt := &survey.Confirm{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateErr(err)
	}
	return out, nil
}

func translateErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}

// Builder walks the user through assembling a resume on the terminal.
type Builder struct {
	Ask Asker
}

// NewBuilder returns a Builder backed by survey prompts.
func NewBuilder() *Builder {
	return &Builder{Ask: surveyAsker{}}
}

// Run collects a full resume interactively.
func (b *Builder) Run() (model.Resume, error) {
	var resume model.Resume
	var err error

	if resume.Name, err = b.required("Full name:"); err != nil {
		return resume, err
	}
	if resume.ContactInfo, err = b.contactInfo(); err != nil {
		return resume, err
	}
	if resume.ProfessionalSummary, err = b.optional("Professional summary (leave blank to skip):"); err != nil {
		return resume, err
	}

	if resume.WorkExperience, err = b.experiences("work experience"); err != nil {
		return resume, err
	}
	if resume.TechnicalSkills, err = b.skills(); err != nil {
		return resume, err
	}
	if resume.Education, err = b.education(); err != nil {
		return resume, err
	}

	wantInternships, err := b.Ask.Confirm("Add internships?", false)
	if err != nil {
		return resume, err
	}
	if wantInternships {
		if resume.Internships, err = b.experiences("internship"); err != nil {
			return resume, err
		}
	}

	wantProjects, err := b.Ask.Confirm("Add projects?", false)
	if err != nil {
		return resume, err
	}
	if wantProjects {
		if resume.Projects, err = b.projects(); err != nil {
			return resume, err
		}
	}

	wantCerts, err := b.Ask.Confirm("Add certifications?", false)
	if err != nil {
		return resume, err
	}
	if wantCerts {
		if resume.Certifications, err = b.certifications(); err != nil {
			return resume, err
		}
	}

	if resume.OutputFilename, err = b.optional("Output file name (leave blank for default):"); err != nil {
		return resume, err
	}

	return resume, nil
}

func (b *Builder) contactInfo() ([]string, error) {
	var contact []string
	for _, label := range []string{"Email:", "Phone:", "LinkedIn:", "Location:"} {
		value, err := b.optional(label)
		if err != nil {
			return nil, err
		}
		if value != "" {
			contact = append(contact, value)
		}
	}
	return contact, nil
}

func (b *Builder) experiences(kind string) ([]model.Experience, error) {
	var out []model.Experience
	for {
		more, err := b.Ask.Confirm(fmt.Sprintf("Add %s entry %d?", kind, len(out)+1), len(out) == 0)
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}

		var exp model.Experience
		if exp.Title, err = b.required("Job title:"); err != nil {
			return nil, err
		}
		if exp.Company, err = b.optional("Company:"); err != nil {
			return nil, err
		}
		if exp.Location, err = b.optional("Location:"); err != nil {
			return nil, err
		}
		if exp.StartDate, err = b.optional("Start date:"); err != nil {
			return nil, err
		}
		if exp.EndDate, err = b.optional("End date (or Present):"); err != nil {
			return nil, err
		}
		if exp.Responsibilities, err = b.lines("Responsibility (leave blank to finish):"); err != nil {
			return nil, err
		}
		if exp.Achievements, err = b.lines("Achievement (leave blank to finish):"); err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
}

func (b *Builder) skills() (model.SkillsMap, error) {
	skills := model.NewSkillsMap()
	for {
		category, err := b.optional("Skill category (leave blank to finish):")
		if err != nil {
			return skills, err
		}
		if category == "" {
			return skills, nil
		}
		raw, err := b.optional(fmt.Sprintf("Skills for %q (comma separated):", category))
		if err != nil {
			return skills, err
		}
		var values []string
		for _, part := range strings.Split(raw, ",") {
			if v := strings.TrimSpace(part); v != "" {
				values = append(values, v)
			}
		}
		if len(values) > 0 {
			skills.Set(category, values)
		}
	}
}

func (b *Builder) education() ([]model.Education, error) {
	var out []model.Education
	for {
		more, err := b.Ask.Confirm(fmt.Sprintf("Add education entry %d?", len(out)+1), len(out) == 0)
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}

		var edu model.Education
		if edu.Degree, err = b.required("Degree:"); err != nil {
			return nil, err
		}
		if edu.Institution, err = b.optional("Institution:"); err != nil {
			return nil, err
		}
		if edu.Location, err = b.optional("Location:"); err != nil {
			return nil, err
		}
		if edu.GraduationDate, err = b.optional("Graduation date:"); err != nil {
			return nil, err
		}
		if edu.GPA, err = b.optional("GPA (leave blank to skip):"); err != nil {
			return nil, err
		}
		if edu.RelevantCourses, err = b.lines("Relevant course (leave blank to finish):"); err != nil {
			return nil, err
		}
		out = append(out, edu)
	}
}

func (b *Builder) projects() ([]model.Project, error) {
	var out []model.Project
	for {
		more, err := b.Ask.Confirm(fmt.Sprintf("Add project %d?", len(out)+1), len(out) == 0)
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}

		var proj model.Project
		if proj.Name, err = b.required("Project name:"); err != nil {
			return nil, err
		}
		if proj.Description, err = b.Ask.Multiline("Description:"); err != nil {
			return nil, err
		}
		raw, err := b.optional("Technologies (comma separated):")
		if err != nil {
			return nil, err
		}
		for _, part := range strings.Split(raw, ",") {
			if v := strings.TrimSpace(part); v != "" {
				proj.Technologies = append(proj.Technologies, v)
			}
		}
		if proj.URL, err = b.optional("URL (leave blank to skip):"); err != nil {
			return nil, err
		}
		if proj.StartDate, err = b.optional("Start date (leave blank to skip):"); err != nil {
			return nil, err
		}
		if proj.EndDate, err = b.optional("End date (leave blank to skip):"); err != nil {
			return nil, err
		}
		out = append(out, proj)
	}
}

func (b *Builder) certifications() ([]model.Certification, error) {
	var out []model.Certification
	for {
		more, err := b.Ask.Confirm(fmt.Sprintf("Add certification %d?", len(out)+1), len(out) == 0)
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}

		var cert model.Certification
		if cert.Name, err = b.required("Certification name:"); err != nil {
			return nil, err
		}
		if cert.Issuer, err = b.optional("Issuer:"); err != nil {
			return nil, err
		}
		if cert.Date, err = b.optional("Date earned:"); err != nil {
			return nil, err
		}
		if cert.ExpirationDate, err = b.optional("Expiration date (leave blank to skip):"); err != nil {
			return nil, err
		}
		if cert.URL, err = b.optional("URL (leave blank to skip):"); err != nil {
			return nil, err
		}
		out = append(out, cert)
	}
}

func (b *Builder) required(message string) (string, error) {
	for {
		value, err := b.Ask.Input(message, "")
		if err != nil {
			return "", err
		}
		if v := strings.TrimSpace(value); v != "" {
			return v, nil
		}
	}
}

func (b *Builder) optional(message string) (string, error) {
	value, err := b.Ask.Input(message, "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (b *Builder) lines(message string) ([]string, error) {
	var out []string
	for {
		value, err := b.Ask.Input(message, "")
		if err != nil {
			return nil, err
		}
		v := strings.TrimSpace(value)
		if v == "" {
			return out, nil
		}
		out = append(out, v)
	}
}
