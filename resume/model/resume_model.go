package model

import (
	"errors"
	"strings"
)

// Resume represents the canonical resume payload. Name is the only required
// field; every other section may be empty and is simply omitted from output.
type Resume struct {
	Name                string          `json:"name"`
	ContactInfo         []string        `json:"contact_info,omitempty"`
	ProfessionalSummary string          `json:"professional_summary,omitempty"`
	WorkExperience      []Experience    `json:"work_experience,omitempty"`
	TechnicalSkills     SkillsMap       `json:"technical_skills,omitempty"`
	Education           []Education     `json:"education,omitempty"`
	Internships         []Experience    `json:"internships,omitempty"`
	Projects            []Project       `json:"projects,omitempty"`
	Certifications      []Certification `json:"certifications,omitempty"`
	OutputFilename      string          `json:"output_filename,omitempty"`
}

// Validate enforces required fields for Resume.
func (r Resume) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

// Experience represents a work history or internship entry.
type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
}

// Education represents an education entry.
type Education struct {
	Degree          string   `json:"degree"`
	Institution     string   `json:"institution"`
	Location        string   `json:"location"`
	GraduationDate  string   `json:"graduation_date"`
	GPA             string   `json:"gpa,omitempty"`
	RelevantCourses []string `json:"relevant_courses,omitempty"`
}

// Project represents a notable project.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
}

// Certification represents a certification entry.
type Certification struct {
	Name           string `json:"name"`
	Issuer         string `json:"issuer"`
	Date           string `json:"date"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	URL            string `json:"url,omitempty"`
}

// BulletCount returns the total number of responsibility and achievement
// lines across work experience and internships.
func (r Resume) BulletCount() int {
	count := 0
	for _, job := range r.WorkExperience {
		count += len(job.Responsibilities) + len(job.Achievements)
	}
	for _, intern := range r.Internships {
		count += len(intern.Responsibilities) + len(intern.Achievements)
	}
	return count
}
