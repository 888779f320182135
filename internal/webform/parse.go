package webform

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"resumegen/resume/model"
)

// The browser form encodes repeated sections with indexed field names
// (work_0_title, work_0_resp_1, ...) plus a count field per section. Counts
// are capped so a hostile form cannot make the parser loop forever.
const maxIndexedEntries = 100

// ParseResume converts a submitted form into a Resume. Blank entries are
// dropped; validation happens later in the generation service.
func ParseResume(form url.Values) model.Resume {
	resume := model.Resume{
		Name:                strings.TrimSpace(form.Get("name")),
		ProfessionalSummary: strings.TrimSpace(form.Get("professional_summary")),
		OutputFilename:      strings.TrimSpace(form.Get("output_filename")),
	}

	for _, key := range []string{"email", "phone", "linkedin", "location"} {
		if v := strings.TrimSpace(form.Get(key)); v != "" {
			resume.ContactInfo = append(resume.ContactInfo, v)
		}
	}

	resume.WorkExperience = parseExperiences(form, "work")
	resume.Internships = parseExperiences(form, "intern")
	resume.Projects = parseProjects(form)
	resume.TechnicalSkills = parseSkills(form)
	resume.Certifications = parseCertifications(form)
	resume.Education = parseEducation(form)

	return resume
}

func parseExperiences(form url.Values, kind string) []model.Experience {
	count := formCount(form, kind+"_count")
	var out []model.Experience
	for i := 0; i < count; i++ {
		prefix := fmt.Sprintf("%s_%d_", kind, i)
		out = append(out, model.Experience{
			Title:            strings.TrimSpace(form.Get(prefix + "title")),
			Company:          strings.TrimSpace(form.Get(prefix + "company")),
			Location:         strings.TrimSpace(form.Get(prefix + "location")),
			StartDate:        strings.TrimSpace(form.Get(prefix + "start_date")),
			EndDate:          strings.TrimSpace(form.Get(prefix + "end_date")),
			Responsibilities: indexedLines(form, prefix+"resp"),
			Achievements:     indexedLines(form, prefix+"ach"),
		})
	}
	return out
}

func parseProjects(form url.Values) []model.Project {
	count := formCount(form, "project_count")
	var out []model.Project
	for i := 0; i < count; i++ {
		prefix := fmt.Sprintf("project_%d_", i)
		out = append(out, model.Project{
			Name:         strings.TrimSpace(form.Get(prefix + "name")),
			Description:  strings.TrimSpace(form.Get(prefix + "description")),
			Technologies: splitCSV(form.Get(prefix + "technologies")),
			URL:          strings.TrimSpace(form.Get(prefix + "url")),
			StartDate:    strings.TrimSpace(form.Get(prefix + "start_date")),
			EndDate:      strings.TrimSpace(form.Get(prefix + "end_date")),
		})
	}
	return out
}

func parseSkills(form url.Values) model.SkillsMap {
	categories := form["skill_category[]"]
	values := form["skill_values[]"]

	skills := model.NewSkillsMap()
	for i, raw := range categories {
		if i >= len(values) {
			break
		}
		category := strings.TrimSpace(raw)
		if category == "" {
			continue
		}
		entries := splitCSV(values[i])
		if len(entries) > 0 {
			skills.Set(category, entries)
		}
	}
	return skills
}

func parseCertifications(form url.Values) []model.Certification {
	count := formCount(form, "cert_count")
	var out []model.Certification
	for i := 0; i < count; i++ {
		prefix := fmt.Sprintf("cert_%d_", i)
		out = append(out, model.Certification{
			Name:           strings.TrimSpace(form.Get(prefix + "name")),
			Issuer:         strings.TrimSpace(form.Get(prefix + "issuer")),
			Date:           strings.TrimSpace(form.Get(prefix + "date")),
			ExpirationDate: strings.TrimSpace(form.Get(prefix + "expiration")),
			URL:            strings.TrimSpace(form.Get(prefix + "url")),
		})
	}
	return out
}

func parseEducation(form url.Values) []model.Education {
	count := formCount(form, "edu_count")
	var out []model.Education
	for i := 0; i < count; i++ {
		prefix := fmt.Sprintf("edu_%d_", i)
		out = append(out, model.Education{
			Degree:          strings.TrimSpace(form.Get(prefix + "degree")),
			Institution:     strings.TrimSpace(form.Get(prefix + "institution")),
			Location:        strings.TrimSpace(form.Get(prefix + "location")),
			GraduationDate:  strings.TrimSpace(form.Get(prefix + "graduation")),
			GPA:             strings.TrimSpace(form.Get(prefix + "gpa")),
			RelevantCourses: splitCSV(form.Get(prefix + "courses")),
		})
	}
	return out
}

func indexedLines(form url.Values, base string) []string {
	count := formCount(form, base+"_count")
	var out []string
	for j := 0; j < count; j++ {
		if v := strings.TrimSpace(form.Get(fmt.Sprintf("%s_%d", base, j))); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func formCount(form url.Values, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(form.Get(key)))
	if err != nil || n < 0 {
		return 0
	}
	if n > maxIndexedEntries {
		n = maxIndexedEntries
	}
	return n
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
