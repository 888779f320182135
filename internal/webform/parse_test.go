package webform

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseResumeFullForm(t *testing.T) {
	form := url.Values{}
	form.Set("name", "Jane Roe")
	form.Set("email", "jane@example.com")
	form.Set("phone", "(555) 000-1111")
	form.Set("linkedin", "linkedin.com/in/janeroe")
	form.Set("location", "Portland, OR")
	form.Set("professional_summary", "  Engineer of things.  ")
	form.Set("output_filename", "jane_resume")

	form.Set("work_count", "2")
	form.Set("work_0_title", "Senior Engineer")
	form.Set("work_0_company", "Example Corp")
	form.Set("work_0_location", "Remote")
	form.Set("work_0_start_date", "2020")
	form.Set("work_0_end_date", "Present")
	form.Set("work_0_resp_count", "3")
	form.Set("work_0_resp_0", "Built the platform")
	form.Set("work_0_resp_1", "   ") // blank lines are dropped
	form.Set("work_0_resp_2", "Ran the on-call rotation")
	form.Set("work_0_ach_count", "1")
	form.Set("work_0_ach_0", "Cut costs in half")
	form.Set("work_1_title", "Engineer")
	form.Set("work_1_company", "Start Inc")

	form.Set("intern_count", "1")
	form.Set("intern_0_title", "Intern")
	form.Set("intern_0_company", "Lab")

	form.Add("skill_category[]", "Languages")
	form.Add("skill_values[]", "Go, SQL , ")
	form.Add("skill_category[]", "  ")
	form.Add("skill_values[]", "ignored")

	form.Set("project_count", "1")
	form.Set("project_0_name", "Sideproject")
	form.Set("project_0_description", "A thing")
	form.Set("project_0_technologies", "Go,Postgres")
	form.Set("project_0_url", "example.com/p")

	form.Set("cert_count", "1")
	form.Set("cert_0_name", "Cloud Practitioner")
	form.Set("cert_0_issuer", "AWS")
	form.Set("cert_0_date", "2023")

	form.Set("edu_count", "1")
	form.Set("edu_0_degree", "BS Computer Science")
	form.Set("edu_0_institution", "State University")
	form.Set("edu_0_graduation", "2018")
	form.Set("edu_0_gpa", "3.8")
	form.Set("edu_0_courses", "Algorithms, Databases")

	resume := ParseResume(form)

	if resume.Name != "Jane Roe" {
		t.Fatalf("unexpected name %q", resume.Name)
	}
	wantContact := []string{"jane@example.com", "(555) 000-1111", "linkedin.com/in/janeroe", "Portland, OR"}
	if !reflect.DeepEqual(resume.ContactInfo, wantContact) {
		t.Fatalf("unexpected contact info %v", resume.ContactInfo)
	}
	if resume.ProfessionalSummary != "Engineer of things." {
		t.Fatalf("summary not trimmed: %q", resume.ProfessionalSummary)
	}
	if resume.OutputFilename != "jane_resume" {
		t.Fatalf("unexpected output filename %q", resume.OutputFilename)
	}

	if len(resume.WorkExperience) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(resume.WorkExperience))
	}
	job := resume.WorkExperience[0]
	if !reflect.DeepEqual(job.Responsibilities, []string{"Built the platform", "Ran the on-call rotation"}) {
		t.Fatalf("unexpected responsibilities %v", job.Responsibilities)
	}
	if !reflect.DeepEqual(job.Achievements, []string{"Cut costs in half"}) {
		t.Fatalf("unexpected achievements %v", job.Achievements)
	}

	if len(resume.Internships) != 1 || resume.Internships[0].Title != "Intern" {
		t.Fatalf("unexpected internships %v", resume.Internships)
	}

	if resume.TechnicalSkills.Len() != 1 {
		t.Fatalf("expected 1 skill category, got %d", resume.TechnicalSkills.Len())
	}
	skills, _ := resume.TechnicalSkills.Get("Languages")
	if !reflect.DeepEqual(skills, []string{"Go", "SQL"}) {
		t.Fatalf("unexpected skills %v", skills)
	}

	if len(resume.Projects) != 1 || !reflect.DeepEqual(resume.Projects[0].Technologies, []string{"Go", "Postgres"}) {
		t.Fatalf("unexpected projects %v", resume.Projects)
	}
	if len(resume.Certifications) != 1 || resume.Certifications[0].Issuer != "AWS" {
		t.Fatalf("unexpected certifications %v", resume.Certifications)
	}
	if len(resume.Education) != 1 {
		t.Fatalf("expected 1 education entry, got %d", len(resume.Education))
	}
	if !reflect.DeepEqual(resume.Education[0].RelevantCourses, []string{"Algorithms", "Databases"}) {
		t.Fatalf("unexpected courses %v", resume.Education[0].RelevantCourses)
	}
}

func TestParseResumeEmptyForm(t *testing.T) {
	resume := ParseResume(url.Values{})
	if resume.Name != "" {
		t.Fatalf("expected empty name")
	}
	if len(resume.WorkExperience) != 0 || len(resume.Education) != 0 || resume.TechnicalSkills.Len() != 0 {
		t.Fatalf("expected empty sections")
	}
}

func TestParseResumeClampsCounts(t *testing.T) {
	form := url.Values{}
	form.Set("name", "Jane Roe")
	form.Set("work_count", "9999999")
	form.Set("edu_count", "-3")
	form.Set("cert_count", "not-a-number")

	resume := ParseResume(form)
	if len(resume.WorkExperience) != maxIndexedEntries {
		t.Fatalf("expected work entries clamped to %d, got %d", maxIndexedEntries, len(resume.WorkExperience))
	}
	if len(resume.Education) != 0 || len(resume.Certifications) != 0 {
		t.Fatalf("invalid counts must parse as zero")
	}
}
