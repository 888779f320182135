package layout

import (
	"fmt"
	"strings"
	"testing"

	"resumegen/resume/model"
)

func TestFitToPageShortResumeUntouched(t *testing.T) {
	resume := model.Resume{
		Name:                "Jane Roe",
		ProfessionalSummary: "Short summary.",
	}
	tier := TierFor(0)

	fit := FitToPage(tier, resume)
	if fit.Attempts != 0 {
		t.Fatalf("expected no shrink passes, got %d", fit.Attempts)
	}
	if fit.Overflows {
		t.Fatalf("short resume should not overflow")
	}
	if fit.Tier != tier {
		t.Fatalf("expected tier unchanged, got %+v", fit.Tier)
	}
}

func TestFitToPageShrinksLongResume(t *testing.T) {
	resume := longResume(8, 10)
	tier, _ := Select(resume)

	fit := FitToPage(tier, resume)
	if fit.Attempts == 0 {
		t.Fatalf("expected shrink passes for a long resume")
	}
	if fit.Tier.Margin > tier.Margin {
		t.Fatalf("margin grew during fit: %.2f > %.2f", fit.Tier.Margin, tier.Margin)
	}
	if fit.Tier.BodySize < MinFontSize {
		t.Fatalf("body size %.1f fell below minimum", fit.Tier.BodySize)
	}
	if fit.Tier.Margin < MinMargin {
		t.Fatalf("margin %.2f fell below minimum", fit.Tier.Margin)
	}
}

func TestFitToPageReportsOverflow(t *testing.T) {
	resume := longResume(30, 12)
	tier, _ := Select(resume)

	fit := FitToPage(tier, resume)
	if !fit.Overflows {
		t.Fatalf("expected overflow for a resume this size, pages=%.2f", fit.Pages)
	}
	if fit.Attempts != 3 {
		t.Fatalf("expected all shrink passes used, got %d", fit.Attempts)
	}
}

func longResume(jobs, bulletsPerJob int) model.Resume {
	bullet := strings.Repeat("built and shipped several substantial things ", 3)
	resume := model.Resume{
		Name:                "Jane Roe",
		ProfessionalSummary: strings.Repeat("Seasoned engineer. ", 20),
	}
	for i := 0; i < jobs; i++ {
		job := model.Experience{
			Title:     fmt.Sprintf("Engineer %d", i+1),
			Company:   "Example Corp",
			StartDate: "2015",
			EndDate:   "2020",
		}
		for j := 0; j < bulletsPerJob; j++ {
			job.Responsibilities = append(job.Responsibilities, bullet)
		}
		resume.WorkExperience = append(resume.WorkExperience, job)
	}
	return resume
}
