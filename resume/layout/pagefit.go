package layout

import (
	"strings"

	"resumegen/resume/model"
)

// US Letter geometry in inches.
const (
	pageHeightInches = 11.0
	pageWidthInches  = 8.5
	charsPerInch     = 12.0
	maxFitAttempts   = 3
)

// FitResult reports the tier after shrink-to-fit passes.
type FitResult struct {
	Tier      Tier
	Pages     float64
	Attempts  int
	Overflows bool
}

// FitToPage shrinks fonts and margins until the estimated page count drops to
// one, up to maxFitAttempts passes. Sizes never go below the configured
// minimums, so very long resumes can still overflow; Overflows reports that.
func FitToPage(tier Tier, resume model.Resume) FitResult {
	pages := EstimatePages(tier, resume)
	attempts := 0

	for pages > 1 && attempts < maxFitAttempts {
		attempts++
		tier.NameSize = maxF(MaxFontSize, tier.NameSize*0.95)
		tier.HeadingSize = maxF(MinFontSize+1, tier.HeadingSize*0.95)
		tier.BodySize = MinFontSize
		tier.Margin = maxF(MinMargin, tier.Margin*0.9)
		pages = EstimatePages(tier, resume)
	}

	return FitResult{
		Tier:      tier,
		Pages:     pages,
		Attempts:  attempts,
		Overflows: pages > 1,
	}
}

// EstimatePages approximates the rendered page count for a tier. It walks the
// same paragraphs the renderer emits and sums estimated heights with a simple
// line-wrap model.
func EstimatePages(tier Tier, resume model.Resume) float64 {
	usableHeightPt := (pageHeightInches - 2*tier.Margin) * 72
	if usableHeightPt <= 0 {
		return 1
	}
	usableWidthInches := pageWidthInches - 2*tier.Margin
	charsPerLine := usableWidthInches * charsPerInch
	if charsPerLine < 1 {
		charsPerLine = 1
	}

	total := paragraphHeight(tier.NameSize*1.5, resume.Name, charsPerLine)
	if len(resume.ContactInfo) > 0 {
		total += paragraphHeight(tier.BodySize*1.2, strings.Join(resume.ContactInfo, " | "), charsPerLine)
	}

	if resume.ProfessionalSummary != "" {
		total += headingHeight(tier)
		total += paragraphHeight(tier.BodySize*1.2, resume.ProfessionalSummary, charsPerLine)
	}

	total += experienceHeight(tier, resume.WorkExperience, charsPerLine)
	total += experienceHeight(tier, resume.Internships, charsPerLine)

	for _, project := range resume.Projects {
		total += paragraphHeight(tier.BodySize*1.2, project.Name, charsPerLine)
		total += paragraphHeight(tier.BodySize*1.2, project.Description, charsPerLine)
		if len(project.Technologies) > 0 {
			total += paragraphHeight(tier.BodySize*1.2, strings.Join(project.Technologies, ", "), charsPerLine)
		}
	}
	if len(resume.Projects) > 0 {
		total += headingHeight(tier)
	}

	if len(resume.Certifications) > 0 {
		total += headingHeight(tier)
		total += float64(len(resume.Certifications)) * tier.BodySize * 1.2
	}

	if resume.TechnicalSkills.Len() > 0 {
		total += headingHeight(tier)
		for _, category := range resume.TechnicalSkills.Keys() {
			skills, _ := resume.TechnicalSkills.Get(category)
			total += paragraphHeight(tier.BodySize*1.2, category+": "+strings.Join(skills, ", "), charsPerLine)
		}
	}

	if len(resume.Education) > 0 {
		total += headingHeight(tier)
		for _, edu := range resume.Education {
			total += paragraphHeight(tier.BodySize*1.2, edu.Degree+" | "+edu.Institution+" "+edu.Location+" "+edu.GraduationDate, charsPerLine)
			if len(edu.RelevantCourses) > 0 {
				total += paragraphHeight(tier.BodySize*1.2, "Relevant Coursework: "+strings.Join(edu.RelevantCourses, ", "), charsPerLine)
			}
		}
	}

	pages := total / usableHeightPt
	if pages < 1 {
		return 1
	}
	return pages
}

func experienceHeight(tier Tier, entries []model.Experience, charsPerLine float64) float64 {
	if len(entries) == 0 {
		return 0
	}
	total := headingHeight(tier)
	for _, entry := range entries {
		headline := entry.Title + " | " + entry.Company + " — " + entry.Location + " | " + entry.StartDate + " - " + entry.EndDate
		total += paragraphHeight(tier.BodySize*1.2, headline, charsPerLine)
		for _, resp := range entry.Responsibilities {
			total += paragraphHeight(tier.BodySize*1.2, resp, charsPerLine)
		}
		for _, ach := range entry.Achievements {
			total += paragraphHeight(tier.BodySize*1.2, ach, charsPerLine)
		}
	}
	return total
}

func headingHeight(tier Tier) float64 {
	return tier.HeadingSize * 1.5
}

func paragraphHeight(base float64, text string, charsPerLine float64) float64 {
	lines := 1.0
	if n := float64(len(text)) / charsPerLine; n > 1 {
		lines = n
	}
	return base * lines
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
