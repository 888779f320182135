package layout

import (
	"resumegen/resume/model"
)

// Font size and margin bounds, in points and inches.
const (
	MinFontSize = 12.0
	MaxFontSize = 14.0
	MinMargin   = 0.5
	MaxMargin   = 2.0
)

// Tier is a discrete bundle of typography values selected by content volume.
// Longer resumes get more compact typography so they fit a single page.
type Tier struct {
	Name        string
	NameSize    float64 // pt
	HeadingSize float64 // pt
	BodySize    float64 // pt
	Margin      float64 // inches
	LineSpacing float64
}

var tiers = []struct {
	threshold float64
	tier      Tier
}{
	{1800, Tier{Name: "compact", NameSize: 14, HeadingSize: 13, BodySize: 12, Margin: 0.5, LineSpacing: 1.0}},
	{1500, Tier{Name: "dense", NameSize: 15, HeadingSize: 13, BodySize: 12, Margin: 0.6, LineSpacing: 1.0}},
	{1200, Tier{Name: "full", NameSize: 16, HeadingSize: 13, BodySize: 12, Margin: 0.7, LineSpacing: 1.0}},
	{900, Tier{Name: "standard", NameSize: 16, HeadingSize: 14, BodySize: 12, Margin: 0.9, LineSpacing: 1.0}},
	{0, Tier{Name: "roomy", NameSize: 16, HeadingSize: 14, BodySize: 12, Margin: 1.2, LineSpacing: 1.0}},
}

// ContentVolume estimates the total amount of content in the resume. The
// weights approximate rendered height: bullets dominate, skills pack tightly.
func ContentVolume(resume model.Resume) float64 {
	volume := 0.0

	volume += float64(len(resume.ProfessionalSummary)) * 0.5

	for _, job := range resume.WorkExperience {
		volume += experienceVolume(job)
	}
	for _, intern := range resume.Internships {
		volume += experienceVolume(intern)
	}

	for _, category := range resume.TechnicalSkills.Keys() {
		volume += float64(len(category))
		skills, _ := resume.TechnicalSkills.Get(category)
		for _, skill := range skills {
			volume += float64(len(skill)) * 0.3
		}
	}

	volume += float64(len(resume.Education)) * 80

	for _, project := range resume.Projects {
		volume += 60 + float64(len(project.Description))*0.5
	}
	volume += float64(len(resume.Certifications)) * 40

	return volume
}

func experienceVolume(entry model.Experience) float64 {
	// Base covers the title/company/location line.
	volume := 100.0
	for _, resp := range entry.Responsibilities {
		volume += float64(len(resp)) * 0.7
	}
	for _, ach := range entry.Achievements {
		volume += float64(len(ach)) * 0.7
	}
	return volume
}

// TierFor selects the formatting tier for a content volume. Font sizes and
// margins are non-increasing as volume grows.
func TierFor(volume float64) Tier {
	for _, entry := range tiers {
		if volume > entry.threshold {
			return entry.tier
		}
	}
	return tiers[len(tiers)-1].tier
}

// Select computes the content volume and returns the matching tier.
func Select(resume model.Resume) (Tier, float64) {
	volume := ContentVolume(resume)
	return TierFor(volume), volume
}
