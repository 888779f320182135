package ats

import (
	"regexp"
	"sort"
	"strings"
)

var wordPattern = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z]+\b`)

// Words of three characters or fewer ("the", "and", "for") carry no signal
// for keyword matching and are skipped.
const minKeywordLength = 4

// Report describes how well a resume covers a job description's vocabulary.
type Report struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// Analyze extracts keywords from the job description and scores the resume
// text by the percentage of keywords it contains.
func Analyze(jobDescription, resumeText string) Report {
	keywords := extractKeywords(jobDescription)
	haystack := strings.ToLower(resumeText)

	report := Report{
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
	}
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			report.MatchedKeywords = append(report.MatchedKeywords, keyword)
		} else {
			report.MissingKeywords = append(report.MissingKeywords, keyword)
		}
	}
	if len(keywords) > 0 {
		report.Score = float64(len(report.MatchedKeywords)) / float64(len(keywords)) * 100
	}
	return report
}

func extractKeywords(text string) []string {
	seen := make(map[string]struct{})
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(word) >= minKeywordLength {
			seen[word] = struct{}{}
		}
	}
	keywords := make([]string, 0, len(seen))
	for word := range seen {
		keywords = append(keywords, word)
	}
	sort.Strings(keywords)
	return keywords
}
