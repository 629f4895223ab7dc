package services

import (
	"fmt"
	"strings"
)

// SuggestionService renders the improvement report for a scored resume.
// Pure text assembly: every line comes either from the fixed templates
// below or from the matched/missing keyword lists.
type SuggestionService interface {
	GetResumeSuggestions(resumeText, jobDescription string, score float64, matched, missing []string) string
}

// Assessment thresholds for the report text. The HTTP layer bands the
// same score at 70/50 for its own display; the two threshold sets serve
// different consumers and are kept separate on purpose.
const (
	strongAlignmentThreshold   = 75
	moderateAlignmentThreshold = 50
)

const (
	strongAssessment = "Strong alignment with the job requirements. " +
		"The candidate demonstrates solid technical compatibility and relevant experience."
	moderateAssessment = "Moderate alignment with the job description. " +
		"Some important skills are present, but improvements are needed."
	lowAssessment = "Low alignment with the job description. " +
		"Several key skills and experiences are missing."
)

// Bullet prefixes for the strengths and gaps sections. Fixed so reports
// stay machine-recoverable.
const (
	strengthPrefix = "• Demonstrated experience in "
	gapPrefix      = "• Consider adding practical experience with "

	noStrengthsBullet = "• No strong skill matches identified."
	noGapsBullet      = "• Resume already covers most required skills."
)

var genericRecommendations = []string{
	"• Add measurable achievements (e.g., improved efficiency by 30%).",
	"• Include more technical details about your projects.",
	"• Align resume keywords exactly with job description keywords.",
	"• Highlight frameworks, tools, and technologies clearly.",
	"• Add GitHub, portfolio, or live project links.",
}

var rewriteExamples = []string{
	"\nBefore: Worked on a web development project.",
	"After: Developed a scalable web application using Python and Flask, " +
		"reducing server response time by 40% and improving user experience.",
	"\nBefore: Responsible for database management.",
	"After: Designed and optimized SQL database schemas, " +
		"improving query performance by 35%.",
}

type suggestionService struct{}

func NewSuggestionService() SuggestionService {
	return &suggestionService{}
}

// GetResumeSuggestions implements SuggestionService. The resume and job
// description are part of the contract but the report is a function of
// the score and keyword lists only.
func (s *suggestionService) GetResumeSuggestions(_, _ string, score float64, matched, missing []string) string {
	var suggestions []string

	assessment := lowAssessment
	switch {
	case score >= strongAlignmentThreshold:
		assessment = strongAssessment
	case score >= moderateAlignmentThreshold:
		assessment = moderateAssessment
	}

	suggestions = append(suggestions, "========== OVERALL ASSESSMENT ==========")
	suggestions = append(suggestions, assessment)

	suggestions = append(suggestions, "\n========== KEY STRENGTHS ==========")
	if len(matched) > 0 {
		strengths := matched
		if len(strengths) > 5 {
			strengths = strengths[:5]
		}
		for _, skill := range strengths {
			suggestions = append(suggestions, strengthPrefix+skill)
		}
	} else {
		suggestions = append(suggestions, noStrengthsBullet)
	}

	suggestions = append(suggestions, "\n========== AREAS FOR IMPROVEMENT ==========")
	if len(missing) > 0 {
		for _, skill := range missing {
			suggestions = append(suggestions, gapPrefix+skill)
		}
	} else {
		suggestions = append(suggestions, noGapsBullet)
	}

	suggestions = append(suggestions, "\n========== SPECIFIC RECOMMENDATIONS ==========")
	suggestions = append(suggestions, genericRecommendations...)

	suggestions = append(suggestions, "\n========== RESUME REWRITE SUGGESTIONS ==========")
	suggestions = append(suggestions, rewriteExamples...)

	return strings.Join(suggestions, "\n")
}

// SkillsRatio renders the "matched out of required" metric shown next
// to the score, e.g. "3/8".
func SkillsRatio(matchCount, totalRequired int) string {
	return fmt.Sprintf("%d/%d", matchCount, totalRequired)
}
