package services

import (
	"strings"

	"smartresume/analyzer/internal/models"
)

// KeywordMatcherService reports which important keywords the job
// description asks for and whether the resume covers them. Matching is
// plain substring containment, so multi-word phrases match as
// contiguous text and word boundaries are not enforced.
type KeywordMatcherService interface {
	Match(resumeText, jobText string) models.MatchResult
}

type keywordMatcherService struct{}

func NewKeywordMatcherService() KeywordMatcherService {
	return &keywordMatcherService{}
}

// Match implements KeywordMatcherService. Both result lists preserve
// vocabulary order, not discovery order.
func (k *keywordMatcherService) Match(resumeText, jobText string) models.MatchResult {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobText)

	matched := []string{}
	missing := []string{}
	totalRequired := 0

	for _, keyword := range ImportantKeywords {
		if !strings.Contains(jobLower, keyword) {
			continue
		}
		totalRequired++

		if strings.Contains(resumeLower, keyword) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	return models.MatchResult{
		Matched:       matched,
		Missing:       missing,
		MatchCount:    len(matched),
		TotalRequired: totalRequired,
	}
}
