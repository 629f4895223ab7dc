package services

import (
	"context"
	"regexp"
	"strings"

	"smartresume/analyzer/internal/models"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Optional country code, then 3-3-4 digit groups with optional
	// punctuation between them. Only the digit groups are captured so
	// the assembled number carries no formatting.
	phoneRe = regexp.MustCompile(`(\+?\d{1,3})?[-.\s]?\(?(\d{3})\)?[-.\s]?(\d{3})[-.\s]?(\d{4})`)

	nonDigitRe = regexp.MustCompile(`\D`)
)

// FieldExtractorService recovers structured candidate facts from plain
// resume text. All methods are total over any string input: absence is
// reported with the models.NotFound sentinel, never an error.
type FieldExtractorService interface {
	ExtractAll(ctx context.Context, text string) models.CandidateProfile
	ExtractEmail(text string) string
	ExtractPhone(text string) string
	ExtractSkills(text string) []string
}

type fieldExtractorService struct {
	nameExtractor NameExtractor
}

func NewFieldExtractorService(nameExtractor NameExtractor) FieldExtractorService {
	return &fieldExtractorService{nameExtractor: nameExtractor}
}

// ExtractAll implements FieldExtractorService.
func (e *fieldExtractorService) ExtractAll(ctx context.Context, text string) models.CandidateProfile {
	return models.CandidateProfile{
		Name:   e.nameExtractor.ExtractName(ctx, text),
		Email:  e.ExtractEmail(text),
		Phone:  e.ExtractPhone(text),
		Skills: e.ExtractSkills(text),
	}
}

// ExtractEmail returns the first email address in document order.
func (e *fieldExtractorService) ExtractEmail(text string) string {
	if match := emailRe.FindString(text); match != "" {
		return match
	}
	return models.NotFound
}

// ExtractPhone returns the first phone number in document order with
// all separators stripped, e.g. "(555) 123-4567" becomes "5551234567".
func (e *fieldExtractorService) ExtractPhone(text string) string {
	match := phoneRe.FindStringSubmatch(text)
	if match == nil {
		return models.NotFound
	}

	phone := strings.Join(match[1:], "")
	return nonDigitRe.ReplaceAllString(phone, "")
}

// ExtractSkills reports every vocabulary skill contained in the text.
// Matching is case-insensitive substring containment; the result keeps
// vocabulary order so repeated runs are reproducible.
func (e *fieldExtractorService) ExtractSkills(text string) []string {
	textLower := strings.ToLower(text)

	found := []string{}
	for _, skill := range SkillsList {
		if strings.Contains(textLower, skill) {
			found = append(found, skill)
		}
	}

	return found
}
