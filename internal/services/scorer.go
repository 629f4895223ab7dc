package services

import (
	"math"
	"regexp"
	"strings"
)

// ScorerService computes the textual similarity between a resume and a
// job description as a percentage. The computation is stateless: the
// vocabulary is rebuilt from the two documents on every call.
type ScorerService interface {
	CalculateMatchScore(resumeText, jobText string) float64
}

type scorerService struct{}

func NewScorerService() ScorerService {
	return &scorerService{}
}

// Tokens are lowercased runs of letters and digits at least two
// characters long, matching the reference vectorizer's default token
// pattern.
var tokenRe = regexp.MustCompile(`[a-z0-9]{2,}`)

func tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// CalculateMatchScore builds TF-IDF vectors for the two documents over
// their joint vocabulary and returns cosine similarity scaled to
// [0, 100], rounded to 2 decimal places. Degenerate inputs (either
// vector with zero norm) score 0.
func (s *scorerService) CalculateMatchScore(resumeText, jobText string) float64 {
	resumeTF := termFrequencies(tokenize(resumeText))
	jobTF := termFrequencies(tokenize(jobText))

	// Smoothed IDF over the two-document corpus:
	// idf(t) = ln((1+n) / (1+df(t))) + 1 with n = 2.
	idf := func(term string) float64 {
		df := 0.0
		if resumeTF[term] > 0 {
			df++
		}
		if jobTF[term] > 0 {
			df++
		}
		return math.Log(3.0/(1.0+df)) + 1.0
	}

	var dot, resumeNorm, jobNorm float64
	for term, tf := range resumeTF {
		w := tf * idf(term)
		resumeNorm += w * w
		if jobWeight := jobTF[term] * idf(term); jobWeight > 0 {
			dot += w * jobWeight
		}
	}
	for term, tf := range jobTF {
		w := tf * idf(term)
		jobNorm += w * w
	}

	if resumeNorm == 0 || jobNorm == 0 {
		return 0
	}

	similarity := dot / (math.Sqrt(resumeNorm) * math.Sqrt(jobNorm))
	return math.Round(similarity*100*100) / 100
}

func termFrequencies(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		tf[token]++
	}
	return tf
}
