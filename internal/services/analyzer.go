package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"smartresume/analyzer/internal/models"
)

// AnalyzerService runs the full pipeline for one resume / job
// description pair: text extraction, then field extraction, scoring and
// keyword matching over the extracted text, then suggestion
// composition. If extraction fails, no partial results are produced.
type AnalyzerService interface {
	Analyze(ctx context.Context, resumePath, jobDescription string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	parser    DocumentParserService
	extractor FieldExtractorService
	scorer    ScorerService
	keywords  KeywordMatcherService
	suggester SuggestionService
	logger    *zap.Logger
}

func NewAnalyzerService(
	parser DocumentParserService,
	extractor FieldExtractorService,
	scorer ScorerService,
	keywords KeywordMatcherService,
	suggester SuggestionService,
	logger *zap.Logger,
) AnalyzerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &analyzerService{
		parser:    parser,
		extractor: extractor,
		scorer:    scorer,
		keywords:  keywords,
		suggester: suggester,
		logger:    logger,
	}
}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(ctx context.Context, resumePath, jobDescription string) (*models.AnalysisResult, error) {
	resumeText, err := a.parser.ExtractFile(resumePath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	a.logger.Debug("resume text extracted",
		zap.String("path", resumePath),
		zap.Int("chars", len(resumeText)),
	)

	// The three analysis steps are independent reads over the same
	// text; they run in order because none of them dominates the
	// request time.
	profile := a.extractor.ExtractAll(ctx, resumeText)
	score := a.scorer.CalculateMatchScore(resumeText, jobDescription)
	keywords := a.keywords.Match(resumeText, jobDescription)

	suggestions := a.suggester.GetResumeSuggestions(
		resumeText,
		jobDescription,
		score,
		keywords.Matched,
		keywords.Missing,
	)

	a.logger.Info("analysis completed",
		zap.Float64("score", score),
		zap.Int("skills_found", len(profile.Skills)),
		zap.Int("keywords_matched", keywords.MatchCount),
		zap.Int("keywords_required", keywords.TotalRequired),
	)

	return &models.AnalysisResult{
		Profile:     profile,
		Score:       score,
		Keywords:    keywords,
		Suggestions: suggestions,
	}, nil
}
