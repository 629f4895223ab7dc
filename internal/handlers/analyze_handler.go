package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartresume/analyzer/internal/models"
	"smartresume/analyzer/internal/services"
)

// Display bands for the overall score. These thresholds belong to the
// presentation contract and differ from the 75/50 bands used inside the
// suggestion report.
const (
	excellentMatchThreshold = 70
	goodMatchThreshold      = 50
)

const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandWeak      = "weak"
)

type AnalyzeHandler struct {
	analyzer       services.AnalyzerService
	storageService services.StorageService
	maxFileSize    int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	storageService services.StorageService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze: a multipart form with a "resume"
// file (.pdf or .docx) and a "job_description" text field. The upload
// is written to a transient location and removed once the request
// finishes, whether or not the analysis succeeded.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(resumeFile)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Resume must be a .pdf or .docx file",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}
	defer h.storageService.DeleteFile(filename)

	result, err := h.analyzer.Analyze(c.UserContext(), filePath, jobDescription)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedFormat):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Resume must be a .pdf or .docx file",
			})
		case errors.Is(err, services.ErrDocumentRead):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Could not read the resume. Please make sure the file is a valid PDF or DOCX document.",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("analysis failed: %v", err),
			})
		}
	}

	return c.JSON(buildAnalyzeResponse(result))
}

func buildAnalyzeResponse(result *models.AnalysisResult) models.AnalyzeResponse {
	return models.AnalyzeResponse{
		Score:       result.Score,
		Band:        scoreBand(result.Score),
		Progress:    result.Score / 100,
		SkillsRatio: services.SkillsRatio(result.Keywords.MatchCount, result.Keywords.TotalRequired),
		Candidate:   result.Profile,
		Keywords:    result.Keywords,
		Suggestions: result.Suggestions,
	}
}

func scoreBand(score float64) string {
	switch {
	case score >= excellentMatchThreshold:
		return BandExcellent
	case score >= goodMatchThreshold:
		return BandGood
	default:
		return BandWeak
	}
}
