package services

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"smartresume/analyzer/internal/models"
)

// NameExtractor is the capability of pulling a candidate name out of
// resume text. Two interchangeable strategies exist: a line-scan
// heuristic and a Gemini-backed entity recognizer. Callers depend only
// on this interface; the strategy is chosen at startup.
type NameExtractor interface {
	ExtractName(ctx context.Context, text string) string
}

// headerWords are section headers that disqualify a line from being a
// name (case-insensitive substring check).
var headerWords = []string{"resume", "curriculum", "vitae", "cv", "profile", "summary"}

type heuristicNameExtractor struct{}

// NewHeuristicNameExtractor returns the default strategy: the name is
// usually the first short line of the resume.
func NewHeuristicNameExtractor() NameExtractor {
	return &heuristicNameExtractor{}
}

// ExtractName scans the first 5 non-empty lines and returns the first
// one shorter than 50 characters that has no digits and is not a
// section header. The line is returned verbatim.
func (h *heuristicNameExtractor) ExtractName(_ context.Context, text string) string {
	var candidates []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
		if len(candidates) == 5 {
			break
		}
	}

	for _, line := range candidates {
		if len(line) >= 50 || containsDigit(line) {
			continue
		}

		lineLower := strings.ToLower(line)
		header := false
		for _, word := range headerWords {
			if strings.Contains(lineLower, word) {
				header = true
				break
			}
		}
		if !header {
			return line
		}
	}

	return models.NotFound
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

const geminiNameLimit = 500

const geminiNamePrompt = `You are extracting a candidate's name from the top of a resume.
Return ONLY the person's full name, with no extra words or punctuation.
If no person's name is present, return exactly NONE.

Resume text:
`

type geminiNameExtractor struct {
	gemini GeminiService
	logger *zap.Logger
}

// NewGeminiNameExtractor returns the entity-recognition strategy. It
// sends the first 500 characters of the resume to Gemini and takes the
// first person entity from the reply.
func NewGeminiNameExtractor(gemini GeminiService, logger *zap.Logger) NameExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &geminiNameExtractor{gemini: gemini, logger: logger}
}

// ExtractName implements NameExtractor.
func (g *geminiNameExtractor) ExtractName(ctx context.Context, text string) string {
	head := text
	if len(head) > geminiNameLimit {
		head = head[:geminiNameLimit]
	}

	if strings.TrimSpace(head) == "" {
		return models.NotFound
	}

	response, err := g.gemini.GenerateText(ctx, geminiNamePrompt+head, 0)
	if err != nil {
		g.logger.Warn("name recognition failed", zap.Error(err))
		return models.NotFound
	}

	name := strings.TrimSpace(response)
	if name == "" || strings.EqualFold(name, "NONE") {
		return models.NotFound
	}

	// Models occasionally reply with a full sentence; keep the first
	// line only.
	if idx := strings.IndexByte(name, '\n'); idx >= 0 {
		name = strings.TrimSpace(name[:idx])
	}

	return name
}
