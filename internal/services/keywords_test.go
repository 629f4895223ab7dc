package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keywordTestJob = `
Senior Software Developer

Required Skills:
- 3+ years of Python development
- Django or Flask frameworks
- React for frontend
- SQL databases
- Git version control
- Docker and containerization
- Machine learning is a plus
`

func TestMatch_PartitionInvariants(t *testing.T) {
	k := NewKeywordMatcherService()

	resume := "Python developer. Django, SQL, Git. Some React."
	result := k.Match(resume, keywordTestJob)

	// match_count + len(missing) == total_required, always.
	assert.Equal(t, result.TotalRequired, result.MatchCount+len(result.Missing))
	assert.Equal(t, result.MatchCount, len(result.Matched))

	// matched and missing are disjoint.
	seen := map[string]bool{}
	for _, kw := range result.Matched {
		seen[kw] = true
	}
	for _, kw := range result.Missing {
		assert.False(t, seen[kw], "keyword %q in both matched and missing", kw)
	}

	// Their union is exactly the vocabulary keywords present in the
	// job description.
	jobLower := strings.ToLower(keywordTestJob)
	union := append(append([]string{}, result.Matched...), result.Missing...)
	assert.Len(t, union, result.TotalRequired)
	for _, kw := range union {
		assert.Contains(t, jobLower, kw)
	}
}

func TestMatch_VocabularyOrder(t *testing.T) {
	k := NewKeywordMatcherService()

	// Resume mentions keywords in reverse order; results must follow
	// vocabulary order regardless.
	result := k.Match("docker sql react python", "python react sql docker")

	require.Equal(t, []string{"python", "react", "sql", "docker"}, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Equal(t, 4, result.MatchCount)
	assert.Equal(t, 4, result.TotalRequired)
}

func TestMatch_MissingKeywords(t *testing.T) {
	k := NewKeywordMatcherService()

	result := k.Match("I know python", "python and kubernetes and docker required")

	assert.Equal(t, []string{"python"}, result.Matched)
	assert.Equal(t, []string{"docker", "kubernetes"}, result.Missing)
	assert.Equal(t, 1, result.MatchCount)
	assert.Equal(t, 3, result.TotalRequired)
}

func TestMatch_MultiWordPhrase(t *testing.T) {
	k := NewKeywordMatcherService()

	result := k.Match(
		"applied machine learning to fraud detection",
		"machine learning experience required",
	)

	assert.Contains(t, result.Matched, "machine learning")
}

func TestMatch_SubstringSemantics(t *testing.T) {
	k := NewKeywordMatcherService()

	// "api" matches inside "apis"; containment is not word-bounded.
	result := k.Match("built internal apis", "api design required")
	assert.Contains(t, result.Matched, "api")
}

func TestMatch_CaseInsensitive(t *testing.T) {
	k := NewKeywordMatcherService()

	result := k.Match("PYTHON EXPERT", "Python required")
	assert.Equal(t, []string{"python"}, result.Matched)
}

func TestMatch_EmptyInputs(t *testing.T) {
	k := NewKeywordMatcherService()

	result := k.Match("", "")
	assert.NotNil(t, result.Matched)
	assert.NotNil(t, result.Missing)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Zero(t, result.MatchCount)
	assert.Zero(t, result.TotalRequired)

	// Empty resume: every job keyword is missing.
	result = k.Match("", "python and sql required")
	assert.Empty(t, result.Matched)
	assert.Equal(t, []string{"python", "sql"}, result.Missing)
	assert.Equal(t, 2, result.TotalRequired)
}
