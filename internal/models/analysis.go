package models

// NotFound is the sentinel returned when a field could not be located
// in the resume text. Callers branch on it instead of handling errors.
const NotFound = "Not found"

// CandidateProfile holds the contact details and skills recovered from
// a resume. Immutable once produced by the field extractor.
type CandidateProfile struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Phone  string   `json:"phone"`
	Skills []string `json:"skills"`
}

// MatchResult reports which important keywords from the job description
// appear in the resume. Matched and Missing preserve vocabulary order
// and are disjoint; MatchCount + len(Missing) == TotalRequired.
type MatchResult struct {
	Matched       []string `json:"matched"`
	Missing       []string `json:"missing"`
	MatchCount    int      `json:"match_count"`
	TotalRequired int      `json:"total_required"`
}

// AnalysisResult bundles everything the pipeline computes for one
// resume / job description pair.
type AnalysisResult struct {
	Profile     CandidateProfile `json:"candidate"`
	Score       float64          `json:"score"`
	Keywords    MatchResult      `json:"keywords"`
	Suggestions string           `json:"suggestions"`
}

// AnalyzeResponse is the wire shape returned by POST /analyze. Band and
// Progress belong to the presentation contract and use its own 70/50
// thresholds, independent of the suggestion composer's bands.
type AnalyzeResponse struct {
	Score       float64          `json:"score"`
	Band        string           `json:"band"`
	Progress    float64          `json:"progress"`
	SkillsRatio string           `json:"skills_ratio"`
	Candidate   CandidateProfile `json:"candidate"`
	Keywords    MatchResult      `json:"keywords"`
	Suggestions string           `json:"suggestions"`
}
