// Package greenwash scores free-text sustainability claims for
// greenwashing risk. The analyzer is a fixed ordered pattern table plus
// a handful of evidence heuristics; it is purely deterministic and needs
// no random source.
package greenwash

// Flag categories. Every flagged phrase belongs to exactly one.
const (
	CategoryVague          = "vague"
	CategoryUnsupported    = "unsupported"
	CategoryMisleading     = "misleading"
	CategoryMissingMetrics = "missing_metrics"
)

// Risk level labels.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Trust score bounds and risk thresholds.
const (
	TrustScoreMin = 5
	TrustScoreMax = 98

	riskLowThreshold    = 70
	riskMediumThreshold = 40
)

// FlaggedPhrase is one detected greenwashing trope.
type FlaggedPhrase struct {
	// Text is the literal matched substring as it appeared in the input.
	Text string `json:"text"`

	Reason   string  `json:"reason"`
	Severity float64 `json:"severity"`
	Category string  `json:"category"`

	// Suggestion proposes a verifiable replacement for the claim.
	Suggestion string `json:"suggestion"`
}

// DetailedAnalysis is the four-dimension score breakdown, each in [0,100].
type DetailedAnalysis struct {
	// VaguenessScore rises with unverifiable feel-good language.
	VaguenessScore float64 `json:"vaguenessScore"`

	// EvidenceScore rises with certifications, numbers, and metrics.
	EvidenceScore float64 `json:"evidenceScore"`

	// SpecificityScore rises with quantified, unit-bearing statements.
	SpecificityScore float64 `json:"specificityScore"`

	// TransparencyScore rises with audits, baselines, and timelines.
	TransparencyScore float64 `json:"transparencyScore"`
}

// QualityDimension is one entry of the five-dimension quality breakdown.
type QualityDimension struct {
	Dimension  string  `json:"dimension"`
	Score      float64 `json:"score"`
	Assessment string  `json:"assessment"`
}

// WordFrequency is one row of the top-25 word table.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`

	// Suspicious marks words drawn from the fixed greenwashing
	// vocabulary.
	Suspicious bool `json:"suspicious"`
}

// Result is the full analysis of one text.
type Result struct {
	TrustScore        float64            `json:"trustScore"`
	RiskLevel         string             `json:"riskLevel"`
	SuspiciousPhrases []FlaggedPhrase    `json:"suspiciousPhrases"`
	Summary           string             `json:"summary"`
	DetailedAnalysis  DetailedAnalysis   `json:"detailedAnalysis"`
	ScoreBreakdown    []QualityDimension `json:"scoreBreakdown"`
	WordFrequency     []WordFrequency    `json:"wordFrequency"`
}
