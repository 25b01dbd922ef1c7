// Package audit implements the continuous ESG report auditor: it
// watches a dropzone directory for incoming .txt reports, classifies
// each one for greenwashing risk, and appends the results to a JSONL
// file that the live-audits endpoint serves latest-first.
package audit

// Candidate classification labels. They map directly to ESG compliance
// risk categories: the first and last are high risk, the middle is low.
const (
	LabelGreenwashing = "greenwashing"
	LabelVerified     = "verified sustainability metrics"
	LabelVague        = "vague marketing"
)

// Risk levels attached to audit records.
const (
	RiskHigh    = "High"
	RiskLow     = "Low"
	RiskUnknown = "Unknown"
)

// filenameHintLength is how much of the document leads the display hint.
const filenameHintLength = 60

// Record is one processed audit result.
type Record struct {
	// ID is a ULID assigned when the document is audited.
	ID string `json:"id"`

	// FilenameHint is the first 60 characters of the document with
	// newlines flattened, for display.
	FilenameHint string `json:"filename_hint"`

	PrimaryClassification string `json:"primary_classification"`

	// ModelConfidence is the top label's score in [0,1], 4 decimals.
	ModelConfidence float64 `json:"model_confidence"`

	RiskLevel string `json:"risk_level"`

	// AllScores maps every candidate label to its score.
	AllScores map[string]float64 `json:"all_scores"`

	// AuditedAt is the UTC audit timestamp in RFC 3339 format.
	AuditedAt string `json:"audited_at"`
}

// envelope is the JSONL row format on disk. The audit payload travels as
// a JSON string in AuditResult; Diff follows streaming semantics where 1
// is an insertion and -1 a retraction readers must skip.
type envelope struct {
	AuditResult string `json:"audit_result"`
	Diff        int    `json:"diff"`
	Time        int64  `json:"time"`
}
