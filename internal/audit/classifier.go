package audit

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ecosim/ecosim/internal/greenwash"
)

// Classify audits one document and returns its record. The scoring model
// is the greenwash analyzer: its trust, vagueness, and evidence scores
// are projected onto the three candidate labels and normalized to a
// probability-like distribution. Empty or whitespace-only documents
// yield an Unknown record instead of being scored.
func Classify(ctx context.Context, content string) Record {
	now := time.Now().UTC()
	id := ulid.Make().String()

	text := strings.TrimSpace(content)
	if text == "" {
		return Record{
			ID:                    id,
			FilenameHint:          "(empty file)",
			PrimaryClassification: "unknown",
			ModelConfidence:       0,
			RiskLevel:             RiskUnknown,
			AllScores:             map[string]float64{},
			AuditedAt:             now.Format(time.RFC3339),
		}
	}

	analysis := greenwash.Analyze(ctx, text)

	// Project the analysis onto the candidate labels. A small floor keeps
	// every label represented before normalization.
	raw := map[string]float64{
		LabelGreenwashing: 0.05 + (100-analysis.TrustScore)/100,
		LabelVerified:     0.05 + analysis.DetailedAnalysis.EvidenceScore/100,
		LabelVague:        0.05 + analysis.DetailedAnalysis.VaguenessScore/100,
	}
	var total float64
	for _, v := range raw {
		total += v
	}

	scores := make(map[string]float64, len(raw))
	for label, v := range raw {
		scores[label] = round4(v / total)
	}

	top := topLabel(scores)
	risk := RiskHigh
	if top == LabelVerified {
		risk = RiskLow
	}

	return Record{
		ID:                    id,
		FilenameHint:          filenameHint(text),
		PrimaryClassification: top,
		ModelConfidence:       scores[top],
		RiskLevel:             risk,
		AllScores:             scores,
		AuditedAt:             now.Format(time.RFC3339),
	}
}

// topLabel picks the highest-scoring label. Ties resolve in the fixed
// order greenwashing, verified, vague so classification is deterministic.
func topLabel(scores map[string]float64) string {
	order := []string{LabelGreenwashing, LabelVerified, LabelVague}
	best := order[0]
	for _, label := range order[1:] {
		if scores[label] > scores[best] {
			best = label
		}
	}
	return best
}

// filenameHint flattens newlines and truncates the document head for
// display.
func filenameHint(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	if len(flat) <= filenameHintLength {
		return flat
	}
	return flat[:filenameHintLength] + "..."
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
