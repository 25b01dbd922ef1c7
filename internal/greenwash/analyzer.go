package greenwash

import (
	"context"
	"strings"
	"time"

	"github.com/ecosim/ecosim/internal/logging"
)

// Analyze scores a sustainability claim text. It is a total function:
// empty or unmatched text simply produces a clean, high-trust result.
// The same text always yields the same Result.
func Analyze(ctx context.Context, text string) Result {
	log := logging.FromContext(ctx)
	start := time.Now()

	phrases := scanPatterns(text)
	signals := extractSignals(text)
	counts := countByCategory(phrases)

	detail := deriveDetailedAnalysis(signals, counts, len(phrases))

	var severitySum float64
	for _, p := range phrases {
		severitySum += p.Severity
	}
	avgSeverity := 0.0
	if len(phrases) > 0 {
		avgSeverity = severitySum / float64(len(phrases))
	}

	trust := clampScore(100-avgSeverity*60-float64(len(phrases))*6+evidenceBonus(detail.EvidenceScore), TrustScoreMin, TrustScoreMax)

	risk := RiskHigh
	switch {
	case trust > riskLowThreshold:
		risk = RiskLow
	case trust > riskMediumThreshold:
		risk = RiskMedium
	}

	result := Result{
		TrustScore:        trust,
		RiskLevel:         risk,
		SuspiciousPhrases: phrases,
		Summary:           buildSummary(risk, counts, len(phrases)),
		DetailedAnalysis:  detail,
		ScoreBreakdown:    buildScoreBreakdown(detail, trust),
		WordFrequency:     wordFrequencies(text),
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "greenwash").
		Str("operation", "analyze").
		Int("text_len", len(text)).
		Int("flag_count", len(phrases)).
		Float64("trust_score", trust).
		Str("risk_level", risk).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("claim analysis complete")

	return result
}

// scanPatterns runs the full table against the text in table order.
// Matches are deduplicated by their lowercased literal text: the first
// pattern to produce a given literal wins and later duplicates are
// dropped, so the output order follows the table.
func scanPatterns(text string) []FlaggedPhrase {
	var phrases []FlaggedPhrase
	seen := make(map[string]bool)

	for _, p := range patternTable {
		for _, match := range p.re.FindAllString(text, -1) {
			key := strings.ToLower(match)
			if seen[key] {
				continue
			}
			seen[key] = true
			phrases = append(phrases, FlaggedPhrase{
				Text:       match,
				Reason:     p.reason,
				Severity:   p.severity,
				Category:   p.category,
				Suggestion: p.suggestion,
			})
		}
	}
	return phrases
}

// countByCategory tallies flags per category.
func countByCategory(phrases []FlaggedPhrase) map[string]int {
	counts := make(map[string]int, 4)
	for _, p := range phrases {
		counts[p.Category]++
	}
	return counts
}

// deriveDetailedAnalysis combines the boolean signals and per-category
// flag counts into the four bounded sub-scores.
func deriveDetailedAnalysis(signals evidenceSignals, counts map[string]int, flagCount int) DetailedAnalysis {
	vague := float64(counts[CategoryVague])
	unsupported := float64(counts[CategoryUnsupported])
	misleading := float64(counts[CategoryMisleading])

	evidence := boolWeight(signals.hasCertification, 40) +
		boolWeight(signals.hasNumbers, 25) +
		boolWeight(signals.hasMetrics, 20) +
		boolWeight(signals.hasTimeline, 15) -
		unsupported*10

	specificity := boolWeight(signals.hasMetrics, 35) +
		boolWeight(signals.hasNumbers, 30) +
		boolWeight(signals.hasTimeline, 20) + 15 -
		vague*15

	transparency := boolWeight(signals.hasCertification, 35) +
		boolWeight(signals.hasTimeline, 20) +
		boolWeight(signals.hasNumbers, 15) + 20 -
		(misleading+unsupported)*10

	vagueness := vague*25 + misleading*15
	if flagCount > 0 {
		vagueness += 10
	}
	if signals.hasMetrics {
		vagueness -= 20
	} else {
		vagueness += 10
	}

	return DetailedAnalysis{
		VaguenessScore:    clampScore(vagueness, 0, 100),
		EvidenceScore:     clampScore(evidence, 0, 100),
		SpecificityScore:  clampScore(specificity, 0, 100),
		TransparencyScore: clampScore(transparency, 0, 100),
	}
}

// evidenceBonus is the step function credited to the trust score.
func evidenceBonus(evidenceScore float64) float64 {
	switch {
	case evidenceScore > 50:
		return 15
	case evidenceScore > 25:
		return 8
	default:
		return 0
	}
}

// buildScoreBreakdown maps the analysis onto the five-dimension quality
// view the dashboard renders.
func buildScoreBreakdown(detail DetailedAnalysis, trust float64) []QualityDimension {
	languageTone := clampScore(100-detail.VaguenessScore, 0, 100)
	return []QualityDimension{
		{Dimension: "Specificity", Score: detail.SpecificityScore, Assessment: assess(detail.SpecificityScore)},
		{Dimension: "Evidence", Score: detail.EvidenceScore, Assessment: assess(detail.EvidenceScore)},
		{Dimension: "Transparency", Score: detail.TransparencyScore, Assessment: assess(detail.TransparencyScore)},
		{Dimension: "Language Tone", Score: languageTone, Assessment: assess(languageTone)},
		{Dimension: "Overall Credibility", Score: trust, Assessment: assess(trust)},
	}
}

// assess bands a [0,100] score into a short verdict.
func assess(score float64) string {
	switch {
	case score >= 70:
		return "strong"
	case score >= 40:
		return "adequate"
	default:
		return "weak"
	}
}

func boolWeight(b bool, w float64) float64 {
	if b {
		return w
	}
	return 0
}

func clampScore(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
