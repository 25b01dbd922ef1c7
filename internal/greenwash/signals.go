package greenwash

import "regexp"

// evidenceSignals are the four boolean heuristics extracted from the raw
// text before scoring.
type evidenceSignals struct {
	hasNumbers       bool
	hasCertification bool
	hasTimeline      bool
	hasMetrics       bool
}

var (
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?\s*%?`)

	certificationPattern = regexp.MustCompile(
		`(?i)\b(?:iso[\s-]?\d+(?:-\d+)?|certified|certification|accredited|audit(?:ed|or)?|` +
			`third[\s-]party|independently\s+verified|verified|b[\s-]?corp|fsc|leed|` +
			`energy\s+star|ecolabel|cradle\s+to\s+cradle|sbti)\b`)

	timelinePattern = regexp.MustCompile(
		`(?i)\b(?:(?:19|20)\d{2}|by\s+(?:19|20)\d{2}|baseline|annual(?:ly)?|` +
			`year[\s-]over[\s-]year|quarterly|roadmap|milestones?)\b`)

	metricPattern = regexp.MustCompile(
		`(?i)(?:\bkg\b|\bkgs\b|\btonnes?\b|\btons?\b|\bkwh\b|\bmwh\b|\bgwh\b|` +
			`co2e?|co₂e?|\blit(?:er|re)s?\b|\bgallons?\b|\bkgco2e?\b|\bghg\b)`)
)

// extractSignals computes the boolean evidence signals for a text.
func extractSignals(text string) evidenceSignals {
	return evidenceSignals{
		hasNumbers:       numberPattern.MatchString(text),
		hasCertification: certificationPattern.MatchString(text),
		hasTimeline:      timelinePattern.MatchString(text),
		hasMetrics:       metricPattern.MatchString(text),
	}
}
