package greenwash

import "fmt"

// buildSummary produces the human-readable verdict. Wording branches on
// the risk level and on which flag categories dominate, yielding four
// distinct templates.
func buildSummary(risk string, counts map[string]int, flagCount int) string {
	switch {
	case risk == RiskHigh:
		return fmt.Sprintf(
			"High greenwashing risk: %d flagged claim(s), including %d unsupported and %d misleading. "+
				"The text leans on absolute or undefined language without verifiable evidence.",
			flagCount, counts[CategoryUnsupported], counts[CategoryMisleading])

	case risk == RiskMedium:
		return fmt.Sprintf(
			"Moderate greenwashing risk: %d claim(s) need substantiation. Vague language appears %d time(s); "+
				"adding certifications, baselines, and quantified metrics would materially improve credibility.",
			flagCount, counts[CategoryVague])

	case flagCount > 0:
		return fmt.Sprintf(
			"Low greenwashing risk overall, though %d phrase(s) could still be tightened. "+
				"The supporting evidence largely offsets the flagged language.",
			flagCount)

	default:
		return "No greenwashing indicators detected. The text makes specific, evidence-backed claims."
	}
}
