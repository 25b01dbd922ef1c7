package greenwash

import "regexp"

// pattern is one row of the fixed trope table. Order matters: scanning
// preserves table order and the first pattern to match a literal text
// wins, so broader patterns sit below more specific ones.
type pattern struct {
	re         *regexp.Regexp
	reason     string
	severity   float64
	category   string
	suggestion string
}

// patternTable is the ordered list of known greenwashing tropes. All
// patterns are case-insensitive.
var patternTable = []pattern{
	{
		re:         regexp.MustCompile(`(?i)100%\s*(?:sustainable|recyclable|natural|green|organic)`),
		reason:     "Absolute claims are almost never verifiable across a full supply chain",
		severity:   0.9,
		category:   CategoryUnsupported,
		suggestion: "State the certified share, e.g. \"83% recycled content (GRS certified)\"",
	},
	{
		re:         regexp.MustCompile(`(?i)carbon[\s-]?neutral`),
		reason:     "Carbon neutrality claims require disclosed offsets and system boundaries",
		severity:   0.8,
		category:   CategoryUnsupported,
		suggestion: "Cite the standard and scope, e.g. \"PAS 2060 certified for scopes 1-2\"",
	},
	{
		re:         regexp.MustCompile(`(?i)net[\s-]?zero`),
		reason:     "Net-zero pledges without a dated pathway are unverifiable",
		severity:   0.8,
		category:   CategoryUnsupported,
		suggestion: "Attach an SBTi-validated target year and interim milestones",
	},
	{
		re:         regexp.MustCompile(`(?i)zero\s+(?:emissions?|waste)`),
		reason:     "Zero-impact claims contradict any physical production process",
		severity:   0.85,
		category:   CategoryUnsupported,
		suggestion: "Quantify the reduction instead, e.g. \"96% landfill diversion rate\"",
	},
	{
		re:         regexp.MustCompile(`(?i)climate[\s-]positive`),
		reason:     "\"Climate positive\" has no agreed definition or measurement basis",
		severity:   0.8,
		category:   CategoryUnsupported,
		suggestion: "Report net tCO2e removed with methodology and verifier",
	},
	{
		re:         regexp.MustCompile(`(?i)chemical[\s-]free`),
		reason:     "Everything is made of chemicals; the claim is scientifically false",
		severity:   0.9,
		category:   CategoryMisleading,
		suggestion: "Name the substances excluded, e.g. \"free of phthalates and BPA\"",
	},
	{
		re:         regexp.MustCompile(`(?i)(?:non[\s-]toxic|toxin[\s-]free)`),
		reason:     "Toxicity depends on dose and exposure; blanket claims mislead",
		severity:   0.7,
		category:   CategoryMisleading,
		suggestion: "Reference the safety standard met, e.g. \"complies with EN 71-3\"",
	},
	{
		re:         regexp.MustCompile(`(?i)biodegradable`),
		reason:     "Biodegradability without timeframe and conditions is misleading",
		severity:   0.7,
		category:   CategoryMisleading,
		suggestion: "Specify conditions, e.g. \"certified compostable per EN 13432 in 12 weeks\"",
	},
	{
		re:         regexp.MustCompile(`(?i)compostable`),
		reason:     "Most \"compostable\" materials require industrial facilities",
		severity:   0.6,
		category:   CategoryMisleading,
		suggestion: "State whether home or industrial composting applies",
	},
	{
		re:         regexp.MustCompile(`(?i)saves?\s+the\s+planet`),
		reason:     "No single product purchase saves the planet",
		severity:   0.8,
		category:   CategoryMisleading,
		suggestion: "Replace hyperbole with the measured impact per unit",
	},
	{
		re:         regexp.MustCompile(`(?i)eco[\s-]?friendly`),
		reason:     "\"Eco-friendly\" is undefined and unverifiable",
		severity:   0.6,
		category:   CategoryVague,
		suggestion: "Replace with a measurable attribute, e.g. \"uses 40% less water per wash\"",
	},
	{
		re:         regexp.MustCompile(`(?i)environmentally\s+friendly`),
		reason:     "\"Environmentally friendly\" carries no measurable meaning",
		severity:   0.6,
		category:   CategoryVague,
		suggestion: "Name the specific environmental benefit with a number",
	},
	{
		re:         regexp.MustCompile(`(?i)(?:planet|earth)[\s-]friendly`),
		reason:     "Planet-friendly is marketing language with no defined metric",
		severity:   0.7,
		category:   CategoryVague,
		suggestion: "Quantify the footprint difference against a named baseline",
	},
	{
		re:         regexp.MustCompile(`(?i)all[\s-]natural`),
		reason:     "\"Natural\" does not imply safe or low-impact",
		severity:   0.7,
		category:   CategoryVague,
		suggestion: "List ingredient origins and their certifications",
	},
	{
		re:         regexp.MustCompile(`(?i)natural\s+ingredients`),
		reason:     "Unquantified \"natural ingredients\" claims are unfalsifiable",
		severity:   0.5,
		category:   CategoryVague,
		suggestion: "State the percentage of certified-origin ingredients",
	},
	{
		re:         regexp.MustCompile(`(?i)green\s+(?:energy|technology|product|packaging)`),
		reason:     "\"Green\" as a qualifier asserts nothing checkable",
		severity:   0.5,
		category:   CategoryVague,
		suggestion: "Identify the energy source or material and its share",
	},
	{
		re:         regexp.MustCompile(`(?i)clean\s+energy`),
		reason:     "\"Clean energy\" needs a source mix to mean anything",
		severity:   0.5,
		category:   CategoryVague,
		suggestion: "Disclose the generation mix, e.g. \"72% wind, 28% grid\"",
	},
	{
		re:         regexp.MustCompile(`(?i)eco[\s-]conscious`),
		reason:     "Describes intent, not outcome",
		severity:   0.4,
		category:   CategoryVague,
		suggestion: "Describe the practice the consciousness resulted in",
	},
	{
		re:         regexp.MustCompile(`(?i)sustainably\s+(?:sourced|made|produced)`),
		reason:     "Sourcing claims need a certification or audit trail",
		severity:   0.6,
		category:   CategoryUnsupported,
		suggestion: "Name the scheme, e.g. \"FSC chain-of-custody certified\"",
	},
	{
		re:         regexp.MustCompile(`(?i)ethically\s+(?:sourced|made|produced)`),
		reason:     "Ethical claims without audit evidence are unsupported",
		severity:   0.5,
		category:   CategoryUnsupported,
		suggestion: "Reference the audit standard, e.g. \"SA8000 certified facilities\"",
	},
	{
		re:         regexp.MustCompile(`(?i)plastic[\s-]free`),
		reason:     "Packaging and coatings frequently hide polymers",
		severity:   0.5,
		category:   CategoryUnsupported,
		suggestion: "Enumerate the materials actually used",
	},
	{
		re:         regexp.MustCompile(`(?i)recyclable`),
		reason:     "Recyclability claims without rates or facilities lack metrics",
		severity:   0.4,
		category:   CategoryMissingMetrics,
		suggestion: "State the material recycling rate in the target market",
	},
}
