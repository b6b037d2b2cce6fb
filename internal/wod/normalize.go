// Package wod holds the workout-of-the-day domain: the lexical normalizer
// that rewrites gym shorthand into speakable text, the announcement splitter,
// the SSML fragment composer, and the workout record itself.
package wod

import "regexp"

// rewriteRule pairs a compiled matcher with its expansion. Rules run in
// order; later rules must not be confused by text injected earlier.
type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// setNotationPattern rewrites "4x3" style set-by-rep shorthand.
var setNotationPattern = rewriteRule{
	pattern:     regexp.MustCompile(`(\d+)x(\d+)`),
	replacement: `$1 sets of $2`,
}

// loadNotationPattern rewrites gendered load shorthand like "115#/95#" into
// explicit male/female loads, spoken at a faster rate so the detail does not
// drag the sentence.
var loadNotationPattern = rewriteRule{
	pattern:     regexp.MustCompile(`(\d+[#"'])/(\d+[#"'])`),
	replacement: `<prosody rate="fast">$1 male, $2 female</prosody>`,
}

// aliasRules expand gym abbreviations and unit symbols. The unit symbols are
// anchored to a preceding digit so the pass cannot touch attribute quotes of
// markup injected by earlier rules, and so apostrophes inside ordinary words
// survive. Spaced multipliers ("... x 3") become "times", and a plus between
// movements gets a firm pause in front of it. The ampersand rule must stay
// last: it is the catch-all for a character SSML forbids unescaped.
var aliasRules = []rewriteRule{
	{regexp.MustCompile(`\bDB\b`), `<sub alias="dumbbell">DB</sub>`},
	{regexp.MustCompile(`\bKB\b`), `<sub alias="kettlebell">KB</sub>`},
	{regexp.MustCompile(`(\d+)#`), `$1<sub alias="pounds">#</sub>`},
	{regexp.MustCompile(`(\d+)"`), `$1<sub alias="inches">"</sub>`},
	{regexp.MustCompile(`(\d+)'`), `$1<sub alias="feet">'</sub>`},
	{regexp.MustCompile(`\bE(\d+)MOM\b`), `every $1 minutes on the minute`},
	{regexp.MustCompile(`\bEMOM\b`), `every minute on the minute`},
	{regexp.MustCompile(`\bHSPU\b`), `hand stand push ups`},
	{regexp.MustCompile(`\bT2B\b`), `<sub alias="toes to bar">T2B</sub>`},
	{regexp.MustCompile(`(\d+) sec\.`), `$1 second `},
	{regexp.MustCompile(` x (\d+)`), ` times $1`},
	{regexp.MustCompile(` \+ `), `<break strength="strong"/> + `},
	{regexp.MustCompile(`&`), `and`},
}

// Normalize rewrites one line of workout shorthand into speakable SSML text.
// It is pure and total: lines that match nothing pass through unchanged, and
// the output never contains a bare ampersand.
func Normalize(line string) string {
	line = setNotationPattern.pattern.ReplaceAllString(line, setNotationPattern.replacement)
	line = loadNotationPattern.pattern.ReplaceAllString(line, loadNotationPattern.replacement)

	for _, rule := range aliasRules {
		line = rule.pattern.ReplaceAllString(line, rule.replacement)
	}

	return line
}
