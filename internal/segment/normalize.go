// Package segment prepares request text for synthesis: it normalizes
// typographic noise and splits long passages into model-sized segments whose
// concatenation reconstructs the normalized input exactly.
package segment

import (
	"regexp"
	"strings"
)

// Typographic forms folded to their plain equivalents before segmentation.
const (
	emDash       = "—"
	enDash       = "–"
	figureDash   = "‒"
	ellipsis     = "..."
	ellipsisChar = "…"
	nbsp         = " "
)

// Regex patterns for whitespace normalization.
const (
	spaceRunPattern   = `[ \t]+`
	newlinePadPattern = `[ \t]*\n[ \t]*`
	blankLinesPattern = `\n{3,}`
)

// Normalizer folds typographic variants and whitespace noise into the plain
// forms the segmenter and the speech model expect. Build one and reuse it;
// the compiled patterns are safe for concurrent use.
type Normalizer struct {
	replacer   *strings.Replacer
	spaceRun   *regexp.Regexp
	newlinePad *regexp.Regexp
	blankLines *regexp.Regexp
}

// NewNormalizer creates a normalizer with precompiled patterns and replacers.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		replacer: strings.NewReplacer(
			"\r\n", "\n",
			"\r", "\n",
			nbsp, " ",
			emDash, "-",
			enDash, "-",
			figureDash, "-",
			ellipsisChar, ellipsis,
			"“", `"`, "”", `"`,
			"«", `"`, "»", `"`,
			"‘", "'", "’", "'",
		),
		spaceRun:   regexp.MustCompile(spaceRunPattern),
		newlinePad: regexp.MustCompile(newlinePadPattern),
		blankLines: regexp.MustCompile(blankLinesPattern),
	}
}

// Normalize returns the cleaned text. Line breaks survive as sentence
// boundaries; runs of spaces and tabs collapse to a single space.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return text
	}

	text = n.replacer.Replace(text)
	text = n.spaceRun.ReplaceAllString(text, " ")
	text = n.newlinePad.ReplaceAllString(text, "\n")
	text = n.blankLines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
