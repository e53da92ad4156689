package script

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/qazvoice/kaztts-service/internal/core"
)

// Converter transliterates Kazakh text between Cyrillic and Tote Zhazu. It is
// stateless apart from the shared read-only tables, so one instance may be
// used from any number of goroutines.
//
// Conversion is total: every input yields some output, and characters without
// a mapping pass through unchanged. It is not round-trip exact; genuinely
// ambiguous letters outside the dictionary may diverge on the way back. That
// lossiness is an accepted property of the script pair, not a defect.
type Converter struct {
	tables *Tables
}

// NewConverter returns a converter backed by the given immutable tables.
func NewConverter(tables *Tables) *Converter {
	return &Converter{tables: tables}
}

// Convert transliterates text into the target script and reports how many
// generic grapheme rules were applied. Dictionary hits bypass rule
// application entirely and are not counted. Words already in the target
// script, and text with no script-alphabet characters at all, pass through
// unchanged.
func (c *Converter) Convert(text string, target core.ScriptKind) (string, int) {
	if target != core.ScriptCyrillic && target != core.ScriptToteZhazu {
		return text, 0
	}

	text = norm.NFC.String(text)

	var (
		out     strings.Builder
		applied int
	)

	for _, token := range tokenize(text) {
		if !token.word {
			out.WriteString(c.convertSeparator(token.text, target))

			continue
		}

		converted, count := c.convertWord(token.text, target)
		out.WriteString(converted)
		applied += count
	}

	return out.String(), applied
}

// token is a maximal run of word characters or of separator characters.
type token struct {
	text string
	word bool
}

// tokenize splits text into word-like units (letter runs, with hyphens kept
// inside words when flanked by letters) and separators, preserved verbatim.
func tokenize(text string) []token {
	runes := []rune(text)
	tokens := make([]token, 0, 8)

	isWordRune := func(i int) bool {
		r := runes[i]
		if unicode.IsLetter(r) || r == Hamza {
			return true
		}

		if r == '-' && i > 0 && i+1 < len(runes) {
			return unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1])
		}

		return false
	}

	start := 0

	for start < len(runes) {
		end := start
		inWord := isWordRune(start)

		for end < len(runes) && isWordRune(end) == inWord {
			end++
		}

		tokens = append(tokens, token{text: string(runes[start:end]), word: inWord})
		start = end
	}

	return tokens
}

func (c *Converter) convertSeparator(sep string, target core.ScriptKind) string {
	swap := c.tables.punctCyrToArab
	if target == core.ScriptCyrillic {
		swap = c.tables.punctArabToCyr
	}

	var out strings.Builder

	for _, r := range sep {
		if mapped, ok := swap[r]; ok {
			out.WriteRune(mapped)

			continue
		}

		out.WriteRune(r)
	}

	return out.String()
}

func (c *Converter) convertWord(word string, target core.ScriptKind) (string, int) {
	switch {
	case target == core.ScriptToteZhazu && wordScript(word) == core.ScriptCyrillic:
		return c.cyrillicWordToToteZhazu(word)
	case target == core.ScriptCyrillic && wordScript(word) == core.ScriptToteZhazu:
		return c.toteZhazuWordToCyrillic(word)
	default:
		// already in the target script, or not Kazakh at all
		return word, 0
	}
}

func wordScript(word string) core.ScriptKind {
	return Detect(word)
}

// cyrillicWordToToteZhazu converts one word unit. Whole-word dictionary
// lookup always wins over rule application: word-level context resolves the
// letters that are one-to-many across scripts. Tote Zhazu has no case
// concept, so the source case pattern is dropped.
func (c *Converter) cyrillicWordToToteZhazu(word string) (string, int) {
	lower := strings.ToLower(word)

	if resolved, ok := c.tables.cyrDict[lower]; ok {
		return resolved, 0
	}

	if strings.ContainsRune(lower, '-') {
		return c.convertHyphenated(lower, core.ScriptToteZhazu)
	}

	rc := RuleContext{
		AtWordStart: true,
		Prev:        0,
		Loanword:    c.tables.isLoanword(lower),
		Harmony:     c.tables.harmonyOf(lower),
	}

	converted, applied := applyRules(lower, c.tables.cyrToArab, c.tables.maxSrcCyr, rc)

	return c.applyHamzaRule(converted, lower), applied
}

// toteZhazuWordToCyrillic converts one word unit. The source script carries
// no case, so the rendering is lowercase.
func (c *Converter) toteZhazuWordToCyrillic(word string) (string, int) {
	if resolved, ok := c.tables.arabDict[word]; ok {
		return resolved, 0
	}

	if strings.ContainsRune(word, '-') {
		return c.convertHyphenated(word, core.ScriptCyrillic)
	}

	rc := RuleContext{
		AtWordStart: true,
		Prev:        0,
		Loanword:    false,
		Harmony:     toteZhazuHarmony(word),
	}

	return applyRules(word, c.tables.arabToCyr, c.tables.maxSrcArab, rc)
}

func (c *Converter) convertHyphenated(word string, target core.ScriptKind) (string, int) {
	parts := strings.Split(word, "-")
	converted := make([]string, len(parts))
	total := 0

	for i, part := range parts {
		var count int

		converted[i], count = c.convertWord(part, target)
		total += count
	}

	return strings.Join(converted, "-"), total
}

// applyRules walks the word left to right, preferring the longest matching
// source sequence at each position (maximal munch). Context-sensitive rules
// are evaluated before context-free ones at the same length because they are
// ordered first in the tables. Unmapped runes pass through unchanged.
func applyRules(word string, rules []Rule, maxSrc int, rc RuleContext) (string, int) {
	runes := []rune(word)

	var (
		out     strings.Builder
		applied int
	)

	pos := 0

	for pos < len(runes) {
		rule, matchLen := matchRule(runes, pos, rules, maxSrc, rc)
		if rule == nil {
			out.WriteRune(runes[pos])

			rc.Prev = runes[pos]
			rc.AtWordStart = false
			pos++

			continue
		}

		out.WriteString(rule.Dst)

		applied++
		rc.Prev = runes[pos+matchLen-1]
		rc.AtWordStart = false
		pos += matchLen
	}

	return out.String(), applied
}

func matchRule(runes []rune, pos int, rules []Rule, maxSrc int, rc RuleContext) (*Rule, int) {
	limit := len(runes) - pos
	if limit > maxSrc {
		limit = maxSrc
	}

	for length := limit; length >= 1; length-- {
		candidate := string(runes[pos : pos+length])

		for i := range rules {
			rule := &rules[i]
			if rule.Src != candidate {
				continue
			}

			if rule.When != nil && !rule.When(rc) {
				continue
			}

			return rule, length
		}
	}

	return nil, 0
}

// applyHamzaRule post-processes a converted Tote Zhazu word, adding or
// stripping the softness marker. Priority order mirrors Kazakh orthographic
// practice: loanwords never take hamza; native и-initial words always do;
// a к/г anywhere in the word forbids it; the е signal allows it only for
// word-initial ө/ү/і; otherwise the first syllable's harmony decides.
func (c *Converter) applyHamzaRule(arabicWord, sourceWord string) string {
	strip := func() string {
		return strings.ReplaceAll(arabicWord, string(Hamza), "")
	}
	ensure := func() string {
		if strings.HasPrefix(arabicWord, string(Hamza)) {
			return arabicWord
		}

		return string(Hamza) + arabicWord
	}

	if c.tables.isLoanword(sourceWord) {
		return strip()
	}

	if _, native := c.tables.iInitialNative[sourceWord]; native {
		return ensure()
	}

	if strings.ContainsAny(sourceWord, "кг") {
		return strip()
	}

	initialSoft := strings.ContainsAny(firstRune(sourceWord), "өүі")

	if strings.ContainsRune(sourceWord, 'е') {
		if initialSoft {
			return ensure()
		}

		return strip()
	}

	if initialSoft {
		return ensure()
	}

	if c.tables.harmonyOf(sourceWord) == HarmonyBack {
		return strip()
	}

	return ensure()
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}

	return ""
}
