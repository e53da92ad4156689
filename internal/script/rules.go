package script

import "strings"

// Hamza is the high hamza (U+0674), prefixed to front-harmony Tote Zhazu
// words that carry no other softness signal.
const Hamza = 'ٴ'

// Harmony is the vowel class governing a word, decided from its first
// syllable. Tote Zhazu writes several vowel pairs with one letter; harmony
// picks the Cyrillic rendering on the way back.
type Harmony int

const (
	// HarmonyBack marks hard-vowel words (а, о, ұ, ы, у).
	HarmonyBack Harmony = iota
	// HarmonyFront marks soft-vowel words (ә, е, і, ө, ү).
	HarmonyFront
)

// RuleContext carries the word-level facts a context predicate may consult
// when deciding whether a rule applies at a position.
type RuleContext struct {
	AtWordStart bool
	Prev        rune // zero at word start
	Loanword    bool
	Harmony     Harmony
}

// Rule is one ordered transliteration rule: a source grapheme sequence, its
// target rendering, and an optional context predicate. Rules are static,
// loaded once at startup, and applied maximal-munch (longest matching source
// sequence first).
type Rule struct {
	Src  string
	Dst  string
	When func(RuleContext) bool // nil means context-free
}

// Tables is the immutable rule and dictionary configuration shared by every
// converter. Build it once during process initialization and pass it by
// reference; it is never mutated afterwards.
type Tables struct {
	cyrToArab []Rule
	arabToCyr []Rule

	cyrDict  map[string]string // lowercase Cyrillic word -> Tote Zhazu form
	arabDict map[string]string // Tote Zhazu word -> lowercase Cyrillic form

	frontVowels     map[rune]struct{}
	backVowels      map[rune]struct{}
	allVowels       map[rune]struct{}
	loanConsonants  map[rune]struct{}
	loanSuffixes    []string
	iInitialNative  map[string]struct{}
	softNumPrefixes []string

	punctCyrToArab map[rune]rune
	punctArabToCyr map[rune]rune

	maxSrcCyr  int // longest Src among cyrToArab rules, in runes
	maxSrcArab int
}

const (
	frontVowelRunes = "әеіөү"
	backVowelRunes  = "аоұыу"
)

// loanword consonants never occur in native Kazakh roots.
const loanConsonantRunes = "фвцч"

// NewTables builds the full static rule and dictionary tables. The tables
// are read-only after construction.
func NewTables() *Tables {
	tables := &Tables{
		cyrToArab:       nil,
		arabToCyr:       nil,
		cyrDict:         make(map[string]string, len(dictionaryEntries)),
		arabDict:        make(map[string]string, len(dictionaryEntries)),
		frontVowels:     buildRuneSet(frontVowelRunes),
		backVowels:      buildRuneSet(backVowelRunes),
		allVowels:       buildRuneSet(frontVowelRunes + backVowelRunes + "иэюяё"),
		loanConsonants:  buildRuneSet(loanConsonantRunes),
		loanSuffixes:    []string{"ция", "сия", "ия", "ология", "графия", "логия", "ика", "изм"},
		iInitialNative:  buildWordSet("иіс", "ине", "ит", "ию", "иір", "иіл", "ирі", "иық", "ин"),
		softNumPrefixes: []string{"бес", "екі", "жеті", "сегіз", "тоғыз"},
		punctCyrToArab:  map[rune]rune{',': '،', ';': '؛', '?': '؟'},
		punctArabToCyr:  map[rune]rune{'،': ',', '؛': ';', '؟': '?'},
		maxSrcCyr:       0,
		maxSrcArab:      0,
	}

	tables.cyrToArab = cyrillicRules()
	tables.arabToCyr = toteZhazuRules()
	tables.maxSrcCyr = longestSrc(tables.cyrToArab)
	tables.maxSrcArab = longestSrc(tables.arabToCyr)

	for _, entry := range dictionaryEntries {
		if _, exists := tables.cyrDict[entry.Cyrillic]; !exists {
			tables.cyrDict[entry.Cyrillic] = entry.Arabic
		}

		if _, exists := tables.arabDict[entry.Arabic]; !exists {
			tables.arabDict[entry.Arabic] = entry.Cyrillic
		}
	}

	return tables
}

// DictionarySize reports the number of whole-word disambiguation entries.
func (t *Tables) DictionarySize() int {
	return len(dictionaryEntries)
}

func buildWordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	return set
}

func longestSrc(rules []Rule) int {
	longest := 0

	for _, rule := range rules {
		n := len([]rune(rule.Src))
		if n > longest {
			longest = n
		}
	}

	return longest
}

// cyrillicRules returns the Cyrillic -> Tote Zhazu grapheme rules. Multi-rune
// and context-sensitive rules come first; within one source length the first
// rule whose predicate passes wins.
func cyrillicRules() []Rule {
	afterYod := func(rc RuleContext) bool { return rc.Prev == 'и' }
	native := func(rc RuleContext) bool { return !rc.Loanword }
	loan := func(rc RuleContext) bool { return rc.Loanword }

	rules := []Rule{
		// я after и contributes only the vowel: the preceding и already
		// rendered the yod.
		{Src: "я", Dst: "ا", When: afterYod},
		{Src: "я", Dst: "يا", When: nil},
		// ю is /ju/ in native words but plain /u/ in loanwords.
		{Src: "ю", Dst: "يۋ", When: native},
		{Src: "ю", Dst: "ۋ", When: loan},
		{Src: "и", Dst: "ىي", When: nil},
		{Src: "ц", Dst: "تس", When: nil},
		{Src: "щ", Dst: "شش", When: nil},
		{Src: "ё", Dst: "يو", When: nil},
		// hard and soft signs have no Tote Zhazu rendering
		{Src: "ь", Dst: "", When: nil},
		{Src: "ъ", Dst: "", When: nil},
	}

	single := map[string]string{
		"б": "ب", "в": "ۆ", "г": "گ", "ғ": "ع", "д": "د",
		"ж": "ج", "з": "ز", "й": "ي", "к": "ك", "қ": "ق",
		"л": "ل", "м": "م", "н": "ن", "ң": "ڭ", "п": "پ",
		"р": "ر", "с": "س", "т": "ت", "ф": "ف", "х": "ح",
		"һ": "ھ", "ч": "چ", "ш": "ش",
		"а": "ا", "ә": "ا", "е": "ە", "о": "و", "ө": "و",
		"у": "ۋ", "ұ": "ۇ", "ү": "ۇ", "ы": "ى", "і": "ى",
		"э": "ە",
	}
	for src, dst := range single {
		rules = append(rules, Rule{Src: src, Dst: dst, When: nil})
	}

	return rules
}

// toteZhazuRules returns the Tote Zhazu -> Cyrillic grapheme rules. The four
// harmony-ambiguous vowel letters each carry two rules selected by the word's
// harmony class; this tie-break is deterministic but, absent a dictionary
// hit, not guaranteed phonetically exact.
func toteZhazuRules() []Rule {
	front := func(rc RuleContext) bool { return rc.Harmony == HarmonyFront }
	back := func(rc RuleContext) bool { return rc.Harmony == HarmonyBack }

	rules := []Rule{
		{Src: "تس", Dst: "ц", When: nil},
		{Src: "شش", Dst: "щ", When: nil},
		{Src: "يۋ", Dst: "ю", When: nil},
		{Src: "يو", Dst: "ё", When: nil},
		{Src: "يا", Dst: "я", When: nil},
		{Src: "ىي", Dst: "и", When: nil},
		// the hamza itself carries no letter; it only signals softness,
		// consumed during harmony detection
		{Src: string(Hamza), Dst: "", When: nil},
		{Src: "ا", Dst: "ә", When: front},
		{Src: "ا", Dst: "а", When: back},
		{Src: "و", Dst: "ө", When: front},
		{Src: "و", Dst: "о", When: back},
		{Src: "ۇ", Dst: "ү", When: front},
		{Src: "ۇ", Dst: "ұ", When: back},
		{Src: "ى", Dst: "і", When: front},
		{Src: "ى", Dst: "ы", When: back},
	}

	single := map[string]string{
		"ب": "б", "ۆ": "в", "گ": "г", "ع": "ғ", "د": "д",
		"ج": "ж", "ز": "з", "ي": "й", "ك": "к", "ق": "қ",
		"ل": "л", "م": "м", "ن": "н", "ڭ": "ң", "پ": "п",
		"ر": "р", "س": "с", "ت": "т", "ۋ": "у", "ف": "ф",
		"ح": "х", "ھ": "һ", "چ": "ч", "ش": "ш", "ە": "е",
	}
	for src, dst := range single {
		rules = append(rules, Rule{Src: src, Dst: dst, When: nil})
	}

	return rules
}

// isLoanword reports whether a Cyrillic word shows loanword features: a
// non-native consonant, a borrowed suffix, a vowel cluster, or a run of three
// consonants. Loanwords never take the hamza marker.
func (t *Tables) isLoanword(word string) bool {
	if _, native := t.iInitialNative[word]; native {
		return false
	}

	for _, r := range word {
		if _, ok := t.loanConsonants[r]; ok {
			return true
		}
	}

	for _, suffix := range t.loanSuffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}

	if t.hasVowelCluster(word) {
		return true
	}

	return hasTripleConsonant(word, t.allVowels)
}

// hasVowelCluster detects adjacent vowels, which native Kazakh forbids. The
// иі and іи sequences are legal and excluded first.
func (t *Tables) hasVowelCluster(word string) bool {
	cleaned := strings.ReplaceAll(word, "иі", "_")
	cleaned = strings.ReplaceAll(cleaned, "іи", "_")

	prevVowel := false

	for _, r := range cleaned {
		_, isVowel := t.allVowels[r]
		if isVowel && prevVowel {
			return true
		}

		prevVowel = isVowel
	}

	return false
}

func hasTripleConsonant(word string, vowels map[rune]struct{}) bool {
	run := 0

	for _, r := range word {
		if !isCyrillicLetter(r) {
			run = 0

			continue
		}

		if _, isVowel := vowels[r]; isVowel {
			run = 0

			continue
		}

		run++
		if run >= 3 {
			return true
		}
	}

	return false
}

func isCyrillicLetter(r rune) bool {
	_, ok := cyrillicSet[r]

	return ok
}

// harmonyOf decides a Cyrillic word's vowel class from its first syllable.
// Strong consonant signals outrank vowels: қ/ғ only occur in hard words,
// к/г only in soft ones. Soft numeral prefixes on hard roots defer to the
// root's first vowel.
func (t *Tables) harmonyOf(word string) Harmony {
	if strings.ContainsAny(word, "қғ") {
		return HarmonyBack
	}

	if strings.ContainsAny(word, "кг") {
		return HarmonyFront
	}

	if _, native := t.iInitialNative[word]; native {
		return HarmonyFront
	}

	for _, prefix := range t.softNumPrefixes {
		if strings.HasPrefix(word, prefix) && len(word) > len(prefix) {
			if h, found := t.firstVowelHarmony(word[len(prefix):]); found {
				return h
			}
		}
	}

	if h, found := t.firstVowelHarmony(word); found {
		return h
	}

	return HarmonyBack
}

func (t *Tables) firstVowelHarmony(word string) (Harmony, bool) {
	for _, r := range word {
		if _, ok := t.frontVowels[r]; ok {
			return HarmonyFront, true
		}

		if _, ok := t.backVowels[r]; ok {
			return HarmonyBack, true
		}
	}

	return HarmonyBack, false
}

// toteZhazuHarmony decides a Tote Zhazu word's vowel class. The hamza marker
// and the inherently soft letters ك, گ and ە signal a front word; ق and ع
// signal a hard one; anything else defaults to hard. This is the documented
// deterministic fallback for words outside the dictionary.
func toteZhazuHarmony(word string) Harmony {
	if strings.ContainsRune(word, Hamza) {
		return HarmonyFront
	}

	if strings.ContainsAny(word, "قع") {
		return HarmonyBack
	}

	if strings.ContainsAny(word, "كگە") {
		return HarmonyFront
	}

	return HarmonyBack
}
