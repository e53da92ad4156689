package segment

import (
	"strings"
	"unicode"

	"github.com/qazvoice/kaztts-service/internal/core"
)

// DefaultMaxRunes is the per-segment length ceiling used when no explicit
// limit is configured. It matches the input window the speech model handles
// without quality loss.
const DefaultMaxRunes = 80

// Segmenter splits normalized text into synthesis-sized segments. Splitting
// is hierarchical: sentence boundaries first, then phrase delimiters, then
// whitespace, and a hard rune cut only for a single word beyond the ceiling.
// Concatenating every segment's Text and Separator in order reconstructs the
// normalized input exactly.
type Segmenter struct {
	maxRunes int
}

// NewSegmenter creates a segmenter with the given per-segment rune ceiling.
// Non-positive values fall back to DefaultMaxRunes.
func NewSegmenter(maxRunes int) *Segmenter {
	if maxRunes <= 0 {
		maxRunes = DefaultMaxRunes
	}

	return &Segmenter{maxRunes: maxRunes}
}

// piece is an intermediate split unit before index assignment.
type piece struct {
	text     string
	sep      string
	boundary core.BoundaryKind
}

// Split segments normalized text. Whitespace-only input yields no segments.
// Leading whitespace is dropped; everything after the first non-space rune is
// preserved across Text and Separator fields.
func (s *Segmenter) Split(text string) []core.TextSegment {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if text == "" {
		return nil
	}

	var pieces []piece

	for _, sentence := range splitSentences(text) {
		if runeLen(sentence.text) <= s.maxRunes {
			pieces = append(pieces, sentence)

			continue
		}

		pieces = append(pieces, s.refine(sentence)...)
	}

	segments := make([]core.TextSegment, 0, len(pieces))

	for _, p := range pieces {
		if strings.TrimSpace(p.text) == "" {
			// fold a whitespace-only remnant into the previous separator
			if n := len(segments); n > 0 {
				segments[n-1].Separator += p.text + p.sep
			}

			continue
		}

		segments = append(segments, core.TextSegment{
			Text:      p.text,
			Separator: p.sep,
			Index:     len(segments),
			Boundary:  p.boundary,
		})
	}

	return segments
}

// sentence-ending punctuation for both scripts
func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '؟', '…':
		return true
	default:
		return false
	}
}

// closers that may trail sentence punctuation and stay with the sentence
func isClosing(r rune) bool {
	switch r {
	case '"', '\'', ')', ']':
		return true
	default:
		return false
	}
}

func isPhraseDelimiter(r rune) bool {
	switch r {
	case ',', ';', ':', '،', '؛':
		return true
	default:
		return false
	}
}

// splitSentences cuts text after sentence-ending punctuation (with any
// trailing closers) or at a line break. The punctuation stays in the sentence
// text; the following whitespace becomes its separator.
func splitSentences(text string) []piece {
	runes := []rune(text)

	var sentences []piece

	start := 0
	i := 0

	for i < len(runes) {
		switch {
		case isSentenceEnd(runes[i]):
			end := i + 1
			for end < len(runes) && (isSentenceEnd(runes[end]) || isClosing(runes[end])) {
				end++
			}

			sepEnd := end
			for sepEnd < len(runes) && unicode.IsSpace(runes[sepEnd]) {
				sepEnd++
			}

			sentences = append(sentences, piece{
				text:     string(runes[start:end]),
				sep:      string(runes[end:sepEnd]),
				boundary: core.BoundarySentence,
			})

			start = sepEnd
			i = sepEnd
		case runes[i] == '\n':
			sepEnd := i
			for sepEnd < len(runes) && unicode.IsSpace(runes[sepEnd]) {
				sepEnd++
			}

			sentences = append(sentences, piece{
				text:     string(runes[start:i]),
				sep:      string(runes[i:sepEnd]),
				boundary: core.BoundarySentence,
			})

			start = sepEnd
			i = sepEnd
		default:
			i++
		}
	}

	if start < len(runes) {
		sentences = append(sentences, piece{
			text:     string(runes[start:]),
			sep:      "",
			boundary: core.BoundarySentence,
		})
	}

	return sentences
}

// refine breaks one oversized sentence at phrase delimiters, greedily packing
// the parts back up to the ceiling, and falls through to whitespace splitting
// for any part still too long.
func (s *Segmenter) refine(sentence piece) []piece {
	phrases := s.pack(splitPhrases(sentence))

	var out []piece

	for _, phrase := range phrases {
		if runeLen(phrase.text) <= s.maxRunes {
			out = append(out, phrase)

			continue
		}

		out = append(out, s.splitWords(phrase)...)
	}

	return out
}

// splitPhrases cuts a sentence after each phrase delimiter. The delimiter
// stays with the preceding phrase; trailing whitespace becomes its separator.
// The final phrase inherits the sentence's separator and boundary kind.
func splitPhrases(sentence piece) []piece {
	runes := []rune(sentence.text)

	var phrases []piece

	start := 0

	for i := 0; i < len(runes); i++ {
		if !isPhraseDelimiter(runes[i]) {
			continue
		}

		end := i + 1

		sepEnd := end
		for sepEnd < len(runes) && unicode.IsSpace(runes[sepEnd]) {
			sepEnd++
		}

		phrases = append(phrases, piece{
			text:     string(runes[start:end]),
			sep:      string(runes[end:sepEnd]),
			boundary: core.BoundaryForced,
		})

		start = sepEnd
		i = sepEnd - 1
	}

	if start < len(runes) {
		phrases = append(phrases, piece{
			text:     string(runes[start:]),
			sep:      "",
			boundary: core.BoundaryForced,
		})
	}

	if len(phrases) == 0 {
		return []piece{sentence}
	}

	last := &phrases[len(phrases)-1]
	last.sep += sentence.sep
	last.boundary = sentence.boundary

	return phrases
}

// pack greedily merges adjacent pieces while the combined text stays within
// the ceiling, so phrase splitting never produces needlessly short segments.
func (s *Segmenter) pack(pieces []piece) []piece {
	if len(pieces) == 0 {
		return pieces
	}

	packed := []piece{pieces[0]}

	for _, next := range pieces[1:] {
		cur := &packed[len(packed)-1]

		combined := cur.text + cur.sep + next.text
		if runeLen(combined) <= s.maxRunes {
			cur.text = combined
			cur.sep = next.sep
			cur.boundary = next.boundary

			continue
		}

		packed = append(packed, next)
	}

	return packed
}

// splitWords cuts an oversized phrase at whitespace, packing words greedily.
// A single word longer than the ceiling is hard-cut at the ceiling.
func (s *Segmenter) splitWords(phrase piece) []piece {
	words := splitOnSpace(phrase.text)

	var out []piece

	cur := piece{text: "", sep: "", boundary: core.BoundaryForced}

	flush := func() {
		if cur.text != "" {
			out = append(out, cur)
		}

		cur = piece{text: "", sep: "", boundary: core.BoundaryForced}
	}

	for _, w := range words {
		if runeLen(w.text) > s.maxRunes {
			flush()

			for _, cut := range hardCut(w.text, s.maxRunes) {
				out = append(out, piece{text: cut, sep: "", boundary: core.BoundaryForced})
			}

			out[len(out)-1].sep = w.space

			continue
		}

		switch {
		case cur.text == "":
			cur.text = w.text
		case runeLen(cur.text+cur.sep+w.text) <= s.maxRunes:
			cur.text += cur.sep + w.text
		default:
			flush()

			cur.text = w.text
		}

		cur.sep = w.space
	}

	flush()

	if len(out) == 0 {
		return []piece{phrase}
	}

	last := &out[len(out)-1]
	last.sep += phrase.sep
	last.boundary = phrase.boundary

	return out
}

// spacedWord is one whitespace-delimited word plus the whitespace run that
// followed it.
type spacedWord struct {
	text  string
	space string
}

func splitOnSpace(text string) []spacedWord {
	runes := []rune(text)

	var words []spacedWord

	i := 0

	for i < len(runes) {
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}

		spaceStart := i
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}

		words = append(words, spacedWord{
			text:  string(runes[start:spaceStart]),
			space: string(runes[spaceStart:i]),
		})
	}

	return words
}

func hardCut(word string, maxRunes int) []string {
	runes := []rune(word)

	var cuts []string

	for len(runes) > maxRunes {
		cuts = append(cuts, string(runes[:maxRunes]))
		runes = runes[maxRunes:]
	}

	if len(runes) > 0 {
		cuts = append(cuts, string(runes))
	}

	return cuts
}

func runeLen(s string) int {
	return len([]rune(s))
}
