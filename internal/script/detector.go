// Package script implements detection and bidirectional conversion between
// the two Kazakh writing systems: Cyrillic and the Arabic-derived Tote Zhazu
// script.
package script

import (
	"github.com/qazvoice/kaztts-service/internal/core"
)

// kazakhCyrillic holds every letter of the Kazakh Cyrillic alphabet,
// including the nine letters absent from Russian.
const kazakhCyrillic = "абвгғдеёжзийкқлмнңоөпрстуұүфхһцчшщъыіьэюя" +
	"АБВГҒДЕЁЖЗИЙКҚЛМНҢОӨПРСТУҰҮФХҺЦЧШЩЪЫІЬЭЮЯ"

var cyrillicSet = buildRuneSet(kazakhCyrillic)

// isToteZhazuRune reports whether r belongs to the Arabic block used by Tote
// Zhazu, including the high hamza (U+0674) used as the softness marker.
func isToteZhazuRune(r rune) bool {
	return r >= 0x0600 && r <= 0x06FF
}

func buildRuneSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}

	return set
}

// Detect classifies text by majority presence of script-alphabet characters.
// Text containing no characters from either alphabet (pure Latin, digits,
// punctuation) is reported as ScriptUnknown and passes through conversion
// unchanged. Detect is a pure function with no side effects.
func Detect(text string) core.ScriptKind {
	var cyrillicCount, arabicCount int

	for _, r := range text {
		if _, ok := cyrillicSet[r]; ok {
			cyrillicCount++

			continue
		}

		if isToteZhazuRune(r) {
			arabicCount++
		}
	}

	switch {
	case cyrillicCount == 0 && arabicCount == 0:
		return core.ScriptUnknown
	case arabicCount > cyrillicCount:
		return core.ScriptToteZhazu
	default:
		return core.ScriptCyrillic
	}
}
