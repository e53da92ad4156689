package script_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazvoice/kaztts-service/internal/core"
	"github.com/qazvoice/kaztts-service/internal/script"
)

func newConverter(t *testing.T) *script.Converter {
	t.Helper()

	return script.NewConverter(script.NewTables())
}

func TestTablesCarryDictionary(t *testing.T) {
	t.Parallel()

	tables := script.NewTables()
	require.GreaterOrEqual(t, tables.DictionarySize(), 300)
}

func TestConvertCyrillicToToteZhazu(t *testing.T) {
	t.Parallel()

	conv := newConverter(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "dictionary word", text: "сәлем", want: "سالەم"},
		{name: "dictionary word capitalized", text: "Сәлем", want: "سالەم"},
		{name: "dictionary proper noun", text: "Қазақстан", want: "قازاقستان"},
		{name: "dictionary word with hamza", text: "білім", want: "ٴبىلىم"},
		{name: "rule path back harmony", text: "заттар", want: "زاتتار"},
		{name: "rule path front harmony gets hamza", text: "өзендер", want: "ٴوزەندەر"},
		{name: "rule path with e signal no hamza", text: "ерте", want: "ەرتە"},
		{name: "loanword never takes hamza", text: "цифр", want: "تسىيفر"},
		{name: "punctuation swapped", text: "қалайсың, дос?", want: "قالايسىڭ، دوس؟"},
		{name: "hyphenated compound per part", text: "бір-екі", want: "ٴبىر-ەكى"},
		{name: "latin passthrough", text: "hello 123", want: "hello 123"},
		{name: "mixed sentence keeps latin", text: "сәлем CPU", want: "سالەم CPU"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, _ := conv.Convert(tc.text, core.ScriptToteZhazu)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConvertToteZhazuToCyrillic(t *testing.T) {
	t.Parallel()

	conv := newConverter(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "dictionary word", text: "سالەم", want: "сәлем"},
		{name: "dictionary proper noun", text: "قازاقستان", want: "қазақстан"},
		{name: "rule path back harmony", text: "زاتتار", want: "заттар"},
		{name: "hamza selects front renderings", text: "ٴوزەندەر", want: "өзендер"},
		{name: "hard consonant selects back renderings", text: "قالايسىڭ", want: "қалайсың"},
		{name: "punctuation swapped back", text: "سالەم، دوس؟", want: "сәлем, дос?"},
		{name: "hyphenated compound per part", text: "ٴبىر-ەكى", want: "бір-екі"},
		{name: "latin passthrough", text: "hello 123", want: "hello 123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, _ := conv.Convert(tc.text, core.ScriptCyrillic)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConvertCountsOnlyRuleApplications(t *testing.T) {
	t.Parallel()

	conv := newConverter(t)

	_, dictHits := conv.Convert("сәлем", core.ScriptToteZhazu)
	assert.Zero(t, dictHits)

	_, ruleHits := conv.Convert("заттар", core.ScriptToteZhazu)
	assert.Positive(t, ruleHits)
}

func TestConvertIsIdempotentOnTargetScript(t *testing.T) {
	t.Parallel()

	conv := newConverter(t)

	const cyrillic = "Сәлем, әлем!"

	got, applied := conv.Convert(cyrillic, core.ScriptCyrillic)
	assert.Equal(t, cyrillic, got)
	assert.Zero(t, applied)

	const arabic = "سالەم، الەم!"

	got, applied = conv.Convert(arabic, core.ScriptToteZhazu)
	assert.Equal(t, arabic, got)
	assert.Zero(t, applied)
}

func TestConvertUnknownTargetPassesThrough(t *testing.T) {
	t.Parallel()

	conv := newConverter(t)

	got, applied := conv.Convert("сәлем", core.ScriptUnknown)
	assert.Equal(t, "сәлем", got)
	assert.Zero(t, applied)
}

func TestConvertRoundTripOnRulePath(t *testing.T) {
	t.Parallel()

	conv := newConverter(t)

	// Words whose letters map one-to-one survive a full round trip even
	// without a dictionary entry.
	words := []string{"заттар", "дос", "өзендер"}

	for _, word := range words {
		arabic, _ := conv.Convert(word, core.ScriptToteZhazu)
		back, _ := conv.Convert(arabic, core.ScriptCyrillic)
		assert.Equal(t, word, back, "round trip of %q via %q", word, arabic)
	}
}
