package script_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qazvoice/kaztts-service/internal/core"
	"github.com/qazvoice/kaztts-service/internal/script"
)

func TestDetectClassifiesText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want core.ScriptKind
	}{
		{name: "cyrillic sentence", text: "Сәлем, қалайсың?", want: core.ScriptCyrillic},
		{name: "tote zhazu sentence", text: "سالەم، قالايسىڭ؟", want: core.ScriptToteZhazu},
		{name: "empty", text: "", want: core.ScriptUnknown},
		{name: "latin only", text: "hello world", want: core.ScriptUnknown},
		{name: "digits and punctuation", text: "123, 456!", want: core.ScriptUnknown},
		{name: "mixed with cyrillic majority", text: "Қазақстан ج", want: core.ScriptCyrillic},
		{name: "mixed with arabic majority", text: "قازاقستان ж", want: core.ScriptToteZhazu},
		{name: "hamza counts as tote zhazu", text: "ٴبىر", want: core.ScriptToteZhazu},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, script.Detect(tc.text))
		})
	}
}
