package segment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazvoice/kaztts-service/internal/core"
	"github.com/qazvoice/kaztts-service/internal/segment"
)

func joinSegments(segments []core.TextSegment) string {
	var b strings.Builder

	for _, seg := range segments {
		b.WriteString(seg.Text)
		b.WriteString(seg.Separator)
	}

	return b.String()
}

func TestSplitEmptyInput(t *testing.T) {
	t.Parallel()

	s := segment.NewSegmenter(0)

	assert.Nil(t, s.Split(""))
	assert.Nil(t, s.Split("   \n  "))
}

func TestSplitShortTextIsOneSegment(t *testing.T) {
	t.Parallel()

	s := segment.NewSegmenter(0)

	segments := s.Split("сәлем әлем")
	require.Len(t, segments, 1)
	assert.Equal(t, "сәлем әлем", segments[0].Text)
	assert.Empty(t, segments[0].Separator)
	assert.Equal(t, core.BoundarySentence, segments[0].Boundary)
}

func TestSplitAtSentencePunctuation(t *testing.T) {
	t.Parallel()

	s := segment.NewSegmenter(0)

	segments := s.Split("Бірінші сөйлем. Екінші сөйлем!")
	require.Len(t, segments, 2)

	assert.Equal(t, "Бірінші сөйлем.", segments[0].Text)
	assert.Equal(t, " ", segments[0].Separator)
	assert.Equal(t, core.BoundarySentence, segments[0].Boundary)
	assert.Equal(t, 0, segments[0].Index)

	assert.Equal(t, "Екінші сөйлем!", segments[1].Text)
	assert.Empty(t, segments[1].Separator)
	assert.Equal(t, 1, segments[1].Index)
}

func TestSplitAtArabicQuestionMark(t *testing.T) {
	t.Parallel()

	s := segment.NewSegmenter(0)

	segments := s.Split("قالايسىڭ؟ جاقسى.")
	require.Len(t, segments, 2)
	assert.Equal(t, "قالايسىڭ؟", segments[0].Text)
	assert.Equal(t, "جاقسى.", segments[1].Text)
}

func TestSplitAtLineBreak(t *testing.T) {
	t.Parallel()

	s := segment.NewSegmenter(0)

	segments := s.Split("бірінші жол\nекінші жол")
	require.Len(t, segments, 2)
	assert.Equal(t, "бірінші жол", segments[0].Text)
	assert.Equal(t, "\n", segments[0].Separator)
	assert.Equal(t, core.BoundarySentence, segments[0].Boundary)
	assert.Equal(t, "екінші жол", segments[1].Text)
}

func TestSplitOversizedSentenceAtPhrases(t *testing.T) {
	t.Parallel()

	s := segment.NewSegmenter(20)

	segments := s.Split("алма, алмұрт, шие және қарбыз бар.")
	require.Len(t, segments, 2)

	assert.Equal(t, "алма, алмұрт,", segments[0].Text)
	assert.Equal(t, " ", segments[0].Separator)
	assert.Equal(t, core.BoundaryForced, segments[0].Boundary)

	assert.Equal(t, "шие және қарбыз бар.", segments[1].Text)
	assert.Equal(t, core.BoundarySentence, segments[1].Boundary)
}

func TestSplitOversizedPhraseAtWhitespace(t *testing.T) {
	t.Parallel()

	s := segment.NewSegmenter(10)

	segments := s.Split("бұл өте ұзын сөйлем еді")
	require.Len(t, segments, 3)

	assert.Equal(t, "бұл өте", segments[0].Text)
	assert.Equal(t, core.BoundaryForced, segments[0].Boundary)
	assert.Equal(t, "ұзын", segments[1].Text)
	assert.Equal(t, "сөйлем еді", segments[2].Text)
	assert.Equal(t, core.BoundarySentence, segments[2].Boundary)
}

func TestSplitHardCutsGiantWord(t *testing.T) {
	t.Parallel()

	s := segment.NewSegmenter(5)

	segments := s.Split("тауқұдіретті")
	require.Len(t, segments, 3)
	assert.Equal(t, "тауқұ", segments[0].Text)
	assert.Equal(t, "дірет", segments[1].Text)
	assert.Equal(t, "ті", segments[2].Text)
	assert.Equal(t, core.BoundarySentence, segments[2].Boundary)
}

func TestSplitReconstructsInput(t *testing.T) {
	t.Parallel()

	const input = "Бірінші сөйлем, үтірмен. Екінші сөйлем!\nҮшінші жол: тізім, тағы сөздер және ұзағырақ құйрық осында."

	for _, maxRunes := range []int{5, 12, 30, 80} {
		s := segment.NewSegmenter(maxRunes)

		segments := s.Split(input)
		require.NotEmpty(t, segments)
		assert.Equal(t, input, joinSegments(segments), "ceiling %d", maxRunes)

		for i, seg := range segments {
			assert.Equal(t, i, seg.Index)
			assert.NotEmpty(t, strings.TrimSpace(seg.Text))
		}
	}
}
