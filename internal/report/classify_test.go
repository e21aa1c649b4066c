package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		line         string
		expectedKind Kind
		expectedText string
	}{
		{line: "**Workout Plan:**", expectedKind: KindWorkoutHeader, expectedText: "Workout Plan:"},
		{line: "  Workout Plan: 4 days a week ", expectedKind: KindWorkoutHeader, expectedText: "Workout Plan: 4 days a week"},
		{line: "**Workout Plan**:", expectedKind: KindWorkoutHeader, expectedText: "Workout Plan:"},
		{line: "**Dietary Plan:**", expectedKind: KindDietHeader, expectedText: "Dietary Plan:"},
		{line: "Dietary Plan:", expectedKind: KindDietHeader, expectedText: "Dietary Plan:"},
		{line: "**Tips:** stay hydrated", expectedKind: KindTipsHeader, expectedText: "Tips: stay hydrated"},
		{line: "**Day 1: Upper body**", expectedKind: KindDayHeader, expectedText: "Day 1: Upper body"},
		{line: "Day 1: Run 5k", expectedKind: KindDayHeader, expectedText: "Day 1: Run 5k"},
		{line: "Day2 rest", expectedKind: KindDayHeader, expectedText: "Day2 rest"},
		{line: "Daylight walks help", expectedKind: KindPlain, expectedText: "Daylight walks help"},
		{line: "* Day 1: Run 5k", expectedKind: KindBullet, expectedText: "Day 1: Run 5k"},
		{line: "*   Breakfast: eggs", expectedKind: KindBullet, expectedText: "Breakfast: eggs"},
		{line: "1. Something", expectedKind: KindNumbered, expectedText: "1. Something"},
		{line: "1. Day 3 plan", expectedKind: KindNumbered, expectedText: "1. Day 3 plan"},
		{line: "12. Stretch", expectedKind: KindNumbered, expectedText: "12. Stretch"},
		{line: "1 Something", expectedKind: KindPlain, expectedText: "1 Something"},
		{line: "workout plan:", expectedKind: KindPlain, expectedText: "workout plan:"},
		{line: "Remember to rest.", expectedKind: KindPlain, expectedText: "Remember to rest."},
		{line: "🌟 *“Keep going.”*", expectedKind: KindPlain, expectedText: "*“Keep going.”*"},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			b, ok := Classify(tc.line)
			require.True(t, ok)
			assert.Equal(t, tc.expectedKind, b.Kind, "got %s", b.Kind)
			assert.Equal(t, tc.expectedText, b.Text)
			assert.Equal(t, StyleFor(tc.expectedKind), b.Style)
		})
	}
}

func TestClassify_Blank(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		_, ok := Classify(line)
		assert.False(t, ok)
	}
}

func TestStyles(t *testing.T) {
	workout := StyleFor(KindWorkoutHeader)
	diet := StyleFor(KindDietHeader)
	tips := StyleFor(KindTipsHeader)
	assert.True(t, workout.Bold)
	assert.Equal(t, 16.0, workout.Size)
	assert.Zero(t, workout.Indent)
	assert.NotEqual(t, workout.Color, diet.Color)
	assert.NotEqual(t, diet.Color, tips.Color)
	assert.NotEqual(t, workout.Color, tips.Color)

	assert.Equal(t, 20.0, StyleFor(KindDayHeader).Indent)
	assert.Equal(t, 40.0, StyleFor(KindBullet).Indent)
	assert.Equal(t, "• ", StyleFor(KindBullet).Marker)
	assert.Equal(t, 20.0, StyleFor(KindNumbered).Indent)
	assert.Equal(t, 20.0, StyleFor(KindPlain).Indent)
}

func TestParse(t *testing.T) {
	blocks := Parse("**Workout Plan:**\r\n\n* Squats\n\n1. Warm up\nDrink water 💧")
	require.Len(t, blocks, 4)
	assert.Equal(t, KindWorkoutHeader, blocks[0].Kind)
	assert.Equal(t, KindBullet, blocks[1].Kind)
	assert.Equal(t, KindNumbered, blocks[2].Kind)
	assert.Equal(t, KindPlain, blocks[3].Kind)
	assert.Equal(t, "Drink water", blocks[3].Text)

	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n\n  \n"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, " Health café – “ok” • € ", sanitize("💪 Health café – “ok” • € 🌟"))
	assert.Equal(t, "caf\xe9 \x95 \x80", toWinAnsi("café • €"))
}
