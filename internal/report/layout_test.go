package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasurer gives every rune the same width, scaled by font size.
type fixedMeasurer struct{}

func (fixedMeasurer) Width(text string, style Style) float64 {
	return runeWidth(text) * style.Size * 0.5
}

func TestPaginate_FourLineSample(t *testing.T) {
	blocks := Parse("**Workout Plan:**\n* Day 1: Run 5k\n**Dietary Plan:**\n* Breakfast: eggs")
	layout := Paginate(blocks, NewMeasurer())

	assert.Equal(t, 1, layout.Pages)
	require.Len(t, layout.Lines, 4)

	kinds := []Kind{KindWorkoutHeader, KindBullet, KindDietHeader, KindBullet}
	texts := []string{"» Workout Plan:", "• Day 1: Run 5k", "» Dietary Plan:", "• Breakfast: eggs"}
	for i, line := range layout.Lines {
		assert.Equal(t, kinds[i], line.Kind)
		assert.Equal(t, texts[i], line.Text)
		assert.Equal(t, 1, line.Page)
	}
	assert.NotEqual(t, layout.Lines[0].Style.Color, layout.Lines[2].Style.Color)
	assert.Equal(t, Margin+40, layout.Lines[1].X)
	assert.Equal(t, Margin+40, layout.Lines[3].X)
	assert.Equal(t, Margin, layout.Lines[0].X)

	// baselines advance by the line height of the previous block
	assert.Equal(t, BodyTop, layout.Lines[0].Y)
	assert.Equal(t, BodyTop+18, layout.Lines[1].Y)
	assert.Equal(t, BodyTop+18+14, layout.Lines[2].Y)
	assert.Equal(t, BodyTop+18+14+18, layout.Lines[3].Y)
}

func TestPaginate_Empty(t *testing.T) {
	layout := Paginate(nil, NewMeasurer())
	assert.Equal(t, 1, layout.Pages)
	assert.Empty(t, layout.Lines)
}

func TestPaginate_Overflow(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("plain line\n")
	}
	layout := Paginate(Parse(sb.String()), fixedMeasurer{})

	require.Greater(t, layout.Pages, 1)
	require.Len(t, layout.Lines, 100)

	firstOnPage2 := -1
	for i, line := range layout.Lines {
		if line.Page == 2 {
			firstOnPage2 = i
			break
		}
	}
	require.Greater(t, firstOnPage2, 0)

	last := layout.Lines[firstOnPage2-1]
	assert.Equal(t, 1, last.Page)
	assert.LessOrEqual(t, last.Y, BodyBottom)
	assert.Greater(t, last.Y+last.Style.LineHeight, BodyBottom)
	assert.Equal(t, Margin, layout.Lines[firstOnPage2].Y)

	// page 1 holds every line that fits between the title block and the bottom margin
	bodyHeight := BodyBottom - BodyTop
	expectedOnFirst := int(bodyHeight/14) + 1
	assert.Len(t, layout.LinesOn(1), expectedOnFirst)

	for _, line := range layout.Lines {
		assert.GreaterOrEqual(t, line.Y, Margin)
		assert.LessOrEqual(t, line.Y, BodyBottom)
		assert.Equal(t, StyleFor(KindPlain), line.Style)
	}
}

func TestPaginate_WrappedLinesKeepStyle(t *testing.T) {
	long := "* " + strings.Repeat("squat ", 200)
	layout := Paginate(Parse(long), NewMeasurer())

	require.Greater(t, len(layout.Lines), 1)
	for i, line := range layout.Lines {
		assert.Equal(t, KindBullet, line.Kind)
		assert.Equal(t, Margin+40, line.X)
		if i == 0 {
			assert.True(t, strings.HasPrefix(line.Text, "• squat"))
		} else {
			assert.False(t, strings.HasPrefix(line.Text, "•"))
		}
	}
}
