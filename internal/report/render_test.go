package report

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pageObject = regexp.MustCompile(`/Type /Page\n`)

func renderPlain(t *testing.T, planText string) (Layout, string) {
	t.Helper()
	var buf bytes.Buffer
	layout, err := renderTo(&buf, planText, false)
	require.NoError(t, err)
	return layout, buf.String()
}

func assertValidPDF(t *testing.T, doc string, pages int) {
	t.Helper()
	assert.True(t, strings.HasPrefix(doc, "%PDF-"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(doc), "%%EOF"))
	assert.Len(t, pageObject.FindAllString(doc, -1), pages)
	assert.Contains(t, doc, "/MediaBox [0 0 612.00 792.00]")
}

func TestRender_Empty(t *testing.T) {
	layout, doc := renderPlain(t, "")

	assert.Equal(t, 1, layout.Pages)
	assert.Empty(t, layout.Lines)
	assertValidPDF(t, doc, 1)
	assert.Contains(t, doc, "(Health & Fitness Report) Tj")
	assert.Contains(t, doc, "(Your Personalized Health Journey) Tj")
	assert.Equal(t, 1, strings.Count(doc, "(Generated with love by SYNTAX SQUAD) Tj"))
}

func TestRender_FourLineSample(t *testing.T) {
	layout, doc := renderPlain(t, "**Workout Plan:**\n* Day 1: Run 5k\n**Dietary Plan:**\n* Breakfast: eggs")

	assert.Equal(t, 1, layout.Pages)
	assertValidPDF(t, doc, 1)

	workout := strings.Index(doc, "(\xbb Workout Plan:) Tj")
	run := strings.Index(doc, "(\x95 Day 1: Run 5k) Tj")
	diet := strings.Index(doc, "(\xbb Dietary Plan:) Tj")
	eggs := strings.Index(doc, "(\x95 Breakfast: eggs) Tj")
	require.True(t, workout > 0 && run > 0 && diet > 0 && eggs > 0)
	assert.True(t, workout < run && run < diet && diet < eggs)
}

func TestRender_MultiPageFooterOnEveryPage(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		sb.WriteString("* keep moving every day\n")
	}
	layout, doc := renderPlain(t, sb.String())

	require.Greater(t, layout.Pages, 1)
	assertValidPDF(t, doc, layout.Pages)
	assert.Equal(t, layout.Pages, strings.Count(doc, "(Generated with love by SYNTAX SQUAD) Tj"))
	assert.Equal(t, 1, strings.Count(doc, "(Health & Fitness Report) Tj"))
	assert.GreaterOrEqual(t, strings.Count(doc, "(\x95 keep moving every day) Tj"), 120)
}

func TestRender_FallbackText(t *testing.T) {
	layout, doc := renderPlain(t, "Sorry, there was an error generating the response.")

	require.Len(t, layout.Lines, 1)
	assert.Equal(t, KindPlain, layout.Lines[0].Kind)
	assertValidPDF(t, doc, 1)
	assert.Contains(t, doc, "(Sorry, there was an error generating the response.) Tj")
}

func TestRender_Compressed(t *testing.T) {
	pdf, err := Render("**Tips:**\n* Sleep 8h 😴")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	assert.Len(t, pageObject.FindAll(pdf, -1), 1)
}
