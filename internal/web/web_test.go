package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/2beens/fitcoach/internal/fitness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Dashboard(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "dashboard", DashboardData{
		Page:  Page{Title: "Dashboard"},
		Today: "2024-02-01",
		Summary: fitness.Summary{
			AvgSteps:      12345,
			AvgSleepHours: 7.25,
			TotalCalories: 1234567,
			DaysTracked:   2,
		},
		Records: []fitness.Record{
			{Date: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), Steps: 10000, SleepHours: 7, CaloriesBurned: 2000},
		},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Dashboard | Health &amp; Fitness Personal Coach</title>")
	assert.Contains(t, html, "12,345")
	assert.Contains(t, html, "1,234,567")
	assert.Contains(t, html, "2024-01-31")
	assert.Contains(t, html, `value="2024-02-01"`)
	assert.Contains(t, html, "/charts/steps.svg")
}

func TestRenderer_DashboardEmpty(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "dashboard", DashboardData{Page: Page{Title: "Dashboard", Error: "bad <input>"}}))
	html := buf.String()
	assert.Contains(t, html, "Welcome! Start by adding your daily metrics")
	assert.NotContains(t, html, "/charts/steps.svg")
	assert.Contains(t, html, "bad &lt;input&gt;")
}

func TestRenderer_Plan(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "plan", PlanData{
		Page:     Page{Title: "Personal Coach"},
		Goal:     "run a marathon",
		Metrics:  "5000 steps",
		Lines:    PlanLines("**Workout Plan:**\n* Day 1: <b>Run</b>"),
		ReportID: "abc",
	}))
	html := buf.String()
	assert.Contains(t, html, `<div class="workout-header">» Workout Plan:</div>`)
	assert.Contains(t, html, `<div class="bullet">• Day 1: &lt;b&gt;Run&lt;/b&gt;</div>`)
	assert.Contains(t, html, `href="/plan/abc/pdf"`)
	assert.Contains(t, html, "run a marathon")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "nope", nil))
}
