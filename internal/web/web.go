package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/2beens/fitcoach/internal/fitness"
	"github.com/2beens/fitcoach/internal/report"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{"dashboard", "plan"}

type Page struct {
	Title  string
	Error  string
	Notice string
}

type DashboardData struct {
	Page
	Today   string
	Summary fitness.Summary
	Records []fitness.Record
}

type PlanLine struct {
	Class string
	Text  string
}

type PlanData struct {
	Page
	Goal     string
	Metrics  string
	Lines    []PlanLine
	ReportID string
}

// PlanLines classifies plan text the same way the PDF report does, for styling in HTML.
func PlanLines(planText string) []PlanLine {
	blocks := report.Parse(planText)
	lines := make([]PlanLine, len(blocks))
	for i, b := range blocks {
		lines[i] = PlanLine{Class: b.Kind.String(), Text: b.Style.Marker + b.Text}
	}
	return lines
}

type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	printer := message.NewPrinter(language.English)
	funcs := template.FuncMap{
		"num": func(n int) string { return printer.Sprintf("%d", n) },
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}
	return r, nil
}

// Render executes the page into w. Output is buffered so a template error never
// leaves a half written page.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page: %s", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute template %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
