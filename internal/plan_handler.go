package internal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitcoach/internal/coach"
	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/web"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	reportFileName      = "health_fitness_report.pdf"
	missingInputWarning = "Please enter both your goal and fitness metrics."
)

type PlanHandler struct {
	service  *coach.Service
	renderer *web.Renderer
}

func NewPlanHandler(
	service *coach.Service,
	renderer *web.Renderer,
) *PlanHandler {
	return &PlanHandler{
		service:  service,
		renderer: renderer,
	}
}

// SetupRoutes registers the plan views on a router that already attaches the session.
func (h *PlanHandler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/plan", h.HandlePlanForm).Methods("GET").Name("plan-form")
	r.HandleFunc("/plan/{id}/pdf", h.HandleReportDownload).Methods("GET").Name("download-report")
}

// SetupGenerateRoutes registers the plan generation routes, each wrapped by wrap,
// which must attach the session.
func (h *PlanHandler) SetupGenerateRoutes(r *mux.Router, wrap func(next http.Handler) http.Handler) {
	r.Handle("/plan", wrap(http.HandlerFunc(h.HandleGeneratePlan))).Methods("POST").Name("generate-plan")
	r.Handle("/api/plan", wrap(http.HandlerFunc(h.HandleAPIGeneratePlan))).Methods("POST").Name("api-generate-plan")
}

func (h *PlanHandler) HandlePlanForm(w http.ResponseWriter, r *http.Request) {
	s, ok := requestSession(w, r)
	if !ok {
		return
	}

	data := web.PlanData{
		Page:    web.Page{Title: "Personal Coach"},
		Metrics: s.Store.Summary().Describe(),
	}
	if last, ok := s.LastPlan(); ok {
		data.Goal = last.Goal
		data.Metrics = last.Metrics
		data.Lines = web.PlanLines(last.Text)
		data.ReportID = last.ReportID
	}

	h.renderPlan(w, http.StatusOK, data)
}

func (h *PlanHandler) HandleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	s, ok := requestSession(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Errorf("generate plan failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	goal := r.PostForm.Get("goal")
	metricsText := r.PostForm.Get("metrics")
	data := web.PlanData{
		Page:    web.Page{Title: "Personal Coach"},
		Goal:    goal,
		Metrics: metricsText,
	}

	if err := coach.ValidateInput(goal, metricsText); err != nil {
		data.Error = missingInputWarning
		h.renderPlan(w, http.StatusBadRequest, data)
		return
	}

	plan := h.service.GeneratePlan(r.Context(), s.ID, goal, metricsText)
	s.SetLastPlan(session.LastPlan{
		Goal:     goal,
		Metrics:  metricsText,
		Text:     plan.Text,
		ReportID: plan.ReportID,
		Failed:   plan.Failed(),
	})

	data.Lines = web.PlanLines(plan.Text)
	data.ReportID = plan.ReportID
	h.renderPlan(w, http.StatusOK, data)
}

func (h *PlanHandler) HandleReportDownload(w http.ResponseWriter, r *http.Request) {
	s, ok := requestSession(w, r)
	if !ok {
		return
	}

	reportID := mux.Vars(r)["id"]
	pdf, err := h.service.Report(r.Context(), s.ID, reportID)
	if err != nil {
		if errors.Is(err, coach.ErrReportNotFound) {
			http.Error(w, "report not found or expired", http.StatusNotFound)
			return
		}
		log.Errorf("get report %s: %s", reportID, err)
		http.Error(w, "failed to get report", http.StatusInternalServerError)
		return
	}

	pkg.WriteAttachment(w, pkg.ContentType.PDF, reportFileName, pdf)
}

type planRequest struct {
	Goal    string `json:"goal"`
	Metrics string `json:"metrics"`
}

type planResponse struct {
	Text      string `json:"text"`
	ReportID  string `json:"reportId,omitempty"`
	ReportURL string `json:"reportUrl,omitempty"`
	Fallback  bool   `json:"fallback"`
	Outcome   string `json:"outcome"`
}

func (h *PlanHandler) HandleAPIGeneratePlan(w http.ResponseWriter, r *http.Request) {
	s, ok := requestSession(w, r)
	if !ok {
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := coach.ValidateInput(req.Goal, req.Metrics); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan := h.service.GeneratePlan(r.Context(), s.ID, req.Goal, req.Metrics)
	s.SetLastPlan(session.LastPlan{
		Goal:     req.Goal,
		Metrics:  req.Metrics,
		Text:     plan.Text,
		ReportID: plan.ReportID,
		Failed:   plan.Failed(),
	})

	resp := planResponse{
		Text:     plan.Text,
		ReportID: plan.ReportID,
		Fallback: plan.Failed(),
		Outcome:  coach.Outcome(plan.Err),
	}
	if plan.ReportID != "" {
		resp.ReportURL = "/plan/" + plan.ReportID + "/pdf"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PlanHandler) renderPlan(w http.ResponseWriter, status int, data web.PlanData) {
	w.Header().Set("Content-Type", pkg.ContentType.HTML)
	w.WriteHeader(status)
	if err := h.renderer.Render(w, "plan", data); err != nil {
		log.Errorf("render plan page: %s", err)
	}
}
