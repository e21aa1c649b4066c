package internal

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/charts"
	"github.com/2beens/fitcoach/internal/fitness"
	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/web"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	renderer       *web.Renderer
	sessions       *session.Manager
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewDashboardHandler(
	renderer *web.Renderer,
	sessions *session.Manager,
	metricsManager *metrics.Manager,
) *DashboardHandler {
	return &DashboardHandler{
		renderer:       renderer,
		sessions:       sessions,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (h *DashboardHandler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/", h.HandleDashboard).Methods("GET").Name("dashboard")
	r.HandleFunc("/metrics", h.HandleAddMetrics).Methods("POST").Name("add-metrics")
	r.HandleFunc("/charts/{kind}.svg", h.HandleChart).Methods("GET").Name("chart")
	r.HandleFunc("/session/end", h.HandleEndSession).Methods("POST").Name("end-session")
}

func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	s, ok := requestSession(w, r)
	if !ok {
		return
	}

	notice := ""
	switch r.URL.Query().Get("saved") {
	case "added":
		notice = "Data added successfully!"
	case "updated":
		notice = "Data updated successfully!"
	}

	h.renderDashboard(w, s, http.StatusOK, notice, "")
}

func (h *DashboardHandler) HandleAddMetrics(w http.ResponseWriter, r *http.Request) {
	s, ok := requestSession(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Errorf("add metrics failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	created, err := upsertFromForm(s.Store, r.PostForm)
	if err != nil {
		if errors.Is(err, fitness.ErrInvalidRecord) {
			h.renderDashboard(w, s, http.StatusBadRequest, "", err.Error())
			return
		}
		log.Errorf("add metrics: %s", err)
		http.Error(w, "failed to save metrics", http.StatusInternalServerError)
		return
	}

	op := "updated"
	if created {
		op = "added"
	}
	h.metricsManager.CounterMetricRecords.WithLabelValues(op).Inc()

	http.Redirect(w, r, "/?saved="+op, http.StatusSeeOther)
}

func (h *DashboardHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	s, ok := requestSession(w, r)
	if !ok {
		return
	}

	kind, err := charts.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, kind, s.Store.List()); err != nil {
		if errors.Is(err, charts.ErrNoData) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		log.Errorf("render %s chart: %s", kind, err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	pkg.WriteResponseBytesOK(w, pkg.ContentType.SVG, buf.Bytes())
}

func (h *DashboardHandler) HandleEndSession(w http.ResponseWriter, r *http.Request) {
	if s, ok := session.FromContext(r.Context()); ok {
		h.sessions.End(s.ID)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *DashboardHandler) renderDashboard(w http.ResponseWriter, s *session.Session, status int, notice, errMsg string) {
	data := web.DashboardData{
		Page: web.Page{
			Title:  "Dashboard",
			Notice: notice,
			Error:  errMsg,
		},
		Today:   h.now().Format(fitness.DateLayout),
		Summary: s.Store.Summary(),
		Records: s.Store.List(),
	}

	w.Header().Set("Content-Type", pkg.ContentType.HTML)
	w.WriteHeader(status)
	if err := h.renderer.Render(w, "dashboard", data); err != nil {
		log.Errorf("render dashboard: %s", err)
	}
}

// upsertFromForm reads the date, steps, sleep_hours and calories_burned form values.
func upsertFromForm(store *fitness.Store, form map[string][]string) (bool, error) {
	get := func(key string) string {
		if v := form[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	date, err := fitness.ParseDate(get("date"))
	if err != nil {
		return false, err
	}
	steps, err := strconv.Atoi(get("steps"))
	if err != nil {
		return false, fmt.Errorf("%w: steps [%s] not a number", fitness.ErrInvalidRecord, get("steps"))
	}
	sleepHours, err := strconv.ParseFloat(get("sleep_hours"), 64)
	if err != nil {
		return false, fmt.Errorf("%w: sleep hours [%s] not a number", fitness.ErrInvalidRecord, get("sleep_hours"))
	}
	calories, err := strconv.Atoi(get("calories_burned"))
	if err != nil {
		return false, fmt.Errorf("%w: calories [%s] not a number", fitness.ErrInvalidRecord, get("calories_burned"))
	}

	return store.Upsert(date, steps, sleepHours, calories)
}
