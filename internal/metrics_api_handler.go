package internal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitcoach/internal/fitness"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type recordJSON struct {
	Date           string  `json:"date"`
	Steps          int     `json:"steps"`
	SleepHours     float64 `json:"sleepHours"`
	CaloriesBurned int     `json:"caloriesBurned"`
}

func toRecordJSON(r fitness.Record) recordJSON {
	return recordJSON{
		Date:           r.DateString(),
		Steps:          r.Steps,
		SleepHours:     r.SleepHours,
		CaloriesBurned: r.CaloriesBurned,
	}
}

type MetricsApiHandler struct {
	metricsManager *metrics.Manager
}

func NewMetricsApiHandler(metricsManager *metrics.Manager) *MetricsApiHandler {
	return &MetricsApiHandler{
		metricsManager: metricsManager,
	}
}

func (h *MetricsApiHandler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/metrics", h.HandleList).Methods("GET").Name("api-list-metrics")
	r.HandleFunc("/api/metrics", h.HandleUpsert).Methods("POST").Name("api-upsert-metrics")
	r.HandleFunc("/api/metrics/summary", h.HandleSummary).Methods("GET").Name("api-metrics-summary")
}

func (h *MetricsApiHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	s, ok := requestSession(w, r)
	if !ok {
		return
	}

	records := s.Store.List()
	resp := struct {
		Records []recordJSON `json:"records"`
		Total   int          `json:"total"`
	}{
		Records: make([]recordJSON, 0, len(records)),
		Total:   len(records),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, toRecordJSON(rec))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *MetricsApiHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	s, ok := requestSession(w, r)
	if !ok {
		return
	}

	var req recordJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	date, err := fitness.ParseDate(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := s.Store.Upsert(date, req.Steps, req.SleepHours, req.CaloriesBurned)
	if err != nil {
		if errors.Is(err, fitness.ErrInvalidRecord) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("api upsert metrics: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	op, status := "updated", http.StatusOK
	if created {
		op, status = "added", http.StatusCreated
	}
	h.metricsManager.CounterMetricRecords.WithLabelValues(op).Inc()

	req.Date = date.Format(fitness.DateLayout)
	writeJSON(w, status, struct {
		Created bool       `json:"created"`
		Record  recordJSON `json:"record"`
	}{
		Created: created,
		Record:  req,
	})
}

func (h *MetricsApiHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	s, ok := requestSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Store.Summary())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
