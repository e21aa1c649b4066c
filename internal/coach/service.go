package coach

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/quotes"
	"github.com/2beens/fitcoach/internal/report"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	pdfKeyPrefix  = "pdf::"
	textKeyPrefix = "txt::"
)

// Plan is the outcome of a generation. Err is set when Text is the fallback message.
type Plan struct {
	Text     string
	ReportID string
	Err      error
}

func (p Plan) Failed() bool {
	return p.Err != nil
}

type Service struct {
	generator      Generator
	quotePicker    QuotePicker
	cache          *freecache.Cache
	cacheTTL       time.Duration
	metricsManager *metrics.Manager
}

func NewService(
	generator Generator,
	quotePicker QuotePicker,
	cache *freecache.Cache,
	cacheTTL time.Duration,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		generator:      generator,
		quotePicker:    quotePicker,
		cache:          cache,
		cacheTTL:       cacheTTL,
		metricsManager: metricsManager,
	}
}

func ValidateInput(goal, metrics string) error {
	if strings.TrimSpace(goal) == "" || strings.TrimSpace(metrics) == "" {
		return ErrInvalidInput
	}
	return nil
}

// GeneratePlan asks the generator for a plan and renders it as a report downloadable by owner.
// A failed generation degrades to FallbackMessage, which is rendered as well.
func (s *Service) GeneratePlan(ctx context.Context, owner, goal, metrics string) Plan {
	if err := ValidateInput(goal, metrics); err != nil {
		return Plan{Err: err}
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.generatePlan")
	defer span.End()

	start := time.Now()
	text, err := s.generator.Generate(ctx, goal, metrics)
	s.metricsManager.HistPlanDuration.Observe(time.Since(start).Seconds())
	s.metricsManager.CounterPlans.WithLabelValues(Outcome(err)).Inc()
	span.SetAttributes(attribute.String("plan.outcome", Outcome(err)))

	plan := Plan{Text: text}
	if err != nil {
		log.Errorf("generate plan [%s]: %s", Outcome(err), err)
		plan.Text = FallbackMessage
		plan.Err = err
		span.RecordError(err)
	} else if s.quotePicker != nil {
		plan.Text = text + "\n\n" + quotes.Motivational(s.quotePicker.RandomQuote())
	}

	reportID, err := s.storeReport(ctx, owner, plan.Text)
	if err != nil {
		log.Errorf("store report: %s", err)
		return plan
	}
	plan.ReportID = reportID

	return plan
}

func reportKey(prefix, owner, reportID string) []byte {
	return []byte(prefix + owner + "::" + reportID)
}

func (s *Service) storeReport(ctx context.Context, owner, planText string) (_ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "coach.storeReport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	pdf, err := report.Render(planText)
	if err != nil {
		return "", err
	}
	s.metricsManager.CounterReportsRendered.Inc()

	reportID := uuid.NewString()
	expire := int(s.cacheTTL.Seconds())
	err = s.cache.Set(reportKey(pdfKeyPrefix, owner, reportID), pdf, expire)
	if errors.Is(err, freecache.ErrLargeEntry) {
		// too big for a cache segment, keep the text and render again on download
		log.Debugf("report %s: pdf of %d bytes too large for cache, caching text", reportID, len(pdf))
		err = s.cache.Set(reportKey(textKeyPrefix, owner, reportID), []byte(planText), expire)
	}
	if err != nil {
		return "", err
	}

	return reportID, nil
}

// Report returns the PDF stored under reportID. Reports of other owners are not found.
func (s *Service) Report(ctx context.Context, owner, reportID string) (_ []byte, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "coach.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := uuid.Parse(reportID); err != nil {
		return nil, ErrReportNotFound
	}

	if pdf, err := s.cache.Get(reportKey(pdfKeyPrefix, owner, reportID)); err == nil {
		return pdf, nil
	}

	planText, err := s.cache.Get(reportKey(textKeyPrefix, owner, reportID))
	if err != nil {
		return nil, ErrReportNotFound
	}

	pdf, err := report.Render(string(planText))
	if err != nil {
		return nil, err
	}
	s.metricsManager.CounterReportsRendered.Inc()
	return pdf, nil
}
