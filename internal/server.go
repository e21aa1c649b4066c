package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitcoach/internal/coach"
	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/middleware"
	"github.com/2beens/fitcoach/internal/quotes"
	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/web"
	"github.com/2beens/fitcoach/pkg"

	"github.com/coocood/freecache"
	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	megabyte               = 1024 * 1024
	sessionCleanupInterval = time.Minute
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	sessions     *session.Manager
	coachService *coach.Service
	renderer     *web.Renderer
	rateLimiter  middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()

	cancelBackground context.CancelFunc
	backgroundDone   chan struct{}
}

type NewServerParams struct {
	Config                  *config.Config
	LLMApiKey               string
	VersionInfo             string
	HoneycombTracingEnabled bool
	// Generator replaces the LLM client when set.
	Generator coach.Generator
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitcoach", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitcoach")
	if err != nil {
		return nil, err
	}

	generator := params.Generator
	if generator == nil {
		if params.LLMApiKey == "" {
			log.Errorf("llm api key not set, every plan will fall back, use FITCOACH_LLM_API_KEY env var to set it")
		}
		generator = coach.NewLLMClient(coach.LLMClientParams{
			BaseURL: cfg.LLMBaseURL,
			APIKey:  params.LLMApiKey,
			Model:   cfg.LLMModel,
			Timeout: cfg.PlanTimeout(),
			HTTPClient: &http.Client{
				Transport: otelhttp.NewTransport(http.DefaultTransport),
			},
		})
	}

	quotesManager, err := quotes.Load(cfg.QuotesCsvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create quotes manager: %w", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	reportsCache := freecache.NewCache(cfg.ReportCacheSizeMB * megabyte)

	s := &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
		sessions:    session.NewManager(cfg.SessionTTL(), metricsManager),
		coachService: coach.NewService(
			generator,
			quotesManager,
			reportsCache,
			cfg.ReportCacheTTL(),
			metricsManager,
		),
		renderer:    renderer,
		rateLimiter: middleware.NewPerMinuteLimiter(cfg.PlansAllowedPerMin),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	log.Debugf("server created, llm model [%s], plan timeout [%s]", cfg.LLMModel, cfg.PlanTimeout())
	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitcoach-router"))

	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")

	// plan generation is limited per client address before the session is resolved,
	// a client dropping the cookie gets a new session but not a new budget
	planHandler := NewPlanHandler(s.coachService, s.renderer)
	rateLimit := middleware.RateLimit(s.rateLimiter, s.planRateLimitKey, s.metricsManager)
	withSession := s.sessions.Middleware()
	planHandler.SetupGenerateRoutes(r, func(next http.Handler) http.Handler {
		return rateLimit(withSession(next))
	})

	// everything else belongs to a dashboard session
	app := r.PathPrefix("/").Subrouter()
	app.Use(withSession)

	dashboardHandler := NewDashboardHandler(s.renderer, s.sessions, s.metricsManager)
	dashboardHandler.SetupRoutes(app)

	metricsApiHandler := NewMetricsApiHandler(s.metricsManager)
	metricsApiHandler.SetupRoutes(app)

	planHandler.SetupRoutes(app)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) planRateLimitKey(r *http.Request) string {
	return "plan::" + pkg.ClientIP(r, s.config.TrustProxyHeaders)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	msg := "ok"
	if s.versionInfo != "" {
		msg = "ok " + s.versionInfo
	}
	pkg.WriteTextResponseOK(w, msg)
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler: router,
		Addr:    ipAndPort,
		// plan generation may take up to the llm timeout
		WriteTimeout: s.config.PlanTimeout() + 15*time.Second,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.startBackground(ctx)
	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) startBackground(ctx context.Context) {
	bgCtx, cancel := context.WithCancel(ctx)
	s.cancelBackground = cancel
	s.backgroundDone = make(chan struct{})
	go func() {
		defer close(s.backgroundDone)
		s.sessions.Run(bgCtx, sessionCleanupInterval)
	}()
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.cancelBackground != nil {
		s.cancelBackground()
		<-s.backgroundDone
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
