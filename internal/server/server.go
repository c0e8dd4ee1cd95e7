package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/achievement"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/clock"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/eligibility"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/handler"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/league"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/ledger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/metrics"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/mission"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/notify"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/rewards"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxUploadBytes int64
	RateLimits     RateLimits
	Version        string
	Environment    string
}

// Services are the engines exposed over HTTP. Stream is optional.
type Services struct {
	Participants ledger.Service
	Missions     mission.Service
	Eligibility  eligibility.Service
	Rewards      rewards.Service
	Leagues      league.Service
	Achievements achievement.Service
	Stream       *notify.Hub
	Health       handler.Pinger
	Clock        clock.Clock
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	if opts.RateLimits.MaxRequests == 0 {
		opts.RateLimits = DefaultRateLimits()
	}
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.RateLimits)

	r.Use(chimw.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(DefaultMaxBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Health))
	r.Get("/version", handler.HandleVersion(handler.NewVersionInfo(opts.Version, opts.Environment)))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	participants := handler.NewParticipantHandler(svc.Participants)
	missions := handler.NewMissionHandler(svc.Missions, opts.MaxUploadBytes)
	events := handler.NewEligibilityHandler(svc.Eligibility, opts.MaxUploadBytes)
	rewardsHandler := handler.NewRewardsHandler(svc.Rewards)
	leagues := handler.NewLeagueHandler(svc.Leagues, svc.Clock.Now)
	achievements := handler.NewAchievementHandler(svc.Achievements)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/participants", func(r chi.Router) {
			r.Post("/", participants.HandleRegister)
			r.Get("/{id}", participants.HandleGet)
			r.Get("/{id}/stats", participants.HandleStats)
			r.Get("/{participant}/evidences", missions.HandleListEvidence)
			r.Get("/{participant}/documents", events.HandleListDocuments)
		})

		r.Route("/missions", func(r chi.Router) {
			r.Get("/", missions.HandleList)
			r.Get("/{participant}/with-status", missions.HandleListWithStatus)
			r.Post("/{id}/complete", missions.HandleComplete)
			r.Get("/{id}/cooldown/{participant}", missions.HandleCooldown)
			r.Get("/{id}/attempts/{participant}", missions.HandleAttempts)
		})

		r.Route("/evidences", func(r chi.Router) {
			r.Post("/upload", missions.HandleUploadEvidence)
			r.Post("/{id}/review", missions.HandleReviewEvidence)
		})

		r.Route("/documents", func(r chi.Router) {
			r.Post("/upload", events.HandleUploadDocument)
			r.Post("/{id}/review", events.HandleReviewDocument)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", events.HandleListEvents)
			r.Get("/{id}", events.HandleGetEvent)
			r.Get("/{id}/eligibility/{participant}", events.HandleEvaluate)
			r.Get("/{id}/suggestions/{participant}", events.HandleSuggest)
		})

		r.Route("/rewards", func(r chi.Router) {
			r.Get("/", rewardsHandler.HandleListCatalog)
			r.Post("/{id}/redeem", rewardsHandler.HandleRedeem)
			r.Get("/redemptions/{participant}", rewardsHandler.HandleListRedemptions)
			r.Post("/redemptions/{code}/use", rewardsHandler.HandleMarkUsed)
		})

		r.Route("/leagues", func(r chi.Router) {
			r.Get("/", leagues.HandleList)
			r.Get("/{id}/leaderboard", leagues.HandleLeaderboard)
			r.Post("/{id}/join", leagues.HandleJoin)
		})

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", achievements.HandleList)
			r.Get("/eligible/{participant}", achievements.HandleEligible)
		})

		if svc.Stream != nil {
			r.Get("/notifications/stream", notify.StreamHandler(svc.Stream))
		}

		r.Route("/admin", func(r chi.Router) {
			r.Post("/leagues/rollover", leagues.HandleRollover)
			r.Post("/missions/cache/invalidate", missions.HandleInvalidateTemplates)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler returns the configured router
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush passes through so server-sent events reach the client
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start runs the server until Stop is called
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
