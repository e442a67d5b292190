package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/JellyBot_Go/internal/battle"
	"github.com/osse101/JellyBot_Go/internal/database"
	"github.com/osse101/JellyBot_Go/internal/handler"
	"github.com/osse101/JellyBot_Go/internal/ledger"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/market"
	"github.com/osse101/JellyBot_Go/internal/metrics"
	"github.com/osse101/JellyBot_Go/internal/middleware"
	"github.com/osse101/JellyBot_Go/internal/progression"
)

// Config holds the HTTP listener settings.
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
	CatalogVersion string
}

// Services are the domain services the API exposes.
type Services struct {
	Ledger      ledger.Service
	Market      market.Service
	Battle      battle.Service
	Progression progression.Service
	// CooldownWindow resolves the configured window of an action.
	CooldownWindow func(action string) time.Duration
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(cfg Config, dbPool database.Pool, svcs Services) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(cfg.CatalogVersion))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		mountRoutes(r, svcs)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool: dbPool,
	}
}

func mountRoutes(r chi.Router, svcs Services) {
	ledgerH := handler.NewLedgerHandler(svcs.Ledger, svcs.CooldownWindow)
	marketH := handler.NewMarketHandler(svcs.Market)
	dungeonH := handler.NewDungeonHandler(svcs.Battle)
	progH := handler.NewProgressionHandler(svcs.Progression)

	r.Route("/market", func(r chi.Router) {
		r.Get("/", marketH.HandleMarketStatus)
		r.Get("/items/{item}/price", marketH.HandleGetPrice)
		r.Get("/items/{item}/history", marketH.HandlePriceHistory)
		r.Post("/tick", marketH.HandleTick)
	})
	r.Route("/stocks", func(r chi.Router) {
		r.Get("/", marketH.HandleListStocks)
		r.Get("/{stockID}/history", marketH.HandleStockHistory)
	})

	r.Route("/users/{"+middleware.URLParamUserID+"}", func(r chi.Router) {
		r.Use(middleware.Account)

		r.Get("/account", ledgerH.HandleGetAccount)
		r.Get("/balance", ledgerH.HandleGetBalance)
		r.Post("/balance", ledgerH.HandleUpdateBalance)
		r.Post("/balance/deduct", ledgerH.HandleDeductBalance)
		r.Post("/affinity", ledgerH.HandleUpdateAffinity)
		r.Post("/daily", ledgerH.HandleClaimDaily)
		r.Post("/transfer", ledgerH.HandleTransfer)

		r.Get("/inventory", ledgerH.HandleGetInventory)
		r.Route("/items", func(r chi.Router) {
			r.Post("/", ledgerH.HandleAddItem)
			r.Post("/remove", ledgerH.HandleRemoveItem)
			r.Post("/deduct", ledgerH.HandleDeductItems)
			r.Post("/use", ledgerH.HandleUseItem)
			r.Post("/gift", ledgerH.HandleGiftItem)
		})

		r.Route("/cooldowns/{action}", func(r chi.Router) {
			r.Get("/", ledgerH.HandleCheckCooldown)
			r.Put("/", ledgerH.HandleStartCooldown)
			r.Delete("/", ledgerH.HandleResetCooldown)
		})

		r.Get("/stocks", marketH.HandleHoldings)
		r.Post("/stocks/trade", marketH.HandleTrade)
		r.Post("/market/sell", marketH.HandleSell)
		r.Post("/shop/buy", ledgerH.HandleBuyItem)

		r.Route("/dungeon", func(r chi.Router) {
			r.Get("/preview", dungeonH.HandlePreview)
			r.Post("/start", dungeonH.HandleStart)
			r.Post("/action", dungeonH.HandleAction)
			r.Get("/session", dungeonH.HandleGetSession)
			r.Delete("/session", dungeonH.HandleDiscardSession)
			r.Get("/progress", dungeonH.HandleGetProgress)
			r.Get("/settings", dungeonH.HandleGetSettings)
			r.Put("/settings", dungeonH.HandleUpdateSettings)
			r.Get("/favorites", dungeonH.HandleListFavorites)
			r.Post("/favorites", dungeonH.HandleAddFavorite)
			r.Delete("/favorites", dungeonH.HandleRemoveFavorite)
			r.Post("/favorites/start", dungeonH.HandleStartFavorite)
			r.Get("/records", dungeonH.HandleListRecords)
		})

		r.Get("/upgrades", progH.HandleGetUpgradeLevels)
		r.Post("/upgrades/{track}", progH.HandleUpgradeTool)
		r.Post("/upgrades/{track}/attempt", progH.HandleAttemptUpgrade)
		r.Get("/enhancements", progH.HandleGetEnhancementLevels)
		r.Post("/enhancements", progH.HandleEnhanceArmor)

		r.Route("/equipment", func(r chi.Router) {
			r.Get("/", progH.HandleGetEquipment)
			r.Get("/stats", progH.HandleGearStats)
			r.Put("/{slot}", progH.HandleEquip)
			r.Delete("/{slot}", progH.HandleUnequip)
		})

		r.Get("/pets", progH.HandleListPets)
		r.Post("/pets", progH.HandleAdoptPet)
		r.Post("/pets/{petID}/xp", progH.HandlePetXP)
		r.Get("/jobs", progH.HandleListJobs)
		r.Post("/jobs/{job}/xp", progH.HandleJobXP)
	})
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if slices.Contains(QuietPaths, r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > MaxRequestIDLength {
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

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
