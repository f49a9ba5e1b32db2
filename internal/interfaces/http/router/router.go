// Package router assembles the scoring service's gin engine and HTTP server:
// middleware pipeline, route table, metrics endpoint, and graceful shutdown.
package router

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JulienRip/riskbanking/internal/application/dto"
	"github.com/JulienRip/riskbanking/internal/config"
	"github.com/JulienRip/riskbanking/internal/infrastructure/cache"
	"github.com/JulienRip/riskbanking/internal/infrastructure/monitoring"
	"github.com/JulienRip/riskbanking/internal/interfaces/http/handlers"
	"github.com/JulienRip/riskbanking/internal/interfaces/http/middleware"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

// Router wires the HTTP surface of the scoring service.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	log            logger.Logger
	metrics        *monitoring.Metrics
	responseCache  cache.ResponseCache
	healthHandler  *handlers.HealthHandler
	predictHandler *handlers.PredictHandler
	datavizHandler *handlers.DatavizHandler
	server         *http.Server
}

// New creates the router and registers all routes.
func New(
	cfg *config.Config,
	log logger.Logger,
	metrics *monitoring.Metrics,
	responseCache cache.ResponseCache,
	healthHandler *handlers.HealthHandler,
	predictHandler *handlers.PredictHandler,
	datavizHandler *handlers.DatavizHandler,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	r := &Router{
		engine:         gin.New(),
		cfg:            cfg,
		log:            log.WithComponent("http"),
		metrics:        metrics,
		responseCache:  responseCache,
		healthHandler:  healthHandler,
		predictHandler: predictHandler,
		datavizHandler: datavizHandler,
	}
	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Observability(r.metrics, r.log))

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", constants.HeaderRequestID},
		ExposeHeaders: []string{constants.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}))

	// Liveness has no dataset dependency and is never cached.
	r.engine.GET("/health", r.healthHandler.HealthCheck)

	// The two dataset routes are memoized by full query string, the
	// visualization for longer than the prediction.
	r.engine.GET("/get_dataviz",
		middleware.CacheByQueryString(r.responseCache, r.cfg.Cache.DatavizCacheTTL(), "dataviz", r.metrics, r.log),
		r.datavizHandler.GetDataviz)
	r.engine.GET("/predict_default",
		middleware.CacheByQueryString(r.responseCache, r.cfg.Cache.PredictionCacheTTL(), "predict", r.metrics, r.log),
		r.predictHandler.PredictDefault)

	if r.cfg.Monitoring.MetricsEnabled {
		r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	if r.cfg.Monitoring.PprofEnabled {
		pprof.Register(r.engine)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "The requested resource was not found",
		})
	})
}

// Engine exposes the gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (r *Router) Start() error {
	r.server = &http.Server{
		Addr:           r.cfg.Server.Addr(),
		Handler:        r.engine,
		ReadTimeout:    time.Duration(r.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(r.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(r.cfg.Server.IdleTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	r.log.Info(context.Background(), "starting HTTP server", logger.String("address", r.cfg.Server.Addr()))

	go r.gracefulShutdown()

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (r *Router) gracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	r.log.Info(context.Background(), "shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := r.server.Shutdown(ctx); err != nil {
		r.log.Error(context.Background(), "server forced to shutdown", err)
	}
}

// Stop shuts the HTTP server down explicitly.
func (r *Router) Stop(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
