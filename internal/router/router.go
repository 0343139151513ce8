// Package router assembles the middleware chain, health endpoints and the
// role-grouped API routes.
package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/vetdesk/vetclinic-api/internal/middleware"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit  rate.Limit
	RateBurst  int
	Timeout    time.Duration
	CORSConfig middleware.CORSConfig
	StaticDir  string
}

type Router struct {
	engine   *gin.Engine
	db       *sqlx.DB
	handlers []Handler
	metrics  *routerMetrics
	registry *prometheus.Registry
	config   Config
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(db *sqlx.DB, config Config, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	registry := prometheus.NewRegistry()
	metrics := initRouterMetrics(registry)

	r := &Router{
		engine:   engine,
		db:       db,
		handlers: handlers,
		metrics:  metrics,
		registry: registry,
		config:   config,
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.Timeout}),
	)

	engine.Use(middleware.CORS(config.CORSConfig))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api")

	r.setupHealthCheck(api)

	for _, h := range r.handlers {
		h.RegisterRoutes(api)
	}

	// Uploaded pet images are served back as static files.
	r.engine.Static("/static", r.config.StaticDir)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		health.GET("/ready", func(c *gin.Context) {
			if err := r.db.Ping(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		health.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(registry *prometheus.Registry) *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "vetclinic_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vetclinic_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vetclinic_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
	registry.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
