package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"go.ngs.io/r134a-api/internal/observability"
	"go.ngs.io/r134a-api/internal/usecase"
)

//go:embed web
var webFS embed.FS

// RouterOptions holds the optional collaborators of the router.
type RouterOptions struct {
	// AllowedOrigins restricts CORS. Empty allows all origins.
	AllowedOrigins []string
	Logger         logrus.FieldLogger
	Metrics        *observability.Metrics
	// Gatherer backs /metrics. The route is skipped when nil.
	Gatherer prometheus.Gatherer
}

// SetupRouter creates and configures the Gin router.
func SetupRouter(saturationUC *usecase.SaturationUseCase, opts RouterOptions) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(requestLogger(opts.Logger))
	router.Use(gin.CustomRecovery(recoverJSON(opts.Logger)))
	if opts.Metrics != nil {
		router.Use(requestTimer(opts.Metrics))
	}

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()
	if len(opts.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = opts.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	// Web form.
	router.SetHTMLTemplate(template.Must(template.ParseFS(webFS, "web/*.html")))
	router.StaticFileFS("/static/script.js", "web/script.js", http.FS(webFS))

	// Create handler.
	handler := NewHandler(saturationUC, opts.Metrics)

	router.GET("/", handler.Index)
	router.POST("/calculate", handler.Calculate)

	// API v1 routes.
	v1 := router.Group("/v1")
	v1.POST("/saturation", handler.Calculate)
	v1.GET("/correlations", handler.GetCorrelations)

	// Health check.
	router.GET("/health", handler.HealthCheck)

	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	return router
}
