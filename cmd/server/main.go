// Package main provides the saturation properties HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"go.ngs.io/r134a-api/internal/config"
	"go.ngs.io/r134a-api/internal/domain"
	httpHandler "go.ngs.io/r134a-api/internal/http"
	"go.ngs.io/r134a-api/internal/observability"
	"go.ngs.io/r134a-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("r134a-api version %s\n", version)
		return
	}

	// Load configuration from environment.
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	if err := observability.SetupLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		logrus.Fatalf("failed to set up logger: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	logrus.Info("Starting R134a saturation API server...")
	logrus.WithFields(logrus.Fields{
		"addr":           cfg.HTTPAddr,
		"corsOrigins":    cfg.CORSAllowedOrigins,
		"shutdownPeriod": cfg.ShutdownTimeout,
	}).Info("config loaded")

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	// Initialize use case.
	saturationUC := usecase.NewSaturationUseCase(domain.R134a())

	// Setup router.
	router := httpHandler.SetupRouter(saturationUC, httpHandler.RouterOptions{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logrus.StandardLogger(),
		Metrics:        metrics,
		Gatherer:       prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		logrus.Infof("Server listening on %s", cfg.HTTPAddr)
		logrus.Info("Endpoints: GET / | POST /calculate | POST /v1/saturation | GET /v1/correlations | GET /health | GET /metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}

	logrus.Info("exiting")
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("R134a Saturation API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  r134a-server [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  HTTP_ADDR               Listen address (default: :$PORT)")
	fmt.Println("  LOG_LEVEL               trace, debug, info, warn, error (default: info)")
	fmt.Println("  LOG_FORMAT              text or json (default: text)")
	fmt.Println("  GIN_MODE                debug, release or test (default: release)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println("  SHUTDOWN_TIMEOUT        Graceful shutdown timeout (default: 5s)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server on custom port")
	fmt.Println("  PORT=3000 r134a-server")
	fmt.Println()
	fmt.Println("  # Calculate properties at 25 °C")
	fmt.Println(`  curl -X POST -d '{"temperature": 25}' http://localhost:8080/calculate`)
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET  /                   Web form")
	fmt.Println("  POST /calculate          Saturation properties for {\"temperature\": <°C>}")
	fmt.Println("  POST /v1/saturation      Same as /calculate")
	fmt.Println("  GET  /v1/correlations    Fitted equations and coefficients")
	fmt.Println("  GET  /health             Health check")
	fmt.Println("  GET  /metrics            Prometheus metrics")
	fmt.Println()
}
