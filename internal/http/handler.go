package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go.ngs.io/r134a-api/internal/domain"
	"go.ngs.io/r134a-api/internal/observability"
	"go.ngs.io/r134a-api/internal/usecase"
)

// Handler handles HTTP requests for saturation properties.
type Handler struct {
	saturationUC *usecase.SaturationUseCase
	metrics      *observability.Metrics
}

// NewHandler creates a new HTTP handler.
func NewHandler(saturationUC *usecase.SaturationUseCase, metrics *observability.Metrics) *Handler {
	return &Handler{
		saturationUC: saturationUC,
		metrics:      metrics,
	}
}

// temperatureInput accepts a JSON number or a numeric string.
type temperatureInput string

// UnmarshalJSON keeps the raw text of non-string values so that parsing
// errors surface as input errors rather than body errors.
func (t *temperatureInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = temperatureInput(s)
		return nil
	}
	*t = temperatureInput(data)
	return nil
}

// CalculateRequest is the body of POST /calculate.
type CalculateRequest struct {
	Temperature *temperatureInput `json:"temperature"`
}

// Calculate handles POST /calculate.
func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	if req.Temperature == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "temperature not provided"})
		return
	}

	// Execute use case.
	response, err := h.saturationUC.Execute(usecase.SaturationRequest{
		Temperature: string(*req.Temperature),
	})
	h.metrics.ObserveCalculation(err, response != nil && response.Extrapolated)
	if err != nil {
		switch domain.KindOf(err) {
		case domain.KindInputFormat, domain.KindDomain:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("internal server error: %v", err)})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCorrelations handles GET /v1/correlations.
func (h *Handler) GetCorrelations(c *gin.Context) {
	c.JSON(http.StatusOK, h.saturationUC.Correlations())
}

// Index serves the web form.
func (h *Handler) Index(c *gin.Context) {
	corr := h.saturationUC.Correlation()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Refrigerant": corr.Refrigerant,
		"MinC":        corr.Fitted.MinC,
		"MaxC":        corr.Fitted.MaxC,
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
