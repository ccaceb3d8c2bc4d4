package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"instructrisk/internal/config"
	"instructrisk/internal/evaluate"
	"instructrisk/internal/httputil"
	"instructrisk/internal/metrics"
)

const errEmptyInstructions = "instructions cannot be empty"

// EvaluateRequest is the JSON body for POST /api/evaluate.
type EvaluateRequest struct {
	Instructions string `json:"instructions" binding:"required"`
}

// BatchItem is one entry of a batch request. ID is echoed back unchanged.
// Empty instructions are rejected per item so the error can name the item.
type BatchItem struct {
	ID           string `json:"id"`
	Instructions string `json:"instructions"`
}

// BatchRequest is the JSON body for POST /api/evaluate/batch.
type BatchRequest struct {
	Items []BatchItem `json:"items" binding:"required,min=1"`
}

// BatchResult pairs an item's ID with its evaluation.
type BatchResult struct {
	ID     string                    `json:"id"`
	Result evaluate.EvaluationResult `json:"result"`
}

// BatchResponse lists results in request order.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// LevelsResponse is the JSON response for GET /api/risk-levels.
type LevelsResponse struct {
	Levels []evaluate.LevelInfo `json:"levels"`
}

// Health handles GET /health.
func Health(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName, "version": version})
	}
}

// EvaluateHandler handles POST /api/evaluate.
func EvaluateHandler(ev *evaluate.Evaluator, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxEvaluateBytes)

		var req EvaluateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			if isValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": errEmptyInstructions})
				return
			}
			status, msg := httputil.DecodeErrorStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		if strings.TrimSpace(req.Instructions) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errEmptyInstructions})
			return
		}

		result := ev.Evaluate(req.Instructions)
		m.Observe(result, metrics.SourceAPI)
		c.JSON(http.StatusOK, result)
	}
}

// BatchHandler handles POST /api/evaluate/batch.
func BatchHandler(ev *evaluate.Evaluator, m *metrics.Metrics, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxBatchBytes)

		var req BatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			if isValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "items must be a non-empty list"})
				return
			}
			status, msg := httputil.DecodeErrorStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		if len(req.Items) > limit {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d items allowed", limit)})
			return
		}
		texts := make([]string, len(req.Items))
		for i, item := range req.Items {
			if strings.TrimSpace(item.Instructions) == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("item %s: %s", itemName(item, i), errEmptyInstructions)})
				return
			}
			texts[i] = item.Instructions
		}

		results, err := ev.EvaluateAll(c.Request.Context(), texts)
		if err != nil {
			// The client went away; there is nobody left to answer.
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		resp := BatchResponse{Results: make([]BatchResult, len(results))}
		for i, r := range results {
			m.Observe(r, metrics.SourceBatch)
			resp.Results[i] = BatchResult{ID: req.Items[i].ID, Result: r}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// LevelsHandler handles GET /api/risk-levels.
func LevelsHandler(ev *evaluate.Evaluator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, LevelsResponse{Levels: ev.Catalog().Levels()})
	}
}

// SchemaHandler handles GET /api/schema.
func SchemaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, evaluate.ResultSchema())
	}
}

func isValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func itemName(item BatchItem, i int) string {
	if item.ID != "" {
		return fmt.Sprintf("%q", item.ID)
	}
	return fmt.Sprintf("#%d", i)
}
