package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brirusapps/waterpic-core/internal/adapters/handler/http/middleware"
	"github.com/brirusapps/waterpic-core/internal/core/domain"
	"github.com/brirusapps/waterpic-core/internal/core/services"
)

type IntakeHandler struct {
	svc *services.IntakeService
}

func NewIntakeHandler(svc *services.IntakeService) *IntakeHandler {
	return &IntakeHandler{
		svc: svc,
	}
}

type adjustRequest struct {
	Day     string  `json:"day"`
	DeltaML float64 `json:"delta_ml"`
}

func (h *IntakeHandler) RegisterRoutes(router *gin.RouterGroup) {
	intake := router.Group("/intake")
	{
		intake.POST("", h.Adjust)
		intake.GET("", h.ListRange)
		intake.GET("/sync", h.Sync)
		intake.DELETE("", h.Reset)
	}
}

// Adjust applies a signed delta to one day. Clients send positive
// deltas for taps and negative ones for undo.
func (h *IntakeHandler) Adjust(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	input := services.AdjustInput{
		UserID:  userID,
		Day:     domain.DateKey(req.Day),
		DeltaML: req.DeltaML,
	}

	result, err := h.svc.Adjust(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *IntakeHandler) ListRange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	to := domain.NewDateKey(time.Now().UTC())
	from := to.AddDays(-30)

	if t := c.Query("to"); t != "" {
		parsed, err := domain.ParseDateKey(t)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		to = parsed
	}
	if f := c.Query("from"); f != "" {
		parsed, err := domain.ParseDateKey(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}

	list, err := h.svc.ListRange(c.Request.Context(), userID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *IntakeHandler) Sync(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	sinceStr := c.Query("since")
	var since time.Time

	if sinceStr != "" {
		var err error
		since, err = time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use RFC3339)"})
			return
		}
	}

	changes, err := h.svc.GetDelta(c.Request.Context(), userID, since)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"changes":   changes,
		"timestamp": time.Now().UTC(),
	})
}

// Reset is the "erase all data" flow: ledger and settings both go.
func (h *IntakeHandler) Reset(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.svc.Reset(c.Request.Context(), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})

	case errors.Is(err, domain.ErrInvalidDateKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})

	case errors.Is(err, domain.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})

	case errors.Is(err, domain.ErrIntakeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
