package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brirusapps/waterpic-core/internal/adapters/handler/http/middleware"
	"github.com/brirusapps/waterpic-core/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats/overview", h.GetOverview)
	r.GET("/widget/snapshot", h.GetWidgetSnapshot)
}

// GetOverview backs the statistics screen: graph buckets, trailing
// progress, achievement percentages and streaks in one payload.
func (h *StatsHandler) GetOverview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	overview, err := h.svc.GetOverview(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve statistics"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetWidgetSnapshot serves the widget's compact state blob. It reads
// the debounced snapshot, not the ledger, so responses stay cheap.
func (h *StatsHandler) GetWidgetSnapshot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	snap, err := h.svc.GetSnapshot(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve snapshot"})
		return
	}

	c.JSON(http.StatusOK, snap)
}
