package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brirusapps/waterpic-core/internal/adapters/handler/http/middleware"
	"github.com/brirusapps/waterpic-core/internal/core/domain"
	"github.com/brirusapps/waterpic-core/internal/core/services"
)

type SettingsHandler struct {
	svc *services.SettingsService
}

func NewSettingsHandler(svc *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

type updateSettingsRequest struct {
	DailyGoalML         float64 `json:"daily_goal_ml" binding:"required"`
	PreferredAmountML   float64 `json:"preferred_amount_ml" binding:"required"`
	ReminderStartHour   int     `json:"reminder_start_hour"`
	ReminderEndHour     int     `json:"reminder_end_hour"`
	ReminderIntervalHrs int     `json:"reminder_interval_hours"`
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Update)
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	settings, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	input := services.UpdateSettingsInput{
		UserID:              userID,
		DailyGoalML:         req.DailyGoalML,
		PreferredAmountML:   req.PreferredAmountML,
		ReminderStartHour:   req.ReminderStartHour,
		ReminderEndHour:     req.ReminderEndHour,
		ReminderIntervalHrs: req.ReminderIntervalHrs,
	}

	settings, err := h.svc.Update(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDailyGoal),
			errors.Is(err, domain.ErrInvalidPreferredAmount),
			errors.Is(err, domain.ErrInvalidReminderWindow),
			errors.Is(err, domain.ErrInvalidReminderStep):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			handleError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, settings)
}
