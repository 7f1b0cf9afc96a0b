package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/worklog-api/internal/constants"
	"github.com/yukikurage/worklog-api/internal/dto"
	apierrors "github.com/yukikurage/worklog-api/internal/errors"
	"github.com/yukikurage/worklog-api/internal/middleware"
	"github.com/yukikurage/worklog-api/internal/services"
)

// StatisticsHandler serves period aggregates and their digest.
type StatisticsHandler struct {
	statisticsService *services.StatisticsService
	digestService     *services.DigestService
}

// NewStatisticsHandler creates a new StatisticsHandler. digestService may be
// nil, which disables the digest endpoint.
func NewStatisticsHandler(statisticsService *services.StatisticsService, digestService *services.DigestService) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsService: statisticsService,
		digestService:     digestService,
	}
}

// Statistics aggregates the user's hours and salary over a period.
func (h *StatisticsHandler) Statistics(c *gin.Context) {
	input, ok := bindStatisticsInput(c)
	if !ok {
		return
	}

	stats, err := h.statisticsService.Compute(c.Request.Context(), input)
	if err != nil {
		respondStatisticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsResponse(*stats))
}

// Digest summarizes the user's work over a period in prose.
func (h *StatisticsHandler) Digest(c *gin.Context) {
	if h.digestService == nil {
		apierrors.ServiceUnavailable(c, "Digest is not configured")
		return
	}

	input, ok := bindStatisticsInput(c)
	if !ok {
		return
	}

	rng, activities, err := h.statisticsService.LoadActivities(c.Request.Context(), input)
	if err != nil {
		respondStatisticsError(c, err)
		return
	}
	stats, err := services.Aggregate(activities)
	if err != nil {
		respondStatisticsError(c, err)
		return
	}

	summary, err := h.digestService.Summarize(c.Request.Context(), rng, activities, stats)
	if err != nil {
		if errors.Is(err, services.ErrDigestNotConfigured) {
			apierrors.ServiceUnavailable(c, "Digest is not configured")
			return
		}
		logError(c, "digest failed", err)
		apierrors.InternalError(c, "Failed to generate digest")
		return
	}

	c.JSON(http.StatusOK, dto.DigestResponse{Summary: summary})
}

func bindStatisticsInput(c *gin.Context) (services.StatisticsInput, bool) {
	userID, _ := middleware.GetUserID(c)

	var req dto.StatisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return services.StatisticsInput{}, false
	}
	return req.ToStatisticsInput(userID), true
}

func respondStatisticsError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrUnknownPeriod) {
		apierrors.BadRequest(c, constants.MsgUnknownPeriod)
		return
	}
	apierrors.InternalError(c, err.Error())
}
