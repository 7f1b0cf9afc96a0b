package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/worklog-api/internal/dto"
	apierrors "github.com/yukikurage/worklog-api/internal/errors"
	"github.com/yukikurage/worklog-api/internal/middleware"
	"github.com/yukikurage/worklog-api/internal/services"
)

// EventHandler serves the calendar endpoints.
type EventHandler struct {
	activityService *services.ActivityService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(activityService *services.ActivityService) *EventHandler {
	return &EventHandler{
		activityService: activityService,
	}
}

// ListEvents returns the user's activities as calendar entries. Anonymous
// callers get an empty list.
func (h *EventHandler) ListEvents(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusOK, []dto.EventListItemDTO{})
		return
	}

	activities, err := h.activityService.ListActivities(c.Request.Context(), services.ListActivitiesInput{
		UserID: userID,
		Start:  c.Query("start"),
		End:    c.Query("end"),
	})
	if err != nil {
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToEventList(activities))
}

// GetEvent returns the activity of one date, or an empty object.
func (h *EventHandler) GetEvent(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	activity, err := h.activityService.GetActivityByDate(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		apierrors.InternalError(c, err.Error())
		return
	}
	if activity == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailDTO(*activity))
}

// SaveEvent creates or overwrites the activity of a date.
func (h *EventHandler) SaveEvent(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	err := h.activityService.SaveActivity(c.Request.Context(), services.SaveActivityInput{
		UserID: userID,
		Date:   req.Date,
		Start:  req.Start,
		End:    req.End,
		Notes:  req.Notes,
		Salary: req.Salary,
	})
	if err != nil {
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// DeleteEvent removes one of the user's activities.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Not found")
		return
	}

	if err := h.activityService.DeleteActivity(c.Request.Context(), userID, eventID); err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			apierrors.NotFound(c, "Not found")
			return
		}
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
