package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/worklog-api/internal/constants"
	"github.com/yukikurage/worklog-api/internal/dto"
	apierrors "github.com/yukikurage/worklog-api/internal/errors"
	"github.com/yukikurage/worklog-api/internal/services"
)

// FeedbackHandler serves the home page feed and the feedback form.
type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// Index lists every feedback message, newest first.
func (h *FeedbackHandler) Index(c *gin.Context) {
	feedbacks, err := h.feedbackService.List(c.Request.Context())
	if err != nil {
		logError(c, "list feedback failed", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToIndexResponse(feedbacks))
}

// SubmitFeedback stores a visitor message and returns to the home page.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, constants.MsgFeedbackRequired)
		return
	}

	_, err := h.feedbackService.Submit(c.Request.Context(), services.SubmitFeedbackInput{
		Subject: req.Subject,
		Name:    req.Name,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrFeedbackFieldsRequired) {
			c.String(http.StatusBadRequest, constants.MsgFeedbackRequired)
			return
		}
		logError(c, "submit feedback failed", err)
		c.String(http.StatusInternalServerError, constants.MsgFeedbackFailed)
		return
	}

	c.Redirect(http.StatusFound, "/")
}
