package dto

import (
	"time"

	"github.com/yukikurage/worklog-api/internal/models"
)

// FeedbackRequest is the feedback form
type FeedbackRequest struct {
	Subject string `form:"subject"`
	Name    string `form:"name"`
	Message string `form:"message"`
}

// FeedbackDTO represents a visitor message in API responses
type FeedbackDTO struct {
	ID        uint64    `json:"id"`
	Subject   string    `json:"subject"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// IndexResponse is the home page payload
type IndexResponse struct {
	Feedbacks []FeedbackDTO `json:"feedbacks"`
}

// ToFeedbackDTO converts a Feedback model to FeedbackDTO
func ToFeedbackDTO(feedback models.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:        feedback.ID,
		Subject:   feedback.Subject,
		Name:      feedback.Name,
		Message:   feedback.Message,
		Timestamp: feedback.Timestamp,
	}
}

// ToIndexResponse converts feedback in the given order
func ToIndexResponse(feedbacks []models.Feedback) IndexResponse {
	items := make([]FeedbackDTO, len(feedbacks))
	for i, f := range feedbacks {
		items[i] = ToFeedbackDTO(f)
	}
	return IndexResponse{Feedbacks: items}
}
