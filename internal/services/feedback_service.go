package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/worklog-api/internal/models"
	"github.com/yukikurage/worklog-api/internal/repository"
)

var ErrFeedbackFieldsRequired = errors.New("subject, name and message are required")

// FeedbackService handles the public feedback form
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
	now          func() time.Time
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		now:          time.Now,
	}
}

// WithClock replaces the clock used for feedback timestamps.
func (s *FeedbackService) WithClock(now func() time.Time) *FeedbackService {
	s.now = now
	return s
}

// SubmitFeedbackInput represents a visitor message
type SubmitFeedbackInput struct {
	Subject string
	Name    string
	Message string
}

// Submit stores a feedback message stamped with the current server time
func (s *FeedbackService) Submit(ctx context.Context, input SubmitFeedbackInput) (*models.Feedback, error) {
	if input.Subject == "" || input.Name == "" || input.Message == "" {
		return nil, ErrFeedbackFieldsRequired
	}

	feedback := &models.Feedback{
		Subject:   input.Subject,
		Name:      input.Name,
		Message:   input.Message,
		Timestamp: s.now().UTC(),
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	return feedback, nil
}

// List returns all feedback, newest first
func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	feedbacks, err := s.feedbackRepo.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedbacks, nil
}
