package repository

import (
	"context"

	"github.com/yukikurage/worklog-api/internal/models"
	"gorm.io/gorm"
)

// GormFeedbackRepository is a GORM implementation of FeedbackRepository
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// Create stores a new feedback message
func (r *GormFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// ListNewestFirst returns all feedback ordered by timestamp descending
func (r *GormFeedbackRepository) ListNewestFirst(ctx context.Context) ([]models.Feedback, error) {
	feedbacks := []models.Feedback{}
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}
