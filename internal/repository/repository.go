package repository

import (
	"context"
	"time"

	"github.com/yukikurage/worklog-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByUsername finds a user by exact, case-sensitive username
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	// Upsert inserts the activity or, when the user already has one for the
	// same date, overwrites its times, notes and salary.
	Upsert(ctx context.Context, activity *models.Activity) error

	// FindByUserAndDate finds the user's activity for a date
	FindByUserAndDate(ctx context.Context, userID uint64, date time.Time) (*models.Activity, error)

	// List retrieves a user's activities in insertion order
	List(ctx context.Context, filter ActivityFilter) ([]models.Activity, error)

	// DeleteOwned deletes an activity if it belongs to userID and reports
	// whether a row was removed
	DeleteOwned(ctx context.Context, id, userID uint64) (bool, error)
}

// ActivityFilter holds filtering options for listing activities.
// The date range applies only when both bounds are set.
type ActivityFilter struct {
	UserID uint64
	From   *time.Time
	To     *time.Time
}

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	// Create stores a new feedback message
	Create(ctx context.Context, feedback *models.Feedback) error

	// ListNewestFirst returns every feedback message, newest first
	ListNewestFirst(ctx context.Context) ([]models.Feedback, error)
}
