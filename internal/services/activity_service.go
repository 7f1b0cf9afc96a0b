package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/worklog-api/internal/constants"
	"github.com/yukikurage/worklog-api/internal/models"
	"github.com/yukikurage/worklog-api/internal/repository"
	"github.com/yukikurage/worklog-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrInvalidDate      = errors.New("invalid date")
)

// ActivityService handles calendar activity business logic
type ActivityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

// ListActivitiesInput represents filters for listing a user's activities.
// The range applies only when both Start and End are non-empty.
type ListActivitiesInput struct {
	UserID uint64
	Start  string
	End    string
}

// SaveActivityInput represents a full activity write for one date
type SaveActivityInput struct {
	UserID uint64
	Date   string
	Start  string
	End    string
	Notes  string
	Salary float64
}

// ListActivities returns the user's activities, optionally limited to a date range
func (s *ActivityService) ListActivities(ctx context.Context, input ListActivitiesInput) ([]models.Activity, error) {
	filter := repository.ActivityFilter{UserID: input.UserID}

	if input.Start != "" && input.End != "" {
		from, err := parseDate(input.Start)
		if err != nil {
			return nil, err
		}
		to, err := parseDate(input.End)
		if err != nil {
			return nil, err
		}
		filter.From = &from
		filter.To = &to
	}

	activities, err := s.activityRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// GetActivityByDate returns the user's activity for a date, or nil when none exists
func (s *ActivityService) GetActivityByDate(ctx context.Context, userID uint64, date string) (*models.Activity, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.FindByUserAndDate(ctx, userID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}
	return activity, nil
}

// SaveActivity creates the activity for the date or overwrites every field of
// the existing one. Times and salary are stored as given.
func (s *ActivityService) SaveActivity(ctx context.Context, input SaveActivityInput) error {
	day, err := parseDate(input.Date)
	if err != nil {
		return err
	}

	activity := &models.Activity{
		UserID:    input.UserID,
		Date:      day,
		StartTime: input.Start,
		EndTime:   input.End,
		Notes:     truncate(input.Notes, constants.MaxNotesLength),
		Salary:    input.Salary,
	}

	if err := s.activityRepo.Upsert(ctx, activity); err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}
	return nil
}

// DeleteActivity deletes an activity owned by userID. Missing activities and
// activities of other users both yield ErrActivityNotFound.
func (s *ActivityService) DeleteActivity(ctx context.Context, userID, activityID uint64) error {
	deleted, err := s.activityRepo.DeleteOwned(ctx, activityID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if !deleted {
		return ErrActivityNotFound
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	day, err := utils.ParseFlexibleDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return day, nil
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
