package repository

import (
	"context"
	"time"

	"github.com/yukikurage/worklog-api/internal/database"
	"github.com/yukikurage/worklog-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Upsert writes the activity in a single statement keyed on (user_id, date)
func (r *GormActivityRepository) Upsert(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "notes", "salary", "updated_at"}),
		}).
		Create(activity).Error
}

// FindByUserAndDate finds the user's activity for a date
func (r *GormActivityRepository) FindByUserAndDate(ctx context.Context, userID uint64, date time.Time) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("date = ?", date).
		First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// List retrieves activities matching the filter
func (r *GormActivityRepository) List(ctx context.Context, filter ActivityFilter) ([]models.Activity, error) {
	activities := []models.Activity{}

	query := r.db.WithContext(ctx).Scopes(database.OwnedBy(filter.UserID))
	if filter.From != nil && filter.To != nil {
		query = query.Scopes(database.DateBetween(*filter.From, *filter.To))
	}

	if err := query.Order("id ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// DeleteOwned deletes an activity owned by userID
func (r *GormActivityRepository) DeleteOwned(ctx context.Context, id, userID uint64) (bool, error) {
	result := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Delete(&models.Activity{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
