package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/worklog-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema. Databases created before the
// (user_id, date) unique index existed may hold several activities for the
// same day; those are collapsed to the most recently inserted row first so
// the index can be built.
func Migrate(db *gorm.DB) error {
	slog.Info("running database migrations")

	if err := db.AutoMigrate(&models.User{}, &models.Feedback{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	migrator := db.Migrator()
	if migrator.HasTable(&models.Activity{}) && !migrator.HasIndex(&models.Activity{}, models.ActivityUserDateIndex) {
		removed, err := dedupeActivities(db)
		if err != nil {
			return fmt.Errorf("failed to dedupe activities: %w", err)
		}
		if removed > 0 {
			slog.Warn("removed duplicate activities before adding unique index", "rows", removed)
		}
	}

	if err := db.AutoMigrate(&models.Activity{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("database migrations completed")
	return nil
}

// dedupeActivities keeps the highest id for every (user_id, date) pair.
func dedupeActivities(db *gorm.DB) (int64, error) {
	result := db.Exec(`
		DELETE FROM activities
		WHERE id NOT IN (
			SELECT id FROM (
				SELECT MAX(id) AS id FROM activities GROUP BY user_id, date
			) AS keep
		)
	`)
	return result.RowsAffected, result.Error
}
