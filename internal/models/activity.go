package models

import "time"

// Activity is one user's work record for a single calendar date.
// Date is always stored as midnight UTC.
type Activity struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:uidx_activity_user_date" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_activity_user_date" json:"date"`
	StartTime string    `gorm:"type:varchar(32)" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(32)" json:"end_time"`
	Notes     string    `gorm:"type:varchar(255)" json:"notes"`
	Salary    float64   `gorm:"not null;default:0" json:"salary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// ActivityUserDateIndex is the composite unique index on (user_id, date).
const ActivityUserDateIndex = "uidx_activity_user_date"
