package models

import "time"

// Feedback is an append-only visitor message.
type Feedback struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Subject   string    `gorm:"type:varchar(50)" json:"subject"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	Message   string    `gorm:"type:text" json:"message"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}
