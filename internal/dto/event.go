package dto

import (
	"github.com/yukikurage/worklog-api/internal/constants"
	"github.com/yukikurage/worklog-api/internal/models"
)

// EventListItemDTO is one calendar entry
type EventListItemDTO struct {
	Title string `json:"title"`
	Start string `json:"start"`
	ID    uint64 `json:"id"`
}

// EventDetailDTO is the activity stored for a single date
type EventDetailDTO struct {
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Notes  string  `json:"notes"`
	Salary float64 `json:"salary"`
	ID     uint64  `json:"id"`
}

// SaveEventRequest is the body of POST /event. Nothing but the date is
// required; missing fields are stored as zero values.
type SaveEventRequest struct {
	Date   string  `json:"date"`
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Notes  string  `json:"notes"`
	Salary float64 `json:"salary"`
}

// SuccessResponse acknowledges a mutation
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ToEventListItemDTO converts an Activity to its calendar representation
func ToEventListItemDTO(activity models.Activity) EventListItemDTO {
	return EventListItemDTO{
		Title: constants.ActivityTitle,
		Start: activity.Date.Format(constants.ISODateLayout),
		ID:    activity.ID,
	}
}

// ToEventList converts activities, keeping their order. The result is never nil.
func ToEventList(activities []models.Activity) []EventListItemDTO {
	items := make([]EventListItemDTO, len(activities))
	for i, activity := range activities {
		items[i] = ToEventListItemDTO(activity)
	}
	return items
}

// ToEventDetailDTO converts an Activity to the detail view
func ToEventDetailDTO(activity models.Activity) EventDetailDTO {
	return EventDetailDTO{
		Start:  activity.StartTime,
		End:    activity.EndTime,
		Notes:  activity.Notes,
		Salary: activity.Salary,
		ID:     activity.ID,
	}
}
