package dto

import (
	"github.com/yukikurage/worklog-api/internal/constants"
	"github.com/yukikurage/worklog-api/internal/services"
)

// StatisticsRequest selects the period to aggregate
type StatisticsRequest struct {
	Period    string `json:"period"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// StatisticsDetailDTO is one activity line of the statistics table
type StatisticsDetailDTO struct {
	Date     string  `json:"date"`
	Duration float64 `json:"duration"`
	Salary   float64 `json:"salary"`
}

// StatisticsResponse represents aggregated hours and salary
type StatisticsResponse struct {
	TotalHours  float64               `json:"total_hours"`
	TotalSalary float64               `json:"total_salary"`
	MaxHours    float64               `json:"max_hours"`
	MinHours    float64               `json:"min_hours"`
	MaxSalary   float64               `json:"max_salary"`
	MinSalary   float64               `json:"min_salary"`
	Details     []StatisticsDetailDTO `json:"details"`
}

// DigestResponse holds the generated period summary
type DigestResponse struct {
	Summary string `json:"summary"`
}

// ToStatisticsInput converts the request into service input
func (r StatisticsRequest) ToStatisticsInput(userID uint64) services.StatisticsInput {
	return services.StatisticsInput{
		UserID:    userID,
		Period:    r.Period,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// ToStatisticsResponse converts service statistics. Details are never nil.
func ToStatisticsResponse(stats services.Statistics) StatisticsResponse {
	details := make([]StatisticsDetailDTO, len(stats.Details))
	for i, d := range stats.Details {
		details[i] = StatisticsDetailDTO{
			Date:     d.Date.Format(constants.DetailDateLayout),
			Duration: d.Duration,
			Salary:   d.Salary,
		}
	}

	return StatisticsResponse{
		TotalHours:  stats.TotalHours,
		TotalSalary: stats.TotalSalary,
		MaxHours:    stats.MaxHours,
		MinHours:    stats.MinHours,
		MaxSalary:   stats.MaxSalary,
		MinSalary:   stats.MinSalary,
		Details:     details,
	}
}
