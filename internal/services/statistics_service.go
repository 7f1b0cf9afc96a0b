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
)

var ErrUnknownPeriod = errors.New("unknown period")

// StatisticsService aggregates hours and salary over a date range
type StatisticsService struct {
	activityRepo repository.ActivityRepository
	now          func() time.Time
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(activityRepo repository.ActivityRepository) *StatisticsService {
	return &StatisticsService{
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

// WithClock replaces the clock that defines "today".
func (s *StatisticsService) WithClock(now func() time.Time) *StatisticsService {
	s.now = now
	return s
}

// StatisticsInput selects the activities to aggregate. StartDate and EndDate
// are only read for the custom period.
type StatisticsInput struct {
	UserID    uint64
	Period    string
	StartDate string
	EndDate   string
}

// DateRange is an inclusive range of calendar dates
type DateRange struct {
	From time.Time
	To   time.Time
}

// DailyDetail is the per-activity line of a statistics result
type DailyDetail struct {
	Date     time.Time
	Duration float64
	Salary   float64
}

// Statistics holds the aggregates of a range. All values except detail
// salaries are rounded to two decimals.
type Statistics struct {
	TotalHours  float64
	TotalSalary float64
	MaxHours    float64
	MinHours    float64
	MaxSalary   float64
	MinSalary   float64
	Details     []DailyDetail
}

// ResolveRange turns a period name into a date range ending today. The week
// period starts seven days back but never before the first of the current
// month.
func (s *StatisticsService) ResolveRange(period, startDate, endDate string) (DateRange, error) {
	today := utils.DateOf(s.now())

	switch period {
	case constants.PeriodWeek:
		day := today.Day() - 7
		if day < 1 {
			day = 1
		}
		return DateRange{From: time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, time.UTC), To: today}, nil
	case constants.PeriodMonth:
		return DateRange{From: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC), To: today}, nil
	case constants.PeriodYear:
		return DateRange{From: time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), To: today}, nil
	case constants.PeriodCustom:
		from, err := parseDate(startDate)
		if err != nil {
			return DateRange{}, err
		}
		to, err := parseDate(endDate)
		if err != nil {
			return DateRange{}, err
		}
		return DateRange{From: from, To: to}, nil
	default:
		return DateRange{}, ErrUnknownPeriod
	}
}

// LoadActivities resolves the range and returns the user's activities in it
func (s *StatisticsService) LoadActivities(ctx context.Context, input StatisticsInput) (DateRange, []models.Activity, error) {
	rng, err := s.ResolveRange(input.Period, input.StartDate, input.EndDate)
	if err != nil {
		return DateRange{}, nil, err
	}

	activities, err := s.activityRepo.List(ctx, repository.ActivityFilter{
		UserID: input.UserID,
		From:   &rng.From,
		To:     &rng.To,
	})
	if err != nil {
		return DateRange{}, nil, fmt.Errorf("failed to load activities: %w", err)
	}
	return rng, activities, nil
}

// Compute loads and aggregates the activities selected by input
func (s *StatisticsService) Compute(ctx context.Context, input StatisticsInput) (*Statistics, error) {
	_, activities, err := s.LoadActivities(ctx, input)
	if err != nil {
		return nil, err
	}
	return Aggregate(activities)
}

// Aggregate computes totals and extremes. An empty slice yields zero values
// and no details; an unparsable start or end time fails the whole result.
func Aggregate(activities []models.Activity) (*Statistics, error) {
	stats := &Statistics{Details: []DailyDetail{}}
	if len(activities) == 0 {
		return stats, nil
	}

	var totalHours, totalSalary float64
	maxHours, minHours := 0.0, 0.0
	maxSalary, minSalary := 0.0, 0.0

	for i, activity := range activities {
		hours, err := utils.DurationHours(activity.StartTime, activity.EndTime)
		if err != nil {
			return nil, fmt.Errorf("activity on %s: %w", activity.Date.Format(constants.ISODateLayout), err)
		}

		if i == 0 {
			maxHours, minHours = hours, hours
			maxSalary, minSalary = activity.Salary, activity.Salary
		}
		maxHours = max(maxHours, hours)
		minHours = min(minHours, hours)
		maxSalary = max(maxSalary, activity.Salary)
		minSalary = min(minSalary, activity.Salary)
		totalHours += hours
		totalSalary += activity.Salary

		stats.Details = append(stats.Details, DailyDetail{
			Date:     activity.Date,
			Duration: utils.Round2(hours),
			Salary:   activity.Salary,
		})
	}

	stats.TotalHours = utils.Round2(totalHours)
	stats.TotalSalary = utils.Round2(totalSalary)
	stats.MaxHours = utils.Round2(maxHours)
	stats.MinHours = utils.Round2(minHours)
	stats.MaxSalary = utils.Round2(maxSalary)
	stats.MinSalary = utils.Round2(minSalary)

	return stats, nil
}
