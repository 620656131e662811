package services

import (
	"sort"

	"github.com/vanshikasingh06/health-mate/models"

	"gorm.io/gorm"
)

// progressDays caps each series at the most recent distinct dates.
const progressDays = 30

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// DailyPoint is one date bucket of an aggregate series.
type DailyPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ProgressReport carries the three chart series, most recent date first.
// Dates with no entries are simply absent; there is no gap filling.
type ProgressReport struct {
	Exercise []DailyPoint `json:"exercise"` // total minutes per date
	Water    []DailyPoint `json:"water"`    // total liters per date
	Sleep    []DailyPoint `json:"sleep"`    // average hours per date
}

func (s *ProgressService) Report(userID uint) (*ProgressReport, error) {
	var exercise []models.ExerciseLog
	if err := s.db.Where("user_id = ?", userID).Find(&exercise).Error; err != nil {
		return nil, err
	}
	var water []models.WaterLog
	if err := s.db.Where("user_id = ?", userID).Find(&water).Error; err != nil {
		return nil, err
	}
	var sleep []models.SleepLog
	if err := s.db.Where("user_id = ?", userID).Find(&sleep).Error; err != nil {
		return nil, err
	}

	exAcc := newDayAccumulator()
	for _, l := range exercise {
		exAcc.add(l.RecordedAt.Local().Format("2006-01-02"), float64(l.Duration))
	}
	waAcc := newDayAccumulator()
	for _, l := range water {
		waAcc.add(l.RecordedAt.Local().Format("2006-01-02"), l.Amount)
	}
	slAcc := newDayAccumulator()
	for _, l := range sleep {
		slAcc.add(l.RecordedAt.Local().Format("2006-01-02"), l.Hours)
	}

	return &ProgressReport{
		Exercise: exAcc.series(false),
		Water:    waAcc.series(false),
		Sleep:    slAcc.series(true), // average, not total
	}, nil
}

type dayBucket struct {
	sum   float64
	count int
}

type dayAccumulator struct {
	buckets map[string]*dayBucket
}

func newDayAccumulator() *dayAccumulator {
	return &dayAccumulator{buckets: make(map[string]*dayBucket)}
}

func (a *dayAccumulator) add(date string, v float64) {
	b := a.buckets[date]
	if b == nil {
		b = &dayBucket{}
		a.buckets[date] = b
	}
	b.sum += v
	b.count++
}

// series emits date-descending points capped at progressDays distinct
// dates. ISO dates sort lexicographically, so plain string order works.
func (a *dayAccumulator) series(average bool) []DailyPoint {
	dates := make([]string, 0, len(a.buckets))
	for d := range a.buckets {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > progressDays {
		dates = dates[:progressDays]
	}

	points := make([]DailyPoint, 0, len(dates))
	for _, d := range dates {
		b := a.buckets[d]
		v := b.sum
		if average {
			v = b.sum / float64(b.count)
		}
		points = append(points, DailyPoint{Date: d, Value: v})
	}
	return points
}
