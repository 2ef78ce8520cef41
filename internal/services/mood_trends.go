package services

import (
	"fmt"
	"math"
	"time"

	"github.com/terraincognita07/joydairy/internal/models"
)

const (
	DefaultTrendPeriodDays = 30
	MaxTrendPeriodDays     = 365
)

type MoodTrendPoint struct {
	Date      time.Time `json:"date"`
	MoodScore int       `json:"moodScore"`
	Mood      string    `json:"mood"`
}

type MoodTrends struct {
	TotalEntries     int              `json:"totalEntries"`
	AverageMood      float64          `json:"averageMood"`
	AverageEnergy    float64          `json:"averageEnergy"`
	AverageStress    float64          `json:"averageStress"`
	MoodDistribution map[string]int   `json:"moodDistribution"`
	CommonEmotions   map[string]int   `json:"commonEmotions"`
	MoodTrend        []MoodTrendPoint `json:"moodTrend"`
}

func ValidateTrendPeriod(periodDays int) error {
	if periodDays < 1 || periodDays > MaxTrendPeriodDays {
		return newValidationError("period", "period must be between 1 and %d days", MaxTrendPeriodDays)
	}
	return nil
}

// Trends aggregates the moods dated within the trailing periodDays up to today.
func (service *MoodService) Trends(userID uint, periodDays int, now time.Time, location *time.Location) (MoodTrends, error) {
	if err := ValidateTrendPeriod(periodDays); err != nil {
		return MoodTrends{}, err
	}

	today, tomorrow := DayRange(DateAtLocation(now, location))
	since := today.AddDate(0, 0, -periodDays)
	moods, err := service.moods.ListByUserRange(userID, since, tomorrow)
	if err != nil {
		return MoodTrends{}, fmt.Errorf("load moods for trends: %w", err)
	}
	return ComputeMoodTrends(moods), nil
}

// ComputeMoodTrends expects moods in chronological order.
func ComputeMoodTrends(moods []models.MoodEntry) MoodTrends {
	trends := MoodTrends{
		TotalEntries:     len(moods),
		MoodDistribution: make(map[string]int, len(models.MoodLabels)),
		CommonEmotions:   make(map[string]int),
		MoodTrend:        make([]MoodTrendPoint, 0, len(moods)),
	}
	for _, label := range models.MoodLabels {
		trends.MoodDistribution[label] = 0
	}

	var moodSum, energySum, stressSum float64
	var energyCount, stressCount int
	for _, mood := range moods {
		moodSum += float64(mood.MoodScore)
		if mood.EnergyLevel != nil {
			energySum += float64(*mood.EnergyLevel)
			energyCount++
		}
		if mood.StressLevel != nil {
			stressSum += float64(*mood.StressLevel)
			stressCount++
		}
		trends.MoodDistribution[mood.Mood]++
		for _, emotion := range mood.Emotions {
			trends.CommonEmotions[emotion]++
		}
		trends.MoodTrend = append(trends.MoodTrend, MoodTrendPoint{
			Date:      mood.Date,
			MoodScore: mood.MoodScore,
			Mood:      mood.Mood,
		})
	}

	trends.AverageMood = roundedAverage(moodSum, len(moods))
	trends.AverageEnergy = roundedAverage(energySum, energyCount)
	trends.AverageStress = roundedAverage(stressSum, stressCount)
	return trends
}

func roundedAverage(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(sum/float64(count)*10) / 10
}
