package fitness

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Summary struct {
	AvgSteps      int     `json:"avgSteps"`
	AvgSleepHours float64 `json:"avgSleepHours"`
	TotalCalories int     `json:"totalCalories"`
	DaysTracked   int     `json:"daysTracked"`
}

// Summary aggregates all records. Average steps are truncated, average sleep is rounded to one decimal.
func (s *Store) Summary() Summary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	n := len(s.records)
	if n == 0 {
		return Summary{}
	}

	var steps, calories int
	var sleep float64
	for _, r := range s.records {
		steps += r.Steps
		sleep += r.SleepHours
		calories += r.CaloriesBurned
	}

	return Summary{
		AvgSteps:      steps / n,
		AvgSleepHours: math.Round(sleep/float64(n)*10) / 10,
		TotalCalories: calories,
		DaysTracked:   n,
	}
}

// Describe renders the summary as the free text metrics description used to prefill a plan request.
func (s Summary) Describe() string {
	if s.DaysTracked == 0 {
		return ""
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf(
		"average of %d steps per day, %.1f hours of sleep per night, %d calories burned in total over %d days",
		s.AvgSteps, s.AvgSleepHours, s.TotalCalories, s.DaysTracked,
	)
}
