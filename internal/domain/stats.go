package domain

import (
	"math"
	"time"
)

// WordCounts groups the user's words by status.
type WordCounts struct {
	Total    int
	Learning int
	Done     int
}

// ExerciseTotals aggregates the user's whole exercise history.
type ExerciseTotals struct {
	Total   int
	Correct int
}

// Accuracy returns the overall correctness percentage with one decimal,
// 0 when no exercises were recorded.
func (t ExerciseTotals) Accuracy() float64 {
	return AccuracyPercent(t.Correct, t.Total)
}

// DayActivity is the exercise count for one calendar day.
type DayActivity struct {
	Date  time.Time
	Count int
}

// TopWord is one row of the per-word performance ranking.
type TopWord struct {
	Word        string
	Translation string
	Attempts    int
	Correct     int
}

// Accuracy returns the per-word correctness percentage with one decimal.
func (w TopWord) Accuracy() float64 {
	return AccuracyPercent(w.Correct, w.Attempts)
}

// Stats is the full progress snapshot for one user.
type Stats struct {
	Words      WordCounts
	Exercises  ExerciseTotals
	DaysActive int
	Weekly     []DayActivity
	TopWords   []TopWord
}

// AccuracyPercent computes correct/total as a percentage rounded to one
// decimal place. Returns 0 when total is zero.
func AccuracyPercent(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}
