package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Exercise is a single generated practice task. Options is populated only
// for multiple_choice. CorrectAnswer rides along so the client can grade
// locally; authoritative grading still happens on submit.
type Exercise struct {
	WordID        uuid.UUID
	Kind          ExerciseKind
	Question      string
	Options       []string
	CorrectAnswer string
}

// ExerciseRecord is an append-only log entry for one graded answer.
type ExerciseRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	WordID     uuid.UUID
	Kind       ExerciseKind
	IsCorrect  bool
	UserAnswer string
	CreatedAt  time.Time
}

// Answer is one submitted answer awaiting grading.
type Answer struct {
	WordID uuid.UUID
	Answer string
}

// AnswerResult is the grading outcome for one answer.
type AnswerResult struct {
	WordID        uuid.UUID
	IsCorrect     bool
	CorrectAnswer string
}

// GradeAnswer compares a submitted answer with the stored translation.
// Comparison is exact after trimming and lowercasing both sides.
// Inner whitespace is significant.
func GradeAnswer(submitted, translation string) bool {
	return foldAnswer(submitted) == foldAnswer(translation)
}

func foldAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
