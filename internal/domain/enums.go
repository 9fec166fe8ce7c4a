package domain

// Tier represents the subscription level of a user.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierFree, TierPremium:
		return true
	}
	return false
}

// WordLimit returns the maximum number of stored words for the tier.
func (t Tier) WordLimit() int {
	if t == TierPremium {
		return 999
	}
	return 50
}

// DailyExerciseLimit returns the maximum number of exercise sessions per day.
func (t Tier) DailyExerciseLimit() int {
	if t == TierPremium {
		return 999
	}
	return 3
}

// WordStatus represents the learning state of a word.
type WordStatus string

const (
	WordStatusLearning WordStatus = "learning"
	WordStatusDone     WordStatus = "done"
)

func (s WordStatus) String() string { return string(s) }

func (s WordStatus) IsValid() bool {
	switch s {
	case WordStatusLearning, WordStatusDone:
		return true
	}
	return false
}

// ExerciseKind represents the type of a generated exercise.
type ExerciseKind string

const (
	ExerciseKindTranslation    ExerciseKind = "translation"
	ExerciseKindMultipleChoice ExerciseKind = "multiple_choice"

	// ExerciseKindMixed is recorded for graded answers, where the original
	// exercise kind is not carried through the submission.
	ExerciseKindMixed ExerciseKind = "mixed"
)

func (k ExerciseKind) String() string { return string(k) }

func (k ExerciseKind) IsValid() bool {
	switch k {
	case ExerciseKindTranslation, ExerciseKindMultipleChoice, ExerciseKindMixed:
		return true
	}
	return false
}
