package auth

import "github.com/heartmarshall/stepspeak-backend/internal/domain"

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	User               *domain.User
	AccessToken        string
	WordCount          int
	ExercisesRemaining int
}
