package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/stepspeak-backend/internal/service/user"
)

// userService defines the minimal interface needed by UsersHandler.
type userService interface {
	Me(ctx context.Context) (*user.Profile, error)
}

// UsersHandler serves account REST endpoints.
type UsersHandler struct {
	svc userService
	log *slog.Logger
}

// NewUsersHandler creates a UsersHandler.
func NewUsersHandler(svc userService, logger *slog.Logger) *UsersHandler {
	return &UsersHandler{svc: svc, log: logger.With("handler", "users")}
}

type profileResponse struct {
	User               userResponse `json:"user"`
	WordCount          int          `json:"word_count"`
	ExercisesRemaining int          `json:"exercises_remaining"`
	DailyExercises     int          `json:"daily_exercise_count"`
}

// Me handles GET /api/users/me.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		User:               toUserResponse(profile.User),
		WordCount:          profile.WordCount,
		ExercisesRemaining: profile.SessionsAvailable,
		DailyExercises:     profile.DailyCount,
	})
}
