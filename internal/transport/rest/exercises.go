package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
	"github.com/heartmarshall/stepspeak-backend/internal/service/exercise"
)

// exerciseService defines the minimal interface needed by ExercisesHandler.
type exerciseService interface {
	Generate(ctx context.Context) (*exercise.SessionResult, error)
	Submit(ctx context.Context, input exercise.SubmitInput) (*exercise.GradeResult, error)
}

// ExercisesHandler serves practice session REST endpoints.
type ExercisesHandler struct {
	svc exerciseService
	log *slog.Logger
}

// NewExercisesHandler creates an ExercisesHandler.
func NewExercisesHandler(svc exerciseService, logger *slog.Logger) *ExercisesHandler {
	return &ExercisesHandler{svc: svc, log: logger.With("handler", "exercises")}
}

type exerciseResponse struct {
	WordID        string   `json:"word_id"`
	Kind          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
}

type sessionResponse struct {
	Exercises          []exerciseResponse `json:"exercises"`
	ExercisesRemaining int                `json:"exercises_remaining"`
	Message            string             `json:"message,omitempty"`
}

type submitRequest struct {
	Answers []answerRequest `json:"answers"`
}

type answerRequest struct {
	WordID string `json:"word_id"`
	Answer string `json:"answer"`
}

type gradeResponse struct {
	Results            []answerResultResponse `json:"results"`
	Score              int                    `json:"score"`
	Total              int                    `json:"total"`
	ExercisesRemaining int                    `json:"exercises_remaining"`
}

type answerResultResponse struct {
	WordID        string `json:"word_id"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
}

// Generate handles GET /api/exercises.
func (h *ExercisesHandler) Generate(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Generate(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := sessionResponse{
		Exercises:          make([]exerciseResponse, 0, len(result.Exercises)),
		ExercisesRemaining: result.Remaining,
		Message:            result.Message,
	}
	for _, ex := range result.Exercises {
		resp.Exercises = append(resp.Exercises, exerciseResponse{
			WordID:        ex.WordID.String(),
			Kind:          ex.Kind.String(),
			Question:      ex.Question,
			Options:       ex.Options,
			CorrectAnswer: ex.CorrectAnswer,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Submit handles POST /api/exercises.
func (h *ExercisesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answers := make([]domain.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		wordID, err := uuid.Parse(a.WordID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "word_id must be a valid id")
			return
		}
		answers = append(answers, domain.Answer{WordID: wordID, Answer: a.Answer})
	}

	result, err := h.svc.Submit(r.Context(), exercise.SubmitInput{Answers: answers})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := gradeResponse{
		Results:            make([]answerResultResponse, 0, len(result.Results)),
		Score:              result.Score,
		Total:              result.Total,
		ExercisesRemaining: result.Remaining,
	}
	for _, res := range result.Results {
		resp.Results = append(resp.Results, answerResultResponse{
			WordID:        res.WordID.String(),
			IsCorrect:     res.IsCorrect,
			CorrectAnswer: res.CorrectAnswer,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
