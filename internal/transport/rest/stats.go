package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	ComputeStats(ctx context.Context) (*domain.Stats, error)
}

// StatsHandler serves the progress statistics endpoint.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type statsResponse struct {
	Words      wordCountsResponse    `json:"words"`
	Exercises  exerciseTotalsResp    `json:"exercises"`
	DaysActive int                   `json:"days_active"`
	Weekly     []dayActivityResponse `json:"weekly_activity"`
	TopWords   []topWordResponse     `json:"top_words"`
}

type wordCountsResponse struct {
	Total    int `json:"total"`
	Learning int `json:"learning"`
	Done     int `json:"done"`
}

type exerciseTotalsResp struct {
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

type dayActivityResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type topWordResponse struct {
	Word        string  `json:"word"`
	Translation string  `json:"translation"`
	Attempts    int     `json:"attempts"`
	Correct     int     `json:"correct"`
	Accuracy    float64 `json:"accuracy"`
}

// Get handles GET /api/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.ComputeStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := statsResponse{
		Words: wordCountsResponse{
			Total:    stats.Words.Total,
			Learning: stats.Words.Learning,
			Done:     stats.Words.Done,
		},
		Exercises: exerciseTotalsResp{
			Total:    stats.Exercises.Total,
			Correct:  stats.Exercises.Correct,
			Accuracy: stats.Exercises.Accuracy(),
		},
		DaysActive: stats.DaysActive,
		Weekly:     make([]dayActivityResponse, 0, len(stats.Weekly)),
		TopWords:   make([]topWordResponse, 0, len(stats.TopWords)),
	}
	for _, day := range stats.Weekly {
		resp.Weekly = append(resp.Weekly, dayActivityResponse{
			Date:  day.Date.Format(time.DateOnly),
			Count: day.Count,
		})
	}
	for _, tw := range stats.TopWords {
		resp.TopWords = append(resp.TopWords, topWordResponse{
			Word:        tw.Word,
			Translation: tw.Translation,
			Attempts:    tw.Attempts,
			Correct:     tw.Correct,
			Accuracy:    tw.Accuracy(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
