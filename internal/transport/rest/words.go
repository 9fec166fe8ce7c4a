package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
	"github.com/heartmarshall/stepspeak-backend/internal/service/words"
)

// wordsService defines the minimal interface needed by WordsHandler.
type wordsService interface {
	AddWords(ctx context.Context, input words.AddWordsInput) ([]domain.Word, error)
	ListWords(ctx context.Context, input words.ListInput) (*words.ListResult, error)
	UpdateStatus(ctx context.Context, wordID uuid.UUID, status string) (*domain.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
	GenerateWords(ctx context.Context, input words.GenerateInput) ([]domain.Word, error)
}

// WordsHandler serves vocabulary REST endpoints.
type WordsHandler struct {
	svc wordsService
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc wordsService, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{svc: svc, log: logger.With("handler", "words")}
}

type addWordsRequest struct {
	Words []string `json:"words"`
}

type generateWordsRequest struct {
	Prompt string `json:"prompt"`
	Count  int    `json:"count"`
}

type updateStatusRequest struct {
	WordID string `json:"word_id"`
	Status string `json:"status"`
}

type wordResponse struct {
	ID           string     `json:"id"`
	Text         string     `json:"text"`
	Translation  string     `json:"translation"`
	Examples     []string   `json:"examples"`
	Status       string     `json:"status"`
	RecallCount  int        `json:"recall_count"`
	LastRecallAt *time.Time `json:"last_recall_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type wordListResponse struct {
	Words []wordResponse `json:"words"`
	Total int            `json:"total"`
}

type wordBatchResponse struct {
	Words []wordResponse `json:"words"`
	Count int            `json:"count"`
}

// Add handles POST /api/words.
func (h *WordsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddWords(r.Context(), words.AddWordsInput{Words: req.Words})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, wordBatchResponse{
		Words: toWordResponses(created),
		Count: len(created),
	})
}

// List handles GET /api/words?status=&page=.
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		page = parsed
	}

	result, err := h.svc.ListWords(r.Context(), words.ListInput{
		Status: r.URL.Query().Get("status"),
		Page:   page,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, wordListResponse{
		Words: toWordResponses(result.Words),
		Total: result.Total,
	})
}

// UpdateStatus handles PUT /api/words/status.
func (h *WordsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wordID, err := uuid.Parse(req.WordID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "word_id must be a valid id")
		return
	}

	updated, err := h.svc.UpdateStatus(r.Context(), wordID, req.Status)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*updated))
}

// Delete handles DELETE /api/words?word_id=.
func (h *WordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	wordID, err := uuid.Parse(r.URL.Query().Get("word_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "word_id must be a valid id")
		return
	}

	if err := h.svc.DeleteWord(r.Context(), wordID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Generate handles POST /api/words/generate.
func (h *WordsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.GenerateWords(r.Context(), words.GenerateInput{
		Prompt: req.Prompt,
		Count:  req.Count,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, wordBatchResponse{
		Words: toWordResponses(created),
		Count: len(created),
	})
}

func toWordResponse(w domain.Word) wordResponse {
	return wordResponse{
		ID:           w.ID.String(),
		Text:         w.Text,
		Translation:  w.Translation,
		Examples:     w.Examples,
		Status:       w.Status.String(),
		RecallCount:  w.RecallCount,
		LastRecallAt: w.LastRecallAt,
		CreatedAt:    w.CreatedAt,
	}
}

func toWordResponses(items []domain.Word) []wordResponse {
	out := make([]wordResponse, 0, len(items))
	for _, w := range items {
		out = append(out, toWordResponse(w))
	}
	return out
}
