package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a vocabulary item owned by a single user.
// Text is stored normalized (see NormalizeText).
type Word struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Text         string
	Translation  string
	Examples     []string
	Status       WordStatus
	RecallCount  int
	LastRecallAt *time.Time
	CreatedAt    time.Time
}

// NewWordInput is the material for creating a word before enrichment.
type NewWordInput struct {
	Text        string
	Translation string
	Examples    []string
}

// Enrichment is the AI-provided content for a single word.
type Enrichment struct {
	Translation string
	Examples    []string
}

// PlaceholderEnrichment returns the deterministic fallback used when the
// generation provider is unavailable.
func PlaceholderEnrichment(word string) Enrichment {
	return Enrichment{
		Translation: "перевод слова \"" + word + "\"",
		Examples: []string{
			"Example sentence with \"" + word + "\" 1",
			"Example sentence with \"" + word + "\" 2",
			"Example sentence with \"" + word + "\" 3",
		},
	}
}

// GeneratedWord is a single item produced by prompt-based generation.
type GeneratedWord struct {
	Word        string
	Translation string
	Examples    []string
}
