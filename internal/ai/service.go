package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studybuddy-backend/internal/documents"
	"studybuddy-backend/internal/shared/metrics"
	"studybuddy-backend/internal/shared/telemetry"
)

// DocumentSource resolves stored documents by id.
type DocumentSource interface {
	Get(ctx context.Context, id string) (documents.Document, error)
}

// Service orchestrates question answering: resolve the document, build a
// bounded prompt, invoke the generator and record the exchange.
type Service struct {
	Docs            DocumentSource
	Gen             Generator
	History         *History
	MaxContextChars int
}

// Ask answers a question about a stored document. The generator is never
// invoked for an unknown document id.
func (s *Service) Ask(ctx context.Context, user, question, fileID string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" || strings.TrimSpace(fileID) == "" {
		return "", ErrMissingInput
	}

	doc, err := s.Docs.Get(ctx, fileID)
	if err != nil {
		return "", err
	}

	prompt := BuildPrompt(doc.Text, question, s.MaxContextChars)

	start := time.Now()
	answer, err := s.Gen.Generate(ctx, prompt)
	metrics.ObserveAskDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncAskFailed()
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	answer = strings.TrimSpace(answer)
	rec := Record{
		ID:       uuid.NewString(),
		FileID:   doc.ID,
		Question: question,
		Answer:   answer,
		User:     user,
		AskedAt:  time.Now().UTC(),
	}
	s.History.Append(rec)
	metrics.IncAsk()

	telemetry.Info("question answered", map[string]any{
		"file_id":    doc.ID,
		"user_email": user,
		"record_id":  rec.ID,
	})
	return answer, nil
}

// Records returns the full history log in insertion order.
func (s *Service) Records() []Record {
	return s.History.List()
}
