package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"studybuddy-backend/internal/shared/metrics"
	"studybuddy-backend/internal/shared/storage/object"
	"studybuddy-backend/internal/shared/telemetry"
)

// Extractor is the opaque collaborator turning raw file bytes into plain text.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (text string, pages int, err error)
}

// Service contains business logic for the document store.
type Service struct {
	Repo    Repo
	Blobs   object.Store
	Extract Extractor
}

// Upload extracts text from the payload, keeps the raw bytes in the blob
// store and records the document. On extraction failure nothing is stored.
func (s *Service) Upload(ctx context.Context, name string, data []byte) (Document, error) {
	if name == "" || len(data) == 0 {
		return Document{}, ErrInvalidInput
	}

	text, pages, err := s.Extract.Extract(ctx, data)
	if err != nil {
		metrics.IncUploadFailed()
		return Document{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	storageKey, err := s.Blobs.Save(ctx, name, data)
	if err != nil {
		metrics.IncUploadFailed()
		return Document{}, fmt.Errorf("save upload: %w", err)
	}

	doc := Document{
		ID:         uuid.NewString(),
		Name:       name,
		Text:       text,
		Pages:      pages,
		SizeBytes:  int64(len(data)),
		StorageKey: storageKey,
		UploadedAt: time.Now().UTC(),
	}

	if err := s.Repo.Insert(ctx, doc); err != nil {
		metrics.IncUploadFailed()
		return Document{}, err
	}

	metrics.IncUpload()
	return doc, nil
}

// List returns summaries for all stored documents in insertion order.
func (s *Service) List(ctx context.Context) ([]FileSummary, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]FileSummary, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toSummary(doc))
	}
	return out, nil
}

// Get returns the full document, extracted text included.
func (s *Service) Get(ctx context.Context, id string) (Document, error) {
	if id == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// Delete removes the record and best-effort removes the raw upload from the
// blob store. A failed blob removal is logged, not surfaced.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	doc, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if doc.StorageKey != "" {
		if err := s.Blobs.Delete(ctx, doc.StorageKey); err != nil {
			telemetry.Warn("upload cleanup failed", map[string]any{
				"file_id":     doc.ID,
				"storage_key": doc.StorageKey,
				"detail":      err.Error(),
			})
		}
	}
	return nil
}
