package ai

import (
	"context"
	"time"
)

// Record is one immutable question/answer exchange. Records reference the
// source document by id only; deleting the document leaves the record intact.
type Record struct {
	ID       string    `json:"id"`
	FileID   string    `json:"fileId"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	User     string    `json:"user"`
	AskedAt  time.Time `json:"askedAt"`
}

// Generator is the opaque collaborator turning a prompt into a completion.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
