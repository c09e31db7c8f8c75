package documents

import "context"

// Repo defines the operations of the in-memory document collection.
type Repo interface {
	Insert(ctx context.Context, doc Document) error
	List(ctx context.Context) ([]Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	Delete(ctx context.Context, id string) (Document, error)
}
