package object

import "context"

// Store defines the contract for keeping uploaded raw files around.
// The extracted text lives in memory; the original bytes go here.
type Store interface {
	Save(ctx context.Context, fileName string, data []byte) (storageKey string, err error)
	Delete(ctx context.Context, storageKey string) error
}
