package documents

import "time"

// Document is a stored record of extracted plain text from an uploaded file.
// Owned by the in-memory repo for the lifetime of the process.
type Document struct {
	ID         string
	Name       string
	Text       string
	Pages      int
	SizeBytes  int64
	StorageKey string
	UploadedAt time.Time
}
