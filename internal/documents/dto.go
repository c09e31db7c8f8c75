package documents

import "time"

// FileSummary is the outward-facing representation of a document. The
// extracted text never leaves the store through listings.
type FileSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Pages      int       `json:"pages"`
	TextLength int       `json:"textLength"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func toSummary(doc Document) FileSummary {
	return FileSummary{
		ID:         doc.ID,
		Name:       doc.Name,
		Pages:      doc.Pages,
		TextLength: len(doc.Text),
		UploadedAt: doc.UploadedAt,
	}
}
