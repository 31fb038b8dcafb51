package model

import "time"

// Retention labels shown for knowledge-base documents.
const (
	RetentionPermanent = "Permanent"
	RetentionTemporary = "7 days"

	// TemporaryRetention is how long the backend keeps non-permanent uploads.
	TemporaryRetention = 7 * 24 * time.Hour
)

// File is a local file picked by the user for upload or compliance checking.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Size returns the file size in bytes.
func (f File) Size() int {
	return len(f.Content)
}

// UploadResult is the backend's answer to a document upload.
type UploadResult struct {
	FileName    string
	TotalChunks int
	IsPermanent bool
}

// Document is one entry of the knowledge-base listing.
type Document struct {
	FileName    string
	TotalPages  int
	TotalChunks int
	UploadedBy  string
	UploadedAt  Timestamp
	IsPermanent bool
}

// RetentionLabel returns the user-facing retention label.
func (d Document) RetentionLabel() string {
	if d.IsPermanent {
		return RetentionPermanent
	}
	return RetentionTemporary
}
