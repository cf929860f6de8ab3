package models

import "time"

// UploadedFile describes a file received through the upload endpoint.
// Contents are held by the file service; only metadata travels over the wire.
type UploadedFile struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
