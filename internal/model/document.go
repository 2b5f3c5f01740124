package model

import "time"

// Document represents a stored file in the system together with its indexing state.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
type Document struct {
	ID               string    `json:"id"`
	Filename         string    `json:"filename"`
	StoragePath      string    `json:"storage_path"`
	Size             int64     `json:"size"`
	ContentType      string    `json:"content_type"`
	FileType         string    `json:"file_type"`
	IconName         string    `json:"icon_name"`
	State            State     `json:"state"`
	StateDescription string    `json:"state_description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// State is the processing state of a document in the embeddings pipeline.
type State string

const (
	StateUploaded State = "Uploaded"
	StateQueued   State = "Queued"
	StateIndexing State = "Indexing"
	StateComplete State = "Complete"
	StateError    State = "Error"
)

// Describe returns the default human-readable description for a state.
func (s State) Describe() string {
	switch s {
	case StateUploaded:
		return "File uploaded, waiting to be processed"
	case StateQueued:
		return "Queued for embedding"
	case StateIndexing:
		return "Embeddings are being generated"
	case StateComplete:
		return "Indexed and searchable"
	case StateError:
		return "Processing failed"
	default:
		return string(s)
	}
}
