// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

// SortField names a column documents can be ordered by.
type SortField string

const (
	SortByFilename  SortField = "filename"
	SortByFileType  SortField = "file_type"
	SortByState     SortField = "state"
	SortByCreatedAt SortField = "created_at"
	SortByUpdatedAt SortField = "updated_at"
)

// Valid reports whether f is a known sort field.
func (f SortField) Valid() bool {
	switch f {
	case SortByFilename, SortByFileType, SortByState, SortByCreatedAt, SortByUpdatedAt:
		return true
	}
	return false
}
