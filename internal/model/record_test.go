package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentRecord(t *testing.T) {
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	tests := []struct {
		name string
		doc  Document
		want DocumentRecord
	}{
		{
			name: "derives file type, icon and description",
			doc: Document{
				ID:          "id-1",
				Filename:    "Report.PDF",
				StoragePath: "documents/id-1.pdf",
				State:       StateQueued,
				CreatedAt:   created,
				UpdatedAt:   updated,
			},
			want: DocumentRecord{
				Key:               "id-1",
				Name:              "Report.PDF",
				Value:             "documents/id-1.pdf",
				IconName:          "pdf",
				FileType:          "pdf",
				State:             "Queued",
				StateDescription:  "Queued for embedding",
				UploadTimestamp:   created,
				ModifiedTimestamp: updated,
			},
		},
		{
			name: "keeps stored values",
			doc: Document{
				ID:               "id-2",
				Filename:         "notes",
				FileType:         "docx",
				IconName:         "custom",
				State:            StateError,
				StateDescription: "chunking failed",
			},
			want: DocumentRecord{
				Key:              "id-2",
				Name:             "notes",
				IconName:         "custom",
				FileType:         "docx",
				State:            "Error",
				StateDescription: "chunking failed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDocumentRecord(tt.doc))
		})
	}
}

func TestIconNameOf(t *testing.T) {
	assert.Equal(t, "docx", IconNameOf("DOC"))
	assert.Equal(t, "photo", IconNameOf("jpeg"))
	assert.Equal(t, "genericfile", IconNameOf("bin"))
	assert.Equal(t, "genericfile", IconNameOf(""))
}

func TestNewDocumentRecords_PreservesOrder(t *testing.T) {
	recs := NewDocumentRecords([]Document{{ID: "b"}, {ID: "a"}, {ID: "c"}})
	keys := make([]string, 0, len(recs))
	for _, r := range recs {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []string{"b", "a", "c"}, keys)
}
