package model

import (
	"path/filepath"
	"strings"
	"time"
)

// DocumentRecord is the flat, read-only row shown by the document list view.
// Records are built by the caller; the view only reads and reorders them.
type DocumentRecord struct {
	Key               string    `json:"key"`
	Name              string    `json:"name"`
	Value             string    `json:"value"`
	IconName          string    `json:"iconName"`
	FileType          string    `json:"fileType"`
	State             string    `json:"state"`
	StateDescription  string    `json:"state_description"`
	UploadTimestamp   time.Time `json:"upload_timestamp"`
	ModifiedTimestamp time.Time `json:"modified_timestamp"`
}

// NewDocumentRecord projects a stored document onto a list row.
func NewDocumentRecord(d Document) DocumentRecord {
	fileType := d.FileType
	if fileType == "" {
		fileType = FileTypeOf(d.Filename)
	}
	icon := d.IconName
	if icon == "" {
		icon = IconNameOf(fileType)
	}
	desc := d.StateDescription
	if desc == "" {
		desc = d.State.Describe()
	}
	return DocumentRecord{
		Key:               d.ID,
		Name:              d.Filename,
		Value:             d.StoragePath,
		IconName:          icon,
		FileType:          fileType,
		State:             string(d.State),
		StateDescription:  desc,
		UploadTimestamp:   d.CreatedAt,
		ModifiedTimestamp: d.UpdatedAt,
	}
}

// NewDocumentRecords projects a slice of documents, preserving order.
func NewDocumentRecords(docs []Document) []DocumentRecord {
	out := make([]DocumentRecord, 0, len(docs))
	for _, d := range docs {
		out = append(out, NewDocumentRecord(d))
	}
	return out
}

// FileTypeOf returns the lower-case extension of a file name without the dot.
func FileTypeOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// iconNames maps file types to the item-type icon set used by the list view.
var iconNames = map[string]string{
	"pdf":  "pdf",
	"doc":  "docx",
	"docx": "docx",
	"xls":  "xlsx",
	"xlsx": "xlsx",
	"ppt":  "pptx",
	"pptx": "pptx",
	"txt":  "txt",
	"md":   "txt",
	"csv":  "csv",
	"htm":  "html",
	"html": "html",
	"json": "code",
	"xml":  "xml",
	"png":  "photo",
	"jpg":  "photo",
	"jpeg": "photo",
	"tif":  "photo",
	"tiff": "photo",
}

// IconNameOf returns the icon identifier for a file type, "genericfile" when unknown.
func IconNameOf(fileType string) string {
	if n, ok := iconNames[strings.ToLower(fileType)]; ok {
		return n
	}
	return "genericfile"
}
