package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"docstatus/internal/model"
	"docstatus/internal/queue"
	"docstatus/internal/repository"
	"docstatus/internal/storage"
)

var (
	ErrIDRequired       = errors.New("id is required")
	ErrNotFound         = errors.New("document not found")
	ErrReaderNil        = errors.New("reader is nil")
	ErrQueueUnavailable = errors.New("embeddings queue not configured")
)

const (
	defaultListLimit     = 10
	defaultPresignExpiry = 15 * time.Minute
)

var tracer = otel.Tracer("docstatus/internal/service")

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// ListOptions selects a page and its ordering. An empty SortField orders by last update.
type ListOptions struct {
	Limit      int
	Offset     int
	SortField  repository.SortField
	Descending bool
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload streams the content to object storage and saves its metadata with state Uploaded.
	// The object is removed again if the metadata cannot be saved.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Document, error)

	// List returns a page of documents and the total count.
	List(ctx context.Context, opts ListOptions) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Delete removes a document by ID from both storage and repository.
	Delete(ctx context.Context, id string) error

	// Reindex submits the document to the embeddings queue and marks it Queued.
	Reindex(ctx context.Context, id string) (*model.Document, error)

	// BlobURL returns a time-limited download URL for the document content.
	BlobURL(ctx context.Context, id string) (string, error)

	// Content streams the document content. The caller closes the reader.
	Content(ctx context.Context, id string) (io.ReadCloser, *model.Document, error)
}

type documentService struct {
	store         storage.Storage
	repo          repository.DocumentRepository
	pub           queue.Publisher
	presignExpiry time.Duration
}

// NewDocumentService constructs a new DocumentService. pub may be nil, in which
// case Reindex fails with ErrQueueUnavailable.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, pub queue.Publisher, presignExpiry time.Duration) DocumentService {
	if presignExpiry <= 0 {
		presignExpiry = defaultPresignExpiry
	}
	return &documentService{store: store, repo: repo, pub: pub, presignExpiry: presignExpiry}
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "DocumentService."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (doc *model.Document, err error) {
	ctx, span := startSpan(ctx, "Upload", attribute.String("document.filename", originalFilename))
	defer func() { endSpan(span, err) }()

	if r == nil {
		return nil, ErrReaderNil
	}
	name := filepath.Base(originalFilename)
	ext := filepath.Ext(name)
	key := filepath.ToSlash(filepath.Join("documents", uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	fileType := model.FileTypeOf(name)
	now := time.Now().UTC()
	doc = &model.Document{
		ID:               uuid.New().String(),
		Filename:         name,
		StoragePath:      objInfo.Key,
		Size:             objInfo.Size,
		ContentType:      objInfo.ContentType,
		FileType:         fileType,
		IconName:         model.IconNameOf(fileType),
		State:            model.StateUploaded,
		StateDescription: model.StateUploaded.Describe(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		if delErr := s.store.Delete(ctx, objInfo.Key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) List(ctx context.Context, opts ListOptions) (res *DocumentListResult, err error) {
	ctx, span := startSpan(ctx, "List",
		attribute.Int("list.limit", opts.Limit),
		attribute.Int("list.offset", opts.Offset),
		attribute.String("list.sort", string(opts.SortField)),
	)
	defer func() { endSpan(span, err) }()

	if opts.Limit <= 0 {
		opts.Limit = defaultListLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if opts.SortField == "" {
		opts.SortField = repository.SortByUpdatedAt
	}

	page, err := s.repo.List(ctx, repository.ListQuery{
		PageQuery:  repository.PageQuery{Limit: opts.Limit, Offset: opts.Offset},
		SortField:  opts.SortField,
		Descending: opts.Descending,
	})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: page.Items, Total: page.Total}, nil
}

func (s *documentService) Get(ctx context.Context, id string) (doc *model.Document, err error) {
	ctx, span := startSpan(ctx, "Get", attribute.String("document.id", id))
	defer func() { endSpan(span, err) }()
	return s.find(ctx, id)
}

func (s *documentService) find(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Delete removes the object first and keeps the row if that fails.
func (s *documentService) Delete(ctx context.Context, id string) (err error) {
	ctx, span := startSpan(ctx, "Delete", attribute.String("document.id", id))
	defer func() { endSpan(span, err) }()

	doc, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *documentService) Reindex(ctx context.Context, id string) (doc *model.Document, err error) {
	ctx, span := startSpan(ctx, "Reindex", attribute.String("document.id", id))
	defer func() { endSpan(span, err) }()

	if s.pub == nil {
		return nil, ErrQueueUnavailable
	}
	doc, err = s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.pub.Publish(ctx, queue.EmbeddingRequest{
		DocumentID:  doc.ID,
		StoragePath: doc.StoragePath,
		FileName:    doc.Filename,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("publish embedding request: %w", err)
	}

	desc := model.StateQueued.Describe()
	if err := s.repo.UpdateState(ctx, doc.ID, model.StateQueued, desc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update state: %w", err)
	}
	doc.State = model.StateQueued
	doc.StateDescription = desc
	doc.UpdatedAt = time.Now().UTC()
	return doc, nil
}

func (s *documentService) BlobURL(ctx context.Context, id string) (u string, err error) {
	ctx, span := startSpan(ctx, "BlobURL", attribute.String("document.id", id))
	defer func() { endSpan(span, err) }()

	doc, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	u, err = s.store.PresignGet(ctx, doc.StoragePath, s.presignExpiry)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return u, nil
}

func (s *documentService) Content(ctx context.Context, id string) (rc io.ReadCloser, doc *model.Document, err error) {
	ctx, span := startSpan(ctx, "Content", attribute.String("document.id", id))
	defer func() { endSpan(span, err) }()

	doc, err = s.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err = s.store.Get(ctx, doc.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, fmt.Errorf("%w: content missing", ErrNotFound)
		}
		return nil, nil, fmt.Errorf("read storage: %w", err)
	}
	return rc, doc, nil
}
