package postgres

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"docstatus/internal/model"
	"docstatus/internal/repository"
)

const documentsTable = "documents"

var documentColumns = []string{
	"id",
	"filename",
	"storage_path",
	"size",
	"content_type",
	"file_type",
	"icon_name",
	"state",
	"state_description",
	"created_at",
	"updated_at",
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*model.Document, error) {
	var d model.Document
	var state string
	if err := row.Scan(
		&d.ID,
		&d.Filename,
		&d.StoragePath,
		&d.Size,
		&d.ContentType,
		&d.FileType,
		&d.IconName,
		&state,
		&d.StateDescription,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d.State = model.State(state)
	return &d, nil
}

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	q, args, err := psql().
		Insert(documentsTable).
		Columns(documentColumns...).
		Values(
			doc.ID,
			doc.Filename,
			doc.StoragePath,
			doc.Size,
			doc.ContentType,
			doc.FileType,
			doc.IconName,
			string(doc.State),
			doc.StateDescription,
			doc.CreatedAt,
			doc.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(documentColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanDocument(r.db.QueryRowContext(ctx, q, args...))
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	q, args, err := psql().
		Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanDocument(r.db.QueryRowContext(ctx, q, args...))
}

// List returns documents using LIMIT/OFFSET pagination in the requested order and a total count.
func (r *DocumentPostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.Document], error) {
	qCount, _, err := psql().Select("COUNT(*)").From(documentsTable).ToSql()
	if err != nil {
		return nil, err
	}
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	field := lq.SortField
	if !field.Valid() {
		field = repository.SortByUpdatedAt
	}
	dir := "ASC"
	if lq.Descending {
		dir = "DESC"
	}

	qList, args, err := psql().
		Select(documentColumns...).
		From(documentsTable).
		OrderBy(string(field)+" "+dir, "id "+dir).
		Limit(uint64(max(lq.Limit, 0))).
		Offset(uint64(max(lq.Offset, 0))).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, qList, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	q, args, err := psql().Delete(documentsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

// UpdateState sets state and description and bumps updated_at.
func (r *DocumentPostgres) UpdateState(ctx context.Context, id string, state model.State, description string) error {
	q, args, err := psql().
		Update(documentsTable).
		Set("state", string(state)).
		Set("state_description", description).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
