package generations

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a generation record.
func (r *PGRepo) Create(ctx context.Context, gen Generation) error {
	const query = `
INSERT INTO generations (
    id, client_key, name, docx_key, json_key, file_name, mime_type, size_bytes, tier, content_volume, page_estimate, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.DB.ExecContext(ctx, query,
		gen.ID,
		gen.ClientKey,
		gen.Name,
		gen.DocxKey,
		gen.JSONKey,
		gen.FileName,
		gen.MimeType,
		gen.SizeBytes,
		gen.Tier,
		gen.ContentVolume,
		gen.PageEstimate,
		gen.CreatedAt,
	)
	return err
}

// GetByID returns a generation by ID for a client.
func (r *PGRepo) GetByID(ctx context.Context, clientKey, generationID string) (Generation, error) {
	const query = `
SELECT id, client_key, name, docx_key, json_key, file_name, mime_type, size_bytes, tier, content_volume, page_estimate, created_at
FROM generations
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var gen Generation
	err := r.DB.QueryRowContext(ctx, query, generationID).Scan(
		&gen.ID,
		&gen.ClientKey,
		&gen.Name,
		&gen.DocxKey,
		&gen.JSONKey,
		&gen.FileName,
		&gen.MimeType,
		&gen.SizeBytes,
		&gen.Tier,
		&gen.ContentVolume,
		&gen.PageEstimate,
		&gen.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Generation{}, ErrNotFound
		}
		return Generation{}, err
	}
	if gen.ClientKey != clientKey {
		return Generation{}, ErrForbidden
	}
	return gen, nil
}

// ListByClient lists generations ordered newest-first.
func (r *PGRepo) ListByClient(ctx context.Context, clientKey string, limit, offset int) ([]Generation, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, client_key, name, docx_key, json_key, file_name, mime_type, size_bytes, tier, content_volume, page_estimate, created_at
FROM generations
WHERE client_key = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, clientKey, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		var gen Generation
		if err := rows.Scan(
			&gen.ID,
			&gen.ClientKey,
			&gen.Name,
			&gen.DocxKey,
			&gen.JSONKey,
			&gen.FileName,
			&gen.MimeType,
			&gen.SizeBytes,
			&gen.Tier,
			&gen.ContentVolume,
			&gen.PageEstimate,
			&gen.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, gen)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
