package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain"
	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/ports"
)

// TailoringRepository implements ports.TailoringGateway using PostgreSQL.
// Grounded on the teacher's repository style (pool-held struct,
// domain.NewDatabaseError wrapping, pool.Begin/Rollback/Commit for
// multi-row writes) and spec.md §4.11's atomicity requirement: a variant
// row and its ATS-score row are inserted in one transaction.
type TailoringRepository struct {
	pool *pgxpool.Pool
}

// SaveVariant inserts a variant and its ATS score as a single transactional
// unit: either both rows exist or neither does.
func (r *TailoringRepository) SaveVariant(ctx context.Context, v ports.TailoringVariant) (string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", domain.NewDatabaseError("begin transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO tailoring_variants (
			id, user_id, job_title, company, source_path, pdf_path,
			output_filename, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		v.ID, v.UserID, v.JobTitle, v.Company, v.SourcePath, v.PDFPath,
		v.OutputFilename, time.Unix(v.CreatedAtUnix, 0).UTC(),
	)
	if err != nil {
		return "", domain.NewDatabaseError("insert tailoring variant", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO tailoring_ats_scores (variant_id, overall_score, fit_score)
		VALUES ($1, $2, $3)
	`, v.ID, v.ATSScoreOverall, v.FitScoreOverall)
	if err != nil {
		return "", domain.NewDatabaseError("insert tailoring ats score", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", domain.NewDatabaseError("commit tailoring variant", err)
	}

	return v.ID, nil
}

// GetVariant retrieves a variant by ID, joined with its ATS/fit scores.
func (r *TailoringRepository) GetVariant(ctx context.Context, id string) (*ports.TailoringVariant, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT v.id, v.user_id, v.job_title, v.company, v.source_path,
		       v.pdf_path, v.output_filename, v.created_at,
		       COALESCE(s.overall_score, 0), COALESCE(s.fit_score, 0)
		FROM tailoring_variants v
		LEFT JOIN tailoring_ats_scores s ON s.variant_id = v.id
		WHERE v.id = $1
	`, id)

	v, err := scanTailoringVariant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, tailor.ErrVariantNotFound
	}
	if err != nil {
		return nil, domain.NewDatabaseError("get tailoring variant", err)
	}
	return v, nil
}

// ListVariants returns every variant generated for userID, most recent first.
func (r *TailoringRepository) ListVariants(ctx context.Context, userID string) ([]ports.TailoringVariant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.user_id, v.job_title, v.company, v.source_path,
		       v.pdf_path, v.output_filename, v.created_at,
		       COALESCE(s.overall_score, 0), COALESCE(s.fit_score, 0)
		FROM tailoring_variants v
		LEFT JOIN tailoring_ats_scores s ON s.variant_id = v.id
		WHERE v.user_id = $1
		ORDER BY v.created_at DESC
	`, userID)
	if err != nil {
		return nil, domain.NewDatabaseError("list tailoring variants", err)
	}
	defer rows.Close()

	var variants []ports.TailoringVariant
	for rows.Next() {
		v, err := scanTailoringVariant(rows)
		if err != nil {
			return nil, domain.NewDatabaseError("scan tailoring variant", err)
		}
		variants = append(variants, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewDatabaseError("list tailoring variants", err)
	}

	return variants, nil
}

// DeleteVariant removes a variant row and its score row. Filesystem
// artifacts are the caller's responsibility (spec.md §7's orphan-on-
// rollback policy applies symmetrically on delete: the DB row is the
// source of truth, not the files).
func (r *TailoringRepository) DeleteVariant(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tailoring_variants WHERE id = $1`, id)
	if err != nil {
		return domain.NewDatabaseError("delete tailoring variant", err)
	}
	if tag.RowsAffected() == 0 {
		return tailor.ErrVariantNotFound
	}
	return nil
}

func scanTailoringVariant(row pgx.Row) (*ports.TailoringVariant, error) {
	var v ports.TailoringVariant
	var createdAt time.Time
	var pdfPath *string

	if err := row.Scan(
		&v.ID, &v.UserID, &v.JobTitle, &v.Company, &v.SourcePath,
		&pdfPath, &v.OutputFilename, &createdAt,
		&v.ATSScoreOverall, &v.FitScoreOverall,
	); err != nil {
		return nil, err
	}

	if pdfPath != nil {
		v.PDFPath = *pdfPath
	}
	v.CreatedAtUnix = createdAt.Unix()

	return &v, nil
}

// TailoringRepository returns a new TailoringRepository instance.
func (db *DB) TailoringRepository() *TailoringRepository {
	return &TailoringRepository{pool: db.pool}
}
