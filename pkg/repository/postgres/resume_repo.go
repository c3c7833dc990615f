package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/cvparse/pkg/resume"
)

// ResumeRepository stores uploaded resumes, their extracted text and the
// structured profile built by the parsing pipeline.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) (*ResumeRepository, error) {
	r := &ResumeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResumeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	owner_id UUID,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	size_bytes BIGINT NOT NULL,
	storage_uri TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS parsed_resumes (
	resume_id UUID PRIMARY KEY REFERENCES resumes(id) ON DELETE CASCADE,
	text TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS resume_profiles (
	resume_id UUID PRIMARY KEY REFERENCES resumes(id) ON DELETE CASCADE,
	status TEXT NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	profile JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *ResumeRepository) Create(ctx context.Context, rs resume.Resume) error {
	if rs.ID == uuid.Nil {
		rs.ID = uuid.New()
	}
	if rs.CreatedAt.IsZero() {
		rs.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO resumes (id, owner_id, filename, mime_type, size_bytes, storage_uri, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, rs.ID, rs.OwnerID, rs.Filename, rs.MimeType, rs.Size, rs.StorageURI, rs.CreatedAt)
	return err
}

func (r *ResumeRepository) SaveParsed(ctx context.Context, p resume.Parsed) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO parsed_resumes (resume_id, text)
VALUES ($1, $2)
ON CONFLICT (resume_id) DO UPDATE SET text = EXCLUDED.text
`, p.ResumeID, p.Text)
	return err
}

func (r *ResumeRepository) GetParsed(ctx context.Context, resumeID uuid.UUID) (resume.Parsed, error) {
	row := r.pool.QueryRow(ctx, `
SELECT resume_id, text FROM parsed_resumes WHERE resume_id = $1
`, resumeID)
	var p resume.Parsed
	if err := row.Scan(&p.ResumeID, &p.Text); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Parsed{}, pgx.ErrNoRows
		}
		return resume.Parsed{}, err
	}
	return p, nil
}

func (r *ResumeRepository) GetMetaForOwner(ctx context.Context, ownerID, id uuid.UUID) (resume.Resume, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, filename, mime_type, size_bytes, storage_uri, created_at
FROM resumes WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanResume(row)
}

func (r *ResumeRepository) GetMetaAny(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, filename, mime_type, size_bytes, storage_uri, created_at
FROM resumes WHERE id = $1
`, id)
	return scanResume(row)
}

func (r *ResumeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Resume, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, filename, mime_type, size_bytes, storage_uri, created_at
FROM resumes WHERE owner_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResumes(rows)
}

func (r *ResumeRepository) ListAll(ctx context.Context, limit, offset int) ([]resume.Resume, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, filename, mime_type, size_bytes, storage_uri, created_at
FROM resumes
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResumes(rows)
}

func (r *ResumeRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (resume.Resume, error) {
	row := r.pool.QueryRow(ctx, `
DELETE FROM resumes WHERE id = $1 AND owner_id = $2
RETURNING id, owner_id, filename, mime_type, size_bytes, storage_uri, created_at
`, id, ownerID)
	return scanResume(row)
}

func (r *ResumeRepository) DeleteAny(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.pool.QueryRow(ctx, `
DELETE FROM resumes WHERE id = $1
RETURNING id, owner_id, filename, mime_type, size_bytes, storage_uri, created_at
`, id)
	return scanResume(row)
}

func (r *ResumeRepository) UpsertProfile(ctx context.Context, rec resume.ProfileRecord) error {
	payload, err := json.Marshal(rec.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO resume_profiles (resume_id, status, error, profile, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (resume_id) DO UPDATE SET
	status = EXCLUDED.status,
	error = EXCLUDED.error,
	profile = EXCLUDED.profile,
	updated_at = EXCLUDED.updated_at
`, rec.ResumeID, string(rec.Status), rec.Error, payload, rec.UpdatedAt)
	return err
}

func (r *ResumeRepository) GetProfileForOwner(ctx context.Context, ownerID, resumeID uuid.UUID) (resume.ProfileRecord, error) {
	row := r.pool.QueryRow(ctx, `
SELECT p.resume_id, p.status, p.error, p.profile, p.updated_at
FROM resume_profiles p
JOIN resumes r ON r.id = p.resume_id
WHERE p.resume_id = $1 AND r.owner_id = $2
`, resumeID, ownerID)
	return scanProfile(row)
}

func (r *ResumeRepository) GetProfileAny(ctx context.Context, resumeID uuid.UUID) (resume.ProfileRecord, error) {
	row := r.pool.QueryRow(ctx, `
SELECT resume_id, status, error, profile, updated_at
FROM resume_profiles WHERE resume_id = $1
`, resumeID)
	return scanProfile(row)
}

func scanResume(row pgx.Row) (resume.Resume, error) {
	var m resume.Resume
	var created time.Time
	if err := row.Scan(&m.ID, &m.OwnerID, &m.Filename, &m.MimeType, &m.Size, &m.StorageURI, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, pgx.ErrNoRows
		}
		return resume.Resume{}, err
	}
	m.CreatedAt = created.UTC()
	return m, nil
}

func scanResumes(rows pgx.Rows) ([]resume.Resume, error) {
	var res []resume.Resume
	for rows.Next() {
		m, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func scanProfile(row pgx.Row) (resume.ProfileRecord, error) {
	var rec resume.ProfileRecord
	var status string
	var payload []byte
	var updated time.Time
	if err := row.Scan(&rec.ResumeID, &status, &rec.Error, &payload, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.ProfileRecord{}, pgx.ErrNoRows
		}
		return resume.ProfileRecord{}, err
	}
	if err := json.Unmarshal(payload, &rec.Profile); err != nil {
		return resume.ProfileRecord{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	rec.Status = resume.ProfileStatus(status)
	rec.UpdatedAt = updated.UTC()
	return rec, nil
}
