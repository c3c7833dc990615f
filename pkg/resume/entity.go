package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Resume stores metadata of an uploaded file.
type Resume struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId,omitempty"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mimeType"`
	Size       int64     `json:"size"`
	StorageURI string    `json:"storageUri,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Parsed stores the plain text extracted from a resume file.
type Parsed struct {
	ResumeID uuid.UUID
	Text     string
}

// Repository is the persistence port for resumes.
type Repository interface {
	Create(ctx context.Context, r Resume) error
	SaveParsed(ctx context.Context, p Parsed) error
	GetParsed(ctx context.Context, resumeID uuid.UUID) (Parsed, error)
	// meta
	GetMetaForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	// admin
	GetMetaAny(ctx context.Context, id uuid.UUID) (Resume, error)
	ListAll(ctx context.Context, limit, offset int) ([]Resume, error)
	// delete (returns deleted meta for file cleanup)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
	DeleteAny(ctx context.Context, id uuid.UUID) (Resume, error)
	// profile
	UpsertProfile(ctx context.Context, rec ProfileRecord) error
	GetProfileForOwner(ctx context.Context, ownerID, resumeID uuid.UUID) (ProfileRecord, error)
	GetProfileAny(ctx context.Context, resumeID uuid.UUID) (ProfileRecord, error)
}
