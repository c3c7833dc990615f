package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository for use case tests.
type fakeRepo struct {
	parsed   map[uuid.UUID]Parsed
	profiles map[uuid.UUID]ProfileRecord
	upserts  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		parsed:   make(map[uuid.UUID]Parsed),
		profiles: make(map[uuid.UUID]ProfileRecord),
	}
}

var errNotFound = errors.New("not found")

func (f *fakeRepo) Create(ctx context.Context, r Resume) error { return nil }

func (f *fakeRepo) SaveParsed(ctx context.Context, p Parsed) error {
	f.parsed[p.ResumeID] = p
	return nil
}

func (f *fakeRepo) GetParsed(ctx context.Context, resumeID uuid.UUID) (Parsed, error) {
	p, ok := f.parsed[resumeID]
	if !ok {
		return Parsed{}, errNotFound
	}
	return p, nil
}

func (f *fakeRepo) GetMetaForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error) {
	return Resume{}, errNotFound
}

func (f *fakeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error) {
	return nil, nil
}

func (f *fakeRepo) GetMetaAny(ctx context.Context, id uuid.UUID) (Resume, error) {
	return Resume{}, errNotFound
}

func (f *fakeRepo) ListAll(ctx context.Context, limit, offset int) ([]Resume, error) {
	return nil, nil
}

func (f *fakeRepo) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error) {
	return Resume{}, errNotFound
}

func (f *fakeRepo) DeleteAny(ctx context.Context, id uuid.UUID) (Resume, error) {
	return Resume{}, errNotFound
}

func (f *fakeRepo) UpsertProfile(ctx context.Context, rec ProfileRecord) error {
	f.profiles[rec.ResumeID] = rec
	f.upserts++
	return nil
}

func (f *fakeRepo) GetProfileForOwner(ctx context.Context, ownerID, resumeID uuid.UUID) (ProfileRecord, error) {
	rec, ok := f.profiles[resumeID]
	if !ok {
		return ProfileRecord{}, errNotFound
	}
	return rec, nil
}

func (f *fakeRepo) GetProfileAny(ctx context.Context, resumeID uuid.UUID) (ProfileRecord, error) {
	rec, ok := f.profiles[resumeID]
	if !ok {
		return ProfileRecord{}, errNotFound
	}
	return rec, nil
}

func TestBuildAndSave(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProfileService(repo, NewParser())
	id := uuid.New()

	rec := svc.BuildAndSave(context.Background(), id, sampleResume)

	assert.Equal(t, ProfileStatusOK, rec.Status)
	assert.Empty(t, rec.Error)
	assert.Equal(t, id, rec.ResumeID)
	assert.Contains(t, rec.Profile.Skills, "python")
	// a pending record is written before the final one
	assert.Equal(t, 2, repo.upserts)

	stored, err := repo.GetProfileAny(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, ProfileStatusOK, stored.Status)
}

func TestBuildAndSaveEmptyText(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProfileService(repo, NewParser())
	id := uuid.New()

	rec := svc.BuildAndSave(context.Background(), id, "   \n  ")

	assert.Equal(t, ProfileStatusFailed, rec.Status)
	assert.Equal(t, "empty resume text", rec.Error)
	assert.Empty(t, rec.Profile.Skills)
	assert.NotNil(t, rec.Profile.Skills)
}

func TestBuildFromStored(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProfileService(repo, NewParser())
	id := uuid.New()

	_, err := svc.BuildFromStored(context.Background(), id)
	require.Error(t, err)

	require.NoError(t, repo.SaveParsed(context.Background(), Parsed{ResumeID: id, Text: sampleResume}))

	rec, err := svc.BuildFromStored(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, ProfileStatusOK, rec.Status)
	assert.Len(t, rec.Profile.Education, 1)
}
