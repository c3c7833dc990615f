package resume

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProfileUseCase builds the structured profile for a stored resume and
// persists it.
type ProfileUseCase interface {
	BuildAndSave(ctx context.Context, resumeID uuid.UUID, resumeText string) ProfileRecord
	BuildFromStored(ctx context.Context, resumeID uuid.UUID) (ProfileRecord, error)
}

type profileService struct {
	repo   Repository
	parser *Parser
}

// NewProfileService returns the default ProfileUseCase backed by the
// heuristic Parser.
func NewProfileService(repo Repository, parser *Parser) ProfileUseCase {
	return &profileService{repo: repo, parser: parser}
}

func (s *profileService) BuildAndSave(ctx context.Context, resumeID uuid.UUID, resumeText string) ProfileRecord {
	rec := ProfileRecord{
		ResumeID:  resumeID,
		Status:    ProfileStatusPending,
		Error:     "",
		Profile:   emptyParsedResume(),
		UpdatedAt: time.Now().UTC(),
	}
	_ = s.repo.UpsertProfile(ctx, rec)

	text := strings.TrimSpace(resumeText)
	if text == "" {
		rec.Status = ProfileStatusFailed
		rec.Error = "empty resume text"
		rec.UpdatedAt = time.Now().UTC()
		_ = s.repo.UpsertProfile(ctx, rec)
		return rec
	}

	// The pipeline is total over non-empty text: a section that yields
	// nothing is an empty field, not a failure.
	rec.Profile = *s.parser.ParseText(text)
	rec.Status = ProfileStatusOK
	rec.Error = ""
	rec.UpdatedAt = time.Now().UTC()
	_ = s.repo.UpsertProfile(ctx, rec)
	return rec
}

// BuildFromStored rebuilds the profile from previously extracted text. It is
// the fallback for resumes uploaded before profiles were built at upload
// time.
func (s *profileService) BuildFromStored(ctx context.Context, resumeID uuid.UUID) (ProfileRecord, error) {
	parsed, err := s.repo.GetParsed(ctx, resumeID)
	if err != nil {
		return ProfileRecord{}, fmt.Errorf("parsed resume text not found: %w", err)
	}
	return s.BuildAndSave(ctx, resumeID, parsed.Text), nil
}
