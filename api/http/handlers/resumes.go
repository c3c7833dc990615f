package handlers

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/cvparse/api/http/presenter"
	"github.com/artem13815/cvparse/pkg/export"
	"github.com/artem13815/cvparse/pkg/resume"
)

// ResumesHandler manages stored resumes: upload, listing, profiles and
// exports.
type ResumesHandler struct {
	repo      resume.Repository
	profiles  resume.ProfileUseCase
	extractor *resume.Extractor
	maxBytes  int64
	baseDir   string
}

func NewResumesHandler(repo resume.Repository, profiles resume.ProfileUseCase, extractor *resume.Extractor, baseDir string, maxBytes int64) *ResumesHandler {
	return &ResumesHandler{
		repo:      repo,
		profiles:  profiles,
		extractor: extractor,
		maxBytes:  maxBytes,
		baseDir:   baseDir,
	}
}

// Upload stores a resume file, extracts its text and builds the structured
// profile.
// @Summary Upload a resume
// @Description Accepts PDF/DOCX/TXT, stores the file, extracts plain text and runs the parsing pipeline.
// @Tags        resumes
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "resume file (pdf, docx or txt)"
// @Security    BearerAuth
// @Success     201 {object} map[string]any
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /resumes [post]
func (h *ResumesHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, docx or txt)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()
	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	// Extract text before touching storage: unsupported or unreadable files
	// are rejected up front.
	txt, err := h.extractor.ExtractText(fh.Filename, data)
	if err != nil {
		return parseError(c, err)
	}
	// Save to disk
	if err := os.MkdirAll(h.baseDir, 0o755); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to prepare storage")
	}
	id := uuid.New()
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(h.baseDir, id.String()+ext)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to store file")
	}
	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, _ := uuid.Parse(ownerIDStr)
	meta := resume.Resume{
		ID:         id,
		OwnerID:    ownerID,
		Filename:   fh.Filename,
		MimeType:   fh.Header.Get("Content-Type"),
		Size:       fh.Size,
		StorageURI: dst,
	}
	if err := h.repo.Create(c.Context(), meta); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save metadata")
	}
	if err := h.repo.SaveParsed(c.Context(), resume.Parsed{ResumeID: id, Text: txt}); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save parsed text")
	}
	rec := h.profiles.BuildAndSave(c.Context(), id, txt)
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":            id.String(),
		"filename":      fh.Filename,
		"sizeB":         fh.Size,
		"profileStatus": rec.Status,
	})
}

// List returns the user's resumes (all of them for admins).
// @Summary List resumes
// @Tags    resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resume.Resume
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes [get]
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	isAdmin, _ := c.Locals("isAdmin").(bool)
	userIDStr, _ := c.Locals("userId").(string)
	uid, _ := uuid.Parse(userIDStr)
	limit, offset := parseLimitOffset(c, 50)
	var items []resume.Resume
	var err error
	if isAdmin {
		items, err = h.repo.ListAll(c.Context(), limit, offset)
	} else {
		items, err = h.repo.ListByOwner(c.Context(), uid, limit, offset)
	}
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list resumes")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get returns metadata and the extracted text.
// @Summary Get a resume
// @Tags    resumes
// @Produce json
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	meta, err := h.meta(c)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	parsed, _ := h.repo.GetParsed(c.Context(), meta.ID) // may be empty if not parsed
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"meta":   meta,
		"parsed": parsed.Text,
	})
}

// Profile returns the structured record built from the resume, rebuilding it
// from the stored text when missing.
// @Summary Get the structured profile of a resume
// @Tags    resumes
// @Produce json
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.ProfileRecord
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/profile [get]
func (h *ResumesHandler) Profile(c *fiber.Ctx) error {
	rec, err := h.profile(c)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// ExportCSV downloads the profile as {section, key, value} CSV rows.
// @Summary Export the structured profile as CSV
// @Tags    resumes
// @Produce text/csv
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/export.csv [get]
func (h *ResumesHandler) ExportCSV(c *fiber.Ctx) error {
	rec, err := h.profile(c)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rec.Profile); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to render CSV")
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume-`+rec.ResumeID.String()+`.csv"`)
	return c.Send(buf.Bytes())
}

// ExportJSON downloads the profile as indented JSON.
// @Summary Export the structured profile as JSON
// @Tags    resumes
// @Produce json
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.ParsedResume
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/export.json [get]
func (h *ResumesHandler) ExportJSON(c *fiber.Ctx) error {
	rec, err := h.profile(c)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	payload, err := export.ToJSON(rec.Profile)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to render JSON")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(payload)
}

// Download serves the original file.
// @Summary Download the original resume file
// @Tags    resumes
// @Produce application/octet-stream
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/file [get]
func (h *ResumesHandler) Download(c *fiber.Ctx) error {
	meta, err := h.meta(c)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	return c.Download(meta.StorageURI, meta.Filename)
}

// Delete removes the resume, its derived data and the stored file.
// @Summary Delete a resume
// @Tags    resumes
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [delete]
func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	userIDStr, _ := c.Locals("userId").(string)
	uid, _ := uuid.Parse(userIDStr)
	var meta resume.Resume
	if isAdmin {
		meta, err = h.repo.DeleteAny(c.Context(), id)
	} else {
		meta, err = h.repo.DeleteForOwner(c.Context(), uid, id)
	}
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	_ = os.Remove(meta.StorageURI)
	return c.SendStatus(http.StatusNoContent)
}

func (h *ResumesHandler) meta(c *fiber.Ctx) (resume.Resume, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return resume.Resume{}, err
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	userIDStr, _ := c.Locals("userId").(string)
	uid, _ := uuid.Parse(userIDStr)
	if isAdmin {
		return h.repo.GetMetaAny(c.Context(), id)
	}
	return h.repo.GetMetaForOwner(c.Context(), uid, id)
}

func (h *ResumesHandler) profile(c *fiber.Ctx) (resume.ProfileRecord, error) {
	meta, err := h.meta(c)
	if err != nil {
		return resume.ProfileRecord{}, err
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	userIDStr, _ := c.Locals("userId").(string)
	uid, _ := uuid.Parse(userIDStr)
	var rec resume.ProfileRecord
	if isAdmin {
		rec, err = h.repo.GetProfileAny(c.Context(), meta.ID)
	} else {
		rec, err = h.repo.GetProfileForOwner(c.Context(), uid, meta.ID)
	}
	if err == nil {
		return rec, nil
	}
	// No stored profile yet: rebuild from the extracted text.
	return h.profiles.BuildFromStored(c.Context(), meta.ID)
}
