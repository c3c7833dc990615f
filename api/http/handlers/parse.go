package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvparse/api/http/presenter"
	"github.com/artem13815/cvparse/pkg/resume"
)

// ParseHandler is the stateless parsing endpoint: text or file in,
// structured record out. Nothing is persisted.
type ParseHandler struct {
	parser   *resume.Parser
	maxBytes int64
}

func NewParseHandler(parser *resume.Parser, maxBytes int64) *ParseHandler {
	return &ParseHandler{parser: parser, maxBytes: maxBytes}
}

type parseTextRequest struct {
	Text string `json:"text"`
}

// Parse extracts a structured record from an uploaded resume file or from
// raw text submitted as JSON.
// @Summary Parse a resume without storing it
// @Description Accepts multipart "file" (pdf/docx/txt) or JSON {"text": "..."} and returns the extracted record.
// @Tags    parse
// @Accept  multipart/form-data
// @Accept  json
// @Produce json
// @Param   file formData file false "resume file (pdf, docx or txt)"
// @Param   input body parseTextRequest false "raw resume text"
// @Security BearerAuth
// @Success 200 {object} resume.ParsedResume
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 501 {object} presenter.ErrorResponse
// @Router  /resume/parse [post]
func (h *ParseHandler) Parse(c *fiber.Ctx) error {
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		file, err := fh.Open()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
		}
		defer file.Close()
		data, err := readAtMost(file, h.maxBytes)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		parsed, err := h.parser.ParseBytes(fh.Filename, data)
		if err != nil {
			return parseError(c, err)
		}
		return presenter.JSON(c, http.StatusOK, parsed)
	}

	var req parseTextRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "expected multipart file or JSON payload with text")
	}
	if strings.TrimSpace(req.Text) == "" {
		return presenter.Error(c, http.StatusBadRequest, "text is required")
	}
	return presenter.JSON(c, http.StatusOK, h.parser.ParseText(req.Text))
}

// parseError maps extraction failures onto HTTP statuses: a missing decoding
// backend is 501, everything else (unsupported type, corrupt document) is 400.
func parseError(c *fiber.Ctx, err error) error {
	var capErr *resume.CapabilityError
	if errors.As(err, &capErr) {
		return presenter.Error(c, http.StatusNotImplemented, capErr.Error())
	}
	if errors.Is(err, resume.ErrUnsupportedFormat) {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to parse resume: %v", err))
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
