package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned before any extraction attempt when the
// file extension is not one of .pdf, .docx, .txt.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, docx and txt are allowed")

// CapabilityError signals that a decoding backend is not installed, as
// opposed to the format being unsupported or the document being corrupt.
type CapabilityError struct {
	Backend string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s support is not installed", e.Backend)
}

// Decoder turns raw file bytes into plain text.
type Decoder func(data []byte) (string, error)

// Extractor extracts plain text from supported resume formats.
// PDF and DOCX decoding are optional capabilities: a nil decoder yields a
// CapabilityError naming the missing backend.
type Extractor struct {
	pdf  Decoder
	docx Decoder
}

// NewExtractor returns an Extractor with both decoding backends installed.
func NewExtractor() *Extractor {
	return &Extractor{pdf: extractTextFromPDF, docx: extractTextFromDocx}
}

// NewExtractorWith builds an Extractor with explicit decoders; pass nil to
// leave a backend uninstalled.
func NewExtractorWith(pdfDec, docxDec Decoder) *Extractor {
	return &Extractor{pdf: pdfDec, docx: docxDec}
}

// ExtractText dispatches on the filename extension and returns plain text.
func (e *Extractor) ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		if e.pdf == nil {
			return "", &CapabilityError{Backend: "pdf"}
		}
		return e.pdf(data)
	case ".docx":
		if e.docx == nil {
			return "", &CapabilityError{Backend: "docx"}
		}
		return e.docx(data)
	case ".txt":
		return string(data), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// ExtractFile reads the file at path and extracts its plain text.
func (e *Extractor) ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return e.ExtractText(path, data)
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Convert paragraph boundaries to newlines (very naive but effective).
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	// Remove all XML tags.
	reTags := regexp.MustCompile(`<[^>]+>`)
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

func normalizeWhitespace(s string) string {
	// Collapse excessive whitespace within lines and trim
	re := regexp.MustCompile(`[ \t\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	return strings.TrimSpace(s)
}
