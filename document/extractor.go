package document

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/resumecoach/backend/apperr"
)

var supportedFormats = []string{".pdf", ".txt", ".md"}

// Extractor turns resume and job description files into plain text
type Extractor struct {
	tempDir string
}

// NewExtractor creates an extractor that stages uploads in the OS temp dir
func NewExtractor() *Extractor {
	return &Extractor{}
}

// NewExtractorWithTempDir stages uploads in dir instead of the OS temp dir
func NewExtractorWithTempDir(dir string) *Extractor {
	return &Extractor{tempDir: dir}
}

// ExtractFile reads the file at path. PDFs are decoded page by page and the
// page texts concatenated; every other extension is returned verbatim.
func (e *Extractor) ExtractFile(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extractPDF(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperr.New(apperr.KindIO, "document.extract", fmt.Errorf("failed to read %s: %w", filepath.Base(path), err))
	}
	return string(data), nil
}

// ExtractUpload stages r in a uniquely named temp file carrying filename's
// extension, extracts it, and removes the file before returning.
func (e *Extractor) ExtractUpload(r io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	tmp, err := os.CreateTemp(e.tempDir, "upload-*"+ext)
	if err != nil {
		return "", apperr.New(apperr.KindIO, "document.upload", fmt.Errorf("failed to create temp file: %w", err))
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", apperr.New(apperr.KindIO, "document.upload", fmt.Errorf("failed to write upload: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return "", apperr.New(apperr.KindIO, "document.upload", fmt.Errorf("failed to close temp file: %w", err))
	}

	return e.ExtractFile(path)
}

// IsSupportedFormat checks if the file format is supported
func IsSupportedFormat(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", apperr.New(apperr.KindIO, "document.extract", fmt.Errorf("failed to open PDF %s: %w", filepath.Base(path), err))
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		sb.WriteString(pageText(r, i))
	}
	return sb.String(), nil
}

// pageText returns "" for pages without a text layer or whose content stream
// the parser cannot decode.
func pageText(r *pdf.Reader, num int) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[Document] Page %d could not be decoded: %v", num, rec)
			text = ""
		}
	}()

	page := r.Page(num)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		log.Printf("[Document] Page %d has no extractable text: %v", num, err)
		return ""
	}
	return text
}
