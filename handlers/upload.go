package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/document"
)

// uploadReader extracts text from multipart file fields
type uploadReader struct {
	extractor *document.Extractor
	maxBytes  int64
}

func newUploadReader(extractor *document.Extractor, maxUploadMB int) uploadReader {
	if maxUploadMB <= 0 {
		maxUploadMB = 10
	}
	return uploadReader{extractor: extractor, maxBytes: int64(maxUploadMB) << 20}
}

// read returns the extracted text of the named file field. ok is false when
// the field is absent.
func (u uploadReader) read(c *gin.Context, field string) (text string, ok bool, err error) {
	file, header, err := c.Request.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperr.New(apperr.KindInvalidInput, "upload."+field, err)
	}
	defer file.Close()

	if !document.IsSupportedFormat(header.Filename) {
		return "", true, apperr.Newf(apperr.KindInvalidInput, "upload."+field, "unsupported file type %q (use PDF or TXT)", header.Filename)
	}
	if header.Size > u.maxBytes {
		return "", true, apperr.Newf(apperr.KindInvalidInput, "upload."+field, "file exceeds %d MB", u.maxBytes>>20)
	}

	log.Printf("[Handler] Received %s: %s (%d bytes)", field, header.Filename, header.Size)
	text, err = u.extractor.ExtractUpload(file, header.Filename)
	if err != nil {
		return "", true, fmt.Errorf("failed to extract %s: %w", field, err)
	}
	return text, true, nil
}
