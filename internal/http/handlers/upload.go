package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aseelyusef9/frontInvApp/internal/http/flash"
	"github.com/aseelyusef9/frontInvApp/internal/http/render"
	"github.com/aseelyusef9/frontInvApp/internal/modules/extraction"
	"github.com/aseelyusef9/frontInvApp/internal/shared/apperr"
	"github.com/aseelyusef9/frontInvApp/internal/storage"
	"github.com/aseelyusef9/frontInvApp/pkg/view"
)

// 10 MB soft limit, enforced before any network call.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	Flash     *flash.Codec
	Extractor *extraction.Client
	Archive   storage.Archive // nil disables archiving
	Logger    *slog.Logger
}

func NewUploadHandler(f *flash.Codec, e *extraction.Client, a storage.Archive, l *slog.Logger) *UploadHandler {
	return &UploadHandler{Flash: f, Extractor: e, Archive: a, Logger: l}
}

func (h *UploadHandler) Get(c *gin.Context) {
	render.Page(c, http.StatusOK, "upload.html", gin.H{
		"Title": "Upload Invoice",
	})
}

func (h *UploadHandler) Post(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		h.reject(c, "Choose a file to upload.")
		return
	}
	if header.Size > maxUploadBytes {
		h.reject(c, "The file is larger than the 10 MB limit.")
		return
	}
	contentType, ok := allowedType(header.Filename, header.Header.Get("Content-Type"))
	if !ok {
		h.reject(c, "Only PDF, JPEG, PNG and GIF files are accepted.")
		return
	}

	file, err := header.Open()
	if err != nil {
		h.reject(c, "The uploaded file could not be read.")
		return
	}
	defer file.Close()

	res, err := h.Extractor.Extract(c.Request.Context(), header.Filename, contentType, file)
	if err != nil {
		h.Logger.Warn("extraction failed",
			"filename", header.Filename,
			"err", err,
		)
		render.RedirectWithFlash(c, h.Flash, "/upload", view.FlashError, apperr.PublicMessage(err))
		return
	}

	// Best effort: archive the original document. A failure here never
	// spoils a successful extraction.
	if h.Archive != nil {
		if f2, err := header.Open(); err == nil {
			put, err := h.Archive.Put(c.Request.Context(), f2, storage.PutInput{
				Filename:    header.Filename,
				ContentType: contentType,
				Size:        header.Size,
			})
			f2.Close()
			if err != nil {
				h.Logger.Warn("archive failed", "filename", header.Filename, "err", err)
			} else {
				h.Logger.Info("document archived", "key", put.Key)
			}
		}
	}

	msg := fmt.Sprintf("Invoice %s extracted successfully.", res.Invoice.InvoiceID)
	render.RedirectWithFlash(c, h.Flash, "/invoice/"+url.PathEscape(res.Invoice.InvoiceID), view.FlashSuccess, msg)
}

// reject reports a pre-flight validation failure the same way backend
// failures are reported, at zero network cost.
func (h *UploadHandler) reject(c *gin.Context, msg string) {
	render.RedirectWithFlash(c, h.Flash, "/upload", view.FlashWarning, msg)
}

func allowedType(filename, declared string) (string, bool) {
	switch strings.ToLower(declared) {
	case "application/pdf", "image/jpeg", "image/png", "image/gif":
		return strings.ToLower(declared), true
	}
	// Browsers do not always fill the part's content type; fall back to
	// the extension.
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf", true
	case ".jpg", ".jpeg":
		return "image/jpeg", true
	case ".png":
		return "image/png", true
	case ".gif":
		return "image/gif", true
	}
	return "", false
}
