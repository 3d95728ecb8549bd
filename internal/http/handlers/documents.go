package handlers

import (
	"io"
	"net/http"
	"strconv"

	"haulhub/internal/domain/models"
	"haulhub/internal/http/middleware"
	"haulhub/internal/repositories"
	"haulhub/internal/services"
	"haulhub/internal/utils"

	"github.com/gin-gonic/gin"
)

const maxDocumentBytes = 20 << 20 // 20 MiB per upload

// POST /api/trips/:id/documents (multipart, field "file")
func UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "file field is required")
		return
	}
	if fileHeader.Size > maxDocumentBytes {
		respondError(c, http.StatusBadRequest, "validation_error", "file too large")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "cannot read file")
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxDocumentBytes+1))
	if err != nil || int64(len(content)) > maxDocumentBytes {
		respondError(c, http.StatusBadRequest, "validation_error", "cannot read file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	actor := middleware.RequestContext(c)
	doc := models.Document{
		TripID:      c.Param("id"),
		FileName:    utils.SafeFilenamePart(fileHeader.Filename),
		ContentType: contentType,
		SizeBytes:   int64(len(content)),
		UploadedBy:  actor.UserID,
		UploadedAt:  utils.NowUTC(),
	}

	id, err := repositories.DocumentRepository{}.Insert(doc, content)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	doc.ID = id
	c.JSON(http.StatusCreated, doc)
}

// GET /api/trips/:id/documents
func ListDocuments(c *gin.Context) {
	docs, err := repositories.DocumentRepository{}.ListByTrip(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GET /api/documents/:docId
func DownloadDocument(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("docId"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid id")
		return
	}

	doc, content, err := repositories.DocumentRepository{}.GetContent(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Data(http.StatusOK, doc.ContentType, content)
}

// GET /api/trips/:id/rate-confirmation
func GetRateConfirmationPDF(c *gin.Context) {
	svc := services.DocsService{
		TripRepo:  repositories.TripRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, name, err := svc.RateConfirmation(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/trips/:id/settlement
func GetDriverSettlementPDF(c *gin.Context) {
	svc := services.DocsService{
		TripRepo:  repositories.TripRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, name, err := svc.DriverSettlement(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
