package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andeslegal/cobranza/pkg/models"
)

// uploadDocumentHandler accepts one multipart file. The form fields are
// "file" (required), "kind" (required) and "name" (defaults to the
// uploaded filename).
func (s *Server) uploadDocumentHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	name := c.PostForm("name")
	if name == "" {
		name = fileHeader.Filename
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	doc, err := s.documents.Upload(c.Request.Context(), models.UploadDocumentRequest{
		CaseID:      c.Param("id"),
		Kind:        models.DocumentKind(c.PostForm("kind")),
		Name:        name,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (s *Server) listDocumentsHandler(c *gin.Context) {
	docs, err := s.documents.List(c.Request.Context(), c.Param("id"), models.DocumentKind(c.Query("kind")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs, "count": len(docs)})
}

func (s *Server) downloadDocumentHandler(c *gin.Context) {
	caseID := c.Param("id")
	docID := c.Param("docId")

	// ?url=true returns a short-lived direct link instead of the bytes.
	if c.Query("url") == "true" {
		url, err := s.documents.PresignedURL(c.Request.Context(), caseID, docID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
		return
	}

	doc, content, err := s.documents.Download(c.Request.Context(), caseID, docID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Name+`"`)
	c.Data(http.StatusOK, doc.ContentType, content)
}

func (s *Server) reorderDocumentsHandler(c *gin.Context) {
	var req models.ReorderDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	docs, err := s.documents.Reorder(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

type renameDocumentRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) renameDocumentHandler(c *gin.Context) {
	var req renameDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	doc, err := s.documents.Rename(c.Request.Context(), c.Param("id"), c.Param("docId"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) deleteDocumentHandler(c *gin.Context) {
	if err := s.documents.Delete(c.Request.Context(), c.Param("id"), c.Param("docId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
