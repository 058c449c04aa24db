package rest

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/cloudvault/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleUpload(c *gin.Context) {
	user := currentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "file is required")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respondMappedError(c, err)
		return
	}

	ctx := c.Request.Context()
	contentType := fileHeader.Header.Get("Content-Type")

	record, err := s.files.Upload(ctx, user.ID, fileHeader.Filename, data, contentType)
	if err != nil {
		s.logger.Error(ctx, "upload failed", "filename", fileHeader.Filename, "error", err.Error())
		respondMappedError(c, err)
		return
	}

	s.logger.Info(ctx, "file uploaded", "user_id", user.ID, "url", record.FileLink)
	c.JSON(http.StatusCreated, gin.H{"status": true, "url": record.FileLink})
}

func (s *Server) handleDownload(c *gin.Context) {
	key := c.Param("key")

	data, err := s.files.Download(c.Request.Context(), key)
	if err != nil {
		respondMappedError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", key))
	c.Data(http.StatusOK, "application/octet-stream", data)
}

func (s *Server) handleDeleteWithBlob(c *gin.Context) {
	user := currentUser(c)

	recordID, err := strconv.ParseInt(c.Param("fileId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid file id")
		return
	}

	ctx := c.Request.Context()

	if err := s.files.DeleteWithBlob(ctx, user.ID, recordID); err != nil {
		s.logger.Error(ctx, "file delete failed", "record_id", recordID, "error", err.Error())
		respondMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "File deleted successfully"})
}

func (s *Server) handleListMyFiles(c *gin.Context) {
	user := currentUser(c)

	records, err := s.files.ListByOwner(c.Request.Context(), user.ID)
	if err != nil {
		respondMappedError(c, err)
		return
	}

	if records == nil {
		records = []*models.SavedFile{}
	}
	c.JSON(http.StatusOK, gin.H{"status": true, "files": records})
}

func (s *Server) handleDeleteRecord(c *gin.Context) {
	user := currentUser(c)

	recordID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid file id")
		return
	}

	if err := s.files.DeleteRecord(c.Request.Context(), user.ID, recordID); err != nil {
		respondMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Deleted"})
}
