package rest

import (
	"net/http"

	"github.com/dmitrijs2005/cloudvault/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleGetAllUsers(c *gin.Context) {
	user := currentUser(c)
	search := c.Query("search")

	users, err := s.users.ListOthers(c.Request.Context(), user.ID, search)
	if err != nil {
		respondMappedError(c, err)
		return
	}

	if users == nil {
		users = []*models.User{}
	}
	c.JSON(http.StatusOK, gin.H{"status": true, "users": users})
}

func (s *Server) handleGetSavedFiles(c *gin.Context) {
	user := currentUser(c)

	records, err := s.files.ListByOwner(c.Request.Context(), user.ID)
	if err != nil {
		respondMappedError(c, err)
		return
	}

	if records == nil {
		records = []*models.SavedFile{}
	}
	c.JSON(http.StatusOK, gin.H{"status": true, "savedFiles": records})
}
