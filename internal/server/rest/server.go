// Package rest exposes the CloudVault HTTP API. Routing and request binding
// are delegated to gin; business logic lives in the services package.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/cloudvault/internal/logging"
	"github.com/dmitrijs2005/cloudvault/internal/server/models"
	"github.com/gin-gonic/gin"
)

// UserDirectory is the slice of the user service the handlers need.
type UserDirectory interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ListOthers(ctx context.Context, callerID int64, search string) ([]*models.User, error)
}

// FileVault is the slice of the file service the handlers need.
type FileVault interface {
	Upload(ctx context.Context, ownerID int64, filename string, data []byte, contentType string) (*models.SavedFile, error)
	Download(ctx context.Context, key string) ([]byte, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.SavedFile, error)
	DeleteRecord(ctx context.Context, callerID, recordID int64) error
	DeleteWithBlob(ctx context.Context, callerID, recordID int64) error
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserDirectory
	files     FileVault
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, users UserDirectory, files FileVault, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "rest_server"),
		users:     users,
		files:     files,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the gin engine with the full route table. Registration and
// login are the only public routes; everything else sits behind the token
// gate.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", s.handleRegister)
		authGroup.POST("/login", s.handleLogin)
	}

	protected := api.Group("", s.authRequired())
	{
		protected.POST("/s3/upload", s.handleUpload)
		protected.GET("/s3/download/:key", s.handleDownload)
		protected.DELETE("/s3/delete/:fileId", s.handleDeleteWithBlob)

		protected.GET("/files/my", s.handleListMyFiles)
		protected.DELETE("/files/:id", s.handleDeleteRecord)

		protected.GET("/user/get-all-users", s.handleGetAllUsers)
		protected.GET("/user/get-saved-files", s.handleGetSavedFiles)
	}

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server...", "addr", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
