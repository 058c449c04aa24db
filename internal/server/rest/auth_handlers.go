package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *RegisterRequest) validate() []string {
	var errs []string
	if h.Email == "" {
		errs = append(errs, "email is required")
	}
	if h.Password == "" {
		errs = append(errs, "password is required")
	}
	if h.Username == "" {
		errs = append(errs, "username is required")
	}
	return errs
}

func (s *Server) handleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		respondError(c, http.StatusBadRequest, errs)
		return
	}

	ctx := c.Request.Context()

	_, err := s.users.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		s.logger.Error(ctx, "registration failed", "email", req.Email, "error", err.Error())
		respondMappedError(c, err)
		return
	}

	s.logger.Info(ctx, "user registered", "email", req.Email)
	c.JSON(http.StatusOK, gin.H{"status": true, "message": "User created successfully"})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Email or password is required")
		return
	}

	ctx := c.Request.Context()

	token, user, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn(ctx, "login rejected", "email", req.Email)
		respondMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"data": gin.H{
			"token": token,
			"data":  user,
		},
	})
}
