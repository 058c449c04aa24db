// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and directory lookups.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cloudvault/internal/common"
	"github.com/dmitrijs2005/cloudvault/internal/dbx"
	"github.com/dmitrijs2005/cloudvault/internal/server/auth"
	"github.com/dmitrijs2005/cloudvault/internal/server/config"
	"github.com/dmitrijs2005/cloudvault/internal/server/models"
	"github.com/dmitrijs2005/cloudvault/internal/server/repositories/repomanager"
)

// UserService provides account operations:
//   - Register: create users with a hashed password
//   - Login: verify credentials and mint a bearer token
//   - FindByEmail / ListOthers / EmailExists: directory lookups
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                *auth.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories, the injected
// password hasher and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.Hasher, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account. The email must be unused; a taken email
// yields common.ErrDuplicateEmail. The existence check and the insert run in
// one transaction, and the unique index on email backstops concurrent
// registrations.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	now := time.Now()
	user := &models.User{
		UserName:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		exists, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return common.ErrDuplicateEmail
		}

		_, err = repo.Create(ctx, user)
		return err
	}); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the password against the stored hash and, on success,
// returns a bearer token bound to the account email plus the account itself.
// Unknown emails and wrong passwords both yield common.ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrUnauthorized
		}
		return "", nil, common.ErrInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrInternal
	}

	return token, user, nil
}

// FindByEmail resolves an account by email, common.ErrNotFound on a miss.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, email)
}

// ListOthers returns every account except the caller's, optionally narrowed
// by a search term on username/email.
func (s *UserService) ListOthers(ctx context.Context, callerID int64, search string) ([]*models.User, error) {
	return s.repomanager.Users(s.db).ListOthers(ctx, callerID, search)
}

// EmailExists reports whether an account with the given email exists.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.repomanager.Users(s.db).ExistsByEmail(ctx, email)
}
