package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path"

	"github.com/dmitrijs2005/cloudvault/internal/common"
	"github.com/dmitrijs2005/cloudvault/internal/server/models"
	"github.com/dmitrijs2005/cloudvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/cloudvault/internal/server/storage"
	"github.com/google/uuid"
)

// FileService owns the upload/download/delete flows: bytes go to object
// storage, the registry record goes to Postgres. The two writes are separate
// operations with no atomicity between them.
type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.ObjectStore
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager, store storage.ObjectStore) *FileService {
	return &FileService{
		db:          db,
		repomanager: m,
		store:       store,
	}
}

// NewStorageKey produces a unique single-segment object key for an upload.
// The uuid prefix keeps concurrent uploads of the same filename from
// clobbering each other.
func NewStorageKey(filename string) string {
	return fmt.Sprintf("%s-%s", uuid.New(), path.Base(filename))
}

// KeyFromLink recovers the object key from a stored public URL.
func KeyFromLink(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return path.Base(link)
	}
	return path.Base(u.Path)
}

// Upload stores the payload in the bucket and registers the resulting URL
// for ownerID. A dangling ownerID yields common.ErrOwnerNotFound.
func (s *FileService) Upload(ctx context.Context, ownerID int64, filename string, data []byte, contentType string) (*models.SavedFile, error) {

	key := NewStorageKey(filename)

	link, err := s.store.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("error uploading file: %w", err)
	}

	record := &models.SavedFile{FileLink: link, UserID: ownerID}

	record, err = s.repomanager.Files(s.db).Create(ctx, record)
	if err != nil {
		if errors.Is(err, common.ErrOwnerNotFound) {
			return nil, common.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("error registering upload: %w", err)
	}

	return record, nil
}

// Download fetches the object's bytes by key, common.ErrNotFound if absent.
func (s *FileService) Download(ctx context.Context, key string) ([]byte, error) {
	return s.store.Get(ctx, key)
}

// ListByOwner returns the caller's registry records.
func (s *FileService) ListByOwner(ctx context.Context, ownerID int64) ([]*models.SavedFile, error) {
	return s.repomanager.Files(s.db).ListByUser(ctx, ownerID)
}

// DeleteRecord removes a registry record after checking ownership:
// common.ErrNotFound when the record does not exist, common.ErrForbidden
// when callerID does not own it. The blob is left in place.
func (s *FileService) DeleteRecord(ctx context.Context, callerID, recordID int64) error {
	repo := s.repomanager.Files(s.db)

	record, err := repo.GetByID(ctx, recordID)
	if err != nil {
		return err
	}
	if record.UserID != callerID {
		return common.ErrForbidden
	}

	return repo.Delete(ctx, recordID)
}

// DeleteWithBlob removes both the object-storage blob and the registry
// record, ownership-checked like DeleteRecord. The blob goes first; there is
// no rollback if the record delete then fails.
func (s *FileService) DeleteWithBlob(ctx context.Context, callerID, recordID int64) error {
	repo := s.repomanager.Files(s.db)

	record, err := repo.GetByID(ctx, recordID)
	if err != nil {
		return err
	}
	if record.UserID != callerID {
		return common.ErrForbidden
	}

	if err := s.store.Delete(ctx, KeyFromLink(record.FileLink)); err != nil {
		return fmt.Errorf("error deleting object: %w", err)
	}

	return repo.Delete(ctx, recordID)
}
