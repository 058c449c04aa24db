// Package repomanager bundles repository constructors so services can obtain
// repositories over either a plain connection or a transaction handle.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cloudvault/internal/dbx"
	"github.com/dmitrijs2005/cloudvault/internal/server/repositories/files"
	"github.com/dmitrijs2005/cloudvault/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Files(db dbx.DBTX) files.Repository
}
