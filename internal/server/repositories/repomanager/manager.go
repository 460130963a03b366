// Package repomanager hands out repositories bound to either a database
// handle or a transaction, so services can compose them inside dbx.WithTx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/exports"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/notes"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/notifications"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/shares"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
	Shares(db dbx.DBTX) shares.Repository
	Notifications(db dbx.DBTX) notifications.Repository
	Exports(db dbx.DBTX) exports.Repository
}
