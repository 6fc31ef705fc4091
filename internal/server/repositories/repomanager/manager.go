// Package repomanager wires repository implementations to database handles
// and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/onronder/durunotes-keys/internal/dbx"
	"github.com/onronder/durunotes-keys/internal/server/repositories/amkkeys"
	"github.com/onronder/durunotes-keys/internal/server/repositories/refreshtokens"
	"github.com/onronder/durunotes-keys/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	AmkKeys(db dbx.DBTX) amkkeys.Repository
}
