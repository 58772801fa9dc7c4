package repomanager

import (
	"context"
	"database/sql"

	"github.com/t4gged/t4gged/internal/dbx"
	"github.com/t4gged/t4gged/internal/server/repositories/friendships"
	"github.com/t4gged/t4gged/internal/server/repositories/identities"
	"github.com/t4gged/t4gged/internal/server/repositories/invites"
	"github.com/t4gged/t4gged/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// repository code runs against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Identities(db dbx.DBTX) identities.Repository
	Invites(db dbx.DBTX) invites.Repository
	Friendships(db dbx.DBTX) friendships.Repository
}
