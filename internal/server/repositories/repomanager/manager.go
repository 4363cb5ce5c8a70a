package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tokenlocker/internal/dbx"
	"github.com/dmitrijs2005/tokenlocker/internal/server/repositories/positions"
	"github.com/dmitrijs2005/tokenlocker/internal/server/repositories/userstats"
	"github.com/dmitrijs2005/tokenlocker/internal/server/token"
)

// RepositoryManager vends repositories bound to a connection or a
// transaction, so one transition can span all three stores.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Positions(db dbx.DBTX) positions.Repository
	UserStats(db dbx.DBTX) userstats.Repository
	Holdings(db dbx.DBTX) token.Repository
}
