package usernamerepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/drinkledger/internal/pg"
)

// Repository guards the username namespace shared by postpaid and prepaid
// accounts. The two tables have separate unique constraints, so creation
// serialises on an advisory lock per username instead.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// IsTaken locks username for the rest of the current transaction and reports
// whether an account of either kind already uses it.
func (r *Repository) IsTaken(ctx context.Context, username string) (bool, error) {
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, username); err != nil {
		zap.L().Error("can't lock username", zap.Error(err))
		return false, err
	}

	query := `
		SELECT EXISTS (SELECT 1 FROM postpaid_accounts WHERE username = $1)
			OR EXISTS (SELECT 1 FROM prepaid_accounts WHERE username = $1)
	`
	var taken bool
	if err := r.db.QueryRow(ctx, query, username).Scan(&taken); err != nil {
		zap.L().Error("can't check username", zap.Error(err))
		return false, err
	}
	return taken, nil
}
