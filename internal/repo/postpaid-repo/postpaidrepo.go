package postpaidrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/internal/pg"
)

const columns = `id, username, balance, activated, last_drink_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.PostpaidAccount, error) {
	var account domain.PostpaidAccount
	var lastDrink sql.NullTime
	if err := row.Scan(&account.ID, &account.Username, &account.Balance, &account.Activated, &lastDrink); err != nil {
		return nil, err
	}
	account.LastDrinkAt = pg.TimePtr(lastDrink)
	return &account, nil
}

func (r *Repository) Create(ctx context.Context, username string) (*domain.PostpaidAccount, error) {
	query := `
		INSERT INTO postpaid_accounts (username)
		VALUES ($1)
		RETURNING ` + columns
	account, err := scan(r.db.QueryRow(ctx, query, username))
	if err != nil {
		zap.L().Error("can't save postpaid account", zap.Error(err))
		return nil, pg.Classify(err)
	}
	return account, nil
}

func (r *Repository) find(ctx context.Context, query string, arg any) (*domain.PostpaidAccount, error) {
	var account *domain.PostpaidAccount
	err := pg.ReadWithRetry(ctx, func(ctx context.Context) error {
		var err error
		account, err = scan(r.db.QueryRow(ctx, query, arg))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find postpaid account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.PostpaidAccount, error) {
	return r.find(ctx, `SELECT `+columns+` FROM postpaid_accounts WHERE id = $1`, id)
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.PostpaidAccount, error) {
	return r.find(ctx, `SELECT `+columns+` FROM postpaid_accounts WHERE username = $1`, username)
}

// LockState reads balance and activation under a row lock held until the
// surrounding transaction ends.
func (r *Repository) LockState(ctx context.Context, id int) (*domain.AccountState, error) {
	query := `
		SELECT balance, activated
		FROM postpaid_accounts
		WHERE id = $1
		FOR UPDATE
	`
	state := domain.AccountState{Ref: domain.AccountRef{ID: id, Kind: domain.KindPostpaid}}
	err := r.db.QueryRow(ctx, query, id).Scan(&state.Balance, &state.Activated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock postpaid account", zap.Error(err))
		return nil, err
	}
	return &state, nil
}

// SetBalance writes the balance; a non-nil drankAt also refreshes the last
// drink timestamp.
func (r *Repository) SetBalance(ctx context.Context, id int, balance int64, drankAt *time.Time) (bool, error) {
	query := `
		UPDATE postpaid_accounts
		SET balance = $1, last_drink_at = COALESCE($2, last_drink_at)
		WHERE id = $3
	`
	tag, err := r.db.Exec(ctx, query, balance, drankAt, id)
	if err != nil {
		zap.L().Error("can't update postpaid balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ToggleActivated(ctx context.Context, id int) (*domain.PostpaidAccount, error) {
	query := `
		UPDATE postpaid_accounts
		SET activated = NOT activated
		WHERE id = $1
		RETURNING ` + columns
	account, err := scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't toggle postpaid account", zap.Error(err))
		return nil, err
	}
	return account, nil
}
