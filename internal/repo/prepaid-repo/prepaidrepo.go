package prepaidrepo

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

const columns = `id, username, access_key, sponsor_id, balance, activated, last_drink_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.PrepaidAccount, error) {
	var account domain.PrepaidAccount
	var lastDrink sql.NullTime
	err := row.Scan(&account.ID, &account.Username, &account.AccessKey, &account.SponsorID,
		&account.Balance, &account.Activated, &lastDrink)
	if err != nil {
		return nil, err
	}
	account.LastDrinkAt = pg.TimePtr(lastDrink)
	return &account, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.PrepaidAccount) (*domain.PrepaidAccount, error) {
	query := `
		INSERT INTO prepaid_accounts (username, access_key, sponsor_id, balance)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + columns
	created, err := scan(r.db.QueryRow(ctx, query, account.Username, account.AccessKey, account.SponsorID, account.Balance))
	if err != nil {
		zap.L().Error("can't save prepaid account", zap.Error(err))
		return nil, pg.Classify(err)
	}
	return created, nil
}

func (r *Repository) find(ctx context.Context, query string, arg any) (*domain.PrepaidAccount, error) {
	var account *domain.PrepaidAccount
	err := pg.ReadWithRetry(ctx, func(ctx context.Context) error {
		var err error
		account, err = scan(r.db.QueryRow(ctx, query, arg))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find prepaid account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.PrepaidAccount, error) {
	return r.find(ctx, `SELECT `+columns+` FROM prepaid_accounts WHERE id = $1`, id)
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.PrepaidAccount, error) {
	return r.find(ctx, `SELECT `+columns+` FROM prepaid_accounts WHERE username = $1`, username)
}

func (r *Repository) FindByAccessKey(ctx context.Context, accessKey string) (*domain.PrepaidAccount, error) {
	return r.find(ctx, `SELECT `+columns+` FROM prepaid_accounts WHERE access_key = $1`, accessKey)
}

func (r *Repository) FindBySponsor(ctx context.Context, sponsorID int) ([]domain.PrepaidAccount, error) {
	query := `
		SELECT ` + columns + `
		FROM prepaid_accounts
		WHERE sponsor_id = $1
		ORDER BY username
	`
	var accounts []domain.PrepaidAccount
	err := pg.ReadWithRetry(ctx, func(ctx context.Context) error {
		accounts = nil
		rows, err := r.db.Query(ctx, query, sponsorID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			account, err := scan(rows)
			if err != nil {
				return err
			}
			accounts = append(accounts, *account)
		}
		return rows.Err()
	})
	if err != nil {
		zap.L().Error("can't get sponsored prepaid accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// LockState reads balance and activation under a row lock held until the
// surrounding transaction ends.
func (r *Repository) LockState(ctx context.Context, id int) (*domain.AccountState, error) {
	query := `
		SELECT balance, activated
		FROM prepaid_accounts
		WHERE id = $1
		FOR UPDATE
	`
	state := domain.AccountState{Ref: domain.AccountRef{ID: id, Kind: domain.KindPrepaid}}
	err := r.db.QueryRow(ctx, query, id).Scan(&state.Balance, &state.Activated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock prepaid account", zap.Error(err))
		return nil, err
	}
	return &state, nil
}

func (r *Repository) SetBalance(ctx context.Context, id int, balance int64, drankAt *time.Time) (bool, error) {
	query := `
		UPDATE prepaid_accounts
		SET balance = $1, last_drink_at = COALESCE($2, last_drink_at)
		WHERE id = $3
	`
	tag, err := r.db.Exec(ctx, query, balance, drankAt, id)
	if err != nil {
		zap.L().Error("can't update prepaid balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SetSponsor(ctx context.Context, id int, sponsorID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE prepaid_accounts SET sponsor_id = $1 WHERE id = $2`, sponsorID, id)
	if err != nil {
		zap.L().Error("can't update prepaid sponsor", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ToggleActivated(ctx context.Context, id int) (*domain.PrepaidAccount, error) {
	query := `
		UPDATE prepaid_accounts
		SET activated = NOT activated
		WHERE id = $1
		RETURNING ` + columns
	account, err := scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't toggle prepaid account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Delete removes the account row only. Drink events and transactions keep
// referencing the deleted id.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM prepaid_accounts WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete prepaid account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
