package transactionrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/internal/pg"
)

// Repository is the append-only audit log of balance changes. It never
// updates or deletes rows.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Insert(ctx context.Context, tx *domain.Transaction) (int, error) {
	query := `
		INSERT INTO transactions (postpaid_account_id, prepaid_account_id, created_at, previous_balance, new_balance, delta, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	postpaidID, prepaidID := pg.SplitRef(tx.Account)
	var id int
	err := r.db.QueryRow(ctx, query, postpaidID, prepaidID, tx.CreatedAt,
		tx.PreviousBalance, tx.NewBalance, tx.Delta, tx.Description).Scan(&id)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// CurrentBalance returns the balance stored on the account row; found is
// false when the account does not exist.
func (r *Repository) CurrentBalance(ctx context.Context, ref domain.AccountRef) (balance int64, found bool, err error) {
	query := fmt.Sprintf(`SELECT balance FROM %s WHERE id = $1`, pg.AccountTable(ref.Kind))
	err = pg.ReadWithRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query, ref.ID).Scan(&balance)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		zap.L().Error("can't read current balance", zap.Error(err))
		return 0, false, err
	}
	return balance, true, nil
}

func (r *Repository) ListByAccount(ctx context.Context, ref domain.AccountRef, limit int) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT id, postpaid_account_id, prepaid_account_id, created_at, previous_balance, new_balance, delta, description
		FROM transactions
		WHERE %s = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, pg.AccountColumn(ref.Kind))

	var transactions []domain.Transaction
	err := pg.ReadWithRetry(ctx, func(ctx context.Context) error {
		transactions = nil
		rows, err := r.db.Query(ctx, query, ref.ID, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var tx domain.Transaction
			var postpaidID, prepaidID sql.NullInt64
			err := rows.Scan(&tx.ID, &postpaidID, &prepaidID, &tx.CreatedAt,
				&tx.PreviousBalance, &tx.NewBalance, &tx.Delta, &tx.Description)
			if err != nil {
				return err
			}
			if tx.Account, err = pg.JoinRef(pg.IntPtr(postpaidID), pg.IntPtr(prepaidID)); err != nil {
				return err
			}
			transactions = append(transactions, tx)
		}
		return rows.Err()
	})
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
