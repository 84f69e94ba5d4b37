package drinkrepo

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

const columns = `id, postpaid_account_id, prepaid_account_id, created_at, drink_type_id`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.DrinkEvent, error) {
	var event domain.DrinkEvent
	var postpaidID, prepaidID, drinkTypeID sql.NullInt64
	if err := row.Scan(&event.ID, &postpaidID, &prepaidID, &event.CreatedAt, &drinkTypeID); err != nil {
		return nil, err
	}
	ref, err := pg.JoinRef(pg.IntPtr(postpaidID), pg.IntPtr(prepaidID))
	if err != nil {
		return nil, err
	}
	event.Account = ref
	event.DrinkTypeID = pg.IntPtr(drinkTypeID)
	return &event, nil
}

func (r *Repository) Create(ctx context.Context, event *domain.DrinkEvent) (*domain.DrinkEvent, error) {
	query := `
		INSERT INTO drink_events (postpaid_account_id, prepaid_account_id, created_at, drink_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + columns
	postpaidID, prepaidID := pg.SplitRef(event.Account)
	created, err := scan(r.db.QueryRow(ctx, query, postpaidID, prepaidID, event.CreatedAt, event.DrinkTypeID))
	if err != nil {
		zap.L().Error("can't save drink event", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func lastQuery(kind domain.AccountKind, lock bool) string {
	query := fmt.Sprintf(`
		SELECT %s
		FROM drink_events
		WHERE %s = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, columns, pg.AccountColumn(kind))
	if lock {
		query += ` FOR UPDATE`
	}
	return query
}

// FindLast returns the newest drink event of the account, or nil.
func (r *Repository) FindLast(ctx context.Context, ref domain.AccountRef) (*domain.DrinkEvent, error) {
	var event *domain.DrinkEvent
	err := pg.ReadWithRetry(ctx, func(ctx context.Context) error {
		var err error
		event, err = scan(r.db.QueryRow(ctx, lastQuery(ref.Kind, false), ref.ID))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find last drink event", zap.Error(err))
		return nil, err
	}
	return event, nil
}

// LockLast is FindLast with a row lock held until the transaction ends.
func (r *Repository) LockLast(ctx context.Context, ref domain.AccountRef) (*domain.DrinkEvent, error) {
	event, err := scan(r.db.QueryRow(ctx, lastQuery(ref.Kind, true), ref.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock last drink event", zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (r *Repository) Delete(ctx context.Context, ref domain.AccountRef, id int) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM drink_events WHERE id = $1 AND %s = $2`, pg.AccountColumn(ref.Kind))
	tag, err := r.db.Exec(ctx, query, id, ref.ID)
	if err != nil {
		zap.L().Error("can't delete drink event", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SetDrinkType(ctx context.Context, ref domain.AccountRef, id int, drinkTypeID int) (bool, error) {
	query := fmt.Sprintf(`UPDATE drink_events SET drink_type_id = $1 WHERE id = $2 AND %s = $3`, pg.AccountColumn(ref.Kind))
	tag, err := r.db.Exec(ctx, query, drinkTypeID, id, ref.ID)
	if err != nil {
		zap.L().Error("can't update drink type of event", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

const usageSelect = `
	SELECT t.id, t.name, t.icon, t.quantity, COUNT(e.id)
	FROM drink_events e
	JOIN drink_types t ON t.id = e.drink_type_id
`

const usageOrder = `
	GROUP BY t.id, t.name, t.icon, t.quantity
	ORDER BY COUNT(e.id) DESC, t.id
`

func (r *Repository) usage(ctx context.Context, query string, args ...any) ([]domain.DrinkUsage, error) {
	var usage []domain.DrinkUsage
	err := pg.ReadWithRetry(ctx, func(ctx context.Context) error {
		usage = nil
		rows, err := r.db.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var u domain.DrinkUsage
			err := rows.Scan(&u.DrinkType.ID, &u.DrinkType.Name, &u.DrinkType.Icon, &u.DrinkType.Quantity, &u.Count)
			if err != nil {
				return err
			}
			usage = append(usage, u)
		}
		return rows.Err()
	})
	if err != nil {
		zap.L().Error("can't count drink events", zap.Error(err))
		return nil, err
	}
	return usage, nil
}

// CountByType counts the account's classified drinks per type, leaving out
// excludeTypeID.
func (r *Repository) CountByType(ctx context.Context, ref domain.AccountRef, excludeTypeID int) ([]domain.DrinkUsage, error) {
	query := usageSelect + fmt.Sprintf(`WHERE e.%s = $1 AND e.drink_type_id <> $2`, pg.AccountColumn(ref.Kind)) + usageOrder
	return r.usage(ctx, query, ref.ID, excludeTypeID)
}

// StatsByType counts classified drinks per type over all accounts.
func (r *Repository) StatsByType(ctx context.Context) ([]domain.DrinkUsage, error) {
	return r.usage(ctx, usageSelect+usageOrder)
}
