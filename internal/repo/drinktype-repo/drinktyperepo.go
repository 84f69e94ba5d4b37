package drinktyperepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/internal/pg"
)

const columns = `id, name, icon, quantity`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.DrinkType, error) {
	var drinkType domain.DrinkType
	if err := row.Scan(&drinkType.ID, &drinkType.Name, &drinkType.Icon, &drinkType.Quantity); err != nil {
		return nil, err
	}
	return &drinkType, nil
}

func (r *Repository) Create(ctx context.Context, drinkType *domain.DrinkType) (*domain.DrinkType, error) {
	query := `
		INSERT INTO drink_types (name, icon, quantity)
		VALUES ($1, $2, $3)
		RETURNING ` + columns
	created, err := scan(r.db.QueryRow(ctx, query, drinkType.Name, drinkType.Icon, drinkType.Quantity))
	if err != nil {
		zap.L().Error("can't save drink type", zap.Error(err))
		return nil, pg.Classify(err)
	}
	return created, nil
}

func (r *Repository) find(ctx context.Context, query string, arg any) (*domain.DrinkType, error) {
	var drinkType *domain.DrinkType
	err := pg.ReadWithRetry(ctx, func(ctx context.Context) error {
		var err error
		drinkType, err = scan(r.db.QueryRow(ctx, query, arg))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find drink type", zap.Error(err))
		return nil, err
	}
	return drinkType, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.DrinkType, error) {
	return r.find(ctx, `SELECT `+columns+` FROM drink_types WHERE id = $1`, id)
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.DrinkType, error) {
	return r.find(ctx, `SELECT `+columns+` FROM drink_types WHERE name = $1`, name)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.DrinkType, error) {
	var drinkTypes []domain.DrinkType
	err := pg.ReadWithRetry(ctx, func(ctx context.Context) error {
		drinkTypes = nil
		rows, err := r.db.Query(ctx, `SELECT `+columns+` FROM drink_types ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			drinkType, err := scan(rows)
			if err != nil {
				return err
			}
			drinkTypes = append(drinkTypes, *drinkType)
		}
		return rows.Err()
	})
	if err != nil {
		zap.L().Error("can't list drink types", zap.Error(err))
		return nil, err
	}
	return drinkTypes, nil
}

func (r *Repository) SetQuantity(ctx context.Context, id int, quantity int) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE drink_types SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		zap.L().Error("can't set drink type quantity", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DecrementQuantity takes one item off the advisory stock. The counter may
// go negative.
func (r *Repository) DecrementQuantity(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE drink_types SET quantity = quantity - 1 WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't decrement drink type quantity", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
