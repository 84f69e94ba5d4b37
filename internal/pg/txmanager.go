package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=txmanager.go -destination=mock_txmanager.go -package=pg

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

const setLockTimeoutQuery = `SELECT set_config('lock_timeout', $1, true)`

var txOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

type TxManager struct {
	db          TxBeginner
	lockTimeout time.Duration
}

func NewTXManager(db TxBeginner, lockTimeout time.Duration) *TxManager {
	return &TxManager{
		db:          db,
		lockTimeout: lockTimeout,
	}
}

// lockTimeoutSetting renders d for set_config. Postgres reads 0 as no
// timeout, so positive durations below a millisecond round up to 1ms.
func lockTimeoutSetting(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1 {
		ms = 1
	}
	return fmt.Sprintf("%dms", ms)
}

// Begin runs fn inside one database transaction. Repositories called with
// the context passed to fn take part in it. A Begin nested in another joins
// the outer transaction.
func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, txOptions)
	if err != nil {
		zap.L().Error("can't begin transaction", zap.Error(err))
		return Classify(fmt.Errorf("begin transaction: %w", err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				zap.L().Error("can't rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	if m.lockTimeout > 0 {
		if _, err = tx.Exec(ctx, setLockTimeoutQuery, lockTimeoutSetting(m.lockTimeout)); err != nil {
			zap.L().Error("can't set lock timeout", zap.Error(err))
			return Classify(err)
		}
	}

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return Classify(err)
	}

	if err = tx.Commit(ctx); err != nil {
		zap.L().Error("can't commit transaction", zap.Error(err))
		return Classify(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}
