package txlogservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/internal/pg"
)

//go:generate mockgen -source=txlogservice.go -destination=mock_txlogservice.go -package=txlogservice

type Repo interface {
	Insert(ctx context.Context, tx *domain.Transaction) (int, error)
	CurrentBalance(ctx context.Context, ref domain.AccountRef) (int64, bool, error)
	ListByAccount(ctx context.Context, ref domain.AccountRef, limit int) ([]domain.Transaction, error)
}

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo: repo,
		now:  now,
	}
}

// Record appends one entry to the log and returns its id. Exactly one of
// rec.New and rec.Delta must be set. A nil rec.Previous is read from the
// account row, which races with concurrent writers unless the caller holds
// the row lock.
func (s *Service) Record(ctx context.Context, rec domain.TransactionRecord) (int, error) {
	if !rec.Account.Kind.Valid() {
		return 0, fmt.Errorf("%w: unknown account kind %q", domain.ErrInvalidArgument, rec.Account.Kind)
	}
	if (rec.New == nil) == (rec.Delta == nil) {
		return 0, fmt.Errorf("%w: exactly one of new balance and delta must be given", domain.ErrInvalidArgument)
	}

	var previous int64
	if rec.Previous != nil {
		previous = *rec.Previous
	} else {
		balance, found, err := s.repo.CurrentBalance(ctx, rec.Account)
		if err != nil {
			return 0, pg.Classify(err)
		}
		if !found {
			return 0, fmt.Errorf("%w: %s account %d", domain.ErrNotFound, rec.Account.Kind, rec.Account.ID)
		}
		previous = balance
	}

	tx := &domain.Transaction{
		Account:         rec.Account,
		CreatedAt:       s.now(),
		PreviousBalance: previous,
		Description:     rec.Description,
	}
	if rec.New != nil {
		tx.NewBalance = *rec.New
		tx.Delta = tx.NewBalance - previous
	} else {
		tx.Delta = *rec.Delta
		tx.NewBalance = previous + tx.Delta
	}

	id, err := s.repo.Insert(ctx, tx)
	if err != nil {
		zap.L().Error("failed to record transaction", zap.Error(err))
		return 0, pg.Classify(err)
	}
	return id, nil
}

// History lists the newest entries of an account, including accounts that
// no longer exist.
func (s *Service) History(ctx context.Context, ref domain.AccountRef, limit int) ([]domain.Transaction, error) {
	if !ref.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown account kind %q", domain.ErrInvalidArgument, ref.Kind)
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	transactions, err := s.repo.ListByAccount(ctx, ref, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, pg.Classify(err)
	}
	return transactions, nil
}
