package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/internal/pg"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type AccountRepo interface {
	LockState(ctx context.Context, id int) (*domain.AccountState, error)
	SetBalance(ctx context.Context, id int, balance int64, drankAt *time.Time) (bool, error)
}

type DrinkRepo interface {
	Create(ctx context.Context, event *domain.DrinkEvent) (*domain.DrinkEvent, error)
	FindLast(ctx context.Context, ref domain.AccountRef) (*domain.DrinkEvent, error)
	LockLast(ctx context.Context, ref domain.AccountRef) (*domain.DrinkEvent, error)
	Delete(ctx context.Context, ref domain.AccountRef, id int) (bool, error)
	SetDrinkType(ctx context.Context, ref domain.AccountRef, id int, drinkTypeID int) (bool, error)
}

type DrinkTypeRepo interface {
	FindByID(ctx context.Context, id int) (*domain.DrinkType, error)
	DecrementQuantity(ctx context.Context, id int) (bool, error)
}

type TransactionLog interface {
	Record(ctx context.Context, rec domain.TransactionRecord) (int, error)
}

const (
	descPurchased = "drink purchased"
	descReverted  = "drink reverted"

	DefaultDrinkCost   int64 = 100
	DefaultGraceWindow       = 60 * time.Second
)

type Options struct {
	DrinkCost   int64
	GraceWindow time.Duration
	Now         func() time.Time
}

type PurchaseResult struct {
	Event           *domain.DrinkEvent
	TransactionID   int
	PreviousBalance int64
	NewBalance      int64
}

// RevertResult reports a revert. Reverted is false when there was nothing
// inside the grace window; NewBalance is then the unchanged balance.
type RevertResult struct {
	Reverted   bool
	Event      *domain.DrinkEvent
	NewBalance int64
}

type Service struct {
	txManager     pg.TXManager
	accounts      map[domain.AccountKind]AccountRepo
	drinkRepo     DrinkRepo
	drinkTypeRepo DrinkTypeRepo
	txLog         TransactionLog
	cost          int64
	window        time.Duration
	now           func() time.Time
}

func New(txManager pg.TXManager, postpaidRepo, prepaidRepo AccountRepo, drinkRepo DrinkRepo,
	drinkTypeRepo DrinkTypeRepo, txLog TransactionLog, opts Options) *Service {
	if opts.DrinkCost <= 0 {
		opts.DrinkCost = DefaultDrinkCost
	}
	if opts.GraceWindow <= 0 {
		opts.GraceWindow = DefaultGraceWindow
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		txManager: txManager,
		accounts: map[domain.AccountKind]AccountRepo{
			domain.KindPostpaid: postpaidRepo,
			domain.KindPrepaid:  prepaidRepo,
		},
		drinkRepo:     drinkRepo,
		drinkTypeRepo: drinkTypeRepo,
		txLog:         txLog,
		cost:          opts.DrinkCost,
		window:        opts.GraceWindow,
		now:           opts.Now,
	}
}

func (s *Service) DrinkCost() int64 {
	return s.cost
}

func (s *Service) accountRepo(kind domain.AccountKind) (AccountRepo, error) {
	repo, ok := s.accounts[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown account kind %q", domain.ErrInvalidArgument, kind)
	}
	return repo, nil
}

func (s *Service) lockAccount(ctx context.Context, repo AccountRepo, ref domain.AccountRef) (*domain.AccountState, error) {
	state, err := repo.LockState(ctx, ref.ID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("%w: %s account %d", domain.ErrNotFound, ref.Kind, ref.ID)
	}
	return state, nil
}

func (s *Service) withinWindow(event *domain.DrinkEvent, window time.Duration) bool {
	if window <= 0 {
		window = s.window
	}
	return event != nil && s.now().Sub(event.CreatedAt) <= window
}

// Purchase charges one drink. Balance, transaction and drink event are
// written in one transaction or not at all.
func (s *Service) Purchase(ctx context.Context, ref domain.AccountRef, drinkTypeID *int) (*PurchaseResult, error) {
	repo, err := s.accountRepo(ref.Kind)
	if err != nil {
		return nil, err
	}

	var result PurchaseResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		state, err := s.lockAccount(ctx, repo, ref)
		if err != nil {
			return err
		}
		if !state.Activated {
			zap.L().Info("purchase rejected: account deactivated", zap.String("kind", string(ref.Kind)), zap.Int("id", ref.ID))
			return fmt.Errorf("%w: account is deactivated", domain.ErrForbidden)
		}
		if ref.Kind == domain.KindPrepaid && state.Balance < s.cost {
			zap.L().Info("purchase rejected: insufficient funds", zap.Int("id", ref.ID), zap.Int64("balance", state.Balance))
			return fmt.Errorf("%w: insufficient funds", domain.ErrForbidden)
		}
		if drinkTypeID != nil {
			drinkType, err := s.drinkTypeRepo.FindByID(ctx, *drinkTypeID)
			if err != nil {
				return err
			}
			if drinkType == nil {
				return fmt.Errorf("%w: drink type %d", domain.ErrNotFound, *drinkTypeID)
			}
		}

		now := s.now()
		delta := -s.cost
		result.PreviousBalance = state.Balance
		result.NewBalance = state.Balance + delta

		result.TransactionID, err = s.txLog.Record(ctx, domain.TransactionRecord{
			Account:     ref,
			Previous:    &state.Balance,
			Delta:       &delta,
			Description: descPurchased,
		})
		if err != nil {
			return err
		}
		if _, err := repo.SetBalance(ctx, ref.ID, result.NewBalance, &now); err != nil {
			return err
		}
		result.Event, err = s.drinkRepo.Create(ctx, &domain.DrinkEvent{
			Account:     ref,
			CreatedAt:   now,
			DrinkTypeID: drinkTypeID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RevertLast undoes the newest purchase of the account if it happened within
// window. A zero window means the configured grace window.
func (s *Service) RevertLast(ctx context.Context, ref domain.AccountRef, window time.Duration) (*RevertResult, error) {
	repo, err := s.accountRepo(ref.Kind)
	if err != nil {
		return nil, err
	}

	var result RevertResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		state, err := s.lockAccount(ctx, repo, ref)
		if err != nil {
			return err
		}
		result.NewBalance = state.Balance

		event, err := s.drinkRepo.LockLast(ctx, ref)
		if err != nil {
			return err
		}
		if !s.withinWindow(event, window) {
			return nil
		}

		deleted, err := s.drinkRepo.Delete(ctx, ref, event.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("%w: drink event %d", domain.ErrNotFound, event.ID)
		}

		credit := s.cost
		if _, err := s.txLog.Record(ctx, domain.TransactionRecord{
			Account:     ref,
			Previous:    &state.Balance,
			Delta:       &credit,
			Description: descReverted,
		}); err != nil {
			return err
		}
		if _, err := repo.SetBalance(ctx, ref.ID, state.Balance+credit, nil); err != nil {
			return err
		}

		result = RevertResult{
			Reverted:   true,
			Event:      event,
			NewBalance: state.Balance + credit,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateDrinkType classifies an event after the fact and takes one item off
// the type's stock.
func (s *Service) UpdateDrinkType(ctx context.Context, ref domain.AccountRef, eventID int, drinkTypeID int) error {
	if !ref.Kind.Valid() {
		return fmt.Errorf("%w: unknown account kind %q", domain.ErrInvalidArgument, ref.Kind)
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		drinkType, err := s.drinkTypeRepo.FindByID(ctx, drinkTypeID)
		if err != nil {
			return err
		}
		if drinkType == nil {
			return fmt.Errorf("%w: drink type %d", domain.ErrNotFound, drinkTypeID)
		}

		updated, err := s.drinkRepo.SetDrinkType(ctx, ref, eventID, drinkTypeID)
		if err != nil {
			return err
		}
		if !updated {
			return fmt.Errorf("%w: drink event %d", domain.ErrNotFound, eventID)
		}

		decremented, err := s.drinkTypeRepo.DecrementQuantity(ctx, drinkTypeID)
		if err != nil {
			return err
		}
		if !decremented {
			return fmt.Errorf("%w: drink type %d", domain.ErrNotFound, drinkTypeID)
		}
		return nil
	})
}

// GetLastDrink returns the newest drink of the account when it is inside
// window, or nil.
func (s *Service) GetLastDrink(ctx context.Context, ref domain.AccountRef, window time.Duration) (*domain.LastDrink, error) {
	if !ref.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown account kind %q", domain.ErrInvalidArgument, ref.Kind)
	}
	event, err := s.drinkRepo.FindLast(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !s.withinWindow(event, window) {
		return nil, nil
	}

	last := &domain.LastDrink{Event: *event}
	if event.DrinkTypeID != nil {
		drinkType, err := s.drinkTypeRepo.FindByID(ctx, *event.DrinkTypeID)
		if err != nil {
			return nil, err
		}
		if drinkType != nil {
			last.TypeName = drinkType.Name
			last.TypeIcon = drinkType.Icon
		}
	}
	return last, nil
}
