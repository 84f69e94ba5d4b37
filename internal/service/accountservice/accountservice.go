package accountservice

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/internal/pg"
)

//go:generate mockgen -source=accountservice.go -destination=mock_accountservice.go -package=accountservice

type PostpaidRepo interface {
	Create(ctx context.Context, username string) (*domain.PostpaidAccount, error)
	FindByID(ctx context.Context, id int) (*domain.PostpaidAccount, error)
	FindByUsername(ctx context.Context, username string) (*domain.PostpaidAccount, error)
	LockState(ctx context.Context, id int) (*domain.AccountState, error)
	SetBalance(ctx context.Context, id int, balance int64, drankAt *time.Time) (bool, error)
	ToggleActivated(ctx context.Context, id int) (*domain.PostpaidAccount, error)
}

type PrepaidRepo interface {
	Create(ctx context.Context, account *domain.PrepaidAccount) (*domain.PrepaidAccount, error)
	FindByID(ctx context.Context, id int) (*domain.PrepaidAccount, error)
	FindByUsername(ctx context.Context, username string) (*domain.PrepaidAccount, error)
	FindByAccessKey(ctx context.Context, accessKey string) (*domain.PrepaidAccount, error)
	FindBySponsor(ctx context.Context, sponsorID int) ([]domain.PrepaidAccount, error)
	LockState(ctx context.Context, id int) (*domain.AccountState, error)
	SetBalance(ctx context.Context, id int, balance int64, drankAt *time.Time) (bool, error)
	SetSponsor(ctx context.Context, id int, sponsorID int) (bool, error)
	ToggleActivated(ctx context.Context, id int) (*domain.PrepaidAccount, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type UsernameRepo interface {
	IsTaken(ctx context.Context, username string) (bool, error)
}

type TransactionLog interface {
	Record(ctx context.Context, rec domain.TransactionRecord) (int, error)
}

const (
	descManualSet      = "manual admin set"
	descPrepaidCreated = "prepaid account created"
)

type TransferResult struct {
	FromBalance int64
	ToBalance   int64
}

type Service struct {
	txManager    pg.TXManager
	postpaidRepo PostpaidRepo
	prepaidRepo  PrepaidRepo
	usernameRepo UsernameRepo
	txLog        TransactionLog
	newAccessKey func() (string, error)
}

func New(txManager pg.TXManager, postpaidRepo PostpaidRepo, prepaidRepo PrepaidRepo, usernameRepo UsernameRepo, txLog TransactionLog) *Service {
	return &Service{
		txManager:    txManager,
		postpaidRepo: postpaidRepo,
		prepaidRepo:  prepaidRepo,
		usernameRepo: usernameRepo,
		txLog:        txLog,
		newAccessKey: NewAccessKey,
	}
}

func normalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("%w: username must not be empty", domain.ErrInvalidArgument)
	}
	return username, nil
}

// reserveUsername must run inside a transaction: the advisory lock it takes
// is held until that transaction ends.
func (s *Service) reserveUsername(ctx context.Context, username string) error {
	taken, err := s.usernameRepo.IsTaken(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		zap.L().Info("username already taken", zap.String("username", username))
		return fmt.Errorf("%w: username %q already exists", domain.ErrConflict, username)
	}
	return nil
}

func notFound(kind domain.AccountKind, id int) error {
	return fmt.Errorf("%w: %s account %d", domain.ErrNotFound, kind, id)
}

func (s *Service) CreatePostpaid(ctx context.Context, username string) (*domain.PostpaidAccount, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}

	var account *domain.PostpaidAccount
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.reserveUsername(ctx, username); err != nil {
			return err
		}
		account, err = s.postpaidRepo.Create(ctx, username)
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("postpaid account created", zap.Int("id", account.ID), zap.String("username", username))
	return account, nil
}

func (s *Service) GetPostpaid(ctx context.Context, id int) (*domain.PostpaidAccount, error) {
	account, err := s.postpaidRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, notFound(domain.KindPostpaid, id)
	}
	return account, nil
}

func (s *Service) GetPostpaidByUsername(ctx context.Context, username string) (*domain.PostpaidAccount, error) {
	account, err := s.postpaidRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: postpaid account %q", domain.ErrNotFound, username)
	}
	return account, nil
}

// SetPostpaidBalance overwrites the balance and logs the change against the
// balance read under the row lock.
func (s *Service) SetPostpaidBalance(ctx context.Context, id int, newBalance int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		state, err := s.postpaidRepo.LockState(ctx, id)
		if err != nil {
			return err
		}
		if state == nil {
			return notFound(domain.KindPostpaid, id)
		}
		if _, err := s.txLog.Record(ctx, domain.TransactionRecord{
			Account:     state.Ref,
			Previous:    &state.Balance,
			New:         &newBalance,
			Description: descManualSet,
		}); err != nil {
			return err
		}
		ok, err := s.postpaidRepo.SetBalance(ctx, id, newBalance, nil)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(domain.KindPostpaid, id)
		}
		return nil
	})
}

func (s *Service) TogglePostpaid(ctx context.Context, id int) (*domain.PostpaidAccount, error) {
	var account *domain.PostpaidAccount
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.postpaidRepo.ToggleActivated(ctx, id)
		if err != nil {
			return err
		}
		if account == nil {
			return notFound(domain.KindPostpaid, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Transfer moves amount cents between two postpaid accounts. Rows are locked
// in ascending id order so opposing transfers cannot deadlock.
func (s *Service) Transfer(ctx context.Context, fromID, toID int, amount int64) (*TransferResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: transfer amount must be positive", domain.ErrInvalidArgument)
	}
	if fromID == toID {
		return nil, fmt.Errorf("%w: cannot transfer to the same account", domain.ErrInvalidArgument)
	}

	var result TransferResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		lockOrder := []int{fromID, toID}
		if toID < fromID {
			lockOrder = []int{toID, fromID}
		}
		states := make(map[int]*domain.AccountState, 2)
		for _, id := range lockOrder {
			state, err := s.postpaidRepo.LockState(ctx, id)
			if err != nil {
				return err
			}
			if state == nil {
				return notFound(domain.KindPostpaid, id)
			}
			states[id] = state
		}

		from, to := states[fromID], states[toID]
		if !from.Activated || !to.Activated {
			zap.L().Info("transfer rejected: account deactivated", zap.Int("from", fromID), zap.Int("to", toID))
			return fmt.Errorf("%w: both accounts must be activated", domain.ErrForbidden)
		}
		if from.Balance < math.MinInt64+amount || to.Balance > math.MaxInt64-amount {
			return fmt.Errorf("%w: transfer amount overflows a balance", domain.ErrInvalidArgument)
		}

		legs := []struct {
			state       *domain.AccountState
			delta       int64
			description string
		}{
			{from, -amount, fmt.Sprintf("transfer to account %d", toID)},
			{to, amount, fmt.Sprintf("transfer from account %d", fromID)},
		}
		for _, leg := range legs {
			delta := leg.delta
			if _, err := s.txLog.Record(ctx, domain.TransactionRecord{
				Account:     leg.state.Ref,
				Previous:    &leg.state.Balance,
				Delta:       &delta,
				Description: leg.description,
			}); err != nil {
				return err
			}
			if _, err := s.postpaidRepo.SetBalance(ctx, leg.state.Ref.ID, leg.state.Balance+delta, nil); err != nil {
				return err
			}
		}

		result = TransferResult{
			FromBalance: from.Balance - amount,
			ToBalance:   to.Balance + amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreatePrepaid opens a prepaid account funded by its sponsor: the sponsor is
// debited startBalance in the same transaction.
func (s *Service) CreatePrepaid(ctx context.Context, username string, sponsorID int, startBalance int64) (*domain.PrepaidAccount, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if startBalance < 0 {
		return nil, fmt.Errorf("%w: start balance must not be negative", domain.ErrInvalidArgument)
	}
	accessKey, err := s.newAccessKey()
	if err != nil {
		return nil, err
	}

	var account *domain.PrepaidAccount
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.reserveUsername(ctx, username); err != nil {
			return err
		}
		sponsor, err := s.postpaidRepo.LockState(ctx, sponsorID)
		if err != nil {
			return err
		}
		if sponsor == nil {
			return notFound(domain.KindPostpaid, sponsorID)
		}
		if !sponsor.Activated {
			return fmt.Errorf("%w: sponsor account %d is deactivated", domain.ErrForbidden, sponsorID)
		}

		account, err = s.prepaidRepo.Create(ctx, &domain.PrepaidAccount{
			Username:  username,
			AccessKey: accessKey,
			SponsorID: sponsorID,
			Balance:   startBalance,
		})
		if err != nil {
			return err
		}
		if _, err := s.txLog.Record(ctx, domain.TransactionRecord{
			Account:     account.Ref(),
			Previous:    domain.Int64Ptr(0),
			New:         &startBalance,
			Description: descPrepaidCreated,
		}); err != nil {
			return err
		}

		if startBalance == 0 {
			return nil
		}
		debit := -startBalance
		if _, err := s.txLog.Record(ctx, domain.TransactionRecord{
			Account:     sponsor.Ref,
			Previous:    &sponsor.Balance,
			Delta:       &debit,
			Description: "funded prepaid account " + username,
		}); err != nil {
			return err
		}
		_, err = s.postpaidRepo.SetBalance(ctx, sponsorID, sponsor.Balance+debit, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("prepaid account created", zap.Int("id", account.ID), zap.Int("sponsor", sponsorID))
	return account, nil
}

func (s *Service) GetPrepaid(ctx context.Context, id int) (*domain.PrepaidAccount, error) {
	account, err := s.prepaidRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, notFound(domain.KindPrepaid, id)
	}
	return account, nil
}

func (s *Service) GetPrepaidByUsername(ctx context.Context, username string) (*domain.PrepaidAccount, error) {
	account, err := s.prepaidRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: prepaid account %q", domain.ErrNotFound, username)
	}
	return account, nil
}

func (s *Service) GetPrepaidByAccessKey(ctx context.Context, accessKey string) (*domain.PrepaidAccount, error) {
	if accessKey == "" {
		return nil, fmt.Errorf("%w: empty access key", domain.ErrInvalidArgument)
	}
	account, err := s.prepaidRepo.FindByAccessKey(ctx, accessKey)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: unknown access key", domain.ErrNotFound)
	}
	return account, nil
}

func (s *Service) ListSponsored(ctx context.Context, sponsorID int) ([]domain.PrepaidAccount, error) {
	return s.prepaidRepo.FindBySponsor(ctx, sponsorID)
}

// SetPrepaidBalance overwrites balance and sponsor of a prepaid account.
// The sponsor is not debited.
func (s *Service) SetPrepaidBalance(ctx context.Context, id int, newBalance int64, newSponsorID int) error {
	if newBalance < 0 {
		return fmt.Errorf("%w: prepaid balance must not be negative", domain.ErrInvalidArgument)
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		state, err := s.prepaidRepo.LockState(ctx, id)
		if err != nil {
			return err
		}
		if state == nil {
			return notFound(domain.KindPrepaid, id)
		}
		sponsor, err := s.postpaidRepo.FindByID(ctx, newSponsorID)
		if err != nil {
			return err
		}
		if sponsor == nil {
			return notFound(domain.KindPostpaid, newSponsorID)
		}

		if _, err := s.txLog.Record(ctx, domain.TransactionRecord{
			Account:     state.Ref,
			Previous:    &state.Balance,
			New:         &newBalance,
			Description: descManualSet,
		}); err != nil {
			return err
		}
		if _, err := s.prepaidRepo.SetBalance(ctx, id, newBalance, nil); err != nil {
			return err
		}
		_, err = s.prepaidRepo.SetSponsor(ctx, id, newSponsorID)
		return err
	})
}

func (s *Service) TogglePrepaid(ctx context.Context, id int) (*domain.PrepaidAccount, error) {
	var account *domain.PrepaidAccount
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.prepaidRepo.ToggleActivated(ctx, id)
		if err != nil {
			return err
		}
		if account == nil {
			return notFound(domain.KindPrepaid, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// DeletePrepaid removes the account. Its drinks and transactions are kept.
func (s *Service) DeletePrepaid(ctx context.Context, id int) error {
	ok, err := s.prepaidRepo.Delete(ctx, id)
	if err != nil {
		return pg.Classify(err)
	}
	if !ok {
		return notFound(domain.KindPrepaid, id)
	}
	zap.L().Info("prepaid account deleted", zap.Int("id", id))
	return nil
}
