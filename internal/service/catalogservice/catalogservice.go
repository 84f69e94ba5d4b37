package catalogservice

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/GlebRadaev/drinkledger/internal/domain"
)

//go:generate mockgen -source=catalogservice.go -destination=mock_catalogservice.go -package=catalogservice

type UsageRepo interface {
	CountByType(ctx context.Context, ref domain.AccountRef, excludeTypeID int) ([]domain.DrinkUsage, error)
	StatsByType(ctx context.Context) ([]domain.DrinkUsage, error)
}

type DrinkTypeRepo interface {
	Create(ctx context.Context, drinkType *domain.DrinkType) (*domain.DrinkType, error)
	FindByID(ctx context.Context, id int) (*domain.DrinkType, error)
	FindByName(ctx context.Context, name string) (*domain.DrinkType, error)
	FindAll(ctx context.Context) ([]domain.DrinkType, error)
	SetQuantity(ctx context.Context, id int, quantity int) (bool, error)
}

type Service struct {
	usageRepo     UsageRepo
	drinkTypeRepo DrinkTypeRepo

	mu  sync.Mutex
	rnd *rand.Rand

	stats singleflight.Group
}

// New builds the catalog service. rnd picks the padding of MostUsedDrinks;
// pass a seeded source for reproducible results.
func New(usageRepo UsageRepo, drinkTypeRepo DrinkTypeRepo, rnd *rand.Rand) *Service {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		usageRepo:     usageRepo,
		drinkTypeRepo: drinkTypeRepo,
		rnd:           rnd,
	}
}

// MostUsedDrinks ranks the drink types of an account by count, ties by id.
// When the account used fewer than limit types the result is padded with
// random unused catalog entries at count 0. The "other" type is never
// included.
func (s *Service) MostUsedDrinks(ctx context.Context, ref domain.AccountRef, limit int) ([]domain.DrinkUsage, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidArgument)
	}
	if !ref.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown account kind %q", domain.ErrInvalidArgument, ref.Kind)
	}

	var (
		counts  []domain.DrinkUsage
		catalog []domain.DrinkType
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.usageRepo.CountByType(gctx, ref, domain.UnspecifiedDrinkTypeID)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.drinkTypeRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to read drink usage", zap.Error(err))
		return nil, err
	}

	if len(counts) >= limit {
		return counts[:limit], nil
	}

	result := make([]domain.DrinkUsage, 0, limit)
	used := make(map[int]struct{}, len(counts))
	for _, usage := range counts {
		result = append(result, usage)
		used[usage.DrinkType.ID] = struct{}{}
	}

	var unused []domain.DrinkType
	for _, drinkType := range catalog {
		if _, ok := used[drinkType.ID]; ok || drinkType.ID == domain.UnspecifiedDrinkTypeID {
			continue
		}
		unused = append(unused, drinkType)
	}
	s.shuffle(unused)

	for _, drinkType := range unused {
		if len(result) == limit {
			break
		}
		result = append(result, domain.DrinkUsage{DrinkType: drinkType})
	}
	return result, nil
}

func (s *Service) shuffle(drinkTypes []domain.DrinkType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Shuffle(len(drinkTypes), func(i, j int) {
		drinkTypes[i], drinkTypes[j] = drinkTypes[j], drinkTypes[i]
	})
}

// StatsByDrinkType counts classified drinks per type over all accounts.
// Concurrent callers share one query, which does not stop when the caller
// that started it goes away.
func (s *Service) StatsByDrinkType(ctx context.Context) ([]domain.DrinkUsage, error) {
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.stats.Do("stats", func() (any, error) {
		return s.usageRepo.StatsByType(shared)
	})
	if err != nil {
		zap.L().Error("failed to read drink stats", zap.Error(err))
		return nil, err
	}
	stats := v.([]domain.DrinkUsage)
	return append([]domain.DrinkUsage(nil), stats...), nil
}

func (s *Service) GetDrinkType(ctx context.Context, id int) (*domain.DrinkType, error) {
	drinkType, err := s.drinkTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if drinkType == nil {
		return nil, fmt.Errorf("%w: drink type %d", domain.ErrNotFound, id)
	}
	return drinkType, nil
}

func (s *Service) GetDrinkTypeByName(ctx context.Context, name string) (*domain.DrinkType, error) {
	drinkType, err := s.drinkTypeRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if drinkType == nil {
		return nil, fmt.Errorf("%w: drink type %q", domain.ErrNotFound, name)
	}
	return drinkType, nil
}

func (s *Service) ListDrinkTypes(ctx context.Context) ([]domain.DrinkType, error) {
	return s.drinkTypeRepo.FindAll(ctx)
}

func (s *Service) AddDrinkType(ctx context.Context, name, icon string, quantity int) (*domain.DrinkType, error) {
	name, icon = strings.TrimSpace(name), strings.TrimSpace(icon)
	if name == "" || icon == "" {
		return nil, fmt.Errorf("%w: drink type needs a name and an icon", domain.ErrInvalidArgument)
	}
	drinkType, err := s.drinkTypeRepo.Create(ctx, &domain.DrinkType{Name: name, Icon: icon, Quantity: quantity})
	if err != nil {
		return nil, err
	}
	zap.L().Info("drink type added", zap.Int("id", drinkType.ID), zap.String("name", name))
	return drinkType, nil
}

func (s *Service) SetDrinkTypeQuantity(ctx context.Context, id int, quantity int) error {
	ok, err := s.drinkTypeRepo.SetQuantity(ctx, id, quantity)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: drink type %d", domain.ErrNotFound, id)
	}
	return nil
}
