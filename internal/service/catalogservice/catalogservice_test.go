package catalogservice

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/drinkledger/internal/domain"
)

var alice = domain.AccountRef{ID: 1, Kind: domain.KindPostpaid}

func seededCatalog() []domain.DrinkType {
	return []domain.DrinkType{
		{ID: 1, Name: "Sonstiges", Icon: "sonstiges.png"},
		{ID: 2, Name: "Paulaner Spezi", Icon: "paulaner_spezi.png"},
		{ID: 3, Name: "Paulaner Limo Orange", Icon: "paulaner_limo_orange.png"},
		{ID: 4, Name: "Paulaner Limo Zitrone", Icon: "paulaner_limo_zitrone.png"},
		{ID: 5, Name: "Mio Mate Original", Icon: "mio_mate_original.png"},
		{ID: 6, Name: "Mio Mate Ginger", Icon: "mio_mate_ginger.png"},
		{ID: 7, Name: "Mio Mate Pomegranate", Icon: "mio_mate_pomegranate.png"},
		{ID: 8, Name: "Club Mate", Icon: "club_mate.png"},
	}
}

func NewMock(t *testing.T, seed int64) (*Service, *MockUsageRepo, *MockDrinkTypeRepo) {
	ctrl := gomock.NewController(t)
	usageRepo := NewMockUsageRepo(ctrl)
	drinkTypeRepo := NewMockDrinkTypeRepo(ctrl)
	service := New(usageRepo, drinkTypeRepo, rand.New(rand.NewSource(seed)))
	return service, usageRepo, drinkTypeRepo
}

func ids(usage []domain.DrinkUsage) []int {
	out := make([]int, 0, len(usage))
	for _, u := range usage {
		out = append(out, u.DrinkType.ID)
	}
	return out
}

func TestMostUsedDrinks(t *testing.T) {
	catalog := seededCatalog()
	clubMate := domain.DrinkUsage{DrinkType: catalog[7], Count: 5}
	spezi := domain.DrinkUsage{DrinkType: catalog[1], Count: 2}

	t.Run("Padded to the limit without duplicates", func(t *testing.T) {
		service, usageRepo, drinkTypeRepo := NewMock(t, 1)
		usageRepo.EXPECT().CountByType(gomock.Any(), alice, domain.UnspecifiedDrinkTypeID).
			Return([]domain.DrinkUsage{clubMate, spezi}, nil)
		drinkTypeRepo.EXPECT().FindAll(gomock.Any()).Return(catalog, nil)

		usage, err := service.MostUsedDrinks(context.Background(), alice, 4)

		require.NoError(t, err)
		require.Len(t, usage, 4)
		assert.Equal(t, clubMate, usage[0])
		assert.Equal(t, spezi, usage[1])
		seen := make(map[int]bool)
		for _, u := range usage {
			assert.False(t, seen[u.DrinkType.ID], "duplicate drink type %d", u.DrinkType.ID)
			assert.NotEqual(t, domain.UnspecifiedDrinkTypeID, u.DrinkType.ID)
			seen[u.DrinkType.ID] = true
		}
		for _, u := range usage[2:] {
			assert.Zero(t, u.Count)
		}
	})

	t.Run("Same seed picks the same padding", func(t *testing.T) {
		var picks [][]int
		for i := 0; i < 2; i++ {
			service, usageRepo, drinkTypeRepo := NewMock(t, 42)
			usageRepo.EXPECT().CountByType(gomock.Any(), alice, domain.UnspecifiedDrinkTypeID).Return(nil, nil)
			drinkTypeRepo.EXPECT().FindAll(gomock.Any()).Return(seededCatalog(), nil)

			usage, err := service.MostUsedDrinks(context.Background(), alice, 4)
			require.NoError(t, err)
			picks = append(picks, ids(usage))
		}
		assert.Equal(t, picks[0], picks[1])
		assert.Len(t, picks[0], 4)
	})

	t.Run("Truncated to the limit", func(t *testing.T) {
		service, usageRepo, drinkTypeRepo := NewMock(t, 1)
		usageRepo.EXPECT().CountByType(gomock.Any(), alice, domain.UnspecifiedDrinkTypeID).
			Return([]domain.DrinkUsage{clubMate, spezi}, nil)
		drinkTypeRepo.EXPECT().FindAll(gomock.Any()).Return(catalog, nil)

		usage, err := service.MostUsedDrinks(context.Background(), alice, 1)

		require.NoError(t, err)
		assert.Equal(t, []domain.DrinkUsage{clubMate}, usage)
	})

	t.Run("Catalog smaller than the limit", func(t *testing.T) {
		service, usageRepo, drinkTypeRepo := NewMock(t, 1)
		usageRepo.EXPECT().CountByType(gomock.Any(), alice, domain.UnspecifiedDrinkTypeID).Return(nil, nil)
		drinkTypeRepo.EXPECT().FindAll(gomock.Any()).Return(catalog[:3], nil)

		usage, err := service.MostUsedDrinks(context.Background(), alice, 4)

		require.NoError(t, err)
		assert.ElementsMatch(t, []int{2, 3}, ids(usage))
	})

	t.Run("Read failure", func(t *testing.T) {
		service, usageRepo, drinkTypeRepo := NewMock(t, 1)
		usageRepo.EXPECT().CountByType(gomock.Any(), alice, domain.UnspecifiedDrinkTypeID).Return(nil, errors.New("db error"))
		drinkTypeRepo.EXPECT().FindAll(gomock.Any()).Return(catalog, nil).AnyTimes()

		_, err := service.MostUsedDrinks(context.Background(), alice, 4)
		assert.EqualError(t, err, "db error")
	})

	t.Run("Non-positive limit", func(t *testing.T) {
		service, _, _ := NewMock(t, 1)
		_, err := service.MostUsedDrinks(context.Background(), alice, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestStatsByDrinkType(t *testing.T) {
	service, usageRepo, _ := NewMock(t, 1)
	stats := []domain.DrinkUsage{
		{DrinkType: domain.DrinkType{ID: 8, Name: "Club Mate"}, Count: 12},
		{DrinkType: domain.DrinkType{ID: 1, Name: "Sonstiges"}, Count: 3},
	}
	usageRepo.EXPECT().StatsByType(gomock.Any()).Return(stats, nil)

	result, err := service.StatsByDrinkType(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, result)
	result[0].Count = 0
	assert.Equal(t, 12, stats[0].Count)
}

func TestStatsByDrinkTypeOutlivesCaller(t *testing.T) {
	service, usageRepo, _ := NewMock(t, 1)
	stats := []domain.DrinkUsage{{DrinkType: domain.DrinkType{ID: 8, Name: "Club Mate"}, Count: 12}}
	usageRepo.EXPECT().StatsByType(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.DrinkUsage, error) {
		assert.NoError(t, ctx.Err())
		return stats, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := service.StatsByDrinkType(ctx)

	require.NoError(t, err)
	assert.Equal(t, stats, result)
}

func TestStatsByDrinkTypeShared(t *testing.T) {
	service, usageRepo, _ := NewMock(t, 1)
	stats := []domain.DrinkUsage{{DrinkType: domain.DrinkType{ID: 8, Name: "Club Mate"}, Count: 12}}
	release := make(chan struct{})
	usageRepo.EXPECT().StatsByType(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.DrinkUsage, error) {
		<-release
		return stats, nil
	}).MinTimes(1).MaxTimes(2)

	first, cancelFirst := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, ctx := range []context.Context{first, context.Background()} {
		wg.Add(1)
		go func(i int, ctx context.Context) {
			defer wg.Done()
			_, errs[i] = service.StatsByDrinkType(ctx)
		}(i, ctx)
	}
	cancelFirst()
	close(release)
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}

func TestDrinkTypes(t *testing.T) {
	service, _, drinkTypeRepo := NewMock(t, 1)

	drinkTypeRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
	_, err := service.GetDrinkType(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	drinkTypeRepo.EXPECT().FindByName(gomock.Any(), "Club Mate").Return(&domain.DrinkType{ID: 8, Name: "Club Mate"}, nil)
	drinkType, err := service.GetDrinkTypeByName(context.Background(), "Club Mate")
	assert.NoError(t, err)
	assert.Equal(t, 8, drinkType.ID)

	drinkTypeRepo.EXPECT().Create(gomock.Any(), &domain.DrinkType{Name: "Mate Zero", Icon: "mate_zero.png", Quantity: 24}).
		Return(&domain.DrinkType{ID: 9, Name: "Mate Zero", Icon: "mate_zero.png", Quantity: 24}, nil)
	drinkType, err = service.AddDrinkType(context.Background(), " Mate Zero ", "mate_zero.png", 24)
	assert.NoError(t, err)
	assert.Equal(t, 9, drinkType.ID)

	_, err = service.AddDrinkType(context.Background(), "Mate Zero", "", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	drinkTypeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)
	_, err = service.AddDrinkType(context.Background(), "Club Mate", "club_mate.png", 1)
	assert.ErrorIs(t, err, domain.ErrConflict)

	drinkTypeRepo.EXPECT().SetQuantity(gomock.Any(), 8, 30).Return(true, nil)
	assert.NoError(t, service.SetDrinkTypeQuantity(context.Background(), 8, 30))

	drinkTypeRepo.EXPECT().SetQuantity(gomock.Any(), 99, 30).Return(false, nil)
	assert.ErrorIs(t, service.SetDrinkTypeQuantity(context.Background(), 99, 30), domain.ErrNotFound)

	drinkTypeRepo.EXPECT().FindAll(gomock.Any()).Return(seededCatalog(), nil)
	all, err := service.ListDrinkTypes(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 8)
}
