package txlogservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/drinkledger/internal/domain"
)

var (
	fixedNow = time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)
	alice    = domain.AccountRef{ID: 1, Kind: domain.KindPostpaid}
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, func() time.Time { return fixedNow })
	return service, repo
}

func TestRecord(t *testing.T) {
	tests := []struct {
		name        string
		rec         domain.TransactionRecord
		prepareMock func(repo *MockRepo)
		expectedID  int
		expectedErr error
	}{
		{
			name: "Delta with explicit previous",
			rec: domain.TransactionRecord{
				Account:     alice,
				Previous:    domain.Int64Ptr(0),
				Delta:       domain.Int64Ptr(-100),
				Description: "drink purchased",
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Insert(gomock.Any(), &domain.Transaction{
					Account:         alice,
					CreatedAt:       fixedNow,
					PreviousBalance: 0,
					NewBalance:      -100,
					Delta:           -100,
					Description:     "drink purchased",
				}).Return(10, nil)
			},
			expectedID: 10,
		},
		{
			name: "New balance with previous read from the account",
			rec: domain.TransactionRecord{
				Account:     alice,
				New:         domain.Int64Ptr(2500),
				Description: "manual admin set",
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().CurrentBalance(gomock.Any(), alice).Return(int64(-300), true, nil)
				repo.EXPECT().Insert(gomock.Any(), &domain.Transaction{
					Account:         alice,
					CreatedAt:       fixedNow,
					PreviousBalance: -300,
					NewBalance:      2500,
					Delta:           2800,
					Description:     "manual admin set",
				}).Return(11, nil)
			},
			expectedID: 11,
		},
		{
			name: "Both new and delta",
			rec: domain.TransactionRecord{
				Account: alice,
				New:     domain.Int64Ptr(1),
				Delta:   domain.Int64Ptr(1),
			},
			expectedErr: domain.ErrInvalidArgument,
		},
		{
			name:        "Neither new nor delta",
			rec:         domain.TransactionRecord{Account: alice},
			expectedErr: domain.ErrInvalidArgument,
		},
		{
			name: "Unknown kind",
			rec: domain.TransactionRecord{
				Account: domain.AccountRef{ID: 1, Kind: "guest"},
				Delta:   domain.Int64Ptr(1),
			},
			expectedErr: domain.ErrInvalidArgument,
		},
		{
			name: "Account gone",
			rec: domain.TransactionRecord{
				Account: domain.AccountRef{ID: 9, Kind: domain.KindPrepaid},
				Delta:   domain.Int64Ptr(100),
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().CurrentBalance(gomock.Any(), domain.AccountRef{ID: 9, Kind: domain.KindPrepaid}).Return(int64(0), false, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(repo)
			}

			id, err := service.Record(context.Background(), tt.rec)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestRecordInsertError(t *testing.T) {
	service, repo := NewMock(t)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(0, errors.New("db error"))

	_, err := service.Record(context.Background(), domain.TransactionRecord{
		Account:  alice,
		Previous: domain.Int64Ptr(0),
		Delta:    domain.Int64Ptr(-100),
	})

	assert.EqualError(t, err, "db error")
}

func TestHistory(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{name: "Default limit", limit: 0, expectedLimit: DefaultHistoryLimit},
		{name: "Explicit limit", limit: 5, expectedLimit: 5},
		{name: "Capped limit", limit: 10000, expectedLimit: MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			expected := []domain.Transaction{{ID: 1, Account: alice, Delta: -100, NewBalance: -100}}
			repo.EXPECT().ListByAccount(gomock.Any(), alice, tt.expectedLimit).Return(expected, nil)

			transactions, err := service.History(context.Background(), alice, tt.limit)

			assert.NoError(t, err)
			assert.Equal(t, expected, transactions)
		})
	}
}
