package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/drinkledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO transactions (postpaid_account_id, prepaid_account_id, created_at, previous_balance, new_balance, delta, description)`)
	postpaidID := 1

	tests := []struct {
		name      string
		tx        *domain.Transaction
		mockSetup func()
		expected  int
		expectErr bool
	}{
		{
			name: "Postpaid leg",
			tx: &domain.Transaction{
				Account:         domain.AccountRef{ID: 1, Kind: domain.KindPostpaid},
				PreviousBalance: 0, NewBalance: -100, Delta: -100,
				Description: "drink purchased",
			},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(&postpaidID, (*int)(nil), pgxmock.AnyArg(), int64(0), int64(-100), int64(-100), "drink purchased").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
			},
			expected: 10,
		},
		{
			name: "Database error",
			tx: &domain.Transaction{
				Account: domain.AccountRef{ID: 3, Kind: domain.KindPrepaid},
			},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			id, err := repo.Insert(context.Background(), tt.tx)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CurrentBalance(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT balance FROM prepaid_accounts WHERE id = $1`)).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(700)))
	balance, found, err := repo.CurrentBalance(context.Background(), domain.AccountRef{ID: 3, Kind: domain.KindPrepaid})
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(700), balance)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT balance FROM postpaid_accounts WHERE id = $1`)).
		WithArgs(8).
		WillReturnError(pgx.ErrNoRows)
	_, found, err = repo.CurrentBalance(context.Background(), domain.AccountRef{ID: 8, Kind: domain.KindPostpaid})
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	columns := []string{"id", "postpaid_account_id", "prepaid_account_id", "created_at", "previous_balance", "new_balance", "delta", "description"}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions WHERE postpaid_account_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`)).
		WithArgs(1, 50).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(11, int64(1), nil, now, int64(-100), int64(0), int64(100), "drink reverted").
			AddRow(10, int64(1), nil, now, int64(0), int64(-100), int64(-100), "drink purchased"))

	transactions, err := repo.ListByAccount(context.Background(), domain.AccountRef{ID: 1, Kind: domain.KindPostpaid}, 50)

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, domain.AccountRef{ID: 1, Kind: domain.KindPostpaid}, transactions[0].Account)
	for _, tx := range transactions {
		assert.Equal(t, tx.NewBalance-tx.PreviousBalance, tx.Delta)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
