package postpaidrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/drinkledger/internal/domain"
)

var accountColumns = []string{"id", "username", "balance", "activated", "last_drink_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO postpaid_accounts (username) VALUES ($1) RETURNING id, username, balance, activated, last_drink_at`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.PostpaidAccount
	}{
		{
			name: "Creates inactive account with zero balance",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("alice").
					WillReturnRows(pgxmock.NewRows(accountColumns).AddRow(1, "alice", int64(0), false, nil))
			},
			result: &domain.PostpaidAccount{ID: 1, Username: "alice"},
		},
		{
			name: "Duplicate username is a conflict",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("alice").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), "alice")

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	lastDrink := time.Now()
	query := regexp.QuoteMeta(`SELECT id, username, balance, activated, last_drink_at FROM postpaid_accounts WHERE id = $1`)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.PostpaidAccount
	}{
		{
			name: "Account exists",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(accountColumns).AddRow(1, "alice", int64(-100), true, lastDrink))
			},
			result: &domain.PostpaidAccount{ID: 1, Username: "alice", Balance: -100, Activated: true, LastDrinkAt: &lastDrink},
		},
		{
			name: "Account does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM postpaid_accounts WHERE username = $1`)).
		WithArgs("bob").
		WillReturnRows(pgxmock.NewRows(accountColumns).AddRow(2, "bob", int64(1000), true, nil))

	result, err := repo.FindByUsername(context.Background(), "bob")

	assert.NoError(t, err)
	assert.Equal(t, &domain.PostpaidAccount{ID: 2, Username: "bob", Balance: 1000, Activated: true}, result)
}

func TestRepository_LockState(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT balance, activated FROM postpaid_accounts WHERE id = $1 FOR UPDATE`)

	mock.ExpectQuery(query).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"balance", "activated"}).AddRow(int64(250), true))
	state, err := repo.LockState(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, &domain.AccountState{
		Ref:       domain.AccountRef{ID: 1, Kind: domain.KindPostpaid},
		Balance:   250,
		Activated: true,
	}, state)

	mock.ExpectQuery(query).WithArgs(2).WillReturnError(pgx.ErrNoRows)
	state, err = repo.LockState(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, state)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE postpaid_accounts SET balance = $1, last_drink_at = COALESCE($2, last_drink_at) WHERE id = $3`)
	now := time.Now()

	tests := []struct {
		name      string
		drankAt   *time.Time
		mockSetup func()
		expected  bool
		expectErr bool
	}{
		{
			name:    "Updates balance and last drink",
			drankAt: &now,
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(int64(-100), pgxmock.AnyArg(), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expected: true,
		},
		{
			name: "Missing account",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(int64(-100), pgxmock.AnyArg(), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(int64(-100), pgxmock.AnyArg(), 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.SetBalance(context.Background(), 1, -100, tt.drankAt)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestRepository_ToggleActivated(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE postpaid_accounts SET activated = NOT activated WHERE id = $1 RETURNING`)

	mock.ExpectQuery(query).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(accountColumns).AddRow(1, "alice", int64(0), true, nil))
	account, err := repo.ToggleActivated(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, account.Activated)

	mock.ExpectQuery(query).WithArgs(5).WillReturnError(pgx.ErrNoRows)
	account, err = repo.ToggleActivated(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, account)

	assert.NoError(t, mock.ExpectationsWereMet())
}
