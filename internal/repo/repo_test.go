package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	drinkrepo "github.com/GlebRadaev/drinkledger/internal/repo/drink-repo"
	drinktyperepo "github.com/GlebRadaev/drinkledger/internal/repo/drinktype-repo"
	postpaidrepo "github.com/GlebRadaev/drinkledger/internal/repo/postpaid-repo"
	prepaidrepo "github.com/GlebRadaev/drinkledger/internal/repo/prepaid-repo"
	transactionrepo "github.com/GlebRadaev/drinkledger/internal/repo/transaction-repo"
	usernamerepo "github.com/GlebRadaev/drinkledger/internal/repo/username-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &postpaidrepo.Repository{}, repo.PostpaidRepo)
	assert.IsType(t, &prepaidrepo.Repository{}, repo.PrepaidRepo)
	assert.IsType(t, &usernamerepo.Repository{}, repo.UsernameRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &drinkrepo.Repository{}, repo.DrinkRepo)
	assert.IsType(t, &drinktyperepo.Repository{}, repo.DrinkTypeRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
