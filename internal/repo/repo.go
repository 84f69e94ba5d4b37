package repo

import (
	"github.com/GlebRadaev/drinkledger/internal/pg"
	drinkrepo "github.com/GlebRadaev/drinkledger/internal/repo/drink-repo"
	drinktyperepo "github.com/GlebRadaev/drinkledger/internal/repo/drinktype-repo"
	postpaidrepo "github.com/GlebRadaev/drinkledger/internal/repo/postpaid-repo"
	prepaidrepo "github.com/GlebRadaev/drinkledger/internal/repo/prepaid-repo"
	transactionrepo "github.com/GlebRadaev/drinkledger/internal/repo/transaction-repo"
	usernamerepo "github.com/GlebRadaev/drinkledger/internal/repo/username-repo"
	"github.com/GlebRadaev/drinkledger/internal/service/accountservice"
	"github.com/GlebRadaev/drinkledger/internal/service/catalogservice"
	"github.com/GlebRadaev/drinkledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/drinkledger/internal/service/txlogservice"
)

type PostpaidRepo interface {
	accountservice.PostpaidRepo
	ledgerservice.AccountRepo
}

type PrepaidRepo interface {
	accountservice.PrepaidRepo
	ledgerservice.AccountRepo
}

type DrinkRepo interface {
	ledgerservice.DrinkRepo
	catalogservice.UsageRepo
}

type DrinkTypeRepo interface {
	ledgerservice.DrinkTypeRepo
	catalogservice.DrinkTypeRepo
}

type Repositories struct {
	PostpaidRepo    PostpaidRepo
	PrepaidRepo     PrepaidRepo
	UsernameRepo    accountservice.UsernameRepo
	TransactionRepo txlogservice.Repo
	DrinkRepo       DrinkRepo
	DrinkTypeRepo   DrinkTypeRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		PostpaidRepo:    postpaidrepo.New(conn),
		PrepaidRepo:     prepaidrepo.New(conn),
		UsernameRepo:    usernamerepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		DrinkRepo:       drinkrepo.New(conn),
		DrinkTypeRepo:   drinktyperepo.New(conn),
	}
}
