package service

import (
	"github.com/GlebRadaev/drinkledger/internal/config"
	"github.com/GlebRadaev/drinkledger/internal/handlers/accounts"
	"github.com/GlebRadaev/drinkledger/internal/handlers/catalog"
	"github.com/GlebRadaev/drinkledger/internal/handlers/drinks"
	"github.com/GlebRadaev/drinkledger/internal/pg"
	"github.com/GlebRadaev/drinkledger/internal/repo"
	"github.com/GlebRadaev/drinkledger/internal/service/accountservice"
	"github.com/GlebRadaev/drinkledger/internal/service/catalogservice"
	"github.com/GlebRadaev/drinkledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/drinkledger/internal/service/txlogservice"
)

type Services struct {
	AccountService accounts.Service
	HistoryService accounts.History
	LedgerService  drinks.Service
	CatalogService catalog.Service
}

func New(txManager pg.TXManager, repo *repo.Repositories, cfg *config.Config) *Services {
	txLog := txlogservice.New(repo.TransactionRepo, nil)
	accountService := accountservice.New(txManager, repo.PostpaidRepo, repo.PrepaidRepo, repo.UsernameRepo, txLog)
	ledgerService := ledgerservice.New(txManager, repo.PostpaidRepo, repo.PrepaidRepo, repo.DrinkRepo,
		repo.DrinkTypeRepo, txLog, ledgerservice.Options{
			DrinkCost:   cfg.DrinkCost,
			GraceWindow: cfg.GraceWindow,
		})
	catalogService := catalogservice.New(repo.DrinkRepo, repo.DrinkTypeRepo, nil)

	return &Services{
		AccountService: accountService,
		HistoryService: txLog,
		LedgerService:  ledgerService,
		CatalogService: catalogService,
	}
}
