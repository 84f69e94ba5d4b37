package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/drinkledger/docs"
	accountshandlers "github.com/GlebRadaev/drinkledger/internal/handlers/accounts"
	cataloghandlers "github.com/GlebRadaev/drinkledger/internal/handlers/catalog"
	drinkshandlers "github.com/GlebRadaev/drinkledger/internal/handlers/drinks"
	"github.com/GlebRadaev/drinkledger/internal/service"
	"github.com/GlebRadaev/drinkledger/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AccountsHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
	Sponsored(w http.ResponseWriter, r *http.Request)
	CreatePrepaid(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	CreatePostpaid(w http.ResponseWriter, r *http.Request)
	SetPostpaidBalance(w http.ResponseWriter, r *http.Request)
	TogglePostpaid(w http.ResponseWriter, r *http.Request)
	SetPrepaidBalance(w http.ResponseWriter, r *http.Request)
	TogglePrepaid(w http.ResponseWriter, r *http.Request)
	DeletePrepaid(w http.ResponseWriter, r *http.Request)
}

type DrinksHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	LastDrink(w http.ResponseWriter, r *http.Request)
	RevertLast(w http.ResponseWriter, r *http.Request)
	UpdateDrinkType(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	MostUsed(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	SetQuantity(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountsHandler AccountsHandler
	DrinksHandler   DrinksHandler
	CatalogHandler  CatalogHandler

	tokens auth.JWTServiceInterface
}

func New(s *service.Services, tokens auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AccountsHandler: accountshandlers.New(s.AccountService, s.HistoryService),
		DrinksHandler:   drinkshandlers.New(s.LedgerService),
		CatalogHandler:  cataloghandlers.New(s.CatalogService),
		tokens:          tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.tokens))

		r.Route("/me", func(r chi.Router) {
			r.Get("/", h.AccountsHandler.Me)
			r.Get("/transactions", h.AccountsHandler.Transactions)
			r.With(auth.RequirePostpaid).Get("/prepaid", h.AccountsHandler.Sponsored)
		})
		r.Route("/drinks", func(r chi.Router) {
			r.Post("/", h.DrinksHandler.Purchase)
			r.Get("/last", h.DrinksHandler.LastDrink)
			r.Post("/last/revert", h.DrinksHandler.RevertLast)
			r.Put("/{id}/type", h.DrinksHandler.UpdateDrinkType)
			r.Get("/most-used", h.CatalogHandler.MostUsed)
		})
		r.Get("/stats/drink-types", h.CatalogHandler.Stats)
		r.Get("/drink-types", h.CatalogHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequirePostpaid)
			r.Post("/transfers", h.AccountsHandler.Transfer)
			r.Post("/prepaid", h.AccountsHandler.CreatePrepaid)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Post("/postpaid", h.AccountsHandler.CreatePostpaid)
			r.Put("/postpaid/{id}/balance", h.AccountsHandler.SetPostpaidBalance)
			r.Post("/postpaid/{id}/toggle", h.AccountsHandler.TogglePostpaid)
			r.Put("/prepaid/{id}/balance", h.AccountsHandler.SetPrepaidBalance)
			r.Post("/prepaid/{id}/toggle", h.AccountsHandler.TogglePrepaid)
			r.Delete("/prepaid/{id}", h.AccountsHandler.DeletePrepaid)
			r.Post("/drink-types", h.CatalogHandler.Add)
			r.Put("/drink-types/{id}/quantity", h.CatalogHandler.SetQuantity)
		})
	})

	return r
}
