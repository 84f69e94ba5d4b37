package drinks

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/internal/dto"
	"github.com/GlebRadaev/drinkledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/drinkledger/pkg/auth"
	"github.com/GlebRadaev/drinkledger/pkg/utils"
)

//go:generate mockgen -source=drinks.go -destination=mock_drinks.go -package=drinks

type Service interface {
	Purchase(ctx context.Context, ref domain.AccountRef, drinkTypeID *int) (*ledgerservice.PurchaseResult, error)
	RevertLast(ctx context.Context, ref domain.AccountRef, window time.Duration) (*ledgerservice.RevertResult, error)
	UpdateDrinkType(ctx context.Context, ref domain.AccountRef, eventID int, drinkTypeID int) error
	GetLastDrink(ctx context.Context, ref domain.AccountRef, window time.Duration) (*domain.LastDrink, error)
}

type DrinksHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *DrinksHandler {
	return &DrinksHandler{
		ledgerService: ledgerService,
	}
}

// Purchase godoc
//
//	@Summary		Buy a drink
//	@Description	Charges the configured drink cost to the caller and records the drink.
//	@Tags			Drinks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	false	"Optional drink type"
//	@Success		201		{object}	dto.PurchaseResponseDTO
//	@Failure		403		{object}	utils.Response	"Account deactivated or insufficient funds"
//	@Failure		404		{object}	utils.Response	"Unknown account or drink type"
//	@Failure		503		{object}	utils.Response	"Account busy, retry"
//	@Router			/api/drinks [post]
func (h *DrinksHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.Resolve(w, r)
	if !ok {
		return
	}
	var req dto.PurchaseRequestDTO
	if r.ContentLength != 0 && !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.ledgerService.Purchase(r.Context(), p.Ref(), req.DrinkTypeID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PurchaseResponseDTO{
		Event:         dto.FromDrinkEvent(result.Event),
		TransactionID: result.TransactionID,
		Balance:       dto.FormatCents(result.NewBalance),
		BalanceCents:  result.NewBalance,
	})
}

// LastDrink godoc
//
//	@Summary		Get the drink inside the grace window
//	@Tags			Drinks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LastDrinkResponseDTO
//	@Success		204	"No drink inside the grace window"
//	@Router			/api/drinks/last [get]
func (h *DrinksHandler) LastDrink(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.Resolve(w, r)
	if !ok {
		return
	}

	last, err := h.ledgerService.GetLastDrink(r.Context(), p.Ref(), 0)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if last == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LastDrinkResponseDTO{
		Event:    *dto.FromDrinkEvent(&last.Event),
		TypeName: last.TypeName,
		TypeIcon: last.TypeIcon,
	})
}

// RevertLast godoc
//
//	@Summary		Revert the last drink
//	@Description	Refunds the newest drink if it is inside the grace window. Outside the window nothing changes.
//	@Tags			Drinks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RevertResponseDTO
//	@Failure		404	{object}	utils.Response	"Account or drink vanished"
//	@Router			/api/drinks/last/revert [post]
func (h *DrinksHandler) RevertLast(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.Resolve(w, r)
	if !ok {
		return
	}

	result, err := h.ledgerService.RevertLast(r.Context(), p.Ref(), 0)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RevertResponseDTO{
		Reverted:     result.Reverted,
		Event:        dto.FromDrinkEvent(result.Event),
		Balance:      dto.FormatCents(result.NewBalance),
		BalanceCents: result.NewBalance,
	})
}

// UpdateDrinkType godoc
//
//	@Summary	Classify a drink
//	@Tags		Drinks
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	int							true	"Drink event id"
//	@Param		request	body	dto.UpdateDrinkTypeRequestDTO	true	"Drink type"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Unknown drink or drink type"
//	@Router		/api/drinks/{id}/type [put]
func (h *DrinksHandler) UpdateDrinkType(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.Resolve(w, r)
	if !ok {
		return
	}
	eventID, ok := utils.IDParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateDrinkTypeRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	if err := h.ledgerService.UpdateDrinkType(r.Context(), p.Ref(), eventID, req.DrinkTypeID); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
