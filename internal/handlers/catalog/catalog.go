package catalog

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/internal/dto"
	"github.com/GlebRadaev/drinkledger/pkg/auth"
	"github.com/GlebRadaev/drinkledger/pkg/utils"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=catalog

type Service interface {
	MostUsedDrinks(ctx context.Context, ref domain.AccountRef, limit int) ([]domain.DrinkUsage, error)
	StatsByDrinkType(ctx context.Context) ([]domain.DrinkUsage, error)
	ListDrinkTypes(ctx context.Context) ([]domain.DrinkType, error)
	AddDrinkType(ctx context.Context, name string, icon string, quantity int) (*domain.DrinkType, error)
	SetDrinkTypeQuantity(ctx context.Context, id int, quantity int) error
}

const defaultMostUsedLimit = 4

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// MostUsed godoc
//
//	@Summary		Caller's most used drinks
//	@Description	Ranks the caller's classified drinks by count. Short lists are padded with random unused drink types.
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Number of entries"	default(4)
//	@Success		200		{array}		dto.DrinkUsageDTO
//	@Failure		400		{object}	utils.Response
//	@Router			/api/drinks/most-used [get]
func (h *CatalogHandler) MostUsed(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.Resolve(w, r)
	if !ok {
		return
	}
	limit, ok := utils.IntQuery(w, r, "limit", defaultMostUsedLimit)
	if !ok {
		return
	}

	usage, err := h.catalogService.MostUsedDrinks(r.Context(), p.Ref(), limit)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromUsage(usage))
}

// Stats godoc
//
//	@Summary	Drink counts per drink type across all accounts
//	@Tags		Catalog
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.DrinkUsageDTO
//	@Router		/api/stats/drink-types [get]
func (h *CatalogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	usage, err := h.catalogService.StatsByDrinkType(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromUsage(usage))
}

// List godoc
//
//	@Summary	List drink types
//	@Tags		Catalog
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.DrinkTypeDTO
//	@Router		/api/drink-types [get]
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalogService.ListDrinkTypes(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	out := make([]dto.DrinkTypeDTO, len(types))
	for i, t := range types {
		out[i] = dto.FromDrinkType(t)
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Add godoc
//
//	@Summary	Add a drink type
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AddDrinkTypeRequestDTO	true	"Drink type"
//	@Success	201		{object}	dto.DrinkTypeDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	409		{object}	utils.Response	"Name already taken"
//	@Router		/api/admin/drink-types [post]
func (h *CatalogHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddDrinkTypeRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	drinkType, err := h.catalogService.AddDrinkType(r.Context(), req.Name, req.Icon, req.Quantity)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromDrinkType(*drinkType))
}

// SetQuantity godoc
//
//	@Summary	Set the stock of a drink type
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	int						true	"Drink type id"
//	@Param		request	body	dto.SetQuantityRequestDTO	true	"Quantity"
//	@Success	204
//	@Failure	404	{object}	utils.Response
//	@Router		/api/admin/drink-types/{id}/quantity [put]
func (h *CatalogHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.IDParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.SetQuantityRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	if err := h.catalogService.SetDrinkTypeQuantity(r.Context(), id, req.Quantity); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
