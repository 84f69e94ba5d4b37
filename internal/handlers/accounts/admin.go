package accounts

import (
	"net/http"

	"github.com/GlebRadaev/drinkledger/internal/dto"
	"github.com/GlebRadaev/drinkledger/pkg/utils"
)

// CreatePostpaid godoc
//
//	@Summary	Create a postpaid account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreatePostpaidRequestDTO	true	"New account"
//	@Success	201		{object}	dto.AccountResponseDTO
//	@Failure	409		{object}	utils.Response	"Username taken"
//	@Router		/api/admin/postpaid [post]
func (h *AccountsHandler) CreatePostpaid(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePostpaidRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}
	account, err := h.accountService.CreatePostpaid(r.Context(), req.Username)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromPostpaid(account))
}

// SetPostpaidBalance godoc
//
//	@Summary	Set the balance of a postpaid account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	int								true	"Account id"
//	@Param		request	body	dto.SetPostpaidBalanceRequestDTO	true	"New balance in cents"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Account not found"
//	@Router		/api/admin/postpaid/{id}/balance [put]
func (h *AccountsHandler) SetPostpaidBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.IDParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.SetPostpaidBalanceRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := h.accountService.SetPostpaidBalance(r.Context(), id, req.Balance); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TogglePostpaid godoc
//
//	@Summary	Flip activation of a postpaid account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Account id"
//	@Success	200	{object}	dto.AccountResponseDTO
//	@Router		/api/admin/postpaid/{id}/toggle [post]
func (h *AccountsHandler) TogglePostpaid(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.IDParam(w, r, "id")
	if !ok {
		return
	}
	account, err := h.accountService.TogglePostpaid(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromPostpaid(account))
}

// SetPrepaidBalance godoc
//
//	@Summary	Set balance and sponsor of a prepaid account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	int								true	"Account id"
//	@Param		request	body	dto.SetPrepaidBalanceRequestDTO	true	"New balance and sponsor"
//	@Success	204
//	@Router		/api/admin/prepaid/{id}/balance [put]
func (h *AccountsHandler) SetPrepaidBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.IDParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.SetPrepaidBalanceRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := h.accountService.SetPrepaidBalance(r.Context(), id, req.Balance, req.SponsorID); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TogglePrepaid godoc
//
//	@Summary	Flip activation of a prepaid account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Account id"
//	@Success	200	{object}	dto.AccountResponseDTO
//	@Router		/api/admin/prepaid/{id}/toggle [post]
func (h *AccountsHandler) TogglePrepaid(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.IDParam(w, r, "id")
	if !ok {
		return
	}
	account, err := h.accountService.TogglePrepaid(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromPrepaid(account))
}

// DeletePrepaid godoc
//
//	@Summary	Delete a prepaid account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Account id"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Account not found"
//	@Router		/api/admin/prepaid/{id} [delete]
func (h *AccountsHandler) DeletePrepaid(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.IDParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.accountService.DeletePrepaid(r.Context(), id); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
