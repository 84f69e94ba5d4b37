package accounts

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/internal/dto"
	"github.com/GlebRadaev/drinkledger/internal/service/accountservice"
	"github.com/GlebRadaev/drinkledger/pkg/auth"
	"github.com/GlebRadaev/drinkledger/pkg/utils"
)

//go:generate mockgen -source=accounts.go -destination=mock_accounts.go -package=accounts

type Service interface {
	CreatePostpaid(ctx context.Context, username string) (*domain.PostpaidAccount, error)
	GetPostpaid(ctx context.Context, id int) (*domain.PostpaidAccount, error)
	SetPostpaidBalance(ctx context.Context, id int, newBalance int64) error
	TogglePostpaid(ctx context.Context, id int) (*domain.PostpaidAccount, error)
	Transfer(ctx context.Context, fromID int, toID int, amount int64) (*accountservice.TransferResult, error)
	CreatePrepaid(ctx context.Context, username string, sponsorID int, startBalance int64) (*domain.PrepaidAccount, error)
	GetPrepaid(ctx context.Context, id int) (*domain.PrepaidAccount, error)
	ListSponsored(ctx context.Context, sponsorID int) ([]domain.PrepaidAccount, error)
	SetPrepaidBalance(ctx context.Context, id int, newBalance int64, newSponsorID int) error
	TogglePrepaid(ctx context.Context, id int) (*domain.PrepaidAccount, error)
	DeletePrepaid(ctx context.Context, id int) error
}

type History interface {
	History(ctx context.Context, ref domain.AccountRef, limit int) ([]domain.Transaction, error)
}

type AccountsHandler struct {
	accountService Service
	historyService History
}

func New(accountService Service, historyService History) *AccountsHandler {
	return &AccountsHandler{
		accountService: accountService,
		historyService: historyService,
	}
}

// Me godoc
//
//	@Summary		Get own account
//	@Description	Balance, activation and last drink of the calling account.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		404	{object}	utils.Response	"Account no longer exists"
//	@Router			/api/me [get]
func (h *AccountsHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.Resolve(w, r)
	if !ok {
		return
	}

	if p.Kind == domain.KindPrepaid {
		account, err := h.accountService.GetPrepaid(r.Context(), p.AccountID)
		if err != nil {
			utils.RespondWithServiceError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.FromPrepaid(account))
		return
	}

	account, err := h.accountService.GetPostpaid(r.Context(), p.AccountID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromPostpaid(account))
}

// Transactions godoc
//
//	@Summary		Get own transaction history
//	@Description	Newest balance changes of the calling account.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of entries"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Router			/api/me/transactions [get]
func (h *AccountsHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.Resolve(w, r)
	if !ok {
		return
	}
	limit, ok := utils.IntQuery(w, r, "limit", 0)
	if !ok {
		return
	}

	transactions, err := h.historyService.History(r.Context(), p.Ref(), limit)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.FromTransaction(tx)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Sponsored godoc
//
//	@Summary		List sponsored prepaid accounts
//	@Description	Prepaid accounts funded by the calling postpaid account, with their access keys.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not a postpaid account"
//	@Router			/api/me/prepaid [get]
func (h *AccountsHandler) Sponsored(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.Resolve(w, r)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListSponsored(r.Context(), p.AccountID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	response := make([]dto.AccountResponseDTO, len(accounts))
	for i := range accounts {
		response[i] = dto.FromPrepaid(&accounts[i])
		response[i].AccessKey = accounts[i].AccessKey
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreatePrepaid godoc
//
//	@Summary		Create a prepaid account
//	@Description	Creates a prepaid account sponsored by the caller. The caller is debited the start balance.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePrepaidRequestDTO	true	"New prepaid account"
//	@Success		201		{object}	dto.AccountResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Sponsor deactivated"
//	@Failure		409		{object}	utils.Response	"Username taken"
//	@Router			/api/prepaid [post]
func (h *AccountsHandler) CreatePrepaid(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.Resolve(w, r)
	if !ok {
		return
	}
	var req dto.CreatePrepaidRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	account, err := h.accountService.CreatePrepaid(r.Context(), req.Username, p.AccountID, req.StartBalance)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	response := dto.FromPrepaid(account)
	response.AccessKey = account.AccessKey
	utils.RespondWithJSON(w, http.StatusCreated, response)
}

// Transfer godoc
//
//	@Summary		Transfer money to another postpaid account
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer"
//	@Success		200		{object}	dto.TransferResponseDTO	"Balance of the caller after the transfer"
//	@Failure		400		{object}	utils.Response			"Invalid amount or receiver"
//	@Failure		403		{object}	utils.Response			"An account is deactivated"
//	@Failure		404		{object}	utils.Response			"Receiver not found"
//	@Failure		503		{object}	utils.Response			"Accounts busy, retry"
//	@Router			/api/transfers [post]
func (h *AccountsHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.Resolve(w, r)
	if !ok {
		return
	}
	var req dto.TransferRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.accountService.Transfer(r.Context(), p.AccountID, req.ToAccountID, req.Amount)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransferResponseDTO{
		Balance:      dto.FormatCents(result.FromBalance),
		BalanceCents: result.FromBalance,
	})
}
