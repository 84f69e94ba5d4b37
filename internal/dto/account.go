package dto

import (
	"time"

	"github.com/GlebRadaev/drinkledger/internal/domain"
)

type AccountResponseDTO struct {
	ID           int        `json:"id" example:"1"`
	Kind         string     `json:"kind" example:"postpaid"`
	Username     string     `json:"username" example:"alice"`
	Balance      string     `json:"balance" example:"-1.00"`
	BalanceCents int64      `json:"balance_cents" example:"-100"`
	Activated    bool       `json:"activated" example:"true"`
	LastDrinkAt  *time.Time `json:"last_drink_at,omitempty" example:"2024-05-17T12:00:00Z"`
	SponsorID    *int       `json:"sponsor_id,omitempty" example:"1"`
	AccessKey    string     `json:"access_key,omitempty" example:"q3J9x0bT_k2L"`
}

func FromPostpaid(a *domain.PostpaidAccount) AccountResponseDTO {
	return AccountResponseDTO{
		ID:           a.ID,
		Kind:         string(domain.KindPostpaid),
		Username:     a.Username,
		Balance:      FormatCents(a.Balance),
		BalanceCents: a.Balance,
		Activated:    a.Activated,
		LastDrinkAt:  a.LastDrinkAt,
	}
}

// FromPrepaid leaves the access key out; it is only shown to the sponsor.
func FromPrepaid(a *domain.PrepaidAccount) AccountResponseDTO {
	sponsorID := a.SponsorID
	return AccountResponseDTO{
		ID:           a.ID,
		Kind:         string(domain.KindPrepaid),
		Username:     a.Username,
		Balance:      FormatCents(a.Balance),
		BalanceCents: a.Balance,
		Activated:    a.Activated,
		LastDrinkAt:  a.LastDrinkAt,
		SponsorID:    &sponsorID,
	}
}

type CreatePostpaidRequestDTO struct {
	Username string `json:"username" validate:"required,min=1,max=64" example:"alice"`
}

type CreatePrepaidRequestDTO struct {
	Username     string `json:"username" validate:"required,min=1,max=64" example:"alice-kid"`
	StartBalance int64  `json:"start_balance" validate:"gte=0" example:"1000"`
}

type SetPostpaidBalanceRequestDTO struct {
	Balance int64 `json:"balance" example:"2500"`
}

type SetPrepaidBalanceRequestDTO struct {
	Balance   int64 `json:"balance" validate:"gte=0" example:"1000"`
	SponsorID int   `json:"sponsor_id" validate:"required,gt=0" example:"1"`
}

type TransferRequestDTO struct {
	ToAccountID int   `json:"to_account_id" validate:"required,gt=0" example:"2"`
	Amount      int64 `json:"amount" validate:"required,gt=0" example:"500"`
}

type TransferResponseDTO struct {
	Balance      string `json:"balance" example:"5.00"`
	BalanceCents int64  `json:"balance_cents" example:"500"`
}

type TransactionResponseDTO struct {
	ID              int       `json:"id" example:"10"`
	CreatedAt       time.Time `json:"created_at" example:"2024-05-17T12:00:00Z"`
	PreviousBalance int64     `json:"previous_balance" example:"0"`
	NewBalance      int64     `json:"new_balance" example:"-100"`
	Delta           int64     `json:"delta" example:"-100"`
	Amount          string    `json:"amount" example:"-1.00"`
	Description     string    `json:"description" example:"drink purchased"`
}

func FromTransaction(tx domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:              tx.ID,
		CreatedAt:       tx.CreatedAt,
		PreviousBalance: tx.PreviousBalance,
		NewBalance:      tx.NewBalance,
		Delta:           tx.Delta,
		Amount:          FormatCents(tx.Delta),
		Description:     tx.Description,
	}
}
