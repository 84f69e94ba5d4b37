package dto

import (
	"time"

	"github.com/GlebRadaev/drinkledger/internal/domain"
)

type PurchaseRequestDTO struct {
	DrinkTypeID *int `json:"drink_type_id,omitempty" validate:"omitempty,gt=0" example:"8"`
}

type DrinkEventDTO struct {
	ID          int       `json:"id" example:"3"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-17T12:00:00Z"`
	DrinkTypeID *int      `json:"drink_type_id,omitempty" example:"8"`
}

func FromDrinkEvent(e *domain.DrinkEvent) *DrinkEventDTO {
	if e == nil {
		return nil
	}
	return &DrinkEventDTO{
		ID:          e.ID,
		CreatedAt:   e.CreatedAt,
		DrinkTypeID: e.DrinkTypeID,
	}
}

type PurchaseResponseDTO struct {
	Event         *DrinkEventDTO `json:"event"`
	TransactionID int            `json:"transaction_id" example:"10"`
	Balance       string         `json:"balance" example:"-1.00"`
	BalanceCents  int64          `json:"balance_cents" example:"-100"`
}

type RevertResponseDTO struct {
	Reverted     bool           `json:"reverted" example:"true"`
	Event        *DrinkEventDTO `json:"event,omitempty"`
	Balance      string         `json:"balance" example:"0.00"`
	BalanceCents int64          `json:"balance_cents" example:"0"`
}

type LastDrinkResponseDTO struct {
	Event    DrinkEventDTO `json:"event"`
	TypeName string        `json:"type_name,omitempty" example:"Club Mate"`
	TypeIcon string        `json:"type_icon,omitempty" example:"club_mate.png"`
}

type UpdateDrinkTypeRequestDTO struct {
	DrinkTypeID int `json:"drink_type_id" validate:"required,gt=0" example:"8"`
}

type DrinkTypeDTO struct {
	ID       int    `json:"id" example:"8"`
	Name     string `json:"name" example:"Club Mate"`
	Icon     string `json:"icon" example:"club_mate.png"`
	Quantity int    `json:"quantity" example:"24"`
}

func FromDrinkType(t domain.DrinkType) DrinkTypeDTO {
	return DrinkTypeDTO{
		ID:       t.ID,
		Name:     t.Name,
		Icon:     t.Icon,
		Quantity: t.Quantity,
	}
}

type DrinkUsageDTO struct {
	DrinkType DrinkTypeDTO `json:"drink_type"`
	Count     int          `json:"count" example:"5"`
}

func FromUsage(usage []domain.DrinkUsage) []DrinkUsageDTO {
	out := make([]DrinkUsageDTO, len(usage))
	for i, u := range usage {
		out[i] = DrinkUsageDTO{DrinkType: FromDrinkType(u.DrinkType), Count: u.Count}
	}
	return out
}

type AddDrinkTypeRequestDTO struct {
	Name     string `json:"name" validate:"required,max=100" example:"Mate Zero"`
	Icon     string `json:"icon" validate:"required,max=255" example:"mate_zero.png"`
	Quantity int    `json:"quantity" example:"24"`
}

type SetQuantityRequestDTO struct {
	Quantity int `json:"quantity" example:"30"`
}
