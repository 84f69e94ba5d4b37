package pg

import (
	"fmt"

	"github.com/GlebRadaev/drinkledger/internal/domain"
)

// AccountColumn is the history column holding ids of accounts of the given kind.
func AccountColumn(kind domain.AccountKind) string {
	if kind == domain.KindPrepaid {
		return "prepaid_account_id"
	}
	return "postpaid_account_id"
}

// AccountTable is the table holding accounts of the given kind.
func AccountTable(kind domain.AccountKind) string {
	if kind == domain.KindPrepaid {
		return "prepaid_accounts"
	}
	return "postpaid_accounts"
}

// SplitRef spreads ref over the (postpaid, prepaid) column pair; the column
// of the other kind stays NULL.
func SplitRef(ref domain.AccountRef) (postpaidID, prepaidID *int) {
	id := ref.ID
	if ref.Kind == domain.KindPrepaid {
		return nil, &id
	}
	return &id, nil
}

// JoinRef is the inverse of SplitRef for scanned history rows.
func JoinRef(postpaidID, prepaidID *int) (domain.AccountRef, error) {
	switch {
	case postpaidID != nil && prepaidID == nil:
		return domain.AccountRef{ID: *postpaidID, Kind: domain.KindPostpaid}, nil
	case prepaidID != nil && postpaidID == nil:
		return domain.AccountRef{ID: *prepaidID, Kind: domain.KindPrepaid}, nil
	}
	return domain.AccountRef{}, fmt.Errorf("history row must reference exactly one account")
}
