package domain

import "time"

type AccountKind string

const (
	KindPostpaid AccountKind = "postpaid"
	KindPrepaid  AccountKind = "prepaid"
)

func (k AccountKind) Valid() bool {
	return k == KindPostpaid || k == KindPrepaid
}

// AccountRef identifies an account across both namespaces. Historical rows
// keep their ref even after the account itself is gone.
type AccountRef struct {
	ID   int         `json:"id"`
	Kind AccountKind `json:"kind"`
}

type PostpaidAccount struct {
	ID          int        `db:"id"`
	Username    string     `db:"username"`
	Balance     int64      `db:"balance"`
	Activated   bool       `db:"activated"`
	LastDrinkAt *time.Time `db:"last_drink_at"`
}

func (a *PostpaidAccount) Ref() AccountRef {
	return AccountRef{ID: a.ID, Kind: KindPostpaid}
}

type PrepaidAccount struct {
	ID          int        `db:"id"`
	Username    string     `db:"username"`
	AccessKey   string     `db:"access_key"`
	SponsorID   int        `db:"sponsor_id"`
	Balance     int64      `db:"balance"`
	Activated   bool       `db:"activated"`
	LastDrinkAt *time.Time `db:"last_drink_at"`
}

func (a *PrepaidAccount) Ref() AccountRef {
	return AccountRef{ID: a.ID, Kind: KindPrepaid}
}

// AccountState is the row-locked part of an account that ledger writes
// operate on.
type AccountState struct {
	Ref       AccountRef
	Balance   int64
	Activated bool
}

// DrinkEvent is one tap on the drink button. A nil DrinkTypeID means the
// drink has not been classified yet.
type DrinkEvent struct {
	ID          int        `db:"id"`
	Account     AccountRef `db:"-"`
	CreatedAt   time.Time  `db:"created_at"`
	DrinkTypeID *int       `db:"drink_type_id"`
}

type Transaction struct {
	ID              int        `db:"id"`
	Account         AccountRef `db:"-"`
	CreatedAt       time.Time  `db:"created_at"`
	PreviousBalance int64      `db:"previous_balance"`
	NewBalance      int64      `db:"new_balance"`
	Delta           int64      `db:"delta"`
	Description     string     `db:"description"`
}

// TransactionRecord is the input of the transaction log. Exactly one of New
// and Delta must be set; Previous is read from the account when nil.
type TransactionRecord struct {
	Account     AccountRef
	Previous    *int64
	New         *int64
	Delta       *int64
	Description string
}

// UnspecifiedDrinkTypeID is the catalog entry for "other" drinks. It is a
// valid classification but is left out of per-account rankings.
const UnspecifiedDrinkTypeID = 1

type DrinkType struct {
	ID       int    `db:"id"`
	Name     string `db:"name"`
	Icon     string `db:"icon"`
	Quantity int    `db:"quantity"`
}

type DrinkUsage struct {
	DrinkType DrinkType
	Count     int
}

type LastDrink struct {
	Event    DrinkEvent
	TypeName string
	TypeIcon string
}

func Int64Ptr(v int64) *int64 {
	return &v
}
