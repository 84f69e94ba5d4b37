package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/internal/pg"
	"github.com/GlebRadaev/drinkledger/internal/repo"
)

// memStore is an in-memory stand-in for the database. Begin serialises
// transactions and restores a snapshot when fn fails.
type memStore struct {
	mu sync.Mutex

	postpaid     map[int]domain.PostpaidAccount
	prepaid      map[int]domain.PrepaidAccount
	drinkTypes   map[int]domain.DrinkType
	events       []domain.DrinkEvent
	transactions []domain.Transaction
	nextID       int
}

type memState struct {
	postpaid     map[int]domain.PostpaidAccount
	prepaid      map[int]domain.PrepaidAccount
	drinkTypes   map[int]domain.DrinkType
	events       []domain.DrinkEvent
	transactions []domain.Transaction
	nextID       int
}

func newMemStore(drinkTypes ...domain.DrinkType) *memStore {
	s := &memStore{
		postpaid:   map[int]domain.PostpaidAccount{},
		prepaid:    map[int]domain.PrepaidAccount{},
		drinkTypes: map[int]domain.DrinkType{},
		nextID:     100,
	}
	for _, t := range drinkTypes {
		s.drinkTypes[t.ID] = t
	}
	return s
}

func (s *memStore) snapshot() memState {
	st := memState{
		postpaid:     make(map[int]domain.PostpaidAccount, len(s.postpaid)),
		prepaid:      make(map[int]domain.PrepaidAccount, len(s.prepaid)),
		drinkTypes:   make(map[int]domain.DrinkType, len(s.drinkTypes)),
		events:       append([]domain.DrinkEvent(nil), s.events...),
		transactions: append([]domain.Transaction(nil), s.transactions...),
		nextID:       s.nextID,
	}
	for k, v := range s.postpaid {
		st.postpaid[k] = v
	}
	for k, v := range s.prepaid {
		st.prepaid[k] = v
	}
	for k, v := range s.drinkTypes {
		st.drinkTypes[k] = v
	}
	return st
}

func (s *memStore) restore(st memState) {
	s.postpaid = st.postpaid
	s.prepaid = st.prepaid
	s.drinkTypes = st.drinkTypes
	s.events = st.events
	s.transactions = st.transactions
	s.nextID = st.nextID
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

type inTxKey struct{}

func (s *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(inTxKey{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.snapshot()
	if err := fn(context.WithValue(ctx, inTxKey{}, true)); err != nil {
		s.restore(saved)
		return err
	}
	return nil
}

// read runs fn under the store lock unless ctx already holds it.
func (s *memStore) read(ctx context.Context, fn func()) {
	if ctx.Value(inTxKey{}) == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}

func (s *memStore) repositories() *repo.Repositories {
	return &repo.Repositories{
		PostpaidRepo:    memPostpaid{s},
		PrepaidRepo:     memPrepaid{s},
		UsernameRepo:    memUsernames{s},
		TransactionRepo: memTransactions{s},
		DrinkRepo:       memDrinks{s},
		DrinkTypeRepo:   memDrinkTypes{s},
	}
}

type memPostpaid struct{ s *memStore }

func (r memPostpaid) Create(ctx context.Context, username string) (*domain.PostpaidAccount, error) {
	var out *domain.PostpaidAccount
	r.s.read(ctx, func() {
		a := domain.PostpaidAccount{ID: r.s.id(), Username: username}
		r.s.postpaid[a.ID] = a
		out = &a
	})
	return out, nil
}

func (r memPostpaid) FindByID(ctx context.Context, id int) (*domain.PostpaidAccount, error) {
	var out *domain.PostpaidAccount
	r.s.read(ctx, func() {
		if a, ok := r.s.postpaid[id]; ok {
			out = &a
		}
	})
	return out, nil
}

func (r memPostpaid) FindByUsername(ctx context.Context, username string) (*domain.PostpaidAccount, error) {
	var out *domain.PostpaidAccount
	r.s.read(ctx, func() {
		for _, a := range r.s.postpaid {
			if a.Username == username {
				a := a
				out = &a
			}
		}
	})
	return out, nil
}

func (r memPostpaid) LockState(ctx context.Context, id int) (*domain.AccountState, error) {
	a, ok := r.s.postpaid[id]
	if !ok {
		return nil, nil
	}
	return &domain.AccountState{Ref: a.Ref(), Balance: a.Balance, Activated: a.Activated}, nil
}

func (r memPostpaid) SetBalance(ctx context.Context, id int, balance int64, drankAt *time.Time) (bool, error) {
	a, ok := r.s.postpaid[id]
	if !ok {
		return false, nil
	}
	a.Balance = balance
	if drankAt != nil {
		a.LastDrinkAt = drankAt
	}
	r.s.postpaid[id] = a
	return true, nil
}

func (r memPostpaid) ToggleActivated(ctx context.Context, id int) (*domain.PostpaidAccount, error) {
	a, ok := r.s.postpaid[id]
	if !ok {
		return nil, nil
	}
	a.Activated = !a.Activated
	r.s.postpaid[id] = a
	return &a, nil
}

type memPrepaid struct{ s *memStore }

func (r memPrepaid) Create(ctx context.Context, account *domain.PrepaidAccount) (*domain.PrepaidAccount, error) {
	a := *account
	a.ID = r.s.id()
	a.Activated = true
	r.s.prepaid[a.ID] = a
	return &a, nil
}

func (r memPrepaid) FindByID(ctx context.Context, id int) (*domain.PrepaidAccount, error) {
	var out *domain.PrepaidAccount
	r.s.read(ctx, func() {
		if a, ok := r.s.prepaid[id]; ok {
			out = &a
		}
	})
	return out, nil
}

func (r memPrepaid) find(ctx context.Context, match func(domain.PrepaidAccount) bool) *domain.PrepaidAccount {
	var out *domain.PrepaidAccount
	r.s.read(ctx, func() {
		for _, a := range r.s.prepaid {
			if match(a) {
				a := a
				out = &a
			}
		}
	})
	return out
}

func (r memPrepaid) FindByUsername(ctx context.Context, username string) (*domain.PrepaidAccount, error) {
	return r.find(ctx, func(a domain.PrepaidAccount) bool { return a.Username == username }), nil
}

func (r memPrepaid) FindByAccessKey(ctx context.Context, accessKey string) (*domain.PrepaidAccount, error) {
	return r.find(ctx, func(a domain.PrepaidAccount) bool { return a.AccessKey == accessKey }), nil
}

func (r memPrepaid) FindBySponsor(ctx context.Context, sponsorID int) ([]domain.PrepaidAccount, error) {
	var out []domain.PrepaidAccount
	r.s.read(ctx, func() {
		for _, a := range r.s.prepaid {
			if a.SponsorID == sponsorID {
				out = append(out, a)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memPrepaid) LockState(ctx context.Context, id int) (*domain.AccountState, error) {
	a, ok := r.s.prepaid[id]
	if !ok {
		return nil, nil
	}
	return &domain.AccountState{Ref: a.Ref(), Balance: a.Balance, Activated: a.Activated}, nil
}

func (r memPrepaid) SetBalance(ctx context.Context, id int, balance int64, drankAt *time.Time) (bool, error) {
	a, ok := r.s.prepaid[id]
	if !ok {
		return false, nil
	}
	if balance < 0 {
		return false, fmt.Errorf("balance check violated")
	}
	a.Balance = balance
	if drankAt != nil {
		a.LastDrinkAt = drankAt
	}
	r.s.prepaid[id] = a
	return true, nil
}

func (r memPrepaid) SetSponsor(ctx context.Context, id int, sponsorID int) (bool, error) {
	a, ok := r.s.prepaid[id]
	if !ok {
		return false, nil
	}
	a.SponsorID = sponsorID
	r.s.prepaid[id] = a
	return true, nil
}

func (r memPrepaid) ToggleActivated(ctx context.Context, id int) (*domain.PrepaidAccount, error) {
	a, ok := r.s.prepaid[id]
	if !ok {
		return nil, nil
	}
	a.Activated = !a.Activated
	r.s.prepaid[id] = a
	return &a, nil
}

func (r memPrepaid) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := r.s.prepaid[id]; !ok {
		return false, nil
	}
	delete(r.s.prepaid, id)
	return true, nil
}

type memUsernames struct{ s *memStore }

func (r memUsernames) IsTaken(ctx context.Context, username string) (bool, error) {
	for _, a := range r.s.postpaid {
		if a.Username == username {
			return true, nil
		}
	}
	for _, a := range r.s.prepaid {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type memTransactions struct{ s *memStore }

func (r memTransactions) Insert(ctx context.Context, tx *domain.Transaction) (int, error) {
	t := *tx
	t.ID = r.s.id()
	r.s.transactions = append(r.s.transactions, t)
	return t.ID, nil
}

func (r memTransactions) CurrentBalance(ctx context.Context, ref domain.AccountRef) (int64, bool, error) {
	var (
		balance int64
		found   bool
	)
	r.s.read(ctx, func() {
		switch ref.Kind {
		case domain.KindPostpaid:
			a, ok := r.s.postpaid[ref.ID]
			balance, found = a.Balance, ok
		case domain.KindPrepaid:
			a, ok := r.s.prepaid[ref.ID]
			balance, found = a.Balance, ok
		}
	})
	return balance, found, nil
}

func (r memTransactions) ListByAccount(ctx context.Context, ref domain.AccountRef, limit int) ([]domain.Transaction, error) {
	var out []domain.Transaction
	r.s.read(ctx, func() {
		for i := len(r.s.transactions) - 1; i >= 0 && len(out) < limit; i-- {
			if r.s.transactions[i].Account == ref {
				out = append(out, r.s.transactions[i])
			}
		}
	})
	return out, nil
}

type memDrinks struct{ s *memStore }

func (r memDrinks) Create(ctx context.Context, event *domain.DrinkEvent) (*domain.DrinkEvent, error) {
	e := *event
	e.ID = r.s.id()
	r.s.events = append(r.s.events, e)
	return &e, nil
}

func (r memDrinks) last(ref domain.AccountRef) *domain.DrinkEvent {
	for i := len(r.s.events) - 1; i >= 0; i-- {
		if r.s.events[i].Account == ref {
			e := r.s.events[i]
			return &e
		}
	}
	return nil
}

func (r memDrinks) FindLast(ctx context.Context, ref domain.AccountRef) (*domain.DrinkEvent, error) {
	var out *domain.DrinkEvent
	r.s.read(ctx, func() { out = r.last(ref) })
	return out, nil
}

func (r memDrinks) LockLast(ctx context.Context, ref domain.AccountRef) (*domain.DrinkEvent, error) {
	return r.last(ref), nil
}

func (r memDrinks) Delete(ctx context.Context, ref domain.AccountRef, id int) (bool, error) {
	for i, e := range r.s.events {
		if e.ID == id && e.Account == ref {
			r.s.events = append(r.s.events[:i], r.s.events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r memDrinks) SetDrinkType(ctx context.Context, ref domain.AccountRef, id int, drinkTypeID int) (bool, error) {
	for i, e := range r.s.events {
		if e.ID == id && e.Account == ref {
			r.s.events[i].DrinkTypeID = &drinkTypeID
			return true, nil
		}
	}
	return false, nil
}

func (r memDrinks) usage(match func(domain.DrinkEvent) bool) []domain.DrinkUsage {
	counts := map[int]int{}
	for _, e := range r.s.events {
		if e.DrinkTypeID != nil && match(e) {
			counts[*e.DrinkTypeID]++
		}
	}
	out := make([]domain.DrinkUsage, 0, len(counts))
	for id, n := range counts {
		out = append(out, domain.DrinkUsage{DrinkType: r.s.drinkTypes[id], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].DrinkType.ID < out[j].DrinkType.ID
	})
	return out
}

func (r memDrinks) CountByType(ctx context.Context, ref domain.AccountRef, excludeTypeID int) ([]domain.DrinkUsage, error) {
	var out []domain.DrinkUsage
	r.s.read(ctx, func() {
		out = r.usage(func(e domain.DrinkEvent) bool {
			return e.Account == ref && *e.DrinkTypeID != excludeTypeID
		})
	})
	return out, nil
}

func (r memDrinks) StatsByType(ctx context.Context) ([]domain.DrinkUsage, error) {
	var out []domain.DrinkUsage
	r.s.read(ctx, func() {
		out = r.usage(func(domain.DrinkEvent) bool { return true })
	})
	return out, nil
}

type memDrinkTypes struct{ s *memStore }

func (r memDrinkTypes) Create(ctx context.Context, drinkType *domain.DrinkType) (*domain.DrinkType, error) {
	var (
		out *domain.DrinkType
		err error
	)
	r.s.read(ctx, func() {
		for _, t := range r.s.drinkTypes {
			if t.Name == drinkType.Name {
				err = fmt.Errorf("%w: drink type %q exists", domain.ErrConflict, t.Name)
				return
			}
		}
		t := *drinkType
		t.ID = r.s.id()
		r.s.drinkTypes[t.ID] = t
		out = &t
	})
	return out, err
}

func (r memDrinkTypes) FindByID(ctx context.Context, id int) (*domain.DrinkType, error) {
	var out *domain.DrinkType
	r.s.read(ctx, func() {
		if t, ok := r.s.drinkTypes[id]; ok {
			out = &t
		}
	})
	return out, nil
}

func (r memDrinkTypes) FindByName(ctx context.Context, name string) (*domain.DrinkType, error) {
	var out *domain.DrinkType
	r.s.read(ctx, func() {
		for _, t := range r.s.drinkTypes {
			if t.Name == name {
				t := t
				out = &t
			}
		}
	})
	return out, nil
}

func (r memDrinkTypes) FindAll(ctx context.Context) ([]domain.DrinkType, error) {
	var out []domain.DrinkType
	r.s.read(ctx, func() {
		for _, t := range r.s.drinkTypes {
			out = append(out, t)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memDrinkTypes) SetQuantity(ctx context.Context, id int, quantity int) (bool, error) {
	var ok bool
	r.s.read(ctx, func() {
		var t domain.DrinkType
		if t, ok = r.s.drinkTypes[id]; ok {
			t.Quantity = quantity
			r.s.drinkTypes[id] = t
		}
	})
	return ok, nil
}

func (r memDrinkTypes) DecrementQuantity(ctx context.Context, id int) (bool, error) {
	t, ok := r.s.drinkTypes[id]
	if !ok {
		return false, nil
	}
	t.Quantity--
	r.s.drinkTypes[id] = t
	return true, nil
}
