package auth

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/drinkledger/internal/domain"
	"github.com/GlebRadaev/drinkledger/pkg/utils"
)

// Principal is the caller as resolved by the upstream auth layer.
type Principal struct {
	AccountID int
	Kind      domain.AccountKind
	IsAdmin   bool
	IsMember  bool
}

func (p Principal) Ref() domain.AccountRef {
	return domain.AccountRef{ID: p.AccountID, Kind: p.Kind}
}

type ContextKey string

const PrincipalKey ContextKey = "principal"

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(Principal)
	return p, ok
}

// Resolve returns the principal of the request or answers 401.
func Resolve(w http.ResponseWriter, r *http.Request) (Principal, bool) {
	p, ok := FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return p, ok
}
