package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/GlebRadaev/drinkledger/internal/domain"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

type JWTServiceInterface interface {
	GenerateJWT(principal Principal, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

const issuer = "drinkledger"

// Claims are minted by the upstream login flow once it has resolved a user
// to a ledger account.
type Claims struct {
	AccountID int    `json:"account_id"`
	Kind      string `json:"kind"`
	Admin     bool   `json:"admin"`
	Member    bool   `json:"member"`
	jwt.StandardClaims
}

func (c *Claims) Principal() Principal {
	return Principal{
		AccountID: c.AccountID,
		Kind:      domain.AccountKind(c.Kind),
		IsAdmin:   c.Admin,
		IsMember:  c.Member,
	}
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secretKey: []byte(secret),
	}
}

func (s *JWTService) GenerateJWT(principal Principal, expirationTime time.Time) (string, error) {
	claims := Claims{
		AccountID: principal.AccountID,
		Kind:      string(principal.Kind),
		Admin:     principal.IsAdmin,
		Member:    principal.IsMember,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.AccountID == 0 || !domain.AccountKind(claims.Kind).Valid() || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
