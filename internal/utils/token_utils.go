package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
)

// AccessClaims are the JWT claims carried by API tokens. Role and account
// creation time travel inside the token so the pricing core can receive a
// complete Principal without a user lookup per request.
type AccessClaims struct {
	Role             string `json:"role"`
	AccountCreatedAt int64  `json:"accountCreatedAt"` // unix seconds
	jwt.RegisteredClaims
}

// GenerateJWT generates a signed token for the given user.
func GenerateJWT(user domain.User, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Role:             string(user.Role),
		AccountCreatedAt: user.CreatedAt.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature and
// standard claims, returning the AccessClaims when valid.
func ParseAndValidateJWT(tokenString string, secretKey string) (*AccessClaims, error) {
	claims := &AccessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}

// ToPrincipal converts validated claims into the domain Principal handed
// to the pricing core.
func (c *AccessClaims) ToPrincipal() domain.Principal {
	return domain.Principal{
		UserID:           c.Subject,
		Role:             domain.Role(c.Role),
		AccountCreatedAt: time.Unix(c.AccountCreatedAt, 0).UTC(),
	}
}
