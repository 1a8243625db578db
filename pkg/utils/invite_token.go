package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const InviteTokenTTL = 7 * 24 * time.Hour

// InviteTokenIssuer mints and verifies the signed, self-expiring invite
// tokens. Verification here is independent of the Invite row's own ExpiresAt;
// acceptance requires both to pass.
type InviteTokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewInviteTokenIssuer(secret string, ttl time.Duration) *InviteTokenIssuer {
	if ttl <= 0 {
		ttl = InviteTokenTTL
	}
	return &InviteTokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is the invited user's id.
func (i *InviteTokenIssuer) Issue(subjectID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify returns the subject id, or ErrInvalidToken on any signature or
// expiry failure.
func (i *InviteTokenIssuer) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return subject, nil
}
