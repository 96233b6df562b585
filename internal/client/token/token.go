// Package token issues and reads the local session token.
//
// The token has the shape of a JWT (header.payload.signature, base64url
// segments, HS256 header) but the signature is a fixed marker derived from
// the user id and is never verified. It identifies a locally stored session
// and carries its expiry; it provides no security.
package token

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 24 * time.Hour

const signaturePrefix = "mock_signature_"

// Claims is the token payload. Expiry is exp in seconds since the epoch.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Issue builds a token for userID valid from now for ttl.
func Issue(userID string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SigningString()
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}

	sig := base64.RawURLEncoding.EncodeToString([]byte(signaturePrefix + userID))
	return unsigned + "." + sig, nil
}

// Parse decodes tok without checking its signature and rejects it when it is
// malformed or its expiry lies before now.
func Parse(tok string, now time.Time) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if claims.UserID == "" || claims.ExpiresAt == nil {
		return nil, common.ErrInvalidToken
	}

	if claims.ExpiresAt.Before(now) {
		return nil, common.ErrTokenExpired
	}

	return claims, nil
}
