package auth

import (
	"fmt"
	"time"

	"github.com/Aslam-01/Food-Managment/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenPair is the access+refresh credential set issued at signup and login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Identity is the authenticated caller extracted from a verified access token.
type Identity struct {
	UserID  uint
	IsAdmin bool
}

// Issuer mints and verifies HS256 token pairs.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewIssuer creates an Issuer signing with the given secret.
func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueFor mints a token pair for the given user. The access token
// carries the user ID and admin flag; the refresh token only carries
// the user ID plus a unique jti.
func (i *Issuer) IssueFor(user *models.User) (TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"uid": user.ID,
		"adm": user.IsAdmin,
		"iat": now.Unix(),
		"exp": now.Add(i.accessTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(i.secret)
	if err != nil {
		return TokenPair{}, err
	}

	refreshClaims := jwt.MapClaims{
		"uid": user.ID,
		"typ": "refresh",
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(i.refreshTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(i.secret)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

// ParseAccess verifies an access token and returns the caller identity.
// Refresh tokens are rejected here; they are not valid API credentials.
func (i *Issuer) ParseAccess(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// Pin the signing method to prevent algorithm confusion attacks.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("token parsing failed: %w", err)
	}
	if !token.Valid {
		return Identity{}, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("invalid token claims format")
	}

	if typ, _ := claims["typ"].(string); typ == "refresh" {
		return Identity{}, fmt.Errorf("refresh token cannot be used as an access token")
	}

	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return Identity{}, fmt.Errorf("token missing required 'uid' claim")
	}

	isAdmin, _ := claims["adm"].(bool)

	return Identity{UserID: uint(uid), IsAdmin: isAdmin}, nil
}
