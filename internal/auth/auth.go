// Package auth implements the credential store: password hashing and
// stateless session tokens.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the fixed validity window of a session token. There is no
// server-side revocation list; a token stays valid until it expires, and
// logout only clears the client cookie. Accepted limitation for this scope.
const TokenTTL = time.Hour

// ErrInvalidToken is returned when a token fails signature, structure, or
// expiry checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// Manager issues and verifies session credentials. The zero value is not
// usable; construct with NewManager.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager returns a Manager signing tokens with the given secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), ttl: TokenTTL}
}

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken creates a signed session token for the given user ID, expiring
// after the manager's TTL.
func (m *Manager) IssueToken(userID uint) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": now.Add(m.ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken validates a session token and returns the user ID it was
// issued for. It fails with ErrInvalidToken when the signature is wrong, the
// payload is malformed, or the expiry has passed.
func (m *Manager) VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}
