package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// AccessTokenExpiry is the duration for which access tokens are valid.
	AccessTokenExpiry = 24 * time.Hour
	// RefreshTokenExpiry is the duration for which refresh tokens are valid.
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

// TokenKind distinguishes access tokens from refresh tokens.
// The kind is itself a claim so a refresh token cannot be replayed
// where an access token is expected.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// TTL returns the validity window for the token kind.
func (k TokenKind) TTL() time.Duration {
	if k == RefreshToken {
		return RefreshTokenExpiry
	}
	return AccessTokenExpiry
}

var (
	// ErrMalformedToken is returned when a token is structurally invalid.
	ErrMalformedToken = errors.New("malformed token")
	// ErrInvalidSignature is returned when the token signature does not verify.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrWrongTokenKind is returned when a token of another kind is presented.
	ErrWrongTokenKind = errors.New("wrong token kind")
)

// Claims represents the JWT claims carried by every issued token.
// Subject holds the user's email; authorization data is deliberately
// absent, the filter re-resolves the role on every request.
type Claims struct {
	Kind TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed, time-bounded tokens.
// The signing key is loaded once at process start and never mutated.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given symmetric secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// Issue builds and signs a token for the subject with the kind's TTL,
// anchored at now.
func (s *JWTService) Issue(subject string, kind TokenKind, now time.Time) (string, error) {
	claims := &Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(kind.TTL())),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// IssuePair issues an access and a refresh token for the subject.
func (s *JWTService) IssuePair(subject string, now time.Time) (access, refresh string, err error) {
	if access, err = s.Issue(subject, AccessToken, now); err != nil {
		return "", "", err
	}
	if refresh, err = s.Issue(subject, RefreshToken, now); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Verify decodes and validates a token string, expecting the given kind.
// The signature check takes precedence over every claim, including expiry:
// a token whose signature does not verify is reported as ErrInvalidSignature
// even if its (forged) expiry already passed.
func (s *JWTService) Verify(tokenString string, kind TokenKind) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return s.secret, nil
	})

	if err != nil {
		var verr *jwt.ValidationError
		if errors.As(err, &verr) {
			switch {
			case verr.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
				return nil, ErrInvalidSignature
			case verr.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, ErrMalformedToken
			case verr.Errors&jwt.ValidationErrorExpired != 0:
				return nil, ErrTokenExpired
			}
		}
		return nil, ErrMalformedToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformedToken
	}
	if claims.Kind != kind {
		return nil, ErrWrongTokenKind
	}
	if claims.Subject == "" {
		return nil, ErrMalformedToken
	}
	return claims, nil
}
