package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vuttr/config"
	domainerrors "vuttr/internal/domain/errors"
	"vuttr/internal/domain/service"
	"vuttr/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// All fields are read-only after construction.
type jwtService struct {
	secret   []byte        // Shared HMAC key.
	issuer   string        // Value of the iss claim.
	audience string        // Value of the aud claim.
	ttl      time.Duration // Lifetime of every issued token.
	now      func() time.Time
}

// NewJWTService validates the jwt section and builds the issuer.
// A failure here is a configuration error and keeps the app from starting.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.JWT == nil {
		return nil, errors.New("jwt configuration must be provided")
	}
	if strings.TrimSpace(cfg.JWT.SecretKey) == "" {
		return nil, errors.New("jwt secret key must be provided")
	}
	if cfg.JWT.ValidIssuer == "" || cfg.JWT.ValidAudience == "" {
		return nil, errors.New("jwt issuer and audience must be provided")
	}
	if cfg.JWT.TTL <= 0 {
		return nil, errors.Errorf("jwt ttl must be positive, got %s", cfg.JWT.TTL)
	}

	return &jwtService{
		secret:   []byte(cfg.JWT.SecretKey),
		issuer:   cfg.JWT.ValidIssuer,
		audience: cfg.JWT.ValidAudience,
		ttl:      cfg.JWT.TTL,
		now:      time.Now,
	}, nil
}

// IssueToken signs an HS256 token whose subject is the username.
// The returned expiry equals the exp claim.
func (s *jwtService) IssueToken(username, email string) (string, time.Time, error) {
	// JWT dates have second precision; truncate so exp - iat is exactly the TTL.
	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// ValidateToken parses tokenString and checks signature, expiry, issuer and audience.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}
	if !token.Valid || claims.Subject == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token has no subject")
	}

	return claims, nil
}
