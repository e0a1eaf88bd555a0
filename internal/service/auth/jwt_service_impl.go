package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/endorsa/endorsa-api/internal/config"
	"github.com/endorsa/endorsa-api/internal/platform/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// minSecretLength is the shortest HS256 secret accepted.
const minSecretLength = 32

// jwtService implements JWTService for one configured algorithm.
type jwtService struct {
	method        jwt.SigningMethod
	verifyKey     interface{}
	signKey       interface{} // nil when tokens can only be verified
	issuer        string
	audience      string
	tokenLifetime time.Duration
	clockSkew     time.Duration    // Allowed time difference for validation to handle clock drift
	timeFunc      func() time.Time // Injectable for testing
}

// jwtCustomClaims defines the structure of JWT claims we use
type jwtCustomClaims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// Ensure jwtService implements JWTService interface
var _ JWTService = (*jwtService)(nil)

// NewJWTService creates a JWT service from the auth configuration.
// HS256 signs and verifies with the shared secret. RS256 verifies with the
// public key and signs only when a private key is configured.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	svc := &jwtService{
		issuer:        cfg.Issuer,
		audience:      cfg.Audience,
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		clockSkew:     time.Duration(cfg.ClockSkewSeconds) * time.Second,
		timeFunc:      time.Now,
	}
	if svc.tokenLifetime <= 0 {
		svc.tokenLifetime = time.Hour
	}

	switch cfg.Algorithm {
	case jwt.SigningMethodHS256.Alg():
		if len(cfg.JWTSecret) < minSecretLength {
			return nil, fmt.Errorf("jwt secret must be at least %d characters", minSecretLength)
		}
		svc.method = jwt.SigningMethodHS256
		svc.verifyKey = []byte(cfg.JWTSecret)
		svc.signKey = []byte(cfg.JWTSecret)

	case jwt.SigningMethodRS256.Alg():
		publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKey))
		if err != nil {
			return nil, fmt.Errorf("failed to parse RS256 public key: %w", err)
		}
		svc.method = jwt.SigningMethodRS256
		svc.verifyKey = publicKey

		if cfg.PrivateKey != "" {
			privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.PrivateKey))
			if err != nil {
				return nil, fmt.Errorf("failed to parse RS256 private key: %w", err)
			}
			svc.signKey = privateKey
		}

	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}

	return svc, nil
}

// GenerateToken creates a signed token with the permissions claim.
func (s *jwtService) GenerateToken(ctx context.Context, subject string, permissions []string) (string, error) {
	log := logger.FromContext(ctx)

	if s.signKey == nil {
		return "", ErrSigningUnavailable
	}
	if permissions == nil {
		permissions = []string{}
	}

	now := s.timeFunc()
	claims := jwtCustomClaims{
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        uuid.New().String(),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	signedToken, err := jwt.NewWithClaims(s.method, claims).SignedString(s.signKey)
	if err != nil {
		log.Error("failed to sign token",
			slog.String("error", err.Error()),
			slog.String("subject", subject),
			slog.String("signing_method", s.method.Alg()))
		return "", fmt.Errorf("failed to sign token with %s: %w", s.method.Alg(), err)
	}

	return signedToken, nil
}

// ValidateToken validates a token and returns its claims.
func (s *jwtService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return nil, ErrMissingToken
	}

	now := s.timeFunc()
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time {
			return now
		}),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(s.audience))
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtCustomClaims{},
		func(*jwt.Token) (interface{}, error) {
			return s.verifyKey, nil
		},
		parserOpts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: token expired", slog.String("error", err.Error()))
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("token validation failed: token not yet valid", slog.String("error", err.Error()))
			return nil, ErrTokenNotYetValid
		default:
			log.Debug("token validation failed",
				slog.String("error", err.Error()),
				slog.String("error_type", fmt.Sprintf("%T", err)))
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		log.Debug("token validation failed: invalid claims")
		return nil, ErrInvalidToken
	}

	result := &Claims{
		Subject:     claims.Subject,
		Issuer:      claims.Issuer,
		Audience:    claims.Audience,
		Permissions: claims.Permissions,
		ID:          claims.ID,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	log.Debug("token validated successfully",
		slog.String("subject", claims.Subject),
		slog.String("token_id", claims.ID))
	return result, nil
}
