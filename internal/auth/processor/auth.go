package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campaign-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "campaign-server"

var (
	ErrInvalidJWTToken  = errors.New("invalid jwt token")
	ErrParseJWTToken    = errors.New("failed to parse jwt token")
	ErrExpiredToken     = errors.New("token expired")
	ErrMissingCompanyID = errors.New("token has no company id")
)

// AuthProcessor verifies the tokens issued to company users
type AuthProcessor struct {
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

// BaseClaims are the claims carried by every token. CompanyID scopes every
// request made with the token.
type BaseClaims struct {
	jwt.RegisteredClaims
	CompanyID string `json:"company_id"`
}

// Company returns the parsed company id claim
func (b BaseClaims) Company() (uuid.UUID, error) {
	if b.CompanyID == "" {
		return uuid.Nil, ErrMissingCompanyID
	}
	id, err := uuid.Parse(b.CompanyID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}
	return id, nil
}

// GenerateJWTToken signs a token for a user of a company
func (p *AuthProcessor) GenerateJWTToken(ctx context.Context, userID, companyID uuid.UUID, ttl time.Duration) (string, error) {
	now := p.now()
	claims := BaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{issuer},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		CompanyID: companyID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", err
	}
	return tokenString, nil
}

func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		// Check the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Warn(ctx, "token expired")
			return BaseClaims{}, ErrExpiredToken
		}
		p.logger.Warn(ctx, "failed to parse token", observability.Field{Key: "error", Value: err.Error()})
		return BaseClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return BaseClaims{}, ErrInvalidJWTToken
	}

	claims, ok := t.Claims.(*BaseClaims)
	if !ok {
		return BaseClaims{}, ErrParseJWTToken
	}
	return *claims, nil
}
