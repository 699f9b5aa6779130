package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	appidentity "github.com/petalia/backend/internal/application/identity"
	"github.com/petalia/backend/internal/infrastructure/config"
)

// TokenType distinguishes operator logins from panel-scoped supplier links
type TokenType string

const (
	TokenTypeUser  TokenType = "user"
	TokenTypePanel TokenType = "panel"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrInvalidClaims    = errors.New("invalid token claims")
)

// Claims represents custom JWT claims
type Claims struct {
	jwt.RegisteredClaims
	TokenType  TokenType `json:"token_type"`
	UserID     string    `json:"user_id,omitempty"`
	Role       string    `json:"role,omitempty"`
	PanelID    string    `json:"panel_id,omitempty"`
	SupplierID string    `json:"supplier_id,omitempty"`
}

// JWTService signs and validates access tokens.
// User tokens authenticate back-office operators; panel tokens are minted
// into links shared with suppliers over chat and only open one panel.
type JWTService struct {
	secret        []byte
	userDuration  time.Duration
	panelDuration time.Duration
	issuer        string
}

// NewJWTService creates a JWT service
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:        []byte(cfg.Secret),
		userDuration:  cfg.AccessTokenDuration,
		panelDuration: cfg.PanelTokenDuration,
		issuer:        cfg.Issuer,
	}
}

// IssueUserToken signs an operator access token
func (s *JWTService) IssueUserToken(userID uuid.UUID, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.userDuration)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TokenType: TokenTypeUser,
		UserID:    userID.String(),
		Role:      role,
	}

	token, err := s.sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// IssuePanelToken signs a token scoped to one supplier panel
func (s *JWTService) IssuePanelToken(panelID, supplierID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.panelDuration)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   supplierID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TokenType:  TokenTypePanel,
		PanelID:    panelID.String(),
		SupplierID: supplierID.String(),
	}

	token, err := s.sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ValidateUserToken validates an operator token and returns its claims
func (s *JWTService) ValidateUserToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, TokenTypeUser)
}

// ValidatePanelToken validates a panel-scoped token and returns its claims
func (s *JWTService) ValidatePanelToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, TokenTypePanel)
}

func (s *JWTService) sign(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) validate(tokenString string, expectedType TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.TokenType != expectedType {
		return nil, ErrInvalidTokenType
	}
	return claims, nil
}

// Ensure JWTService implements the token issuer port
var _ appidentity.TokenIssuer = (*JWTService)(nil)
