package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/identity"
	"github.com/petalia/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TokenIssuer signs access tokens. Besides operator logins, suppliers get a
// token scoped to a single panel so the link shared over chat opens only
// that panel's actions.
type TokenIssuer interface {
	IssueUserToken(userID uuid.UUID, role string) (string, time.Time, error)
	IssuePanelToken(panelID, supplierID uuid.UUID) (string, time.Time, error)
}

// AuthService authenticates back-office users and mints panel links
type AuthService struct {
	userRepo identity.UserRepository
	tokens   TokenIssuer
	logger   *zap.Logger
}

// NewAuthService creates an AuthService
func NewAuthService(userRepo identity.UserRepository, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens, logger: logger}
}

// Login verifies credentials and returns a signed token.
// Bad email and bad password return the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.IsActive || !user.VerifyPassword(password) {
		return nil, shared.ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.IssueUserToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.RecordLogin(time.Now())
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Warn("failed to record login", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// Register creates a back-office account. Admin only; enforced at the router.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Já existe um usuário com este e-mail")
	}

	user, err := identity.NewUser(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return &UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

// ChangePassword replaces the caller's password
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.ChangePassword(oldPassword, newPassword); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// IssuePanelLink mints the panel-scoped token embedded in the supplier's link
func (s *AuthService) IssuePanelLink(ctx context.Context, panelID, supplierID uuid.UUID) (*PanelLinkResponse, error) {
	token, expiresAt, err := s.tokens.IssuePanelToken(panelID, supplierID)
	if err != nil {
		return nil, err
	}
	return &PanelLinkResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// UserResponse is the API view of a user
type UserResponse struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  identity.Role `json:"role"`
}

// LoginResponse carries the access token and the authenticated user
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// PanelLinkResponse carries a panel-scoped access token
type PanelLinkResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterRequest creates a back-office account
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     identity.Role
}
