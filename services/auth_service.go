package services

import (
	"context"
	"strings"
	"time"

	"rentdesk/constants"
	"rentdesk/errors"
	"rentdesk/models"
	"rentdesk/repository"
	"rentdesk/services/logger"
	"rentdesk/types"
	"rentdesk/validator"

	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is a tenant self-registration or an admin account.
type RegisterInput struct {
	Name             string
	Email            string
	Password         string
	ContactNumber    string
	CurrentAddress   string
	PermanentAddress string
}

type LoginResult struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        *models.User `json:"user"`
}

type AuthService struct {
	store  *repository.Store
	tokens *TokenIssuer
	denied *TokenStore
	logger logger.Logger
}

func NewAuthService(opts ServiceOptions, tokens *TokenIssuer, denied *TokenStore) *AuthService {
	opts = opts.withDefaults()
	return &AuthService{
		store:  opts.Store,
		tokens: tokens,
		denied: denied,
		logger: opts.Logger,
	}
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates a tenant account.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	return s.createUser(ctx, in, constants.RoleTenant)
}

// CreateAdmin creates an admin account. Only the CLI calls this.
func (s *AuthService) CreateAdmin(ctx context.Context, in RegisterInput) (*models.User, error) {
	return s.createUser(ctx, in, constants.RoleAdmin)
}

func (s *AuthService) createUser(ctx context.Context, in RegisterInput, role string) (*models.User, error) {
	user := &models.User{
		Name:             strings.TrimSpace(in.Name),
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		ContactNumber:    strings.TrimSpace(in.ContactNumber),
		CurrentAddress:   strings.TrimSpace(in.CurrentAddress),
		PermanentAddress: strings.TrimSpace(in.PermanentAddress),
		Role:             role,
	}
	if err := validator.ValidateUser(user); err != nil {
		return nil, err
	}
	if err := validator.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	existing, err := s.store.UserByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailExists
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "password cannot be hashed", err)
	}
	user.Password = hashed

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("%s account %d created for %s", role, user.ID, user.Email)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.store.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPassword(user.Password, password) {
		return nil, errors.ErrInvalidCredentials
	}

	token, claims, err := s.tokens.GenerateToken(UserInfo{UserId: user.ID, Role: user.Role})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "token cannot be issued", err)
	}
	if user.IsTenant() {
		if user.AssignedRoom, err = s.store.RoomByTenant(ctx, user.ID); err != nil {
			return nil, err
		}
	}
	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   time.Unix(claims.ExpiresAt, 0).UTC(),
		User:        user,
	}, nil
}

// Authenticate verifies an access token and rejects revoked ones.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*types.Identity, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}
	if s.denied.IsRevoked(ctx, claims.Id) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "token has been revoked", nil)
	}
	id := claims.Identity()
	return &id, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return err
	}
	if err := s.denied.Revoke(ctx, claims.Id, claims.UserInfo.UserId, claims.TTL(time.Now())); err != nil {
		s.logger.Error("revoke token for user %d: %v", claims.UserInfo.UserId, err)
		return errors.Unavailable("token store unavailable", err)
	}
	return nil
}
