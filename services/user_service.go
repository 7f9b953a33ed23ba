package services

import (
	"context"
	"strings"

	"rentdesk/constants"
	"rentdesk/errors"
	"rentdesk/models"
	"rentdesk/repository"
	"rentdesk/services/logger"
	"rentdesk/utils"
	"rentdesk/validator"
)

// ProfileUpdate holds optional profile changes. Role and room assignment
// are not part of a profile.
type ProfileUpdate struct {
	Name             *string
	Email            *string
	ContactNumber    *string
	CurrentAddress   *string
	PermanentAddress *string
	Password         *string
}

// TenantSearchResult carries suggestions when the search found nothing.
type TenantSearchResult struct {
	Tenants     []models.User `json:"tenants"`
	Suggestions []string      `json:"suggestions,omitempty"`
}

type UserService struct {
	store  *repository.Store
	logger logger.Logger
}

func NewUserService(opts ServiceOptions) *UserService {
	opts = opts.withDefaults()
	return &UserService{
		store:  opts.Store,
		logger: opts.Logger,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.store.GetUser(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) (*models.User, error) {
	var user *models.User
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		user, err = tx.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if in.Name != nil {
			user.Name = strings.TrimSpace(*in.Name)
		}
		if in.Email != nil {
			user.Email = strings.ToLower(strings.TrimSpace(*in.Email))
		}
		if in.ContactNumber != nil {
			user.ContactNumber = strings.TrimSpace(*in.ContactNumber)
		}
		if in.CurrentAddress != nil {
			user.CurrentAddress = strings.TrimSpace(*in.CurrentAddress)
		}
		if in.PermanentAddress != nil {
			user.PermanentAddress = strings.TrimSpace(*in.PermanentAddress)
		}
		if err := validator.ValidateUser(user); err != nil {
			return err
		}
		if in.Password != nil && *in.Password != "" {
			if err := validator.ValidatePassword(*in.Password); err != nil {
				return err
			}
			hashed, err := HashPassword(*in.Password)
			if err != nil {
				return err
			}
			user.Password = hashed
		}
		return tx.SaveUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return s.store.GetUser(ctx, userID)
}

// UpdateTenant is the admin edit of a tenant's profile fields.
func (s *UserService) UpdateTenant(ctx context.Context, tenantID uint, in ProfileUpdate) (*models.User, error) {
	user, err := s.store.GetUser(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !user.IsTenant() {
		return nil, errors.ErrUserNotFound
	}
	in.Password = nil
	return s.UpdateProfile(ctx, tenantID, in)
}

// ListTenants matches search against name, email and contact number,
// ignoring case and accents, with a fuzzy fallback.
func (s *UserService) ListTenants(ctx context.Context, search string) (*TenantSearchResult, error) {
	tenants, err := s.store.ListUsersByRole(ctx, constants.RoleTenant)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(search) == "" {
		if tenants == nil {
			tenants = make([]models.User, 0)
		}
		return &TenantSearchResult{Tenants: tenants}, nil
	}

	docs := make([][]string, len(tenants))
	names := make([]string, 0, len(tenants))
	for i, t := range tenants {
		docs[i] = []string{t.Name, t.Email, t.ContactNumber}
		names = append(names, t.Name)
	}
	result := &TenantSearchResult{Tenants: make([]models.User, 0)}
	for _, i := range utils.Search(search, docs) {
		result.Tenants = append(result.Tenants, tenants[i])
	}
	if len(result.Tenants) == 0 {
		result.Suggestions = utils.Suggest(search, names, 3)
	}
	s.logger.Debug("tenant search %q matched %d of %d", search, len(result.Tenants), len(tenants))
	return result, nil
}
