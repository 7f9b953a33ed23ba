package validator

import (
	"regexp"
	"strings"
	"time"

	"rentdesk/constants"
	"rentdesk/errors"
	"rentdesk/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	monthRegex = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)
)

// ValidateUser checks the registration and profile fields of a user.
func ValidateUser(user *models.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name is required", nil)
	}
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}
	if err := ValidateEmail(user.Email); err != nil {
		return err
	}
	if user.ContactNumber != "" {
		if err := ValidatePhone(user.ContactNumber); err != nil {
			return err
		}
	}
	if user.Role != constants.RoleAdmin && user.Role != constants.RoleTenant {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "role must be Admin or Tenant", nil)
	}
	return nil
}

// ValidateBuilding checks the required building fields.
func ValidateBuilding(b *models.Building) error {
	if strings.TrimSpace(b.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "building name is required", nil)
	}
	if strings.TrimSpace(b.Address) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "building address is required", nil)
	}
	if b.ContactEmail != "" {
		if err := ValidateEmail(b.ContactEmail); err != nil {
			return err
		}
	}
	if b.ContactNumber != "" {
		if err := ValidatePhone(b.ContactNumber); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRoom checks room number, rent and deposit.
func ValidateRoom(r *models.Room) error {
	if strings.TrimSpace(r.RoomNumber) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room number is required", nil)
	}
	if r.Rent <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "rent must be greater than zero", nil)
	}
	if r.Deposit < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "deposit must not be negative", nil)
	}
	return nil
}

// ValidateAmount rejects negative amounts.
func ValidateAmount(amount int64) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "amount must not be negative", nil)
	}
	return nil
}

// ValidateMonth checks the YYYY-MM billing month format.
func ValidateMonth(month string) error {
	if !IsYearMonth(month) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "month must be in YYYY-MM format", nil)
	}
	return nil
}

func ValidatePaymentMode(mode string) error {
	if !constants.IsPaymentMode(mode) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "payment mode must be one of Cash, UPI, Bank Transfer", nil)
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email", nil)
	}
	return nil
}

func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "invalid contact number", nil)
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "password must be at least 6 characters", nil)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD or RFC 3339 date; an empty string yields the
// zero time.
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
	}
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, field+" must be in YYYY-MM-DD format", err)
	}
	return t, nil
}

func IsYearMonth(s string) bool {
	if !monthRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(constants.BillingMonthLayout, s)
	return err == nil
}
