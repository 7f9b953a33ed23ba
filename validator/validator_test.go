package validator

import (
	"testing"
	"time"

	"rentdesk/constants"
	"rentdesk/errors"
	"rentdesk/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUser(t *testing.T) {
	ok := &models.User{Name: "An", Email: "an@example.com", Role: constants.RoleTenant}
	assert.NoError(t, ValidateUser(ok))

	assert.Equal(t, errors.ErrCodeRequiredField, errors.CodeOf(ValidateUser(&models.User{Email: "an@example.com", Role: constants.RoleTenant})))
	assert.Equal(t, errors.ErrCodeInvalidEmail, errors.CodeOf(ValidateUser(&models.User{Name: "An", Email: "an@", Role: constants.RoleTenant})))
	assert.Equal(t, errors.ErrCodeInvalidPhone, errors.CodeOf(ValidateUser(&models.User{Name: "An", Email: "an@example.com", ContactNumber: "12ab", Role: constants.RoleTenant})))
	assert.Equal(t, errors.ErrCodeInvalidRole, errors.CodeOf(ValidateUser(&models.User{Name: "An", Email: "an@example.com", Role: "Owner"})))
}

func TestValidateRoom(t *testing.T) {
	assert.NoError(t, ValidateRoom(&models.Room{RoomNumber: "101", Rent: 1}))
	assert.Error(t, ValidateRoom(&models.Room{RoomNumber: " ", Rent: 1}))
	assert.Error(t, ValidateRoom(&models.Room{RoomNumber: "101", Rent: 0}))
	assert.Error(t, ValidateRoom(&models.Room{RoomNumber: "101", Rent: 1, Deposit: -5}))
}

func TestMonthAndMode(t *testing.T) {
	for _, m := range []string{"2024-01", "1999-12"} {
		assert.True(t, IsYearMonth(m), m)
	}
	for _, m := range []string{"2024-1", "2024-00", "2024-13", "24-01", "2024/01", ""} {
		assert.False(t, IsYearMonth(m), m)
	}
	assert.Error(t, ValidateMonth("2024-13"))

	assert.NoError(t, ValidatePaymentMode(constants.PaymentModeBankTransfer))
	assert.Error(t, ValidatePaymentMode("Cheque"))
	assert.Error(t, ValidateAmount(-1))
	assert.NoError(t, ValidateAmount(0))
	assert.Error(t, ValidatePassword("12345"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("occupiedFrom", "")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = ParseDate("occupiedFrom", "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("paymentDate", "2024-01-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseDate("paymentDate", "15/01/2024")
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
}

type bindingProbe struct {
	Month string `binding:"required,yearmonth"`
	Mode  string `binding:"paymentmode"`
}

func TestRegisterBindings(t *testing.T) {
	require.NoError(t, RegisterBindings())

	assert.NoError(t, binding.Validator.ValidateStruct(&bindingProbe{Month: "2024-02"}))
	assert.NoError(t, binding.Validator.ValidateStruct(&bindingProbe{Month: "2024-02", Mode: constants.PaymentModeUPI}))
	assert.Error(t, binding.Validator.ValidateStruct(&bindingProbe{Month: "2024-2"}))
	assert.Error(t, binding.Validator.ValidateStruct(&bindingProbe{Month: "2024-02", Mode: "Card"}))
}
