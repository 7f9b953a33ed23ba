package validator

import (
	"rentdesk/constants"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

// RegisterBindings adds the yearmonth and paymentmode tags to gin's validator.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("yearmonth", func(fl playground.FieldLevel) bool {
		return IsYearMonth(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("paymentmode", func(fl playground.FieldLevel) bool {
		mode := fl.Field().String()
		return mode == "" || constants.IsPaymentMode(mode)
	})
}
