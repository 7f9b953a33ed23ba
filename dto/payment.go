package dto

type CreatePaymentRequest struct {
	Tenant      uint   `json:"tenant" binding:"required"`
	Room        uint   `json:"room" binding:"required"`
	Month       string `json:"month" binding:"required,yearmonth"`
	PaidAmount  int64  `json:"paidAmount" binding:"gte=0"`
	PaymentMode string `json:"paymentMode" binding:"omitempty,paymentmode"`
	PaymentDate string `json:"paymentDate"`
}

type UpdatePaymentRequest struct {
	PaidAmount  *int64  `json:"paidAmount" binding:"omitempty,gte=0"`
	PaymentMode *string `json:"paymentMode" binding:"omitempty,paymentmode"`
	PaymentDate *string `json:"paymentDate"`
}

// PaymentQuery filters payment listings and exports.
type PaymentQuery struct {
	Building uint   `form:"building"`
	Tenant   uint   `form:"tenant"`
	Room     uint   `form:"room"`
	Month    string `form:"month" binding:"omitempty,yearmonth"`
	Status   string `form:"status"`
}
