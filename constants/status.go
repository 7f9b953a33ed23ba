package constants

// User roles
const (
	RoleAdmin  = "Admin"
	RoleTenant = "Tenant"
)

// Room status
const (
	RoomStatusAvailable   = "Available"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

// Payment status
const (
	PaymentStatusDue     = "DUE"
	PaymentStatusPartial = "PARTIAL"
	PaymentStatusPaid    = "PAID"
)

// Payment modes
const (
	PaymentModeCash         = "Cash"
	PaymentModeUPI          = "UPI"
	PaymentModeBankTransfer = "Bank Transfer"
)

// BillingMonthLayout is the time layout of Payment.Month.
const BillingMonthLayout = "2006-01"

// DateLayout is the layout accepted for occupiedFrom and paymentDate.
const DateLayout = "2006-01-02"

var RoomStatuses = []string{RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance}

func IsRoomStatus(status string) bool {
	for _, s := range RoomStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var PaymentStatuses = []string{PaymentStatusDue, PaymentStatusPartial, PaymentStatusPaid}

func IsPaymentStatus(status string) bool {
	for _, s := range PaymentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var PaymentModes = []string{PaymentModeCash, PaymentModeUPI, PaymentModeBankTransfer}

func IsPaymentMode(mode string) bool {
	for _, m := range PaymentModes {
		if m == mode {
			return true
		}
	}
	return false
}
