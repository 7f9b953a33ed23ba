package types

import "rentdesk/constants"

// Identity is the verified caller attached to a request by the auth
// middleware.
type Identity struct {
	UserID  uint   `json:"userId"`
	Role    string `json:"role"`
	TokenID string `json:"-"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == constants.RoleAdmin
}

func (i Identity) IsTenant() bool {
	return i.Role == constants.RoleTenant
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	ContactNumber    string `json:"contactNumber"`
	CurrentAddress   string `json:"currentAddress"`
	PermanentAddress string `json:"permanentAddress"`
	Role             string `json:"role"`
}
