package dto

type CreateRoomRequest struct {
	Building   uint     `json:"building" binding:"required"`
	RoomNumber string   `json:"roomNumber" binding:"required"`
	Floor      string   `json:"floor"`
	Rent       int64    `json:"rent" binding:"required,gt=0"`
	Deposit    int64    `json:"deposit" binding:"gte=0"`
	Furniture  []string `json:"furniture"`
}

// UpdateRoomRequest changes room fields; the building cannot change.
type UpdateRoomRequest struct {
	RoomNumber *string  `json:"roomNumber"`
	Floor      *string  `json:"floor"`
	Rent       *int64   `json:"rent" binding:"omitempty,gt=0"`
	Deposit    *int64   `json:"deposit" binding:"omitempty,gte=0"`
	Furniture  []string `json:"furniture"`
}

type AssignTenantRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	TenantID     uint   `json:"tenantId" binding:"required"`
	OccupiedFrom string `json:"occupiedFrom"`
}

type ReleaseRoomRequest struct {
	ToMaintenance bool `json:"toMaintenance"`
}

type MaintenanceRequest struct {
	Maintenance *bool `json:"maintenance" binding:"required"`
}
