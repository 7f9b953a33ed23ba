package services

import (
	"context"

	"rentdesk/constants"
	"rentdesk/models"
	"rentdesk/repository"
	"rentdesk/services/logger"
)

const noRoomMessage = "No room is assigned to you yet. Please contact the administrator."

type BuildingStats struct {
	BuildingID  uint   `json:"buildingId"`
	Name        string `json:"name"`
	TotalRooms  int64  `json:"totalRooms"`
	Available   int64  `json:"available"`
	Occupied    int64  `json:"occupied"`
	Maintenance int64  `json:"maintenance"`
}

type DashboardStats struct {
	TotalBuildings   int64 `json:"totalBuildings"`
	TotalRooms       int64 `json:"totalRooms"`
	TotalTenants     int64 `json:"totalTenants"`
	AvailableRooms   int64 `json:"availableRooms"`
	OccupiedRooms    int64 `json:"occupiedRooms"`
	MaintenanceRooms int64 `json:"maintenanceRooms"`
}

type TenantDashboard struct {
	HasRoom        bool           `json:"hasRoom"`
	Message        string         `json:"message,omitempty"`
	Room           *models.Room   `json:"room,omitempty"`
	PaymentSummary *TenantSummary `json:"paymentSummary,omitempty"`
}

// AggregationEngine computes read-only rollups. Nothing is cached.
type AggregationEngine struct {
	store  *repository.Store
	ledger *PaymentLedger
	logger logger.Logger
}

func NewAggregationEngine(opts ServiceOptions, ledger *PaymentLedger) *AggregationEngine {
	opts = opts.withDefaults()
	return &AggregationEngine{
		store:  opts.Store,
		ledger: ledger,
		logger: opts.Logger,
	}
}

// BuildingRoomStats returns one entry per building, including buildings
// without rooms, ordered by building id.
func (a *AggregationEngine) BuildingRoomStats(ctx context.Context) ([]BuildingStats, error) {
	buildings, err := a.store.ListBuildings(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := a.store.CountRoomsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]BuildingStats, len(buildings))
	index := make(map[uint]*BuildingStats, len(buildings))
	for i, b := range buildings {
		stats[i] = BuildingStats{BuildingID: b.ID, Name: b.Name}
		index[b.ID] = &stats[i]
	}
	for _, c := range counts {
		s, ok := index[c.BuildingID]
		if !ok {
			continue
		}
		addStatusCount(&s.Available, &s.Occupied, &s.Maintenance, c)
		s.TotalRooms += c.Count
	}
	return stats, nil
}

func (a *AggregationEngine) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error
	if stats.TotalBuildings, err = a.store.CountBuildings(ctx); err != nil {
		return nil, err
	}
	if stats.TotalTenants, err = a.store.CountUsersByRole(ctx, constants.RoleTenant); err != nil {
		return nil, err
	}
	counts, err := a.store.CountRoomsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		addStatusCount(&stats.AvailableRooms, &stats.OccupiedRooms, &stats.MaintenanceRooms, c)
		stats.TotalRooms += c.Count
	}
	return stats, nil
}

// TenantDashboard reports the tenant's room and payment summary, or a
// message when no room is assigned.
func (a *AggregationEngine) TenantDashboard(ctx context.Context, tenantID uint) (*TenantDashboard, error) {
	room, err := a.store.RoomByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return &TenantDashboard{HasRoom: false, Message: noRoomMessage}, nil
	}
	summary, err := a.ledger.ComputeTenantSummary(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return &TenantDashboard{HasRoom: true, Room: room, PaymentSummary: summary}, nil
}

func addStatusCount(available, occupied, maintenance *int64, c repository.RoomStatusCount) {
	switch c.Status {
	case constants.RoomStatusAvailable:
		*available += c.Count
	case constants.RoomStatusOccupied:
		*occupied += c.Count
	case constants.RoomStatusMaintenance:
		*maintenance += c.Count
	}
}
