package services

import (
	"context"
	"io"
	"time"

	"rentdesk/models"
)

// Services wires the domain services over one store and locker.
type Services struct {
	Occupancy   *OccupancyManager
	Ledger      *PaymentLedger
	Aggregation *AggregationEngine
	Buildings   *BuildingService
	Users       *UserService
	Auth        *AuthService
	Reports     *ReportService
}

func NewServices(opts ServiceOptions, media MediaUploader, tokens *TokenIssuer, denied *TokenStore) *Services {
	opts = opts.withDefaults()
	ledger := NewPaymentLedger(opts)
	return &Services{
		Occupancy:   NewOccupancyManager(opts),
		Ledger:      ledger,
		Aggregation: NewAggregationEngine(opts, ledger),
		Buildings:   NewBuildingService(opts, media),
		Users:       NewUserService(opts),
		Auth:        NewAuthService(opts, tokens, denied),
		Reports:     NewReportService(ledger),
	}
}

// AdminFacade is the entry point for every admin command and listing.
type AdminFacade struct {
	svc *Services
}

func NewAdminFacade(svc *Services) *AdminFacade {
	return &AdminFacade{svc: svc}
}

func (f *AdminFacade) CreateBuilding(ctx context.Context, in BuildingInput) (*models.Building, error) {
	return f.svc.Buildings.CreateBuilding(ctx, in)
}

func (f *AdminFacade) UpdateBuilding(ctx context.Context, id uint, in BuildingInput) (*models.Building, error) {
	return f.svc.Buildings.UpdateBuilding(ctx, id, in)
}

func (f *AdminFacade) DeleteBuilding(ctx context.Context, id uint) error {
	return f.svc.Buildings.DeleteBuilding(ctx, id)
}

func (f *AdminFacade) GetBuilding(ctx context.Context, id uint) (*models.Building, error) {
	return f.svc.Buildings.GetBuilding(ctx, id)
}

func (f *AdminFacade) ListBuildings(ctx context.Context) ([]models.Building, error) {
	return f.svc.Buildings.ListBuildings(ctx)
}

func (f *AdminFacade) SetBuildingImage(ctx context.Context, id uint, filename string, file io.Reader) (*models.Building, error) {
	return f.svc.Buildings.SetImage(ctx, id, filename, file)
}

func (f *AdminFacade) CreateRoom(ctx context.Context, in RoomInput) (*models.Room, error) {
	return f.svc.Occupancy.CreateRoom(ctx, in)
}

func (f *AdminFacade) UpdateRoom(ctx context.Context, roomID uint, in RoomUpdate) (*models.Room, error) {
	return f.svc.Occupancy.UpdateRoom(ctx, roomID, in)
}

func (f *AdminFacade) DeleteRoom(ctx context.Context, roomID uint) error {
	return f.svc.Occupancy.DeleteRoom(ctx, roomID)
}

func (f *AdminFacade) GetRoom(ctx context.Context, roomID uint) (*models.Room, error) {
	return f.svc.Occupancy.GetRoom(ctx, roomID)
}

func (f *AdminFacade) ListRooms(ctx context.Context, buildingID uint, status string) ([]models.Room, error) {
	return f.svc.Occupancy.ListRooms(ctx, buildingID, status)
}

func (f *AdminFacade) AssignTenant(ctx context.Context, roomID, tenantID uint, occupiedFrom time.Time) (*models.Room, error) {
	return f.svc.Occupancy.AssignTenant(ctx, roomID, tenantID, occupiedFrom)
}

func (f *AdminFacade) ReleaseTenant(ctx context.Context, roomID uint, toMaintenance bool) (*models.Room, error) {
	return f.svc.Occupancy.ReleaseTenant(ctx, roomID, toMaintenance)
}

func (f *AdminFacade) SetMaintenance(ctx context.Context, roomID uint, on bool) (*models.Room, error) {
	return f.svc.Occupancy.SetMaintenance(ctx, roomID, on)
}

func (f *AdminFacade) BuildingRoomStats(ctx context.Context) ([]BuildingStats, error) {
	return f.svc.Aggregation.BuildingRoomStats(ctx)
}

func (f *AdminFacade) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	return f.svc.Aggregation.DashboardStats(ctx)
}

func (f *AdminFacade) ListTenants(ctx context.Context, search string) (*TenantSearchResult, error) {
	return f.svc.Users.ListTenants(ctx, search)
}

func (f *AdminFacade) UpdateTenant(ctx context.Context, tenantID uint, in ProfileUpdate) (*models.User, error) {
	return f.svc.Users.UpdateTenant(ctx, tenantID, in)
}

func (f *AdminFacade) AddPayment(ctx context.Context, in PaymentInput) (*models.Payment, error) {
	return f.svc.Ledger.AddPayment(ctx, in)
}

func (f *AdminFacade) UpdatePayment(ctx context.Context, paymentID uint, in PaymentUpdate) (*models.Payment, error) {
	return f.svc.Ledger.UpdatePayment(ctx, paymentID, in)
}

func (f *AdminFacade) GetPayment(ctx context.Context, paymentID uint) (*models.Payment, error) {
	return f.svc.Ledger.GetPayment(ctx, paymentID)
}

func (f *AdminFacade) ListPayments(ctx context.Context, filter PaymentFilter) ([]models.Payment, error) {
	return f.svc.Ledger.ListPayments(ctx, filter)
}

func (f *AdminFacade) ExportPayments(ctx context.Context, filter PaymentFilter) ([]byte, error) {
	return f.svc.Reports.ExportPayments(ctx, filter)
}

// TenantFacade exposes the read-only views of one tenant. The tenant id is
// fixed at construction from the authenticated identity.
type TenantFacade struct {
	tenantID uint
	svc      *Services
}

func NewTenantFacade(svc *Services, tenantID uint) *TenantFacade {
	return &TenantFacade{tenantID: tenantID, svc: svc}
}

func (f *TenantFacade) TenantID() uint {
	return f.tenantID
}

func (f *TenantFacade) Dashboard(ctx context.Context) (*TenantDashboard, error) {
	return f.svc.Aggregation.TenantDashboard(ctx, f.tenantID)
}

// Room returns nil when the tenant holds no room.
func (f *TenantFacade) Room(ctx context.Context) (*models.Room, error) {
	return f.svc.Occupancy.RoomForTenant(ctx, f.tenantID)
}

func (f *TenantFacade) Payments(ctx context.Context) ([]models.Payment, error) {
	return f.svc.Ledger.ListForTenant(ctx, f.tenantID)
}

func (f *TenantFacade) Summary(ctx context.Context) (*TenantSummary, error) {
	return f.svc.Ledger.ComputeTenantSummary(ctx, f.tenantID)
}
