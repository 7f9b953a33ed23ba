package services

import (
	"testing"

	"rentdesk/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingRoomStats(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	b2 := env.building(t, "B2")
	empty := env.building(t, "Empty")
	r1 := env.room(t, b1.ID, "101", 5000)
	env.room(t, b1.ID, "102", 5000)
	r3 := env.room(t, b2.ID, "201", 5000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")
	env.assign(t, r1.ID, t1.ID)
	_, err := env.admin.SetMaintenance(env.ctx, r3.ID, true)
	require.NoError(t, err)

	stats, err := env.admin.BuildingRoomStats(env.ctx)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, BuildingStats{BuildingID: b1.ID, Name: "B1", TotalRooms: 2, Available: 1, Occupied: 1}, stats[0])
	assert.Equal(t, BuildingStats{BuildingID: b2.ID, Name: "B2", TotalRooms: 1, Maintenance: 1}, stats[1])
	assert.Equal(t, BuildingStats{BuildingID: empty.ID, Name: "Empty"}, stats[2])

	for _, s := range stats {
		assert.Equal(t, s.TotalRooms, s.Available+s.Occupied+s.Maintenance)
	}
}

func TestDashboardStatsReconcile(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)
	r2 := env.room(t, b1.ID, "102", 5000)
	env.room(t, b1.ID, "103", 5000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")
	env.tenant(t, "Tenant Two", "t2@example.com")
	env.assign(t, r1.ID, t1.ID)
	_, err := env.admin.SetMaintenance(env.ctx, r2.ID, true)
	require.NoError(t, err)

	stats, err := env.admin.DashboardStats(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{
		TotalBuildings:   1,
		TotalRooms:       3,
		TotalTenants:     2,
		AvailableRooms:   1,
		OccupiedRooms:    1,
		MaintenanceRooms: 1,
	}, stats)
}

func TestTenantDashboard(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")
	tf := NewTenantFacade(env.svc, t1.ID)

	dash, err := tf.Dashboard(env.ctx)
	require.NoError(t, err)
	assert.False(t, dash.HasRoom)
	assert.Equal(t, noRoomMessage, dash.Message)
	assert.Nil(t, dash.Room)

	room, err := tf.Room(env.ctx)
	require.NoError(t, err)
	assert.Nil(t, room)

	env.assign(t, r1.ID, t1.ID)
	_, err = env.admin.AddPayment(env.ctx, PaymentInput{TenantID: t1.ID, RoomID: r1.ID, Month: "2024-01", PaidAmount: 3000})
	require.NoError(t, err)

	dash, err = tf.Dashboard(env.ctx)
	require.NoError(t, err)
	assert.True(t, dash.HasRoom)
	require.NotNil(t, dash.Room)
	assert.Equal(t, r1.ID, dash.Room.ID)
	assert.Equal(t, constants.RoomStatusOccupied, dash.Room.Status)
	require.NotNil(t, dash.PaymentSummary)
	assert.Equal(t, int64(2000), dash.PaymentSummary.DueAmount)

	payments, err := tf.Payments(env.ctx)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, t1.ID, tf.TenantID())
}

func TestTenantFacadeSeesOnlyOwnPayments(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)
	r2 := env.room(t, b1.ID, "102", 5000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")
	t2 := env.tenant(t, "Tenant Two", "t2@example.com")
	env.assign(t, r1.ID, t1.ID)
	env.assign(t, r2.ID, t2.ID)
	_, err := env.admin.AddPayment(env.ctx, PaymentInput{TenantID: t2.ID, RoomID: r2.ID, Month: "2024-01", PaidAmount: 5000})
	require.NoError(t, err)

	payments, err := NewTenantFacade(env.svc, t1.ID).Payments(env.ctx)
	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}
