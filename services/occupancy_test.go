package services

import (
	"sync"
	"testing"
	"time"

	"rentdesk/constants"
	"rentdesk/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomStartsAvailableAndDeletes(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")

	r1, err := env.admin.CreateRoom(env.ctx, RoomInput{BuildingID: b1.ID, RoomNumber: "101", Rent: 5000, Deposit: 10000, Furniture: []string{"bed", "desk"}})
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusAvailable, r1.Status)

	got, err := env.admin.GetRoom(env.ctx, r1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bed", "desk"}, []string(got.Furniture))
	assert.Equal(t, int64(10000), got.Deposit)
	require.NotNil(t, got.Building)
	assert.Equal(t, "B1", got.Building.Name)

	require.NoError(t, env.admin.DeleteRoom(env.ctx, r1.ID))
	_, err = env.admin.GetRoom(env.ctx, r1.ID)
	assert.ErrorIs(t, err, errors.ErrRoomNotFound)
}

func TestCreateRoomValidation(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")

	_, err := env.admin.CreateRoom(env.ctx, RoomInput{BuildingID: b1.ID, RoomNumber: "101", Rent: 0})
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))

	_, err = env.admin.CreateRoom(env.ctx, RoomInput{BuildingID: b1.ID, RoomNumber: "", Rent: 100})
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))

	_, err = env.admin.CreateRoom(env.ctx, RoomInput{BuildingID: b1.ID, RoomNumber: "101", Rent: 100, Deposit: -1})
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))

	_, err = env.admin.CreateRoom(env.ctx, RoomInput{BuildingID: 999, RoomNumber: "101", Rent: 100})
	assert.ErrorIs(t, err, errors.ErrBuildingNotFound)
}

func TestRoomNumberUniquePerBuilding(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	b2 := env.building(t, "B2")
	env.room(t, b1.ID, "101", 5000)

	_, err := env.admin.CreateRoom(env.ctx, RoomInput{BuildingID: b1.ID, RoomNumber: "101", Rent: 4000})
	assert.ErrorIs(t, err, errors.ErrDuplicateRoomNumber)

	_, err = env.admin.CreateRoom(env.ctx, RoomInput{BuildingID: b2.ID, RoomNumber: "101", Rent: 4000})
	assert.NoError(t, err)

	r2 := env.room(t, b1.ID, "102", 5000)
	taken := "101"
	_, err = env.admin.UpdateRoom(env.ctx, r2.ID, RoomUpdate{RoomNumber: &taken})
	assert.ErrorIs(t, err, errors.ErrDuplicateRoomNumber)
}

func TestUpdateRoomKeepsUntouchedFields(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)

	rent := int64(6500)
	floor := "1"
	updated, err := env.admin.UpdateRoom(env.ctx, r1.ID, RoomUpdate{Rent: &rent, Floor: &floor})
	require.NoError(t, err)
	assert.Equal(t, int64(6500), updated.Rent)
	assert.Equal(t, "1", updated.Floor)
	assert.Equal(t, "101", updated.RoomNumber)
	assert.Equal(t, int64(10000), updated.Deposit)

	bad := int64(0)
	_, err = env.admin.UpdateRoom(env.ctx, r1.ID, RoomUpdate{Rent: &bad})
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
}

func TestAssignTenant(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)
	r2 := env.room(t, b1.ID, "102", 5000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")
	t2 := env.tenant(t, "Tenant Two", "t2@example.com")

	room := env.assign(t, r1.ID, t1.ID)
	assert.Equal(t, constants.RoomStatusOccupied, room.Status)
	require.NotNil(t, room.TenantID)
	assert.Equal(t, t1.ID, *room.TenantID)
	require.NotNil(t, room.OccupiedFrom)
	assert.Equal(t, "2024-01-01", room.OccupiedFrom.UTC().Format(constants.DateLayout))
	require.NotNil(t, room.Tenant)
	assert.Equal(t, t1.Email, room.Tenant.Email)

	profile, err := env.svc.Users.GetProfile(env.ctx, t1.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.AssignedRoom)
	assert.Equal(t, r1.ID, profile.AssignedRoom.ID)

	_, err = env.admin.AssignTenant(env.ctx, r1.ID, t2.ID, time.Time{})
	assert.ErrorIs(t, err, errors.ErrInvalidState)

	_, err = env.admin.AssignTenant(env.ctx, r2.ID, t1.ID, time.Time{})
	assert.ErrorIs(t, err, errors.ErrAlreadyAssigned)

	r2State, err := env.admin.GetRoom(env.ctx, r2.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusAvailable, r2State.Status)
	assert.Nil(t, r2State.TenantID)
}

func TestAssignTenantRejections(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")

	admin, err := env.svc.Auth.CreateAdmin(env.ctx, RegisterInput{Name: "Admin", Email: "admin@example.com", Password: "secret123"})
	require.NoError(t, err)
	_, err = env.admin.AssignTenant(env.ctx, r1.ID, admin.ID, time.Time{})
	assert.Equal(t, errors.ErrCodeInvalidRole, errors.CodeOf(err))

	_, err = env.admin.AssignTenant(env.ctx, r1.ID, 999, time.Time{})
	assert.ErrorIs(t, err, errors.ErrUserNotFound)

	_, err = env.admin.AssignTenant(env.ctx, 999, t1.ID, time.Time{})
	assert.ErrorIs(t, err, errors.ErrRoomNotFound)

	_, err = env.admin.SetMaintenance(env.ctx, r1.ID, true)
	require.NoError(t, err)
	_, err = env.admin.AssignTenant(env.ctx, r1.ID, t1.ID, time.Time{})
	assert.ErrorIs(t, err, errors.ErrInvalidState)
}

func TestAssignTenantDefaultsOccupiedFromToToday(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")

	room, err := env.admin.AssignTenant(env.ctx, r1.ID, t1.ID, time.Time{})
	require.NoError(t, err)
	require.NotNil(t, room.OccupiedFrom)
	assert.Equal(t, time.Now().UTC().Format(constants.DateLayout), room.OccupiedFrom.UTC().Format(constants.DateLayout))
}

func TestConcurrentAssignHasSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)

	const n = 8
	tenants := make([]uint, n)
	for i := range tenants {
		tenants[i] = env.tenant(t, "Tenant", "t"+string(rune('a'+i))+"@example.com").ID
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		states    int
	)
	for _, id := range tenants {
		wg.Add(1)
		go func(tenantID uint) {
			defer wg.Done()
			_, err := env.admin.AssignTenant(env.ctx, r1.ID, tenantID, time.Time{})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.KindOf(err) == errors.KindState:
				states++
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, states)
}

func TestReleaseTenant(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")
	env.assign(t, r1.ID, t1.ID)

	err := env.admin.DeleteRoom(env.ctx, r1.ID)
	assert.ErrorIs(t, err, errors.ErrRoomOccupied)

	room, err := env.admin.ReleaseTenant(env.ctx, r1.ID, false)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusAvailable, room.Status)
	assert.Nil(t, room.TenantID)
	assert.Nil(t, room.OccupiedFrom)

	profile, err := env.svc.Users.GetProfile(env.ctx, t1.ID)
	require.NoError(t, err)
	assert.Nil(t, profile.AssignedRoom)

	_, err = env.admin.ReleaseTenant(env.ctx, r1.ID, false)
	assert.ErrorIs(t, err, errors.ErrNotOccupied)

	require.NoError(t, env.admin.DeleteRoom(env.ctx, r1.ID))
}

func TestReleaseTenantToMaintenance(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")
	env.assign(t, r1.ID, t1.ID)

	room, err := env.admin.ReleaseTenant(env.ctx, r1.ID, true)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusMaintenance, room.Status)

	// The released tenant can take another room.
	r2 := env.room(t, b1.ID, "102", 5000)
	env.assign(t, r2.ID, t1.ID)
}

func TestSetMaintenance(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")

	room, err := env.admin.SetMaintenance(env.ctx, r1.ID, true)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusMaintenance, room.Status)

	available, err := env.svc.Occupancy.ListAvailableRooms(env.ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, available)

	room, err = env.admin.SetMaintenance(env.ctx, r1.ID, false)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusAvailable, room.Status)

	env.assign(t, r1.ID, t1.ID)
	_, err = env.admin.SetMaintenance(env.ctx, r1.ID, true)
	assert.ErrorIs(t, err, errors.ErrInvalidState)
}

func TestListRoomsFilters(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	b2 := env.building(t, "B2")
	r1 := env.room(t, b1.ID, "101", 5000)
	env.room(t, b1.ID, "102", 5000)
	env.room(t, b2.ID, "201", 7000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")
	env.assign(t, r1.ID, t1.ID)

	all, err := env.admin.ListRooms(env.ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	inB1, err := env.admin.ListRooms(env.ctx, b1.ID, "")
	require.NoError(t, err)
	assert.Len(t, inB1, 2)

	occupied, err := env.admin.ListRooms(env.ctx, 0, constants.RoomStatusOccupied)
	require.NoError(t, err)
	require.Len(t, occupied, 1)
	assert.Equal(t, r1.ID, occupied[0].ID)

	available, err := env.svc.Occupancy.ListAvailableRooms(env.ctx, b1.ID)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "102", available[0].RoomNumber)

	_, err = env.admin.ListRooms(env.ctx, 0, "Vacant")
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
}

func TestDeleteBuildingWithRooms(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)

	err := env.admin.DeleteBuilding(env.ctx, b1.ID)
	assert.ErrorIs(t, err, errors.ErrBuildingHasRooms)

	require.NoError(t, env.admin.DeleteRoom(env.ctx, r1.ID))
	require.NoError(t, env.admin.DeleteBuilding(env.ctx, b1.ID))

	_, err = env.admin.GetBuilding(env.ctx, b1.ID)
	assert.ErrorIs(t, err, errors.ErrBuildingNotFound)
}
