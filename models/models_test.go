package models

import (
	"testing"
	"time"

	"rentdesk/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomDeriveStatus(t *testing.T) {
	tenant := uint(3)
	now := time.Now()

	assert.Equal(t, constants.RoomStatusAvailable, (&Room{}).DeriveStatus())
	assert.Equal(t, constants.RoomStatusMaintenance, (&Room{Maintenance: true}).DeriveStatus())
	assert.Equal(t, constants.RoomStatusOccupied, (&Room{TenantID: &tenant, OccupiedFrom: &now}).DeriveStatus())
}

func TestRoomBeforeSaveOverwritesStatus(t *testing.T) {
	r := &Room{Status: constants.RoomStatusOccupied}
	require.NoError(t, r.BeforeSave(nil))
	assert.Equal(t, constants.RoomStatusAvailable, r.Status)
}

func TestRoomCheckOccupancy(t *testing.T) {
	tenant := uint(3)
	now := time.Now()

	assert.Error(t, (&Room{TenantID: &tenant}).CheckOccupancy())
	assert.Error(t, (&Room{OccupiedFrom: &now}).CheckOccupancy())
	assert.Error(t, (&Room{TenantID: &tenant, OccupiedFrom: &now, Maintenance: true}).CheckOccupancy())
	assert.NoError(t, (&Room{TenantID: &tenant, OccupiedFrom: &now}).CheckOccupancy())
	assert.Error(t, (&Room{TenantID: &tenant}).BeforeSave(nil))
}

func TestDerivePaymentStatus(t *testing.T) {
	cases := []struct {
		paid, rent int64
		want       string
	}{
		{0, 5000, constants.PaymentStatusDue},
		{1, 5000, constants.PaymentStatusPartial},
		{4999, 5000, constants.PaymentStatusPartial},
		{5000, 5000, constants.PaymentStatusPaid},
		{6000, 5000, constants.PaymentStatusPaid},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DerivePaymentStatus(tc.paid, tc.rent), "paid=%d rent=%d", tc.paid, tc.rent)
	}

	p := &Payment{RentAmount: 5000, PaidAmount: 2000, Status: constants.PaymentStatusPaid}
	require.NoError(t, p.BeforeSave(nil))
	assert.Equal(t, constants.PaymentStatusPartial, p.Status)
}

func TestFurnitureValueAndScan(t *testing.T) {
	v, err := Furniture(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	v, err = Furniture{"bed", "air conditioner"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"bed","air conditioner"}`, v)

	var f Furniture
	require.NoError(t, f.Scan(`{"bed","air conditioner"}`))
	assert.Equal(t, Furniture{"bed", "air conditioner"}, f)

	require.NoError(t, f.Scan([]byte("{}")))
	assert.Empty(t, f)
}
