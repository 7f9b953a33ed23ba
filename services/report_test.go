package services

import (
	"bytes"
	"testing"
	"time"

	"rentdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGeneratePaymentsWorkbook(t *testing.T) {
	payments := []models.Payment{
		{
			ID: 4, Month: "2024-02", RentAmount: 5000, PaidAmount: 2000, Status: "PARTIAL", PaymentMode: "UPI",
			PaymentDate: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
			Tenant:      &models.User{Name: "An", Email: "an@example.com"},
			Building:    &models.Building{Name: "B1"},
			Room:        &models.Room{RoomNumber: "101"},
		},
		{ID: 5, Month: "2024-01", RentAmount: 3000, Status: "DUE", PaymentMode: "Cash"},
	}

	data, err := GeneratePaymentsWorkbook(payments)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{paymentsSheet}, f.GetSheetList())
	rows, err := f.GetRows(paymentsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, PaymentExportHeader, rows[0])
	assert.Equal(t, []string{"4", "2024-02", "An", "an@example.com", "B1", "101", "5000", "2000", "PARTIAL", "UPI", "2024-02-03"}, rows[1])
	assert.Equal(t, "5", rows[2][0])
	assert.Equal(t, "DUE", rows[2][8])
}

func TestExportPaymentsUsesFilter(t *testing.T) {
	env := newTestEnv(t)
	b1 := env.building(t, "B1")
	r1 := env.room(t, b1.ID, "101", 5000)
	t1 := env.tenant(t, "Tenant One", "t1@example.com")
	env.assign(t, r1.ID, t1.ID)
	for _, month := range []string{"2024-01", "2024-02"} {
		_, err := env.admin.AddPayment(env.ctx, PaymentInput{TenantID: t1.ID, RoomID: r1.ID, Month: month, PaidAmount: 5000})
		require.NoError(t, err)
	}

	data, err := env.admin.ExportPayments(env.ctx, PaymentFilter{Month: "2024-02"})
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(paymentsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Tenant One", rows[1][2])
}
