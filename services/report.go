package services

import (
	"bytes"
	"context"
	"fmt"

	"rentdesk/constants"
	"rentdesk/models"

	"github.com/xuri/excelize/v2"
)

const paymentsSheet = "Payments"

// PaymentExportHeader is the header row of the payments workbook.
var PaymentExportHeader = []string{
	"Payment ID",
	"Month",
	"Tenant",
	"Tenant Email",
	"Building",
	"Room",
	"Rent Amount",
	"Paid Amount",
	"Status",
	"Payment Mode",
	"Payment Date",
}

// ReportService renders ledger listings as spreadsheets.
type ReportService struct {
	ledger *PaymentLedger
}

func NewReportService(ledger *PaymentLedger) *ReportService {
	return &ReportService{ledger: ledger}
}

// ExportPayments writes the filtered payments to an xlsx workbook.
func (r *ReportService) ExportPayments(ctx context.Context, f PaymentFilter) ([]byte, error) {
	payments, err := r.ledger.ListPayments(ctx, f)
	if err != nil {
		return nil, err
	}
	return GeneratePaymentsWorkbook(payments)
}

func GeneratePaymentsWorkbook(payments []models.Payment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), paymentsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range PaymentExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(paymentsSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(paymentsSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, p := range payments {
		row := []interface{}{
			p.ID,
			p.Month,
			"",
			"",
			"",
			"",
			p.RentAmount,
			p.PaidAmount,
			p.Status,
			p.PaymentMode,
			p.PaymentDate.Format(constants.DateLayout),
		}
		if p.Tenant != nil {
			row[2], row[3] = p.Tenant.Name, p.Tenant.Email
		}
		if p.Building != nil {
			row[4] = p.Building.Name
		}
		if p.Room != nil {
			row[5] = p.Room.RoomNumber
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(paymentsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	widths := []float64{12, 10, 24, 28, 24, 10, 14, 14, 10, 16, 14}
	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(paymentsSheet, name, name, w); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
