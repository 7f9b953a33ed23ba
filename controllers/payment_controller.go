package controllers

import (
	"fmt"
	"net/http"
	"time"

	"rentdesk/dto"
	"rentdesk/errors"
	"rentdesk/response"
	"rentdesk/services"
	"rentdesk/validator"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PaymentController struct {
	admin *services.AdminFacade
}

func NewPaymentController(admin *services.AdminFacade) *PaymentController {
	return &PaymentController{admin: admin}
}

// CreatePayment godoc
// @Summary  Record a payment for a billing month
// @Tags     payments
// @Security BearerAuth
// @Param    body body dto.CreatePaymentRequest true "Payment"
// @Success  201 {object} response.Response{data=models.Payment}
// @Failure  409 {object} response.Response "DUPLICATE_BILLING_PERIOD"
// @Failure  422 {object} response.Response "NOT_ASSIGNED"
// @Router   /payments [post]
func (p *PaymentController) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := validator.ParseDate("paymentDate", req.PaymentDate)
	if err != nil {
		c.Error(err)
		return
	}
	payment, err := p.admin.AddPayment(c.Request.Context(), services.PaymentInput{
		TenantID:   req.Tenant,
		RoomID:     req.Room,
		Month:      req.Month,
		PaidAmount: req.PaidAmount,
		Mode:       req.PaymentMode,
		Date:       date,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, payment)
}

// UpdatePayment godoc
// @Summary  Amend the amount, mode or date of a payment
// @Tags     payments
// @Security BearerAuth
// @Param    body body dto.UpdatePaymentRequest true "Changes"
// @Success  200 {object} response.Response{data=models.Payment}
// @Failure  404 {object} response.Response
// @Router   /payments/{id} [put]
func (p *PaymentController) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	update := services.PaymentUpdate{PaidAmount: req.PaidAmount, Mode: req.PaymentMode}
	if req.PaymentDate != nil {
		date, err := validator.ParseDate("paymentDate", *req.PaymentDate)
		if err != nil {
			c.Error(err)
			return
		}
		update.Date = &date
	}
	payment, err := p.admin.UpdatePayment(c.Request.Context(), id, update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, payment)
}

func (p *PaymentController) GetPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	payment, err := p.admin.GetPayment(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, payment)
}

// ListPayments godoc
// @Summary  List payments with tenant, building and room details
// @Tags     payments
// @Security BearerAuth
// @Param    building query int    false "Building id"
// @Param    tenant   query int    false "Tenant id"
// @Param    month    query string false "YYYY-MM"
// @Param    status   query string false "DUE, PARTIAL or PAID"
// @Success  200 {object} response.Response{data=[]models.Payment}
// @Router   /payments [get]
func (p *PaymentController) ListPayments(c *gin.Context) {
	filter, ok := paymentFilter(c)
	if !ok {
		return
	}
	payments, err := p.admin.ListPayments(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithTotal(c, payments, len(payments))
}

// ExportPayments streams the filtered payments as an xlsx workbook.
func (p *PaymentController) ExportPayments(c *gin.Context) {
	filter, ok := paymentFilter(c)
	if !ok {
		return
	}
	data, err := p.admin.ExportPayments(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	filename := fmt.Sprintf("payments-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func paymentFilter(c *gin.Context) (services.PaymentFilter, bool) {
	var q dto.PaymentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil))
		return services.PaymentFilter{}, false
	}
	return services.PaymentFilter{
		BuildingID: q.Building,
		TenantID:   q.Tenant,
		RoomID:     q.Room,
		Month:      q.Month,
		Status:     q.Status,
	}, true
}
