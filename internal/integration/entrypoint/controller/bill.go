// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/usecase/bill"
	"github.com/resolvpay/backend/internal/domain/entity"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
	"github.com/resolvpay/backend/internal/integration/entrypoint/dto"
)

// BillController handles bill endpoints.
type BillController struct {
	listUseCase           *bill.ListBillsUseCase
	getUseCase            *bill.GetBillUseCase
	createUseCase         *bill.CreateBillUseCase
	updateUseCase         *bill.UpdateBillUseCase
	deleteUseCase         *bill.DeleteBillUseCase
	markPaidUseCase       *bill.MarkPaidUseCase
	markUnpaidUseCase     *bill.MarkUnpaidUseCase
	generateUseCase       *bill.GenerateRecurringUseCase
	paymentHistoryUseCase *bill.PaymentHistoryUseCase
	bulkUpdateUseCase     *bill.BulkUpdateBillsUseCase
	bulkDeleteUseCase     *bill.BulkDeleteBillsUseCase
	bulkMarkPaidUseCase   *bill.BulkMarkPaidUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(
	listUseCase *bill.ListBillsUseCase,
	getUseCase *bill.GetBillUseCase,
	createUseCase *bill.CreateBillUseCase,
	updateUseCase *bill.UpdateBillUseCase,
	deleteUseCase *bill.DeleteBillUseCase,
	markPaidUseCase *bill.MarkPaidUseCase,
	markUnpaidUseCase *bill.MarkUnpaidUseCase,
	generateUseCase *bill.GenerateRecurringUseCase,
	paymentHistoryUseCase *bill.PaymentHistoryUseCase,
	bulkUpdateUseCase *bill.BulkUpdateBillsUseCase,
	bulkDeleteUseCase *bill.BulkDeleteBillsUseCase,
	bulkMarkPaidUseCase *bill.BulkMarkPaidUseCase,
) *BillController {
	return &BillController{
		listUseCase:           listUseCase,
		getUseCase:            getUseCase,
		createUseCase:         createUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		markPaidUseCase:       markPaidUseCase,
		markUnpaidUseCase:     markUnpaidUseCase,
		generateUseCase:       generateUseCase,
		paymentHistoryUseCase: paymentHistoryUseCase,
		bulkUpdateUseCase:     bulkUpdateUseCase,
		bulkDeleteUseCase:     bulkDeleteUseCase,
		bulkMarkPaidUseCase:   bulkMarkPaidUseCase,
	}
}

// List handles GET /bills requests.
func (c *BillController) List(ctx *gin.Context) {
	input := bill.ListBillsInput{
		Search:    ctx.Query("search"),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
	}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.BillStatus(statusStr)
		input.Status = &status
	}
	if category := ctx.Query("category"); category != "" {
		input.Category = &category
	}
	if frequencyStr := ctx.Query("frequency"); frequencyStr != "" {
		frequency := entity.BillFrequency(frequencyStr)
		input.Frequency = &frequency
	}
	if autopayStr := ctx.Query("autopay"); autopayStr != "" {
		if autopay, err := strconv.ParseBool(autopayStr); err == nil {
			input.Autopay = &autopay
		}
	}
	if minStr := ctx.Query("minAmount"); minStr != "" {
		if min, err := decimal.NewFromString(minStr); err == nil {
			input.MinAmount = &min
		}
	}
	if maxStr := ctx.Query("maxAmount"); maxStr != "" {
		if max, err := decimal.NewFromString(maxStr); err == nil {
			input.MaxAmount = &max
		}
	}
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			input.EndDate = &endDate
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(output))
}

// Get handles GET /bills/:id requests.
func (c *BillController) Get(ctx *gin.Context) {
	id, ok := parseBillID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), bill.GetBillInput{BillID: id})
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Create handles POST /bills requests.
func (c *BillController) Create(ctx *gin.Context) {
	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidBillDueDate),
		})
		return
	}

	input := bill.CreateBillInput{
		Name:          req.Name,
		DueDate:       &dueDate,
		Category:      req.Category,
		Frequency:     entity.BillFrequency(req.Frequency),
		Autopay:       req.Autopay,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillResponse(output.Bill))
}

// Update handles PATCH /bills/:id requests.
func (c *BillController) Update(ctx *gin.Context) {
	id, ok := parseBillID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	updates, ok := toBillUpdates(ctx, req)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), bill.UpdateBillInput{
		BillID:  id,
		Updates: updates,
	})
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Delete handles DELETE /bills/:id requests.
func (c *BillController) Delete(ctx *gin.Context) {
	id, ok := parseBillID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), bill.DeleteBillInput{BillID: id}); err != nil {
		handleBillError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MarkPaid handles POST /bills/:id/pay requests.
func (c *BillController) MarkPaid(ctx *gin.Context) {
	id, ok := parseBillID(ctx)
	if !ok {
		return
	}

	// Body is optional; an empty one records a full payment dated now.
	var req dto.MarkPaidRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
			})
			return
		}
	}

	input := bill.MarkPaidInput{BillID: id}
	if req.AmountPaid != nil {
		amount := decimal.NewFromFloat(*req.AmountPaid)
		input.AmountPaid = &amount
	}
	if req.DatePaid != nil {
		datePaid, err := time.Parse("2006-01-02", *req.DatePaid)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidBillDueDate),
			})
			return
		}
		input.DatePaid = &datePaid
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// MarkUnpaid handles POST /bills/:id/unpay requests.
func (c *BillController) MarkUnpaid(ctx *gin.Context) {
	id, ok := parseBillID(ctx)
	if !ok {
		return
	}

	output, err := c.markUnpaidUseCase.Execute(ctx.Request.Context(), bill.MarkUnpaidInput{BillID: id})
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// GenerateRecurrences handles POST /bills/:id/recurrences requests.
func (c *BillController) GenerateRecurrences(ctx *gin.Context) {
	id, ok := parseBillID(ctx)
	if !ok {
		return
	}

	var req dto.GenerateRecurrencesRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
			})
			return
		}
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), bill.GenerateRecurringInput{
		TemplateID: id,
		Count:      req.Count,
	})
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	resp := dto.GenerateRecurrencesResponse{
		Generated: len(output.Generated),
		Bills:     make([]dto.BillResponse, 0, len(output.Generated)),
	}
	for _, b := range output.Generated {
		resp.Bills = append(resp.Bills, dto.ToBillResponse(b))
	}
	ctx.JSON(http.StatusCreated, resp)
}

// PaymentHistory handles GET /bills/:id/payment requests.
func (c *BillController) PaymentHistory(ctx *gin.Context) {
	id, ok := parseBillID(ctx)
	if !ok {
		return
	}

	output, err := c.paymentHistoryUseCase.Execute(ctx.Request.Context(), bill.PaymentHistoryInput{BillID: id})
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	resp := dto.PaymentHistoryEntryResponse{
		BillID:   output.BillID,
		BillName: output.BillName,
		Status:   output.Status,
	}
	if output.Amount != nil {
		resp.Amount = output.Amount.String()
	}
	if output.PaidOn != nil {
		date := output.PaidOn.Format("2006-01-02")
		resp.Date = &date
	}
	ctx.JSON(http.StatusOK, resp)
}

// BulkUpdate handles POST /bills/bulk-update requests.
func (c *BillController) BulkUpdate(ctx *gin.Context) {
	var req dto.BulkUpdateBillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyBillIDs),
		})
		return
	}

	updates, ok := toBillUpdates(ctx, req.Updates)
	if !ok {
		return
	}

	output, err := c.bulkUpdateUseCase.Execute(ctx.Request.Context(), bill.BulkUpdateBillsInput{
		BillIDs: req.IDs,
		Updates: updates,
	})
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BulkResultResponse{Affected: len(output.Updated)})
}

// BulkDelete handles POST /bills/bulk-delete requests.
func (c *BillController) BulkDelete(ctx *gin.Context) {
	var req dto.BulkBillIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyBillIDs),
		})
		return
	}

	output, err := c.bulkDeleteUseCase.Execute(ctx.Request.Context(), bill.BulkDeleteBillsInput{BillIDs: req.IDs})
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BulkResultResponse{Affected: output.DeletedCount})
}

// BulkMarkPaid handles POST /bills/bulk-pay requests.
func (c *BillController) BulkMarkPaid(ctx *gin.Context) {
	var req dto.BulkBillIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyBillIDs),
		})
		return
	}

	output, err := c.bulkMarkPaidUseCase.Execute(ctx.Request.Context(), bill.BulkMarkPaidInput{BillIDs: req.IDs})
	if err != nil {
		handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BulkResultResponse{Affected: len(output.Updated)})
}

// parseBillID reads the :id path parameter, answering the request itself
// on failure.
func parseBillID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID",
		})
		return 0, false
	}
	return id, true
}

// toBillUpdates converts the request whitelist to use case updates,
// answering the request itself when a date fails to parse.
func toBillUpdates(ctx *gin.Context, req dto.UpdateBillRequest) (bill.BillUpdates, bool) {
	updates := bill.BillUpdates{
		Name:          req.Name,
		Category:      req.Category,
		Autopay:       req.Autopay,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		updates.Amount = &amount
	}
	if req.AmountPaid != nil {
		amountPaid := decimal.NewFromFloat(*req.AmountPaid)
		updates.AmountPaid = &amountPaid
	}
	if req.Frequency != nil {
		frequency := entity.BillFrequency(*req.Frequency)
		updates.Frequency = &frequency
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidBillDueDate),
			})
			return bill.BillUpdates{}, false
		}
		updates.DueDate = &dueDate
	}
	if req.DatePaid != nil {
		datePaid, err := time.Parse("2006-01-02", *req.DatePaid)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidBillDueDate),
			})
			return bill.BillUpdates{}, false
		}
		updates.DatePaid = &datePaid
	}
	return updates, true
}

// handleBillError maps domain errors to API error responses.
func handleBillError(ctx *gin.Context, err error) {
	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		ctx.JSON(statusCodeForBillError(billErr.Code), dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForBillError maps bill error codes to HTTP status codes.
func statusCodeForBillError(code domainerror.BillErrorCode) int {
	switch code {
	case domainerror.ErrCodeBillNotFound,
		domainerror.ErrCodeBillIDsNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingBillFields,
		domainerror.ErrCodeInvalidBillAmount,
		domainerror.ErrCodeInvalidBillDueDate,
		domainerror.ErrCodeInvalidBillFrequency,
		domainerror.ErrCodeEmptyBillIDs,
		domainerror.ErrCodeInvalidImportPayload:
		return http.StatusBadRequest
	case domainerror.ErrCodeNotRecurringBill,
		domainerror.ErrCodeInvalidGenerateCount:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
