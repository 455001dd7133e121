// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/resolvpay/backend/internal/application/usecase/bill"
)

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// CreateBillRequest represents the request body for bill creation.
type CreateBillRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=255"`
	Amount        *float64 `json:"amount" binding:"required"`
	DueDate       string   `json:"dueDate" binding:"required"`
	Category      string   `json:"category,omitempty"`
	Frequency     string   `json:"frequency,omitempty"`
	Autopay       bool     `json:"autopay,omitempty"`
	Notes         string   `json:"notes,omitempty" binding:"omitempty,max=1000"`
	PaymentMethod string   `json:"paymentMethod,omitempty"`
}

// UpdateBillRequest represents the request body for bill update. Only
// supplied fields are applied.
type UpdateBillRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Amount        *float64 `json:"amount,omitempty"`
	DueDate       *string  `json:"dueDate,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Frequency     *string  `json:"frequency,omitempty"`
	Autopay       *bool    `json:"autopay,omitempty"`
	Notes         *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	AmountPaid    *float64 `json:"amountPaid,omitempty"`
	DatePaid      *string  `json:"datePaid,omitempty"`
}

// MarkPaidRequest represents the optional payment details for marking a
// bill paid. An empty body records a full payment dated now.
type MarkPaidRequest struct {
	AmountPaid *float64 `json:"amountPaid,omitempty"`
	DatePaid   *string  `json:"datePaid,omitempty"`
}

// GenerateRecurrencesRequest represents the request body for generating
// recurring bill occurrences.
type GenerateRecurrencesRequest struct {
	Count int `json:"count,omitempty"`
}

// BulkBillIDsRequest represents the request body for bulk delete and
// bulk mark-paid operations.
type BulkBillIDsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// BulkUpdateBillsRequest represents the request body for bulk update.
type BulkUpdateBillsRequest struct {
	IDs     []int64           `json:"ids" binding:"required,min=1"`
	Updates UpdateBillRequest `json:"updates" binding:"required"`
}

// BillResponse represents a single bill in API responses.
type BillResponse struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Amount            string     `json:"amount"`
	DueDate           string     `json:"dueDate"`
	Category          string     `json:"category"`
	Frequency         string     `json:"frequency"`
	Autopay           bool       `json:"autopay"`
	Paid              bool       `json:"paid"`
	Notes             string     `json:"notes"`
	PaymentMethod     string     `json:"paymentMethod,omitempty"`
	AmountPaid        *string    `json:"amountPaid,omitempty"`
	DatePaid          *string    `json:"datePaid,omitempty"`
	RecurringParentID *int64     `json:"recurringParentId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	Status            string     `json:"status"`
	DaysUntilDue      int        `json:"daysUntilDue"`
}

// BillListResponse represents the response for bill listing.
type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
	Total int            `json:"total"`
}

// BulkResultResponse reports how many bills a bulk operation affected.
type BulkResultResponse struct {
	Affected int `json:"affected"`
}

// GenerateRecurrencesResponse represents the generated occurrences.
type GenerateRecurrencesResponse struct {
	Generated int            `json:"generated"`
	Bills     []BillResponse `json:"bills"`
}

// PaymentHistoryEntryResponse represents one entry in a bill's payment history.
type PaymentHistoryEntryResponse struct {
	BillID   int64   `json:"billId"`
	BillName string  `json:"billName"`
	Amount   string  `json:"amount"`
	Date     *string `json:"date,omitempty"`
	Status   string  `json:"status"`
}

// ToBillResponse converts a use case bill output to a BillResponse DTO.
func ToBillResponse(o *bill.BillOutput) BillResponse {
	resp := BillResponse{
		ID:                o.ID,
		Name:              o.Name,
		Amount:            o.Amount.String(),
		DueDate:           o.DueDate.Format("2006-01-02"),
		Category:          o.Category,
		Frequency:         string(o.Frequency),
		Autopay:           o.Autopay,
		Paid:              o.Paid,
		Notes:             o.Notes,
		PaymentMethod:     o.PaymentMethod,
		RecurringParentID: o.RecurringParentID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Status:            string(o.Status),
		DaysUntilDue:      o.DaysUntilDue,
	}
	if o.AmountPaid != nil {
		s := o.AmountPaid.String()
		resp.AmountPaid = &s
	}
	if o.DatePaid != nil {
		s := o.DatePaid.Format("2006-01-02")
		resp.DatePaid = &s
	}
	return resp
}

// ToBillListResponse converts a bill list output to a BillListResponse DTO.
func ToBillListResponse(output *bill.ListBillsOutput) BillListResponse {
	resp := BillListResponse{
		Bills: make([]BillResponse, 0, len(output.Bills)),
		Total: output.Total,
	}
	for _, b := range output.Bills {
		resp.Bills = append(resp.Bills, ToBillResponse(b))
	}
	return resp
}
