package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/application/usecase/expense"
	domainerror "github.com/resolvpay/backend/internal/domain/error"
	"github.com/resolvpay/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense ledger endpoints.
type ExpenseController struct {
	addUseCase  *expense.AddExpenseUseCase
	listUseCase *expense.ListExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(addUseCase *expense.AddExpenseUseCase, listUseCase *expense.ListExpensesUseCase) *ExpenseController {
	return &ExpenseController{
		addUseCase:  addUseCase,
		listUseCase: listUseCase,
	}
}

// Add handles POST /expenses requests.
func (c *ExpenseController) Add(ctx *gin.Context) {
	var req dto.AddExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	input := expense.AddExpenseInput{
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(*output))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// handleExpenseError maps expense domain errors to API error responses.
func handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
