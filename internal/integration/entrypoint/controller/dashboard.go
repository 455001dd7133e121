package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/resolvpay/backend/internal/application/adapter"
	"github.com/resolvpay/backend/internal/application/usecase/dashboard"
	"github.com/resolvpay/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	statsUseCase    *dashboard.GetStatsUseCase
	trendUseCase    *dashboard.GetSpendingTrendUseCase
	calendarUseCase *dashboard.GetCalendarDataUseCase
	clock           adapter.Clock
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	statsUseCase *dashboard.GetStatsUseCase,
	trendUseCase *dashboard.GetSpendingTrendUseCase,
	calendarUseCase *dashboard.GetCalendarDataUseCase,
	clock adapter.Clock,
) *DashboardController {
	return &DashboardController{
		statsUseCase:    statsUseCase,
		trendUseCase:    trendUseCase,
		calendarUseCase: calendarUseCase,
		clock:           clock,
	}
}

// Stats handles GET /dashboard/stats requests.
func (c *DashboardController) Stats(ctx *gin.Context) {
	output, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute statistics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsResponse(output))
}

// Trend handles GET /dashboard/trend requests.
func (c *DashboardController) Trend(ctx *gin.Context) {
	input := dashboard.GetSpendingTrendInput{}
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		if months, err := strconv.Atoi(monthsStr); err == nil && months > 0 {
			input.Months = months
		}
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute spending trend",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendResponse(output))
}

// Calendar handles GET /dashboard/calendar requests. Month and year
// default to the current ones.
func (c *DashboardController) Calendar(ctx *gin.Context) {
	now := c.clock.Now()
	month := int(now.Month())
	year := now.Year()

	if monthStr := ctx.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Month must be between 1 and 12",
			})
			return
		}
		month = parsed
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
			})
			return
		}
		year = parsed
	}

	output, err := c.calendarUseCase.Execute(ctx.Request.Context(), dashboard.GetCalendarDataInput{
		Month: time.Month(month),
		Year:  year,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to collect calendar data",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(month, year, output))
}
