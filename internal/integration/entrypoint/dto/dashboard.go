package dto

import (
	"github.com/resolvpay/backend/internal/application/usecase/dashboard"
)

// BillSummaryResponse is the compact per-bill view used in dashboard responses.
type BillSummaryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	DueDate  string `json:"dueDate"`
	Category string `json:"category"`
	Paid     bool   `json:"paid"`
}

// GroupStatsResponse aggregates one category or frequency bucket.
type GroupStatsResponse struct {
	Count int                   `json:"count"`
	Total string                `json:"total"`
	Bills []BillSummaryResponse `json:"bills"`
}

// StatsResponse represents the dashboard statistics payload.
type StatsResponse struct {
	TotalBills    int                           `json:"totalBills"`
	ActiveBills   int                           `json:"activeBills"`
	PaidBills     int                           `json:"paidBills"`
	TotalAmount   string                        `json:"totalAmount"`
	AverageAmount string                        `json:"averageAmount"`
	DueThisMonth  string                        `json:"dueThisMonth"`
	Overdue       int                           `json:"overdue"`
	DueSoon       int                           `json:"dueSoon"`
	ByCategory    map[string]GroupStatsResponse `json:"byCategory"`
	ByFrequency   map[string]GroupStatsResponse `json:"byFrequency"`
}

// TrendPointResponse is one month of the spending trend.
type TrendPointResponse struct {
	Month string `json:"month"`
	Total string `json:"total"`
}

// TrendResponse lists the spending trend oldest month first.
type TrendResponse struct {
	Points []TrendPointResponse `json:"points"`
}

// CalendarEntryResponse is one bill due in the selected month.
type CalendarEntryResponse struct {
	Day    int                 `json:"day"`
	Bill   BillSummaryResponse `json:"bill"`
	Status string              `json:"status"`
}

// CalendarResponse lists the month's bills.
type CalendarResponse struct {
	Month   int                     `json:"month"`
	Year    int                     `json:"year"`
	Entries []CalendarEntryResponse `json:"entries"`
}

func toBillSummaryResponse(s dashboard.BillSummary) BillSummaryResponse {
	return BillSummaryResponse{
		ID:       s.ID,
		Name:     s.Name,
		Amount:   s.Amount.String(),
		DueDate:  s.DueDate.Format("2006-01-02"),
		Category: s.Category,
		Paid:     s.Paid,
	}
}

func toGroupStatsResponse(g *dashboard.GroupStats) GroupStatsResponse {
	resp := GroupStatsResponse{
		Count: g.Count,
		Total: g.Total.String(),
		Bills: make([]BillSummaryResponse, 0, len(g.Bills)),
	}
	for _, b := range g.Bills {
		resp.Bills = append(resp.Bills, toBillSummaryResponse(b))
	}
	return resp
}

// ToStatsResponse converts the stats output to its API payload.
func ToStatsResponse(output *dashboard.GetStatsOutput) StatsResponse {
	resp := StatsResponse{
		TotalBills:    output.TotalBills,
		ActiveBills:   output.ActiveBills,
		PaidBills:     output.PaidBills,
		TotalAmount:   output.TotalAmount.String(),
		AverageAmount: output.AverageAmount.String(),
		DueThisMonth:  output.DueThisMonth.String(),
		Overdue:       output.Overdue,
		DueSoon:       output.DueSoon,
		ByCategory:    make(map[string]GroupStatsResponse, len(output.ByCategory)),
		ByFrequency:   make(map[string]GroupStatsResponse, len(output.ByFrequency)),
	}
	for k, g := range output.ByCategory {
		resp.ByCategory[k] = toGroupStatsResponse(g)
	}
	for k, g := range output.ByFrequency {
		resp.ByFrequency[k] = toGroupStatsResponse(g)
	}
	return resp
}

// ToTrendResponse converts the trend output to its API payload.
func ToTrendResponse(output *dashboard.GetSpendingTrendOutput) TrendResponse {
	resp := TrendResponse{Points: make([]TrendPointResponse, 0, len(output.Points))}
	for _, p := range output.Points {
		resp.Points = append(resp.Points, TrendPointResponse{
			Month: p.Month,
			Total: p.Total.String(),
		})
	}
	return resp
}

// ToCalendarResponse converts the calendar output to its API payload.
func ToCalendarResponse(month int, year int, output *dashboard.GetCalendarDataOutput) CalendarResponse {
	resp := CalendarResponse{
		Month:   month,
		Year:    year,
		Entries: make([]CalendarEntryResponse, 0, len(output.Entries)),
	}
	for _, e := range output.Entries {
		resp.Entries = append(resp.Entries, CalendarEntryResponse{
			Day:    e.Day,
			Bill:   toBillSummaryResponse(e.Bill),
			Status: string(e.Status),
		})
	}
	return resp
}
