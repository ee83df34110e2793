package monthly_report

import (
	"github.com/velumi/NailStudio-Backend/internal/domain"
	reportsService "github.com/velumi/NailStudio-Backend/internal/service/reports"
)

// MonthRow строка отчёта за один месяц
type MonthRow struct {
	Month        string  `json:"month"` // "2026-08"
	Appointments int     `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}

// MonthlyReportResponse HTTP response model
type MonthlyReportResponse struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Months []*MonthRow `json:"months"`
}

// FromServiceResult конвертирует результат сервиса в HTTP response
func FromServiceResult(result *reportsService.MonthlyResult) *MonthlyReportResponse {
	months := make([]*MonthRow, 0, len(result.Months))
	for _, row := range result.Months {
		months = append(months, &MonthRow{
			Month:        row.YM(),
			Appointments: row.Appointments,
			Revenue:      row.Revenue,
		})
	}
	return &MonthlyReportResponse{
		From:   result.From.Format(domain.DateFormat),
		To:     result.To.Format(domain.DateFormat),
		Months: months,
	}
}
