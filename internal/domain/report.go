package domain

import "fmt"

// MonthlyReportRow агрегат записей и выручки за календарный месяц
// Выручка суммируется только по закрытым записям.
type MonthlyReportRow struct {
	Year         int
	Month        int
	Appointments int
	Revenue      float64
}

// YM возвращает месяц в формате "YYYY-MM"
func (r *MonthlyReportRow) YM() string {
	return fmt.Sprintf("%04d-%02d", r.Year, r.Month)
}
