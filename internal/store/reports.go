package store

import "strings"

// SalesReportFilter narrows the sales report. Zero values mean no filter.
type SalesReportFilter struct {
	StartDate string
	EndDate   string
	VendorID  int64
	Status    string
}

// SalesReportRow is one day of orders with count and total.
type SalesReportRow struct {
	Date  string  `db:"date" json:"date"`
	Count int64   `db:"count" json:"count"`
	Total float64 `db:"total" json:"total"`
}

// GetSalesReport groups orders by date, optionally filtered by date range,
// vendor and status.
func (s *Store) GetSalesReport(filter SalesReportFilter) ([]SalesReportRow, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.StartDate != "" {
		clauses = append(clauses, `date(date) >= date(?)`)
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		clauses = append(clauses, `date(date) <= date(?)`)
		args = append(args, filter.EndDate)
	}
	if filter.VendorID > 0 {
		clauses = append(clauses, `vendor_id = ?`)
		args = append(args, filter.VendorID)
	}
	if filter.Status != "" {
		clauses = append(clauses, `status = ?`)
		args = append(args, filter.Status)
	}

	query := `SELECT date(date) AS date, COUNT(*) AS count, SUM(total) AS total FROM orders`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " GROUP BY date(date)"

	rows := []SalesReportRow{}
	if err := s.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
