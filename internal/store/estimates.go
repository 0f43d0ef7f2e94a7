package store

import (
	"database/sql"
	"errors"
	"log"

	"github.com/jmoiron/sqlx"

	"vendorbook/v/domain"
)

// EstimateProductInput is one line item of an estimate. Amount is
// caller-computed and stored verbatim.
type EstimateProductInput struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Rate      float64 `json:"rate"`
	Amount    float64 `json:"amount"`
}

// EstimateInput carries an estimate together with its line items.
type EstimateInput struct {
	EstimateNo    string                 `json:"estimate_no"`
	Date          string                 `json:"date"`
	OrderNo       *string                `json:"order_no"`
	CustomerName  string                 `json:"customer_name"`
	AssignedAgent string                 `json:"assigned_agent"`
	Status        string                 `json:"status"`
	TotalAmount   float64                `json:"total_amount"`
	CreatedBy     int64                  `json:"created_by"`
	Products      []EstimateProductInput `json:"products"`
}

// GetEstimates returns all estimates, newest first, each with its line
// items. A failed line-item fetch degrades that estimate's list to empty
// rather than failing the whole read.
func (s *Store) GetEstimates() ([]domain.Estimate, error) {
	estimates := []domain.Estimate{}
	if err := s.db.Select(&estimates, `SELECT * FROM estimates ORDER BY date DESC`); err != nil {
		return nil, err
	}
	s.attachEstimateProducts(estimates)
	return estimates, nil
}

// GetEstimatesByStatus returns estimates with the given status, newest
// first, each with its line items.
func (s *Store) GetEstimatesByStatus(status string) ([]domain.Estimate, error) {
	estimates := []domain.Estimate{}
	if err := s.db.Select(&estimates, `SELECT * FROM estimates WHERE status = ? ORDER BY date DESC`, status); err != nil {
		return nil, err
	}
	s.attachEstimateProducts(estimates)
	return estimates, nil
}

// GetEstimateByID returns one estimate with its line items, or ErrNotFound.
func (s *Store) GetEstimateByID(id int64) (*domain.Estimate, error) {
	var estimate domain.Estimate
	err := s.db.Get(&estimate, `SELECT * FROM estimates WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	estimate.Products = s.estimateProducts(estimate.ID)
	return &estimate, nil
}

func (s *Store) attachEstimateProducts(estimates []domain.Estimate) {
	for i := range estimates {
		estimates[i].Products = s.estimateProducts(estimates[i].ID)
	}
}

// estimateProducts fetches the line items of an estimate joined to products
// for display fields, degrading to an empty list on failure.
func (s *Store) estimateProducts(estimateID int64) []domain.EstimateProduct {
	products := []domain.EstimateProduct{}
	err := s.db.Select(&products, `SELECT ep.id, ep.estimate_id, ep.product_id, ep.quantity, ep.rate, ep.amount,
            p.code AS product_code, p.name, p.size, p.category
        FROM estimate_products ep
        JOIN products p ON ep.product_id = p.id
        WHERE ep.estimate_id = ?`, estimateID)
	if err != nil {
		log.Printf("unable to load products for estimate %d: %v", estimateID, err)
		return []domain.EstimateProduct{}
	}
	return products
}

// AddEstimate inserts the estimate and its line items in one transaction and
// returns the stored estimate with its products attached.
func (s *Store) AddEstimate(input EstimateInput) (*domain.Estimate, error) {
	if input.CreatedBy == 0 {
		input.CreatedBy = 1
	}
	if input.Status == "" {
		input.Status = domain.EstimateStatusPending
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO estimates (estimate_no, date, order_no, customer_name, assigned_agent, status, total_amount, created_by, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))`,
		input.EstimateNo, input.Date, input.OrderNo, input.CustomerName,
		input.AssignedAgent, input.Status, input.TotalAmount, input.CreatedBy)
	if err != nil {
		return nil, err
	}
	estimateID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if err := insertEstimateProducts(tx, estimateID, input.Products); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.GetEstimateByID(estimateID)
}

// UpdateEstimate replaces the estimate's fields and its full line-item set.
// The line items are deleted and re-inserted rather than diffed; overwrite-all
// is the documented policy. Returns ErrNotFound when the id matches no row.
func (s *Store) UpdateEstimate(id int64, input EstimateInput) (*domain.Estimate, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE estimates SET estimate_no = ?, date = ?, order_no = ?, customer_name = ?,
            assigned_agent = ?, status = ?, total_amount = ?, updated_at = datetime('now')
        WHERE id = ?`,
		input.EstimateNo, input.Date, input.OrderNo, input.CustomerName,
		input.AssignedAgent, input.Status, input.TotalAmount, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	if _, err := tx.Exec(`DELETE FROM estimate_products WHERE estimate_id = ?`, id); err != nil {
		return nil, err
	}
	if err := insertEstimateProducts(tx, id, input.Products); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.GetEstimateByID(id)
}

// UpdateEstimateStatus sets only the status field. Returns ErrNotFound when
// the id matches no row. Status validation happens in the request layer.
func (s *Store) UpdateEstimateStatus(id int64, status string) error {
	res, err := s.db.Exec(`UPDATE estimates SET status = ?, updated_at = datetime('now') WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEstimate removes an estimate; its line items cascade.
func (s *Store) DeleteEstimate(id int64) (bool, error) {
	return s.Delete(TableEstimates, id)
}

func insertEstimateProducts(tx *sqlx.Tx, estimateID int64, products []EstimateProductInput) error {
	for _, p := range products {
		if _, err := tx.Exec(`INSERT INTO estimate_products (estimate_id, product_id, quantity, rate, amount)
            VALUES (?, ?, ?, ?, ?)`,
			estimateID, p.ProductID, p.Quantity, p.Rate, p.Amount); err != nil {
			return err
		}
	}
	return nil
}
