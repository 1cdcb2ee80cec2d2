package commission

import (
	"context"
	"fmt"

	"backoffice/core/reconcile"
	"backoffice/feature/listing/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository loads the four reconciliation source collections.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over the given connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LoadCollections reads agencies, customers, orders, and money movements and
// maps them onto the reconciliation engine's input types.
func (r *Repository) LoadCollections(ctx context.Context) ([]reconcile.Agency, []reconcile.Customer, []reconcile.Order, []reconcile.Movement, error) {
	var agencyRows []models.Agency
	if err := r.db.WithContext(ctx).Find(&agencyRows).Error; err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load agencies: %w", err)
	}

	var customerRows []models.Customer
	if err := r.db.WithContext(ctx).Find(&customerRows).Error; err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load customers: %w", err)
	}

	var orderRows []models.Order
	if err := r.db.WithContext(ctx).Find(&orderRows).Error; err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load orders: %w", err)
	}

	var transactionRows []models.Transaction
	if err := r.db.WithContext(ctx).Find(&transactionRows).Error; err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	agencies := make([]reconcile.Agency, 0, len(agencyRows))
	for _, a := range agencyRows {
		agencies = append(agencies, reconcile.Agency{
			ID:             a.ID,
			Name:           a.Name,
			CommissionRate: a.CommissionRate,
		})
	}

	customers := make([]reconcile.Customer, 0, len(customerRows))
	for _, c := range customerRows {
		customers = append(customers, reconcile.Customer{
			ID:       c.ID,
			AgencyID: c.AgencyID,
		})
	}

	orders := make([]reconcile.Order, 0, len(orderRows))
	for _, o := range orderRows {
		orders = append(orders, reconcile.Order{
			ID:          o.ID,
			CustomerID:  o.CustomerID,
			TotalAmount: valueOr(o.TotalAmount),
		})
	}

	movements := make([]reconcile.Movement, 0, len(transactionRows))
	for _, m := range transactionRows {
		movements = append(movements, reconcile.Movement{
			ID:         m.ID,
			AgencyID:   m.AgencyID,
			AgencyRole: reconcile.AgencyRole(m.AgencyRole),
			Direction:  reconcile.MovementDirection(m.Direction),
			Amount:     valueOr(m.Amount),
		})
	}

	return agencies, customers, orders, movements, nil
}

func valueOr(d decimal.Decimal) decimal.Decimal {
	return d.Add(decimal.Zero)
}
