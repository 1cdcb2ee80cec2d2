package listing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"backoffice/core/record"
	"backoffice/feature/listing/models"

	"gorm.io/gorm"
)

// ErrUnknownEntity is returned for entity names without a list page.
var ErrUnknownEntity = errors.New("unknown entity")

// entitySpec describes one list page: its column order (also the CSV export
// order and the default search fields) and how to load its rows.
type entitySpec struct {
	columns []string
	load    func(ctx context.Context, db *gorm.DB) ([]record.Record, error)
}

// entities is the registry of listable record types.
var entities = map[string]entitySpec{
	"customers": {
		columns: []string{"id", "name", "email", "phone", "agency_id", "created_at"},
		load: func(ctx context.Context, db *gorm.DB) ([]record.Record, error) {
			var rows []models.Customer
			if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([]record.Record, 0, len(rows))
			for _, r := range rows {
				out = append(out, record.Record{
					"id": r.ID, "name": r.Name, "email": r.Email, "phone": r.Phone,
					"agency_id": nullableID(r.AgencyID), "created_at": r.CreatedAt,
				})
			}
			return out, nil
		},
	},
	"agencies": {
		columns: []string{"id", "name", "city", "commission_rate", "created_at"},
		load: func(ctx context.Context, db *gorm.DB) ([]record.Record, error) {
			var rows []models.Agency
			if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([]record.Record, 0, len(rows))
			for _, r := range rows {
				var rate any
				if r.CommissionRate != nil {
					rate = r.CommissionRate.String()
				}
				out = append(out, record.Record{
					"id": r.ID, "name": r.Name, "city": r.City,
					"commission_rate": rate, "created_at": r.CreatedAt,
				})
			}
			return out, nil
		},
	},
	"hotels": {
		columns: []string{"id", "name", "city", "stars", "created_at"},
		load: func(ctx context.Context, db *gorm.DB) ([]record.Record, error) {
			var rows []models.Hotel
			if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([]record.Record, 0, len(rows))
			for _, r := range rows {
				out = append(out, record.Record{
					"id": r.ID, "name": r.Name, "city": r.City,
					"stars": r.Stars, "created_at": r.CreatedAt,
				})
			}
			return out, nil
		},
	},
	"appointments": {
		columns: []string{"id", "customer_id", "staff_id", "subject", "status", "scheduled_at"},
		load: func(ctx context.Context, db *gorm.DB) ([]record.Record, error) {
			var rows []models.Appointment
			if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([]record.Record, 0, len(rows))
			for _, r := range rows {
				out = append(out, record.Record{
					"id": r.ID, "customer_id": r.CustomerID, "staff_id": r.StaffID,
					"subject": r.Subject, "status": r.Status, "scheduled_at": r.ScheduledAt,
				})
			}
			return out, nil
		},
	},
	"orders": {
		columns: []string{"id", "customer_id", "status", "total_amount", "created_at"},
		load: func(ctx context.Context, db *gorm.DB) ([]record.Record, error) {
			var rows []models.Order
			if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([]record.Record, 0, len(rows))
			for _, r := range rows {
				out = append(out, record.Record{
					"id": r.ID, "customer_id": r.CustomerID, "status": r.Status,
					"total_amount": r.TotalAmount.String(), "created_at": r.CreatedAt,
				})
			}
			return out, nil
		},
	},
	"staff": {
		columns: []string{"id", "name", "title", "hired_at"},
		load: func(ctx context.Context, db *gorm.DB) ([]record.Record, error) {
			var rows []models.StaffMember
			if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([]record.Record, 0, len(rows))
			for _, r := range rows {
				out = append(out, record.Record{
					"id": r.ID, "name": r.Name, "title": r.Title, "hired_at": r.HiredAt,
				})
			}
			return out, nil
		},
	},
	"transactions": {
		columns: []string{"id", "agency_id", "agency_role", "direction", "amount", "note", "created_at"},
		load: func(ctx context.Context, db *gorm.DB) ([]record.Record, error) {
			var rows []models.Transaction
			if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([]record.Record, 0, len(rows))
			for _, r := range rows {
				out = append(out, record.Record{
					"id": r.ID, "agency_id": nullableID(r.AgencyID),
					"agency_role": r.AgencyRole, "direction": r.Direction,
					"amount": r.Amount.String(), "note": r.Note, "created_at": r.CreatedAt,
				})
			}
			return out, nil
		},
	},
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

// Repository loads list-page collections from the database and flattens the
// rows into the loosely typed records the view engine consumes.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over the given connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Entities returns the listable entity names, sorted.
func (r *Repository) Entities() []string {
	names := make([]string, 0, len(entities))
	for name := range entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Columns returns the display/export column order for an entity.
func (r *Repository) Columns(entity string) ([]string, error) {
	spec, ok := entities[entity]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEntity, entity)
	}
	return spec.columns, nil
}

// List loads the full collection for an entity.
func (r *Repository) List(ctx context.Context, entity string) ([]record.Record, error) {
	spec, ok := entities[entity]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEntity, entity)
	}
	return spec.load(ctx, r.db)
}
