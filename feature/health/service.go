package health

import (
	"context"
	"errors"
	"fmt"

	"backoffice/core/database"
	"backoffice/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// requiredTables maps each table the dashboard reads to the columns its
// queries depend on. The column lists are the load-bearing subset, not the
// full schema.
var requiredTables = map[string][]string{
	"customers":     {"id", "name", "email", "agency_id", "created_at"},
	"agencies":      {"id", "name", "commission_rate", "created_at"},
	"hotels":        {"id", "name", "city", "stars"},
	"appointments":  {"id", "customer_id", "staff_id", "status", "scheduled_at"},
	"orders":        {"id", "customer_id", "status", "total_amount"},
	"staff_members": {"id", "name", "title"},
	"transactions":  {"id", "agency_id", "agency_role", "direction", "amount"},
}

// DatabaseReport summarizes the schema check.
type DatabaseReport struct {
	MissingTables  []string            `json:"missing_tables"`
	MissingColumns map[string][]string `json:"missing_columns"`
}

// OK is true when every required table and column is present.
func (r *DatabaseReport) OK() bool {
	return len(r.MissingTables) == 0 && len(r.MissingColumns) == 0
}

// Service runs the dashboard's dependency health checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new health service.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// CheckDatabase verifies that every table the dashboard reads exists and
// carries the columns its queries depend on.
func (s *Service) CheckDatabase(ctx context.Context) (*DatabaseReport, error) {
	if s.db == nil {
		return nil, errors.New("database connection is nil")
	}

	report := &DatabaseReport{MissingColumns: make(map[string][]string)}

	for table, required := range requiredTables {
		if !database.HasTable(s.db, table) {
			report.MissingTables = append(report.MissingTables, table)
			continue
		}

		columns, err := database.GetTableColumns(s.db.WithContext(ctx), table)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect table %s: %w", table, err)
		}

		present := make(map[string]bool, len(columns))
		for _, col := range columns {
			present[col.Field] = true
		}
		for _, col := range required {
			if !present[col] {
				report.MissingColumns[table] = append(report.MissingColumns[table], col)
			}
		}
	}

	return report, nil
}

// CheckStorage verifies that the export bucket exists.
func (s *Service) CheckStorage(ctx context.Context) (bool, error) {
	if s.client == nil {
		return false, errors.New("storage client is nil")
	}
	return s.client.BucketExists(ctx, s.bucket)
}

// FixStorage creates the export bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	s.logger.Info("Creating export bucket", zap.String("bucket", s.bucket))
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}
