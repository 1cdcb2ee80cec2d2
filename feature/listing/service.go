package listing

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"backoffice/core/record"
	"backoffice/core/storage"
	"backoffice/core/tableview"
	"backoffice/core/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// View is the derived state of one list page: the filtered-and-sorted
// records plus the selection that produced them.
type View struct {
	Entity  string          `json:"entity"`
	Term    string          `json:"term"`
	Sort    tableview.Sort  `json:"sort"`
	Count   int             `json:"count"`
	Records []record.Record `json:"records"`
}

// ExportResult describes a stored CSV export.
type ExportResult struct {
	Object string `json:"object"`
	Rows   int    `json:"rows"`
}

// ExportInfo describes one object in the export archive.
type ExportInfo struct {
	Object   string    `json:"object"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// ErrBadExportObject is returned when an export object name does not belong
// to the requested entity's prefix.
var ErrBadExportObject = errors.New("export object outside entity prefix")

// Service derives list-page views and CSV exports.
type Service struct {
	repo   *Repository
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new listing service.
func NewService(repo *Repository, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Entities returns the listable entity names.
func (s *Service) Entities() []string {
	return s.repo.Entities()
}

// List loads the entity's collection and derives the requested view.
func (s *Service) List(ctx context.Context, entity, term, sortKey string, dir tableview.Direction) (*View, error) {
	records, err := s.repo.List(ctx, entity)
	if err != nil {
		return nil, err
	}

	engine := tableview.New(records)
	engine.SetSearch(term)
	if sortKey != "" {
		engine.SetSort(sortKey, dir)
	}

	view := engine.View()
	return &View{
		Entity:  entity,
		Term:    engine.Search(),
		Sort:    engine.Sort(),
		Count:   len(view),
		Records: view,
	}, nil
}

// Export derives the requested view, renders it to CSV in the entity's
// column order, and stores it in the export bucket. Returns the object name.
func (s *Service) Export(ctx context.Context, entity, term, sortKey string, dir tableview.Direction) (*ExportResult, error) {
	view, err := s.List(ctx, entity, term, sortKey, dir)
	if err != nil {
		return nil, err
	}

	columns, err := s.repo.Columns(entity)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	row := make([]string, len(columns))
	for _, r := range view.Records {
		for i, col := range columns {
			row[i] = cellText(r[col])
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	object := fmt.Sprintf("%s/%s-%s.csv", entity, entity, time.Now().UTC().Format("20060102-150405"))
	_, err = s.client.PutObject(ctx, s.bucket, object, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store export: %w", err)
	}

	s.logger.Info("Stored list export",
		zap.String("entity", entity),
		zap.String("object", object),
		zap.Int("rows", view.Count),
	)

	return &ExportResult{Object: object, Rows: view.Count}, nil
}

// Exports lists the stored CSV exports of an entity, newest last.
func (s *Service) Exports(ctx context.Context, entity string) ([]ExportInfo, error) {
	if _, err := s.repo.Columns(entity); err != nil {
		return nil, err
	}

	exports := make([]ExportInfo, 0)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    entity + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list exports: %w", obj.Err)
		}
		exports = append(exports, ExportInfo{
			Object:   obj.Key,
			Size:     obj.Size,
			Modified: obj.LastModified,
		})
	}

	return exports, nil
}

// OpenExport returns the content of a stored export. The object must live
// under the entity's prefix.
func (s *Service) OpenExport(ctx context.Context, entity, object string) (io.ReadCloser, error) {
	if err := s.checkExportObject(entity, object); err != nil {
		return nil, err
	}
	return s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
}

// DeleteExport removes a stored export from the archive.
func (s *Service) DeleteExport(ctx context.Context, entity, object string) error {
	if err := s.checkExportObject(entity, object); err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete export: %w", err)
	}

	s.logger.Info("Deleted list export",
		zap.String("entity", entity),
		zap.String("object", object),
	)
	return nil
}

func (s *Service) checkExportObject(entity, object string) error {
	if _, err := s.repo.Columns(entity); err != nil {
		return err
	}
	if !strings.HasPrefix(object, entity+"/") || strings.Contains(object, "..") {
		return fmt.Errorf("%w: %q", ErrBadExportObject, object)
	}
	return nil
}

func cellText(v any) string {
	if v == nil {
		return ""
	}
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return utils.ToString(v)
}
