package commission

import (
	"context"
	"testing"
	"time"

	"backoffice/core/database"
	"backoffice/core/tableview"
	"backoffice/feature/listing/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Agency{}, &models.Customer{}, &models.Order{}, &models.Transaction{},
	)
	require.NoError(t, err)

	return db
}

// seedLedger sets up one agency with a 10% rate, one linked customer, a
// 1000 order, and a 40 settlement. Owed 100, paid 40, outstanding 60.
func seedLedger(t *testing.T, db *gorm.DB) {
	t.Helper()

	rate := decimal.NewFromInt(10)
	agencyID := int64(1)
	require.NoError(t, db.Create(&models.Agency{ID: 1, Name: "Alpha Travel", CommissionRate: &rate}).Error)
	require.NoError(t, db.Create(&models.Customer{ID: 10, Name: "Alice", AgencyID: &agencyID}).Error)
	require.NoError(t, db.Create(&models.Order{ID: 100, CustomerID: 10, TotalAmount: decimal.NewFromInt(1000)}).Error)
	require.NoError(t, db.Create(&models.Transaction{
		ID: 1000, AgencyID: &agencyID, AgencyRole: "destination", Direction: "expense",
		Amount: decimal.NewFromInt(-40),
	}).Error)
}

func TestService_Summary(t *testing.T) {
	db := setupDB(t)
	seedLedger(t, db)
	svc := NewService(NewRepository(db), time.Minute, zap.NewNop())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Stats.TotalAgencies)
	assert.True(t, summary.Stats.TotalOutstanding.Equal(decimal.NewFromInt(60)))
	require.Len(t, summary.Stats.TopAgencies, 1)
	assert.Equal(t, "Alpha Travel", summary.Stats.TopAgencies[0].Name)
	assert.Equal(t, 1, summary.Stats.TopAgencies[0].Customers)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestService_Summary_EmptyDatabase(t *testing.T) {
	db := setupDB(t)
	svc := NewService(NewRepository(db), time.Minute, zap.NewNop())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Stats.TotalAgencies)
	assert.Empty(t, summary.Stats.TopAgencies)
	assert.True(t, summary.Stats.TotalOutstanding.IsZero())
}

func TestService_Summary_CachesSnapshot(t *testing.T) {
	db := setupDB(t)
	seedLedger(t, db)
	svc := NewService(NewRepository(db), time.Minute, zap.NewNop())

	first, err := svc.Summary(context.Background())
	require.NoError(t, err)

	// New rows must not show up until the snapshot is refreshed.
	require.NoError(t, db.Create(&models.Agency{ID: 2, Name: "Beta Tours"}).Error)

	cached, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Stats.TotalAgencies, cached.Stats.TotalAgencies)
	assert.Equal(t, first.GeneratedAt, cached.GeneratedAt)

	svc.Refresh()

	fresh, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Stats.TotalAgencies)
}

func TestService_Agencies(t *testing.T) {
	db := setupDB(t)
	seedLedger(t, db)
	require.NoError(t, db.Create(&models.Agency{ID: 2, Name: "Beta Tours"}).Error)
	svc := NewService(NewRepository(db), time.Minute, zap.NewNop())

	t.Run("Unfiltered", func(t *testing.T) {
		view, err := svc.Agencies(context.Background(), "", "", "")
		require.NoError(t, err)
		assert.Equal(t, 2, view.Count)
		assert.Equal(t, "Alpha Travel", view.Records[0]["name"])
		assert.Equal(t, "60", view.Records[0]["outstanding"])
		assert.Equal(t, "0", view.Records[1]["outstanding"])
	})

	t.Run("Search", func(t *testing.T) {
		view, err := svc.Agencies(context.Background(), "beta", "", "")
		require.NoError(t, err)
		assert.Equal(t, 1, view.Count)
		assert.Equal(t, "Beta Tours", view.Records[0]["name"])
	})

	t.Run("SortByOutstandingDesc", func(t *testing.T) {
		view, err := svc.Agencies(context.Background(), "", "outstanding", tableview.Desc)
		require.NoError(t, err)
		assert.Equal(t, "Alpha Travel", view.Records[0]["name"])
	})
}

func TestService_Agencies_RepositoryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(".*").WillReturnError(assert.AnError)

	svc := NewService(NewRepository(db), time.Minute, zap.NewNop())
	_, err := svc.Agencies(context.Background(), "", "", "")
	assert.Error(t, err)
}
