package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func rate(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// fixture: one agency at 10%, one customer, one 1000.00 order.
func baseFixture() ([]Agency, []Customer, []Order, []Movement) {
	agencies := []Agency{{ID: 1, Name: "Alpha Travel", CommissionRate: rate(10)}}
	customers := []Customer{{ID: 100, AgencyID: ptr(int64(1))}}
	orders := []Order{{ID: 500, CustomerID: 100, TotalAmount: decimal.NewFromInt(1000)}}
	return agencies, customers, orders, nil
}

func TestAgencyBalances_OwedWithoutMovements(t *testing.T) {
	agencies, customers, orders, _ := baseFixture()

	balances := AgencyBalances(agencies, customers, orders, nil)

	assert.Len(t, balances, 1)
	assert.Equal(t, "Alpha Travel", balances[0].Name)
	assert.Equal(t, 1, balances[0].Customers)
	assert.True(t, balances[0].Owed.Equal(decimal.NewFromInt(100)), "owed = 1000 * 10%%")
	assert.True(t, balances[0].Paid.IsZero())
	assert.True(t, balances[0].Outstanding.Equal(decimal.NewFromInt(100)))
}

func TestAgencyBalances_SettledMovementReducesOutstanding(t *testing.T) {
	agencies, customers, orders, _ := baseFixture()
	movements := []Movement{{
		ID:         1,
		AgencyID:   ptr(int64(1)),
		AgencyRole: RoleDestination,
		Direction:  DirectionExpense,
		Amount:     decimal.NewFromInt(-40), // signed; settlement uses |amount|
	}}

	balances := AgencyBalances(agencies, customers, orders, movements)

	assert.True(t, balances[0].Paid.Equal(decimal.NewFromInt(40)))
	assert.True(t, balances[0].Outstanding.Equal(decimal.NewFromInt(60)))
}

func TestAgencyBalances_OutstandingClampsAtZero(t *testing.T) {
	agencies, customers, orders, _ := baseFixture()
	movements := []Movement{{
		AgencyID:   ptr(int64(1)),
		AgencyRole: RoleDestination,
		Direction:  DirectionExpense,
		Amount:     decimal.NewFromInt(150),
	}}

	balances := AgencyBalances(agencies, customers, orders, movements)

	assert.True(t, balances[0].Paid.Equal(decimal.NewFromInt(150)))
	assert.True(t, balances[0].Outstanding.IsZero(), "outstanding never goes negative")
}

func TestAgencyBalances_SourceIncomeDebitsPaid(t *testing.T) {
	agencies, customers, orders, _ := baseFixture()
	movements := []Movement{
		{AgencyID: ptr(int64(1)), AgencyRole: RoleDestination, Direction: DirectionExpense, Amount: decimal.NewFromInt(40)},
		{AgencyID: ptr(int64(1)), AgencyRole: RoleSource, Direction: DirectionIncome, Amount: decimal.NewFromInt(15)},
	}

	balances := AgencyBalances(agencies, customers, orders, movements)

	assert.True(t, balances[0].Paid.Equal(decimal.NewFromInt(25)))
	assert.True(t, balances[0].Outstanding.Equal(decimal.NewFromInt(75)))
}

func TestAgencyBalances_IgnoredMovementShapes(t *testing.T) {
	agencies, customers, orders, _ := baseFixture()
	movements := []Movement{
		// The mirrored shapes are deliberately not counted.
		{AgencyID: ptr(int64(1)), AgencyRole: RoleDestination, Direction: DirectionIncome, Amount: decimal.NewFromInt(99)},
		{AgencyID: ptr(int64(1)), AgencyRole: RoleSource, Direction: DirectionExpense, Amount: decimal.NewFromInt(99)},
		{AgencyID: ptr(int64(1)), AgencyRole: RoleDestination, Direction: DirectionTransfer, Amount: decimal.NewFromInt(99)},
		// Movements without an agency, or for an unknown agency.
		{AgencyRole: RoleDestination, Direction: DirectionExpense, Amount: decimal.NewFromInt(99)},
		{AgencyID: ptr(int64(42)), AgencyRole: RoleDestination, Direction: DirectionExpense, Amount: decimal.NewFromInt(99)},
	}

	balances := AgencyBalances(agencies, customers, orders, movements)

	assert.True(t, balances[0].Paid.IsZero())
	assert.True(t, balances[0].Outstanding.Equal(decimal.NewFromInt(100)))
}

func TestAgencyBalances_OrphanedReferencesExcluded(t *testing.T) {
	agencies := []Agency{{ID: 1, Name: "Alpha Travel", CommissionRate: rate(10)}}
	customers := []Customer{
		{ID: 100, AgencyID: ptr(int64(1))},
		{ID: 101, AgencyID: nil},           // unlinked
		{ID: 102, AgencyID: ptr(int64(9))}, // unknown agency
	}
	orders := []Order{
		{ID: 500, CustomerID: 100, TotalAmount: decimal.NewFromInt(1000)},
		{ID: 501, CustomerID: 102, TotalAmount: decimal.NewFromInt(5000)},
		{ID: 502, CustomerID: 999, TotalAmount: decimal.NewFromInt(5000)},
	}

	balances := AgencyBalances(agencies, customers, orders, nil)

	assert.Len(t, balances, 1)
	assert.Equal(t, 1, balances[0].Customers)
	assert.True(t, balances[0].Owed.Equal(decimal.NewFromInt(100)))
}

func TestAgencyBalances_NilCommissionRate(t *testing.T) {
	agencies := []Agency{{ID: 1, Name: "No Rate"}}
	customers := []Customer{{ID: 100, AgencyID: ptr(int64(1))}}
	orders := []Order{{ID: 500, CustomerID: 100, TotalAmount: decimal.NewFromInt(1000)}}

	balances := AgencyBalances(agencies, customers, orders, nil)

	assert.True(t, balances[0].Owed.IsZero())
	assert.True(t, balances[0].Outstanding.IsZero())
}

func TestComputeStatistics_TopAgenciesRanking(t *testing.T) {
	agencies := []Agency{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: ""}, // missing name gets the synthetic label
		{ID: 3, Name: "Charlie"},
		{ID: 4, Name: "Delta"},
	}
	customers := []Customer{
		{ID: 1, AgencyID: ptr(int64(2))},
		{ID: 2, AgencyID: ptr(int64(2))},
		{ID: 3, AgencyID: ptr(int64(3))},
		{ID: 4, AgencyID: ptr(int64(3))},
		{ID: 5, AgencyID: ptr(int64(1))},
	}

	stats := ComputeStatistics(agencies, customers, nil, nil)

	assert.Equal(t, 4, stats.TotalAgencies)
	assert.Len(t, stats.TopAgencies, 3)
	assert.Equal(t, RankedAgency{ID: 2, Name: "Agency #2", Customers: 2}, stats.TopAgencies[0])
	assert.Equal(t, RankedAgency{ID: 3, Name: "Charlie", Customers: 2}, stats.TopAgencies[1])
	assert.Equal(t, RankedAgency{ID: 1, Name: "Alpha", Customers: 1}, stats.TopAgencies[2])
}

func TestComputeStatistics_TieBreakIsStable(t *testing.T) {
	agencies := []Agency{{ID: 5, Name: "First"}, {ID: 6, Name: "Second"}}
	customers := []Customer{
		{ID: 1, AgencyID: ptr(int64(5))},
		{ID: 2, AgencyID: ptr(int64(6))},
	}

	stats := ComputeStatistics(agencies, customers, nil, nil)

	// Equal counts keep the agency collection's input order.
	assert.Equal(t, int64(5), stats.TopAgencies[0].ID)
	assert.Equal(t, int64(6), stats.TopAgencies[1].ID)
}

func TestComputeStatistics_EmptyInputs(t *testing.T) {
	stats := ComputeStatistics(nil, nil, nil, nil)

	assert.Equal(t, 0, stats.TotalAgencies)
	assert.Empty(t, stats.TopAgencies)
	assert.True(t, stats.TotalOutstanding.IsZero())
}

func TestComputeStatistics_Idempotent(t *testing.T) {
	agencies, customers, orders, _ := baseFixture()
	movements := []Movement{{
		AgencyID:   ptr(int64(1)),
		AgencyRole: RoleDestination,
		Direction:  DirectionExpense,
		Amount:     decimal.NewFromInt(40),
	}}

	first := ComputeStatistics(agencies, customers, orders, movements)
	second := ComputeStatistics(agencies, customers, orders, movements)

	assert.Equal(t, first.TotalAgencies, second.TotalAgencies)
	assert.Equal(t, first.TopAgencies, second.TopAgencies)
	assert.True(t, first.TotalOutstanding.Equal(second.TotalOutstanding))
	assert.True(t, first.TotalOutstanding.Equal(decimal.NewFromInt(60)))
}

func TestAgencyBalances_DuplicateAgencyIDKeepsFirst(t *testing.T) {
	agencies := []Agency{
		{ID: 1, Name: "Original", CommissionRate: rate(10)},
		{ID: 1, Name: "Duplicate", CommissionRate: rate(50)},
	}
	customers := []Customer{{ID: 100, AgencyID: ptr(int64(1))}}
	orders := []Order{{ID: 500, CustomerID: 100, TotalAmount: decimal.NewFromInt(1000)}}

	balances := AgencyBalances(agencies, customers, orders, nil)

	assert.Len(t, balances, 1)
	assert.Equal(t, "Original", balances[0].Name)
	assert.True(t, balances[0].Owed.Equal(decimal.NewFromInt(100)))
}
